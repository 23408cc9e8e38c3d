/*
Package markup decomposes and strips inline color markup.

Color markup wraps a span of text in a tag carrying an optional hex color:

	<c=#FF0000>red</c>
	<color=80FFFFFF>translucent white</color>
	<c=>uses the default color</c>

The open literal ("c" or "color") must be repeated by the close tag, which may
contain whitespace around the slash: "< / c >" closes "<c=...>". A six digit
payload is opaque RGB; an eight digit payload is ARGB.

# Segments

ExtractColorSegments scans the input once and returns every span in order.
Untagged text gets the caller's default color, so joining the segment texts
always reproduces the input:

	segs, err := markup.ExtractColorSegments("a<c=FF0000>b</c>c", color.White)
	// [{#FFFFFFFF a} {#FFFF0000 b} {#FFFFFFFF c}]

Tags are not recursed into. An inner tag of the same alias is literal text up to
the first close tag matching the outer alias.

# Stripping

StripMarkup removes any tag pair whose close name matches its open name,
keeping the body, and repeats until no pair is left:

	out, _ := markup.StripMarkup(`<a href="x"><b>bold</b></a>`)
	// "bold"

StripMarkupLazy deletes every <...> token in one pass without looking at
pairing. Unterminated "<" characters are kept by both.

All functions are safe for concurrent use. The compiled expressions live in a
Patterns value built once and never modified.
*/
package markup
