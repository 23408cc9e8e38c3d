package markup

import (
	"github.com/arthur-debert/hexmark/pkg/errors"
)

// StripMarkup removes matched tag pairs using the shared patterns
func StripMarkup(input string) (string, error) {
	return DefaultPatterns().StripMarkup(input)
}

// MustStripMarkup is like StripMarkup but panics if the pattern engine fails
func MustStripMarkup(input string) string {
	out, err := StripMarkup(input)
	if err != nil {
		panic(err)
	}
	return out
}

// StripMarkupLazy removes every <...> token using the shared patterns
func StripMarkupLazy(input string) string {
	return DefaultPatterns().StripMarkupLazy(input)
}

// StripMarkup replaces the leftmost tag pair with its body until no pair is
// left. A pair is an open tag and a close tag with the same name; the body is
// the shortest span between them. Nested pairs unwrap one layer per pass.
//
// Each pass removes both delimiters, so the loop runs at most once per pair.
// Text outside the removed delimiters keeps its original bytes.
func (p *Patterns) StripMarkup(input string) (string, error) {
	if input == "" {
		return input, nil
	}

	out := input
	passes := 0
	for {
		m, err := p.pairTag.FindRunesMatch([]rune(out))
		if err != nil {
			return "", errors.Wrap(err, errors.ErrPatternMatch, "tag pair scan failed").
				WithDetail("passes", passes)
		}
		if m == nil {
			break
		}

		offsets := runeOffsets(out)
		body := m.GroupByName(groupText)
		out = out[:offsets[m.Index]] +
			out[offsets[body.Index]:offsets[body.Index+body.Length]] +
			out[offsets[m.Index+m.Length]:]
		passes++
	}

	return out, nil
}

// StripMarkupLazy deletes every "<", shortest run of characters, ">" sequence
// in a single pass. Pairing is ignored; a "<" without a later ">" on the same
// line stays.
func (p *Patterns) StripMarkupLazy(input string) string {
	if input == "" {
		return input
	}
	return p.anyTag.ReplaceAllLiteralString(input, "")
}
