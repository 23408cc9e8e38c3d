/*
Package output writes segments and plain text in the user's chosen format.

The text format draws every segment in its own color with lipgloss.
Translucent segment colors are composited onto the configured background
first, because terminals cannot draw alpha. Color is dropped when the color
mode is "never", when NO_COLOR is set, or when the writer is not a terminal
and the mode is "auto".

Structured formats (json, yaml, toml, xml) write a document with a
"segments" list, or a "text" field for stripped output. The cbor and binary
formats use pkg/segcodec for segments and write raw UTF-8 for text.
*/
package output
