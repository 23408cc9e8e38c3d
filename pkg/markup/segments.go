package markup

import (
	"github.com/dlclark/regexp2"

	"github.com/arthur-debert/hexmark/pkg/color"
	"github.com/arthur-debert/hexmark/pkg/errors"
)

// Segment is one contiguous span of the input with the color it is drawn in
type Segment struct {
	Color color.Color `json:"color" yaml:"color" toml:"color"`
	Text  string      `json:"text" yaml:"text" toml:"text"`
}

// ExtractColorSegments splits input into colored segments using the shared patterns
func ExtractColorSegments(input string, defaultColor color.Color) ([]Segment, error) {
	return DefaultPatterns().ExtractColorSegments(input, defaultColor)
}

// ExtractColorSegmentsDefault is ExtractColorSegments with opaque white as the default color
func ExtractColorSegmentsDefault(input string) ([]Segment, error) {
	return ExtractColorSegments(input, color.White)
}

// ExtractColorSegments returns the ordered segments of input. Text outside
// color tags, and tags without a payload, get defaultColor. The segments
// never overlap, and their texts concatenate to input with the matched color
// tag delimiters removed.
//
// Empty input yields a single empty segment in the default color. Bytes that
// are not valid UTF-8 are carried through unchanged.
func (p *Patterns) ExtractColorSegments(input string, defaultColor color.Color) ([]Segment, error) {
	if input == "" {
		return []Segment{{Color: defaultColor, Text: input}}, nil
	}

	runes := []rune(input)
	offsets := runeOffsets(input)
	var segments []Segment
	cursor := 0

	m, err := p.colorTag.FindRunesMatch(runes)
	for ; m != nil && err == nil; m, err = p.colorTag.FindNextMatch(m) {
		if m.Index != cursor {
			segments = append(segments, Segment{
				Color: defaultColor,
				Text:  input[offsets[cursor]:offsets[m.Index]],
			})
		}

		c, colorErr := resolveColor(m, defaultColor)
		if colorErr != nil {
			return nil, errors.Wrapf(colorErr, errors.ErrInvalidColorPayload,
				"color tag at offset %d", m.Index).
				WithDetail("offset", m.Index)
		}
		body := m.GroupByName(groupText)
		segments = append(segments, Segment{
			Color: c,
			Text:  input[offsets[body.Index]:offsets[body.Index+body.Length]],
		})
		cursor = m.Index + m.Length
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrPatternMatch, "color tag scan failed")
	}

	if cursor != len(runes) {
		segments = append(segments, Segment{
			Color: defaultColor,
			Text:  input[offsets[cursor]:],
		})
	}

	return segments, nil
}

// resolveColor picks the segment color from a color tag match
func resolveColor(m *regexp2.Match, defaultColor color.Color) (color.Color, error) {
	var payload string
	if g := m.GroupByName(groupRGB); g != nil && len(g.Captures) > 0 {
		payload = g.String()
	} else if g := m.GroupByName(groupARGB); g != nil && len(g.Captures) > 0 {
		payload = g.String()
	} else {
		return defaultColor, nil
	}

	return color.ParsePayload(payload)
}

// runeOffsets maps rune index to byte offset in s, with len(s) appended. Each
// invalid byte counts as one rune, as it does in a []rune conversion.
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
