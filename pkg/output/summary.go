package output

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"

	"github.com/arthur-debert/hexmark/pkg/color"
	"github.com/arthur-debert/hexmark/pkg/config"
	"github.com/arthur-debert/hexmark/pkg/markup"
	"github.com/arthur-debert/hexmark/pkg/seq"
)

// Summary describes a segment list at a glance
type Summary struct {
	Segments int           `json:"segments" yaml:"segments" toml:"segments"`
	Runes    int           `json:"runes" yaml:"runes" toml:"runes"`
	Palette  []color.Color `json:"palette" yaml:"palette" toml:"palette"`
	Dominant color.Color   `json:"dominant" yaml:"dominant" toml:"dominant"`
	Longest  string        `json:"longest" yaml:"longest" toml:"longest"`
}

// Summarize computes a Summary. Palette keeps first-seen order. Dominant is
// the color covering the most runes; ties go to the color seen first.
// An empty list is an EMPTY_SEQUENCE error.
func Summarize(segments []markup.Segment) (Summary, error) {
	totals := make(map[color.Color]int)
	runes := 0
	for _, s := range segments {
		n := utf8.RuneCountInString(s.Text)
		totals[s.Color] += n
		runes += n
	}

	longest, err := seq.MaxBy(segments, func(s markup.Segment) int {
		return utf8.RuneCountInString(s.Text)
	})
	if err != nil {
		return Summary{}, err
	}

	palette := make([]color.Color, 0, len(totals))
	for _, s := range seq.DistinctBy(segments, func(s markup.Segment) color.Color { return s.Color }) {
		palette = append(palette, s.Color)
	}

	dominant, err := seq.MaxBy(palette, func(c color.Color) int { return totals[c] })
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Segments: len(segments),
		Runes:    runes,
		Palette:  palette,
		Dominant: dominant,
		Longest:  longest.Text,
	}, nil
}

// RenderSummary writes s in the renderer's format. Binary formats fall back
// to the structured json document.
func (r *Renderer) RenderSummary(s Summary) error {
	switch r.format {
	case config.FormatText, config.FormatPlain, config.FormatTable:
		return r.writeLine(r.summaryText(s))
	case config.FormatXML:
		return r.write(summaryXML(s))
	case config.FormatCBOR, config.FormatBinary:
		jr := *r
		jr.format = config.FormatJSON
		return jr.renderStructured(s)
	default:
		return r.renderStructured(s)
	}
}

func (r *Renderer) summaryText(s Summary) string {
	swatches := make([]string, len(s.Palette))
	for i, c := range s.Palette {
		swatches[i] = r.colorize(c, c.Hex())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-9s %d\n", "segments", s.Segments)
	fmt.Fprintf(&b, "%-9s %d\n", "runes", s.Runes)
	fmt.Fprintf(&b, "%-9s %s\n", "palette", strings.Join(swatches, " "))
	fmt.Fprintf(&b, "%-9s %s\n", "dominant", r.colorize(s.Dominant, s.Dominant.Hex()))
	fmt.Fprintf(&b, "%-9s %s", "longest", strconv.Quote(s.Longest))
	return b.String()
}

func summaryXML(s Summary) []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("summary")
	root.CreateAttr("segments", strconv.Itoa(s.Segments))
	root.CreateAttr("runes", strconv.Itoa(s.Runes))
	root.CreateAttr("dominant", s.Dominant.Hex())
	palette := root.CreateElement("palette")
	for _, c := range s.Palette {
		palette.CreateElement("color").SetText(c.Hex())
	}
	root.CreateElement("longest").SetText(s.Longest)
	return xmlBytes(doc)
}
