package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/hexmark/pkg/color"
	"github.com/arthur-debert/hexmark/pkg/config"
	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/logging"
	"github.com/arthur-debert/hexmark/pkg/markup"
	"github.com/arthur-debert/hexmark/pkg/segcodec"
)

// Options configures a Renderer
type Options struct {
	Format     string
	ColorMode  string
	Background color.Color
}

// Renderer writes results to a writer in one format
type Renderer struct {
	writer     io.Writer
	format     string
	background color.Color
	style      *lipgloss.Renderer
}

// NewRenderer creates a Renderer for w. An empty format means text.
func NewRenderer(w io.Writer, opts Options) (*Renderer, error) {
	log := logging.GetLogger("output.Renderer")

	format := opts.Format
	if format == "" {
		format = config.FormatText
	}
	if !config.IsFormat(format) {
		return nil, errors.Newf(errors.ErrUnsupportedFormat, "unknown output format %q", format).
			WithDetail("formats", config.Formats)
	}

	style := lipgloss.NewRenderer(w)
	switch opts.ColorMode {
	case config.ColorNever:
		style.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		style.SetColorProfile(termenv.TrueColor)
	default:
		if termenv.EnvNoColor() {
			style.SetColorProfile(termenv.Ascii)
		}
	}

	r := &Renderer{
		writer:     w,
		format:     format,
		background: opts.Background,
		style:      style,
	}

	log.Debug().
		Str("format", format).
		Str("colorMode", opts.ColorMode).
		Str("colorProfile", fmt.Sprintf("%v", style.ColorProfile())).
		Msg("Created renderer")

	return r, nil
}

// Format returns the output format
func (r *Renderer) Format() string {
	return r.format
}

// ColorEnabled reports whether segment colors will be emitted
func (r *Renderer) ColorEnabled() bool {
	return r.style.ColorProfile() != termenv.Ascii
}

// RenderSegments writes segments in the renderer's format
func (r *Renderer) RenderSegments(segments []markup.Segment) error {
	switch r.format {
	case config.FormatText:
		var b strings.Builder
		for _, s := range segments {
			b.WriteString(r.colorize(s.Color, s.Text))
		}
		return r.writeLine(b.String())
	case config.FormatPlain:
		var b strings.Builder
		for _, s := range segments {
			b.WriteString(s.Text)
		}
		return r.writeLine(b.String())
	case config.FormatTable:
		return r.renderTable(segments)
	case config.FormatCBOR:
		data, err := segcodec.EncodeCBOR(segments)
		if err != nil {
			return err
		}
		return r.write(data)
	case config.FormatBinary:
		data, err := segcodec.EncodeBinary(segments)
		if err != nil {
			return err
		}
		return r.write(data)
	case config.FormatXML:
		return r.write(segmentsXML(segments))
	default:
		return r.renderStructured(segmentsDoc{Segments: segmentsOrEmpty(segments)})
	}
}

// RenderText writes a single string, such as stripped markup
func (r *Renderer) RenderText(text string) error {
	switch r.format {
	case config.FormatText, config.FormatPlain, config.FormatTable:
		return r.writeLine(text)
	case config.FormatCBOR, config.FormatBinary:
		return r.write([]byte(text))
	case config.FormatXML:
		return r.write(textXML(text))
	default:
		return r.renderStructured(textDoc{Text: text})
	}
}

// colorize draws text in c. Lines are styled one by one so lipgloss does not
// pad them to a common width.
func (r *Renderer) colorize(c color.Color, text string) string {
	if text == "" || !r.ColorEnabled() {
		return text
	}
	st := r.style.NewStyle().
		Foreground(lipgloss.Color(c.Blend(r.background).RGBHex())).
		TabWidth(lipgloss.NoTabConversion)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) writeLine(s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(r.writer, s)
	return err
}

func (r *Renderer) write(data []byte) error {
	_, err := r.writer.Write(data)
	return err
}

func segmentsOrEmpty(segments []markup.Segment) []markup.Segment {
	if segments == nil {
		return []markup.Segment{}
	}
	return segments
}
