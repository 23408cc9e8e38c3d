package output

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/beevik/etree"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/hexmark/pkg/config"
	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/markup"
)

type segmentsDoc struct {
	Segments []markup.Segment `json:"segments" yaml:"segments" toml:"segments"`
}

type textDoc struct {
	Text string `json:"text" yaml:"text" toml:"text"`
}

// renderStructured encodes v as json, yaml or toml
func (r *Renderer) renderStructured(v interface{}) error {
	var buf bytes.Buffer

	switch r.format {
	case config.FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.ErrEncode, "failed to encode json")
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.ErrEncode, "failed to encode yaml")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, errors.ErrEncode, "failed to encode yaml")
		}
	case config.FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return errors.Wrap(err, errors.ErrEncode, "failed to encode toml")
		}
	default:
		return errors.Newf(errors.ErrUnsupportedFormat, "format %q is not a structured format", r.format)
	}

	return r.write(buf.Bytes())
}

// XML documents are written without indentation so whitespace-only
// segment text survives.
func segmentsXML(segments []markup.Segment) []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("segments")
	for _, s := range segments {
		el := root.CreateElement("segment")
		el.CreateAttr("color", s.Color.Hex())
		el.SetText(s.Text)
	}
	return xmlBytes(doc)
}

func textXML(text string) []byte {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateElement("text").SetText(text)
	return xmlBytes(doc)
}

func xmlBytes(doc *etree.Document) []byte {
	var buf bytes.Buffer
	_, _ = doc.WriteTo(&buf)
	buf.WriteByte('\n')
	return buf.Bytes()
}

// renderTable lists one segment per row with the color cell drawn in its
// own color
func (r *Renderer) renderTable(segments []markup.Segment) error {
	data := pterm.TableData{{"#", "Color", "Text"}}
	for i, s := range segments {
		data = append(data, []string{
			strconv.Itoa(i),
			r.colorize(s.Color, s.Color.Hex()),
			strconv.Quote(s.Text),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrEncode, "failed to render table")
	}
	if !r.ColorEnabled() {
		table = pterm.RemoveColorFromString(table)
	}
	return r.writeLine(table)
}
