package segcodec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/arthur-debert/hexmark/pkg/color"
	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/markup"
)

// cborSegment is the wire shape of a segment: a two element array
type cborSegment struct {
	_     struct{} `cbor:",toarray"`
	Color uint32
	Text  string
}

var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}

// EncodeCBOR serializes segments as a CBOR array of [color, text] arrays
func EncodeCBOR(segments []markup.Segment) ([]byte, error) {
	wire := make([]cborSegment, len(segments))
	for i, s := range segments {
		wire[i] = cborSegment{Color: uint32(s.Color), Text: s.Text}
	}
	data, err := encMode.Marshal(wire)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrEncode, "cbor encode failed")
	}
	return data, nil
}

// DecodeCBOR parses data produced by EncodeCBOR
func DecodeCBOR(data []byte) ([]markup.Segment, error) {
	var wire []cborSegment
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecode, "cbor decode failed")
	}
	segments := make([]markup.Segment, len(wire))
	for i, w := range wire {
		segments[i] = markup.Segment{Color: color.Color(w.Color), Text: w.Text}
	}
	return segments, nil
}
