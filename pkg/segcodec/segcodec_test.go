package segcodec_test

import (
	"testing"

	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/markup"
	"github.com/arthur-debert/hexmark/pkg/segcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var redHi = []markup.Segment{{Color: 0xFFFF0000, Text: "hi"}}

func TestEncodeBinary_Layout(t *testing.T) {
	data, err := segcodec.EncodeBinary(redHi)
	require.NoError(t, err)

	want := []byte{
		'H', 'X', 'S', 'G',
		0x01,
		0x00, 0x00, 0x00, 0x01,
		0xFF, 0xFF, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x02,
		'h', 'i',
	}
	assert.Equal(t, want, data)
}

func TestBinary_RoundTripFromExtraction(t *testing.T) {
	segments, err := markup.ExtractColorSegments("héllo <c=80112233>wörld</c>!", 0xFFFFFFFF)
	require.NoError(t, err)

	data, err := segcodec.EncodeBinary(segments)
	require.NoError(t, err)

	decoded, err := segcodec.DecodeBinary(data)
	require.NoError(t, err)
	assert.Equal(t, segments, decoded)
}

func TestEncodeBinary_Empty(t *testing.T) {
	data, err := segcodec.EncodeBinary(nil)
	require.NoError(t, err)
	assert.Len(t, data, 9)

	decoded, err := segcodec.DecodeBinary(data)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestEncodeBinary_InvalidUTF8(t *testing.T) {
	_, err := segcodec.EncodeBinary([]markup.Segment{{Text: "\xff"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncode))
}

func TestDecodeBinary_Errors(t *testing.T) {
	valid, err := segcodec.EncodeBinary(redHi)
	require.NoError(t, err)

	badVersion := append([]byte{}, valid...)
	badVersion[4] = 9

	badCount := append([]byte{}, valid...)
	badCount[8] = 2

	badLength := append([]byte{}, valid...)
	badLength[16] = 9

	badText := append([]byte{}, valid...)
	badText[len(badText)-1] = 0xFF

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", []byte("HXSG")},
		{"bad magic", append([]byte("NOPE"), valid[4:]...)},
		{"bad version", badVersion},
		{"count beyond data", badCount},
		{"text length beyond data", badLength},
		{"invalid utf8", badText},
		{"trailing bytes", append(append([]byte{}, valid...), 0x00)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := segcodec.DecodeBinary(tt.data)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrDecode), "got %v", err)
		})
	}
}

func TestEncodeCBOR_Layout(t *testing.T) {
	data, err := segcodec.EncodeCBOR(redHi)
	require.NoError(t, err)

	// array(1) of array(2): uint32 color, text(2)
	want := []byte{0x81, 0x82, 0x1A, 0xFF, 0xFF, 0x00, 0x00, 0x62, 'h', 'i'}
	assert.Equal(t, want, data)

	decoded, err := segcodec.DecodeCBOR(data)
	require.NoError(t, err)
	assert.Equal(t, redHi, decoded)
}

func TestDecodeCBOR_Invalid(t *testing.T) {
	_, err := segcodec.DecodeCBOR([]byte{0xFF, 0x00})
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))
}
