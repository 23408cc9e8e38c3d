package segcodec

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/arthur-debert/hexmark/pkg/color"
	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/markup"
)

const (
	binaryMagic   = "HXSG"
	binaryVersion = 1

	headerSize = len(binaryMagic) + 1 + 4
	recordSize = 4 + 4
)

// EncodeBinary serializes segments in the binary format described in the package doc
func EncodeBinary(segments []markup.Segment) ([]byte, error) {
	size := headerSize
	for _, s := range segments {
		size += recordSize + len(s.Text)
	}

	buf := make([]byte, 0, size)
	buf = append(buf, binaryMagic...)
	buf = append(buf, binaryVersion)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(segments)))
	for i, s := range segments {
		if !utf8.ValidString(s.Text) {
			return nil, errors.Newf(errors.ErrEncode, "segment %d text is not valid UTF-8", i)
		}
		buf = binary.BigEndian.AppendUint32(buf, uint32(s.Color))
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(s.Text)))
		buf = append(buf, s.Text...)
	}
	return buf, nil
}

// DecodeBinary parses data produced by EncodeBinary
func DecodeBinary(data []byte) ([]markup.Segment, error) {
	if len(data) < headerSize {
		return nil, errors.Newf(errors.ErrDecode, "data too short for header: %d bytes", len(data))
	}
	if string(data[:len(binaryMagic)]) != binaryMagic {
		return nil, errors.New(errors.ErrDecode, "bad magic")
	}
	if v := data[len(binaryMagic)]; v != binaryVersion {
		return nil, errors.Newf(errors.ErrDecode, "unsupported version %d", v)
	}

	count := binary.BigEndian.Uint32(data[len(binaryMagic)+1:])
	rest := data[headerSize:]

	// every record needs at least recordSize bytes
	if uint64(count)*uint64(recordSize) > uint64(len(rest)) {
		return nil, errors.Newf(errors.ErrDecode, "segment count %d exceeds data length", count)
	}

	segments := make([]markup.Segment, 0, count)
	for i := uint32(0); i < count; i++ {
		if len(rest) < recordSize {
			return nil, errors.Newf(errors.ErrDecode, "segment %d: truncated record", i)
		}
		c := color.Color(binary.BigEndian.Uint32(rest))
		n := binary.BigEndian.Uint32(rest[4:])
		rest = rest[recordSize:]
		if uint64(n) > uint64(len(rest)) {
			return nil, errors.Newf(errors.ErrDecode, "segment %d: text length %d exceeds data", i, n)
		}
		text := rest[:n]
		if !utf8.Valid(text) {
			return nil, errors.Newf(errors.ErrDecode, "segment %d: text is not valid UTF-8", i)
		}
		segments = append(segments, markup.Segment{Color: c, Text: string(text)})
		rest = rest[n:]
	}

	if len(rest) != 0 {
		return nil, errors.Newf(errors.ErrDecode, "%d trailing bytes", len(rest))
	}
	return segments, nil
}
