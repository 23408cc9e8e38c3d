/*
Package segcodec serializes segment lists.

# Binary format

All integers are unsigned and big-endian.

	offset  size  field
	0       4     magic "HXSG"
	4       1     format version (1)
	5       4     segment count N
	9       ...   N segment records

Each segment record is:

	4  color, ARGB
	4  text length L in bytes
	L  text, UTF-8

Decoding rejects a wrong magic or version, truncated records, trailing bytes
and text that is not valid UTF-8.

# CBOR

EncodeCBOR writes the list as a CBOR array of [color, text] pairs using core
deterministic encoding, so equal lists always produce equal bytes.
*/
package segcodec
