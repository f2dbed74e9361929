package arrfile

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Decode parses a byte buffer into an ordered sequence of entries. An
// empty buffer is a valid encoding of an empty sequence. Errors wrap
// ErrTruncated or ErrUnknownType and fail the whole decode; there is
// no partial result, since the width of the failed entry is unknown.
func Decode(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	cur := cursor{data: data}
	count, err := cur.u32()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, prealloc(count, len(data)))
	for i := uint32(0); i < count; i++ {
		ent, err := decodeEntry(&cur)
		if err != nil {
			return nil, fmt.Errorf("%w (entry %d)", err, i)
		}
		entries = append(entries, ent)
	}
	return entries, nil
}

// Read decodes an array from r, consuming it fully.
func Read(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func decodeEntry(cur *cursor) (Entry, error) {
	tag, err := cur.u32()
	if err != nil {
		return Entry{}, err
	}

	switch Type(tag) {
	case TypeInteger:
		v, err := cur.i32()
		if err != nil {
			return Entry{}, err
		}
		return Integer(v), nil
	case TypeString:
		n, err := cur.u32()
		if err != nil {
			return Entry{}, err
		}
		raw, err := cur.bytes(int(n))
		if err != nil {
			return Entry{}, err
		}
		return String(DecodeText(raw)), nil
	case TypeBoolean:
		v, err := cur.u32()
		if err != nil {
			return Entry{}, err
		}
		return Boolean(truthy(float64(v))), nil
	case TypeDouble:
		v, err := cur.i32()
		if err != nil {
			return Entry{}, err
		}
		return Entry{typ: TypeDouble, dbl: unfixed(v)}, nil
	default:
		return Entry{}, fmt.Errorf("%w %d", ErrUnknownType, tag)
	}
}

// A hostile count cannot force a huge allocation: an entry occupies at
// least 8 bytes, so the buffer length caps the capacity hint.
func prealloc(count uint32, size int) int {
	if max := size / 8; int64(count) > int64(max) {
		return max
	}
	return int(count)
}

// --------------------------------------------------------------------

// cursor reads fixed-width little-endian fields off a fixed buffer,
// advancing an offset and bounds-checking every read.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) bytes(n int) ([]byte, error) {
	if n < 0 || len(c.data)-c.off < n {
		return nil, fmt.Errorf("%w at offset %d", ErrTruncated, c.off)
	}
	p := c.data[c.off : c.off+n]
	c.off += n
	return p, nil
}

func (c *cursor) u32() (uint32, error) {
	p, err := c.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

func (c *cursor) i32() (int32, error) {
	v, err := c.u32()
	return int32(v), err
}
