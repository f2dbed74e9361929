package arrfile

import (
	"encoding/binary"
	"io"
)

// Encode serialises an ordered sequence of entries into the on-disk
// layout. Decode(Encode(entries)) round-trips exactly: any fixed-point
// precision loss already happened when the Double values were
// constructed. Encoding a well-formed sequence cannot fail.
func Encode(entries []Entry) []byte {
	w := newBuffer(len(entries))
	w.u32(uint32(len(entries)))

	for _, e := range entries {
		w.u32(uint32(e.typ))

		switch e.typ {
		case TypeInteger:
			w.i32(e.num)
		case TypeString:
			raw := EncodeText(e.txt)
			w.u32(uint32(len(raw)))
			w.raw(raw)
		case TypeBoolean:
			w.u32(uint32(b2i(e.set)))
		case TypeDouble:
			w.i32(fixed(e.dbl))
		}
	}
	return w.buf
}

// Write encodes entries and writes the result to w.
func Write(w io.Writer, entries []Entry) error {
	_, err := w.Write(Encode(entries))
	return err
}

// --------------------------------------------------------------------

// buffer is the growable little-endian write side of the codec. The
// final size is unknown up front because string lengths vary.
type buffer struct {
	buf []byte
	tmp [4]byte
}

func newBuffer(entries int) *buffer {
	return &buffer{buf: make([]byte, 0, 4+8*entries)}
}

func (w *buffer) u32(v uint32) {
	binary.LittleEndian.PutUint32(w.tmp[:], v)
	w.buf = append(w.buf, w.tmp[:]...)
}

func (w *buffer) i32(v int32) {
	w.u32(uint32(v))
}

func (w *buffer) raw(p []byte) {
	w.buf = append(w.buf, p...)
}
