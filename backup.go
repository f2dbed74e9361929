package arrfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/golang/snappy"
)

// WriteBackup wraps the encoded sequence in the backup container,
// compressing the payload with snappy when that actually saves space.
// Backups are editor-owned; the game engine only ever reads the raw
// layout written by Write.
func WriteBackup(w io.Writer, entries []Entry) error {
	plain := Encode(entries)

	payload, indicator := plain, byte(backupNoCompression)
	if snp := snappy.Encode(nil, plain); len(snp) < len(plain)-len(plain)/4 {
		payload, indicator = snp, backupSnappyCompression
	}

	if _, err := w.Write(magic); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	_, err := w.Write([]byte{indicator})
	return err
}

// ReadBackup reads a backup container from r and decodes its payload.
func ReadBackup(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < len(magic)+1 || !bytes.Equal(data[:len(magic)], magic) {
		return nil, errBadMagic
	}

	body := data[len(magic) : len(data)-1]
	switch data[len(data)-1] {
	case backupNoCompression:
	case backupSnappyCompression:
		if body, err = snappy.Decode(nil, body); err != nil {
			return nil, fmt.Errorf("arrfile: %w", err)
		}
	default:
		return nil, errBadCompression
	}
	return Decode(body)
}
