package arrfile

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// String payloads use Windows-1250, the Central European single-byte
// code page the game engine renders with.

// DecodeText converts Windows-1250 bytes into a native string. Bytes
// the code page leaves undefined decode as U+FFFD.
func DecodeText(raw []byte) string {
	out, _ := charmap.Windows1250.NewDecoder().Bytes(raw) // charmap decoders never fail
	return string(out)
}

// EncodeText converts a native string into Windows-1250 bytes. Runes
// outside the code page are replaced with the substitution byte
// rather than rejected: user text is always accepted.
func EncodeText(s string) []byte {
	out, _ := encoding.ReplaceUnsupported(charmap.Windows1250.NewEncoder()).Bytes([]byte(s))
	return out
}
