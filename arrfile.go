package arrfile

import (
	"errors"
	"fmt"
	"math"
)

var magic = []byte{65, 82, 82, 66, 75, 80, 13, 10}

const (
	backupNoCompression     = 0
	backupSnappyCompression = 1
)

// Errors surfaced by Decode; both are fatal to the whole call.
var (
	ErrTruncated   = errors.New("arrfile: truncated buffer")
	ErrUnknownType = errors.New("arrfile: unknown type tag")
)

// ErrInvalidType is returned by coercion and mutation calls when asked
// for a type outside the four known kinds.
var ErrInvalidType = errors.New("arrfile: invalid target type")

var (
	errBadMagic       = errors.New("arrfile: bad magic byte sequence")
	errBadCompression = errors.New("arrfile: bad compression codec")
)

// --------------------------------------------------------------------

// Type is the on-disk discriminant of an entry.
type Type uint32

// Known entry types.
const (
	TypeInteger Type = iota + 1
	TypeString
	TypeBoolean
	TypeDouble
)

func (t Type) isValid() bool {
	return t >= TypeInteger && t <= TypeDouble
}

func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "Integer"
	case TypeString:
		return "String"
	case TypeBoolean:
		return "Boolean"
	case TypeDouble:
		return "Double"
	default:
		return fmt.Sprintf("invalid type %d", uint32(t))
	}
}

// --------------------------------------------------------------------

// Entry is one tagged scalar value of an array. Entries are immutable
// and must be created through one of the four constructors; the zero
// Entry is not a valid value.
type Entry struct {
	typ Type
	num int32
	txt string
	set bool
	dbl float64
}

// Integer returns an Integer entry.
func Integer(v int32) Entry { return Entry{typ: TypeInteger, num: v} }

// String returns a String entry.
func String(s string) Entry { return Entry{typ: TypeString, txt: s} }

// Boolean returns a Boolean entry.
func Boolean(b bool) Entry { return Entry{typ: TypeBoolean, set: b} }

// Double returns a Double entry. The value is rounded to the nearest
// 1/10000, the precision the format can store, so the held value
// always survives an encode/decode round-trip exactly.
func Double(v float64) Entry { return Entry{typ: TypeDouble, dbl: unfixed(fixed(v))} }

// Type returns the entry type.
func (e Entry) Type() Type { return e.typ }

// Int returns the value of an Integer entry, 0 otherwise.
func (e Entry) Int() int32 { return e.num }

// Text returns the value of a String entry, "" otherwise.
func (e Entry) Text() string { return e.txt }

// Bool returns the value of a Boolean entry, false otherwise.
func (e Entry) Bool() bool { return e.set }

// Float returns the value of a Double entry, 0 otherwise.
func (e Entry) Float() float64 { return e.dbl }

// String implements fmt.Stringer using a debug form, e.g. Integer(42).
func (e Entry) String() string { return e.typ.String() + "(" + e.Display() + ")" }

// --------------------------------------------------------------------

const fixedScale = 10000

// fixed converts a double to its on-disk fixed-point form, rounding
// half away from zero and clamping to the int32 range.
func fixed(v float64) int32 {
	return clamp32(math.Round(v * fixedScale))
}

func unfixed(v int32) float64 {
	return float64(v) / fixedScale
}

func clamp32(f float64) int32 {
	switch {
	case f != f: // NaN
		return 0
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	default:
		return int32(f)
	}
}

// truthy is the single boolean policy: nonzero is true, both for
// on-disk values and for numeric coercion.
func truthy(v float64) bool { return v != 0 }

func b2i(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
