package arrfile

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Convert returns e reinterpreted as the target type per the engine's
// coercion rules. Identity conversions return e unchanged. The only
// error is an unknown type; malformed numeric text never fails, it
// becomes zero.
func Convert(e Entry, target Type) (Entry, error) {
	if !e.typ.isValid() {
		return Entry{}, fmt.Errorf("%w %d", ErrInvalidType, uint32(e.typ))
	}
	if !target.isValid() {
		return Entry{}, fmt.Errorf("%w %d", ErrInvalidType, uint32(target))
	}

	switch {
	case e.typ == target:
		return e, nil
	case target == TypeString:
		return String(e.Display()), nil
	case e.typ == TypeString:
		return FromText(e.txt, target)
	}

	switch target {
	case TypeInteger:
		if e.typ == TypeBoolean {
			return Integer(b2i(e.set)), nil
		}
		return Integer(clamp32(math.Trunc(e.dbl))), nil
	case TypeBoolean:
		if e.typ == TypeInteger {
			return Boolean(truthy(float64(e.num))), nil
		}
		return Boolean(truthy(e.dbl)), nil
	default: // TypeDouble
		if e.typ == TypeBoolean {
			return Double(float64(b2i(e.set))), nil
		}
		return Double(float64(e.num)), nil
	}
}

// FromText builds an entry of the given type from its display-string
// form, applying the engine's tolerant parse rules. This is also what
// a value edit applies: the edited text is re-parsed as the entry's
// current type.
func FromText(text string, typ Type) (Entry, error) {
	switch typ {
	case TypeInteger:
		return Integer(parseInt(text)), nil
	case TypeString:
		return String(text), nil
	case TypeBoolean:
		return Boolean(parseBool(text)), nil
	case TypeDouble:
		return Double(parseFloat(text)), nil
	default:
		return Entry{}, fmt.Errorf("%w %d", ErrInvalidType, uint32(typ))
	}
}

// Display returns the entry's display-string form: decimal digits for
// Integer, exactly 4 decimal places for Double, TRUE/FALSE for Boolean
// and the text itself for String.
func (e Entry) Display() string {
	switch e.typ {
	case TypeInteger:
		return strconv.FormatInt(int64(e.num), 10)
	case TypeString:
		return e.txt
	case TypeBoolean:
		return displayBool(e.set)
	case TypeDouble:
		return strconv.FormatFloat(e.dbl, 'f', 4, 64)
	default:
		return ""
	}
}

func displayBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// --------------------------------------------------------------------

// parseInt accepts anything: a whole-string integer, else a float
// truncated toward zero, else 0.
func parseInt(s string) int32 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int32(v)
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return clamp32(math.Trunc(v))
	}
	return 0
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// "1" and any casing of "TRUE" (surrounding whitespace ignored) are
// true, everything else is false.
func parseBool(s string) bool {
	s = strings.TrimSpace(s)
	return s == "1" || strings.EqualFold(s, "TRUE")
}
