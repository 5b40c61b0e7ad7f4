package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Value is a sealed interface representing one cell.
// Only Null, String, Int, Float and Bool implement it. All implementations
// are comparable, so Values can be used directly as map keys and compared
// with ==.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null is the absence marker. It is produced for empty cells and for
// attribute cells that carry no quoted value.
type Null struct{}

func (Null) value() {}

// String is a text cell.
type String string

func (String) value() {}

// Int is an integer cell.
type Int int64

func (Int) value() {}

// Float is a finite floating point cell.
// NaN and infinities are never constructed; they would break equality.
type Float float64

func (Float) value() {}

// Bool is a boolean cell. Inferred text columns of True/False cells produce
// it, as do boolean driver values from SQLite.
type Bool bool

func (Bool) value() {}

// IsNull reports whether v is the absence marker (or a nil interface).
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// Format renders v as delimited-text output.
//
// Floats keep a trailing ".0" when integral so that a written Float reads
// back as a Float under inference.
func Format(v Value) string {
	switch val := v.(type) {
	case nil, Null:
		return ""
	case String:
		return string(val)
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Float:
		f := float64(val)
		fmtByte := byte('f')
		if abs := math.Abs(f); abs >= 1e16 || (abs != 0 && abs < 1e-4) {
			fmtByte = 'g'
		}
		s := strconv.FormatFloat(f, fmtByte, -1, 64)
		if !strings.ContainsAny(s, ".eEn") {
			s += ".0"
		}
		return s
	case Bool:
		if val {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// Kind names the concrete kind of v, for diagnostics.
func Kind(v Value) string {
	switch v.(type) {
	case nil, Null:
		return "null"
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// FromAny converts a driver-level Go value into a Value.
// Used by typed sources such as SQLite.
func FromAny(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null{}
	case Value:
		return val
	case string:
		return String(val)
	case []byte:
		return String(string(val))
	case int64:
		return Int(val)
	case int:
		return Int(int64(val))
	case int32:
		return Int(int64(val))
	case float64:
		return floatValue(val)
	case float32:
		return floatValue(float64(val))
	case bool:
		return Bool(val)
	case time.Time:
		return String(val.Format(time.DateTime))
	default:
		return String(fmt.Sprint(val))
	}
}

func floatValue(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null{}
	}
	return Float(f)
}
