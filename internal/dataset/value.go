package dataset

import (
	"math"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindAbsent marks missing or invalid data. Distinct from zero and
	// from empty text.
	KindAbsent Kind = iota
	KindNumber
	KindText
	KindCategory
)

// Value is a single cell of a dataset. Columns are typed dynamically
// per-cell until the coercion stage pins them down, so a Value carries its
// own tag instead of relying on the column's declared type.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// Absent returns the missing-data marker.
func Absent() Value { return Value{kind: KindAbsent} }

// Number returns a numeric Value. NaN and infinities collapse to Absent so
// float semantics never leak into comparisons downstream.
func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Absent()
	}
	return Value{kind: KindNumber, num: f}
}

// Text returns a free-text Value.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// Category returns a categorical Value.
func Category(s string) Value { return Value{kind: KindCategory, str: s} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is the missing-data marker.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Number returns the numeric payload. ok is false unless v holds a number.
func (v Value) Number() (f float64, ok bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the string payload. ok is false unless v holds text or a
// category.
func (v Value) Text() (s string, ok bool) {
	if v.kind != KindText && v.kind != KindCategory {
		return "", false
	}
	return v.str, true
}

// String renders v for display and CSV output. Absent renders as the empty
// string; numbers use the shortest representation that round-trips.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText, KindCategory:
		return v.str
	default:
		return ""
	}
}

// Mul multiplies two values with absent propagation: if either operand is
// not a number, the product is Absent. Never yields NaN.
func Mul(a, b Value) Value {
	x, ok := a.Number()
	if !ok {
		return Absent()
	}
	y, ok := b.Number()
	if !ok {
		return Absent()
	}
	return Number(x * y)
}
