// SPDX-License-Identifier: MIT

package value

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Kind tags the concrete representation held by a Value.
type Kind uint8

const (
	// KindNone is the zero Value: no payload.
	KindNone Kind = iota
	// KindInt holds an int64.
	KindInt
	// KindFloat holds a float64.
	KindFloat
	// KindString holds quoted text.
	KindString
	// KindIdent holds a bare identifier.
	KindIdent
	// KindList holds an ordered slice of Values.
	KindList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindIdent:
		return "ident"
	case KindList:
		return "list"
	default:
		return "none"
	}
}

// Value is an immutable tagged value. The zero Value has KindNone.
type Value struct {
	kind  Kind
	i     int64
	f     float64
	s     string
	items []Value
}

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str returns a string Value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Ident returns an identifier Value.
func Ident(name string) Value { return Value{kind: KindIdent, s: name} }

// List returns a list Value holding a copy of items.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, items: cp}
}

// FromMatrix converts a matrix (slice of rows) to a list of lists of Floats.
func FromMatrix(m [][]float64) Value {
	rows := make([]Value, len(m))
	for i, row := range m {
		cells := make([]Value, len(row))
		for j, x := range row {
			cells[j] = Float(x)
		}
		rows[i] = Value{kind: KindList, items: cells}
	}
	return Value{kind: KindList, items: rows}
}

// Kind reports the tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v is the zero Value.
func (v Value) IsZero() bool { return v.kind == KindNone }

// IsNumber reports whether v is an Int or a Float.
func (v Value) IsNumber() bool { return v.kind == KindInt || v.kind == KindFloat }

// AsInt returns the integer payload. Floats with an integral value convert.
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		if v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0) {
			return int64(v.f), true
		}
	}
	return 0, false
}

// AsFloat returns the numeric payload widened to float64.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// AsString returns the text of a String or Ident Value.
func (v Value) AsString() (string, bool) {
	if v.kind == KindString || v.kind == KindIdent {
		return v.s, true
	}
	return "", false
}

// Text returns the unquoted textual payload: the raw text for strings and
// identifiers, and the printed form for everything else.
func (v Value) Text() string {
	if s, ok := v.AsString(); ok {
		return s
	}
	return v.String()
}

// Items returns a copy of the elements of a List Value (nil otherwise).
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	cp := make([]Value, len(v.items))
	copy(cp, v.items)
	return cp
}

// Len returns the number of elements of a List Value, 0 otherwise.
func (v Value) Len() int {
	if v.kind != KindList {
		return 0
	}
	return len(v.items)
}

// Matrix converts a list of equal-length numeric lists to a matrix.
func (v Value) Matrix() ([][]float64, bool) {
	if v.kind != KindList {
		return nil, false
	}
	m := make([][]float64, len(v.items))
	for i, row := range v.items {
		if row.kind != KindList {
			return nil, false
		}
		if i > 0 && len(row.items) != len(v.items[0].items) {
			return nil, false
		}
		m[i] = make([]float64, len(row.items))
		for j, cell := range row.items {
			x, ok := cell.AsFloat()
			if !ok {
				return nil, false
			}
			m[i][j] = x
		}
	}
	return m, true
}

// Equal reports deep equality. Int and Float never compare equal to each
// other, so 1 and 1.0 are distinct labels.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindString, KindIdent:
		return v.s == o.s
	case KindList:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns the printed form of v.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return Quote(v.s)
	case KindIdent:
		return v.s
	case KindList:
		var b strings.Builder
		b.WriteByte('{')
		for i, it := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(it.String())
		}
		b.WriteByte('}')
		return b.String()
	}
	return ""
}

// formatFloat prints f in plain decimal notation, never with an exponent.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Quote wraps s in double quotes, escaping backslashes and embedded quotes.
func Quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// IsIdentifier reports whether s is a bare identifier: letters, digits and
// underscores, starting with a letter or an underscore.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// IsNumeral reports whether s is a plain decimal numeral with an optional
// leading minus sign and at most one decimal point.
func IsNumeral(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" || s == "." {
		return false
	}
	dot := false
	for _, r := range s {
		switch {
		case r == '.':
			if dot {
				return false
			}
			dot = true
		case r < '0' || r > '9':
			return false
		}
	}
	return true
}

// Parse converts text to a Value: numerals become Int (or Float when they
// carry a decimal point or overflow int64), identifiers become Ident and
// anything else a String.
func Parse(text string) Value {
	if IsNumeral(text) {
		if !strings.Contains(text, ".") {
			if i, err := strconv.ParseInt(text, 10, 64); err == nil {
				return Int(i)
			}
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return Float(f)
		}
	}
	if IsIdentifier(text) {
		return Ident(text)
	}
	return Str(text)
}
