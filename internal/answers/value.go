package answers

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind tags which variant a Value holds.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindInt            // rating and range answers
	KindText           // choice answers
)

// Value is a submitted answer value: either an integer or the literal text of
// a selected option. The zero Value holds nothing.
type Value struct {
	kind ValueKind
	n    int
	s    string
}

// Int returns a Value holding an integer.
func Int(n int) Value {
	return Value{kind: KindInt, n: n}
}

// Text returns a Value holding option text.
func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

// Kind reports which variant v holds.
func (v Value) Kind() ValueKind { return v.kind }

// IsInt reports whether v holds an integer.
func (v Value) IsInt() bool { return v.kind == KindInt }

// AsInt returns the integer and true when v holds one.
func (v Value) AsInt() (int, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.n, true
}

// AsText returns the text and true when v holds text.
func (v Value) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.s, true
}

// String renders the value for display.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.n)
	case KindText:
		return v.s
	default:
		return ""
	}
}

// MarshalJSON encodes an integer as a JSON number and text as a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return json.Marshal(v.n)
	case KindText:
		return json.Marshal(v.s)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a JSON string or an integral JSON number.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case string:
		*v = Text(t)
	case float64:
		n := int(t)
		if float64(n) != t {
			return fmt.Errorf("answer value %v is not an integer", t)
		}
		*v = Int(n)
	default:
		return fmt.Errorf("answer value must be a string or integer, got %s", string(data))
	}
	return nil
}
