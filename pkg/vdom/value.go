package vdom

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates attribute values.
type ValueKind uint8

const (
	ValueText ValueKind = iota
	ValueNumber
	ValueBool
)

// String returns the string representation of the ValueKind.
func (k ValueKind) String() string {
	switch k {
	case ValueText:
		return "Text"
	case ValueNumber:
		return "Number"
	case ValueBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Value is an attribute value: text, number, or boolean.
// The zero Value is the empty text.
type Value struct {
	kind ValueKind
	text string
	num  float64
	flag bool
}

// TextValue returns a text Value.
func TextValue(s string) Value { return Value{kind: ValueText, text: s} }

// NumberValue returns a numeric Value.
func NumberValue(f float64) Value { return Value{kind: ValueNumber, num: f} }

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value { return Value{kind: ValueBool, flag: b} }

// ValueOf converts a Go value to a Value.
// Strings, bools, and the built-in integer and float types are accepted;
// anything else reports false.
func ValueOf(v any) (Value, bool) {
	switch val := v.(type) {
	case Value:
		return val, true
	case string:
		return TextValue(val), true
	case bool:
		return BoolValue(val), true
	case int:
		return NumberValue(float64(val)), true
	case int8:
		return NumberValue(float64(val)), true
	case int16:
		return NumberValue(float64(val)), true
	case int32:
		return NumberValue(float64(val)), true
	case int64:
		return NumberValue(float64(val)), true
	case uint:
		return NumberValue(float64(val)), true
	case uint8:
		return NumberValue(float64(val)), true
	case uint16:
		return NumberValue(float64(val)), true
	case uint32:
		return NumberValue(float64(val)), true
	case uint64:
		return NumberValue(float64(val)), true
	case float32:
		return NumberValue(float64(val)), true
	case float64:
		return NumberValue(val), true
	default:
		return Value{}, false
	}
}

// MustValue is like ValueOf but panics on unsupported types.
func MustValue(v any) Value {
	val, ok := ValueOf(v)
	if !ok {
		panic(fmt.Sprintf("vdom: unsupported attribute value type %T", v))
	}
	return val
}

// Kind returns the value's kind.
func (v Value) Kind() ValueKind { return v.kind }

// Text returns the text payload; empty for other kinds.
func (v Value) Text() string { return v.text }

// Number returns the numeric payload; zero for other kinds.
func (v Value) Number() float64 { return v.num }

// Bool returns the boolean payload; false for other kinds.
func (v Value) Bool() bool { return v.flag }

// Equal reports whether v and o have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueNumber:
		return v.num == o.num
	case ValueBool:
		return v.flag == o.flag
	default:
		return v.text == o.text
	}
}

// String renders the value the way it appears in markup.
func (v Value) String() string {
	switch v.kind {
	case ValueNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case ValueBool:
		if v.flag {
			return "true"
		}
		return "false"
	default:
		return v.text
	}
}

// Any returns the payload as a plain Go value.
func (v Value) Any() any {
	switch v.kind {
	case ValueNumber:
		return v.num
	case ValueBool:
		return v.flag
	default:
		return v.text
	}
}
