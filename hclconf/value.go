package hclconf

import (
	"encoding/json"

	"github.com/zclconf/go-cty/cty"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// Value is a decoded configuration value: a tagged variant over the shapes
// HCL attribute values can take. Values are immutable after decoding.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	list []Value
	m    map[string]Value
}

// NullVal is the null value.
func NullVal() Value { return Value{kind: KindNull} }

// BoolVal returns a bool value.
func BoolVal(b bool) Value { return Value{kind: KindBool, b: b} }

// NumberVal returns a number value.
func NumberVal(n float64) Value { return Value{kind: KindNumber, num: n} }

// StringVal returns a string value.
func StringVal(s string) Value { return Value{kind: KindString, str: s} }

// ListVal returns a list value.
func ListVal(elems []Value) Value { return Value{kind: KindList, list: elems} }

// MapVal returns a map value.
func MapVal(m map[string]Value) Value { return Value{kind: KindMap, m: m} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null (the zero Value is null).
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the bool payload; false if the value is not a bool.
func (v Value) AsBool() bool { return v.kind == KindBool && v.b }

// AsNumber returns the number payload; 0 if the value is not a number.
func (v Value) AsNumber() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.num
}

// AsString returns the string payload; empty if the value is not a string.
func (v Value) AsString() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// AsList returns the list elements; nil if the value is not a list.
func (v Value) AsList() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// AsMap returns the map payload; nil if the value is not a map.
func (v Value) AsMap() map[string]Value {
	if v.kind != KindMap {
		return nil
	}
	return v.m
}

// Len returns the element count for lists and maps, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.m)
	default:
		return 0
	}
}

// HasAttr reports whether a map value carries the given key.
func (v Value) HasAttr(name string) bool {
	_, ok := v.m[name]
	return ok
}

// Attr returns the named map entry.
func (v Value) Attr(name string) (Value, bool) {
	e, ok := v.m[name]
	return e, ok
}

// Interface converts the value to its native Go representation
// (nil, bool, float64, string, []any, map[string]any).
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindList:
		out := make([]any, len(v.list))
		for i, e := range v.list {
			out[i] = e.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.m))
		for k, e := range v.m {
			out[k] = e.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON encodes the value as plain JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// String renders the value as canonical JSON text (map keys sorted).
// This is the serialized form the reference heuristic matches against.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}

// fromCty converts a known cty value into a Value. Unknown values decode
// to null; callers keep reference expressions as raw text before this point.
func fromCty(v cty.Value) Value {
	if v.IsNull() || !v.IsKnown() {
		return NullVal()
	}
	t := v.Type()
	switch {
	case t == cty.String:
		return StringVal(v.AsString())
	case t == cty.Bool:
		return BoolVal(v.True())
	case t == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return NumberVal(f)
	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		var elems []Value
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			elems = append(elems, fromCty(ev))
		}
		return ListVal(elems)
	case t.IsObjectType() || t.IsMapType():
		m := make(map[string]Value)
		for k, ev := range v.AsValueMap() {
			m[k] = fromCty(ev)
		}
		return MapVal(m)
	default:
		return StringVal(v.GoString())
	}
}
