package interchange

import (
	"sort"
	"strconv"
	"strings"
)

// Number is the decimal text of a number.
type Number string

func (n Number) String() string {
	return string(n)
}

// IsInteger reports whether n has neither fraction nor exponent.
func (n Number) IsInteger() bool {
	return !strings.ContainsAny(string(n), ".eE")
}

func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Object is a string keyed mapping that remembers insertion order.
type Object struct {
	Keys   []string
	Values map[string]any
}

func NewObject() *Object {
	return &Object{Values: map[string]any{}}
}

// Set adds or replaces k.  A replaced key keeps its position.
func (o *Object) Set(k string, v any) {
	if o.Values == nil {
		o.Values = map[string]any{}
	}
	if _, ok := o.Values[k]; !ok {
		o.Keys = append(o.Keys, k)
	}
	o.Values[k] = v
}

func (o *Object) Get(k string) (any, bool) {
	v, ok := o.Values[k]
	return v, ok
}

func (o *Object) Len() int {
	return len(o.Keys)
}

// Plain converts v to the types encoding/json and expression engines use
// natively: *Object becomes map[string]any and Number becomes int64 or
// float64.  A Number that does not parse is left as its text.
func Plain(v any) any {
	switch x := v.(type) {
	case *Object:
		m := make(map[string]any, x.Len())
		for _, k := range x.Keys {
			m[k] = Plain(x.Values[k])
		}
		return m
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = Plain(e)
		}
		return res
	case Number:
		if x.IsInteger() {
			if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
				return i
			}
		}
		f, err := x.Float64()
		if err != nil {
			return string(x)
		}
		return f
	}
	return v
}

// FromPlain is the inverse of Plain.  Map keys are sorted.
func FromPlain(v any) any {
	switch x := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		o := NewObject()
		for _, k := range keys {
			o.Set(k, FromPlain(x[k]))
		}
		return o
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = FromPlain(e)
		}
		return res
	case *Object:
		o := NewObject()
		for _, k := range x.Keys {
			o.Set(k, FromPlain(x.Values[k]))
		}
		return o
	}
	if n, ok := number(v); ok {
		return n
	}
	return v
}

func number(v any) (Number, bool) {
	switch x := v.(type) {
	case Number:
		return x, true
	case int:
		return Number(strconv.Itoa(x)), true
	case int64:
		return Number(strconv.FormatInt(x, 10)), true
	case uint64:
		return Number(strconv.FormatUint(x, 10)), true
	case float64:
		return Number(strconv.FormatFloat(x, 'g', -1, 64)), true
	case float32:
		return Number(strconv.FormatFloat(float64(x), 'g', -1, 32)), true
	}
	return "", false
}
