package interchange

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/marc-format/marc/ir"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// DecodeJSON parses JSON keeping object key order and number text.
func DecodeJSON(d []byte) (any, error) {
	if !gjson.ValidBytes(d) {
		return nil, ErrInvalidJSON
	}
	return fromResult(gjson.ParseBytes(d)), nil
}

func fromResult(r gjson.Result) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return Number(r.Raw)
	case gjson.String:
		return r.Str
	}
	if r.IsArray() {
		res := []any{}
		r.ForEach(func(_, v gjson.Result) bool {
			res = append(res, fromResult(v))
			return true
		})
		return res
	}
	o := NewObject()
	r.ForEach(func(k, v gjson.Result) bool {
		o.Set(k.Str, fromResult(v))
		return true
	})
	return o
}

// EncodeJSON writes v as JSON, indented when indent is set.
func EncodeJSON(v any, indent bool) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := writeJSON(buf, v); err != nil {
		return nil, err
	}
	if !indent {
		return buf.Bytes(), nil
	}
	return pretty.Pretty(buf.Bytes()), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if x {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		buf.WriteString(string(x))
	case string:
		writeJSONString(buf, x)
	case []any:
		buf.WriteByte('[')
		for i, e := range x {
			if i != 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *Object:
		buf.WriteByte('{')
		for i, k := range x.Keys {
			if i != 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, k)
			buf.WriteByte(':')
			if err := writeJSON(buf, x.Values[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		if n, ok := number(v); ok {
			buf.WriteString(string(n))
			return nil
		}
		if m, ok := v.(map[string]any); ok {
			return writeJSON(buf, FromPlain(m))
		}
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	// Encode terminates with a newline
	buf.Truncate(buf.Len() - 1)
}

// MarshalJSON lets an *Object be passed to encoding/json.
func (o *Object) MarshalJSON() ([]byte, error) {
	return EncodeJSON(o, false)
}

// NodeFromJSON decodes JSON straight to a tree.
func NodeFromJSON(d []byte) (*ir.Node, error) {
	v, err := DecodeJSON(d)
	if err != nil {
		return nil, err
	}
	return FromInterchange(v)
}

// NodeToJSON encodes a tree as JSON.
func NodeToJSON(node *ir.Node, indent bool) ([]byte, error) {
	v, err := ToInterchange(node)
	if err != nil {
		return nil, err
	}
	return EncodeJSON(v, indent)
}
