package interchange

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/marc-format/marc/ir"
)

// DecodeYAML parses a single YAML document keeping mapping order.
// Non-string mapping keys are converted to their text.
func DecodeYAML(d []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}
	return fromYAML(v)
}

func fromYAML(v any) (any, error) {
	switch x := v.(type) {
	case nil, bool, string:
		return x, nil
	case yaml.MapSlice:
		o := NewObject()
		for _, item := range x {
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			o.Set(yamlKey(item.Key), val)
		}
		return o, nil
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			val, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			res[i] = val
		}
		return res, nil
	case map[string]any:
		return fromYAML(yamlSlice(x))
	}
	if n, ok := number(v); ok {
		return n, nil
	}
	return nil, fmt.Errorf("%w: yaml %T", ErrUnsupportedValue, v)
}

func yamlKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	if k == nil {
		return "null"
	}
	return fmt.Sprint(k)
}

func yamlSlice(m map[string]any) yaml.MapSlice {
	o := FromPlain(m).(*Object)
	res := make(yaml.MapSlice, 0, o.Len())
	for _, k := range o.Keys {
		res = append(res, yaml.MapItem{Key: k, Value: m[k]})
	}
	return res
}

// yamlNumber writes its text unchanged so no precision is lost.
type yamlNumber Number

func (n yamlNumber) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}

// EncodeYAML writes v as a YAML document.
func EncodeYAML(v any) ([]byte, error) {
	y, err := toYAML(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(y)
}

func toYAML(v any) (any, error) {
	switch x := v.(type) {
	case nil, bool, string:
		return x, nil
	case Number:
		return yamlNumber(x), nil
	case *Object:
		res := make(yaml.MapSlice, 0, x.Len())
		for _, k := range x.Keys {
			val, err := toYAML(x.Values[k])
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: k, Value: val})
		}
		return res, nil
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			val, err := toYAML(e)
			if err != nil {
				return nil, err
			}
			res[i] = val
		}
		return res, nil
	}
	if n, ok := number(v); ok {
		return yamlNumber(n), nil
	}
	if m, ok := v.(map[string]any); ok {
		return toYAML(FromPlain(m))
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func NodeFromYAML(d []byte) (*ir.Node, error) {
	v, err := DecodeYAML(d)
	if err != nil {
		return nil, err
	}
	return FromInterchange(v)
}

func NodeToYAML(node *ir.Node) ([]byte, error) {
	v, err := ToInterchange(node)
	if err != nil {
		return nil, err
	}
	return EncodeYAML(v)
}
