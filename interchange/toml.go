package interchange

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/signadot/marc-format/marc/ir"
)

// DecodeTOML parses a TOML document.  Table keys keep the order in which
// they first appear in the document; dates and times become RFC 3339
// strings.
func DecodeTOML(d []byte) (any, error) {
	var m map[string]any
	md, err := toml.Decode(string(d), &m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTOML, err)
	}
	order := map[string][]string{}
	seen := map[string]bool{}
	for _, k := range md.Keys() {
		full := strings.Join(k, "\x00")
		if seen[full] {
			continue
		}
		seen[full] = true
		parent := strings.Join(k[:len(k)-1], "\x00")
		order[parent] = append(order[parent], k[len(k)-1])
	}
	return fromTOML(m, nil, order)
}

func fromTOML(v any, path []string, order map[string][]string) (any, error) {
	switch x := v.(type) {
	case bool, string:
		return x, nil
	case int64:
		return Number(strconv.FormatInt(x, 10)), nil
	case float64:
		t := strconv.FormatFloat(x, 'g', -1, 64)
		if !strings.ContainsAny(t, ".eEnN") {
			t += ".0"
		}
		return Number(t), nil
	case time.Time:
		return x.Format(time.RFC3339Nano), nil
	case map[string]any:
		o := NewObject()
		for _, k := range tomlKeys(x, order[strings.Join(path, "\x00")]) {
			val, err := fromTOML(x[k], append(path[:len(path):len(path)], k), order)
			if err != nil {
				return nil, err
			}
			o.Set(k, val)
		}
		return o, nil
	case []map[string]any:
		res := make([]any, len(x))
		for i, e := range x {
			val, err := fromTOML(e, path, order)
			if err != nil {
				return nil, err
			}
			res[i] = val
		}
		return res, nil
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			val, err := fromTOML(e, path, order)
			if err != nil {
				return nil, err
			}
			res[i] = val
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: toml %T", ErrUnsupportedValue, v)
}

// tomlKeys lists the keys of m in document order.  Keys the decoder did
// not report, such as those of inline tables in arrays, follow sorted.
func tomlKeys(m map[string]any, known []string) []string {
	res := make([]string, 0, len(m))
	done := make(map[string]bool, len(m))
	for _, k := range known {
		if _, ok := m[k]; ok && !done[k] {
			res = append(res, k)
			done[k] = true
		}
	}
	var rest []string
	for k := range m {
		if !done[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(res, rest...)
}

// EncodeTOML writes v as a TOML document.  v must be an object, TOML has
// no null, and keys are written in the encoder's sorted order.
func EncodeTOML(v any) ([]byte, error) {
	if _, ok := v.(*Object); !ok {
		return nil, fmt.Errorf("%w: toml root must be a table, got %T", ErrUnsupportedValue, v)
	}
	if err := checkTOML(v, ""); err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := toml.NewEncoder(buf).Encode(Plain(v)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedValue, err)
	}
	return buf.Bytes(), nil
}

func checkTOML(v any, at string) error {
	switch x := v.(type) {
	case nil:
		return fmt.Errorf("%w: toml has no null (at %q)", ErrUnsupportedValue, at)
	case *Object:
		for _, k := range x.Keys {
			if err := checkTOML(x.Values[k], at+"/"+k); err != nil {
				return err
			}
		}
	case []any:
		for i, e := range x {
			if err := checkTOML(e, at+"/"+strconv.Itoa(i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func NodeFromTOML(d []byte) (*ir.Node, error) {
	v, err := DecodeTOML(d)
	if err != nil {
		return nil, err
	}
	return FromInterchange(v)
}

func NodeToTOML(node *ir.Node) ([]byte, error) {
	v, err := ToInterchange(node)
	if err != nil {
		return nil, err
	}
	return EncodeTOML(v)
}
