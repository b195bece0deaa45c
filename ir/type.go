package ir

import "fmt"

type Type int

const (
	UninitializedType Type = iota
	NullType
	BoolType
	IntegerType
	NumberType
	StringType
	ObjectType
	MapType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		UninitializedType: "Uninitialized",
		NullType:          "Null",
		BoolType:          "Boolean",
		IntegerType:       "Integer",
		NumberType:        "Number",
		StringType:        "String",
		ObjectType:        "Object",
		MapType:           "Map",
		ArrayType:         "Array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for _, tt := range Types() {
		if tt.String() == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		UninitializedType,
		NullType,
		BoolType,
		IntegerType,
		NumberType,
		StringType,
		ObjectType,
		MapType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case NullType, BoolType, IntegerType, NumberType, StringType:
		return true
	default:
		return false
	}
}

func (t Type) IsContainer() bool {
	switch t {
	case ObjectType, MapType, ArrayType:
		return true
	default:
		return false
	}
}
