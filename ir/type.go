package ir

type Type int

const (
	NullType Type = iota
	BoolType
	FloatType
	IntegerType
	StringType
	VectorType
	StructType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "Null",
		BoolType:    "Bool",
		FloatType:   "Float",
		IntegerType: "Integer",
		StringType:  "String",
		VectorType:  "Vector",
		StructType:  "Struct",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		FloatType,
		IntegerType,
		StringType,
		VectorType,
		StructType,
	}
}
