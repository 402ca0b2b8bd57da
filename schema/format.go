package schema

// JSON types that select a primitive schema variant
type JSONType int

const (
	TypeBoolean JSONType = iota
	TypeObject
	TypeArray
	TypeNumber
	TypeInteger
	TypeString
)

func (t JSONType) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeNumber:
		return "number"
	case TypeInteger:
		return "integer"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// ParseJSONType maps the value of a `type` keyword to a JSONType,
// the second return value is false for unrecognized names.
func ParseJSONType(name string) (JSONType, bool) {
	switch name {
	case "boolean":
		return TypeBoolean, true
	case "object":
		return TypeObject, true
	case "array":
		return TypeArray, true
	case "number":
		return TypeNumber, true
	case "integer":
		return TypeInteger, true
	case "string":
		return TypeString, true
	}
	return 0, false
}

// TypeFormat is the `type`/`format` pair of a primitive schema
type TypeFormat struct {
	Type   JSONType
	Format string
}

// Format is satisfied by the per-type format enumerations. The empty
// string is the generic format, unknown strings are kept as they are.
type Format interface {
	~string
	JSONType() JSONType
}

type BooleanFormat string

type ObjectFormat string

type ArrayFormat string

type NumberFormat string

const (
	NumberFloat  NumberFormat = "float"
	NumberDouble NumberFormat = "double"
)

type IntegerFormat string

const (
	IntegerInt32 IntegerFormat = "int32"
	IntegerInt64 IntegerFormat = "int64"
)

type StringFormat string

const (
	StringByte     StringFormat = "byte"
	StringBinary   StringFormat = "binary"
	StringDate     StringFormat = "date"
	StringDateTime StringFormat = "date-time"
	StringPassword StringFormat = "password"
)

func (BooleanFormat) JSONType() JSONType { return TypeBoolean }
func (ObjectFormat) JSONType() JSONType  { return TypeObject }
func (ArrayFormat) JSONType() JSONType   { return TypeArray }
func (NumberFormat) JSONType() JSONType  { return TypeNumber }
func (IntegerFormat) JSONType() JSONType { return TypeInteger }
func (StringFormat) JSONType() JSONType  { return TypeString }

func typeFormatOf[F Format](format F) TypeFormat {
	return TypeFormat{Type: format.JSONType(), Format: string(format)}
}
