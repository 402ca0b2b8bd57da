package schema

// Schema build errors
type StructureError struct {
	info  string
	paths []string
}

type MissingDiscriminatorError struct {
	paths []string
}

// A known key holds a value of the wrong JSON type
type FieldError struct {
	key      string
	expected string
	paths    []string
}

// An example value could not be converted to generic JSON
type EncodingError struct {
	cause error
}

type ReferenceError struct {
	ref  string
	info string
}

// Schema builder
type BuilderOptions struct {
	// MaxDepth limits the nesting of sub schemas, 0 means unlimited
	MaxDepth int
}

type SchemaBuilder struct {
	opts BuilderOptions
}

// Kind identifies the active variant of a schema node
type Kind int

const (
	KindBoolean Kind = iota
	KindObject
	KindArray
	KindNumber
	KindInteger
	KindString
	KindAllOf
	KindOneOf
	KindAnyOf
	KindNot
	KindReference
)

// Schema is one node of an OpenAPI schema tree. Implementations are
// immutable values, every transformation returns a new node.
type Schema interface {
	Kind() Kind

	// TypeFormat returns false for composition and reference nodes
	TypeFormat() (TypeFormat, bool)
	IsRequired() bool
	IsNullable() bool
	AllowedValues() []any
	Example() any

	AsOptional() Schema
	AsRequired() Schema
	AsNullable() Schema
	WithAllowedValues(values []any) Schema
	WithExample(example any) Schema

	// Map encodes the node as generic JSON
	Map() map[string]any

	children() []childNode
	sealed()
}

// Attrs configures the common attributes of a primitive schema.
// Schemas are required unless Optional is set.
type Attrs[F Format] struct {
	Format        F
	Optional      bool
	Nullable      bool
	Title         string
	Description   string
	AllowedValues []any
	Example       any
}

// Common holds the attributes shared by all primitive schemas
type Common[F Format] struct {
	format        F
	required      bool
	nullable      bool
	title         string
	description   string
	allowedValues []any
	example       any
}

// contexts
type Bound[T float64 | int64] struct {
	Value     T
	Exclusive bool
}

type AdditionalProperties struct {
	Allowed bool
	// Schema takes precedence over Allowed when not nil
	Schema Schema
}

type ObjectContext struct {
	Properties           map[string]Schema
	AdditionalProperties *AdditionalProperties
	MinProperties        int
	MaxProperties        *int
}

type ArrayContext struct {
	Items       Schema
	MinItems    int
	MaxItems    *int
	UniqueItems bool
}

type NumericContext struct {
	MultipleOf *float64
	Maximum    *Bound[float64]
	Minimum    *Bound[float64]
}

type IntegerContext struct {
	MultipleOf *int64
	Maximum    *Bound[int64]
	Minimum    *Bound[int64]
}

type StringContext struct {
	MinLength int
	MaxLength *int
	Pattern   string
}

// primitives
type BooleanSchema struct {
	Common[BooleanFormat]
}

type ObjectSchema struct {
	Common[ObjectFormat]
	ObjectContext
}

type ArraySchema struct {
	Common[ArrayFormat]
	ArrayContext
}

type NumberSchema struct {
	Common[NumberFormat]
	NumericContext
}

type IntegerSchema struct {
	Common[IntegerFormat]
	IntegerContext
}

type StringSchema struct {
	Common[StringFormat]
	StringContext
}

// composits
type AllOfSchema struct {
	Choices []Schema
}

type OneOfSchema struct {
	Choices []Schema
}

type AnyOfSchema struct {
	Choices []Schema
}

type NotSchema struct {
	Child Schema
}

type ReferenceSchema struct {
	Ref Reference
}
