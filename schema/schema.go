package schema

import (
	"fmt"
	"maps"
	"sort"
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindAllOf:
		return "allOf"
	case KindOneOf:
		return "oneOf"
	case KindAnyOf:
		return "anyOf"
	case KindNot:
		return "not"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// type = "boolean"
func NewBoolean(attrs Attrs[BooleanFormat]) BooleanSchema {
	return BooleanSchema{Common: NewCommon(attrs)}
}

func (self BooleanSchema) Kind() Kind { return KindBoolean }
func (BooleanSchema) sealed()         {}

func (self BooleanSchema) AsOptional() Schema {
	self.Common = self.Common.AsOptional()
	return self
}

func (self BooleanSchema) AsRequired() Schema {
	self.Common = self.Common.AsRequired()
	return self
}

func (self BooleanSchema) AsNullable() Schema {
	self.Common = self.Common.AsNullable()
	return self
}

func (self BooleanSchema) WithAllowedValues(values []any) Schema {
	self.Common = self.Common.WithAllowedValues(values)
	return self
}

func (self BooleanSchema) WithExample(example any) Schema {
	self.Common = self.Common.WithExample(example)
	return self
}

func (self BooleanSchema) Map() map[string]any {
	return self.Common.rebuildType()
}

// type = "object"
func NewObject(attrs Attrs[ObjectFormat], ctx ObjectContext) ObjectSchema {
	ctx.Properties = maps.Clone(ctx.Properties)
	return ObjectSchema{Common: NewCommon(attrs), ObjectContext: ctx}
}

func (self ObjectSchema) Kind() Kind { return KindObject }
func (ObjectSchema) sealed()         {}

func (self ObjectSchema) AsOptional() Schema {
	self.Common = self.Common.AsOptional()
	return self
}

func (self ObjectSchema) AsRequired() Schema {
	self.Common = self.Common.AsRequired()
	return self
}

func (self ObjectSchema) AsNullable() Schema {
	self.Common = self.Common.AsNullable()
	return self
}

func (self ObjectSchema) WithAllowedValues(values []any) Schema {
	self.Common = self.Common.WithAllowedValues(values)
	return self
}

func (self ObjectSchema) WithExample(example any) Schema {
	self.Common = self.Common.WithExample(example)
	return self
}

func (self ObjectSchema) Map() map[string]any {
	tp := self.Common.rebuildType()
	self.ObjectContext.rebuildType(tp)
	return tp
}

// RequiredProperties returns the sorted names of required properties
func (self ObjectContext) RequiredProperties() []string {
	names := make([]string, 0)
	for name, prop := range self.Properties {
		if prop.IsRequired() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (self ObjectContext) rebuildType(tp map[string]any) {
	if self.Properties != nil {
		props := make(map[string]any)
		for name, p := range self.Properties {
			props[name] = p.Map()
		}
		tp["properties"] = props
		tp["required"] = self.RequiredProperties()
	}
	if ap := self.AdditionalProperties; ap != nil {
		if ap.Schema != nil {
			tp["additionalProperties"] = ap.Schema.Map()
		} else {
			tp["additionalProperties"] = ap.Allowed
		}
	}
	if self.MinProperties > 0 {
		tp["minProperties"] = self.MinProperties
	}
	if self.MaxProperties != nil {
		tp["maxProperties"] = *self.MaxProperties
	}
}

// type = "array"
func NewArray(attrs Attrs[ArrayFormat], ctx ArrayContext) ArraySchema {
	return ArraySchema{Common: NewCommon(attrs), ArrayContext: ctx}
}

func (self ArraySchema) Kind() Kind { return KindArray }
func (ArraySchema) sealed()         {}

func (self ArraySchema) AsOptional() Schema {
	self.Common = self.Common.AsOptional()
	return self
}

func (self ArraySchema) AsRequired() Schema {
	self.Common = self.Common.AsRequired()
	return self
}

func (self ArraySchema) AsNullable() Schema {
	self.Common = self.Common.AsNullable()
	return self
}

func (self ArraySchema) WithAllowedValues(values []any) Schema {
	self.Common = self.Common.WithAllowedValues(values)
	return self
}

func (self ArraySchema) WithExample(example any) Schema {
	self.Common = self.Common.WithExample(example)
	return self
}

func (self ArraySchema) Map() map[string]any {
	tp := self.Common.rebuildType()
	self.ArrayContext.rebuildType(tp)
	return tp
}

func (self ArrayContext) rebuildType(tp map[string]any) {
	if self.Items != nil {
		tp["items"] = self.Items.Map()
	}
	if self.MinItems > 0 {
		tp["minItems"] = self.MinItems
	}
	if self.MaxItems != nil {
		tp["maxItems"] = *self.MaxItems
	}
	if self.UniqueItems {
		tp["uniqueItems"] = true
	}
}

// type = "number"
func NewNumber(attrs Attrs[NumberFormat], ctx NumericContext) NumberSchema {
	return NumberSchema{Common: NewCommon(attrs), NumericContext: ctx}
}

func (self NumberSchema) Kind() Kind { return KindNumber }
func (NumberSchema) sealed()         {}

func (self NumberSchema) AsOptional() Schema {
	self.Common = self.Common.AsOptional()
	return self
}

func (self NumberSchema) AsRequired() Schema {
	self.Common = self.Common.AsRequired()
	return self
}

func (self NumberSchema) AsNullable() Schema {
	self.Common = self.Common.AsNullable()
	return self
}

func (self NumberSchema) WithAllowedValues(values []any) Schema {
	self.Common = self.Common.WithAllowedValues(values)
	return self
}

func (self NumberSchema) WithExample(example any) Schema {
	self.Common = self.Common.WithExample(example)
	return self
}

func (self NumberSchema) Map() map[string]any {
	tp := self.Common.rebuildType()
	if self.MultipleOf != nil {
		tp["multipleOf"] = *self.MultipleOf
	}
	rebuildBound(tp, "maximum", "exclusiveMaximum", self.Maximum)
	rebuildBound(tp, "minimum", "exclusiveMinimum", self.Minimum)
	return tp
}

// type = "integer"
func NewInteger(attrs Attrs[IntegerFormat], ctx IntegerContext) IntegerSchema {
	return IntegerSchema{Common: NewCommon(attrs), IntegerContext: ctx}
}

func (self IntegerSchema) Kind() Kind { return KindInteger }
func (IntegerSchema) sealed()         {}

func (self IntegerSchema) AsOptional() Schema {
	self.Common = self.Common.AsOptional()
	return self
}

func (self IntegerSchema) AsRequired() Schema {
	self.Common = self.Common.AsRequired()
	return self
}

func (self IntegerSchema) AsNullable() Schema {
	self.Common = self.Common.AsNullable()
	return self
}

func (self IntegerSchema) WithAllowedValues(values []any) Schema {
	self.Common = self.Common.WithAllowedValues(values)
	return self
}

func (self IntegerSchema) WithExample(example any) Schema {
	self.Common = self.Common.WithExample(example)
	return self
}

func (self IntegerSchema) Map() map[string]any {
	tp := self.Common.rebuildType()
	if self.MultipleOf != nil {
		tp["multipleOf"] = *self.MultipleOf
	}
	rebuildBound(tp, "maximum", "exclusiveMaximum", self.Maximum)
	rebuildBound(tp, "minimum", "exclusiveMinimum", self.Minimum)
	return tp
}

func rebuildBound[T float64 | int64](tp map[string]any, key, exclusiveKey string, bound *Bound[T]) {
	if bound == nil {
		return
	}
	tp[key] = bound.Value
	if bound.Exclusive {
		tp[exclusiveKey] = true
	}
}

// type = "string"
func NewString(attrs Attrs[StringFormat], ctx StringContext) StringSchema {
	return StringSchema{Common: NewCommon(attrs), StringContext: ctx}
}

func (self StringSchema) Kind() Kind { return KindString }
func (StringSchema) sealed()         {}

func (self StringSchema) AsOptional() Schema {
	self.Common = self.Common.AsOptional()
	return self
}

func (self StringSchema) AsRequired() Schema {
	self.Common = self.Common.AsRequired()
	return self
}

func (self StringSchema) AsNullable() Schema {
	self.Common = self.Common.AsNullable()
	return self
}

func (self StringSchema) WithAllowedValues(values []any) Schema {
	self.Common = self.Common.WithAllowedValues(values)
	return self
}

func (self StringSchema) WithExample(example any) Schema {
	self.Common = self.Common.WithExample(example)
	return self
}

func (self StringSchema) Map() map[string]any {
	tp := self.Common.rebuildType()
	if self.MinLength > 0 {
		tp["minLength"] = self.MinLength
	}
	if self.MaxLength != nil {
		tp["maxLength"] = *self.MaxLength
	}
	if self.Pattern != "" {
		tp["pattern"] = self.Pattern
	}
	return tp
}

// type = "allOf"
func NewAllOf(choices ...Schema) AllOfSchema {
	return AllOfSchema{Choices: copySchemas(choices)}
}

func (self AllOfSchema) Kind() Kind { return KindAllOf }
func (AllOfSchema) sealed()         {}

func (AllOfSchema) TypeFormat() (TypeFormat, bool)      { return TypeFormat{}, false }
func (AllOfSchema) IsRequired() bool                    { return true }
func (AllOfSchema) IsNullable() bool                    { return false }
func (AllOfSchema) AllowedValues() []any                { return nil }
func (AllOfSchema) Example() any                        { return nil }
func (self AllOfSchema) AsOptional() Schema             { return self }
func (self AllOfSchema) AsRequired() Schema             { return self }
func (self AllOfSchema) AsNullable() Schema             { return self }
func (self AllOfSchema) WithAllowedValues([]any) Schema { return self }
func (self AllOfSchema) WithExample(any) Schema         { return self }

func (self AllOfSchema) Map() map[string]any {
	return map[string]any{"allOf": rebuildChoices(self.Choices)}
}

// type = "oneOf"
func NewOneOf(choices ...Schema) OneOfSchema {
	return OneOfSchema{Choices: copySchemas(choices)}
}

func (self OneOfSchema) Kind() Kind { return KindOneOf }
func (OneOfSchema) sealed()         {}

func (OneOfSchema) TypeFormat() (TypeFormat, bool)      { return TypeFormat{}, false }
func (OneOfSchema) IsRequired() bool                    { return true }
func (OneOfSchema) IsNullable() bool                    { return false }
func (OneOfSchema) AllowedValues() []any                { return nil }
func (OneOfSchema) Example() any                        { return nil }
func (self OneOfSchema) AsOptional() Schema             { return self }
func (self OneOfSchema) AsRequired() Schema             { return self }
func (self OneOfSchema) AsNullable() Schema             { return self }
func (self OneOfSchema) WithAllowedValues([]any) Schema { return self }
func (self OneOfSchema) WithExample(any) Schema         { return self }

func (self OneOfSchema) Map() map[string]any {
	return map[string]any{"oneOf": rebuildChoices(self.Choices)}
}

// type = "anyOf"
func NewAnyOf(choices ...Schema) AnyOfSchema {
	return AnyOfSchema{Choices: copySchemas(choices)}
}

func (self AnyOfSchema) Kind() Kind { return KindAnyOf }
func (AnyOfSchema) sealed()         {}

func (AnyOfSchema) TypeFormat() (TypeFormat, bool)      { return TypeFormat{}, false }
func (AnyOfSchema) IsRequired() bool                    { return true }
func (AnyOfSchema) IsNullable() bool                    { return false }
func (AnyOfSchema) AllowedValues() []any                { return nil }
func (AnyOfSchema) Example() any                        { return nil }
func (self AnyOfSchema) AsOptional() Schema             { return self }
func (self AnyOfSchema) AsRequired() Schema             { return self }
func (self AnyOfSchema) AsNullable() Schema             { return self }
func (self AnyOfSchema) WithAllowedValues([]any) Schema { return self }
func (self AnyOfSchema) WithExample(any) Schema         { return self }

func (self AnyOfSchema) Map() map[string]any {
	return map[string]any{"anyOf": rebuildChoices(self.Choices)}
}

func copySchemas(choices []Schema) []Schema {
	if len(choices) == 0 {
		return nil
	}
	return append(make([]Schema, 0, len(choices)), choices...)
}

func rebuildChoices(choices []Schema) []any {
	arr := make([]any, 0, len(choices))
	for _, choice := range choices {
		arr = append(arr, choice.Map())
	}
	return arr
}

// type = "not"
func NewNot(child Schema) NotSchema {
	return NotSchema{Child: child}
}

func (self NotSchema) Kind() Kind { return KindNot }
func (NotSchema) sealed()         {}

func (NotSchema) TypeFormat() (TypeFormat, bool)      { return TypeFormat{}, false }
func (NotSchema) IsRequired() bool                    { return true }
func (NotSchema) IsNullable() bool                    { return false }
func (NotSchema) AllowedValues() []any                { return nil }
func (NotSchema) Example() any                        { return nil }
func (self NotSchema) AsOptional() Schema             { return self }
func (self NotSchema) AsRequired() Schema             { return self }
func (self NotSchema) AsNullable() Schema             { return self }
func (self NotSchema) WithAllowedValues([]any) Schema { return self }
func (self NotSchema) WithExample(any) Schema         { return self }

func (self NotSchema) Map() map[string]any {
	return map[string]any{"not": self.Child.Map()}
}

// $ref
func NewReference(ref Reference) ReferenceSchema {
	return ReferenceSchema{Ref: ref}
}

func (self ReferenceSchema) Kind() Kind { return KindReference }
func (ReferenceSchema) sealed()         {}

func (ReferenceSchema) TypeFormat() (TypeFormat, bool)      { return TypeFormat{}, false }
func (ReferenceSchema) IsRequired() bool                    { return true }
func (ReferenceSchema) IsNullable() bool                    { return false }
func (ReferenceSchema) AllowedValues() []any                { return nil }
func (ReferenceSchema) Example() any                        { return nil }
func (self ReferenceSchema) AsOptional() Schema             { return self }
func (self ReferenceSchema) AsRequired() Schema             { return self }
func (self ReferenceSchema) AsNullable() Schema             { return self }
func (self ReferenceSchema) WithAllowedValues([]any) Schema { return self }
func (self ReferenceSchema) WithExample(any) Schema         { return self }

// Map emits the bare pointer, $ref never has sibling keywords
func (self ReferenceSchema) Map() map[string]any {
	return map[string]any{"$ref": self.Ref.String()}
}

// SchemaToString renders a schema as compact JSON, values that cannot
// be marshaled produce an error text instead
func SchemaToString(schema Schema) string {
	data, err := Marshal(schema)
	if err != nil {
		return fmt.Sprintf("<invalid schema: %s>", err)
	}
	return string(data)
}
