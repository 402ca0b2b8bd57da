package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func primitiveSchemas() []Schema {
	return []Schema{
		NewBoolean(Attrs[BooleanFormat]{}),
		NewObject(Attrs[ObjectFormat]{}, ObjectContext{}),
		NewArray(Attrs[ArrayFormat]{}, ArrayContext{Items: NewString(Attrs[StringFormat]{}, StringContext{})}),
		NewNumber(Attrs[NumberFormat]{Format: NumberDouble}, NumericContext{}),
		NewInteger(Attrs[IntegerFormat]{Format: IntegerInt64}, IntegerContext{}),
		NewString(Attrs[StringFormat]{}, StringContext{MinLength: 1}),
	}
}

func compositeSchemas() []Schema {
	str := NewString(Attrs[StringFormat]{}, StringContext{})
	return []Schema{
		NewAllOf(str, str),
		NewOneOf(str),
		NewAnyOf(str),
		NewNot(str),
		NewReference(SchemaRef("Pet")),
	}
}

func TestRequiredToggle(t *testing.T) {
	assert := assert.New(t)

	for _, s := range primitiveSchemas() {
		assert.True(s.IsRequired(), s.Kind().String())
		assert.False(s.IsNullable(), s.Kind().String())

		optional := s.AsOptional()
		assert.False(optional.IsRequired(), s.Kind().String())
		assert.Equal(s.Kind(), optional.Kind())
		assert.True(optional.AsRequired().IsRequired(), s.Kind().String())
		assert.Equal(s, optional.AsRequired())

		// s itself is untouched
		assert.True(s.IsRequired(), s.Kind().String())

		nullable := s.AsNullable()
		assert.True(nullable.IsNullable(), s.Kind().String())
		assert.False(s.IsNullable(), s.Kind().String())
	}

	for _, s := range compositeSchemas() {
		assert.True(s.AsOptional().IsRequired(), s.Kind().String())
		assert.False(s.AsNullable().IsNullable(), s.Kind().String())
		assert.Equal(s, s.AsOptional())
		assert.Equal(s, s.AsNullable())
		assert.Equal(s, s.AsRequired())
	}
}

func TestAllowedValues(t *testing.T) {
	assert := assert.New(t)

	for _, s := range primitiveSchemas() {
		assert.Nil(s.AllowedValues())

		values := []any{"a", json.Number("1"), nil}
		s1 := s.WithAllowedValues(values)
		assert.Equal([]any{"a", json.Number("1"), nil}, s1.AllowedValues())

		// the node keeps its own copy
		values[0] = "z"
		assert.Equal("a", s1.AllowedValues()[0])
		s1.AllowedValues()[1] = "changed"
		assert.Equal(json.Number("1"), s1.AllowedValues()[1])

		// an empty list is kept as given
		s2 := s.WithAllowedValues([]any{})
		assert.NotNil(s2.AllowedValues())
		assert.Equal(0, len(s2.AllowedValues()))
	}

	for _, s := range compositeSchemas() {
		s1 := s.WithAllowedValues([]any{"a"})
		assert.Nil(s1.AllowedValues())
		assert.Equal(s, s1)
	}
}

func TestExample(t *testing.T) {
	assert := assert.New(t)

	example := map[string]any{"name": "rex"}
	for _, s := range primitiveSchemas() {
		assert.Nil(s.Example())
		assert.Equal(example, s.WithExample(example).Example())
	}

	// composition and reference nodes silently drop the example
	for _, s := range compositeSchemas() {
		s1 := s.WithExample(example)
		assert.Nil(s1.Example())
		assert.Equal(s, s1)
	}
}

func TestTypeFormat(t *testing.T) {
	assert := assert.New(t)

	tf, ok := NewInteger(Attrs[IntegerFormat]{Format: IntegerInt32}, IntegerContext{}).TypeFormat()
	assert.True(ok)
	assert.Equal(TypeFormat{Type: TypeInteger, Format: "int32"}, tf)

	tf, ok = NewString(Attrs[StringFormat]{Format: "uuid"}, StringContext{}).TypeFormat()
	assert.True(ok)
	assert.Equal(TypeFormat{Type: TypeString, Format: "uuid"}, tf)

	tf, ok = NewBoolean(Attrs[BooleanFormat]{}).TypeFormat()
	assert.True(ok)
	assert.Equal("boolean", tf.Type.String())
	assert.Equal("", tf.Format)

	for _, s := range compositeSchemas() {
		_, ok := s.TypeFormat()
		assert.False(ok, s.Kind().String())
	}
}

func TestKindString(t *testing.T) {
	assert := assert.New(t)

	kinds := []string{}
	for _, s := range primitiveSchemas() {
		kinds = append(kinds, s.Kind().String())
	}
	for _, s := range compositeSchemas() {
		kinds = append(kinds, s.Kind().String())
	}
	assert.Equal([]string{
		"boolean", "object", "array", "number", "integer", "string",
		"allOf", "oneOf", "anyOf", "not", "reference"}, kinds)
	assert.Equal("unknown", Kind(99).String())
}

func TestCommonAttrs(t *testing.T) {
	assert := assert.New(t)

	attrs := Attrs[StringFormat]{
		Format:        StringDateTime,
		Optional:      true,
		Title:         "created",
		Description:   "creation time",
		AllowedValues: []any{"2020-01-01T00:00:00Z"},
		Example:       "2020-01-01T00:00:00Z",
	}
	c := NewCommon(attrs)
	assert.False(c.IsRequired())
	assert.False(c.IsNullable())
	assert.Equal(StringDateTime, c.Format())
	assert.Equal("created", c.Title())
	assert.Equal("creation time", c.Description())
	assert.Equal(attrs, c.Attrs())

	// defaults
	c2 := NewCommon(Attrs[NumberFormat]{})
	assert.True(c2.IsRequired())
	assert.False(c2.IsNullable())
	assert.Nil(c2.AllowedValues())
	assert.Nil(c2.Example())
	assert.Equal(NumberFormat(""), c2.Format())
}

func TestContextsSurviveTransforms(t *testing.T) {
	assert := assert.New(t)

	maxLength := 8
	s := NewString(Attrs[StringFormat]{}, StringContext{MinLength: 2, MaxLength: &maxLength, Pattern: "^[a-z]+$"})
	s1, ok := s.AsOptional().AsNullable().WithAllowedValues([]any{"ab"}).(StringSchema)
	assert.True(ok)
	assert.Equal(s.StringContext, s1.StringContext)
	assert.False(s1.IsRequired())
	assert.True(s1.IsNullable())
}

func TestObjectOwnsProperties(t *testing.T) {
	assert := assert.New(t)

	props := map[string]Schema{"a": NewString(Attrs[StringFormat]{}, StringContext{})}
	s := NewObject(Attrs[ObjectFormat]{}, ObjectContext{Properties: props})
	nullable := s.AsNullable().(ObjectSchema)

	props["b"] = NewBoolean(Attrs[BooleanFormat]{})
	delete(props, "a")
	assert.Equal(1, len(s.Properties))
	assert.Equal(1, len(nullable.Properties))
	assert.Equal(KindString, s.Properties["a"].Kind())

	// an empty table stays empty, not absent
	empty := NewObject(Attrs[ObjectFormat]{}, ObjectContext{Properties: map[string]Schema{}})
	assert.NotNil(empty.Properties)
	assert.Nil(NewObject(Attrs[ObjectFormat]{}, ObjectContext{}).Properties)
}
