package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalk(t *testing.T) {
	assert := assert.New(t)

	paths := []string{}
	Walk(petSchema(), func(path string, s Schema) bool {
		paths = append(paths, path)
		return true
	})
	assert.Equal([]string{
		"",
		".properties.age",
		".properties.flag",
		".properties.kind",
		".properties.kind.oneOf[0]",
		".properties.kind.oneOf[1]",
		".properties.meta",
		".properties.name",
		".properties.score",
		".properties.tag",
		".properties.tags",
		".properties.tags.items",
		".additionalProperties",
		".additionalProperties.not",
	}, paths)
}

func TestWalkSkip(t *testing.T) {
	assert := assert.New(t)

	refs := []string{}
	visited := 0
	Walk(NewAllOf(petSchema(), NewReference(SchemaRef("Base"))), func(path string, s Schema) bool {
		visited++
		if ref, ok := s.(ReferenceSchema); ok {
			refs = append(refs, ref.Ref.Name)
		}
		// do not descend into objects
		return s.Kind() != KindObject
	})
	assert.Equal([]string{"Base"}, refs)
	assert.Equal(3, visited)
}

func TestChildren(t *testing.T) {
	assert := assert.New(t)

	str := NewString(Attrs[StringFormat]{}, StringContext{})
	assert.Equal(0, len(Children(str)))
	assert.Equal(0, len(Children(NewReference(SchemaRef("Pet")))))
	assert.Equal([]Schema{str}, Children(NewNot(str)))
	assert.Equal([]Schema{str}, Children(NewArray(Attrs[ArrayFormat]{}, ArrayContext{Items: str})))
	assert.Equal(0, len(Children(NewArray(Attrs[ArrayFormat]{}, ArrayContext{}))))
	// eight properties and the additionalProperties schema
	assert.Equal(9, len(Children(petSchema())))

	ints := NewInteger(Attrs[IntegerFormat]{}, IntegerContext{})
	assert.Equal([]Schema{str, ints}, Children(NewOneOf(str, ints)))
}
