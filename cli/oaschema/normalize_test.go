package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeJson(t *testing.T) {
	assert := assert.New(t)

	out, err := normalize("pet.json", []byte(`{"type": "string", "minLength": 0, "title": "name"}`), normalizeOptions{
		Nullable: true,
		Enum:     []string{"cat", "2"},
		Output:   "json",
	})
	assert.Nil(err)
	assert.Equal(`{
  "enum": [
    "cat",
    2
  ],
  "nullable": true,
  "title": "name",
  "type": "string"
}`, out)
}

func TestNormalizeYaml(t *testing.T) {
	assert := assert.New(t)

	out, err := normalize("", []byte("type: integer\nmaximum: 5\n"), normalizeOptions{
		Example: "3",
		Output:  "yaml",
	})
	assert.Nil(err)
	assert.Equal("example: 3\nmaximum: 5\ntype: integer\n", out)

	_, err = normalize("", []byte(`{"type": "integer"}`), normalizeOptions{Output: "xml"})
	assert.Equal(`unknown output format "xml"`, err.Error())

	_, err = normalize("a.yaml", []byte("title: nothing\n"), normalizeOptions{})
	assert.NotNil(err)
}

func TestIsYamlInput(t *testing.T) {
	assert := assert.New(t)

	assert.True(isYamlInput("a.yml", []byte(`{}`)))
	assert.False(isYamlInput("a.json", []byte("type: string")))
	assert.False(isYamlInput("", []byte("  {\"type\": \"string\"}")))
	assert.True(isYamlInput("", []byte("type: string")))
}
