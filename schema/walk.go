package schema

import (
	"fmt"
	"sort"
)

type childNode struct {
	path   string
	schema Schema
}

func (BooleanSchema) children() []childNode { return nil }
func (NumberSchema) children() []childNode  { return nil }
func (IntegerSchema) children() []childNode { return nil }
func (StringSchema) children() []childNode  { return nil }

func (ReferenceSchema) children() []childNode { return nil }

func (self ObjectSchema) children() []childNode {
	names := make([]string, 0, len(self.Properties))
	for name := range self.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	nodes := make([]childNode, 0, len(names)+1)
	for _, name := range names {
		nodes = append(nodes, childNode{path: ".properties." + name, schema: self.Properties[name]})
	}
	if ap := self.AdditionalProperties; ap != nil && ap.Schema != nil {
		nodes = append(nodes, childNode{path: ".additionalProperties", schema: ap.Schema})
	}
	return nodes
}

func (self ArraySchema) children() []childNode {
	if self.Items == nil {
		return nil
	}
	return []childNode{{path: ".items", schema: self.Items}}
}

func (self AllOfSchema) children() []childNode { return choiceNodes("allOf", self.Choices) }
func (self OneOfSchema) children() []childNode { return choiceNodes("oneOf", self.Choices) }
func (self AnyOfSchema) children() []childNode { return choiceNodes("anyOf", self.Choices) }

func (self NotSchema) children() []childNode {
	return []childNode{{path: ".not", schema: self.Child}}
}

func choiceNodes(key string, choices []Schema) []childNode {
	nodes := make([]childNode, 0, len(choices))
	for i, c := range choices {
		nodes = append(nodes, childNode{path: fmt.Sprintf(".%s[%d]", key, i), schema: c})
	}
	return nodes
}

// Children returns the direct sub schemas of a node, object properties
// come in name order followed by the additionalProperties schema.
func Children(schema Schema) []Schema {
	nodes := schema.children()
	arr := make([]Schema, 0, len(nodes))
	for _, n := range nodes {
		arr = append(arr, n.schema)
	}
	return arr
}

// Walk visits the tree depth first. The root has an empty path; when
// fn returns false the children of that node are skipped.
func Walk(schema Schema, fn func(path string, s Schema) bool) {
	walk("", schema, fn)
}

func walk(path string, schema Schema, fn func(path string, s Schema) bool) {
	if !fn(path, schema) {
		return
	}
	for _, n := range schema.children() {
		walk(path+n.path, n.schema, fn)
	}
}
