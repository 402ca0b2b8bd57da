package schema

import (
	"fmt"
	"strings"
)

// ComponentKind names a table under `#/components/`
type ComponentKind string

const (
	ComponentSchemas         ComponentKind = "schemas"
	ComponentResponses       ComponentKind = "responses"
	ComponentParameters      ComponentKind = "parameters"
	ComponentExamples        ComponentKind = "examples"
	ComponentRequestBodies   ComponentKind = "requestBodies"
	ComponentHeaders         ComponentKind = "headers"
	ComponentSecuritySchemes ComponentKind = "securitySchemes"
	ComponentLinks           ComponentKind = "links"
	ComponentCallbacks       ComponentKind = "callbacks"
)

const componentsPrefix = "#/components/"

var componentKinds = []ComponentKind{
	ComponentSchemas,
	ComponentResponses,
	ComponentParameters,
	ComponentExamples,
	ComponentRequestBodies,
	ComponentHeaders,
	ComponentSecuritySchemes,
	ComponentLinks,
	ComponentCallbacks,
}

func (k ComponentKind) Valid() bool {
	for _, ck := range componentKinds {
		if ck == k {
			return true
		}
	}
	return false
}

// Reference is an unresolved pointer into a components table
type Reference struct {
	Kind ComponentKind
	Name string
}

func SchemaRef(name string) Reference {
	return Reference{Kind: ComponentSchemas, Name: name}
}

func (ref Reference) String() string {
	return componentsPrefix + string(ref.Kind) + "/" + escapeRefToken(ref.Name)
}

// ParseReference parses a local `#/components/<kind>/<name>` pointer
func ParseReference(ref string) (Reference, error) {
	if !strings.HasPrefix(ref, componentsPrefix) {
		return Reference{}, NewReferenceError(ref, "not a local components reference")
	}
	parts := strings.Split(strings.TrimPrefix(ref, componentsPrefix), "/")
	if len(parts) != 2 {
		return Reference{}, NewReferenceError(ref, "expect #/components/<kind>/<name>")
	}
	kind := ComponentKind(parts[0])
	if !kind.Valid() {
		return Reference{}, NewReferenceError(ref, fmt.Sprintf("unknown component kind %q", parts[0]))
	}
	if parts[1] == "" {
		return Reference{}, NewReferenceError(ref, "empty component name")
	}
	return Reference{Kind: kind, Name: unescapeRefToken(parts[1])}, nil
}

// JSON pointer escaping, RFC 6901
func escapeRefToken(token string) string {
	return strings.ReplaceAll(strings.ReplaceAll(token, "~", "~0"), "/", "~1")
}

func unescapeRefToken(token string) string {
	return strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")
}

// Lookup is implemented by whatever owns the named component
// schemas. Nothing in this package resolves references by itself.
type Lookup interface {
	LookupSchema(name string) (Schema, bool)
}

// Components is an in-memory schemas table
type Components map[string]Schema

func (c Components) LookupSchema(name string) (Schema, bool) {
	s, ok := c[name]
	return s, ok
}
