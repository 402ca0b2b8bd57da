package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bitly/go-simplejson"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v3"
)

// composition keys in decode precedence order
var compositeKeys = []string{"allOf", "anyOf", "oneOf", "not"}

// Builder
func NewSchemaBuilder(options ...BuilderOptions) *SchemaBuilder {
	opts := BuilderOptions{}
	if len(options) > 0 {
		opts = options[0]
	}
	return &SchemaBuilder{opts: opts}
}

func (builder *SchemaBuilder) BuildBytes(data []byte) (Schema, error) {
	parsed, err := simplejson.NewJson(data)
	if err != nil {
		return nil, errors.Wrap(err, "simplejson.NewJson")
	}
	return builder.Build(parsed.Interface())
}

// Build decodes a generic JSON value, as produced by encoding/json or
// go-simplejson, into a schema tree. Nothing is returned on failure.
func (builder *SchemaBuilder) Build(data any) (Schema, error) {
	return builder.buildNode(data, 0, nil)
}

// FixYamlMaps turns the map[any]any values yaml may produce into
// map[string]any, non string keys are rejected.
func (builder SchemaBuilder) FixYamlMaps(src any, paths ...string) (any, error) {
	switch v := src.(type) {
	case map[any]any:
		strMap := make(map[string]any, len(v))
		for k, elem := range v {
			sk, ok := k.(string)
			if !ok {
				return nil, NewStructureError("not string key", append(copyPaths(paths), fmt.Sprintf(".%v", k)))
			}
			newElem, err := builder.FixYamlMaps(elem, append(copyPaths(paths), "."+sk)...)
			if err != nil {
				return nil, err
			}
			strMap[sk] = newElem
		}
		return strMap, nil
	case map[string]any:
		strMap := make(map[string]any, len(v))
		for k, elem := range v {
			newElem, err := builder.FixYamlMaps(elem, append(copyPaths(paths), "."+k)...)
			if err != nil {
				return nil, err
			}
			strMap[k] = newElem
		}
		return strMap, nil
	case []any:
		list1 := make([]any, 0, len(v))
		for i, elem := range v {
			newElem, err := builder.FixYamlMaps(elem, append(copyPaths(paths), fmt.Sprintf("[%d]", i))...)
			if err != nil {
				return nil, err
			}
			list1 = append(list1, newElem)
		}
		return list1, nil
	default:
		return src, nil
	}
}

func (builder *SchemaBuilder) BuildYamlInterface(data any) (Schema, error) {
	jsonData, err := builder.FixYamlMaps(data)
	if err != nil {
		return nil, err
	}
	return builder.Build(jsonData)
}

func (builder *SchemaBuilder) BuildYamlBytes(bytes []byte) (Schema, error) {
	var data any
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return nil, errors.Wrap(err, "yaml.Unmarshal")
	}
	return builder.BuildYamlInterface(data)
}

func childPaths(paths []string, elems ...string) []string {
	return append(copyPaths(paths), elems...)
}

func (builder *SchemaBuilder) buildNode(data any, depth int, paths []string) (Schema, error) {
	node, ok := convertTypeMap(data)
	if !ok {
		return nil, NewStructureError("data is not an object", paths)
	}
	if builder.opts.MaxDepth > 0 && depth > builder.opts.MaxDepth {
		return nil, NewStructureError("max depth exceeded", paths)
	}
	return builder.buildNodeMap(node, depth, paths)
}

func (builder *SchemaBuilder) buildNodeMap(node map[string]any, depth int, paths []string) (Schema, error) {
	if _, ok := node["$ref"]; ok {
		return builder.buildReferenceSchema(node, paths)
	}

	found := make([]string, 0, 1)
	for _, key := range compositeKeys {
		if _, ok := node[key]; ok {
			found = append(found, key)
		}
	}
	if len(found) > 1 {
		log.Debugf("schema at %q has keys %s, %s wins", strings.Join(paths, ""), strings.Join(found, ","), found[0])
	}
	if len(found) > 0 {
		switch found[0] {
		case "allOf":
			choices, err := builder.buildChoices(node, "allOf", depth, paths)
			if err != nil {
				return nil, err
			}
			return NewAllOf(choices...), nil
		case "anyOf":
			choices, err := builder.buildChoices(node, "anyOf", depth, paths)
			if err != nil {
				return nil, err
			}
			return NewAnyOf(choices...), nil
		case "oneOf":
			choices, err := builder.buildChoices(node, "oneOf", depth, paths)
			if err != nil {
				return nil, err
			}
			return NewOneOf(choices...), nil
		default:
			child, err := builder.buildNode(node["not"], depth+1, childPaths(paths, ".not"))
			if err != nil {
				return nil, err
			}
			return NewNot(child), nil
		}
	}

	typeName, _ := node["type"].(string)
	nodeType, ok := ParseJSONType(typeName)
	if !ok {
		return nil, NewMissingDiscriminatorError(paths)
	}

	switch nodeType {
	case TypeBoolean:
		common, err := buildCommon[BooleanFormat](node, paths)
		if err != nil {
			return nil, err
		}
		return BooleanSchema{Common: common}, nil
	case TypeObject:
		return builder.buildObjectSchema(node, depth, paths)
	case TypeArray:
		return builder.buildArraySchema(node, depth, paths)
	case TypeNumber:
		return builder.buildNumberSchema(node, paths)
	case TypeInteger:
		return builder.buildIntegerSchema(node, paths)
	default:
		return builder.buildStringSchema(node, paths)
	}
}

func (builder *SchemaBuilder) buildReferenceSchema(node map[string]any, paths []string) (Schema, error) {
	refStr, ok, err := convertAttrString(node, "$ref", paths)
	if err != nil || !ok {
		return nil, err
	}
	if len(node) > 1 {
		log.Debugf("$ref at %q has sibling keys, they are ignored", strings.Join(paths, ""))
	}
	ref, err := ParseReference(refStr)
	if err != nil {
		return nil, err
	}
	return NewReference(ref), nil
}

func (builder *SchemaBuilder) buildChoices(node map[string]any, key string, depth int, paths []string) ([]Schema, error) {
	choiceNodes, _, err := convertAttrList(node, key, paths)
	if err != nil {
		return nil, err
	}
	choices := make([]Schema, 0, len(choiceNodes))
	for i, choiceNode := range choiceNodes {
		c, err := builder.buildNode(choiceNode, depth+1, childPaths(paths, "."+key, fmt.Sprintf("[%d]", i)))
		if err != nil {
			return nil, err
		}
		choices = append(choices, c)
	}
	return choices, nil
}

// buildCommon reads the keys shared by every primitive schema
func buildCommon[F Format](node map[string]any, paths []string) (Common[F], error) {
	attrs := Attrs[F]{}

	format, _, err := convertAttrString(node, "format", paths)
	if err != nil {
		return Common[F]{}, err
	}
	attrs.Format = F(format)

	if attrs.Nullable, _, err = convertAttrBool(node, "nullable", paths); err != nil {
		return Common[F]{}, err
	}
	if attrs.Title, _, err = convertAttrString(node, "title", paths); err != nil {
		return Common[F]{}, err
	}
	if attrs.Description, _, err = convertAttrString(node, "description", paths); err != nil {
		return Common[F]{}, err
	}

	values, ok, err := convertAttrList(node, "enum", paths)
	if err != nil {
		return Common[F]{}, err
	}
	if ok {
		attrs.AllowedValues = values
	}

	attrs.Example = node["example"]
	return NewCommon(attrs), nil
}

func (builder *SchemaBuilder) buildObjectSchema(node map[string]any, depth int, paths []string) (Schema, error) {
	common, err := buildCommon[ObjectFormat](node, paths)
	if err != nil {
		return nil, err
	}
	ctx := ObjectContext{}

	propNodes, hasProps, err := convertAttrMap(node, "properties", paths)
	if err != nil {
		return nil, err
	}
	requireList, hasRequires, err := convertAttrListOfString(node, "required", paths)
	if err != nil {
		return nil, err
	}

	if hasProps {
		requires := make(map[string]bool, len(requireList))
		for _, name := range requireList {
			requires[name] = true
		}

		// sorted so the first failing property is deterministic
		names := make([]string, 0, len(propNodes))
		for name := range propNodes {
			names = append(names, name)
		}
		sort.Strings(names)

		ctx.Properties = make(map[string]Schema, len(propNodes))
		for _, propName := range names {
			child, err := builder.buildNode(propNodes[propName], depth+1, childPaths(paths, ".properties", "."+propName))
			if err != nil {
				return nil, err
			}
			if hasRequires && !requires[propName] {
				child = child.AsOptional()
			}
			ctx.Properties[propName] = child
		}
	}

	if additional, ok := node["additionalProperties"]; ok {
		switch v := additional.(type) {
		case bool:
			ctx.AdditionalProperties = &AdditionalProperties{Allowed: v}
		case map[string]any:
			addSchema, err := builder.buildNode(v, depth+1, childPaths(paths, ".additionalProperties"))
			if err != nil {
				return nil, err
			}
			ctx.AdditionalProperties = &AdditionalProperties{Allowed: true, Schema: addSchema}
		default:
			return nil, NewFieldError("additionalProperties", "a boolean or an object", childPaths(paths, ".additionalProperties"))
		}
	}

	if ctx.MinProperties, _, err = convertAttrCount(node, "minProperties", paths); err != nil {
		return nil, err
	}
	if ctx.MaxProperties, err = optionalCount(node, "maxProperties", paths); err != nil {
		return nil, err
	}
	return ObjectSchema{Common: common, ObjectContext: ctx}, nil
}

func (builder *SchemaBuilder) buildArraySchema(node map[string]any, depth int, paths []string) (Schema, error) {
	common, err := buildCommon[ArrayFormat](node, paths)
	if err != nil {
		return nil, err
	}
	ctx := ArrayContext{}

	if items, ok := node["items"]; ok {
		itemSchema, err := builder.buildNode(items, depth+1, childPaths(paths, ".items"))
		if err != nil {
			return nil, err
		}
		ctx.Items = itemSchema
	}

	if ctx.MinItems, _, err = convertAttrCount(node, "minItems", paths); err != nil {
		return nil, err
	}
	if ctx.MaxItems, err = optionalCount(node, "maxItems", paths); err != nil {
		return nil, err
	}
	if ctx.UniqueItems, _, err = convertAttrBool(node, "uniqueItems", paths); err != nil {
		return nil, err
	}
	return ArraySchema{Common: common, ArrayContext: ctx}, nil
}

func (builder *SchemaBuilder) buildNumberSchema(node map[string]any, paths []string) (Schema, error) {
	common, err := buildCommon[NumberFormat](node, paths)
	if err != nil {
		return nil, err
	}
	ctx := NumericContext{}

	if multipleOf, ok, err := convertAttrFloat(node, "multipleOf", paths); err != nil {
		return nil, err
	} else if ok {
		ctx.MultipleOf = &multipleOf
	}
	if ctx.Maximum, err = buildBound(node, "maximum", "exclusiveMaximum", paths, convertAttrFloat); err != nil {
		return nil, err
	}
	if ctx.Minimum, err = buildBound(node, "minimum", "exclusiveMinimum", paths, convertAttrFloat); err != nil {
		return nil, err
	}
	return NumberSchema{Common: common, NumericContext: ctx}, nil
}

func (builder *SchemaBuilder) buildIntegerSchema(node map[string]any, paths []string) (Schema, error) {
	common, err := buildCommon[IntegerFormat](node, paths)
	if err != nil {
		return nil, err
	}
	ctx := IntegerContext{}

	if multipleOf, ok, err := convertAttrInt64(node, "multipleOf", paths); err != nil {
		return nil, err
	} else if ok {
		ctx.MultipleOf = &multipleOf
	}
	if ctx.Maximum, err = buildBound(node, "maximum", "exclusiveMaximum", paths, convertAttrInt64); err != nil {
		return nil, err
	}
	if ctx.Minimum, err = buildBound(node, "minimum", "exclusiveMinimum", paths, convertAttrInt64); err != nil {
		return nil, err
	}
	return IntegerSchema{Common: common, IntegerContext: ctx}, nil
}

func (builder *SchemaBuilder) buildStringSchema(node map[string]any, paths []string) (Schema, error) {
	common, err := buildCommon[StringFormat](node, paths)
	if err != nil {
		return nil, err
	}
	ctx := StringContext{}

	if ctx.MinLength, _, err = convertAttrCount(node, "minLength", paths); err != nil {
		return nil, err
	}
	if ctx.MaxLength, err = optionalCount(node, "maxLength", paths); err != nil {
		return nil, err
	}
	if ctx.Pattern, _, err = convertAttrString(node, "pattern", paths); err != nil {
		return nil, err
	}
	return StringSchema{Common: common, StringContext: ctx}, nil
}

// an exclusive flag without its bound is ignored
func buildBound[T float64 | int64](
	node map[string]any,
	key, exclusiveKey string,
	paths []string,
	convert func(map[string]any, string, []string) (T, bool, error),
) (*Bound[T], error) {
	exclusive, _, err := convertAttrBool(node, exclusiveKey, paths)
	if err != nil {
		return nil, err
	}
	value, ok, err := convert(node, key, paths)
	if err != nil || !ok {
		return nil, err
	}
	return &Bound[T]{Value: value, Exclusive: exclusive}, nil
}

func optionalCount(node map[string]any, attrName string, paths []string) (*int, error) {
	n, ok, err := convertAttrCount(node, attrName, paths)
	if err != nil || !ok {
		return nil, err
	}
	return &n, nil
}
