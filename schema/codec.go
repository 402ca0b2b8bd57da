package schema

import (
	stdjson "encoding/json"

	"github.com/bitly/go-simplejson"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"
)

// ExampleEncoder serializes arbitrary values into JSON text
type ExampleEncoder interface {
	Marshal(v any) ([]byte, error)
}

// JSONEncoder is the default ExampleEncoder
type JSONEncoder struct{}

func (JSONEncoder) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// ToGeneric converts an arbitrary value into its generic JSON form,
// numbers become json.Number.
func ToGeneric(v any, enc ExampleEncoder) (any, error) {
	if enc == nil {
		enc = JSONEncoder{}
	}
	data, err := enc.Marshal(v)
	if err != nil {
		return nil, NewEncodingError(err)
	}
	parsed, err := simplejson.NewJson(data)
	if err != nil {
		return nil, NewEncodingError(errors.Wrap(err, "simplejson.NewJson"))
	}
	return parsed.Interface(), nil
}

// WithEncodedExample attaches an arbitrary value as example after
// converting it to generic JSON with enc. The conversion runs for every
// kind of node, composition and reference nodes then drop the example
// the same way WithExample does.
func WithEncodedExample(schema Schema, v any, enc ExampleEncoder) (Schema, error) {
	example, err := ToGeneric(v, enc)
	if err != nil {
		return nil, err
	}
	return schema.WithExample(example), nil
}

func Marshal(schema Schema) ([]byte, error) {
	data, err := json.Marshal(schema.Map())
	if err != nil {
		return nil, errors.Wrap(err, "json.Marshal")
	}
	return data, nil
}

func MarshalIndent(schema Schema) ([]byte, error) {
	data, err := json.MarshalIndent(schema.Map(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "json.MarshalIndent")
	}
	return data, nil
}

func MarshalYAML(schema Schema) ([]byte, error) {
	data, err := yaml.Marshal(yamlValue(schema.Map()))
	if err != nil {
		return nil, errors.Wrap(err, "yaml.Marshal")
	}
	return data, nil
}

func Unmarshal(data []byte) (Schema, error) {
	return NewSchemaBuilder().BuildBytes(data)
}

func UnmarshalYAML(data []byte) (Schema, error) {
	return NewSchemaBuilder().BuildYamlBytes(data)
}

// yaml would quote json.Number as a string
func yamlValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[k] = yamlValue(elem)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i, elem := range t {
			arr[i] = yamlValue(elem)
		}
		return arr
	case stdjson.Number:
		if iv, err := t.Int64(); err == nil {
			return iv
		}
		if fv, err := t.Float64(); err == nil {
			return fv
		}
		return t.String()
	default:
		return v
	}
}
