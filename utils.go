package oaschema

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/superisaac/oaschema/schema"
)

func MarshalJson(data interface{}) (string, error) {
	marshaled, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(marshaled), nil
}

// EncodePretty renders a schema as indented JSON
func EncodePretty(s schema.Schema) (string, error) {
	data, err := schema.MarshalIndent(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GuessJson reads a command line argument as a JSON value, falling
// back to the raw string.
func GuessJson(input string) (interface{}, error) {
	if len(input) == 0 {
		return "", nil
	}
	if input == "true" || input == "false" {
		bv, _ := strconv.ParseBool(input)
		return bv, nil
	}
	if input == "null" {
		return nil, nil
	}

	iv, err := strconv.ParseInt(input, 10, 64)
	if err == nil {
		return iv, nil
	}
	fv, err := strconv.ParseFloat(input, 64)
	if err == nil {
		return fv, nil
	}

	fc := input[0]
	if fc == '[' || fc == '{' || fc == '"' {
		var v interface{}
		dec := json.NewDecoder(strings.NewReader(input))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, errors.Wrap(err, "decode json argument")
		}
		return v, nil
	}
	return input, nil
}

func GuessJsonArray(inputArr []string) ([]interface{}, error) {
	arr := make([]interface{}, 0, len(inputArr))
	for _, input := range inputArr {
		v, err := GuessJson(input)
		if err != nil {
			return arr, err
		}
		arr = append(arr, v)
	}
	return arr, nil
}

func DecodeInterface(input interface{}, output interface{}) error {
	config := &mapstructure.DecoderConfig{
		Metadata:         nil,
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           output,
	}
	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return errors.Wrap(err, "decode interface")
	}
	return decoder.Decode(input)
}

// DecodeExample decodes the example attached to a schema into output,
// the struct fields are matched by their json tags.
func DecodeExample(s schema.Schema, output interface{}) error {
	example := s.Example()
	if example == nil {
		return errors.New("schema has no example")
	}
	return DecodeInterface(example, output)
}
