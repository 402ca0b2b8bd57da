package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/superisaac/oaschema"
	"github.com/superisaac/oaschema/schema"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Decode a schema and print it in canonical form",
	Long: `Decode a JSON or YAML schema from file or stdin, optionally
transform the root node, and print the canonical encoding.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
			name string
		)
		if len(args) > 0 && args[0] != "-" {
			name = args[0]
			data, err = os.ReadFile(name)
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return errors.Wrap(err, "read input")
		}

		opts := normalizeOptions{
			MaxDepth: config.GetInt("max-depth"),
			Nullable: config.GetBool("nullable"),
			Optional: config.GetBool("optional"),
			Enum:     config.GetStringSlice("enum"),
			Example:  config.GetString("example"),
			Output:   config.GetString("output"),
		}
		out, err := normalize(name, data, opts)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", strings.TrimRight(out, "\n"))
		return nil
	},
}

func init() {
	flags := normalizeCmd.Flags()
	flags.Int("max-depth", 0, "max nesting of sub schemas, 0 means unlimited")
	flags.Bool("nullable", false, "mark the root schema nullable")
	flags.Bool("optional", false, "mark the root schema optional")
	flags.StringSlice("enum", nil, "allowed values of the root schema, each guessed as JSON")
	flags.String("example", "", "example of the root schema, guessed as JSON")
	flags.StringP("output", "o", "json", "output format, json or yaml")

	for _, key := range []string{"max-depth", "nullable", "optional", "enum", "example", "output"} {
		config.BindPFlag(key, flags.Lookup(key))
	}
}

type normalizeOptions struct {
	MaxDepth int
	Nullable bool
	Optional bool
	Enum     []string
	Example  string
	Output   string
}

// yaml is chosen by file extension, or for stdin when the text does
// not start like a JSON object
func isYamlInput(name string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	case ".json":
		return false
	}
	return !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{"))
}

func normalize(name string, data []byte, opts normalizeOptions) (string, error) {
	builder := schema.NewSchemaBuilder(schema.BuilderOptions{MaxDepth: opts.MaxDepth})

	var (
		s   schema.Schema
		err error
	)
	if isYamlInput(name, data) {
		s, err = builder.BuildYamlBytes(data)
	} else {
		s, err = builder.BuildBytes(data)
	}
	if err != nil {
		return "", err
	}
	log.Debugf("decoded %s schema", s.Kind())

	if opts.Nullable {
		s = s.AsNullable()
	}
	if opts.Optional {
		s = s.AsOptional()
	}
	if len(opts.Enum) > 0 {
		values, err := oaschema.GuessJsonArray(opts.Enum)
		if err != nil {
			return "", err
		}
		s = s.WithAllowedValues(values)
	}
	if opts.Example != "" {
		example, err := oaschema.GuessJson(opts.Example)
		if err != nil {
			return "", err
		}
		if s, err = schema.WithEncodedExample(s, example, nil); err != nil {
			return "", err
		}
	}

	switch opts.Output {
	case "yaml", "yml":
		out, err := schema.MarshalYAML(s)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case "json", "":
		return oaschema.EncodePretty(s)
	default:
		return "", fmt.Errorf("unknown output format %q", opts.Output)
	}
}
