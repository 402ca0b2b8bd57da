package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/superisaac/oaschema/schema"
)

var refCmd = &cobra.Command{
	Use:   "ref <pointer>",
	Short: "Parse a $ref pointer and print its component kind and name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := schema.ParseReference(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("kind: %s\nname: %s\n", ref.Kind, ref.Name)
		return nil
	},
}
