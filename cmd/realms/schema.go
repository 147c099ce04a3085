package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tree-of-realms/internal/config"
	"github.com/vovakirdan/tree-of-realms/internal/games/realms"
)

var flagSchemaDefaults bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the realms config JSON Schema",
	Long: `Print the JSON Schema of the realms config file, for editor
completion and validation. With --defaults, print the built-in config as
YAML instead; it is a starting point for ~/.arcade/configs/realms.yaml.

Examples:
  realms schema > realms.schema.json
  realms schema --defaults > ~/.arcade/configs/realms.yaml`,
	Args: cobra.NoArgs,
	Run:  runSchema,
}

func init() {
	schemaCmd.Flags().BoolVar(&flagSchemaDefaults, "defaults", false, "Print the default config YAML instead")
}

func runSchema(_ *cobra.Command, _ []string) {
	if flagSchemaDefaults {
		fmt.Print(string(config.GetDefaultYAML(realms.GameID)))
		return
	}

	data, err := config.SchemaJSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
