package cmd

import (
	"encoding/json"
	"os"

	"github.com/anipeek/anipeek/present"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the --json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := jsonschema.Reflector{ExpandedStruct: true}
		schema := reflector.Reflect(&present.Output{})
		schema.Title = "anipeek lookup"

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
