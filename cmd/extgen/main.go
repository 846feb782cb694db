package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "extgen",
		Short: "extgen renders client-side model definitions",
		Long: `extgen translates an entity description (fields, validations,
associations, CRUD bindings) into a model class for one of the supported
client framework generations. Definitions come from JSON/YAML documents or
OpenAPI component schemas.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(dialectsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
