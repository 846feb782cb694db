package main

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/leonidagapkin/extclassgenerator/internal/definition"
	"github.com/leonidagapkin/extclassgenerator/internal/openapi"
	"github.com/leonidagapkin/extclassgenerator/pkg/dialect"
	"github.com/leonidagapkin/extclassgenerator/pkg/generator"
	"github.com/leonidagapkin/extclassgenerator/pkg/model"
)

func generateCmd() *cobra.Command {
	var (
		format       string
		output       string
		fromOpenAPI  bool
		schemaName   string
		modelName    string
		debug        bool
		singleQuotes bool
		quoteAPI     bool
		dumpModel    bool
	)

	cmd := &cobra.Command{
		Use:   "generate <definition-file>",
		Short: "Render a model definition to a client model class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loadDefinition(cmd, args[0], fromOpenAPI, schemaName, modelName)
			if err != nil {
				return err
			}

			if dumpModel {
				spew.Fdump(cmd.ErrOrStderr(), def)
			}

			if format == "" {
				if err := promptFormat(&format); err != nil {
					return fmt.Errorf("select output format: %w", err)
				}
			}

			rendered, err := generator.Render(cmd.Context(), def, format, generator.Options{
				Debug:                 debug,
				UseSingleQuotes:       singleQuotes,
				SurroundAPIWithQuotes: quoteAPI,
			})
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(rendered))
				return nil
			}
			if err := os.WriteFile(output, rendered, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "wrote %s (%s)\n", output, format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (extjs4, extjs5, touch2); prompts when omitted")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&fromOpenAPI, "openapi", false, "treat the input as an OpenAPI document")
	cmd.Flags().StringVar(&schemaName, "schema", "", "component schema to import (with --openapi)")
	cmd.Flags().StringVar(&modelName, "model-name", "", "override the generated class name (with --openapi)")
	cmd.Flags().BoolVar(&debug, "debug", false, "pretty-print the output")
	cmd.Flags().BoolVar(&singleQuotes, "single-quotes", false, "use single-quoted string literals")
	cmd.Flags().BoolVar(&quoteAPI, "quote-api", false, "surround CRUD method references with quotes")
	cmd.Flags().BoolVar(&dumpModel, "dump-model", false, "dump the resolved model to stderr before rendering")

	return cmd
}

func loadDefinition(cmd *cobra.Command, path string, fromOpenAPI bool, schemaName, modelName string) (*model.ModelDefinition, error) {
	if !fromOpenAPI {
		return definition.Load(path)
	}
	if schemaName == "" {
		return nil, fmt.Errorf("--schema is required with --openapi")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read openapi document: %w", err)
	}
	return openapi.ImportSchema(cmd.Context(), data, openapi.ImportOptions{
		SchemaName: schemaName,
		ModelName:  modelName,
	})
}

func promptFormat(format *string) error {
	prompt := &survey.Select{
		Message: "Output format:",
		Options: generator.DefaultRegistry().List(),
	}
	return survey.AskOne(prompt, format)
}

func dialectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported output formats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bold := color.New(color.Bold)
			for _, profile := range dialect.Profiles() {
				bold.Fprintf(cmd.OutOrStdout(), "%s", profile.Name)
				fmt.Fprintf(cmd.OutOrStdout(), "\troot key %q", profile.RootKey)
				if profile.ClassConfig {
					fmt.Fprint(cmd.OutOrStdout(), ", class-config body")
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
