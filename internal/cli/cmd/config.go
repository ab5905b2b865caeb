package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/drawerpane/internal/cli/styles"
	"github.com/bnema/drawerpane/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the effective configuration or print its JSON schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration drawerpane runs with: the config file merged
with defaults and DRAWERPANE_* environment overrides.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long:  `Print the JSON schema, for editor completion and validation of config.yaml.`,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewRenderer(app.Theme)
	data, err := config.Marshal(app.Config)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}

	path := ""
	if app.Manager != nil {
		path = app.Manager.GetConfigFile()
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderConfig(path, data))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
