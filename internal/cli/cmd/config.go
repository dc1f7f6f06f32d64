package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/servicestudio/shell/internal/cli/styles"
	"github.com/servicestudio/shell/internal/infrastructure/config"
)

var configSchemaOut string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
	Long:  `Show where the config file lives, print the effective settings, validate the file or write its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults and SERVICESTUDIO_* environment overrides.`,
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file",
	RunE:  runConfigValidate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or write the JSON schema of the config file",
	Long: `Print the JSON schema of config.toml, for editor completion.

With --output, write it to a file instead.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().StringVarP(&configSchemaOut, "output", "o", "", "write the schema to this file")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path, err := configFilePath()
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPath(path))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if app.LoadErr != nil {
		fmt.Fprint(cmd.ErrOrStderr(), styles.NewConfigRenderer(app.Theme).RenderError(app.LoadErr))
	}

	data, err := config.EncodeConfig(app.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	if app.LoadErr != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(app.LoadErr))
		return fmt.Errorf("config is invalid")
	}
	path, err := configFilePath()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderValid(path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	if configSchemaOut == "" {
		_, err = cmd.OutOrStdout().Write(append(schema, '\n'))
		return err
	}

	if err := os.WriteFile(configSchemaOut, schema, 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	app := GetApp()
	if app != nil {
		fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(configSchemaOut))
	}
	return nil
}

func configFilePath() (string, error) {
	if app := GetApp(); app != nil && app.Manager != nil {
		return app.Manager.ConfigPath(), nil
	}
	return config.GetConfigFile()
}
