package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/lectern/internal/application/usecase"
	"github.com/bnema/lectern/internal/cli/styles"
	"github.com/bnema/lectern/internal/infrastructure/config"
)

var (
	configKeysSection string
	configKeysJSON    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long: `Show where the configuration lives, its effective values and every
supported key.

The config file is created with defaults on first run and watched while
presenting or serving: edits apply without a restart.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderConfigInfo(app.Manager.ConfigFile()))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		data, err := yaml.Marshal(app.Config)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all configuration keys",
	Long: `List every configuration key with its type, default and description.

Examples:
  lectern config keys                        # All keys
  lectern config keys --section presentation # One section
  lectern config keys --json                 # Machine readable`,
	Args: cobra.NoArgs,
	RunE: runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configKeysCmd)
	configKeysCmd.Flags().StringVarP(&configKeysSection, "section", "s", "", "only show keys of this section")
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "output as JSON")
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	output, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}
	if len(output.Keys) == 0 {
		return fmt.Errorf("no config keys in section %q", configKeysSection)
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		out, err := renderer.RenderJSON(output.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.Render(output.Keys, output.Sections))
	return nil
}
