package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/utsabpanta/threejs-obstacle-outrun/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game config",
	Long: `Print the built-in default game config as YAML. Save it to
~/.outrun/configs/outrun.yaml or ./configs/outrun.yaml to customize the game.

With --effective, print the config the game would actually use after the
search path and --config are applied.

Examples:
  outrun config
  outrun config --effective --config ./my-outrun.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded config instead of the defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if !flagEffective {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = w.Write(out)
	return err
}
