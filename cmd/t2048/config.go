package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the search path, difficulty preset and
log flags are applied. The source line shows which file won.

Search order:
  --config <path> -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> built-in defaults

Use --defaults to print the built-in file as a starting point:
  t2048 config --defaults > ~/.t2048/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if flagConfigDefaults {
			_, err := out.Write(config.DefaultYAML())
			return err
		}

		data, err := config.Marshal(appConfig)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# source: %s\n", appConfigSource)
		_, err = out.Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file")
}
