// Command klug starts the interactive Klug shell. Flag parsing is
// handled by spf13/cobra rather than go-mix's hardcoded MODE constant
// (go-mix/main/main.go), so the prompt, config path, and colour output
// can be overridden at invocation time instead of at compile time.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klugscript/klug/config"
	"github.com/klugscript/klug/repl"
)

func main() {
	var (
		configPath string
		noColor    bool
		prompt     string
	)

	root := &cobra.Command{
		Use:   "klug",
		Short: "klug is an interactive read-eval-print shell for the Klug language",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "klug: ignoring malformed config at %s: %v\n", configPath, err)
			}
			if noColor {
				cfg.Color = false
			}
			if prompt != "" {
				cfg.Prompt = prompt
			}

			repl.New(cfg).Start(os.Stdout)
			return nil
		},
	}

	home, _ := os.UserHomeDir()
	defaultConfigPath := home + "/.klugrc.yaml"

	root.Flags().StringVar(&configPath, "config", defaultConfigPath, "path to a YAML config file")
	root.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	root.Flags().StringVar(&prompt, "prompt", "", "override the shell prompt")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
