package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cardwall/app"
	"cardwall/bootstrap"
	"cardwall/config"
	"cardwall/inspect"
	"cardwall/log"
)

var (
	version = "0.3.1"

	rootCmd = &cobra.Command{
		Use:   "cardwall",
		Short: "Card wall - responsive fit-to-box text, grid steps, and flip cards in your terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("cardwall needs an interactive terminal")
			}

			return app.Run(ctx)
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths and the sample page tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)

			// Activate the behaviors against the sample page at a fixed
			// size and dump the resulting tree.
			doc, container, cards := app.SampleDocument()
			dispose := bootstrap.Activate(doc, cfg)
			defer dispose()
			container.SetClientSize(960, 600)
			for _, card := range cards {
				card.SetClientSize(220, 80)
			}
			doc.Flush()

			fmt.Printf("\nSample page at 960px:\n%s", inspect.Dump(container))

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cardwall",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cardwall version %s\n", version)
		},
	}
)

func init() {
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
