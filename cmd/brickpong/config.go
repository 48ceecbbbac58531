package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickpong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective arena config",
	Long: `Print the arena configuration as YAML after applying --config and
--preset. Redirect the output to a file to start a custom arena.

Config search order:
  1. --config path
  2. ~/.brickpong/configs/arena.yaml
  3. ./configs/arena.yaml
  4. built-in defaults

Examples:
  brickpong config
  brickpong config --preset hard > ~/.brickpong/configs/arena.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	data, err := config.Marshal(loadArena())
	if err != nil {
		fatal("%v", err)
	}
	fmt.Print(string(data))
}
