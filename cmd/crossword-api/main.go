package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "crossword-api",
		Short: "Serve generated crossword puzzles as JSON",
		Long: `crossword-api wraps an external crossword generator. Each GET /api/crossWord
runs the generator once, stamps the result with a puzzle ID and returns it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand())
	root.AddCommand(newGenerateCommand())
	return root
}
