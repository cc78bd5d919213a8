package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	httpadapter "svw.info/crossword/internal/adapters/http"
	"svw.info/crossword/internal/config"
)

func newGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate one puzzle and print the response body",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// keep stdout for the JSON body
			if cfg.LogOutput == "" || cfg.LogOutput == "stdout" {
				cfg.LogOutput = "stderr"
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()
			return generateOnce(cmd.Context(), a, cmd.OutOrStdout())
		},
	}
}

func generateOnce(ctx context.Context, a *app, out io.Writer) error {
	resp, genErr := a.svc.Generate(ctx)
	status, body := httpadapter.Render(resp, genErr)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(body); err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("generation failed with status %d", status)
	}
	return nil
}
