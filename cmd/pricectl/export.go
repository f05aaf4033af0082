package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/felo-pricing/internal"
	"github.com/DukeRupert/felo-pricing/internal/cli"
	"github.com/DukeRupert/felo-pricing/internal/export"
	"github.com/DukeRupert/felo-pricing/internal/handler"
	"github.com/DukeRupert/felo-pricing/internal/storage"
	"github.com/DukeRupert/felo-pricing/web"
)

func newExportCmd(opts *options) *cobra.Command {
	var (
		outDir      string
		concurrency int
		timeout     time.Duration
		noOverwrite bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every segment and currency to static HTML in the configured storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := internal.NewConfig()
			if err != nil {
				return fmt.Errorf("config initialization failed: %w", err)
			}
			logger := opts.logger(cmd.ErrOrStderr(), cfg.Env, cfg.LogLevel)

			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			if err := cat.Validate(); err != nil {
				return fmt.Errorf("catalog %s is invalid: %w", cat.Variant(), err)
			}

			provider := cfg.StorageProvider
			local := storage.LocalConfig{BasePath: cfg.LocalStoragePath, BaseURL: cfg.LocalStorageURL}
			if outDir != "" {
				provider = storage.ProviderLocal
				local = storage.LocalConfig{BasePath: outDir}
			}

			store, err := storage.New(provider, local, storage.R2Config{
				AccountID:       cfg.R2AccountID,
				AccessKeyID:     cfg.R2AccessKeyID,
				SecretAccessKey: cfg.R2SecretAccessKey,
				BucketName:      cfg.R2BucketName,
				PublicURL:       cfg.R2PublicURL,
			}, logger)
			if err != nil {
				return fmt.Errorf("storage initialization failed: %w", err)
			}

			renderer, err := handler.NewRenderer(handler.RendererConfig{
				TemplatesDir: cfg.TemplatesDir,
				FS:           web.TemplateFS(),
				Logger:       logger,
			})
			if err != nil {
				return fmt.Errorf("renderer initialization failed: %w", err)
			}

			exportCfg := export.DefaultConfig()
			exportCfg.Concurrency = concurrency
			exportCfg.Timeout = timeout
			exportCfg.Overwrite = !noOverwrite

			exporter, err := export.New(cat, renderer, store, web.StaticFS(), exportCfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			m, err := exporter.Run(ctx)
			if err != nil {
				return err
			}

			printManifest(cmd, m)
			return nil
		},
	}

	defaults := export.DefaultConfig()
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Export to this directory instead of the configured storage")
	cmd.Flags().IntVar(&concurrency, "concurrency", defaults.Concurrency, "Pages rendered and uploaded in parallel")
	cmd.Flags().DurationVar(&timeout, "timeout", defaults.Timeout, "Deadline for the whole export")
	cmd.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "Fail instead of replacing existing objects")
	return cmd
}

func printManifest(cmd *cobra.Command, m *export.Manifest) {
	rows := make([][]string, 0, len(m.Pages))
	for _, p := range m.Pages {
		rows = append(rows, []string{p.Segment, p.Currency, p.Key, cli.FormatBytes(p.Size)})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.RenderTitle("EXPORT "+m.Variant+"  "+m.RunID))
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Segment", "Currency", "Key", "Size"},
		Rows:    rows,
	}))
	fmt.Fprintf(out, "  index: %s  assets: %d  pruned: %d\n", m.Index, len(m.Assets), len(m.Pruned))
}
