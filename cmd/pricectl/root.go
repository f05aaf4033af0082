package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/felo-pricing/internal"
	"github.com/DukeRupert/felo-pricing/internal/catalog"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	variant string
	quiet   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "pricectl",
		Short:         "Pricing catalog CLI",
		Long:          "Preview the pricing page in the terminal, check catalogs and export static pages.",
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVarP(&opts.variant, "variant", "v", "", "Catalog variant: standard or classic (default $CATALOG_VARIANT or standard)")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only log warnings and errors")

	root.AddCommand(
		newShowCmd(opts),
		newCheckCmd(opts),
		newExportCmd(opts),
	)
	return root
}

// loadCatalog resolves --variant, then $CATALOG_VARIANT, then the default.
func (o *options) loadCatalog() (*catalog.Catalog, error) {
	name := o.variant
	if name == "" {
		name = os.Getenv("CATALOG_VARIANT")
	}
	if name == "" {
		name = string(catalog.DefaultVariant)
	}

	v, err := catalog.ParseVariant(name)
	if err != nil {
		return nil, err
	}
	return catalog.Load(v)
}

func (o *options) logger(w io.Writer, env, level string) *slog.Logger {
	if o.quiet {
		level = "warn"
	}
	return internal.NewLogger(w, env, level)
}
