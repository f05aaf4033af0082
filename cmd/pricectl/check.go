package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/felo-pricing/internal/catalog"
	"github.com/DukeRupert/felo-pricing/internal/cli"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate catalogs (all variants unless --variant is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variants := []catalog.Variant{catalog.VariantStandard, catalog.VariantClassic}
			if opts.variant != "" {
				cat, err := opts.loadCatalog()
				if err != nil {
					return err
				}
				variants = []catalog.Variant{cat.Variant()}
			}

			var rows [][]string
			var failed []string
			for _, v := range variants {
				cat, err := catalog.Load(v)
				if err != nil {
					return err
				}

				plans := 0
				for _, seg := range cat.Segments() {
					plans += len(cat.Plans(seg))
				}

				status := "ok"
				if err := cat.Validate(); err != nil {
					status = "invalid"
					failed = append(failed, fmt.Sprintf("%s: %v", v, err))
				}

				rows = append(rows, []string{
					v.String(),
					strconv.Itoa(len(cat.Segments())),
					strconv.Itoa(len(cat.Currencies())),
					strconv.Itoa(plans),
					strconv.Itoa(len(cat.AddOns())),
					status,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, cli.RenderTable(cli.Table{
				Title:   "Catalogs",
				Headers: []string{"Variant", "Segments", "Currencies", "Plans", "Add-ons", "Status"},
				Rows:    rows,
			}))

			if len(failed) > 0 {
				return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(failed, "\n  "))
			}
			return nil
		},
	}
}
