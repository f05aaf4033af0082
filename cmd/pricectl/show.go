package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/felo-pricing/internal/cli"
	"github.com/DukeRupert/felo-pricing/internal/domain"
	"github.com/DukeRupert/felo-pricing/internal/pricing"
)

func newShowCmd(opts *options) *cobra.Command {
	var (
		segment  string
		currency string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the pricing page for one segment and currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			state, err := pricing.ParseViewState(cat, segment, currency)
			if err != nil {
				return selectionError(err)
			}
			page := pricing.BuildPage(cat, state, time.Now())

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(page)
			}

			fmt.Fprintln(out)
			fmt.Fprint(out, cli.RenderPage(page))
			return nil
		},
	}

	cmd.Flags().StringVarP(&segment, "segment", "s", "", "Segment tab: personal, business or enterprise")
	cmd.Flags().StringVarP(&currency, "currency", "c", "", "Currency code, e.g. JPY or USD")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the page model as JSON")
	return cmd
}

// selectionError flattens field errors into one line, fields sorted.
func selectionError(err error) error {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	fields := make([]string, 0, len(ve.Fields))
	for f := range ve.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msg := "invalid selection:"
	for _, f := range fields {
		msg += fmt.Sprintf(" %s: %s;", f, ve.Fields[f])
	}
	return errors.New(msg[:len(msg)-1])
}
