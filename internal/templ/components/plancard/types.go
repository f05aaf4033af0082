// Package plancard provides the templ components of the plan section:
// plan cards, the plan summary table and the add-on table.
package plancard

import "github.com/DukeRupert/felo-pricing/internal/pricing"

// SectionData contains everything the plan section needs for one state.
type SectionData struct {
	Cards      []pricing.PlanCard // Cards in display order
	SingleCard bool               // Enterprise layout (one wide card)

	PlanTableTitle string            // Empty hides the plan summary table
	PlanTableUnit  string            // Price column header
	PlanTable      []pricing.PlanRow // Plan summary rows

	ShowAddOns       bool               // Whether the add-on table is rendered
	ShowAddOnMinutes bool               // Adds the minutes column
	AddOnPriceHeader string             // Price column header
	AddOns           []pricing.AddOnRow // Add-on rows
}

// FromPage converts the page view model to section data.
func FromPage(p pricing.Page) SectionData {
	return SectionData{
		Cards:            p.Cards,
		SingleCard:       p.SingleCard,
		PlanTableTitle:   p.PlanTableTitle,
		PlanTableUnit:    p.PlanTableUnit,
		PlanTable:        p.PlanTable,
		ShowAddOns:       p.ShowAddOns,
		ShowAddOnMinutes: p.ShowAddOnMinutes,
		AddOnPriceHeader: p.AddOnPriceHeader,
		AddOns:           p.AddOns,
	}
}
