package pricing

import (
	"github.com/DukeRupert/felo-pricing/internal/catalog"
	"github.com/DukeRupert/felo-pricing/internal/domain"
)

// SelectPlans returns the plan list of a segment in display order.
// For a segment without tiered pricing (Enterprise) the list holds the
// single descriptive plan. Callers must pass a segment of the catalog.
func SelectPlans(cat *catalog.Catalog, segment domain.Segment) []domain.Plan {
	return cat.Plans(segment)
}

// PriceForPlan returns the plan's price in the given currency.
// Tiered plans look the currency up in their price map, fixed plans return
// their single price regardless of currency, and descriptive plans have no
// price (ok is false).
func PriceForPlan(plan domain.Plan, code domain.CurrencyCode) (amount float64, ok bool) {
	switch p := plan.(type) {
	case domain.TieredPlan:
		amount, ok = p.PricesByCurrency[code]
		return amount, ok
	case domain.FixedPlan:
		return p.Price, true
	case domain.DescriptivePlan:
		return 0, false
	}
	return 0, false
}
