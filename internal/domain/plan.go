// Package domain contains core business types for the pricing site.
//
// This file defines subscription plans. A plan is one of three shapes:
//   - TieredPlan: included hours with a price per currency
//   - FixedPlan: included hours with a single price in the catalog currency
//   - DescriptivePlan: no price, only contact copy (Enterprise)
//
// The shapes are kept distinct; callers branch with a type switch.
package domain

import (
	"maps"
	"slices"
)

// =============================================================================
// Plan Variant
// =============================================================================

// Plan is implemented by TieredPlan, FixedPlan and DescriptivePlan.
type Plan interface {
	// Details returns the fields shared by every plan shape.
	Details() PlanDetails

	isPlan()
}

// PlanDetails holds the attributes common to all plan shapes.
type PlanDetails struct {
	Name string

	// Popular highlights the card. At most one plan per segment sets it.
	Popular bool

	// Dictionary limits. Zero means the limit is not shown.
	TranscriptionWordLimit int
	TranslationWordLimit   int

	// Extras are additional feature lines, in display order.
	Extras []string
}

// TieredPlan is a plan priced separately in each supported currency.
type TieredPlan struct {
	PlanDetails
	IncludedHours    int
	PricesByCurrency map[CurrencyCode]float64
}

// FixedPlan is a plan with one price that does not depend on the currency.
type FixedPlan struct {
	PlanDetails
	IncludedHours int
	Price         float64
}

// DescriptivePlan has no list price; its description replaces the price.
type DescriptivePlan struct {
	PlanDetails
	Description string
}

func (p TieredPlan) Details() PlanDetails      { return p.PlanDetails }
func (p FixedPlan) Details() PlanDetails       { return p.PlanDetails }
func (p DescriptivePlan) Details() PlanDetails { return p.PlanDetails }

func (TieredPlan) isPlan()      {}
func (FixedPlan) isPlan()       {}
func (DescriptivePlan) isPlan() {}

// =============================================================================
// Helpers
// =============================================================================

// IncludedHours returns the monthly hours of a priced plan.
// The second value is false for descriptive plans.
func IncludedHours(p Plan) (int, bool) {
	switch v := p.(type) {
	case TieredPlan:
		return v.IncludedHours, true
	case FixedPlan:
		return v.IncludedHours, true
	}
	return 0, false
}

// ClonePlan returns a copy of p that shares no maps or slices with it.
func ClonePlan(p Plan) Plan {
	switch v := p.(type) {
	case TieredPlan:
		v.PlanDetails = v.PlanDetails.clone()
		v.PricesByCurrency = maps.Clone(v.PricesByCurrency)
		return v
	case FixedPlan:
		v.PlanDetails = v.PlanDetails.clone()
		return v
	case DescriptivePlan:
		v.PlanDetails = v.PlanDetails.clone()
		return v
	}
	return p
}

func (d PlanDetails) clone() PlanDetails {
	d.Extras = slices.Clone(d.Extras)
	return d
}

// IsPriced returns true if the plan carries a price rather than a description.
func IsPriced(p Plan) bool {
	_, ok := p.(DescriptivePlan)
	return !ok
}

// =============================================================================
// Add-on Packages
// =============================================================================

// AddOnPackage is a block of extra hours valid until the end of the
// current billing month. Exactly one of PricesByCurrency or Price is used,
// matching the pricing shape of the catalog it belongs to.
type AddOnPackage struct {
	IncludedHours    int
	PricesByCurrency map[CurrencyCode]float64
	Price            float64
}

// Clone returns a copy of the package with its own price map.
func (a AddOnPackage) Clone() AddOnPackage {
	a.PricesByCurrency = maps.Clone(a.PricesByCurrency)
	return a
}

// Minutes returns the package size in minutes.
func (a AddOnPackage) Minutes() int {
	return a.IncludedHours * 60
}

// PriceIn returns the package price for the currency.
// Single-price packages ignore the currency.
func (a AddOnPackage) PriceIn(c CurrencyCode) (float64, bool) {
	if a.PricesByCurrency == nil {
		return a.Price, true
	}
	v, ok := a.PricesByCurrency[c]
	return v, ok
}
