// Package catalog holds the static plan catalogs of the pricing page.
//
// Two catalogs exist and are never merged:
//   - VariantStandard: personal/business/enterprise, priced in JPY, USD, CNY and TWD
//   - VariantClassic: business/personal, a single yen price per plan
//
// A Catalog is built once by Load and is read-only afterwards. Accessors
// return deep copies so callers cannot mutate the shared tables.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/DukeRupert/felo-pricing/internal/domain"
)

// Variant names a catalog.
type Variant string

const (
	VariantStandard Variant = "standard"
	VariantClassic  Variant = "classic"
)

// DefaultVariant is used when no variant is configured.
const DefaultVariant = VariantStandard

// String returns the string representation of the variant.
func (v Variant) String() string {
	return string(v)
}

// IsValid returns true if the variant is a recognized value.
func (v Variant) IsValid() bool {
	return v == VariantStandard || v == VariantClassic
}

// ParseVariant converts configuration input into a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if !v.IsValid() {
		return "", domain.Invalid("catalog.variant", fmt.Sprintf("unknown catalog variant %q", s))
	}
	return v, nil
}

// Catalog is the complete, immutable data set behind one pricing page.
type Catalog struct {
	variant        Variant
	title          string
	lead           string
	segments       []domain.Segment
	currencies     []domain.CurrencyCode
	plans          map[domain.Segment][]domain.Plan
	addOns         []domain.AddOnPackage
	cardFeatures   []string
	cardFootnote   string
	comparison     []domain.ComparisonRow
	segmentNotes   []domain.SegmentNote
	faq            []domain.FAQEntry
	showPerHour    bool
	showPlanTable  bool
	showAddOnMins  bool
	segmentBadge   bool
	noAddOnSegment map[domain.Segment]bool
}

// Load builds the catalog for a variant.
func Load(v Variant) (*Catalog, error) {
	switch v {
	case VariantStandard:
		return newStandard(), nil
	case VariantClassic:
		return newClassic(), nil
	}
	return nil, domain.Invalid("catalog.load", fmt.Sprintf("unknown catalog variant %q", v))
}

// MustLoad is like Load but panics on an unknown variant.
func MustLoad(v Variant) *Catalog {
	c, err := Load(v)
	if err != nil {
		panic(err)
	}
	return c
}

// =============================================================================
// Accessors
// =============================================================================

func (c *Catalog) Variant() Variant { return c.variant }
func (c *Catalog) Title() string    { return c.title }
func (c *Catalog) Lead() string     { return c.lead }

// Segments returns the segments in tab order.
func (c *Catalog) Segments() []domain.Segment {
	return slices.Clone(c.segments)
}

// DefaultSegment is the first tab.
func (c *Catalog) DefaultSegment() domain.Segment {
	return c.segments[0]
}

// Currencies returns the currencies offered by the selector.
func (c *Catalog) Currencies() []domain.CurrencyCode {
	return slices.Clone(c.currencies)
}

// MultiCurrency reports whether the currency selector is shown.
func (c *Catalog) MultiCurrency() bool {
	return len(c.currencies) > 1
}

// HasSegment reports whether s is one of the catalog's tabs.
func (c *Catalog) HasSegment(s domain.Segment) bool {
	return slices.Contains(c.segments, s)
}

// HasCurrency reports whether code is offered by the catalog.
func (c *Catalog) HasCurrency(code domain.CurrencyCode) bool {
	return slices.Contains(c.currencies, code)
}

// Plans returns the plans of a segment in display order.
// Callers must only pass segments for which HasSegment is true.
func (c *Catalog) Plans(s domain.Segment) []domain.Plan {
	return cloneAll(c.plans[s], domain.ClonePlan)
}

// AddOns returns the add-on packages in display order.
func (c *Catalog) AddOns() []domain.AddOnPackage {
	return cloneAll(c.addOns, domain.AddOnPackage.Clone)
}

// AddOnsOffered reports whether the add-on table is shown for a segment.
func (c *Catalog) AddOnsOffered(s domain.Segment) bool {
	return len(c.addOns) > 0 && !c.noAddOnSegment[s]
}

func (c *Catalog) CardFeatures() []string { return slices.Clone(c.cardFeatures) }
func (c *Catalog) CardFootnote() string   { return c.cardFootnote }

// Comparison returns the segment comparison table rows.
func (c *Catalog) Comparison() []domain.ComparisonRow {
	return cloneAll(c.comparison, domain.ComparisonRow.Clone)
}

func (c *Catalog) SegmentNotes() []domain.SegmentNote {
	return cloneAll(c.segmentNotes, domain.SegmentNote.Clone)
}
func (c *Catalog) FAQ() []domain.FAQEntry { return slices.Clone(c.faq) }

// ShowPerHour reports whether cards display the derived per-hour rate.
func (c *Catalog) ShowPerHour() bool { return c.showPerHour }

// ShowPlanTable reports whether the plan summary table follows the cards.
func (c *Catalog) ShowPlanTable() bool { return c.showPlanTable }

// ShowSegmentBadge reports whether cards carry a badge naming the segment.
func (c *Catalog) ShowSegmentBadge() bool { return c.segmentBadge }

// ShowAddOnMinutes reports whether the add-on table has a minutes column.
func (c *Catalog) ShowAddOnMinutes() bool { return c.showAddOnMins }

// cloneAll copies a slice element by element with clone.
func cloneAll[T any](s []T, clone func(T) T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	for i, v := range s {
		out[i] = clone(v)
	}
	return out
}
