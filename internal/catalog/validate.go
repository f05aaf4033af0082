package catalog

import (
	"errors"
	"fmt"

	"github.com/DukeRupert/felo-pricing/internal/domain"
)

// Validate checks the display invariants of the static data:
//   - every segment has at least one plan
//   - at most one plan per segment is marked popular
//   - every priced plan has a price for every offered currency
//   - every descriptive plan has a description
//   - every add-on has a price for every offered currency
//
// It reports all problems at once.
func (c *Catalog) Validate() error {
	var errs []error

	for _, seg := range c.segments {
		plans := c.plans[seg]
		if len(plans) == 0 {
			errs = append(errs, fmt.Errorf("%s: no plans", seg))
			continue
		}

		popular := 0
		for _, p := range plans {
			d := p.Details()
			if d.Popular {
				popular++
			}
			errs = append(errs, c.validatePlan(seg, p)...)
		}
		if popular > 1 {
			errs = append(errs, fmt.Errorf("%s: %d plans marked popular", seg, popular))
		}
	}

	for i, a := range c.addOns {
		if a.IncludedHours <= 0 {
			errs = append(errs, fmt.Errorf("add-on %d: included hours must be positive", i))
		}
		for _, code := range c.currencies {
			if _, ok := a.PriceIn(code); !ok {
				errs = append(errs, fmt.Errorf("add-on %dh: no %s price", a.IncludedHours, code))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return domain.Wrap(errors.Join(errs...), domain.EINVALID, "catalog.validate",
		fmt.Sprintf("catalog %s has %d problem(s)", c.variant, len(errs)))
}

func (c *Catalog) validatePlan(seg domain.Segment, p domain.Plan) []error {
	name := p.Details().Name

	switch v := p.(type) {
	case domain.TieredPlan:
		var errs []error
		if v.IncludedHours <= 0 {
			errs = append(errs, fmt.Errorf("%s/%s: included hours must be positive", seg, name))
		}
		for _, code := range c.currencies {
			if _, ok := v.PricesByCurrency[code]; !ok {
				errs = append(errs, fmt.Errorf("%s/%s: no %s price", seg, name, code))
			}
		}
		return errs
	case domain.FixedPlan:
		if v.IncludedHours <= 0 {
			return []error{fmt.Errorf("%s/%s: included hours must be positive", seg, name)}
		}
	case domain.DescriptivePlan:
		if v.Description == "" {
			return []error{fmt.Errorf("%s/%s: neither price nor description", seg, name)}
		}
	}
	return nil
}
