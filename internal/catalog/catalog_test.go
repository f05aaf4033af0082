package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/felo-pricing/internal/domain"
)

func TestLoad_AllVariantsValidate(t *testing.T) {
	for _, v := range []Variant{VariantStandard, VariantClassic} {
		t.Run(v.String(), func(t *testing.T) {
			c, err := Load(v)
			require.NoError(t, err)
			assert.Equal(t, v, c.Variant())
			assert.NoError(t, c.Validate())
		})
	}
}

func TestLoad_UnknownVariant(t *testing.T) {
	_, err := Load("deluxe")
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))

	assert.Panics(t, func() { MustLoad("deluxe") })
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant(" Classic ")
	require.NoError(t, err)
	assert.Equal(t, VariantClassic, v)

	_, err = ParseVariant("")
	assert.Error(t, err)
}

func TestStandard_Segments(t *testing.T) {
	c := MustLoad(VariantStandard)

	assert.Equal(t, []domain.Segment{domain.SegmentPersonal, domain.SegmentBusiness, domain.SegmentEnterprise}, c.Segments())
	assert.Equal(t, domain.SegmentPersonal, c.DefaultSegment())
	assert.Equal(t, domain.AllCurrencies(), c.Currencies())
	assert.True(t, c.MultiCurrency())

	assert.Len(t, c.Plans(domain.SegmentPersonal), 5)
	assert.Len(t, c.Plans(domain.SegmentBusiness), 4)

	enterprise := c.Plans(domain.SegmentEnterprise)
	require.Len(t, enterprise, 1)
	d, ok := enterprise[0].(domain.DescriptivePlan)
	require.True(t, ok, "enterprise plan is descriptive")
	assert.Equal(t, "プラン金額：弊社へ問い合わせ", d.Description)
	assert.Equal(t, []string{"ユーザー統一管理", "企業通用辞書", "専用サポート"}, d.Extras)

	assert.True(t, c.AddOnsOffered(domain.SegmentBusiness))
	assert.False(t, c.AddOnsOffered(domain.SegmentEnterprise))
	assert.Len(t, c.Comparison(), 11)
	assert.False(t, c.ShowPerHour())
}

func TestClassic_Segments(t *testing.T) {
	c := MustLoad(VariantClassic)

	assert.Equal(t, []domain.Segment{domain.SegmentBusiness, domain.SegmentPersonal}, c.Segments())
	assert.Equal(t, domain.SegmentBusiness, c.DefaultSegment())
	assert.Equal(t, []domain.CurrencyCode{domain.CurrencyJPY}, c.Currencies())
	assert.False(t, c.MultiCurrency())
	assert.False(t, c.HasSegment(domain.SegmentEnterprise))
	assert.False(t, c.HasCurrency(domain.CurrencyUSD))

	for _, p := range c.Plans(domain.SegmentBusiness) {
		_, ok := p.(domain.FixedPlan)
		assert.True(t, ok, "%s is a fixed-price plan", p.Details().Name)
	}
	assert.Len(t, c.FAQ(), 4)
	assert.True(t, c.ShowPerHour())
	assert.True(t, c.ShowAddOnMinutes())
}

func TestAtMostOnePopularPerSegment(t *testing.T) {
	for _, v := range []Variant{VariantStandard, VariantClassic} {
		c := MustLoad(v)
		for _, seg := range c.Segments() {
			popular := 0
			for _, p := range c.Plans(seg) {
				if p.Details().Popular {
					popular++
					assert.Equal(t, "Premium", p.Details().Name)
				}
			}
			assert.LessOrEqual(t, popular, 1, "%s/%s", v, seg)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := MustLoad(VariantStandard)

	plans := c.Plans(domain.SegmentBusiness)
	plans[0] = domain.FixedPlan{}
	_, ok := c.Plans(domain.SegmentBusiness)[0].(domain.TieredPlan)
	assert.True(t, ok)

	segs := c.Segments()
	segs[0] = domain.SegmentEnterprise
	assert.Equal(t, domain.SegmentPersonal, c.DefaultSegment())

	curs := c.Currencies()
	curs[0] = domain.CurrencyUSD
	assert.Equal(t, domain.CurrencyJPY, c.Currencies()[0])
}

func TestAccessorsReturnDeepCopies(t *testing.T) {
	c := MustLoad(VariantStandard)

	premium := c.Plans(domain.SegmentBusiness)[2].(domain.TieredPlan)
	require.Equal(t, 32000.0, premium.PricesByCurrency[domain.CurrencyJPY])
	premium.PricesByCurrency[domain.CurrencyJPY] = 1
	again := c.Plans(domain.SegmentBusiness)[2].(domain.TieredPlan)
	assert.Equal(t, 32000.0, again.PricesByCurrency[domain.CurrencyJPY])

	enterprise := c.Plans(domain.SegmentEnterprise)[0].(domain.DescriptivePlan)
	require.NotEmpty(t, enterprise.Extras)
	enterprise.Extras[0] = "mutated"
	assert.Equal(t, "ユーザー統一管理", c.Plans(domain.SegmentEnterprise)[0].Details().Extras[0])

	addOn := c.AddOns()[0]
	before := addOn.PricesByCurrency[domain.CurrencyJPY]
	addOn.PricesByCurrency[domain.CurrencyJPY] = 2
	assert.Equal(t, before, c.AddOns()[0].PricesByCurrency[domain.CurrencyJPY])

	row := c.Comparison()[0]
	row.Values[domain.SegmentPersonal] = "mutated"
	assert.NotEqual(t, "mutated", c.Comparison()[0].Value(domain.SegmentPersonal))

	notes := c.SegmentNotes()
	require.NotEmpty(t, notes)
	require.NotEmpty(t, notes[0].Lines)
	notes[0].Lines[0] = "mutated"
	assert.NotEqual(t, "mutated", c.SegmentNotes()[0].Lines[0])
}

func TestValidate_ReportsProblems(t *testing.T) {
	c := MustLoad(VariantStandard)

	broken := *c
	broken.plans = map[domain.Segment][]domain.Plan{
		domain.SegmentPersonal: {
			domain.TieredPlan{
				PlanDetails:      domain.PlanDetails{Name: "A", Popular: true},
				IncludedHours:    1,
				PricesByCurrency: map[domain.CurrencyCode]float64{domain.CurrencyJPY: 100},
			},
			domain.TieredPlan{
				PlanDetails:      domain.PlanDetails{Name: "B", Popular: true},
				IncludedHours:    2,
				PricesByCurrency: prices(1, 1, 1, 1),
			},
		},
		domain.SegmentBusiness:   nil,
		domain.SegmentEnterprise: {domain.DescriptivePlan{PlanDetails: domain.PlanDetails{Name: "E"}}},
	}

	err := broken.Validate()
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))

	msg := err.(*domain.Error).Err.Error()
	assert.Contains(t, msg, "personal/A: no USD price")
	assert.Contains(t, msg, "personal: 2 plans marked popular")
	assert.Contains(t, msg, "business: no plans")
	assert.Contains(t, msg, "enterprise/E: neither price nor description")
}
