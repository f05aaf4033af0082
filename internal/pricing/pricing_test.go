package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/felo-pricing/internal/catalog"
	"github.com/DukeRupert/felo-pricing/internal/domain"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestPriceForPlan_EveryPlanEveryCurrency(t *testing.T) {
	for _, v := range []catalog.Variant{catalog.VariantStandard, catalog.VariantClassic} {
		cat := catalog.MustLoad(v)
		for _, seg := range cat.Segments() {
			for _, plan := range SelectPlans(cat, seg) {
				for _, code := range cat.Currencies() {
					amount, ok := PriceForPlan(plan, code)
					if domain.IsPriced(plan) {
						assert.True(t, ok, "%s/%s/%s has a price", v, seg, plan.Details().Name)
						assert.Positive(t, amount)
					} else {
						assert.False(t, ok)
						d := plan.(domain.DescriptivePlan)
						assert.NotEmpty(t, d.Description)
					}
				}
			}
		}
	}
}

func TestPriceForPlan_Shapes(t *testing.T) {
	tiered := domain.TieredPlan{PricesByCurrency: map[domain.CurrencyCode]float64{domain.CurrencyUSD: 8.2}}
	amount, ok := PriceForPlan(tiered, domain.CurrencyUSD)
	assert.True(t, ok)
	assert.Equal(t, 8.2, amount)

	_, ok = PriceForPlan(tiered, domain.CurrencyTWD)
	assert.False(t, ok)

	fixed := domain.FixedPlan{Price: 1300}
	amount, ok = PriceForPlan(fixed, domain.CurrencyUSD)
	assert.True(t, ok)
	assert.Equal(t, 1300.0, amount, "fixed price ignores currency")

	_, ok = PriceForPlan(domain.DescriptivePlan{Description: "contact"}, domain.CurrencyJPY)
	assert.False(t, ok)
}

func TestSelectPlans_Idempotent(t *testing.T) {
	cat := catalog.MustLoad(catalog.VariantStandard)
	for _, seg := range cat.Segments() {
		assert.Equal(t, SelectPlans(cat, seg), SelectPlans(cat, seg))
	}

	enterprise := SelectPlans(cat, domain.SegmentEnterprise)
	require.Len(t, enterprise, 1)
	assert.False(t, domain.IsPriced(enterprise[0]))
}

func TestViewState_Reducers(t *testing.T) {
	cat := catalog.MustLoad(catalog.VariantStandard)

	s := NewViewState(cat)
	assert.Equal(t, ViewState{Segment: domain.SegmentPersonal, Currency: domain.CurrencyJPY}, s)

	s2, err := s.SelectSegment(cat, domain.SegmentBusiness)
	require.NoError(t, err)
	assert.Equal(t, domain.SegmentBusiness, s2.Segment)
	assert.Equal(t, domain.CurrencyJPY, s2.Currency, "currency is independent of segment")
	assert.Equal(t, domain.SegmentPersonal, s.Segment, "previous state untouched")

	s3, err := s2.SelectCurrency(cat, domain.CurrencyTWD)
	require.NoError(t, err)
	assert.Equal(t, ViewState{Segment: domain.SegmentBusiness, Currency: domain.CurrencyTWD}, s3)

	classic := catalog.MustLoad(catalog.VariantClassic)
	same, err := NewViewState(classic).SelectCurrency(classic, domain.CurrencyUSD)
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	assert.Equal(t, domain.CurrencyJPY, same.Currency)

	_, err = NewViewState(classic).SelectSegment(classic, domain.SegmentEnterprise)
	assert.Error(t, err)
}

func TestParseViewState(t *testing.T) {
	cat := catalog.MustLoad(catalog.VariantStandard)

	s, err := ParseViewState(cat, "", "")
	require.NoError(t, err)
	assert.Equal(t, NewViewState(cat), s)

	s, err = ParseViewState(cat, "business", "usd")
	require.NoError(t, err)
	assert.Equal(t, ViewState{Segment: domain.SegmentBusiness, Currency: domain.CurrencyUSD}, s)

	_, err = ParseViewState(cat, "team", "EUR")
	require.Error(t, err)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "segment")
	assert.Contains(t, ve.Fields, "currency")
}

func TestViewState_Query(t *testing.T) {
	s := ViewState{Segment: domain.SegmentBusiness, Currency: domain.CurrencyUSD}
	assert.Equal(t, "currency=USD&segment=business", s.Query())
}

func findCard(t *testing.T, p Page, name string) PlanCard {
	t.Helper()
	for _, c := range p.Cards {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("card %q not found", name)
	return PlanCard{}
}

func TestBuildPage_StandardBusinessJPY(t *testing.T) {
	cat := catalog.MustLoad(catalog.VariantStandard)
	state := ViewState{Segment: domain.SegmentBusiness, Currency: domain.CurrencyJPY}

	p := BuildPage(cat, state, fixedNow)

	assert.Equal(t, 2026, p.Year)
	require.Len(t, p.Tabs, 3)
	assert.True(t, p.Tabs[1].Active)
	require.Len(t, p.Currencies, 4)
	assert.True(t, p.Currencies[0].Selected)

	trial := findCard(t, p, "Trial")
	assert.Equal(t, "¥1,200", trial.Price)
	assert.Equal(t, "JPY/月", trial.Unit)
	assert.Equal(t, ctaApply, trial.CTA)
	assert.Empty(t, trial.PerHour)
	assert.Contains(t, trial.Features, "時間: 1 時間/月")
	assert.Contains(t, trial.Features, "翻訳辞書: 5,000ペア")

	premium := findCard(t, p, "Premium")
	assert.True(t, premium.Popular)
	assert.Equal(t, "¥32,000", premium.Price)

	require.True(t, p.ShowAddOns)
	require.Len(t, p.AddOns, 4)
	assert.Equal(t, 30, p.AddOns[3].Hours)
	assert.Equal(t, "¥29,999", p.AddOns[3].Price)
	assert.Equal(t, "総価格（JPY）", p.AddOnPriceHeader)

	assert.Equal(t, []string{"項目", "Personal", "Business", "Enterprise"}, p.ComparisonHeaders)
	assert.Len(t, p.Comparison, 11)
	assert.Empty(t, p.FAQ)
}

func TestBuildPage_StandardEnterprise(t *testing.T) {
	cat := catalog.MustLoad(catalog.VariantStandard)
	state := ViewState{Segment: domain.SegmentEnterprise, Currency: domain.CurrencyUSD}

	p := BuildPage(cat, state, fixedNow)

	require.Len(t, p.Cards, 1)
	assert.True(t, p.SingleCard)
	card := p.Cards[0]
	assert.False(t, card.Priced)
	assert.Equal(t, "プラン金額：弊社へ問い合わせ", card.Description)
	assert.Equal(t, ctaContact, card.CTA)
	assert.Contains(t, card.Features, "翻訳辞書: 20,000ペア")
	assert.Contains(t, card.Features, "専用サポート")
	assert.False(t, p.ShowAddOns)
}

func TestBuildPage_StandardUSD(t *testing.T) {
	cat := catalog.MustLoad(catalog.VariantStandard)
	state := ViewState{Segment: domain.SegmentBusiness, Currency: domain.CurrencyUSD}

	p := BuildPage(cat, state, fixedNow)

	assert.Equal(t, "$8.2", findCard(t, p, "Trial").Price)
	assert.Equal(t, "USD/月", findCard(t, p, "Trial").Unit)
	assert.Equal(t, "$199", p.AddOns[3].Price)
}

func TestBuildPage_ClassicBusiness(t *testing.T) {
	cat := catalog.MustLoad(catalog.VariantClassic)
	p := BuildPage(cat, NewViewState(cat), fixedNow)

	assert.Equal(t, domain.SegmentBusiness, p.State.Segment)
	assert.Empty(t, p.Currencies, "single-currency page has no selector")

	trial := findCard(t, p, "Trial")
	assert.Equal(t, "1,300", trial.Price)
	assert.Equal(t, "Business", trial.Badge)
	assert.Equal(t, "約 1,300 円/時間", trial.PerHour)
	assert.Equal(t, "月途中のご契約は日割りになりません。", trial.Footnote)

	premium := findCard(t, p, "Premium")
	assert.True(t, premium.Popular)
	assert.Equal(t, "33,000", premium.Price)
	assert.Equal(t, "約 1,100 円/時間", premium.PerHour)

	assert.Equal(t, "約 1,000 円/時間", findCard(t, p, "Premium Plus").PerHour)

	require.Len(t, p.PlanTable, 4)
	assert.Equal(t, PlanRow{Name: "Premium Plus", Hours: 100, Price: "100,000"}, p.PlanTable[3])
	assert.Equal(t, "Businessプラン（月料金）", p.PlanTableTitle)

	require.Len(t, p.AddOns, 4)
	assert.Equal(t, AddOnRow{Hours: 30, Minutes: 1800, Price: "30,000"}, p.AddOns[3])
	assert.True(t, p.ShowAddOnMinutes)
	assert.Equal(t, "総価格（円）", p.AddOnPriceHeader)

	assert.Len(t, p.FAQ, 4)
	assert.Empty(t, p.Comparison)
}
