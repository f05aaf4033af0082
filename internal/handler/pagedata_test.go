package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/felo-pricing/internal/catalog"
	"github.com/DukeRupert/felo-pricing/internal/domain"
	"github.com/DukeRupert/felo-pricing/internal/pricing"
)

func testPage(t *testing.T) pricing.Page {
	t.Helper()
	cat := catalog.MustLoad(catalog.VariantStandard)
	state, err := pricing.ParseViewState(cat, "business", "USD")
	require.NoError(t, err)
	return pricing.BuildPage(cat, state, fixedNow)
}

func TestPageData_LiveLinks(t *testing.T) {
	page := testPage(t)
	d := NewLivePageData(page, "", "https://felo.example")

	assert.True(t, d.Live)
	assert.Equal(t, "/pricing", d.HomeURL)
	assert.Equal(t, "https://felo.example/pricing?currency=USD&segment=business", d.CanonicalURL)
	assert.Equal(t, "/pricing?currency=USD&segment=personal", d.TabHref(page.Tabs[0]))
	assert.Equal(t, "/pricing/plans?currency=USD&segment=personal", d.PartialHref(page.Tabs[0]))
	assert.Equal(t, "/pricing?currency=TWD&segment=business",
		d.CurrencyHref(pricing.CurrencyOption{Code: domain.CurrencyTWD}))
	assert.Equal(t, "/pricing.json?currency=USD&segment=business", d.JSONHref())
}

func TestPageData_NoCanonicalWithoutBaseURL(t *testing.T) {
	d := NewLivePageData(testPage(t), "", "")
	assert.Empty(t, d.CanonicalURL)
}

func TestPageData_StaticLinks(t *testing.T) {
	page := testPage(t)
	d := NewStaticPageData(page, "", "../..", "https://cdn.example/pricing/standard/business/usd/index.html")

	assert.False(t, d.Live)
	assert.Equal(t, "../../index.html", d.HomeURL)
	assert.Equal(t, "../../personal/usd/index.html", d.TabHref(page.Tabs[0]))
	assert.Equal(t, "../../business/cny/index.html",
		d.CurrencyHref(pricing.CurrencyOption{Code: domain.CurrencyCNY}))
}

func TestRenderSection(t *testing.T) {
	html, err := RenderSection(context.Background(), testPage(t))
	require.NoError(t, err)
	assert.Contains(t, string(html), `<div id="plan-section">`)
	assert.Contains(t, string(html), "$210")
}
