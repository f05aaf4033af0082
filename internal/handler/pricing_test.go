package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/felo-pricing/internal/catalog"
	"github.com/DukeRupert/felo-pricing/internal/pricing"
	"github.com/DukeRupert/felo-pricing/web"
)

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func newTestMux(t *testing.T, variant catalog.Variant) *http.ServeMux {
	t.Helper()

	renderer, err := NewRendererFromFS(web.TemplateFS(), discardLogger())
	require.NoError(t, err)

	h := NewPricingHandler(catalog.MustLoad(variant), renderer, discardLogger(), "https://felo.example")
	h.now = func() time.Time { return fixedNow }

	mux := http.NewServeMux()
	h.RegisterRoutes(mux, func(next http.Handler) http.Handler { return next })
	return mux
}

func get(mux http.Handler, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestPricingPage_Defaults(t *testing.T) {
	rec := get(newTestMux(t, catalog.VariantStandard), "/pricing", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `<div id="plan-section">`)
	assert.Contains(t, body, "¥9,500", "personal premium in yen")
	assert.Contains(t, body, `aria-selected="true"`)
	assert.Contains(t, body, `<option value="JPY" selected>`)
	assert.Contains(t, body, "© 2026 Felo")
	assert.Contains(t, body, `<link rel="canonical" href="https://felo.example/pricing?currency=JPY&amp;segment=personal">`)
	assert.Contains(t, body, `hx-get="/pricing/plans?currency=JPY&amp;segment=business"`)
	assert.Contains(t, body, `id="faq"`)
	assert.Contains(t, body, "Personalの主な違い")
}

func TestPricingPage_SelectsSegmentAndCurrency(t *testing.T) {
	rec := get(newTestMux(t, catalog.VariantStandard), "/pricing?segment=business&currency=usd", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "$210")
	assert.Contains(t, body, "USD/月")
	assert.Contains(t, body, `<option value="USD" selected>`)
	assert.NotContains(t, body, "¥32,000")
}

func TestPricingPage_Enterprise(t *testing.T) {
	rec := get(newTestMux(t, catalog.VariantStandard), "/pricing?segment=enterprise", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "お問い合わせ")
	assert.NotContains(t, body, "今すぐ申し込む")
}

func TestPricingPage_Classic(t *testing.T) {
	mux := newTestMux(t, catalog.VariantClassic)

	rec := get(mux, "/pricing", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Businessプラン（月料金）")
	assert.Contains(t, body, "約 1,100 円/時間")
	assert.NotContains(t, body, "currency-select", "single-currency catalog has no selector")

	rec = get(mux, "/pricing?currency=USD", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(mux, "/pricing?segment=enterprise", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPricingPage_InvalidSelection(t *testing.T) {
	rec := get(newTestMux(t, catalog.VariantStandard), "/pricing?segment=gold", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid plan selection")
}

func TestPlansPartial(t *testing.T) {
	rec := get(newTestMux(t, catalog.VariantStandard), "/pricing/plans?segment=business", map[string]string{"HX-Request": "true"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<div id="plan-section">`))
	assert.NotContains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "¥32,000")
	assert.Contains(t, body, `hx-swap-oob="true"`)
	assert.Contains(t, body, `hx-push-url="/pricing?currency=JPY&amp;segment=business"`)
	assert.Empty(t, rec.Header().Get("Vary"))
}

func TestPlansPartial_CurrencySwitcherFollowsSegment(t *testing.T) {
	rec := get(newTestMux(t, catalog.VariantStandard), "/pricing/plans?segment=business&currency=USD", map[string]string{"HX-Request": "true"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<form id="currency-switcher" class="currency-float" method="get" action="/pricing" hx-swap-oob="true">`)
	assert.Contains(t, body, `name="segment" value="business"`)
	assert.Contains(t, body, `<option value="USD" selected>`)
	assert.Equal(t, 2, strings.Count(body, `hx-swap-oob="true"`), "tabs and currency switcher")
}

func TestPlansPartial_ClassicHasNoCurrencySwitcher(t *testing.T) {
	rec := get(newTestMux(t, catalog.VariantClassic), "/pricing/plans?segment=personal", map[string]string{"HX-Request": "true"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "currency-switcher")
}

func TestPlansPartial_InvalidSelectionIsHTML(t *testing.T) {
	rec := get(newTestMux(t, catalog.VariantStandard), "/pricing/plans?currency=EUR", map[string]string{"HX-Request": "true"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestPricingJSON(t *testing.T) {
	rec := get(newTestMux(t, catalog.VariantStandard), "/pricing.json?segment=enterprise&currency=TWD", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var page pricing.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, "standard", page.Variant)
	assert.Equal(t, "enterprise", page.State.Segment.String())
	assert.Equal(t, "TWD", page.State.Currency.String())
	require.Len(t, page.Cards, 1)
	assert.True(t, page.SingleCard)
	assert.False(t, page.Cards[0].Priced)
	assert.Equal(t, 2026, page.Year)
}

func TestPricingJSON_InvalidSelection(t *testing.T) {
	rec := get(newTestMux(t, catalog.VariantStandard), "/pricing.json?segment=gold&currency=EUR", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body JSONError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid", body.Error.Code)
	assert.Contains(t, body.Error.Fields, "segment")
	assert.Contains(t, body.Error.Fields, "currency")
}

func TestRootRedirect(t *testing.T) {
	rec := get(newTestMux(t, catalog.VariantStandard), "/?segment=business", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/pricing?segment=business", rec.Header().Get("Location"))
}

func TestHealth(t *testing.T) {
	rec := get(newTestMux(t, catalog.VariantClassic), "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","variant":"classic"}`, rec.Body.String())
}

func TestUnknownPath(t *testing.T) {
	rec := get(newTestMux(t, catalog.VariantStandard), "/plans/gold", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
