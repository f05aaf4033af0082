package handler

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/a-h/templ"

	"github.com/DukeRupert/felo-pricing/internal/pricing"
	"github.com/DukeRupert/felo-pricing/internal/templ/components/plancard"
)

// PageData is the template data of the pricing page and its partials.
//
// A live page is served by the HTTP server and links to query URLs with htmx
// attributes. A static page is written by the exporter and links to sibling
// files relative to the variant root.
type PageData struct {
	Page    pricing.Page
	Section template.HTML // Rendered plan section (cards and tables)

	Live bool // Served over HTTP rather than exported
	OOB  bool // Tabs are rendered as an htmx out-of-band swap

	AssetPrefix  string // Prefix of /static/... URLs; "" when live
	HomeURL      string
	CanonicalURL string
}

// NewLivePageData builds page data for a request. baseURL is optional and only
// used for the canonical link.
func NewLivePageData(page pricing.Page, section template.HTML, baseURL string) PageData {
	d := PageData{
		Page:    page,
		Section: section,
		Live:    true,
		HomeURL: "/pricing",
	}
	if baseURL != "" {
		d.CanonicalURL = baseURL + "/pricing?" + page.State.Query()
	}
	return d
}

// NewStaticPageData builds page data for an exported file. root is the
// relative path from the file to the variant root, e.g. "../..".
func NewStaticPageData(page pricing.Page, section template.HTML, root, canonicalURL string) PageData {
	return PageData{
		Page:         page,
		Section:      section,
		AssetPrefix:  root,
		HomeURL:      root + "/index.html",
		CanonicalURL: canonicalURL,
	}
}

// TabHref is the link of a segment tab.
func (d PageData) TabHref(t pricing.Tab) string {
	if d.Live {
		return "/pricing?" + t.Query
	}
	return d.staticHref(t.Segment.String(), d.Page.State.Currency.String())
}

// PartialHref is the htmx endpoint that swaps the plan section for a tab.
func (d PageData) PartialHref(t pricing.Tab) string {
	return "/pricing/plans?" + t.Query
}

// CurrencyHref is the link of a currency option.
func (d PageData) CurrencyHref(c pricing.CurrencyOption) string {
	state := pricing.ViewState{Segment: d.Page.State.Segment, Currency: c.Code}
	if d.Live {
		return "/pricing?" + state.Query()
	}
	return d.staticHref(state.Segment.String(), c.Code.String())
}

// JSONHref is the JSON form of the current page.
func (d PageData) JSONHref() string {
	return "/pricing.json?" + d.Page.State.Query()
}

func (d PageData) staticHref(segment, currency string) string {
	return fmt.Sprintf("%s/%s/%s/index.html", d.AssetPrefix, segment, strings.ToLower(currency))
}

// RenderSection renders the plan section component for use inside
// html/template pages.
func RenderSection(ctx context.Context, page pricing.Page) (template.HTML, error) {
	return templ.ToGoHTML(ctx, plancard.Section(plancard.FromPage(page)))
}
