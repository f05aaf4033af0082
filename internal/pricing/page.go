package pricing

import (
	"fmt"
	"time"

	"github.com/DukeRupert/felo-pricing/internal/catalog"
	"github.com/DukeRupert/felo-pricing/internal/domain"
)

// Page is the flattened view model of one pricing page state. It contains
// only display strings and flags so every renderer (HTML, JSON, terminal)
// shows the same thing.
type Page struct {
	Variant string    `json:"variant"`
	Title   string    `json:"title"`
	Lead    string    `json:"lead"`
	State   ViewState `json:"state"`
	Year    int       `json:"year"`

	Tabs       []Tab            `json:"tabs"`
	Currencies []CurrencyOption `json:"currencies,omitempty"`

	Cards      []PlanCard `json:"cards"`
	SingleCard bool       `json:"single_card"`

	PlanTable      []PlanRow `json:"plan_table,omitempty"`
	PlanTableTitle string    `json:"plan_table_title,omitempty"`
	PlanTableUnit  string    `json:"plan_table_unit,omitempty"`

	ShowAddOns       bool       `json:"show_add_ons"`
	ShowAddOnMinutes bool       `json:"show_add_on_minutes"`
	AddOnPriceHeader string     `json:"add_on_price_header,omitempty"`
	AddOns           []AddOnRow `json:"add_ons,omitempty"`

	ComparisonHeaders []string        `json:"comparison_headers,omitempty"`
	Comparison        []ComparisonRow `json:"comparison,omitempty"`
	Notes             []NoteBlock     `json:"notes,omitempty"`

	FAQ []domain.FAQEntry `json:"faq,omitempty"`
}

// Tab is one segment button.
type Tab struct {
	Segment domain.Segment `json:"segment"`
	Label   string         `json:"label"`
	Active  bool           `json:"active"`
	Query   string         `json:"query"`
}

// CurrencyOption is one entry of the currency selector.
type CurrencyOption struct {
	Code     domain.CurrencyCode `json:"code"`
	Label    string              `json:"label"`
	Selected bool                `json:"selected"`
}

// PlanCard is the display form of a plan.
type PlanCard struct {
	Name        string   `json:"name"`
	Badge       string   `json:"badge,omitempty"`
	Popular     bool     `json:"popular"`
	Priced      bool     `json:"priced"`
	Price       string   `json:"price,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	PerHour     string   `json:"per_hour,omitempty"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features"`
	CTA         string   `json:"cta"`
	Footnote    string   `json:"footnote,omitempty"`
}

// PlanRow is one line of the plan summary table.
type PlanRow struct {
	Name  string `json:"name"`
	Hours int    `json:"hours"`
	Price string `json:"price"`
}

// AddOnRow is one line of the add-on table.
type AddOnRow struct {
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Price   string `json:"price"`
}

// ComparisonRow is one line of the comparison table, cells in tab order.
type ComparisonRow struct {
	Item  string   `json:"item"`
	Cells []string `json:"cells"`
}

// NoteBlock is the "main differences" summary of one segment.
type NoteBlock struct {
	Heading string   `json:"heading"`
	Lines   []string `json:"lines"`
}

const (
	ctaApply   = "今すぐ申し込む"
	ctaContact = "お問い合わせ"
)

// BuildPage assembles the view model for a state. now supplies the
// copyright year.
func BuildPage(cat *catalog.Catalog, state ViewState, now time.Time) Page {
	p := Page{
		Variant: cat.Variant().String(),
		Title:   cat.Title(),
		Lead:    cat.Lead(),
		State:   state,
		Year:    now.Year(),
	}

	for _, seg := range cat.Segments() {
		q := state
		q.Segment = seg
		p.Tabs = append(p.Tabs, Tab{
			Segment: seg,
			Label:   seg.TabLabel(),
			Active:  seg == state.Segment,
			Query:   q.Query(),
		})
	}

	if cat.MultiCurrency() {
		for _, code := range cat.Currencies() {
			p.Currencies = append(p.Currencies, CurrencyOption{
				Code:     code,
				Label:    code.Info().Label(),
				Selected: code == state.Currency,
			})
		}
	}

	plans := SelectPlans(cat, state.Segment)
	for _, plan := range plans {
		p.Cards = append(p.Cards, buildCard(cat, state, plan))
	}
	p.SingleCard = len(p.Cards) == 1

	if cat.ShowPlanTable() {
		p.PlanTableTitle = state.Segment.TabLabel() + "（月料金）"
		p.PlanTableUnit = "総価格 " + UnitLabel(state.Currency)
		for _, plan := range plans {
			amount, ok := PriceForPlan(plan, state.Currency)
			hours, _ := domain.IncludedHours(plan)
			if !ok {
				continue
			}
			p.PlanTable = append(p.PlanTable, PlanRow{
				Name:  plan.Details().Name,
				Hours: hours,
				Price: FormatAmount(amount, state.Currency),
			})
		}
	}

	if cat.AddOnsOffered(state.Segment) {
		p.ShowAddOns = true
		p.ShowAddOnMinutes = cat.ShowAddOnMinutes()
		p.AddOnPriceHeader = "総価格（" + addOnCurrencyLabel(cat, state.Currency) + "）"
		for _, a := range cat.AddOns() {
			amount, _ := a.PriceIn(state.Currency)
			p.AddOns = append(p.AddOns, AddOnRow{
				Hours:   a.IncludedHours,
				Minutes: a.Minutes(),
				Price:   displayPrice(cat, amount, state.Currency),
			})
		}
	}

	if rows := cat.Comparison(); len(rows) > 0 {
		p.ComparisonHeaders = []string{"項目"}
		for _, seg := range cat.Segments() {
			p.ComparisonHeaders = append(p.ComparisonHeaders, seg.DisplayName())
		}
		for _, r := range rows {
			row := ComparisonRow{Item: r.Item}
			for _, seg := range cat.Segments() {
				row.Cells = append(row.Cells, r.Value(seg))
			}
			p.Comparison = append(p.Comparison, row)
		}
		for _, n := range cat.SegmentNotes() {
			p.Notes = append(p.Notes, NoteBlock{Heading: n.Segment.DisplayName(), Lines: n.Lines})
		}
	}

	p.FAQ = cat.FAQ()
	return p
}

func buildCard(cat *catalog.Catalog, state ViewState, plan domain.Plan) PlanCard {
	d := plan.Details()
	card := PlanCard{
		Name:     d.Name,
		Popular:  d.Popular,
		Footnote: cat.CardFootnote(),
	}
	if cat.ShowSegmentBadge() {
		card.Badge = state.Segment.DisplayName()
	}

	if amount, ok := PriceForPlan(plan, state.Currency); ok {
		card.Priced = true
		card.Price = displayPrice(cat, amount, state.Currency)
		card.Unit = UnitLabel(state.Currency)
		card.CTA = ctaApply
		if hours, ok := domain.IncludedHours(plan); ok && hours > 0 && cat.ShowPerHour() {
			rate := RoundedPerHour(amount, hours)
			card.PerHour = fmt.Sprintf("約 %s %s/時間", FormatAmount(rate, state.Currency), perHourUnit(state.Currency))
		}
	} else {
		card.Description = descriptionOf(plan)
		card.CTA = ctaContact
		card.Footnote = ""
	}

	if hours, ok := domain.IncludedHours(plan); ok {
		card.Features = append(card.Features, fmt.Sprintf("時間: %d 時間/月", hours))
	}
	card.Features = append(card.Features, cat.CardFeatures()...)
	if d.TranscriptionWordLimit > 0 {
		card.Features = append(card.Features, "音声辞書: "+FormatCount(d.TranscriptionWordLimit)+"語")
	}
	if d.TranslationWordLimit > 0 {
		card.Features = append(card.Features, "翻訳辞書: "+FormatCount(d.TranslationWordLimit)+"ペア")
	}
	card.Features = append(card.Features, d.Extras...)

	return card
}

// displayPrice prints the symbol on multi-currency pages, where the same
// glyph can mean different currencies; single-currency pages rely on the
// unit label alone.
func displayPrice(cat *catalog.Catalog, amount float64, code domain.CurrencyCode) string {
	if cat.MultiCurrency() {
		return code.Info().Symbol + FormatAmount(amount, code)
	}
	return FormatPrice(amount, code)
}

func perHourUnit(code domain.CurrencyCode) string {
	if code == domain.CurrencyJPY {
		return "円"
	}
	return string(code)
}

// addOnCurrencyLabel names the currency in the add-on price header: the code
// on multi-currency pages, the local unit on single-currency ones.
func addOnCurrencyLabel(cat *catalog.Catalog, code domain.CurrencyCode) string {
	if cat.MultiCurrency() {
		return string(code)
	}
	return perHourUnit(code)
}

func descriptionOf(plan domain.Plan) string {
	if d, ok := plan.(domain.DescriptivePlan); ok {
		return d.Description
	}
	return ""
}
