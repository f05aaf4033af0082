package cli

import (
	"fmt"
	"strings"

	"github.com/DukeRupert/felo-pricing/internal/pricing"
)

// RenderPage renders the whole page model: tabs, plan cards, the optional
// plan and add-on tables, the comparison table and the FAQ.
func RenderPage(p pricing.Page) string {
	var b strings.Builder

	b.WriteString(RenderTitle(p.Title))
	b.WriteString("\n  ")
	b.WriteString(mutedStyle.Render(p.Lead))
	b.WriteString("\n\n  ")
	b.WriteString(renderTabs(p))
	b.WriteString("\n\n")

	for _, c := range p.Cards {
		b.WriteString(RenderCard(c))
		b.WriteString("\n")
	}

	if p.PlanTableTitle != "" {
		rows := make([][]string, 0, len(p.PlanTable))
		for _, r := range p.PlanTable {
			rows = append(rows, []string{r.Name, fmt.Sprint(r.Hours), r.Price})
		}
		b.WriteString(RenderTable(Table{
			Title:   p.PlanTableTitle,
			Headers: []string{"月額名称", "時間", p.PlanTableUnit},
			Rows:    rows,
		}))
		b.WriteString("\n")
	}

	if p.ShowAddOns {
		headers := []string{"時間"}
		if p.ShowAddOnMinutes {
			headers = append(headers, "時間（分）")
		}
		headers = append(headers, p.AddOnPriceHeader)

		rows := make([][]string, 0, len(p.AddOns))
		for _, a := range p.AddOns {
			row := []string{fmt.Sprint(a.Hours)}
			if p.ShowAddOnMinutes {
				row = append(row, fmt.Sprint(a.Minutes))
			}
			rows = append(rows, append(row, a.Price))
		}
		b.WriteString(RenderTable(Table{Title: "追加パッケージ", Headers: headers, Rows: rows}))
		b.WriteString("\n")
	}

	if len(p.Comparison) > 0 {
		rows := make([][]string, 0, len(p.Comparison))
		for _, r := range p.Comparison {
			rows = append(rows, append([]string{r.Item}, r.Cells...))
		}
		b.WriteString(RenderTable(Table{Title: "プラン比較", Headers: p.ComparisonHeaders, Rows: rows}))
		b.WriteString("\n")
	}

	if len(p.FAQ) > 0 {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render("よくある質問"))
		b.WriteString("\n")
		for _, f := range p.FAQ {
			b.WriteString("  Q. " + valueStyle.Render(f.Question) + "\n")
			b.WriteString("     " + mutedStyle.Render(f.Answer) + "\n")
		}
	}

	return b.String()
}

func renderTabs(p pricing.Page) string {
	parts := make([]string, 0, len(p.Tabs)+1)
	for _, t := range p.Tabs {
		if t.Active {
			parts = append(parts, headerStyle.Render("["+t.Label+"]"))
		} else {
			parts = append(parts, dimStyle.Render(" "+t.Label+" "))
		}
	}
	if len(p.Currencies) > 0 {
		parts = append(parts, mutedStyle.Render("通貨: "+p.State.Currency.String()))
	}
	return strings.Join(parts, "  ")
}

// RenderCard renders one plan card as an indented block.
func RenderCard(c pricing.PlanCard) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(valueStyle.Bold(true).Render(c.Name))
	if c.Badge != "" {
		b.WriteString(" " + mutedStyle.Render(c.Badge))
	}
	if c.Popular {
		b.WriteString(" " + badgeStyle.Render("人気"))
	}
	b.WriteString("\n")

	if c.Priced {
		b.WriteString("    " + priceStyle.Render(c.Price) + " " + mutedStyle.Render(c.Unit))
		if c.PerHour != "" {
			b.WriteString("  " + mutedStyle.Render("("+c.PerHour+")"))
		}
		b.WriteString("\n")
	} else if c.Description != "" {
		b.WriteString("    " + valueStyle.Render(c.Description) + "\n")
	}

	for _, f := range c.Features {
		b.WriteString("    ・" + f + "\n")
	}
	b.WriteString("    → " + headerStyle.Render(c.CTA) + "\n")
	if c.Footnote != "" {
		b.WriteString("    " + dimStyle.Render("※"+c.Footnote) + "\n")
	}

	return b.String()
}
