package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/DukeRupert/felo-pricing/internal/catalog"
	"github.com/DukeRupert/felo-pricing/internal/domain"
	"github.com/DukeRupert/felo-pricing/internal/pricing"
)

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func TestRenderTable_AlignsWideCharacters(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"月額名称", "総価格"},
		Rows: [][]string{
			{"Trial", "1,300"},
			{"Premium Plus", "100,000"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	want := lipgloss.Width(lines[0])
	for i, l := range lines {
		if w := lipgloss.Width(l); w != want {
			t.Errorf("line %d is %d cells wide, want %d: %q", i, w, want, l)
		}
	}
	if !strings.Contains(out, "  1,300 ") {
		t.Errorf("numeric column should be right-aligned:\n%s", out)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("RenderTable(empty) = %q", got)
	}
}

func TestRenderTable_Title(t *testing.T) {
	out := RenderTable(Table{Title: "追加パッケージ", Rows: [][]string{{"2", "2,600"}}})
	if !strings.HasPrefix(out, "  ") || !strings.Contains(out, "追加パッケージ") {
		t.Errorf("missing title:\n%s", out)
	}
}

func TestRenderPage_Classic(t *testing.T) {
	cat := catalog.MustLoad(catalog.VariantClassic)
	out := RenderPage(pricing.BuildPage(cat, pricing.NewViewState(cat), fixedNow))

	for _, want := range []string{
		"[Businessプラン]",
		"Premium",
		"人気",
		"33,000",
		"約 1,100 円/時間",
		"月額名称",
		"時間（分）",
		"1800",
		"支払い方法は？",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "通貨:") {
		t.Error("single-currency catalog should not show a currency")
	}
}

func TestRenderPage_StandardEnterprise(t *testing.T) {
	cat := catalog.MustLoad(catalog.VariantStandard)
	state := pricing.ViewState{Segment: domain.SegmentEnterprise, Currency: domain.CurrencyUSD}
	out := RenderPage(pricing.BuildPage(cat, state, fixedNow))

	for _, want := range []string{"[Enterpriseプラン]", "プラン金額：弊社へ問い合わせ", "お問い合わせ", "通貨: USD", "プラン比較"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "追加パッケージ") {
		t.Error("enterprise has no add-on table")
	}
}

func TestRenderCard(t *testing.T) {
	out := RenderCard(pricing.PlanCard{
		Name:     "Premium",
		Popular:  true,
		Priced:   true,
		Price:    "$210",
		Unit:     "USD/月",
		Features: []string{"時間: 30 時間/月"},
		CTA:      "今すぐ申し込む",
		Footnote: "月途中のご契約は日割りになりません。",
	})

	for _, want := range []string{"Premium", "人気", "$210 USD/月", "・時間: 30 時間/月", "→ 今すぐ申し込む", "※月途中"} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}
}
