package handler

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DukeRupert/felo-pricing/internal/domain"
	"github.com/DukeRupert/felo-pricing/internal/pricing"
)

// TemplateFuncs returns a FuncMap with custom template functions
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Price functions
		"formatPrice": func(amount float64, code domain.CurrencyCode) string {
			return pricing.FormatPrice(amount, code)
		},
		"formatAmount": func(amount float64, code domain.CurrencyCode) string {
			return pricing.FormatAmount(amount, code)
		},
		"formatCount": pricing.FormatCount,
		"unitLabel":   pricing.UnitLabel,

		// String functions
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"title": func(v any) string {
			return cases.Title(language.English).String(fmt.Sprint(v))
		},
		"join": strings.Join,

		// JSON encoding for safe JavaScript embedding
		"json": func(v any) template.JS {
			b, err := json.Marshal(v)
			if err != nil {
				return template.JS(`""`)
			}
			return template.JS(b)
		},

		"add": func(a, b int) int {
			return a + b
		},
		"ternary": func(condition bool, trueVal, falseVal any) any {
			if condition {
				return trueVal
			}
			return falseVal
		},
	}
}
