package catalog

import "github.com/DukeRupert/felo-pricing/internal/domain"

func fixed(name string, hours int, price float64) domain.FixedPlan {
	return domain.FixedPlan{
		PlanDetails:   domain.PlanDetails{Name: name},
		IncludedHours: hours,
		Price:         price,
	}
}

// newClassic is the yen-only catalog. Its prices differ from the standard
// catalog for the same plan names; both are published as-is.
func newClassic() *Catalog {
	premium := fixed("Premium", 30, 33000)
	premium.Popular = true

	personalPremium := fixed("Premium", 15, 9600)
	personalPremium.Popular = true

	return &Catalog{
		variant:    VariantClassic,
		title:      "シンプルで柔軟な料金プラン",
		lead:       "用途に合わせて Business と Personal を選べます。",
		segments:   []domain.Segment{domain.SegmentBusiness, domain.SegmentPersonal},
		currencies: []domain.CurrencyCode{domain.CurrencyJPY},
		plans: map[domain.Segment][]domain.Plan{
			domain.SegmentBusiness: {
				fixed("Trial", 1, 1300),
				fixed("Professional", 10, 12000),
				premium,
				fixed("Premium Plus", 100, 100000),
			},
			domain.SegmentPersonal: {
				fixed("Trial", 2, 1600),
				fixed("Professional", 6, 4320),
				personalPremium,
			},
		},
		addOns: []domain.AddOnPackage{
			{IncludedHours: 2, Price: 2600},
			{IncludedHours: 6, Price: 7200},
			{IncludedHours: 15, Price: 16500},
			{IncludedHours: 30, Price: 30000},
		},
		cardFeatures:  []string{"HP非公開 / 内部利用OK", "リアルタイム翻訳・要約対応"},
		cardFootnote:  "月途中のご契約は日割りになりません。",
		faq:           classicFAQ,
		showPerHour:   true,
		showPlanTable: true,
		showAddOnMins: true,
		segmentBadge:  true,
	}
}

var classicFAQ = []domain.FAQEntry{
	{
		Question: "支払い方法は？",
		Answer:   "クレジットカード/請求書（銀行振込）に対応しています。請求書払いはBusinessプランでご利用いただけます。",
	},
	{
		Question: "時間は翌月へ繰り越せますか？",
		Answer:   "いいえ。各月の時間・追加パッケージの有効期限は当月末までです。",
	},
	{
		Question: "途中でプラン変更できますか？",
		Answer:   "いつでも変更可能です。変更後は次回請求サイクルから新プランが適用されます。",
	},
	{
		Question: "超過時の扱いは？",
		Answer:   "ご利用時間が上限に達した場合は、追加パッケージをご購入ください。",
	},
}
