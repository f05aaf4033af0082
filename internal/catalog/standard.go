package catalog

import "github.com/DukeRupert/felo-pricing/internal/domain"

// prices builds a price map in selector order: JPY, USD, CNY, TWD.
func prices(jpy, usd, cny, twd float64) map[domain.CurrencyCode]float64 {
	return map[domain.CurrencyCode]float64{
		domain.CurrencyJPY: jpy,
		domain.CurrencyUSD: usd,
		domain.CurrencyCNY: cny,
		domain.CurrencyTWD: twd,
	}
}

func tiered(name string, hours int, p map[domain.CurrencyCode]float64, transcription, translation int) domain.TieredPlan {
	return domain.TieredPlan{
		PlanDetails: domain.PlanDetails{
			Name:                   name,
			TranscriptionWordLimit: transcription,
			TranslationWordLimit:   translation,
		},
		IncludedHours:    hours,
		PricesByCurrency: p,
	}
}

func popular(p domain.TieredPlan) domain.TieredPlan {
	p.Popular = true
	return p
}

func newStandard() *Catalog {
	business := []domain.Plan{
		tiered("Trial", 1, prices(1200, 8.2, 59, 250), 500, 5000),
		tiered("Professional", 10, prices(11000, 79, 550, 2400), 500, 5000),
		popular(tiered("Premium", 30, prices(32000, 210, 1500, 6600), 500, 5000)),
		tiered("Premium Plus", 100, prices(99999, 660, 4800, 19999), 500, 5000),
	}

	personal := []domain.Plan{
		tiered("Trial", 2, prices(1500, 9.9, 69, 299), 200, 1000),
		tiered("Professional", 6, prices(4200, 29, 199, 850), 200, 1000),
		popular(tiered("Premium", 15, prices(9500, 65, 450, 1900), 200, 1000)),
		tiered("Premium Plus", 30, prices(15500, 105, 750, 3200), 200, 1000),
		tiered("Premium Max", 60, prices(29999, 199, 1400, 5999), 200, 1000),
	}

	enterprise := []domain.Plan{
		domain.DescriptivePlan{
			PlanDetails: domain.PlanDetails{
				Name:                   "Enterpriseプラン",
				TranscriptionWordLimit: 500,
				TranslationWordLimit:   20000,
				Extras:                 []string{"ユーザー統一管理", "企業通用辞書", "専用サポート"},
			},
			Description: "プラン金額：弊社へ問い合わせ",
		},
	}

	return &Catalog{
		variant:    VariantStandard,
		title:      "シンプルで柔軟な料金プラン",
		lead:       "用途に合わせて Business / Personal / Enterprise を切り替えてご確認いただけます。",
		segments:   []domain.Segment{domain.SegmentPersonal, domain.SegmentBusiness, domain.SegmentEnterprise},
		currencies: domain.AllCurrencies(),
		plans: map[domain.Segment][]domain.Plan{
			domain.SegmentPersonal:   personal,
			domain.SegmentBusiness:   business,
			domain.SegmentEnterprise: enterprise,
		},
		addOns: []domain.AddOnPackage{
			{IncludedHours: 2, PricesByCurrency: prices(2400, 16, 110, 490)},
			{IncludedHours: 6, PricesByCurrency: prices(6999, 45, 320, 1400)},
			{IncludedHours: 15, PricesByCurrency: prices(15999, 109, 750, 3200)},
			{IncludedHours: 30, PricesByCurrency: prices(29999, 199, 1400, 5999)},
		},
		cardFeatures:   []string{"リアルタイム翻訳・要約対応", "個人コンソール付き"},
		comparison:     standardComparison,
		segmentNotes:   standardNotes,
		noAddOnSegment: map[domain.Segment]bool{domain.SegmentEnterprise: true},
	}
}

func row(item, personal, business, enterprise string) domain.ComparisonRow {
	return domain.ComparisonRow{
		Item: item,
		Values: map[domain.Segment]string{
			domain.SegmentPersonal:   personal,
			domain.SegmentBusiness:   business,
			domain.SegmentEnterprise: enterprise,
		},
	}
}

var standardComparison = []domain.ComparisonRow{
	row("対象", "個人ユーザー", "SMB・チーム", "大規模企業・代理店"),
	row("請求書発行", "✕ 個人用途のみ", "◯", "◯"),
	row("音声辞書", "最大200語", "最大500語", "最大500語"),
	row("翻訳辞書", "最大1,000ペア", "最大5,000ペア", "最大20,000ペア"),
	row("企業通用辞書", "✕", "✕", "◯"),
	row("ユーザー統一管理", "✕", "✕", "◯"),
	row("有効期間", "1か月（自動更新）", "1か月（自動更新）", "1年または1年半"),
	row("追加パッケージ", "4種類（当月有効）", "4種類（当月有効）", "自由追加"),
	row("時間配分", "✕", "✕", "◯"),
	row("サポート", "標準", "標準", "優先サポート"),
	row("導入", "即時", "即時", "個別導入（要相談）"),
}

var standardNotes = []domain.SegmentNote{
	{
		Segment: domain.SegmentPersonal,
		Lines: []string{
			"個人でのご利用に限定されており、企業向けの請求書は発行できません。",
			"辞書・用語集の利用には数の制限があります。",
			"有効期限は1か月となります。",
		},
	},
	{
		Segment: domain.SegmentEnterprise,
		Lines: []string{
			"企業向けの請求書発行が可能で、有効期間は1年から1年半です。",
			"大容量の辞書および企業共通辞書をご利用いただけるほか、管理画面によるユーザーの一元管理や利用時間の配分機能もご提供いたします。",
			"また、優先的なサポート体制も含まれております。",
		},
	},
}
