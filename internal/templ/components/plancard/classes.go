package plancard

import twmerge "github.com/Oudwins/tailwind-merge-go"

const (
	cardBase    = "relative flex flex-col rounded-2xl border border-zinc-200 bg-white p-6 shadow-sm transition hover:shadow-md"
	cardPopular = "border-zinc-900"
	gridBase    = "grid gap-5 md:grid-cols-2 lg:grid-cols-4"
	gridSingle  = "md:grid-cols-1 lg:grid-cols-1"
)

// CardClass returns the class list of a card, highlighting the popular plan.
func CardClass(popular bool) string {
	if popular {
		return twmerge.Merge(cardBase, cardPopular)
	}
	return cardBase
}

// GridClass returns the class list of the card grid.
func GridClass(single bool) string {
	if single {
		return twmerge.Merge(gridBase, gridSingle)
	}
	return gridBase
}
