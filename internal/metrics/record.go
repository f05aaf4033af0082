package metrics

import "time"

// PageViewed records a rendered pricing page.
func PageViewed(variant, segment, currency string) {
	PageViews.WithLabelValues(variant, segment, currency).Inc()
}

// SelectionRejected records a rejected query parameter.
func SelectionRejected(field string) {
	RejectedSelections.WithLabelValues(field).Inc()
}

// ExportCompleted records a successful export run
func ExportCompleted(duration time.Duration, pages int) {
	ExportsTotal.WithLabelValues("completed").Inc()
	ExportDuration.Observe(duration.Seconds())
	ExportedPages.Add(float64(pages))
}

// ExportFailed records a failed export run
func ExportFailed() {
	ExportsTotal.WithLabelValues("failed").Inc()
}
