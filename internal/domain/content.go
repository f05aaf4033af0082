// Package domain contains core business types for the pricing site.
//
// This file defines the static copy blocks around the price list.
package domain

import (
	"maps"
	"slices"
)

// ComparisonRow is one line of the segment comparison table.
// Values are keyed by segment so the table can be rendered column by column.
type ComparisonRow struct {
	Item   string
	Values map[Segment]string
}

// Clone returns a copy of the row with its own value map.
func (r ComparisonRow) Clone() ComparisonRow {
	r.Values = maps.Clone(r.Values)
	return r
}

// Value returns the cell for a segment, or an empty string.
func (r ComparisonRow) Value(s Segment) string {
	return r.Values[s]
}

// SegmentNote summarizes how a segment differs from the others.
type SegmentNote struct {
	Segment Segment
	Lines   []string
}

// Clone returns a copy of the note with its own lines.
func (n SegmentNote) Clone() SegmentNote {
	n.Lines = slices.Clone(n.Lines)
	return n
}

// FAQEntry is a question and answer pair.
type FAQEntry struct {
	Question string
	Answer   string
}
