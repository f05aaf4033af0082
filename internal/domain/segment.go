// Package domain contains core business types for the pricing site.
//
// This file defines customer segments, the tabs of the pricing page.
package domain

import "strings"

// Segment is the customer category whose plan list is shown.
type Segment string

const (
	SegmentPersonal   Segment = "personal"
	SegmentBusiness   Segment = "business"
	SegmentEnterprise Segment = "enterprise"
)

// String returns the string representation of the segment.
func (s Segment) String() string {
	return string(s)
}

// IsValid returns true if the segment is a recognized value.
func (s Segment) IsValid() bool {
	switch s {
	case SegmentPersonal, SegmentBusiness, SegmentEnterprise:
		return true
	}
	return false
}

// DisplayName returns the English segment name used in badges and table headers.
func (s Segment) DisplayName() string {
	switch s {
	case SegmentPersonal:
		return "Personal"
	case SegmentBusiness:
		return "Business"
	case SegmentEnterprise:
		return "Enterprise"
	}
	return string(s)
}

// TabLabel returns the label of the segment's tab button.
func (s Segment) TabLabel() string {
	return s.DisplayName() + "プラン"
}

// ParseSegment converts user input into a Segment.
// Membership in a particular catalog is checked by the caller.
func ParseSegment(s string) (Segment, error) {
	seg := Segment(strings.ToLower(strings.TrimSpace(s)))
	if !seg.IsValid() {
		return "", Invalid("segment.parse", "unknown segment")
	}
	return seg, nil
}
