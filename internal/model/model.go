package model

import "time"

// Occurrence represents a single concrete instance of a calendar event
// (after recurrence expansion and timezone normalization). Occurrences only
// feed design-time preview text; the generated layout never depends on them.
type Occurrence struct {
	SourceID string // calendar source ID
	UID      string // iCalendar UID

	// InstanceKey uniquely identifies a single occurrence of a recurring
	// event, derived from the local start time.
	InstanceKey string

	Summary string
	AllDay  bool

	// Start / End are in the configured display timezone.
	Start time.Time
	End   time.Time
}

// Preview carries sample text shown only by layout editors (tools:text).
type Preview struct {
	// Title replaces the header title in the editor preview.
	Title string

	// Days holds one entry per cell key, in cell-key order.
	Days []PreviewDay
}

// PreviewDay is the sample content of a single cell.
type PreviewDay struct {
	Number string
	Items  []string
}

// Day returns the preview entry for cell key k, or nil when out of range.
func (p *Preview) Day(k int) *PreviewDay {
	if p == nil || k < 0 || k >= len(p.Days) {
		return nil
	}
	return &p.Days[k]
}
