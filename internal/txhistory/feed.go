package txhistory

import "github.com/la-castro-web/solanapix/internal/activity"

// DefaultVisibleCount is how many records a fresh feed exposes before the
// consumer asks to see everything.
const DefaultVisibleCount = 5

// Feed is one snapshot of the activity history for an address, newest
// first. The full window is always retained; the visible count only
// controls the slice handed to a renderer and has no effect on the data.
type Feed struct {
	Records []activity.Record `json:"records"`

	visibleCount int
}

// newFeed wraps the classified records with the default display window.
func newFeed(records []activity.Record) *Feed {
	return &Feed{
		Records:      records,
		visibleCount: DefaultVisibleCount,
	}
}

// Visible returns the records currently exposed for rendering.
func (f *Feed) Visible() []activity.Record {
	if f.visibleCount >= len(f.Records) {
		return f.Records
	}
	return f.Records[:f.visibleCount]
}

// ShowAll widens the display window to the whole feed.
func (f *Feed) ShowAll() {
	f.visibleCount = len(f.Records)
}

// ShowLess restores the default display window.
func (f *Feed) ShowLess() {
	f.visibleCount = DefaultVisibleCount
}
