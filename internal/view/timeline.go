package view

import (
	"strings"
	"time"

	"shipfront/internal/domain"
)

// TimelineItem is one rendered row of the tracking timeline.
type TimelineItem struct {
	Label string
	Badge Badge
	When  string
	Where string
}

// Timeline maps tracking events to display rows. The server sends events
// oldest-first and the client does not re-sort them.
func Timeline(events []domain.TrackingEvent) []TimelineItem {
	items := make([]TimelineItem, 0, len(events))
	for _, e := range events {
		status := e.EffectiveStatus()
		items = append(items, TimelineItem{
			Label: humanize(status),
			Badge: BadgeFor(status),
			When:  formatTime(e.Timestamp),
			Where: e.LocationName,
		})
	}
	return items
}

// humanize turns RAW_ENUM_VALUES into readable labels.
func humanize(s domain.ShipmentStatus) string {
	return strings.ReplaceAll(string(s), "_", " ")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 2, 2006 3:04 PM")
}

// FormatTime exposes the shared timestamp format to page templates.
func FormatTime(t time.Time) string { return formatTime(t) }
