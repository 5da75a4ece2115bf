package timecalc

import (
	"fmt"
	"time"
)

// FormatDuration formats d as "1h 4m" or "16m". Seconds are dropped.
func FormatDuration(d time.Duration) string {
	minutes := int64(d / time.Minute)
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatHours formats d as decimal hours with two places, counting whole
// minutes only.
func FormatHours(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(d/time.Minute)/60)
}

// FormatDurationHHMMSS formats d as HH:MM:SS.
func FormatDurationHHMMSS(d time.Duration) string {
	seconds := int64(d / time.Second)
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
