package format

import (
	"fmt"
	"time"
)

// TimeRange formats a start/end pair of HH:MM labels.
func TimeRange(start, end string) string {
	return fmt.Sprintf("%s-%s", start, end)
}

// DateLabel formats a YYYY-MM-DD date for display with its weekday. The raw
// string is returned unchanged when it does not parse.
func DateLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon, 02 Jan 2006")
}

// Duration formats a playing duration in hours.
func Duration(hours float64) string {
	whole := int(hours)
	minutes := int((hours - float64(whole)) * 60)
	if minutes == 0 {
		return fmt.Sprintf("%d h", whole)
	}
	if whole == 0 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%d h %d min", whole, minutes)
}
