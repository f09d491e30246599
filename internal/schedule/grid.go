package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeGrid returns the ordered, duplicate-free sequence of hour-aligned
// start labels ("HH:00") between opensAt and closesAt, inclusive of both
// ends. A closing time of "00:00" means midnight at the end of the day. A
// closing hour numerically before the opening hour (e.g. 14:00–02:00) means
// the window crosses midnight: the evening segment is emitted first, then
// the early-morning segment, and downstream duration checks rely on that
// order. Equal opening and closing hours denote a 24-hour court.
func TimeGrid(opensAt, closesAt string) []string {
	oh, ok := ParseHour(opensAt)
	if !ok {
		return nil
	}
	ch, ok := ParseHour(closesAt)
	if !ok {
		return nil
	}

	g := newGridBuilder()
	switch {
	case oh == ch && ch != 0:
		// 24-hour court: every hour once, starting at opening.
		for i := 0; i < 24; i++ {
			g.emit(oh + i)
		}
	default:
		if ch == 0 {
			ch = 24
		}
		if ch < oh {
			// Crosses midnight: evening segment up to 24 ("00:00"),
			// then the early-morning segment.
			for h := oh; h <= 24; h++ {
				g.emit(h)
			}
			for h := 1; h <= ch; h++ {
				g.emit(h)
			}
		} else {
			for h := oh; h <= ch; h++ {
				g.emit(h)
			}
		}
	}
	return g.labels
}

type gridBuilder struct {
	labels []string
	seen   map[string]struct{}
}

func newGridBuilder() *gridBuilder {
	return &gridBuilder{seen: make(map[string]struct{})}
}

func (g *gridBuilder) emit(h int) {
	label := HourLabel(h)
	if _, ok := g.seen[label]; ok {
		return
	}
	g.seen[label] = struct{}{}
	g.labels = append(g.labels, label)
}

// HourLabel formats an hour as a canonical "HH:00" label, wrapping 24 to
// "00:00".
func HourLabel(h int) string {
	return fmt.Sprintf("%02d:00", h%24)
}

// ParseHour extracts the hour from an "HH:MM" wall-clock string. Minutes
// are assumed to be 00 and ignored.
func ParseHour(t string) (int, bool) {
	parts := strings.SplitN(t, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}
