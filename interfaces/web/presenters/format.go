package presenters

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Money formats an amount as US dollars with thousands separators.
func Money(amount float64) string {
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -amount)
	}
	return "$" + humanize.FormatFloat("#,###.##", amount)
}

// HoursAgo describes a point hours before now in words.
func HoursAgo(hours int, now time.Time) string {
	if hours <= 0 {
		return "just now"
	}
	return humanize.RelTime(now.Add(-time.Duration(hours)*time.Hour), now, "ago", "from now")
}

// Percent formats a ratio such as 0.1 as "10%".
func Percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

// Count formats an integer with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
