package utils

import (
	"fmt"
	"time"
)

// FormatDate renders a timestamp as zero-padded DD/MM/YYYY using the
// timestamp's own calendar fields. No timezone conversion happens here;
// callers pass values in whatever location they were recorded in.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatTimeAgo buckets now-t into the coarsest unit with a value of at
// least one, using fixed divisors (30-day months, 365-day years). The
// bucketing is intentionally not calendar-aware; it mirrors the relative
// timestamps shown next to questionnaire activity.
func FormatTimeAgo(t, now time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)

	const (
		minute = 60
		hour   = 60 * minute
		day    = 24 * hour
		week   = 7 * day
		month  = 30 * day
		year   = 365 * day
	)

	switch {
	case seconds >= year:
		return fmt.Sprintf("%dy ago", seconds/year)
	case seconds >= month:
		return fmt.Sprintf("%dmo ago", seconds/month)
	case seconds >= week:
		return fmt.Sprintf("%dw ago", seconds/week)
	case seconds >= day:
		return fmt.Sprintf("%dd ago", seconds/day)
	case seconds >= hour:
		return fmt.Sprintf("%dh ago", seconds/hour)
	case seconds >= minute:
		return fmt.Sprintf("%dm ago", seconds/minute)
	default:
		return fmt.Sprintf("%ds ago", seconds)
	}
}
