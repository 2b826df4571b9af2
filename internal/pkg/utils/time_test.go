package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	t.Run("zero pads day and month", func(t *testing.T) {
		date := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
		assert.Equal(t, "05/03/2024", FormatDate(date))
	})

	t.Run("double digit day and month", func(t *testing.T) {
		date := time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "25/12/2023", FormatDate(date))
	})
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 45 * time.Second, "45s ago"},
		{"last second before a minute", 59 * time.Second, "59s ago"},
		{"exactly one minute", 60 * time.Second, "1m ago"},
		{"minutes", 30 * time.Minute, "30m ago"},
		{"last minute before an hour", 59 * time.Minute, "59m ago"},
		{"exactly one hour", time.Hour, "1h ago"},
		{"hours", 23 * time.Hour, "23h ago"},
		{"exactly one day", 24 * time.Hour, "1d ago"},
		{"days", 6 * 24 * time.Hour, "6d ago"},
		{"exactly one week", 7 * 24 * time.Hour, "1w ago"},
		{"weeks", 29 * 24 * time.Hour, "4w ago"},
		{"thirty day month", 30 * 24 * time.Hour, "1mo ago"},
		{"months", 11 * 30 * 24 * time.Hour, "11mo ago"},
		{"one year at 365 days", 365 * 24 * time.Hour, "1y ago"},
		{"years", 2 * 365 * 24 * time.Hour, "2y ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatTimeAgo(now.Add(-tc.ago), now))
		})
	}
}
