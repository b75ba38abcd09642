package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// DateString formats t as YYYY-MM-DD in UTC
func DateString(t time.Time) string {
	return t.UTC().Format(layout)
}

// UnixDateString is DateString for provider epoch seconds
func UnixDateString(sec int64) string {
	return DateString(time.Unix(sec, 0))
}
