// Package timestamp formats and parses the timestamp wire formats used by
// generated serializers. Epoch seconds and date-times carry milliseconds;
// finer precision is truncated.
package timestamp

import (
	"fmt"
	"math"
	"time"

	"github.com/araddon/dateparse"
)

const (
	dateTimeLayout = "2006-01-02T15:04:05.999Z"
	httpDateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"
)

// FormatEpochSeconds returns t as fractional seconds since the Unix epoch
// with millisecond precision.
func FormatEpochSeconds(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1e3
}

// ParseEpochSeconds converts fractional epoch seconds to a UTC time.
func ParseEpochSeconds(v float64) time.Time {
	return time.UnixMilli(int64(math.Round(v * 1e3))).UTC()
}

// FormatDateTime returns t as an ISO-8601 date-time in UTC.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(dateTimeLayout)
}

// ParseDateTime parses an ISO-8601 date-time. Offsets other than Z are
// accepted and normalized to UTC.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp: parse date-time %q: %w", s, err)
	}
	return t.UTC(), nil
}

// FormatHTTPDate returns t in the IMF-fixdate form used by HTTP.
func FormatHTTPDate(t time.Time) string {
	return t.UTC().Format(httpDateLayout)
}

// ParseHTTPDate parses an IMF-fixdate.
func ParseHTTPDate(s string) (time.Time, error) {
	if t, err := time.Parse(httpDateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp: parse http-date %q: %w", s, err)
	}
	return t.UTC(), nil
}
