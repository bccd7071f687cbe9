package transform

import (
	"time"

	jc "github.com/reoring/jsoncodable"
)

// TimestampLayout is the fixed ISO-8601 layout used by Timestamp: UTC with
// millisecond precision and a literal Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp converts between TimestampLayout strings and time.Time. Encoding
// normalizes to UTC and truncates to milliseconds.
func Timestamp() jc.Transformer[string, time.Time] {
	return jc.NewTransformer("timestamp",
		func(s string) (time.Time, bool) {
			t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
			return t, err == nil
		},
		func(t time.Time) (string, bool) {
			return t.UTC().Format(TimestampLayout), true
		},
	).WithFormat("date-time")
}

// RFC3339 converts between RFC3339 strings and time.Time. Fractional seconds
// are optional on input; output is UTC RFC3339Nano.
func RFC3339() jc.Transformer[string, time.Time] {
	return jc.NewTransformer("rfc3339",
		func(s string) (time.Time, bool) {
			t, err := parseRFC3339(s)
			return t, err == nil
		},
		func(t time.Time) (string, bool) {
			return formatRFC3339Canonical(t), true
		},
	).WithFormat("date-time")
}

// UnixSeconds converts between integer Unix seconds and time.Time.
func UnixSeconds() jc.Transformer[int64, time.Time] {
	return jc.NewTransformer("unix-seconds",
		func(s int64) (time.Time, bool) { return time.Unix(s, 0).UTC(), true },
		func(t time.Time) (int64, bool) { return t.Unix(), true },
	)
}

// Duration converts between Go duration strings ("1h30m") and time.Duration.
func Duration() jc.Transformer[string, time.Duration] {
	return jc.NewTransformer("duration",
		func(s string) (time.Duration, bool) {
			d, err := time.ParseDuration(s)
			return d, err == nil
		},
		func(d time.Duration) (string, bool) { return d.String(), true },
	)
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
