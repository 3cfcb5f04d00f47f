package utils

import "time"

// DateKeyLayout is the calendar-day key format: local date, no time zone
// conversion beyond truncating to the day.
const DateKeyLayout = "2006-01-02"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// DateKey truncates t to its local calendar day.
func DateKey(t time.Time) string { return t.Format(DateKeyLayout) }

func ValidDateKey(s string) bool {
	_, err := time.ParseInLocation(DateKeyLayout, s, time.Local)
	return err == nil
}

// DateKeysInRange lists every day key from start through end inclusive.
// Returns nil when either key is malformed or the range is inverted.
func DateKeysInRange(start, end string) []string {
	from, err := time.ParseInLocation(DateKeyLayout, start, time.Local)
	if err != nil {
		return nil
	}
	to, err := time.ParseInLocation(DateKeyLayout, end, time.Local)
	if err != nil || to.Before(from) {
		return nil
	}

	var keys []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		keys = append(keys, DateKey(d))
	}
	return keys
}
