package util

import "time"

const dayLayout = "2006-01-02"

// DayRange returns [now-lookback, now] as YYYY-MM-DD strings in UTC.
func DayRange(now time.Time, lookback time.Duration) (from, to string) {
	now = now.UTC()
	return now.Add(-lookback).Format(dayLayout), now.Format(dayLayout)
}

// FromUnix converts epoch seconds to UTC time.
func FromUnix(ts int64) time.Time {
	return time.Unix(ts, 0).UTC()
}
