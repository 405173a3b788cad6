package utils

import "time"

// LoadLocation resolves an IANA zone name, falling back to UTC when the zone
// database does not know it.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}

// Use explicit "seconds" variant for DB storage
func NowUnixSeconds() int64 { return time.Now().Unix() }

// MonthBounds returns [start of month, start of next month) in loc as unix seconds.
func MonthBounds(t time.Time, loc *time.Location) (int64, int64) {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	return start.Unix(), start.AddDate(0, 1, 0).Unix()
}

// YearBounds returns [Jan 1 of year, Jan 1 of year+1) in loc as unix seconds.
func YearBounds(year int, loc *time.Location) (int64, int64) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return start.Unix(), start.AddDate(1, 0, 0).Unix()
}

// ParseDate accepts YYYY-MM-DD or RFC3339.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
