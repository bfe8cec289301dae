package reports

import (
	"errors"
	"time"
)

// GetDateRange returns the start and end time for the given preset, or the
// custom window when dateRange == custom (startStr/endStr in "2006-01-02").
// The "all" preset returns zero times, meaning no date filtering.
func GetDateRange(dateRange, startStr, endStr string) (time.Time, time.Time, error) {
	now := time.Now()
	loc := now.Location()

	switch dateRange {
	case DateRangeDaily:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		end := start.Add(24*time.Hour - time.Second)
		return start, end, nil
	case DateRangeWeekly:
		weekday := int(now.Weekday())
		start := time.Date(now.Year(), now.Month(), now.Day()-weekday, 0, 0, 0, 0, loc)
		end := start.Add(7*24*time.Hour - time.Second)
		return start, end, nil
	case DateRangeMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		end := start.AddDate(0, 1, 0).Add(-time.Second)
		return start, end, nil
	case DateRangeYearly:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
		end := start.AddDate(1, 0, 0).Add(-time.Second)
		return start, end, nil
	case DateRangeCustom:
		if startStr == "" || endStr == "" {
			return time.Time{}, time.Time{}, errors.New("custom range requires startDate and endDate")
		}
		start, err := time.ParseInLocation("2006-01-02", startStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid startDate, expected YYYY-MM-DD")
		}
		end, err := time.ParseInLocation("2006-01-02", endStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid endDate, expected YYYY-MM-DD")
		}
		end = end.Add(24*time.Hour - time.Second)
		if end.Before(start) {
			return time.Time{}, time.Time{}, errors.New("endDate is before startDate")
		}
		return start, end, nil
	case DateRangeAll, "":
		return time.Time{}, time.Time{}, nil
	}
	return time.Time{}, time.Time{}, errors.New("unknown date range: " + dateRange)
}
