package leave

import "time"

// WorkingDays counts weekdays between start and end inclusive. Saturdays and
// Sundays are skipped; national holidays are not, they are reported separately
// in the balance summary.
func WorkingDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}

	start = truncateToDay(start)
	end = truncateToDay(end)

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		days++
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// nationalHolidays lists the Indonesian national holidays per year. Only the
// count feeds the balance summary; dates are kept for future use.
var nationalHolidays = map[int][]string{
	2025: {
		"2025-01-01", "2025-01-27", "2025-01-29", "2025-03-29", "2025-03-31",
		"2025-04-01", "2025-04-18", "2025-04-20", "2025-05-01", "2025-05-12",
		"2025-05-29", "2025-06-01", "2025-06-06", "2025-06-27", "2025-08-17",
		"2025-09-05", "2025-12-25",
	},
	2026: {
		"2026-01-01", "2026-01-16", "2026-02-17", "2026-03-19", "2026-03-20",
		"2026-03-21", "2026-04-03", "2026-05-01", "2026-05-14", "2026-05-27",
		"2026-05-31", "2026-06-16", "2026-08-17", "2026-08-25", "2026-12-25",
	},
}

// NationalHolidayCount returns the number of national holidays registered for
// a year. Years without a registered list count zero.
func NationalHolidayCount(year int) int {
	return len(nationalHolidays[year])
}
