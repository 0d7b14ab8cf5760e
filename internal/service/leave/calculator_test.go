package leave

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single weekday", date(2026, time.March, 2), date(2026, time.March, 2), 1},
		{"single saturday", date(2026, time.March, 7), date(2026, time.March, 7), 0},
		{"full week mon-fri", date(2026, time.March, 2), date(2026, time.March, 6), 5},
		{"week including weekend", date(2026, time.March, 2), date(2026, time.March, 8), 5},
		{"two full weeks", date(2026, time.March, 2), date(2026, time.March, 13), 10},
		{"friday to monday", date(2026, time.March, 6), date(2026, time.March, 9), 2},
		{"weekend only", date(2026, time.March, 7), date(2026, time.March, 8), 0},
		{"cross month boundary", date(2026, time.February, 26), date(2026, time.March, 3), 4},
		{"end before start", date(2026, time.March, 6), date(2026, time.March, 2), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WorkingDays(c.start, c.end)
			if got != c.want {
				t.Errorf("WorkingDays(%s, %s) = %d, want %d",
					c.start.Format("2006-01-02"), c.end.Format("2006-01-02"), got, c.want)
			}
		})
	}
}

func TestWorkingDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, time.March, 2, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 3, 0, 1, 0, 0, time.UTC)
	if got := WorkingDays(start, end); got != 2 {
		t.Errorf("WorkingDays across midnight = %d, want 2", got)
	}
}

func TestNationalHolidayCount(t *testing.T) {
	if got := NationalHolidayCount(2025); got != 17 {
		t.Errorf("NationalHolidayCount(2025) = %d, want 17", got)
	}
	if got := NationalHolidayCount(2026); got != 15 {
		t.Errorf("NationalHolidayCount(2026) = %d, want 15", got)
	}
	if got := NationalHolidayCount(1990); got != 0 {
		t.Errorf("NationalHolidayCount(1990) = %d, want 0 for unknown year", got)
	}
}
