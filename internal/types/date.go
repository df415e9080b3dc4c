package types

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// CalendarDate is a day on the local calendar, not an instant.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (CalendarDate, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns local midnight of the date.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *CalendarDate) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type DateRange struct {
	From CalendarDate `json:"dateFrom"`
	To   CalendarDate `json:"dateTo"`
}
