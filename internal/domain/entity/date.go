package entity

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// Years outside this range do not survive the four-digit JSON form.
const (
	MinYear = 1
	MaxYear = 9999
)

// ErrInvalidDate is returned when year/month/day do not compose a real calendar date.
var ErrInvalidDate = errors.New("invalid calendar date")

// Date is a calendar date without a time of day.
// A Date value built through NewDate or ParseDateFields always names a real day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateFields is the raw year/month/day text as typed into a form.
type DateFields struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// NewDate composes a Date, rejecting years outside MinYear..MaxYear and anything
// time.Date would normalise (Feb 30, Apr 31, month 13...).
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, errors.Wrapf(ErrInvalidDate, "year %d", year)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errors.Wrapf(ErrInvalidDate, "%04d-%02d-%02d", year, int(month), day)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDateFields converts form text into a Date.
func ParseDateFields(fields DateFields) (Date, error) {
	year, err := strconv.Atoi(strings.TrimSpace(fields.Year))
	if err != nil {
		return Date{}, errors.Wrapf(ErrInvalidDate, "year %q", fields.Year)
	}
	month, err := strconv.Atoi(strings.TrimSpace(fields.Month))
	if err != nil {
		return Date{}, errors.Wrapf(ErrInvalidDate, "month %q", fields.Month)
	}
	day, err := strconv.Atoi(strings.TrimSpace(fields.Day))
	if err != nil {
		return Date{}, errors.Wrapf(ErrInvalidDate, "day %q", fields.Day)
	}

	return NewDate(year, time.Month(month), day)
}

// MustDate is NewDate for literals known to be valid. It panics otherwise.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}

	return d
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// IsZero reports whether the date was never set.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Fields renders the date back into form text.
func (d Date) Fields() DateFields {
	return DateFields{
		Year:  strconv.Itoa(d.Year),
		Month: strconv.Itoa(int(d.Month)),
		Day:   strconv.Itoa(d.Day),
	}
}

// String returns the ISO form, e.g. 2024-09-29.
func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// MarshalJSON encodes the date as "2006-01-02".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "2006-01-02" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithStack(err)
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return errors.Wrapf(ErrInvalidDate, "%q", raw)
	}
	decoded, err := NewDate(t.Year(), t.Month(), t.Day())
	if err != nil {
		return err
	}
	*d = decoded

	return nil
}
