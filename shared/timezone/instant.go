package timezone

import (
	"countdown/shared/constant"
	"countdown/shared/failure"
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrMalformedCivil = errors.New("malformed civil date/time")

// Instant is an absolute point in time with millisecond precision.
type Instant int64

// InvalidInstant marks an instant built from unusable input.
const InvalidInstant Instant = math.MinInt64

const invalidDate = "Invalid Date"

func InstantOf(t time.Time) Instant {
	return Instant(t.UnixMilli())
}

func (i Instant) IsValid() bool {
	return i != InvalidInstant
}

// Time returns the instant in UTC.
func (i Instant) Time() time.Time {
	return time.UnixMilli(int64(i)).UTC()
}

// Sub returns i - other in milliseconds.
func (i Instant) Sub(other Instant) int64 {
	return int64(i) - int64(other)
}

func (i Instant) String() string {
	if !i.IsValid() {
		return invalidDate
	}

	return i.Time().Format("2006-01-02T15:04:05.000Z07:00")
}

// CivilDateTime is a calendar date and time of day with no zone attached.
type CivilDateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// ParseCivil parses a "2006-01-02" date and a "15:04:05" time. An empty time
// means midnight.
func ParseCivil(date, timeOfDay string) (CivilDateTime, error) {
	if timeOfDay == constant.Empty {
		timeOfDay = constant.DefaultCivilTime
	}

	return ParseCivilISO(date + "T" + timeOfDay)
}

// ParseCivilISO parses "2006-01-02T15:04:05".
func ParseCivilISO(value string) (CivilDateTime, error) {
	t, err := time.Parse(constant.CivilDateTimeLayout, value)
	if err != nil {
		return CivilDateTime{}, failure.BadRequest(fmt.Errorf("%w %q: %w", ErrMalformedCivil, value, err)) //nolint:wrapcheck
	}

	return CivilOf(t), nil
}

// CivilOf reads the calendar fields of t in its own location.
func CivilOf(t time.Time) CivilDateTime {
	return CivilDateTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// In interprets the civil fields as wall-clock time in loc.
func (c CivilDateTime) In(loc *time.Location) time.Time {
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, 0, loc)
}

// Valid reports whether every field is in range, i.e. time.Date would not
// have to normalize it.
func (c CivilDateTime) Valid() bool {
	return CivilOf(c.In(time.UTC)) == c
}

func (c CivilDateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", c.Year, int(c.Month), c.Day, c.Hour, c.Minute, c.Second)
}
