package reltime

import (
	"math"
	"time"
)

// Clock supplies the reference instant for Parse. It exists so callers can
// pin time in tests; the package default reads the system clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// toComponents decomposes an instant into calendar components using its
// own wall clock. The location comes back separately so fromComponents can
// rebuild an instant on the same wall.
func toComponents(t time.Time) (TimeComponents, *time.Location) {
	return TimeComponents{
		Years:   int64(t.Year()),
		Days:    uint32(t.YearDay() - 1),
		Seconds: uint32(t.Hour()*secondsPerHour + t.Minute()*secondsPerMinute + t.Second()),
		Nanos:   uint32(t.Nanosecond()),
	}, t.Location()
}

// fromComponents is the inverse of toComponents. Components whose year
// fell outside the representable range fail with InvalidTimestampError;
// everything finer is valid by construction of the calendar engine.
func fromComponents(c TimeComponents, loc *time.Location) (time.Time, error) {
	if c.Years > math.MaxInt32 || c.Years < math.MinInt32 {
		return time.Time{}, &InvalidTimestampError{Components: c}
	}
	month, day := c.SplitMonthsDays()
	hour, minute, second := c.SplitClock()
	return time.Date(
		int(c.Years),
		time.Month(month+1),
		int(day+1),
		int(hour), int(minute), int(second),
		int(c.Nanos),
		loc,
	), nil
}
