package reltime

const (
	monthsPerYear    = 12
	daysPerWeek      = 7
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	nanosPerSecond   = 1_000_000_000
)

var (
	daysInCommonMonth = [monthsPerYear]uint32{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysInLeapMonth   = [monthsPerYear]uint32{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	daysBeforeCommonMonth = [monthsPerYear]uint32{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	daysBeforeLeapMonth   = [monthsPerYear]uint32{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
)

// TimeComponents is a decomposed instant used as the arithmetic
// accumulator: a signed proleptic-Gregorian year, the zero-indexed day
// within that year, the second within that day and the nanosecond within
// that second. Every mutation restores the field ranges before returning;
// Nanos may exceed 999 999 999 only to represent a leap second until the
// next normalization folds it back.
type TimeComponents struct {
	Years   int64
	Days    uint32
	Seconds uint32
	Nanos   uint32
}

// IsLeapYear applies the Gregorian rule to the instance's year.
func (c *TimeComponents) IsLeapYear() bool {
	return c.Years%4 == 0 && (c.Years%400 == 0 || c.Years%100 != 0)
}

// daysInYear returns the total day count of the instance's year together
// with the per-month and cumulative day tables for it.
func (c *TimeComponents) daysInYear() (uint32, *[monthsPerYear]uint32, *[monthsPerYear]uint32) {
	if c.IsLeapYear() {
		return 366, &daysInLeapMonth, &daysBeforeLeapMonth
	}
	return 365, &daysInCommonMonth, &daysBeforeCommonMonth
}

// SplitMonthsDays converts the day-of-year into a zero-indexed month and
// zero-indexed day within that month.
func (c *TimeComponents) SplitMonthsDays() (month, day uint32) {
	_, _, sums := c.daysInYear()
	month = monthsPerYear - 1
	for month > 0 && sums[month] > c.Days {
		month--
	}
	return month, c.Days - sums[month]
}

// SplitClock converts the second-of-day into hour, minute and second.
func (c *TimeComponents) SplitClock() (hour, minute, second uint32) {
	second = c.Seconds
	hour = second / secondsPerHour
	second -= hour * secondsPerHour
	minute = second / secondsPerMinute
	second -= minute * secondsPerMinute
	return hour, minute, second
}

// AddYears keeps the month and day-in-month fixed across the year change,
// clamping Feb 29 back to Feb 28 when the destination year is common.
func (c *TimeComponents) AddYears(years uint32) {
	c.addMonths(uint64(years) * monthsPerYear)
}

// AddMonths advances by whole months, carrying into years. The day within
// the month is clamped to the last valid day of the destination month; it
// never rolls over into the following month.
func (c *TimeComponents) AddMonths(months uint32) {
	c.addMonths(uint64(months))
}

func (c *TimeComponents) addMonths(months uint64) {
	month, day := c.SplitMonthsDays()

	c.Years += int64(months / monthsPerYear)
	month += uint32(months % monthsPerYear)
	if month >= monthsPerYear {
		month -= monthsPerYear
		c.Years++
	}

	_, perMonth, sums := c.daysInYear()
	if max := perMonth[month] - 1; day > max {
		day = max
	}
	c.Days = sums[month] + day
}

func (c *TimeComponents) AddWeeks(weeks uint32) {
	c.addDays(uint64(weeks) * daysPerWeek)
}

func (c *TimeComponents) AddDays(days uint32) {
	c.addDays(uint64(days))
}

func (c *TimeComponents) addDays(days uint64) {
	if days == 0 {
		return
	}
	total := uint64(c.Days) + days
	for {
		inYear, _, _ := c.daysInYear()
		if total < uint64(inYear) {
			break
		}
		total -= uint64(inYear)
		c.Years++
	}
	c.Days = uint32(total)
}

func (c *TimeComponents) AddHours(hours uint32) {
	c.addSeconds(uint64(hours) * secondsPerHour)
}

func (c *TimeComponents) AddMinutes(minutes uint32) {
	c.addSeconds(uint64(minutes) * secondsPerMinute)
}

func (c *TimeComponents) AddSeconds(seconds uint32) {
	c.addSeconds(uint64(seconds))
}

func (c *TimeComponents) addSeconds(seconds uint64) {
	if seconds == 0 {
		return
	}
	total := uint64(c.Seconds) + seconds
	c.Seconds = uint32(total % secondsPerDay)
	c.addDays(total / secondsPerDay)
}

func (c *TimeComponents) AddNanos(nanos uint32) {
	if nanos == 0 {
		return
	}
	total := uint64(c.Nanos) + uint64(nanos)
	c.Nanos = uint32(total % nanosPerSecond)
	c.addSeconds(total / nanosPerSecond)
}

// SubYears mirrors AddYears.
func (c *TimeComponents) SubYears(years uint32) {
	c.subMonths(uint64(years) * monthsPerYear)
}

// SubMonths mirrors AddMonths, borrowing a year when the month-of-year
// underflows and clamping to the destination month's last valid day.
func (c *TimeComponents) SubMonths(months uint32) {
	c.subMonths(uint64(months))
}

func (c *TimeComponents) subMonths(months uint64) {
	month, day := c.SplitMonthsDays()

	c.Years -= int64(months / monthsPerYear)
	if rem := uint32(months % monthsPerYear); month < rem {
		month += monthsPerYear - rem
		c.Years--
	} else {
		month -= rem
	}

	_, perMonth, sums := c.daysInYear()
	if max := perMonth[month] - 1; day > max {
		day = max
	}
	c.Days = sums[month] + day
}

func (c *TimeComponents) SubWeeks(weeks uint32) {
	c.subDays(uint64(weeks) * daysPerWeek)
}

func (c *TimeComponents) SubDays(days uint32) {
	c.subDays(uint64(days))
}

func (c *TimeComponents) subDays(days uint64) {
	if days == 0 {
		return
	}
	total := uint64(c.Days)
	for total < days {
		c.Years--
		inYear, _, _ := c.daysInYear()
		total += uint64(inYear)
	}
	c.Days = uint32(total - days)
}

func (c *TimeComponents) SubHours(hours uint32) {
	c.subSeconds(uint64(hours) * secondsPerHour)
}

func (c *TimeComponents) SubMinutes(minutes uint32) {
	c.subSeconds(uint64(minutes) * secondsPerMinute)
}

func (c *TimeComponents) SubSeconds(seconds uint32) {
	c.subSeconds(uint64(seconds))
}

func (c *TimeComponents) subSeconds(seconds uint64) {
	if seconds == 0 {
		return
	}
	days := seconds / secondsPerDay
	rem := uint32(seconds % secondsPerDay)
	if c.Seconds < rem {
		c.Seconds += secondsPerDay
		days++
	}
	c.Seconds -= rem
	c.subDays(days)
}

func (c *TimeComponents) SubNanos(nanos uint32) {
	if nanos == 0 {
		return
	}
	seconds := uint64(nanos / nanosPerSecond)
	rem := nanos % nanosPerSecond
	if c.Nanos < rem {
		c.Nanos += nanosPerSecond
		seconds++
	}
	c.Nanos -= rem
	c.subSeconds(seconds)
}

func (c *TimeComponents) FloorYears() {
	c.Days = 0
	c.FloorDays()
}

func (c *TimeComponents) FloorMonths() {
	_, day := c.SplitMonthsDays()
	c.Days -= day
	c.FloorDays()
}

func (c *TimeComponents) FloorWeeks() {
	c.Days -= c.Days % daysPerWeek
	c.FloorDays()
}

func (c *TimeComponents) FloorDays() {
	c.Seconds = 0
	c.FloorSeconds()
}

func (c *TimeComponents) FloorHours() {
	c.Seconds -= c.Seconds % secondsPerHour
	c.FloorSeconds()
}

func (c *TimeComponents) FloorMinutes() {
	c.Seconds -= c.Seconds % secondsPerMinute
	c.FloorSeconds()
}

func (c *TimeComponents) FloorSeconds() {
	c.Nanos = 0
}

// Neg flips the sign of the year count. The finer fields are magnitudes
// and keep their value.
func (c TimeComponents) Neg() TimeComponents {
	c.Years = -c.Years
	return c
}

// Add merges another decomposed value into the accumulator, carrying
// nanos into seconds and seconds into days. A negative year count on the
// operand is handled by negating it and subtracting, so now - now
// collapses to the zero value whichever way the signs fall.
func (c *TimeComponents) Add(rhs TimeComponents) {
	if rhs.Years < 0 {
		c.Sub(rhs.Neg())
		return
	}
	c.AddNanos(rhs.Nanos)
	c.AddSeconds(rhs.Seconds)
	c.AddDays(rhs.Days)
	c.Years += rhs.Years
}

// Sub is the mirror image of Add.
func (c *TimeComponents) Sub(rhs TimeComponents) {
	if rhs.Years < 0 {
		c.Add(rhs.Neg())
		return
	}
	c.SubNanos(rhs.Nanos)
	c.SubSeconds(rhs.Seconds)
	c.SubDays(rhs.Days)
	c.Years -= rhs.Years
}
