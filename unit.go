package reltime

// Unit is one of the seven calendar units an expression can name.
type Unit int

const (
	UnitYear Unit = iota
	UnitMonth
	UnitWeek
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
)

func (u Unit) String() string {
	switch u {
	case UnitYear:
		return "year"
	case UnitMonth:
		return "month"
	case UnitWeek:
		return "week"
	case UnitDay:
		return "day"
	case UnitHour:
		return "hour"
	case UnitMinute:
		return "minute"
	default:
		return "second"
	}
}

// lookupUnit maps a unit letter to its Unit. Month is the single capital
// to keep it apart from minutes.
func lookupUnit(ch byte) (Unit, bool) {
	switch ch {
	case 'y':
		return UnitYear, true
	case 'M':
		return UnitMonth, true
	case 'w':
		return UnitWeek, true
	case 'd':
		return UnitDay, true
	case 'h':
		return UnitHour, true
	case 'm':
		return UnitMinute, true
	case 's':
		return UnitSecond, true
	}
	return 0, false
}
