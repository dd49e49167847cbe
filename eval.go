// Package reltime resolves compact relative time expressions such as
// "now+1d-2h/w" into absolute instants. An expression is a chain of steps
// that add, subtract or floor calendar units, applied to a reference
// instant ("now"); see LANGUAGE.md for the grammar.
package reltime

import (
	"strings"
	"time"
)

// Parse resolves an expression against the system clock.
func Parse(text string) (time.Time, error) {
	return ParseWithClock(text, systemClock{})
}

// ParseWithClock resolves an expression against the given clock. The
// clock is read exactly once per call, so every occurrence of now inside
// one expression sees the same instant and now-now always collapses to
// zero.
func ParseWithClock(text string, clock Clock) (time.Time, error) {
	return ParseWithNow(text, clock.Now())
}

// ParseWithNow resolves an expression against a caller-supplied reference
// instant.
func ParseWithNow(text string, now time.Time) (time.Time, error) {
	if isBareNow(text) {
		// No arithmetic to do; skip the pipeline and the component
		// round-trip entirely.
		return now, nil
	}

	ref, loc := toComponents(now)
	var acc TimeComponents

	p := NewParser(text)
	for {
		step, err := p.Next()
		if err != nil {
			return time.Time{}, err
		}
		if step == nil {
			break
		}
		apply(&acc, step, ref)
	}

	return fromComponents(acc, loc)
}

// isBareNow reports whether the expression is the literal "now", allowing
// one leading + and surrounding whitespace.
func isBareNow(text string) bool {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "+")
	return strings.TrimSpace(s) == "now"
}

// apply mutates the accumulator with one step. A now-valued step merges
// the reference components as an opaque whole; a number-valued step
// dispatches to the unit routine for its operator.
func apply(acc *TimeComponents, step *Step, ref TimeComponents) {
	if step.Value.Now {
		if step.Op == OpSub {
			acc.Sub(ref)
		} else {
			acc.Add(ref)
		}
		return
	}

	n := step.Value.Number
	switch step.Op {
	case OpAdd:
		switch step.Unit {
		case UnitYear:
			acc.AddYears(n)
		case UnitMonth:
			acc.AddMonths(n)
		case UnitWeek:
			acc.AddWeeks(n)
		case UnitDay:
			acc.AddDays(n)
		case UnitHour:
			acc.AddHours(n)
		case UnitMinute:
			acc.AddMinutes(n)
		case UnitSecond:
			acc.AddSeconds(n)
		}
	case OpSub:
		switch step.Unit {
		case UnitYear:
			acc.SubYears(n)
		case UnitMonth:
			acc.SubMonths(n)
		case UnitWeek:
			acc.SubWeeks(n)
		case UnitDay:
			acc.SubDays(n)
		case UnitHour:
			acc.SubHours(n)
		case UnitMinute:
			acc.SubMinutes(n)
		case UnitSecond:
			acc.SubSeconds(n)
		}
	case OpFloor:
		switch step.Unit {
		case UnitYear:
			acc.FloorYears()
		case UnitMonth:
			acc.FloorMonths()
		case UnitWeek:
			acc.FloorWeeks()
		case UnitDay:
			acc.FloorDays()
		case UnitHour:
			acc.FloorHours()
		case UnitMinute:
			acc.FloorMinutes()
		case UnitSecond:
			acc.FloorSeconds()
		}
	}
}
