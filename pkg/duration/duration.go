// Package duration renders second counts as cascading, human-scaled strings: the largest
// unit that applies plus at most one finer remainder, e.g. "45 seconds", "12 minutes",
// "1 hours 1 minutes" or "3d 4h".
//
// Unit words are literal and never singularized ("1 minutes"); localized callers pass
// their own labels through FormatUnits. Output is deterministic and the package holds
// no state.
package duration

import (
	"strconv"
	"time"
)

// Unit is a tier of the cascade.
type Unit int

const (
	Seconds Unit = iota
	Minutes
	Hours
	Days
)

// Units holds the suffix appended to each quantity, including any leading space.
type Units struct {
	Seconds string
	Minutes string
	Hours   string
	Days    string
}

var (
	// LongUnits spells out unit words: "1 hours 1 minutes".
	LongUnits = Units{Seconds: " seconds", Minutes: " minutes", Hours: " hours", Days: " days"}
	// ShortUnits uses single-letter suffixes: "1h 1m".
	ShortUnits = Units{Seconds: "s", Minutes: "m", Hours: "h", Days: "d"}
)

// Label returns the suffix configured for unit.
func (u Units) Label(unit Unit) string {
	switch unit {
	case Minutes:
		return u.Minutes
	case Hours:
		return u.Hours
	case Days:
		return u.Days
	default:
		return u.Seconds
	}
}

// Part is a single quantity of a unit.
type Part struct {
	Value int64
	Unit  Unit
}

// Parts is the decomposition rendered by Format. Secondary is only meaningful when
// HasSecondary is true.
type Parts struct {
	Primary      Part
	Secondary    Part
	HasSecondary bool
}

// Breakdown splits seconds into its primary unit and optional remainder.
// Below one minute only seconds are used; minutes never carry a seconds remainder;
// hours carry minutes and days carry hours when those are non-zero. Negative input is
// treated as zero.
func Breakdown(seconds int64) Parts {
	seconds = max(seconds, 0)

	if seconds < 60 {
		return Parts{Primary: Part{Value: seconds, Unit: Seconds}}
	}

	minutes := seconds / 60
	if minutes < 60 {
		return Parts{Primary: Part{Value: minutes, Unit: Minutes}}
	}

	hours := minutes / 60
	if hours < 24 {
		return withRemainder(Part{Value: hours, Unit: Hours}, Part{Value: minutes % 60, Unit: Minutes})
	}

	return withRemainder(Part{Value: hours / 24, Unit: Days}, Part{Value: hours % 24, Unit: Hours})
}

func withRemainder(primary, secondary Part) Parts {
	return Parts{
		Primary:      primary,
		Secondary:    secondary,
		HasSecondary: secondary.Value > 0,
	}
}

// Format renders seconds with LongUnits, or ShortUnits when abbreviated is set.
//
//	Format(45, false)    // "45 seconds"
//	Format(3661, false)  // "1 hours 1 minutes"
//	Format(3661, true)   // "1h 1m"
//	Format(90061, false) // "1 days 1 hours"
func Format(seconds int64, abbreviated bool) string {
	if abbreviated {
		return FormatUnits(seconds, ShortUnits)
	}
	return FormatUnits(seconds, LongUnits)
}

// FormatUnits renders seconds using the given unit labels.
func FormatUnits(seconds int64, units Units) string {
	return Breakdown(seconds).Format(units)
}

// FromDuration truncates d to whole seconds and formats it.
func FromDuration(d time.Duration, abbreviated bool) string {
	return Format(int64(d/time.Second), abbreviated)
}

// Format renders the parts with the given labels, separating them with a single space.
func (p Parts) Format(units Units) string {
	out := strconv.FormatInt(p.Primary.Value, 10) + units.Label(p.Primary.Unit)
	if p.HasSecondary {
		out += " " + strconv.FormatInt(p.Secondary.Value, 10) + units.Label(p.Secondary.Unit)
	}
	return out
}

// Seconds returns the total number of seconds the parts account for.
func (p Parts) Seconds() int64 {
	total := p.Primary.seconds()
	if p.HasSecondary {
		total += p.Secondary.seconds()
	}
	return total
}

func (p Part) seconds() int64 {
	switch p.Unit {
	case Minutes:
		return p.Value * 60
	case Hours:
		return p.Value * 3600
	case Days:
		return p.Value * 86400
	default:
		return p.Value
	}
}
