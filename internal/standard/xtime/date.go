// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package xtime provides a civil calendar date type.
//
// A Date is a (year, month, day) triple in the proleptic Gregorian calendar,
// decoupled from time-of-day and timezone. Construction is total and never
// validates: an out-of-range Date is representable, and validity is a
// separate query via IsValid. Every transforming operation returns a new
// Date and never mutates the receiver.
package xtime

import (
	"fmt"
	"time"
)

// epoch is the fixed reference point for weekday computation.
// 1970-01-01 was a Thursday.
var epoch = Date{Year: 1970, Month: time.January, Day: 1}

// weekdayNames maps time.Weekday indices (Sunday-first) to English names.
var weekdayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// daysPerMonth is the number of days in each month of a non-leap year.
var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date represents a calendar date: a year, month, and day in the proleptic
// Gregorian calendar, with no associated time-of-day or timezone.
//
// The zero value is not a valid date. Fields are not validated at
// construction, see IsValid.
type Date struct {
	// Year is the calendar year. Valid dates have Year >= 1.
	Year int
	// Month is the 1-based month of the year.
	Month time.Month
	// Day is the 1-based day of the month.
	Day int
}

// NewDate returns the Date with the given fields. It never fails and does
// not validate, see IsValid.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// TimeToDate returns the Date of the instant t, read under the calendar
// rules of t's location. For a time.Time produced by time.Now, this is the
// date on the host's local calendar.
func TimeToDate(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// TimeToDateUTC returns the Date of the instant t, read under UTC calendar
// rules. Near local midnight with a non-zero local offset, this can differ
// from TimeToDate by one calendar day.
func TimeToDateUTC(t time.Time) Date {
	return TimeToDate(t.In(time.UTC))
}

// Today returns the current date on the host's local calendar.
func Today() Date {
	return TodayAt(time.Now)
}

// TodayAt returns the current date on the local calendar of the instant
// returned by now. The clock function is injectable for determinism in tests.
func TodayAt(now func() time.Time) Date {
	return TimeToDate(now())
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar: divisible by 4 and not by 100, or divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month of the given
// year. February has 29 days in leap years. A month outside January through
// December yields 0, so callers iterating over out-of-range fields roll
// through them instead of panicking.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// IsValid reports whether d is a real calendar date: year at least 1, month
// January through December, and day within the month's length for that year.
func (d Date) IsValid() bool {
	if d.Year < 1 {
		return false
	}
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns the date in ISO form Y-MM-DD. Month and day are zero-padded
// to two digits. The year is printed as-is, without padding.
func (d Date) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// In returns the time.Time at midnight of d in the given location.
// Use d.In(time.Local) for local midnight and d.In(time.UTC) for UTC
// midnight. The two are distinct instants whenever the local offset is
// non-zero.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Local returns the time.Time at local midnight of d.
func (d Date) Local() time.Time {
	return d.In(time.Local)
}

// UTC returns the time.Time at UTC midnight of d.
func (d Date) UTC() time.Time {
	return d.In(time.UTC)
}

// AddDays returns the date n days after d, rolling over month and year
// boundaries as needed. A negative n delegates to SubDays. The receiver is
// unchanged. An invalid date is accepted and produces an unspecified result,
// never a panic.
func (d Date) AddDays(n int) Date {
	if n < 0 {
		return d.SubDays(-n)
	}
	year, month, day := d.Year, d.Month, d.Day+n
	// Consume whole months until the day fits within the current month.
	for day > DaysInMonth(year, month) {
		day -= DaysInMonth(year, month)
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return Date{Year: year, Month: month, Day: day}
}

// SubDays returns the date n days before d, rolling over month and year
// boundaries as needed. A negative n delegates to AddDays. The receiver is
// unchanged. An invalid date is accepted and produces an unspecified result,
// never a panic.
func (d Date) SubDays(n int) Date {
	if n < 0 {
		return d.AddDays(-n)
	}
	year, month, day := d.Year, d.Month, d.Day-n
	// Consume whole months until the day count is positive again.
	for day < 1 {
		month--
		if month < time.January {
			month = time.December
			year--
		}
		day += DaysInMonth(year, month)
	}
	return Date{Year: year, Month: month, Day: day}
}

// DaysUntil returns the signed number of days from d to other: positive if
// other is later than d, negative if earlier, zero if equal. It satisfies
// a.DaysUntil(b) == -b.DaysUntil(a).
func (d Date) DaysUntil(other Date) int {
	if d.After(other) {
		return -other.DaysUntil(d)
	}
	if d.Year == other.Year {
		if d.Month == other.Month {
			return other.Day - d.Day
		}
		// Remaining days in d's month, plus the full months between,
		// plus the days into other's month.
		days := DaysInMonth(d.Year, d.Month) - d.Day
		for month := d.Month + 1; month < other.Month; month++ {
			days += DaysInMonth(d.Year, month)
		}
		return days + other.Day
	}
	// Days to the end of d's year, plus each full intervening year,
	// plus the days from the start of other's year.
	days := d.daysToYearEnd()
	for year := d.Year + 1; year < other.Year; year++ {
		if IsLeapYear(year) {
			days += 366
		} else {
			days += 365
		}
	}
	return days + other.daysFromYearStart()
}

// DaysSince returns the signed number of days from other to d: positive if
// d is later than other. It is the mirror of DaysUntil with the receiver and
// argument swapped, so end.DaysSince(start) reads as elapsed days.
func (d Date) DaysSince(other Date) int {
	return other.DaysUntil(d)
}

// daysToYearEnd returns the number of days from d to December 31 of d's year.
func (d Date) daysToYearEnd() int {
	days := DaysInMonth(d.Year, d.Month) - d.Day
	for month := d.Month + 1; month <= time.December; month++ {
		days += DaysInMonth(d.Year, month)
	}
	return days
}

// daysFromYearStart returns the number of days from January 1 of d's year
// to d, counting d itself.
func (d Date) daysFromYearStart() int {
	days := d.Day
	for month := time.January; month < d.Month; month++ {
		days += DaysInMonth(d.Year, month)
	}
	return days
}

// Before reports whether d occurs before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Equal reports whether d and other are the same date.
func (d Date) Equal(other Date) bool {
	return d == other
}

// After reports whether d occurs after other: neither before nor equal.
func (d Date) After(other Date) bool {
	return !d.Before(other) && !d.Equal(other)
}

// EqualOrBefore reports whether d occurs on or before other.
func (d Date) EqualOrBefore(other Date) bool {
	return !d.After(other)
}

// EqualOrAfter reports whether d occurs on or after other.
func (d Date) EqualOrAfter(other Date) bool {
	return !d.Before(other)
}

// Compare returns -1 if d is before other, 0 if equal, and +1 if after.
func (d Date) Compare(other Date) int {
	switch {
	case d.Before(other):
		return -1
	case d.After(other):
		return 1
	default:
		return 0
	}
}

// Between reports whether d lies within the inclusive interval [from, to].
// If to is before from, the bounds are swapped before testing.
func (d Date) Between(from Date, to Date) bool {
	if to.Before(from) {
		from, to = to, from
	}
	return d.EqualOrAfter(from) && d.EqualOrBefore(to)
}

// Weekday returns the day of the week of d, Sunday-first, computed from the
// day offset to 1970-01-01. The result is always in Sunday..Saturday, also
// for dates before the epoch.
func (d Date) Weekday() time.Weekday {
	index := (4 + epoch.DaysUntil(d)) % 7
	// Go's % truncates toward zero, normalize negative remainders.
	if index < 0 {
		index += 7
	}
	return time.Weekday(index)
}

// WeekdayString returns the English name of d's day of the week.
func (d Date) WeekdayString() string {
	return weekdayNames[d.Weekday()]
}
