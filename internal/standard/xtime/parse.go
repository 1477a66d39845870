// Copyright 2026 Peter Edge
//
// All rights reserved.

package xtime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MalformedInputError is returned by ParseDate when the input does not split
// into exactly three dash-separated components, or when a component is not a
// syntactically valid integer token.
type MalformedInputError struct {
	// Input is the full original input string.
	Input string
	// Token is the offending component, empty when the input did not split
	// into three components.
	Token string
}

// Error implements error.
func (e *MalformedInputError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%q is not a valid ISO date string", e.Input)
	}
	return fmt.Sprintf("%q is not a valid component in ISO date string %q", e.Token, e.Input)
}

// InvalidDateError is returned by ParseDate when the three components parse
// as integers but do not form a real calendar date.
type InvalidDateError struct {
	// Input is the full original input string.
	Input string
}

// Error implements error.
func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%q is not a valid date", e.Input)
}

// ParseDate parses a date in ISO form Y-MM-DD.
//
// The input must split on "-" into exactly three integer components, and the
// resulting date must pass IsValid. Each component must round-trip through
// integer formatting, with one exception: a single leading zero is accepted,
// so "05" parses as 5 and "012" as 12, while "005" is rejected. Splitting on
// "-" means a negative year cannot be represented: a leading "-" produces an
// empty first component and fails as malformed input.
//
// Failures are reported as *MalformedInputError or *InvalidDateError.
func ParseDate(value string) (Date, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return Date{}, &MalformedInputError{Input: value}
	}
	var numbers [3]int
	for i, part := range parts {
		number, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, &MalformedInputError{Input: value, Token: part}
		}
		// The token must reproduce from the parsed number, allowing a
		// single leading zero.
		if formatted := strconv.Itoa(number); part != formatted && part != "0"+formatted {
			return Date{}, &MalformedInputError{Input: value, Token: part}
		}
		numbers[i] = number
	}
	date := NewDate(numbers[0], time.Month(numbers[1]), numbers[2])
	if !date.IsValid() {
		return Date{}, &InvalidDateError{Input: value}
	}
	return date, nil
}

// ParseDateOr parses a date like ParseDate, returning fallback on any
// failure. The fallback is returned verbatim, without validation.
func ParseDateOr(value string, fallback Date) Date {
	date, err := ParseDate(value)
	if err != nil {
		return fallback
	}
	return date
}
