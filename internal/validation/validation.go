// Package validation holds the pure input predicates shared by the
// registration and enrollment workflows. Every function is side-effect free
// and takes "today" as a parameter so behaviour is fixed under test.
package validation

import (
	"strconv"
	"strings"
	"time"

	dErrors "aotearoa/pkg/domain-errors"
)

// DateLayout is the interactive date input format: dd/MM/yyyy.
const DateLayout = "02/01/2006"

// MaxAgeYears bounds how far back a birth date may lie.
const MaxAgeYears = 110

// ParseBirthDate parses and range-checks a birth date string. Failures carry
// CodeDateMalformed, CodeDateInFuture or CodeDateTooOld.
func ParseBirthDate(input string, today time.Time) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, dErrors.Wrap(err, dErrors.CodeDateMalformed, "incorrect date format")
	}

	birth := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	if birth.After(today) {
		return time.Time{}, dErrors.New(dErrors.CodeDateInFuture, "birth date is later than today")
	}
	if birth.Before(YearsAgo(MaxAgeYears, today)) {
		return time.Time{}, dErrors.New(dErrors.CodeDateTooOld, "birth date is earlier than 110 years ago")
	}
	return birth, nil
}

// YearsAgo returns the calendar date the given number of years before from.
// When from is Feb-29 and the target year is not a leap year, the result is
// Feb-28 of one hundred years back.
func YearsAgo(years int, from time.Time) time.Time {
	target := from.Year() - years
	if from.Month() == time.February && from.Day() == 29 && !isLeapYear(target) {
		return time.Date(from.Year()-100, time.February, 28, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(target, from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseSelection parses a numeric menu selection. Failures carry
// CodeEmptyInput or CodeNotInteger; range checking belongs to the caller,
// which knows the bounds.
func ParseSelection(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, dErrors.New(dErrors.CodeEmptyInput, "input cannot be empty")
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeNotInteger, "please input an integer")
	}
	return n, nil
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
