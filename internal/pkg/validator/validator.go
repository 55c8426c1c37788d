package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidClockTime checks a 24-hour HH:MM time-of-day value.
func IsValidClockTime(timeStr string) bool {
	return clockTimeRegex.MatchString(timeStr)
}

// Employee object ids are 24 hexadecimal characters. Hex digits may be upper
// or lower case; anything else is treated as an opaque search token.
var employeeObjectIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

func IsValidEmployeeObjectID(id string) bool {
	return employeeObjectIDRegex.MatchString(id)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// IsInSliceFold is IsInSlice with case-insensitive comparison.
func IsInSliceFold(value string, slice []string) bool {
	for _, item := range slice {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}

// IsValidMonthLabel checks a "YYYY-MM" month label.
func IsValidMonthLabel(label string) bool {
	_, err := time.Parse("2006-01", label)
	return err == nil
}
