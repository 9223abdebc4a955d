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

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Time-of-day validation (HH:MM or HH:MM:SS)
func IsValidTimeOfDay(timeStr string) (time.Time, bool) {
	t, err := time.Parse("15:04:05", timeStr)
	if err == nil {
		return t, true
	}
	t, err = time.Parse("15:04", timeStr)
	return t, err == nil
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

var rutRegex = regexp.MustCompile(`^\d{1,3}(\.\d{3})*-[\dkK]$`)

// IsValidRUT checks a Chilean RUT in dotted format, e.g. 12.345.678-5.
// The check digit is verified with modulo 11.
func IsValidRUT(rut string) bool {
	if !rutRegex.MatchString(rut) {
		return false
	}

	clean := strings.ReplaceAll(rut, ".", "")
	parts := strings.Split(clean, "-")
	body, dv := parts[0], strings.ToUpper(parts[1])

	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	remainder := 11 - (sum % 11)
	expected := ""
	switch remainder {
	case 11:
		expected = "0"
	case 10:
		expected = "K"
	default:
		expected = string(rune('0' + remainder))
	}

	return dv == expected
}

// NormalizeRUT converts any accepted RUT input to the dotted canonical
// format (12.345.678-5). Input may come with or without dots or dash.
func NormalizeRUT(rut string) string {
	if rut == "" {
		return rut
	}

	clean := strings.ToUpper(strings.ReplaceAll(strings.ReplaceAll(rut, ".", ""), " ", ""))
	if !strings.Contains(clean, "-") && len(clean) >= 2 {
		clean = clean[:len(clean)-1] + "-" + clean[len(clean)-1:]
	}

	parts := strings.Split(clean, "-")
	if len(parts) != 2 {
		return clean
	}
	body, dv := parts[0], parts[1]

	// Insert thousands separators from the right
	var b strings.Builder
	for i, ch := range body {
		if i > 0 && (len(body)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(ch)
	}

	return b.String() + "-" + dv
}
