package validator

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
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

var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-8][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUID validation (any RFC 4122 version)
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(strings.ToLower(uuid))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation, "YYYY-MM-DD"
func IsValidDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}

// Clock time validation, 24-hour "HH:MM"
func IsValidClockTime(timeStr string) bool {
	_, err := time.Parse("15:04", timeStr)
	return err == nil
}

// NIC validation (Sri Lankan national identity card):
// old format 9 digits + V/X suffix, new format 12 digits.
var (
	oldNICRegex = regexp.MustCompile(`^[0-9]{9}[VvXx]$`)
	newNICRegex = regexp.MustCompile(`^[0-9]{12}$`)
)

func IsValidNIC(nic string) bool {
	return oldNICRegex.MatchString(nic) || newNICRegex.MatchString(nic)
}

// Phone number validation: optional leading +, then 9-15 digits.
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

func IsValidPhoneNumber(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return phoneRegex.MatchString(phone)
}

// IsValidMoney reports whether d is a usable monetary amount (finite, not negative).
func IsValidMoney(d decimal.Decimal) bool {
	return !d.IsNegative()
}

// IsValidHours reports whether h is a usable working-hours figure.
// Rejects NaN, infinities and negatives.
func IsValidHours(h float64) bool {
	return !math.IsNaN(h) && !math.IsInf(h, 0) && h >= 0
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
