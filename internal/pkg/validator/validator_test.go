package validator

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-15", "2024-12-31", "2000-02-29"}
	invalid := []string{"2024-13-01", "2024-01-32", "15-01-2024", "2024/01/15", "2023-02-29", "", "today"}
	for _, d := range valid {
		if !IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59"}
	invalid := []string{"24:00", "08:60", "8:30pm", "0830", "", "noon"}
	for _, v := range valid {
		if !IsValidClockTime(v) {
			t.Errorf("IsValidClockTime(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if IsValidClockTime(v) {
			t.Errorf("IsValidClockTime(%q) = true, want false", v)
		}
	}
}

func TestIsValidNIC(t *testing.T) {
	valid := []string{"901234567V", "901234567v", "901234567X", "200012345678"}
	invalid := []string{"90123456V", "9012345678V", "20001234567", "2000123456789", "abcdefghiV", ""}
	for _, nic := range valid {
		if !IsValidNIC(nic) {
			t.Errorf("IsValidNIC(%q) = false, want true", nic)
		}
	}
	for _, nic := range invalid {
		if IsValidNIC(nic) {
			t.Errorf("IsValidNIC(%q) = true, want false", nic)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+94771234567", "0771234567", "077-123-4567", "077 123 4567"}
	invalid := []string{"12345678", "+", "phone", "", "12345678901234567"}
	for _, p := range valid {
		if !IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", p)
		}
	}
}

func TestIsValidMoney(t *testing.T) {
	if !IsValidMoney(decimal.NewFromInt(0)) {
		t.Error("IsValidMoney(0) = false, want true")
	}
	if !IsValidMoney(decimal.NewFromFloat(1250.50)) {
		t.Error("IsValidMoney(1250.50) = false, want true")
	}
	if IsValidMoney(decimal.NewFromInt(-1)) {
		t.Error("IsValidMoney(-1) = true, want false")
	}
}

func TestIsValidHours(t *testing.T) {
	cases := []struct {
		input float64
		want  bool
	}{
		{0, true},
		{5.5, true},
		{10, true},
		{-1, false},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}
	for _, c := range cases {
		got := IsValidHours(c.input)
		if got != c.want {
			t.Errorf("IsValidHours(%v) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"present", "half-day", "absent"}
	if !IsInSlice("present", slice) {
		t.Error("IsInSlice(present) = false, want true")
	}
	if IsInSlice("late", slice) {
		t.Error("IsInSlice(late) = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["name"] != "name is required" {
		t.Errorf("ToMap()[name] = %q", m["name"])
	}
	if errs.Error() == "" {
		t.Error("Error() returned an empty string")
	}
}
