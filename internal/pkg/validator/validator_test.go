package validator

import (
	"testing"
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
	valid := []string{"2025-01-01", "2000-12-31"}
	invalid := []string{"2025-13-01", "2025-01-32", "2025/01/01", "01-01-2025", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:30", "13:05", "23:59"}
	invalid := []string{"24:00", "8:30", "12:60", "12:5", "noon", "12:30:00", ""}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidEmployeeObjectID(t *testing.T) {
	valid := []string{
		"64a7f0c2e4b0a1b2c3d4e5f6",
		"64A7F0C2E4B0A1B2C3D4E5F6", // upper-case hex accepted
		"64a7F0c2E4b0A1b2C3d4E5f6", // mixed case accepted
	}
	invalid := []string{
		"64a7f0c2e4b0a1b2c3d4e5f",   // 23 chars
		"64a7f0c2e4b0a1b2c3d4e5f6a", // 25 chars
		"64a7f0c2e4b0a1b2c3d4e5zg",  // non-hex
		"Dela Cruz, Juan",           // free-text name
		"",
	}
	for _, id := range valid {
		if !IsValidEmployeeObjectID(id) {
			t.Errorf("IsValidEmployeeObjectID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidEmployeeObjectID(id) {
			t.Errorf("IsValidEmployeeObjectID(%q) = true, want false", id)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestIsInSliceFold(t *testing.T) {
	slice := []string{"off", "holiday_off", "leave"}
	if !IsInSliceFold("OFF", slice) {
		t.Errorf("IsInSliceFold('OFF') = false, want true")
	}
	if !IsInSliceFold("Holiday_Off", slice) {
		t.Errorf("IsInSliceFold('Holiday_Off') = false, want true")
	}
	if IsInSliceFold("duty", slice) {
		t.Errorf("IsInSliceFold('duty') = true, want false")
	}
}

func TestIsValidMonthLabel(t *testing.T) {
	valid := []string{"2025-07", "2000-01"}
	invalid := []string{"2025-13", "2025-7", "2025", "07-2025", ""}
	for _, s := range valid {
		if !IsValidMonthLabel(s) {
			t.Errorf("IsValidMonthLabel(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidMonthLabel(s) {
			t.Errorf("IsValidMonthLabel(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "time", Message: "invalid"},
		{Field: "remarks", Message: "required"},
	}
	got := errs.Error()
	want := "time: invalid; remarks: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "time", Message: "invalid"},
		{Field: "remarks", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"time": "invalid", "remarks": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
