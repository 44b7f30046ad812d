package domain

import "testing"

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		days int
		want string
	}{
		{"warranty window", "2026-01-05", 45, "2026-02-19"},
		{"cross month", "2026-02-01", 45, "2026-03-18"},
		{"cross year", "2026-12-01", 45, "2027-01-15"},
		{"zero days", "2026-06-15", 0, "2026-06-15"},
		{"negative days", "2026-06-15", -15, "2026-05-31"},
		{"invalid date", "not-a-date", 45, ""},
		{"empty date", "", 45, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddDays(tt.date, tt.days); got != tt.want {
				t.Errorf("AddDays(%q, %d) = %q, want %q", tt.date, tt.days, got, tt.want)
			}
		})
	}
}

func TestMonthIndex(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-01-05", 0},
		{"2026-06-15", 5},
		{"2026-12-31", 11},
		{"garbage", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := MonthIndex(tt.date); got != tt.want {
			t.Errorf("MonthIndex(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestParseDateRejectsBadInput(t *testing.T) {
	_, err := ParseDate("2026-13-40")
	if err == nil {
		t.Fatal("ParseDate should reject an impossible date")
	}
	if !IsDomainError(err, "PL-ARG-1002") {
		t.Errorf("ParseDate error should be ErrInvalidArgument, got %v", err)
	}
}
