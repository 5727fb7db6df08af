package dates

import (
	"testing"
	"time"
)

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{2000: true, 1900: false, 2024: true, 2021: false, 2100: false, 2400: true, 4: true}
	for y, want := range cases {
		if got := IsLeapYear(y); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", y, got, want)
		}
	}
	for y := 1; y <= 3000; y++ {
		want := y%4 == 0 && (y%100 != 0 || y%400 == 0)
		if IsLeapYear(y) != want {
			t.Fatalf("IsLeapYear(%d) disagrees with the Gregorian rule", y)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"29-02-2000", true},
		{"29-02-2001", false},
		{"31-04-2022", false},
		{"30-06-2022", true},
		{"31-12-2022", true},
		{"1-1-2023", true},
		{"01-01-2023", true},
		{"30-02-2024", false},
		{"31-09-2023", false},
		{"31-11-2023", false},
		{"00-01-2023", false},
		{"32-01-2023", false},
		{"15-13-2023", false},
		{"15-00-2023", false},
		{"2023-01-01", false},
		{"01/01/2023", false},
		{"01-01-23", false},
		{"", false},
		{" 01-01-2023", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Validate(tt.in); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		in      string
		y, m, d int
	}{
		{"29-02-2000", 2000, 2, 29},
		{"1-1-2023", 2023, 1, 1},
		{"31-01-2023", 2023, 1, 31},
		{"09-7-1969", 1969, 7, 9},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got.Year() != tt.y || int(got.Month()) != tt.m || got.Day() != tt.d {
			t.Errorf("Parse(%q) = %v, want %04d-%02d-%02d", tt.in, got, tt.y, tt.m, tt.d)
		}
		if got.Location() != time.UTC {
			t.Errorf("Parse(%q) location = %v, want UTC", tt.in, got.Location())
		}
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, in := range []string{"29-02-2001", "31-04-2022", "abc"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error", in)
		}
	}
}

func TestISO(t *testing.T) {
	d := time.Date(2023, 1, 5, 13, 0, 0, 0, time.UTC)
	if got := ISO(d); got != "2023-01-05" {
		t.Fatalf("ISO = %q", got)
	}
}
