package cmd

import (
	"testing"
	"time"
)

func TestParseDateArg(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2023-06-15", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"2023/06/15", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"06/15/2023", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"2023-06-15 13:30:00", time.Date(2023, 6, 15, 13, 30, 0, 0, time.UTC)},
		{"2023-06-15T13:30:00", time.Date(2023, 6, 15, 13, 30, 0, 0, time.UTC)},
		{"  2023-06-15  ", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := parseDateArg(tt.in)
		if err != nil {
			t.Errorf("parseDateArg(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseDateArg(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDateArgRejectsGarbage(t *testing.T) {
	for _, in := range []string{"yesterday", "15-06-2023", "2023-13-99", ""} {
		if _, err := parseDateArg(in); err == nil {
			t.Errorf("parseDateArg(%q) should fail", in)
		}
	}
}

func TestOptionalDate(t *testing.T) {
	got, err := optionalDate("")
	if err != nil || got != nil {
		t.Errorf("optionalDate(\"\") = %v, %v; want nil, nil", got, err)
	}

	got, err = optionalDate("2023-06-15")
	if err != nil {
		t.Fatalf("optionalDate: %v", err)
	}
	if want := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("optionalDate = %v, want %v", got, want)
	}
}
