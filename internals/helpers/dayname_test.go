package helper

import (
	"testing"
	"time"
)

func TestDayName(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2026-08-23", "الأحد"},   // Minggu
		{"2026-08-24", "الاثنين"}, // Senin
		{"2026-08-28", "الجمعة"},  // Jumat
		{"2026-08-29", "السبت"},   // Sabtu
	}
	for _, c := range cases {
		d, err := time.Parse("2006-01-02", c.date)
		if err != nil {
			t.Fatalf("parse %s: %v", c.date, err)
		}
		if got := DayName(&d); got != c.want {
			t.Errorf("DayName(%s) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestDayNameEmpty(t *testing.T) {
	if got := DayName(nil); got != "" {
		t.Errorf("DayName(nil) = %q, want empty", got)
	}
	var zero time.Time
	if got := DayName(&zero); got != "" {
		t.Errorf("DayName(zero) = %q, want empty", got)
	}
}

func TestDayNamePure(t *testing.T) {
	d := time.Date(2026, 8, 24, 13, 45, 0, 0, time.FixedZone("AST", 3*3600))
	first := DayName(&d)
	for i := 0; i < 3; i++ {
		if got := DayName(&d); got != first {
			t.Fatalf("DayName tidak deterministik: %q vs %q", got, first)
		}
	}
}

func TestDateOnly(t *testing.T) {
	d := time.Date(2026, 8, 24, 23, 59, 59, 0, time.FixedZone("AST", 3*3600))
	got := DateOnly(&d)
	if got == nil {
		t.Fatal("DateOnly mengembalikan nil untuk tanggal valid")
	}
	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly = %v, want %v", got, want)
	}
	if DateOnly(nil) != nil {
		t.Error("DateOnly(nil) harus nil")
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(&d); got != "05/01/2026" {
		t.Errorf("FormatDate = %q, want 05/01/2026", got)
	}
	if got := FormatDate(nil); got != "" {
		t.Errorf("FormatDate(nil) = %q, want empty", got)
	}
}
