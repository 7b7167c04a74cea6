package utils

import (
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Plated Dinner", "plated-dinner"},
		{"  Maria  O'Brien ", "maria-o-brien"},
		{"buffet_style", "buffet-style"},
		{"--already--slugged--", "already-slugged"},
	}
	for _, tt := range cases {
		if got := Slugify(tt.in); got != tt.want {
			t.Fatalf("Slugify(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTicketHandleDeterministic(t *testing.T) {
	date := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	a := TicketHandle("plated_dinner", date, "Maria O'Brien")
	b := TicketHandle("plated_dinner", date, "Maria O'Brien")
	if a != b {
		t.Fatalf("handle not deterministic: %q vs %q", a, b)
	}
	if a != "plated-dinner-2026-10-12-maria-o-brien-ticket" {
		t.Fatalf("unexpected handle: %q", a)
	}
}

func TestTicketSKU(t *testing.T) {
	date := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	got := TicketSKU(42, date, "buffet_style")
	if got != "EVENT-42-2026-10-12-buffet_style" {
		t.Fatalf("unexpected SKU: %q", got)
	}
}

func TestValidTimeHHMM(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"18:30", true},
		{"00:00", true},
		{"24:00", false},
		{"7pm", false},
		{"", false},
	}
	for _, tt := range cases {
		if got := ValidTimeHHMM(tt.in); got != tt.valid {
			t.Fatalf("ValidTimeHHMM(%q)=%v, want %v", tt.in, got, tt.valid)
		}
	}
}

func TestMeetsAdvanceNotice(t *testing.T) {
	in3Days := time.Now().AddDate(0, 0, 3)
	if !MeetsAdvanceNotice(in3Days, 2) {
		t.Fatal("3 days out should satisfy 2-day notice")
	}
	if MeetsAdvanceNotice(in3Days, 5) {
		t.Fatal("3 days out should not satisfy 5-day notice")
	}
}
