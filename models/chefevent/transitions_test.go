package chefevent

import "testing"

func TestValidAction(t *testing.T) {
	cases := []struct {
		action string
		from   Status
		valid  bool
	}{
		{"accept", StatusPending, true},
		{"accept", StatusConfirmed, false},
		{"accept", StatusCancelled, false},
		{"accept", StatusCompleted, false},
		{"reject", StatusPending, true},
		{"reject", StatusConfirmed, false},
		{"complete", StatusConfirmed, true},
		{"complete", StatusPending, false},
		{"complete", StatusCompleted, false},
		{"cancel", StatusPending, true},
		{"cancel", StatusConfirmed, true},
		{"cancel", StatusCancelled, false},
		{"unknown", StatusPending, false},
	}

	for _, tt := range cases {
		if got := ValidAction(tt.action, tt.from); got != tt.valid {
			t.Fatalf("ValidAction(%q, %q)=%v, want %v", tt.action, tt.from, got, tt.valid)
		}
	}
}

func TestCanTransitionTo(t *testing.T) {
	all := GetAllStatuses()
	allowed := map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusCancelled},
		StatusCancelled: {},
		StatusCompleted: {},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			if got := from.CanTransitionTo(to); got != want {
				t.Fatalf("%s -> %s: got %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestStatusHelpers(t *testing.T) {
	if !StatusCancelled.IsTerminal() || !StatusCompleted.IsTerminal() {
		t.Fatal("cancelled and completed must be terminal")
	}
	if StatusPending.IsTerminal() || StatusConfirmed.IsTerminal() {
		t.Fatal("pending and confirmed must not be terminal")
	}
	if Status("bogus").IsValid() {
		t.Fatal("bogus status must not be valid")
	}
}

func TestDefaultDuration(t *testing.T) {
	if d, ok := EventTypePlatedDinner.DefaultDuration(); !ok || d != 240 {
		t.Fatalf("plated_dinner default duration = %d, %v", d, ok)
	}
	if d, ok := EventTypeBuffetStyle.DefaultDuration(); !ok || d != 150 {
		t.Fatalf("buffet_style default duration = %d, %v", d, ok)
	}
	if _, ok := EventTypePickup.DefaultDuration(); ok {
		t.Fatal("pickup must not have a default duration")
	}
}
