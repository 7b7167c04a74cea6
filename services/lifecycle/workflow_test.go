package lifecycle

import (
	"errors"
	"testing"
	"time"

	chefEventModel "chef-catering/models/chefevent"
	experienceTypeModel "chef-catering/models/experiencetype"
)

type fakeExperienceTypes struct {
	et  *experienceTypeModel.ExperienceType
	err error
}

func (f *fakeExperienceTypes) FindByID(id uint) (*experienceTypeModel.ExperienceType, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.et, nil
}

func uintPtr(v uint) *uint { return &v }

func intPtr(v int) *int { return &v }

func platedDinnerConfig() *experienceTypeModel.ExperienceType {
	return &experienceTypeModel.ExperienceType{
		ID:                    1,
		Name:                  "Plated Dinner",
		MinPartySize:          2,
		MaxPartySize:          intPtr(12),
		RequiresAdvanceNotice: true,
		AdvanceNoticeDays:     3,
	}
}

func TestCheckExperienceRulesPartySizeBounds(t *testing.T) {
	w := &Workflow{experienceTypes: &fakeExperienceTypes{et: platedDinnerConfig()}}
	farOut := time.Now().AddDate(0, 0, 30)

	tests := []struct {
		name      string
		partySize int
		wantErr   bool
	}{
		{"below minimum", 1, true},
		{"at minimum", 2, false},
		{"within bounds", 8, false},
		{"at maximum", 12, false},
		{"above maximum", 13, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.checkExperienceRules(chefEventModel.EventTypePlatedDinner, uintPtr(1), tt.partySize, farOut)
			if tt.wantErr {
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("party size %d: err = %v, want ValidationError", tt.partySize, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("party size %d: unexpected error %v", tt.partySize, err)
			}
		})
	}
}

func TestCheckExperienceRulesUnboundedMax(t *testing.T) {
	et := platedDinnerConfig()
	et.MaxPartySize = nil
	w := &Workflow{experienceTypes: &fakeExperienceTypes{et: et}}

	err := w.checkExperienceRules(chefEventModel.EventTypePlatedDinner, uintPtr(1), 500, time.Now().AddDate(0, 0, 30))
	if err != nil {
		t.Fatalf("nil max must mean unbounded, got %v", err)
	}

	var validationErr *ValidationError
	err = w.checkExperienceRules(chefEventModel.EventTypePlatedDinner, uintPtr(1), 1, time.Now().AddDate(0, 0, 30))
	if !errors.As(err, &validationErr) {
		t.Fatalf("minimum still applies without a max, got %v", err)
	}
}

func TestCheckExperienceRulesAdvanceNotice(t *testing.T) {
	w := &Workflow{experienceTypes: &fakeExperienceTypes{et: platedDinnerConfig()}}

	var validationErr *ValidationError
	err := w.checkExperienceRules(chefEventModel.EventTypePlatedDinner, uintPtr(1), 4, time.Now().AddDate(0, 0, 1))
	if !errors.As(err, &validationErr) {
		t.Fatalf("one day ahead with a 3-day notice must be rejected, got %v", err)
	}

	if err := w.checkExperienceRules(chefEventModel.EventTypePlatedDinner, uintPtr(1), 4, time.Now().AddDate(0, 0, 3)); err != nil {
		t.Fatalf("exactly the notice window must pass, got %v", err)
	}
}

func TestCheckExperienceRulesToleratesLookupFailure(t *testing.T) {
	w := &Workflow{experienceTypes: &fakeExperienceTypes{err: errors.New("record not found")}}

	if err := w.checkExperienceRules(chefEventModel.EventTypePlatedDinner, uintPtr(1), 1, time.Now().AddDate(0, 0, 1)); err != nil {
		t.Fatalf("a missing configuration row must not block creation, got %v", err)
	}
}

func TestCheckExperienceRulesSkipsPickupAndUnconfigured(t *testing.T) {
	w := &Workflow{experienceTypes: &fakeExperienceTypes{et: platedDinnerConfig()}}

	// Pickup events never carry capacity or notice rules.
	if err := w.checkExperienceRules(chefEventModel.EventTypePickup, uintPtr(1), 1, time.Now()); err != nil {
		t.Fatalf("pickup must skip experience rules, got %v", err)
	}
	// Without an experience type reference there is nothing to check.
	if err := w.checkExperienceRules(chefEventModel.EventTypeBuffetStyle, nil, 1, time.Now()); err != nil {
		t.Fatalf("nil experience type id must skip rules, got %v", err)
	}
}
