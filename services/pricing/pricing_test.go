package pricing

import (
	"errors"
	"testing"

	chefEventModel "chef-catering/models/chefevent"
	experienceTypeModel "chef-catering/models/experiencetype"
)

type fakeStore struct {
	types map[uint]*experienceTypeModel.ExperienceType
	err   error
}

func (f *fakeStore) FindByID(id uint) (*experienceTypeModel.ExperienceType, error) {
	if f.err != nil {
		return nil, f.err
	}
	et, ok := f.types[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return et, nil
}

func intPtr(v int) *int { return &v }

func uintPtr(v uint) *uint { return &v }

func TestResolveTotalFromExperienceType(t *testing.T) {
	store := &fakeStore{types: map[uint]*experienceTypeModel.ExperienceType{
		1: {ID: 1, PricePerUnit: intPtr(15000)},
	}}
	r := NewResolver(store, StaticPrices{chefEventModel.EventTypePlatedDinner: 149.99})

	got := r.ResolveTotal(chefEventModel.EventTypePlatedDinner, uintPtr(1), 4)
	if got != 600.00 {
		t.Fatalf("total = %v, want 600.00", got)
	}
}

func TestResolveTotalFallsBackWhenMissing(t *testing.T) {
	store := &fakeStore{types: map[uint]*experienceTypeModel.ExperienceType{}}
	r := NewResolver(store, StaticPrices{chefEventModel.EventTypePlatedDinner: 149.99})

	got := r.ResolveTotal(chefEventModel.EventTypePlatedDinner, uintPtr(9), 2)
	if got != 149.99*2 {
		t.Fatalf("total = %v, want %v", got, 149.99*2)
	}
}

func TestResolveTotalFallsBackOnLookupError(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	r := NewResolver(store, StaticPrices{chefEventModel.EventTypeBuffetStyle: 99.99})

	got := r.ResolveTotal(chefEventModel.EventTypeBuffetStyle, uintPtr(1), 3)
	if got != 99.99*3 {
		t.Fatalf("total = %v, want %v", got, 99.99*3)
	}
}

func TestResolveTotalFallsBackWhenPriceUnset(t *testing.T) {
	store := &fakeStore{types: map[uint]*experienceTypeModel.ExperienceType{
		2: {ID: 2, PricePerUnit: nil},
	}}
	r := NewResolver(store, StaticPrices{chefEventModel.EventTypeBuffetStyle: 99.99})

	got := r.ResolveTotal(chefEventModel.EventTypeBuffetStyle, uintPtr(2), 1)
	if got != 99.99 {
		t.Fatalf("total = %v, want 99.99", got)
	}
}

func TestResolveTotalPickupIsZero(t *testing.T) {
	r := NewResolver(nil, DefaultStaticPrices())
	if got := r.ResolveTotal(chefEventModel.EventTypePickup, uintPtr(1), 10); got != 0 {
		t.Fatalf("pickup total = %v, want 0", got)
	}
}

func TestResolveTotalNilExperienceType(t *testing.T) {
	r := NewResolver(&fakeStore{}, StaticPrices{chefEventModel.EventTypePlatedDinner: 149.99})
	if got := r.ResolveTotal(chefEventModel.EventTypePlatedDinner, nil, 2); got != 149.99*2 {
		t.Fatalf("total = %v, want %v", got, 149.99*2)
	}
}
