package pricing

import (
	"fmt"
	"os"
	"strconv"

	"chef-catering/logger"
	chefEventModel "chef-catering/models/chefevent"
	experienceTypeModel "chef-catering/models/experiencetype"
)

// ExperienceTypeStore is the lookup the resolver needs. The GORM
// implementation lives in database/stores.
type ExperienceTypeStore interface {
	FindByID(id uint) (*experienceTypeModel.ExperienceType, error)
}

// StaticPrices is the per-event-type fallback price table (major units per
// person), used when no experience type configuration applies.
type StaticPrices map[chefEventModel.EventType]float64

// DefaultStaticPrices builds the fallback table, honoring optional env
// overrides so deployments and tests can re-price without a rebuild.
func DefaultStaticPrices() StaticPrices {
	prices := StaticPrices{
		chefEventModel.EventTypeBuffetStyle:  99.99,
		chefEventModel.EventTypePlatedDinner: 149.99,
	}
	if v := os.Getenv("PRICE_BUFFET_STYLE"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			prices[chefEventModel.EventTypeBuffetStyle] = p
		}
	}
	if v := os.Getenv("PRICE_PLATED_DINNER"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			prices[chefEventModel.EventTypePlatedDinner] = p
		}
	}
	return prices
}

// Resolver computes the total price of a chef event request at creation time.
type Resolver struct {
	store  ExperienceTypeStore
	static StaticPrices
}

func NewResolver(store ExperienceTypeStore, static StaticPrices) *Resolver {
	return &Resolver{store: store, static: static}
}

// ResolveTotal returns totalPrice for a creation request. Pickup events are
// always 0; the provisioned product carries the real charge later. The
// experience-type lookup degrades to the static table on any failure, it
// never returns an error to the caller.
func (r *Resolver) ResolveTotal(eventType chefEventModel.EventType, experienceTypeID *uint, partySize int) float64 {
	if eventType == chefEventModel.EventTypePickup {
		return 0
	}
	return r.perPerson(eventType, experienceTypeID) * float64(partySize)
}

// PerUnit returns the per-person price in major units, following the same
// fallback chain as ResolveTotal. Used to price the ticket variant at accept
// time.
func (r *Resolver) PerUnit(eventType chefEventModel.EventType, experienceTypeID *uint) float64 {
	if eventType == chefEventModel.EventTypePickup {
		return 0
	}
	return r.perPerson(eventType, experienceTypeID)
}

func (r *Resolver) perPerson(eventType chefEventModel.EventType, experienceTypeID *uint) float64 {
	if experienceTypeID != nil && r.store != nil {
		et, err := r.store.FindByID(*experienceTypeID)
		switch {
		case err != nil:
			logger.Warning(fmt.Sprintf("Experience type %d lookup failed, using static pricing: %v", *experienceTypeID, err))
		case et.PricePerUnit != nil:
			return float64(*et.PricePerUnit) / 100
		default:
			logger.Warning(fmt.Sprintf("Experience type %d has no price_per_unit, using static pricing", *experienceTypeID))
		}
	}

	if price, ok := r.static[eventType]; ok {
		return price
	}
	logger.Warning("No static price configured for event type " + eventType.String())
	return 0
}
