package experiencetype

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// UpsertRequest is the admin payload for creating or updating an experience
// type.
type UpsertRequest struct {
	Slug string `json:"slug" validate:"required,min=1,max=255"`
	Name string `json:"name" validate:"required,min=1,max=255"`

	Description string `json:"description" validate:"omitempty"`

	PricingType    string `json:"pricing_type" validate:"required,oneof=per_person per_item product_based"`
	PricePerUnit   *int   `json:"price_per_unit" validate:"omitempty,min=0"`
	IsProductBased bool   `json:"is_product_based"`

	LocationType         string `json:"location_type" validate:"required,oneof=customer fixed"`
	FixedLocationAddress string `json:"fixed_location_address" validate:"omitempty"`

	RequiresAdvanceNotice bool    `json:"requires_advance_notice"`
	AdvanceNoticeDays     int     `json:"advance_notice_days" validate:"omitempty,min=0"`
	TimeSlotStart         *string `json:"time_slot_start" validate:"omitempty"`
	TimeSlotEnd           *string `json:"time_slot_end" validate:"omitempty"`
	TimeSlotInterval      *int    `json:"time_slot_interval" validate:"omitempty,min=1"`

	MinPartySize int  `json:"min_party_size" validate:"omitempty,min=1"`
	MaxPartySize *int `json:"max_party_size" validate:"omitempty,min=1"`

	IsActive   *bool `json:"is_active"`
	IsFeatured bool  `json:"is_featured"`
	SortOrder  int   `json:"sort_order"`
}

func (r UpsertRequest) Validate() error {
	if r.Slug == "" {
		return fmt.Errorf("slug is required")
	}
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.LocationType == "fixed" && r.FixedLocationAddress == "" {
		return fmt.Errorf("fixed_location_address is required for fixed location types")
	}
	if r.PricingType != "product_based" && r.PricePerUnit == nil {
		return fmt.Errorf("price_per_unit is required unless pricing is product_based")
	}
	if r.MaxPartySize != nil && r.MinPartySize > *r.MaxPartySize {
		return fmt.Errorf("min_party_size cannot exceed max_party_size")
	}
	return validate.Struct(r)
}
