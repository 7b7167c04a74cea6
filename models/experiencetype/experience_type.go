package experiencetype

import (
	"time"
)

// Pricing types.
const (
	PricingPerPerson    = "per_person"
	PricingPerItem      = "per_item"
	PricingProductBased = "product_based"
)

// Location types.
const (
	LocationCustomer = "customer"
	LocationFixed    = "fixed"
)

// ExperienceType is admin-maintained configuration describing a bookable
// experience's pricing, location and scheduling rules. Rows are hard-deleted
// with no cascade into chef events.
type ExperienceType struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug string `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	Description *string `gorm:"type:text" json:"description,omitempty"`

	PricingType string `gorm:"type:varchar(30);not null;default:per_person" json:"pricing_type"`
	// PricePerUnit is in minor currency units (cents).
	PricePerUnit   *int `json:"price_per_unit,omitempty"`
	IsProductBased bool `gorm:"not null;default:false" json:"is_product_based"`

	LocationType         string  `gorm:"type:varchar(20);not null;default:customer" json:"location_type"`
	FixedLocationAddress *string `gorm:"type:text" json:"fixed_location_address,omitempty"`

	RequiresAdvanceNotice bool    `gorm:"not null;default:false" json:"requires_advance_notice"`
	AdvanceNoticeDays     int     `gorm:"not null;default:0" json:"advance_notice_days"`
	TimeSlotStart         *string `gorm:"type:varchar(5)" json:"time_slot_start,omitempty"`
	TimeSlotEnd           *string `gorm:"type:varchar(5)" json:"time_slot_end,omitempty"`
	TimeSlotInterval      *int    `json:"time_slot_interval,omitempty"`

	MinPartySize int  `gorm:"not null;default:1" json:"min_party_size"`
	// MaxPartySize nil means unbounded.
	MaxPartySize *int `json:"max_party_size,omitempty"`

	IsActive   bool `gorm:"not null;default:true;index" json:"is_active"`
	IsFeatured bool `gorm:"not null;default:false" json:"is_featured"`
	SortOrder  int  `gorm:"not null;default:0" json:"sort_order"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the ExperienceType model
func (ExperienceType) TableName() string {
	return "experience_types"
}

// AllowsPartySize checks the configured capacity bounds.
func (et *ExperienceType) AllowsPartySize(size int) bool {
	if size < et.MinPartySize {
		return false
	}
	if et.MaxPartySize != nil && size > *et.MaxPartySize {
		return false
	}
	return true
}
