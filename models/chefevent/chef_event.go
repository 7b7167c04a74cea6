package chefevent

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SelectedProduct is one pickup menu item chosen by the customer.
type SelectedProduct struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SelectedProducts stores the pickup selection as a jsonb column.
type SelectedProducts []SelectedProduct

func (sp SelectedProducts) Value() (driver.Value, error) {
	if sp == nil {
		return nil, nil
	}
	return json.Marshal(sp)
}

func (sp *SelectedProducts) Scan(value interface{}) error {
	if value == nil {
		*sp = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, sp)
	case string:
		return json.Unmarshal([]byte(v), sp)
	default:
		return fmt.Errorf("unsupported type for SelectedProducts: %T", value)
	}
}

// ChefEvent represents one booking request moving through the lifecycle
// pending -> confirmed/cancelled -> completed.
type ChefEvent struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID string `gorm:"type:varchar(36);not null;uniqueIndex" json:"uuid"`

	Status    Status    `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	EventType EventType `gorm:"type:varchar(30);not null;index" json:"event_type"`

	// Foreign key for experience type relationship. Nullable: the referenced
	// configuration may be hard-deleted, pricing then falls back to defaults.
	ExperienceTypeID *uint `gorm:"index" json:"experience_type_id,omitempty"`

	RequestedDate     time.Time `gorm:"type:date;not null" json:"requested_date"`
	RequestedTime     string    `gorm:"type:varchar(5);not null" json:"requested_time"`
	EstimatedDuration *int      `json:"estimated_duration,omitempty"`

	PartySize       int          `gorm:"not null" json:"party_size"`
	LocationType    LocationType `gorm:"type:varchar(30);not null" json:"location_type"`
	LocationAddress string       `gorm:"type:text" json:"location_address"`

	// Pickup-specific fields.
	SelectedProducts SelectedProducts `gorm:"type:jsonb" json:"selected_products,omitempty"`
	PickupTimeSlot   *string          `gorm:"type:varchar(20)" json:"pickup_time_slot,omitempty"`
	PickupLocation   *string          `gorm:"type:text" json:"pickup_location,omitempty"`

	FirstName           string  `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName            string  `gorm:"type:varchar(255);not null" json:"last_name"`
	Email               string  `gorm:"type:varchar(255);not null" json:"email"`
	Phone               string  `gorm:"type:varchar(20);not null" json:"phone"`
	Notes               *string `gorm:"type:text" json:"notes,omitempty"`
	SpecialRequirements *string `gorm:"type:text" json:"special_requirements,omitempty"`

	TotalPrice  float64 `gorm:"type:numeric(10,2);not null" json:"total_price"`
	DepositPaid bool    `gorm:"not null;default:false" json:"deposit_paid"`

	// Acceptance/rejection trace. ProductID is set exactly once, on accept.
	ProductID       *uint      `gorm:"index" json:"product_id,omitempty"`
	AcceptedAt      *time.Time `json:"accepted_at,omitempty"`
	AcceptedBy      *string    `gorm:"type:varchar(255)" json:"accepted_by,omitempty"`
	RejectionReason *string    `gorm:"type:text" json:"rejection_reason,omitempty"`
	ChefNotes       *string    `gorm:"type:text" json:"chef_notes,omitempty"`

	SendAcceptanceEmail bool          `gorm:"not null;default:true" json:"send_acceptance_email"`
	EmailHistory        []EmailRecord `gorm:"foreignKey:ChefEventID" json:"email_history,omitempty"`
	LastEmailSentAt     *time.Time    `json:"last_email_sent_at,omitempty"`
	TipAmount           *float64      `gorm:"type:numeric(10,2)" json:"tip_amount,omitempty"`
	TipMethod           *string       `gorm:"type:varchar(50)" json:"tip_method,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the ChefEvent model
func (ChefEvent) TableName() string {
	return "chef_events"
}

// CustomerName is the customer's display name used in notifications and
// product titles.
func (ce *ChefEvent) CustomerName() string {
	return ce.FirstName + " " + ce.LastName
}
