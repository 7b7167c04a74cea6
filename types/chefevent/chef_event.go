package chefevent

import (
	"fmt"

	chefEventModel "chef-catering/models/chefevent"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SelectedProductInput is one pickup menu line in a creation request.
type SelectedProductInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateRequest is the storefront payload for requesting a chef event.
// Status, deposit and pricing fields are intentionally absent: the server
// decides those regardless of what a client sends.
type CreateRequest struct {
	EventType        string `json:"event_type" validate:"required,oneof=plated_dinner buffet_style pickup"`
	ExperienceTypeID *uint  `json:"experience_type_id" validate:"omitempty"`

	RequestedDate     string `json:"requested_date" validate:"required"`
	RequestedTime     string `json:"requested_time" validate:"required"`
	EstimatedDuration *int   `json:"estimated_duration" validate:"omitempty,min=1"`

	PartySize       int    `json:"party_size" validate:"required,min=1"`
	LocationType    string `json:"location_type" validate:"omitempty,oneof=customer_location chef_location"`
	LocationAddress string `json:"location_address" validate:"omitempty"`

	SelectedProducts []SelectedProductInput `json:"selected_products" validate:"omitempty,dive"`
	PickupTimeSlot   string                 `json:"pickup_time_slot" validate:"omitempty"`

	FirstName           string `json:"first_name" validate:"required,min=1,max=255"`
	LastName            string `json:"last_name" validate:"required,min=1,max=255"`
	Email               string `json:"email" validate:"required,email"`
	Phone               string `json:"phone" validate:"required,min=6,max=20"`
	Notes               string `json:"notes" validate:"omitempty"`
	SpecialRequirements string `json:"special_requirements" validate:"omitempty"`
}

// Validate runs the struct tags plus the cross-field rules tags cannot
// express.
func (r CreateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	eventType := chefEventModel.EventType(r.EventType)
	if !eventType.IsValid() {
		return fmt.Errorf("event_type must be one of plated_dinner, buffet_style, pickup")
	}
	if r.PartySize < 1 {
		return fmt.Errorf("party_size must be at least 1")
	}
	if eventType == chefEventModel.EventTypePickup {
		if len(r.SelectedProducts) == 0 {
			return fmt.Errorf("selected_products is required for pickup events")
		}
		for _, sp := range r.SelectedProducts {
			if sp.ProductID == "" {
				return fmt.Errorf("selected_products entries require a product_id")
			}
			if sp.Quantity < 1 {
				return fmt.Errorf("selected_products quantities must be at least 1")
			}
		}
		return nil
	}
	if len(r.LocationAddress) < 3 {
		return fmt.Errorf("location_address is required and must be at least 3 characters")
	}
	return nil
}

// AcceptRequest is the admin payload for accepting a pending chef event.
type AcceptRequest struct {
	ChefNotes           string `json:"chef_notes" validate:"omitempty"`
	SendAcceptanceEmail *bool  `json:"send_acceptance_email" validate:"omitempty"`
}

// EmailPreference defaults to true when the admin did not choose.
func (r AcceptRequest) EmailPreference() bool {
	if r.SendAcceptanceEmail == nil {
		return true
	}
	return *r.SendAcceptanceEmail
}

// RejectRequest is the admin payload for rejecting a pending chef event.
type RejectRequest struct {
	RejectionReason string `json:"rejection_reason" validate:"required,min=1"`
	ChefNotes       string `json:"chef_notes" validate:"omitempty"`
}

func (r RejectRequest) Validate() error {
	if r.RejectionReason == "" {
		return fmt.Errorf("rejection_reason is required")
	}
	return validate.Struct(r)
}

// ResendEmailRequest re-sends a notification for an existing chef event.
type ResendEmailRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,dive,email"`
	Notes      string   `json:"notes" validate:"omitempty"`
}

func (r ResendEmailRequest) Validate() error {
	if len(r.Recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	return validate.Struct(r)
}

// SendReceiptRequest sends a receipt for a confirmed chef event, optionally
// recording a tip.
type SendReceiptRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,dive,email"`
	Notes      string   `json:"notes" validate:"omitempty"`
	TipAmount  *float64 `json:"tip_amount" validate:"omitempty,min=0"`
	TipMethod  string   `json:"tip_method" validate:"omitempty,max=50"`
}

func (r SendReceiptRequest) Validate() error {
	if len(r.Recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	if r.TipAmount != nil && *r.TipAmount > 0 && r.TipMethod == "" {
		return fmt.Errorf("tip_method is required when tip_amount is greater than zero")
	}
	return validate.Struct(r)
}

// UpdateRequest is a partial admin patch. A status change must also pass the
// transition table; the controller checks that before the workflow runs.
type UpdateRequest struct {
	Status          *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	RequestedDate   *string `json:"requested_date" validate:"omitempty"`
	RequestedTime   *string `json:"requested_time" validate:"omitempty"`
	PartySize       *int    `json:"party_size" validate:"omitempty,min=1"`
	LocationAddress *string `json:"location_address" validate:"omitempty,min=3"`
	Notes           *string `json:"notes" validate:"omitempty"`
	ChefNotes       *string `json:"chef_notes" validate:"omitempty"`
}
