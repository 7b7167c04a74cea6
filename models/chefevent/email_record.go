package chefevent

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Email record types.
const (
	EmailTypeAcceptance = "acceptance"
	EmailTypeRejection  = "rejection"
	EmailTypeResend     = "resend"
	EmailTypeReceipt    = "receipt"
)

// Recipients stores the recipient list as a jsonb column.
type Recipients []string

func (r Recipients) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

func (r *Recipients) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("unsupported type for Recipients: %T", value)
	}
}

// EmailRecord is one append-only entry of the email history of a chef event.
// Rows are never updated or deleted; every append also bumps the parent's
// LastEmailSentAt inside the same transaction.
type EmailRecord struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ChefEventID uint `gorm:"not null;index" json:"chef_event_id"`

	Type       string     `gorm:"type:varchar(30);not null" json:"type"`
	Recipients Recipients `gorm:"type:jsonb;not null" json:"recipients"`
	Notes      *string    `gorm:"type:text" json:"notes,omitempty"`
	SentAt     time.Time  `gorm:"not null" json:"sent_at"`
	SentBy     string     `gorm:"type:varchar(255);not null" json:"sent_by"`
}

// TableName sets the table name for the EmailRecord model
func (EmailRecord) TableName() string {
	return "chef_event_emails"
}
