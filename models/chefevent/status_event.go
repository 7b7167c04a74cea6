package chefevent

import (
	"time"
)

// StatusEvent represents a status change event for a chef event. One row is
// written per transition in the same transaction as the transition itself.
type StatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for chef event relationship
	ChefEventID uint      `gorm:"not null;index" json:"chef_event_id"`
	ChefEvent   ChefEvent `gorm:"foreignKey:ChefEventID" json:"chef_event"`

	FromStatus Status    `gorm:"type:varchar(20);not null" json:"from_status"`
	ToStatus   Status    `gorm:"type:varchar(20);not null" json:"to_status"`
	Reason     *string   `gorm:"type:text" json:"reason,omitempty"`
	CreatedBy  string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the StatusEvent model
func (StatusEvent) TableName() string {
	return "chef_event_status_events"
}
