package notification

import (
	"fmt"
	"strings"
	"time"

	"chef-catering/logger"
	chefEventModel "chef-catering/models/chefevent"
	"chef-catering/services/events"

	"gorm.io/gorm"
)

type payloadData map[string]interface{}

// Dispatcher subscribes to the domain event bus, re-fetches the chef event
// the id refers to and sends the matching templated email. Send failures are
// logged and never touch booking state.
type Dispatcher struct {
	db     *gorm.DB
	sender EmailSender
}

func NewDispatcher(db *gorm.DB, sender EmailSender) *Dispatcher {
	return &Dispatcher{db: db, sender: sender}
}

// Handle is the bus subscriber entry point.
func (d *Dispatcher) Handle(ev events.Event) {
	var event chefEventModel.ChefEvent
	if err := d.db.First(&event, ev.ChefEventID).Error; err != nil {
		logger.Warning(fmt.Sprintf("Notification for missing chef event %d dropped: %v", ev.ChefEventID, err))
		return
	}

	subject, body, ok := templateFor(ev.Name)
	if !ok {
		return
	}

	payload := payloadData{
		"first_name":     event.FirstName,
		"last_name":      event.LastName,
		"event_type":     strings.ReplaceAll(event.EventType.String(), "_", " "),
		"requested_date": event.RequestedDate.Format("Jan 2, 2006"),
		"requested_time": event.RequestedTime,
		"party_size":     event.PartySize,
		"total_price":    fmt.Sprintf("%.2f", event.TotalPrice),
	}
	if event.RejectionReason != nil {
		payload["rejection_reason"] = *event.RejectionReason
	}
	if ev.ProductID != nil {
		payload["product_id"] = *ev.ProductID
	}

	recipients := []string{event.Email}
	if err := d.sender.Send(recipients, renderTemplate(subject, payload), renderTemplate(body, payload)); err != nil {
		logger.Error(fmt.Sprintf("Failed to send %s email for chef event %d", ev.Name, event.ID), err)
		return
	}

	if ev.Name == events.ChefEventAccepted {
		d.recordAcceptanceEmail(&event, recipients)
	}
}

// recordAcceptanceEmail appends the history entry after the acceptance email
// actually went out. Resends and receipts record their entries in the
// workflow instead, where the operator supplies recipients and notes.
func (d *Dispatcher) recordAcceptanceEmail(event *chefEventModel.ChefEvent, recipients []string) {
	sentAt := time.Now()
	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&chefEventModel.EmailRecord{
			ChefEventID: event.ID,
			Type:        chefEventModel.EmailTypeAcceptance,
			Recipients:  recipients,
			SentAt:      sentAt,
			SentBy:      "system",
		}).Error; err != nil {
			return err
		}
		return tx.Model(event).Update("last_email_sent_at", sentAt).Error
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to record acceptance email for chef event %d", event.ID), err)
	}
}

func templateFor(name string) (subject, body string, ok bool) {
	switch name {
	case events.ChefEventRequested:
		return "We received your {event_type} request",
			"Hi {first_name},\n\nThanks for your request for a {event_type} on {requested_date} at {requested_time} for {party_size} guests. Estimated total: ${total_price}. We'll be in touch once the chef reviews it.",
			true
	case events.ChefEventAccepted:
		return "Your {event_type} on {requested_date} is confirmed!",
			"Hi {first_name},\n\nGreat news: your {event_type} on {requested_date} at {requested_time} is confirmed for {party_size} guests. Tickets are available under product {product_id}.",
			true
	case events.ChefEventRejected:
		return "Update on your {event_type} request",
			"Hi {first_name},\n\nUnfortunately we can't host your {event_type} on {requested_date}. Reason: {rejection_reason}.",
			true
	case events.ChefEventEmailResend:
		return "Your {event_type} on {requested_date}",
			"Hi {first_name},\n\nHere are the details of your {event_type} on {requested_date} at {requested_time} for {party_size} guests again. Total: ${total_price}.",
			true
	case events.ChefEventReceipt:
		return "Receipt for your {event_type} on {requested_date}",
			"Hi {first_name},\n\nThanks for celebrating with us. Your receipt for the {event_type} on {requested_date}: ${total_price} for {party_size} guests.",
			true
	default:
		return "", "", false
	}
}

func renderTemplate(template string, payload payloadData) string {
	out := template
	for key, value := range payload {
		out = strings.ReplaceAll(out, "{"+key+"}", fmt.Sprintf("%v", value))
	}
	return out
}
