package lifecycle

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"chef-catering/logger"
	chefEventModel "chef-catering/models/chefevent"
	experienceTypeModel "chef-catering/models/experiencetype"
	"chef-catering/services/events"
	"chef-catering/services/pricing"
	"chef-catering/services/provision"
	chefEventTypes "chef-catering/types/chefevent"
	"chef-catering/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExperienceTypeStore is the configuration lookup the workflow needs for
// validation. The GORM implementation lives in database/stores.
type ExperienceTypeStore interface {
	FindByID(id uint) (*experienceTypeModel.ExperienceType, error)
}

// Config carries deployment-level workflow settings.
type Config struct {
	// PickupLocation is the fixed address pickup events are served from.
	// Customers never supply it.
	PickupLocation string
}

// ConfigFromEnv reads workflow settings with sensible defaults.
func ConfigFromEnv() Config {
	loc := os.Getenv("PICKUP_LOCATION")
	if loc == "" {
		loc = "Chef's Kitchen, 12 Market Street"
	}
	return Config{PickupLocation: loc}
}

// Workflow orchestrates the chef event lifecycle: creation, accept/reject,
// completion, email and receipt tracking. All collaborators are injected;
// the workflow never resolves anything from ambient state.
type Workflow struct {
	db              *gorm.DB
	experienceTypes ExperienceTypeStore
	pricing         *pricing.Resolver
	provisioner     *provision.Provisioner
	bus             *events.Bus
	cfg             Config
}

func NewWorkflow(db *gorm.DB, experienceTypes ExperienceTypeStore, pricer *pricing.Resolver, provisioner *provision.Provisioner, bus *events.Bus, cfg Config) *Workflow {
	return &Workflow{
		db:              db,
		experienceTypes: experienceTypes,
		pricing:         pricer,
		provisioner:     provisioner,
		bus:             bus,
		cfg:             cfg,
	}
}

// Create persists a new chef event request. Status and deposit are forced to
// their initial values regardless of caller input; pricing is resolved
// server-side.
func (w *Workflow) Create(req *chefEventTypes.CreateRequest) (*chefEventModel.ChefEvent, error) {
	eventType := chefEventModel.EventType(req.EventType)
	if !eventType.IsValid() {
		return nil, validationErr("invalid event_type")
	}

	requestedDate, err := utils.ParseDate(req.RequestedDate)
	if err != nil {
		return nil, validationErr(err.Error())
	}
	if !utils.ValidTimeHHMM(req.RequestedTime) {
		return nil, validationErr("requested_time must be HH:mm")
	}

	if err := w.checkExperienceRules(eventType, req.ExperienceTypeID, req.PartySize, requestedDate); err != nil {
		return nil, err
	}

	event := &chefEventModel.ChefEvent{
		UUID:             uuid.NewString(),
		Status:           chefEventModel.StatusPending,
		EventType:        eventType,
		ExperienceTypeID: req.ExperienceTypeID,
		RequestedDate:    requestedDate,
		RequestedTime:    req.RequestedTime,
		PartySize:        req.PartySize,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		DepositPaid:      false,
	}
	if req.Notes != "" {
		event.Notes = &req.Notes
	}
	if req.SpecialRequirements != "" {
		event.SpecialRequirements = &req.SpecialRequirements
	}

	event.EstimatedDuration = req.EstimatedDuration
	if event.EstimatedDuration == nil {
		if d, ok := eventType.DefaultDuration(); ok {
			event.EstimatedDuration = &d
		}
	}

	if eventType == chefEventModel.EventTypePickup {
		// Pickup address is system-derived, never customer-supplied.
		event.LocationType = chefEventModel.LocationChef
		event.LocationAddress = w.cfg.PickupLocation
		event.PickupLocation = &w.cfg.PickupLocation
		event.SelectedProducts = make(chefEventModel.SelectedProducts, 0, len(req.SelectedProducts))
		for _, sp := range req.SelectedProducts {
			event.SelectedProducts = append(event.SelectedProducts, chefEventModel.SelectedProduct{
				ProductID: sp.ProductID,
				Quantity:  sp.Quantity,
			})
		}
		slot := req.PickupTimeSlot
		if slot == "" {
			slot = req.RequestedTime
		}
		event.PickupTimeSlot = &slot
	} else {
		event.LocationType = chefEventModel.LocationCustomer
		if req.LocationType != "" {
			event.LocationType = chefEventModel.LocationType(req.LocationType)
		}
		event.LocationAddress = req.LocationAddress
	}

	event.TotalPrice = w.pricing.ResolveTotal(eventType, req.ExperienceTypeID, req.PartySize)

	if err := w.db.Create(event).Error; err != nil {
		logger.Error("Failed to create chef event", err)
		return nil, err
	}

	logger.Success(fmt.Sprintf("Chef event created with ID: %d", event.ID))
	w.bus.Publish(events.ChefEventRequested, event.ID, nil)
	return event, nil
}

// checkExperienceRules enforces the experience type's capacity and notice
// constraints. A missing configuration row is tolerated; the event just
// prices with static defaults.
func (w *Workflow) checkExperienceRules(eventType chefEventModel.EventType, experienceTypeID *uint, partySize int, requestedDate time.Time) error {
	if experienceTypeID == nil || eventType == chefEventModel.EventTypePickup {
		return nil
	}
	et, err := w.experienceTypes.FindByID(*experienceTypeID)
	if err != nil {
		logger.Warning(fmt.Sprintf("Experience type %d lookup failed during validation: %v", *experienceTypeID, err))
		return nil
	}
	if !et.AllowsPartySize(partySize) {
		if et.MaxPartySize != nil {
			return validationErr(fmt.Sprintf("party_size must be between %d and %d for %s",
				et.MinPartySize, *et.MaxPartySize, et.Name))
		}
		return validationErr(fmt.Sprintf("party_size must be at least %d for %s", et.MinPartySize, et.Name))
	}
	if et.RequiresAdvanceNotice && !utils.MeetsAdvanceNotice(requestedDate, et.AdvanceNoticeDays) {
		return validationErr(fmt.Sprintf("%s requires %d days advance notice", et.Name, et.AdvanceNoticeDays))
	}
	return nil
}

// Accept confirms a pending event and provisions its ticket product.
// Provisioning runs first; the status flip and product link commit together
// afterwards, so a provisioning failure leaves the event pending and
// retriable, and a double accept cannot attach two products.
func (w *Workflow) Accept(id uint, req *chefEventTypes.AcceptRequest, acceptedBy string) (*chefEventModel.ChefEvent, error) {
	event, err := w.find(id)
	if err != nil {
		return nil, err
	}
	if !chefEventModel.ValidAction("accept", event.Status) {
		return nil, preconditionErr(fmt.Sprintf("cannot accept a %s event", event.Status))
	}

	unitPrice := int(math.Round(w.pricing.PerUnit(event.EventType, event.ExperienceTypeID) * 100))
	result, err := w.provisioner.ProvisionTicket(event, unitPrice)
	if err != nil {
		logger.Error(fmt.Sprintf("Provisioning failed for chef event %d", id), err)
		return nil, err
	}

	now := time.Now()
	sendEmail := req.EmailPreference()
	err = w.db.Transaction(func(tx *gorm.DB) error {
		var current chefEventModel.ChefEvent
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		// Re-check under the transaction: a concurrent accept may have won.
		if current.Status != chefEventModel.StatusPending || current.ProductID != nil {
			event = &current
			return nil
		}

		updates := map[string]interface{}{
			"status":                chefEventModel.StatusConfirmed,
			"product_id":            result.Product.ID,
			"accepted_at":           now,
			"accepted_by":           acceptedBy,
			"send_acceptance_email": sendEmail,
		}
		if req.ChefNotes != "" {
			updates["chef_notes"] = req.ChefNotes
		}
		if err := tx.Model(&current).Updates(updates).Error; err != nil {
			return err
		}
		if err := w.writeStatusEvent(tx, id, chefEventModel.StatusPending, chefEventModel.StatusConfirmed, nil, acceptedBy); err != nil {
			return err
		}
		event = &current
		return nil
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to confirm chef event %d", id), err)
		return nil, err
	}

	if event.Status == chefEventModel.StatusConfirmed && event.ProductID != nil && *event.ProductID != result.Product.ID {
		// Lost the race to another accept; its product stands.
		logger.Info(fmt.Sprintf("Chef event %d already confirmed with product %d", id, *event.ProductID))
		return event, nil
	}

	if sendEmail {
		pid := result.Product.ID
		w.bus.Publish(events.ChefEventAccepted, id, &pid)
	}

	logger.Success(fmt.Sprintf("Chef event %d accepted, ticket product %d", id, result.Product.ID))
	return w.find(id)
}

// Reject cancels a pending event with a mandatory reason. No commerce side
// effects.
func (w *Workflow) Reject(id uint, req *chefEventTypes.RejectRequest, rejectedBy string) (*chefEventModel.ChefEvent, error) {
	if req.RejectionReason == "" {
		return nil, validationErr("rejection_reason is required")
	}
	event, err := w.find(id)
	if err != nil {
		return nil, err
	}
	if !chefEventModel.ValidAction("reject", event.Status) {
		return nil, preconditionErr(fmt.Sprintf("cannot reject a %s event", event.Status))
	}

	err = w.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":           chefEventModel.StatusCancelled,
			"rejection_reason": req.RejectionReason,
		}
		if req.ChefNotes != "" {
			updates["chef_notes"] = req.ChefNotes
		}
		if err := tx.Model(event).Updates(updates).Error; err != nil {
			return err
		}
		return w.writeStatusEvent(tx, id, chefEventModel.StatusPending, chefEventModel.StatusCancelled, &req.RejectionReason, rejectedBy)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to reject chef event %d", id), err)
		return nil, err
	}

	w.bus.Publish(events.ChefEventRejected, id, nil)
	return w.find(id)
}

// Complete marks a confirmed event as done.
func (w *Workflow) Complete(id uint, completedBy string) (*chefEventModel.ChefEvent, error) {
	event, err := w.find(id)
	if err != nil {
		return nil, err
	}
	if !chefEventModel.ValidAction("complete", event.Status) {
		return nil, preconditionErr(fmt.Sprintf("cannot complete a %s event", event.Status))
	}

	err = w.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(event).Update("status", chefEventModel.StatusCompleted).Error; err != nil {
			return err
		}
		return w.writeStatusEvent(tx, id, chefEventModel.StatusConfirmed, chefEventModel.StatusCompleted, nil, completedBy)
	})
	if err != nil {
		return nil, err
	}
	return w.find(id)
}

// ResendEmail appends a resend entry to the email history and emits the
// notification signal. The operator chooses the recipients.
func (w *Workflow) ResendEmail(id uint, req *chefEventTypes.ResendEmailRequest, sentBy string) (*chefEventModel.ChefEvent, error) {
	if err := req.Validate(); err != nil {
		return nil, validationErr(err.Error())
	}
	event, err := w.find(id)
	if err != nil {
		return nil, err
	}

	err = w.db.Transaction(func(tx *gorm.DB) error {
		return w.appendEmail(tx, event, chefEventModel.EmailRecord{
			ChefEventID: id,
			Type:        chefEventModel.EmailTypeResend,
			Recipients:  req.Recipients,
			SentBy:      sentBy,
		}, req.Notes)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to record email resend for chef event %d", id), err)
		return nil, err
	}

	w.bus.Publish(events.ChefEventEmailResend, id, event.ProductID)
	return w.find(id)
}

// SendReceipt records a receipt (and optional tip) for a confirmed event
// with a provisioned product, then emits the notification signal.
func (w *Workflow) SendReceipt(id uint, req *chefEventTypes.SendReceiptRequest, sentBy string) (*chefEventModel.ChefEvent, error) {
	if err := req.Validate(); err != nil {
		return nil, validationErr(err.Error())
	}
	event, err := w.find(id)
	if err != nil {
		return nil, err
	}
	if event.Status != chefEventModel.StatusConfirmed {
		return nil, preconditionErr(fmt.Sprintf("receipts can only be sent for confirmed events, not %s", event.Status))
	}
	if event.ProductID == nil {
		return nil, preconditionErr("receipts require a provisioned ticket product")
	}

	err = w.db.Transaction(func(tx *gorm.DB) error {
		if req.TipAmount != nil {
			tips := map[string]interface{}{"tip_amount": *req.TipAmount}
			if req.TipMethod != "" {
				tips["tip_method"] = req.TipMethod
			}
			if err := tx.Model(event).Updates(tips).Error; err != nil {
				return err
			}
		}
		return w.appendEmail(tx, event, chefEventModel.EmailRecord{
			ChefEventID: id,
			Type:        chefEventModel.EmailTypeReceipt,
			Recipients:  req.Recipients,
			SentBy:      sentBy,
		}, req.Notes)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to record receipt for chef event %d", id), err)
		return nil, err
	}

	w.bus.Publish(events.ChefEventReceipt, id, event.ProductID)
	return w.find(id)
}

// Update applies a partial admin patch. A status change is re-validated
// against the transition table even though the controller already checked it.
func (w *Workflow) Update(id uint, req *chefEventTypes.UpdateRequest, updatedBy string) (*chefEventModel.ChefEvent, error) {
	event, err := w.find(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	var statusChange *chefEventModel.Status

	if req.Status != nil {
		next := chefEventModel.Status(*req.Status)
		if !next.IsValid() {
			return nil, validationErr("invalid status")
		}
		if next != event.Status {
			if !event.Status.CanTransitionTo(next) {
				return nil, preconditionErr(fmt.Sprintf("cannot transition from %s to %s", event.Status, next))
			}
			updates["status"] = next
			statusChange = &next
		}
	}
	if req.RequestedDate != nil {
		d, err := utils.ParseDate(*req.RequestedDate)
		if err != nil {
			return nil, validationErr(err.Error())
		}
		updates["requested_date"] = d
	}
	if req.RequestedTime != nil {
		if !utils.ValidTimeHHMM(*req.RequestedTime) {
			return nil, validationErr("requested_time must be HH:mm")
		}
		updates["requested_time"] = *req.RequestedTime
	}
	if req.PartySize != nil {
		if *req.PartySize < 1 {
			return nil, validationErr("party_size must be at least 1")
		}
		updates["party_size"] = *req.PartySize
	}
	if req.LocationAddress != nil {
		if event.EventType == chefEventModel.EventTypePickup {
			return nil, validationErr("location_address is system-derived for pickup events")
		}
		updates["location_address"] = *req.LocationAddress
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.ChefNotes != nil {
		updates["chef_notes"] = *req.ChefNotes
	}

	if len(updates) == 0 {
		return event, nil
	}

	from := event.Status
	err = w.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(event).Updates(updates).Error; err != nil {
			return err
		}
		if statusChange != nil {
			return w.writeStatusEvent(tx, id, from, *statusChange, nil, updatedBy)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return w.find(id)
}

// Delete hard-deletes an event after an existence check. A provisioned
// ticket product is kept as a historical commerce record; the orphaned id is
// returned so an operator can retire it.
func (w *Workflow) Delete(id uint) (*uint, error) {
	event, err := w.find(id)
	if err != nil {
		return nil, err
	}
	orphaned := event.ProductID

	err = w.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chef_event_id = ?", id).Delete(&chefEventModel.EmailRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chef_event_id = ?", id).Delete(&chefEventModel.StatusEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&chefEventModel.ChefEvent{}, id).Error
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to delete chef event %d", id), err)
		return nil, err
	}
	if orphaned != nil {
		logger.Warning(fmt.Sprintf("Deleted chef event %d leaves product %d orphaned", id, *orphaned))
	}
	return orphaned, nil
}

func (w *Workflow) find(id uint) (*chefEventModel.ChefEvent, error) {
	var event chefEventModel.ChefEvent
	err := w.db.Preload("EmailHistory").First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (w *Workflow) writeStatusEvent(tx *gorm.DB, chefEventID uint, from, to chefEventModel.Status, reason *string, by string) error {
	return tx.Create(&chefEventModel.StatusEvent{
		ChefEventID: chefEventID,
		FromStatus:  from,
		ToStatus:    to,
		Reason:      reason,
		CreatedBy:   by,
	}).Error
}

// appendEmail adds one append-only history row and bumps last_email_sent_at
// inside the caller's transaction.
func (w *Workflow) appendEmail(tx *gorm.DB, event *chefEventModel.ChefEvent, record chefEventModel.EmailRecord, notes string) error {
	if notes != "" {
		record.Notes = &notes
	}
	if record.SentAt.IsZero() {
		record.SentAt = time.Now()
	}
	if err := tx.Create(&record).Error; err != nil {
		return err
	}
	return tx.Model(event).Update("last_email_sent_at", record.SentAt).Error
}
