package chefevent

import (
	"errors"
	"fmt"
	"strconv"

	"chef-catering/logger"
	chefEventModel "chef-catering/models/chefevent"
	"chef-catering/services/lifecycle"
	"chef-catering/types"
	chefEventTypes "chef-catering/types/chefevent"
	"chef-catering/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ChefEventController handles chef-event HTTP requests, storefront and admin.
type ChefEventController struct {
	DB       *gorm.DB
	Workflow *lifecycle.Workflow
	Logger   *logger.AsyncLogger
}

// NewChefEventController creates a new chef event controller
func NewChefEventController(db *gorm.DB, workflow *lifecycle.Workflow, asyncLogger *logger.AsyncLogger) *ChefEventController {
	return &ChefEventController{
		DB:       db,
		Workflow: workflow,
		Logger:   asyncLogger,
	}
}

// logAPIRequest pushes the request/response pair to the async audit logger.
func (cc *ChefEventController) logAPIRequest(c *fiber.Ctx) {
	cc.Logger.Log(utils.CreateLogEntry(c))
}

// adminIdentity extracts the acting admin's identity from the JWT claims.
func adminIdentity(c *fiber.Ctx) string {
	claims, ok := c.Locals("user").(map[string]interface{})
	if !ok {
		return "unknown"
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		return email
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub
	}
	return "unknown"
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return uint(id), nil
}

// respondError maps workflow errors onto the admin error envelope.
func respondError(c *fiber.Ctx, err error, context string) error {
	var validationErr *lifecycle.ValidationError
	var preconditionErr *lifecycle.PreconditionError

	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.AdminResponse{
			Success: false,
			Message: "Chef event not found",
			Error:   err.Error(),
		})
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: validationErr.Message,
			Error:   validationErr.Message,
		})
	case errors.As(err, &preconditionErr):
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: preconditionErr.Message,
			Error:   preconditionErr.Message,
		})
	default:
		logger.Error(context, err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.AdminResponse{
			Success: false,
			Message: context,
			Error:   err.Error(),
		})
	}
}

// Store creates a new chef event from the storefront.
func (cc *ChefEventController) Store(c *fiber.Ctx) error {
	defer cc.logAPIRequest(c)

	var req chefEventTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse chef event request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ValidationResponse{
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ValidationResponse{
			Message: "Validation failed",
			Errors:  []string{err.Error()},
		})
	}

	event, err := cc.Workflow.Create(&req)
	if err != nil {
		var validationErr *lifecycle.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ValidationResponse{
				Message: "Validation failed",
				Errors:  []string{validationErr.Message},
			})
		}
		logger.Error("Failed to create chef event", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ValidationResponse{
			Message: "Failed to create chef event",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"chefEvent": event,
		"message":   "Your request has been received. We'll confirm availability shortly.",
	})
}

// List returns chef events for the admin dashboard, newest first. Optional
// ?status= filter.
func (cc *ChefEventController) List(c *fiber.Ctx) error {
	query := cc.DB.Model(&chefEventModel.ChefEvent{}).Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		if !chefEventModel.Status(status).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
				Success: false,
				Message: "Invalid status filter",
			})
		}
		query = query.Where("status = ?", status)
	}

	var events []chefEventModel.ChefEvent
	if err := query.Preload("EmailHistory").Find(&events).Error; err != nil {
		logger.Error("Failed to list chef events", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.AdminResponse{
			Success: false,
			Message: "Database error",
			Error:   err.Error(),
		})
	}

	return c.JSON(types.AdminResponse{Success: true, Data: events})
}

// Get returns one chef event with its email history.
func (cc *ChefEventController) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid chef event id",
		})
	}

	var event chefEventModel.ChefEvent
	err = cc.DB.Preload("EmailHistory").First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.AdminResponse{
			Success: false,
			Message: "Chef event not found",
		})
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load chef event %d", id), err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.AdminResponse{
			Success: false,
			Message: "Database error",
			Error:   err.Error(),
		})
	}

	return c.JSON(types.AdminResponse{Success: true, Data: event})
}

// Update applies a partial patch. Status changes are checked against the
// transition table before the workflow runs.
func (cc *ChefEventController) Update(c *fiber.Ctx) error {
	defer cc.logAPIRequest(c)

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid chef event id",
		})
	}

	var req chefEventTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if req.Status != nil {
		var current chefEventModel.ChefEvent
		if err := cc.DB.First(&current, id).Error; err == nil {
			next := chefEventModel.Status(*req.Status)
			if next != current.Status && !current.Status.CanTransitionTo(next) {
				return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
					Success: false,
					Message: fmt.Sprintf("Cannot transition from %s to %s", current.Status, next),
				})
			}
		}
	}

	event, err := cc.Workflow.Update(id, &req, adminIdentity(c))
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Failed to update chef event %d", id))
	}
	return c.JSON(types.AdminResponse{Success: true, Data: event})
}

// Delete hard-deletes a chef event. A provisioned product is kept as a
// historical record; its id is reported back.
func (cc *ChefEventController) Delete(c *fiber.Ctx) error {
	defer cc.logAPIRequest(c)

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid chef event id",
		})
	}

	orphaned, err := cc.Workflow.Delete(id)
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Failed to delete chef event %d", id))
	}

	resp := types.AdminResponse{Success: true, Message: "Chef event deleted"}
	if orphaned != nil {
		resp.Data = fiber.Map{"orphaned_product_id": *orphaned}
		resp.Message = "Chef event deleted; its ticket product was kept as a historical record"
	}
	return c.JSON(resp)
}

// Accept confirms a pending event and provisions its ticket product.
func (cc *ChefEventController) Accept(c *fiber.Ctx) error {
	defer cc.logAPIRequest(c)

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid chef event id",
		})
	}

	var req chefEventTypes.AcceptRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid request body",
		})
	}

	event, err := cc.Workflow.Accept(id, &req, adminIdentity(c))
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Failed to accept chef event %d", id))
	}

	logger.Success(fmt.Sprintf("Chef event %d accepted by %s", id, adminIdentity(c)))
	return c.JSON(types.AdminResponse{Success: true, Data: event})
}

// Reject cancels a pending event with a mandatory reason.
func (cc *ChefEventController) Reject(c *fiber.Ctx) error {
	defer cc.logAPIRequest(c)

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid chef event id",
		})
	}

	var req chefEventTypes.RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	event, err := cc.Workflow.Reject(id, &req, adminIdentity(c))
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Failed to reject chef event %d", id))
	}
	return c.JSON(types.AdminResponse{Success: true, Data: event})
}

// Complete marks a confirmed event as done.
func (cc *ChefEventController) Complete(c *fiber.Ctx) error {
	defer cc.logAPIRequest(c)

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid chef event id",
		})
	}

	event, err := cc.Workflow.Complete(id, adminIdentity(c))
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Failed to complete chef event %d", id))
	}
	return c.JSON(types.AdminResponse{Success: true, Data: event})
}

// ResendEmail records and re-sends a notification for an event.
func (cc *ChefEventController) ResendEmail(c *fiber.Ctx) error {
	defer cc.logAPIRequest(c)

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid chef event id",
		})
	}

	var req chefEventTypes.ResendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid request body",
		})
	}

	event, err := cc.Workflow.ResendEmail(id, &req, adminIdentity(c))
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Failed to resend email for chef event %d", id))
	}
	return c.JSON(types.AdminResponse{Success: true, Data: event})
}

// SendReceipt records a receipt (and optional tip) for a confirmed event.
func (cc *ChefEventController) SendReceipt(c *fiber.Ctx) error {
	defer cc.logAPIRequest(c)

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid chef event id",
		})
	}

	var req chefEventTypes.SendReceiptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid request body",
		})
	}

	event, err := cc.Workflow.SendReceipt(id, &req, adminIdentity(c))
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Failed to send receipt for chef event %d", id))
	}
	return c.JSON(types.AdminResponse{Success: true, Data: event})
}
