package experiencetype

import (
	"errors"
	"fmt"
	"strconv"

	"chef-catering/logger"
	experienceTypeModel "chef-catering/models/experiencetype"
	"chef-catering/types"
	experienceTypeTypes "chef-catering/types/experiencetype"
	"chef-catering/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ExperienceTypeController handles experience type configuration requests.
type ExperienceTypeController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewExperienceTypeController creates a new experience type controller
func NewExperienceTypeController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *ExperienceTypeController {
	return &ExperienceTypeController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// logAPIRequest pushes the request/response pair to the async audit logger.
func (ec *ExperienceTypeController) logAPIRequest(c *fiber.Ctx) {
	ec.Logger.Log(utils.CreateLogEntry(c))
}

// StoreList returns active experience types for the storefront, ordered by
// sort_order then insertion order.
func (ec *ExperienceTypeController) StoreList(c *fiber.Ctx) error {
	var list []experienceTypeModel.ExperienceType
	err := ec.DB.Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&list).Error
	if err != nil {
		logger.Error("Failed to list experience types", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ValidationResponse{
			Message: "Failed to load experience types",
		})
	}
	return c.JSON(fiber.Map{"experienceTypes": list})
}

// StoreGet returns one active experience type by slug.
func (ec *ExperienceTypeController) StoreGet(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var et experienceTypeModel.ExperienceType
	err := ec.DB.Where("slug = ? AND is_active = ?", slug, true).First(&et).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ValidationResponse{
			Message: "Experience type not found",
		})
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load experience type %s", slug), err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ValidationResponse{
			Message: "Failed to load experience type",
		})
	}
	return c.JSON(fiber.Map{"experienceType": et})
}

// List returns every experience type for the admin dashboard.
func (ec *ExperienceTypeController) List(c *fiber.Ctx) error {
	var list []experienceTypeModel.ExperienceType
	if err := ec.DB.Order("sort_order ASC, id ASC").Find(&list).Error; err != nil {
		logger.Error("Failed to list experience types", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.AdminResponse{
			Success: false,
			Message: "Database error",
			Error:   err.Error(),
		})
	}
	return c.JSON(types.AdminResponse{Success: true, Data: list})
}

// Get returns one experience type by id.
func (ec *ExperienceTypeController) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid experience type id",
		})
	}

	var et experienceTypeModel.ExperienceType
	dbErr := ec.DB.First(&et, id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.AdminResponse{
			Success: false,
			Message: "Experience type not found",
		})
	}
	if dbErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.AdminResponse{
			Success: false,
			Message: "Database error",
			Error:   dbErr.Error(),
		})
	}
	return c.JSON(types.AdminResponse{Success: true, Data: et})
}

// Create inserts a new experience type.
func (ec *ExperienceTypeController) Create(c *fiber.Ctx) error {
	defer ec.logAPIRequest(c)

	var req experienceTypeTypes.UpsertRequest
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

	et := applyUpsert(&experienceTypeModel.ExperienceType{}, &req)
	if err := ec.DB.Create(et).Error; err != nil {
		logger.Error("Failed to create experience type", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.AdminResponse{
			Success: false,
			Message: "Failed to create experience type",
			Error:   err.Error(),
		})
	}

	logger.Success(fmt.Sprintf("Experience type %s created", et.Slug))
	return c.Status(fiber.StatusCreated).JSON(types.AdminResponse{Success: true, Data: et})
}

// Update replaces an experience type's configuration.
func (ec *ExperienceTypeController) Update(c *fiber.Ctx) error {
	defer ec.logAPIRequest(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid experience type id",
		})
	}

	var req experienceTypeTypes.UpsertRequest
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

	var et experienceTypeModel.ExperienceType
	dbErr := ec.DB.First(&et, id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.AdminResponse{
			Success: false,
			Message: "Experience type not found",
		})
	}
	if dbErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.AdminResponse{
			Success: false,
			Message: "Database error",
			Error:   dbErr.Error(),
		})
	}

	applyUpsert(&et, &req)
	if err := ec.DB.Save(&et).Error; err != nil {
		logger.Error(fmt.Sprintf("Failed to update experience type %d", id), err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.AdminResponse{
			Success: false,
			Message: "Failed to update experience type",
			Error:   err.Error(),
		})
	}
	return c.JSON(types.AdminResponse{Success: true, Data: et})
}

// Delete hard-deletes an experience type. Chef events referencing it keep
// their experience_type_id; pricing falls back to static defaults for them.
func (ec *ExperienceTypeController) Delete(c *fiber.Ctx) error {
	defer ec.logAPIRequest(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.AdminResponse{
			Success: false,
			Message: "Invalid experience type id",
		})
	}

	result := ec.DB.Delete(&experienceTypeModel.ExperienceType{}, id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.AdminResponse{
			Success: false,
			Message: "Failed to delete experience type",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.AdminResponse{
			Success: false,
			Message: "Experience type not found",
		})
	}
	return c.JSON(types.AdminResponse{Success: true, Message: "Experience type deleted"})
}

func applyUpsert(et *experienceTypeModel.ExperienceType, req *experienceTypeTypes.UpsertRequest) *experienceTypeModel.ExperienceType {
	et.Slug = req.Slug
	et.Name = req.Name
	if req.Description != "" {
		et.Description = &req.Description
	}
	et.PricingType = req.PricingType
	et.PricePerUnit = req.PricePerUnit
	et.IsProductBased = req.IsProductBased
	et.LocationType = req.LocationType
	if req.FixedLocationAddress != "" {
		et.FixedLocationAddress = &req.FixedLocationAddress
	}
	et.RequiresAdvanceNotice = req.RequiresAdvanceNotice
	et.AdvanceNoticeDays = req.AdvanceNoticeDays
	et.TimeSlotStart = req.TimeSlotStart
	et.TimeSlotEnd = req.TimeSlotEnd
	et.TimeSlotInterval = req.TimeSlotInterval
	if req.MinPartySize > 0 {
		et.MinPartySize = req.MinPartySize
	} else if et.MinPartySize == 0 {
		et.MinPartySize = 1
	}
	et.MaxPartySize = req.MaxPartySize
	if req.IsActive != nil {
		et.IsActive = *req.IsActive
	} else if et.ID == 0 {
		et.IsActive = true
	}
	et.IsFeatured = req.IsFeatured
	et.SortOrder = req.SortOrder
	return et
}
