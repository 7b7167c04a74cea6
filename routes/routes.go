package routes

import (
	"chef-catering/constants"
	chefEventController "chef-catering/controllers/chefevent"
	experienceTypeController "chef-catering/controllers/experiencetype"
	"chef-catering/database/stores"
	"chef-catering/logger"
	"chef-catering/middleware"
	"chef-catering/services/events"
	"chef-catering/services/lifecycle"
	"chef-catering/services/notification"
	"chef-catering/services/pricing"
	"chef-catering/services/provision"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)

	experienceTypeStore := stores.NewExperienceTypeStore(db)
	commerceStore := stores.NewCommerceStore(db)

	priceResolver := pricing.NewResolver(experienceTypeStore, pricing.DefaultStaticPrices())
	provisioner := provision.New(commerceStore)

	bus := events.NewBus()
	dispatcher := notification.NewDispatcher(db, notification.LogSender{})
	bus.Subscribe(dispatcher.Handle)

	workflow := lifecycle.NewWorkflow(db, experienceTypeStore, priceResolver, provisioner, bus, lifecycle.ConfigFromEnv())

	chefEvents := chefEventController.NewChefEventController(db, workflow, asyncLogger)
	experienceTypes := experienceTypeController.NewExperienceTypeController(db, asyncLogger)

	// Start the async logger and event bus processing goroutines
	go asyncLogger.ProcessLog()
	go bus.Process()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "chef-catering",
			"status":  "ok",
		})
	})

	/*=============================================================================
	| Storefront Routes (public)
	===============================================================================*/
	store := app.Group("/store")
	store.Post("/chef-events", chefEvents.Store)
	store.Get("/experience-types", experienceTypes.StoreList)
	store.Get("/experience-types/:slug", experienceTypes.StoreGet)

	/*=============================================================================
	| Admin Routes (authenticated)
	===============================================================================*/
	admin := app.Group("/admin")

	chefEventGroup := admin.Group("/chef-events", middleware.RequirePermissions(
		constants.LifecyclePermissions...,
	))
	chefEventGroup.Get("/", chefEvents.List)
	chefEventGroup.Get("/:id", chefEvents.Get)
	chefEventGroup.Post("/:id", chefEvents.Update)
	chefEventGroup.Delete("/:id", chefEvents.Delete)
	chefEventGroup.Post("/:id/accept", chefEvents.Accept)
	chefEventGroup.Post("/:id/reject", chefEvents.Reject)
	chefEventGroup.Post("/:id/complete", chefEvents.Complete)
	chefEventGroup.Post("/:id/resend-email", chefEvents.ResendEmail)
	chefEventGroup.Post("/:id/send-receipt", chefEvents.SendReceipt)

	experienceTypeGroup := admin.Group("/experience-types", middleware.RequirePermissions(
		constants.PermAdminFull,
	))
	experienceTypeGroup.Get("/", experienceTypes.List)
	experienceTypeGroup.Get("/:id", experienceTypes.Get)
	experienceTypeGroup.Post("/", experienceTypes.Create)
	experienceTypeGroup.Post("/:id", experienceTypes.Update)
	experienceTypeGroup.Put("/:id", experienceTypes.Update)
	experienceTypeGroup.Delete("/:id", experienceTypes.Delete)
}
