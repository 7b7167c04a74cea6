package database

import (
	"chef-catering/models/chefevent"
	"chef-catering/models/commerce"
	"chef-catering/models/experiencetype"
	"chef-catering/models/log"

	"gorm.io/gorm"
)

// Migrate creates or updates every table. GORM adds columns and indexes but
// never drops, so existing rows survive schema additions.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&experiencetype.ExperienceType{},
		&chefevent.ChefEvent{},
		&chefevent.EmailRecord{},
		&chefevent.StatusEvent{},
		&commerce.ShippingProfile{},
		&commerce.ShippingOption{},
		&commerce.SalesChannel{},
		&commerce.StockLocation{},
		&commerce.SalesChannelLocation{},
		&commerce.Product{},
		&commerce.ProductVariant{},
		&commerce.ProductSalesChannel{},
		&commerce.InventoryItem{},
		&commerce.InventoryLevel{},
		&log.Log{},
	)
}
