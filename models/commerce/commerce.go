package commerce

import (
	"time"
)

// Commerce scaffolding records required to make an event ticket sellable
// without real shipping. All shared resources (profiles, channels, locations)
// are looked up by name, so provisioning can be retried safely.

// ShippingProfile groups products sharing fulfillment rules.
type ShippingProfile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Type      string    `gorm:"type:varchar(50);not null;default:default" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ShippingProfile) TableName() string {
	return "shipping_profiles"
}

// ShippingOption is a purchasable delivery method under a profile.
type ShippingOption struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	ShippingProfileID uint      `gorm:"not null;index" json:"shipping_profile_id"`
	PriceType         string    `gorm:"type:varchar(20);not null;default:flat" json:"price_type"`
	Amount            int       `gorm:"not null;default:0" json:"amount"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ShippingOption) TableName() string {
	return "shipping_options"
}

// SalesChannel is a storefront surface products are published to.
type SalesChannel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	IsDisabled  bool      `gorm:"not null;default:false" json:"is_disabled"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SalesChannel) TableName() string {
	return "sales_channels"
}

// StockLocation is where inventory is held. Digital tickets live in one
// non-physical location.
type StockLocation struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StockLocation) TableName() string {
	return "stock_locations"
}

// SalesChannelLocation links a stock location to a sales channel. Adding an
// existing link is a no-op.
type SalesChannelLocation struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SalesChannelID  uint      `gorm:"not null;uniqueIndex:idx_channel_location" json:"sales_channel_id"`
	StockLocationID uint      `gorm:"not null;uniqueIndex:idx_channel_location" json:"stock_location_id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SalesChannelLocation) TableName() string {
	return "sales_channel_locations"
}

// Product is a sellable item. Ticket products are created per accepted chef
// event with a deterministic handle so retries do not duplicate them.
type Product struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title             string    `gorm:"type:varchar(255);not null" json:"title"`
	Handle            string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"handle"`
	Description       *string   `gorm:"type:text" json:"description,omitempty"`
	Status            string    `gorm:"type:varchar(20);not null;default:published" json:"status"`
	ShippingProfileID *uint     `gorm:"index" json:"shipping_profile_id,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// ProductVariant carries the SKU and unit price in minor units.
type ProductVariant struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	SKU       string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"sku"`
	Price     int       `gorm:"not null" json:"price"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}

// ProductSalesChannel links a product to a sales channel.
type ProductSalesChannel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID      uint      `gorm:"not null;uniqueIndex:idx_product_channel" json:"product_id"`
	SalesChannelID uint      `gorm:"not null;uniqueIndex:idx_product_channel" json:"sales_channel_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ProductSalesChannel) TableName() string {
	return "product_sales_channels"
}

// InventoryItem tracks stock for one variant SKU. At most one item exists per
// SKU; accept retries reuse the existing item.
type InventoryItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SKU       string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"sku"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

// InventoryLevel is the stocked quantity of an item at one location.
type InventoryLevel struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	InventoryItemID  uint      `gorm:"not null;uniqueIndex:idx_item_location" json:"inventory_item_id"`
	StockLocationID  uint      `gorm:"not null;uniqueIndex:idx_item_location" json:"stock_location_id"`
	StockedQuantity  int       `gorm:"not null;default:0" json:"stocked_quantity"`
	ReservedQuantity int       `gorm:"not null;default:0" json:"reserved_quantity"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InventoryLevel) TableName() string {
	return "inventory_levels"
}
