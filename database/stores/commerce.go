package stores

import (
	"errors"

	"chef-catering/models/commerce"
	"chef-catering/services/provision"

	"gorm.io/gorm"
)

// CommerceStore is the GORM-backed implementation of the provisioner's
// persistence surface. Not-found lookups are mapped to provision.ErrNotFound
// so the ensure helpers can tell "absent" from "broken".
type CommerceStore struct {
	DB *gorm.DB
}

func NewCommerceStore(db *gorm.DB) *CommerceStore {
	return &CommerceStore{DB: db}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return provision.ErrNotFound
	}
	return err
}

func (s *CommerceStore) ShippingProfileByName(name string) (*commerce.ShippingProfile, error) {
	var p commerce.ShippingProfile
	if err := s.DB.Where("name = ?", name).First(&p).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

func (s *CommerceStore) CreateShippingProfile(p *commerce.ShippingProfile) error {
	return s.DB.Create(p).Error
}

func (s *CommerceStore) ShippingOptionByName(name string) (*commerce.ShippingOption, error) {
	var o commerce.ShippingOption
	if err := s.DB.Where("name = ?", name).First(&o).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &o, nil
}

func (s *CommerceStore) CreateShippingOption(o *commerce.ShippingOption) error {
	return s.DB.Create(o).Error
}

func (s *CommerceStore) SalesChannelByName(name string) (*commerce.SalesChannel, error) {
	var c commerce.SalesChannel
	if err := s.DB.Where("name = ?", name).First(&c).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &c, nil
}

func (s *CommerceStore) CreateSalesChannel(c *commerce.SalesChannel) error {
	return s.DB.Create(c).Error
}

func (s *CommerceStore) StockLocationByName(name string) (*commerce.StockLocation, error) {
	var l commerce.StockLocation
	if err := s.DB.Where("name = ?", name).First(&l).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &l, nil
}

func (s *CommerceStore) CreateStockLocation(l *commerce.StockLocation) error {
	return s.DB.Create(l).Error
}

// LinkLocationToChannel is idempotent: an existing link is left as is.
func (s *CommerceStore) LinkLocationToChannel(channelID, locationID uint) error {
	link := commerce.SalesChannelLocation{
		SalesChannelID:  channelID,
		StockLocationID: locationID,
	}
	return s.DB.Where(commerce.SalesChannelLocation{
		SalesChannelID:  channelID,
		StockLocationID: locationID,
	}).FirstOrCreate(&link).Error
}

func (s *CommerceStore) ProductByHandle(handle string) (*commerce.Product, error) {
	var p commerce.Product
	if err := s.DB.Preload("Variants").Where("handle = ?", handle).First(&p).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

func (s *CommerceStore) CreateProduct(p *commerce.Product) error {
	return s.DB.Create(p).Error
}

func (s *CommerceStore) LinkProductToChannel(productID, channelID uint) error {
	link := commerce.ProductSalesChannel{
		ProductID:      productID,
		SalesChannelID: channelID,
	}
	return s.DB.Where(commerce.ProductSalesChannel{
		ProductID:      productID,
		SalesChannelID: channelID,
	}).FirstOrCreate(&link).Error
}

func (s *CommerceStore) InventoryItemBySKU(sku string) (*commerce.InventoryItem, error) {
	var i commerce.InventoryItem
	if err := s.DB.Where("sku = ?", sku).First(&i).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &i, nil
}

func (s *CommerceStore) CreateInventoryItem(i *commerce.InventoryItem) error {
	return s.DB.Create(i).Error
}

func (s *CommerceStore) InventoryLevel(itemID, locationID uint) (*commerce.InventoryLevel, error) {
	var l commerce.InventoryLevel
	err := s.DB.Where("inventory_item_id = ? AND stock_location_id = ?", itemID, locationID).First(&l).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &l, nil
}

func (s *CommerceStore) CreateInventoryLevel(l *commerce.InventoryLevel) error {
	return s.DB.Create(l).Error
}
