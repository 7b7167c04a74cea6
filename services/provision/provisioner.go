package provision

import (
	"errors"
	"fmt"

	"chef-catering/logger"
	chefEventModel "chef-catering/models/chefevent"
	commerceModel "chef-catering/models/commerce"
	"chef-catering/utils"
)

// ErrNotFound is returned by CommerceStore lookups when no row matches.
var ErrNotFound = errors.New("record not found")

// Well-known names for shared scaffolding resources. Idempotency is by name
// lookup: a retried accept finds what a previous attempt created.
const (
	DigitalShippingProfileName = "Digital Shipping Profile"
	DigitalShippingOptionName  = "Digital Delivery"
	DigitalSalesChannelName    = "Digital Sales Channel"
	DefaultSalesChannelName    = "Default Sales Channel"
	DigitalStockLocationName   = "Digital Events Location"
)

// CommerceStore is the persistence surface the provisioner needs. The GORM
// implementation lives in database/stores.
type CommerceStore interface {
	ShippingProfileByName(name string) (*commerceModel.ShippingProfile, error)
	CreateShippingProfile(p *commerceModel.ShippingProfile) error

	ShippingOptionByName(name string) (*commerceModel.ShippingOption, error)
	CreateShippingOption(o *commerceModel.ShippingOption) error

	SalesChannelByName(name string) (*commerceModel.SalesChannel, error)
	CreateSalesChannel(c *commerceModel.SalesChannel) error

	StockLocationByName(name string) (*commerceModel.StockLocation, error)
	CreateStockLocation(l *commerceModel.StockLocation) error

	// LinkLocationToChannel is a no-op when the link already exists.
	LinkLocationToChannel(channelID, locationID uint) error

	ProductByHandle(handle string) (*commerceModel.Product, error)
	CreateProduct(p *commerceModel.Product) error
	LinkProductToChannel(productID, channelID uint) error

	InventoryItemBySKU(sku string) (*commerceModel.InventoryItem, error)
	CreateInventoryItem(i *commerceModel.InventoryItem) error

	InventoryLevel(itemID, locationID uint) (*commerceModel.InventoryLevel, error)
	CreateInventoryLevel(l *commerceModel.InventoryLevel) error
}

// Result reports what an accept provisioned (or found already provisioned).
type Result struct {
	Product        *commerceModel.Product
	InventoryItem  *commerceModel.InventoryItem
	InventoryLevel *commerceModel.InventoryLevel
	StockLocation  *commerceModel.StockLocation
	Reused         bool
}

// Provisioner creates the commerce records that make an accepted chef event
// sellable. Every shared resource is ensured idempotently so the whole
// operation is safe to retry.
type Provisioner struct {
	store CommerceStore
}

func New(store CommerceStore) *Provisioner {
	return &Provisioner{store: store}
}

// ensure looks a resource up by name and creates it only when absent. A
// create that loses a race to a concurrent accept falls back to the lookup
// and reports the winner's row as success.
func ensure[T any](lookup func() (*T, error), create func() (*T, error)) (*T, error) {
	existing, err := lookup()
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	created, createErr := create()
	if createErr == nil {
		return created, nil
	}
	if existing, err = lookup(); err == nil {
		return existing, nil
	}
	return nil, createErr
}

// ProvisionTicket ensures the shared scaffolding and creates the ticket
// product + inventory for one chef event. unitPrice is the per-ticket price
// in minor currency units; the inventory level is sized to the party.
func (p *Provisioner) ProvisionTicket(event *chefEventModel.ChefEvent, unitPrice int) (*Result, error) {
	profile, err := ensure(
		func() (*commerceModel.ShippingProfile, error) {
			return p.store.ShippingProfileByName(DigitalShippingProfileName)
		},
		func() (*commerceModel.ShippingProfile, error) {
			sp := &commerceModel.ShippingProfile{Name: DigitalShippingProfileName, Type: "digital"}
			if err := p.store.CreateShippingProfile(sp); err != nil {
				return nil, err
			}
			return sp, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("ensure shipping profile: %w", err)
	}

	// A missing shipping option is survivable: digital tickets need no real
	// fulfillment, so log and continue instead of aborting the accept.
	if _, err := ensure(
		func() (*commerceModel.ShippingOption, error) {
			return p.store.ShippingOptionByName(DigitalShippingOptionName)
		},
		func() (*commerceModel.ShippingOption, error) {
			so := &commerceModel.ShippingOption{
				Name:              DigitalShippingOptionName,
				ShippingProfileID: profile.ID,
				PriceType:         "flat",
				Amount:            0,
			}
			if err := p.store.CreateShippingOption(so); err != nil {
				return nil, err
			}
			return so, nil
		},
	); err != nil {
		logger.Warning(fmt.Sprintf("Could not ensure shipping option for chef event %d, continuing: %v", event.ID, err))
	}

	digitalChannel, err := p.ensureChannel(DigitalSalesChannelName)
	if err != nil {
		return nil, fmt.Errorf("ensure digital sales channel: %w", err)
	}
	defaultChannel, err := p.ensureChannel(DefaultSalesChannelName)
	if err != nil {
		return nil, fmt.Errorf("ensure default sales channel: %w", err)
	}

	location, err := ensure(
		func() (*commerceModel.StockLocation, error) {
			return p.store.StockLocationByName(DigitalStockLocationName)
		},
		func() (*commerceModel.StockLocation, error) {
			sl := &commerceModel.StockLocation{Name: DigitalStockLocationName}
			if err := p.store.CreateStockLocation(sl); err != nil {
				return nil, err
			}
			return sl, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("ensure stock location: %w", err)
	}

	for _, ch := range []*commerceModel.SalesChannel{digitalChannel, defaultChannel} {
		if err := p.store.LinkLocationToChannel(ch.ID, location.ID); err != nil {
			return nil, fmt.Errorf("link location to channel %q: %w", ch.Name, err)
		}
	}

	sku := utils.TicketSKU(event.ID, event.RequestedDate, event.EventType.String())
	handle := utils.TicketHandle(event.EventType.String(), event.RequestedDate, event.CustomerName())

	product, reused, err := p.ensureProduct(event, handle, sku, unitPrice, profile.ID)
	if err != nil {
		return nil, err
	}
	for _, ch := range []*commerceModel.SalesChannel{digitalChannel, defaultChannel} {
		if err := p.store.LinkProductToChannel(product.ID, ch.ID); err != nil {
			return nil, fmt.Errorf("link product to channel %q: %w", ch.Name, err)
		}
	}

	item, err := ensure(
		func() (*commerceModel.InventoryItem, error) { return p.store.InventoryItemBySKU(sku) },
		func() (*commerceModel.InventoryItem, error) {
			ii := &commerceModel.InventoryItem{SKU: sku, Title: product.Title}
			if err := p.store.CreateInventoryItem(ii); err != nil {
				return nil, err
			}
			return ii, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("ensure inventory item: %w", err)
	}

	level, err := ensure(
		func() (*commerceModel.InventoryLevel, error) { return p.store.InventoryLevel(item.ID, location.ID) },
		func() (*commerceModel.InventoryLevel, error) {
			il := &commerceModel.InventoryLevel{
				InventoryItemID:  item.ID,
				StockLocationID:  location.ID,
				StockedQuantity:  event.PartySize,
				ReservedQuantity: 0,
			}
			if err := p.store.CreateInventoryLevel(il); err != nil {
				return nil, err
			}
			return il, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("ensure inventory level: %w", err)
	}

	return &Result{
		Product:        product,
		InventoryItem:  item,
		InventoryLevel: level,
		StockLocation:  location,
		Reused:         reused,
	}, nil
}

func (p *Provisioner) ensureChannel(name string) (*commerceModel.SalesChannel, error) {
	return ensure(
		func() (*commerceModel.SalesChannel, error) { return p.store.SalesChannelByName(name) },
		func() (*commerceModel.SalesChannel, error) {
			sc := &commerceModel.SalesChannel{Name: name}
			if err := p.store.CreateSalesChannel(sc); err != nil {
				return nil, err
			}
			return sc, nil
		},
	)
}

// ensureProduct treats a handle collision as "already created": the retried
// accept reuses the product from the earlier attempt.
func (p *Provisioner) ensureProduct(event *chefEventModel.ChefEvent, handle, sku string, unitPrice int, profileID uint) (*commerceModel.Product, bool, error) {
	existing, err := p.store.ProductByHandle(handle)
	if err == nil {
		logger.Info(fmt.Sprintf("Ticket product %q already exists for chef event %d, reusing", handle, event.ID))
		return existing, true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, fmt.Errorf("lookup product by handle: %w", err)
	}

	title := utils.TicketTitle(event.EventType.String(), event.RequestedDate, event.CustomerName())
	product := &commerceModel.Product{
		Title:             title,
		Handle:            handle,
		Status:            "published",
		ShippingProfileID: &profileID,
		Variants: []commerceModel.ProductVariant{
			{Title: "Ticket", SKU: sku, Price: unitPrice},
		},
	}
	if err := p.store.CreateProduct(product); err != nil {
		// Benign race or a retry that lost its response: the handle is
		// deterministic, so a duplicate means the product exists.
		if existing, lookupErr := p.store.ProductByHandle(handle); lookupErr == nil {
			return existing, true, nil
		}
		return nil, false, fmt.Errorf("create ticket product: %w", err)
	}
	return product, false, nil
}
