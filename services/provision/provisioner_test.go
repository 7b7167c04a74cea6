package provision

import (
	"testing"
	"time"

	chefEventModel "chef-catering/models/chefevent"
	commerceModel "chef-catering/models/commerce"
)

type memStore struct {
	profiles  []*commerceModel.ShippingProfile
	options   []*commerceModel.ShippingOption
	channels  []*commerceModel.SalesChannel
	locations []*commerceModel.StockLocation
	products  []*commerceModel.Product
	items     []*commerceModel.InventoryItem
	levels    []*commerceModel.InventoryLevel

	channelLinks map[[2]uint]bool
	productLinks map[[2]uint]bool

	nextID uint
}

func newMemStore() *memStore {
	return &memStore{
		channelLinks: make(map[[2]uint]bool),
		productLinks: make(map[[2]uint]bool),
	}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) ShippingProfileByName(name string) (*commerceModel.ShippingProfile, error) {
	for _, p := range m.profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) CreateShippingProfile(p *commerceModel.ShippingProfile) error {
	p.ID = m.id()
	m.profiles = append(m.profiles, p)
	return nil
}

func (m *memStore) ShippingOptionByName(name string) (*commerceModel.ShippingOption, error) {
	for _, o := range m.options {
		if o.Name == name {
			return o, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) CreateShippingOption(o *commerceModel.ShippingOption) error {
	o.ID = m.id()
	m.options = append(m.options, o)
	return nil
}

func (m *memStore) SalesChannelByName(name string) (*commerceModel.SalesChannel, error) {
	for _, c := range m.channels {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) CreateSalesChannel(c *commerceModel.SalesChannel) error {
	c.ID = m.id()
	m.channels = append(m.channels, c)
	return nil
}

func (m *memStore) StockLocationByName(name string) (*commerceModel.StockLocation, error) {
	for _, l := range m.locations {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) CreateStockLocation(l *commerceModel.StockLocation) error {
	l.ID = m.id()
	m.locations = append(m.locations, l)
	return nil
}

func (m *memStore) LinkLocationToChannel(channelID, locationID uint) error {
	m.channelLinks[[2]uint{channelID, locationID}] = true
	return nil
}

func (m *memStore) ProductByHandle(handle string) (*commerceModel.Product, error) {
	for _, p := range m.products {
		if p.Handle == handle {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) CreateProduct(p *commerceModel.Product) error {
	p.ID = m.id()
	for i := range p.Variants {
		p.Variants[i].ID = m.id()
		p.Variants[i].ProductID = p.ID
	}
	m.products = append(m.products, p)
	return nil
}

func (m *memStore) LinkProductToChannel(productID, channelID uint) error {
	m.productLinks[[2]uint{productID, channelID}] = true
	return nil
}

func (m *memStore) InventoryItemBySKU(sku string) (*commerceModel.InventoryItem, error) {
	for _, i := range m.items {
		if i.SKU == sku {
			return i, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) CreateInventoryItem(i *commerceModel.InventoryItem) error {
	i.ID = m.id()
	m.items = append(m.items, i)
	return nil
}

func (m *memStore) InventoryLevel(itemID, locationID uint) (*commerceModel.InventoryLevel, error) {
	for _, l := range m.levels {
		if l.InventoryItemID == itemID && l.StockLocationID == locationID {
			return l, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) CreateInventoryLevel(l *commerceModel.InventoryLevel) error {
	l.ID = m.id()
	m.levels = append(m.levels, l)
	return nil
}

func testEvent() *chefEventModel.ChefEvent {
	return &chefEventModel.ChefEvent{
		ID:            42,
		EventType:     chefEventModel.EventTypeBuffetStyle,
		RequestedDate: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		PartySize:     8,
		FirstName:     "Maria",
		LastName:      "Lopez",
	}
}

func TestProvisionTicketCreatesEverything(t *testing.T) {
	store := newMemStore()
	p := New(store)

	res, err := p.ProvisionTicket(testEvent(), 9999)
	if err != nil {
		t.Fatalf("ProvisionTicket: %v", err)
	}

	if len(store.profiles) != 1 || len(store.options) != 1 {
		t.Fatalf("profiles=%d options=%d, want 1 each", len(store.profiles), len(store.options))
	}
	if len(store.channels) != 2 || len(store.locations) != 1 {
		t.Fatalf("channels=%d locations=%d, want 2 and 1", len(store.channels), len(store.locations))
	}
	if len(store.channelLinks) != 2 {
		t.Fatalf("channel links=%d, want 2", len(store.channelLinks))
	}
	if len(store.productLinks) != 2 {
		t.Fatalf("product channel links=%d, want 2", len(store.productLinks))
	}
	if res.Product == nil || len(res.Product.Variants) != 1 {
		t.Fatalf("unexpected product: %+v", res.Product)
	}
	if res.Product.Variants[0].SKU != "EVENT-42-2026-10-12-buffet_style" {
		t.Fatalf("unexpected SKU: %q", res.Product.Variants[0].SKU)
	}
	if res.Product.Variants[0].Price != 9999 {
		t.Fatalf("unexpected price: %d", res.Product.Variants[0].Price)
	}
	if res.InventoryLevel.StockedQuantity != 8 || res.InventoryLevel.ReservedQuantity != 0 {
		t.Fatalf("unexpected level: %+v", res.InventoryLevel)
	}
	if res.Reused {
		t.Fatal("first provision must not report reuse")
	}
}

func TestProvisionTicketIsIdempotent(t *testing.T) {
	store := newMemStore()
	p := New(store)
	event := testEvent()

	first, err := p.ProvisionTicket(event, 9999)
	if err != nil {
		t.Fatalf("first provision: %v", err)
	}
	second, err := p.ProvisionTicket(event, 9999)
	if err != nil {
		t.Fatalf("second provision: %v", err)
	}

	if !second.Reused {
		t.Fatal("second provision must reuse the existing product")
	}
	if first.Product.ID != second.Product.ID {
		t.Fatalf("two distinct products created: %d vs %d", first.Product.ID, second.Product.ID)
	}
	if len(store.products) != 1 || len(store.items) != 1 || len(store.levels) != 1 {
		t.Fatalf("duplicated rows: products=%d items=%d levels=%d",
			len(store.products), len(store.items), len(store.levels))
	}
	if len(store.profiles) != 1 || len(store.channels) != 2 || len(store.locations) != 1 {
		t.Fatal("shared scaffolding duplicated on retry")
	}
}

// failingOptionStore simulates a store where shipping options cannot be
// created (no fulfillment set configured).
type failingOptionStore struct {
	*memStore
}

func (f *failingOptionStore) CreateShippingOption(o *commerceModel.ShippingOption) error {
	return errTest
}

var errTest = &testError{}

type testError struct{}

func (*testError) Error() string { return "no fulfillment set configured" }

func TestProvisionTicketDegradesOnShippingOptionFailure(t *testing.T) {
	store := &failingOptionStore{memStore: newMemStore()}
	p := New(store)

	res, err := p.ProvisionTicket(testEvent(), 9999)
	if err != nil {
		t.Fatalf("shipping option failure must not abort provisioning: %v", err)
	}
	if res.Product == nil {
		t.Fatal("product missing after degraded provisioning")
	}
	if len(store.options) != 0 {
		t.Fatal("no shipping option should exist")
	}
}
