package chefevent

import "testing"

func validCreate() CreateRequest {
	return CreateRequest{
		EventType:       "plated_dinner",
		RequestedDate:   "2026-10-12",
		RequestedTime:   "18:30",
		PartySize:       4,
		LocationAddress: "12 Garden Lane, Springfield",
		FirstName:       "Maria",
		LastName:        "Lopez",
		Email:           "maria@example.com",
		Phone:           "5551234567",
	}
}

func TestCreateRequestValid(t *testing.T) {
	if err := validCreate().Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestCreateRequestPickupNeedsProducts(t *testing.T) {
	req := validCreate()
	req.EventType = "pickup"
	req.LocationAddress = ""
	req.SelectedProducts = nil
	if err := req.Validate(); err == nil {
		t.Fatal("pickup without selected_products must be rejected")
	}

	req.SelectedProducts = []SelectedProductInput{{ProductID: "prod_1", Quantity: 2}}
	if err := req.Validate(); err != nil {
		t.Fatalf("pickup with products and no address must pass: %v", err)
	}
}

func TestCreateRequestPickupRejectsZeroQuantity(t *testing.T) {
	req := validCreate()
	req.EventType = "pickup"
	req.LocationAddress = ""
	req.SelectedProducts = []SelectedProductInput{{ProductID: "prod_1", Quantity: 0}}
	if err := req.Validate(); err == nil {
		t.Fatal("zero quantity must be rejected")
	}
}

func TestCreateRequestNonPickupNeedsAddress(t *testing.T) {
	req := validCreate()
	req.LocationAddress = ""
	if err := req.Validate(); err == nil {
		t.Fatal("missing location_address must be rejected")
	}

	req.LocationAddress = "ab"
	if err := req.Validate(); err == nil {
		t.Fatal("short location_address must be rejected")
	}
}

func TestRejectRequestNeedsReason(t *testing.T) {
	if err := (RejectRequest{}).Validate(); err == nil {
		t.Fatal("empty rejection_reason must be rejected")
	}
	if err := (RejectRequest{RejectionReason: "fully booked"}).Validate(); err != nil {
		t.Fatalf("valid reject rejected: %v", err)
	}
}

func TestSendReceiptTipRules(t *testing.T) {
	tip := 25.0
	req := SendReceiptRequest{
		Recipients: []string{"maria@example.com"},
		TipAmount:  &tip,
	}
	if err := req.Validate(); err == nil {
		t.Fatal("tip without method must be rejected")
	}

	req.TipMethod = "card"
	if err := req.Validate(); err != nil {
		t.Fatalf("tip with method rejected: %v", err)
	}

	zero := 0.0
	req = SendReceiptRequest{Recipients: []string{"maria@example.com"}, TipAmount: &zero}
	if err := req.Validate(); err != nil {
		t.Fatalf("zero tip without method rejected: %v", err)
	}
}

func TestAcceptRequestEmailPreferenceDefaultsTrue(t *testing.T) {
	if !(AcceptRequest{}).EmailPreference() {
		t.Fatal("email preference must default to true")
	}
	f := false
	if (AcceptRequest{SendAcceptanceEmail: &f}).EmailPreference() {
		t.Fatal("explicit false must be honored")
	}
}
