package notification

import (
	"strings"
	"testing"

	"chef-catering/services/events"
)

func TestRenderTemplate(t *testing.T) {
	payload := payloadData{
		"first_name":     "Maria",
		"requested_date": "Oct 12, 2026",
		"party_size":     8,
	}
	template := "Hi {first_name}, see you {requested_date} with {party_size} guests"
	got := renderTemplate(template, payload)
	if got != "Hi Maria, see you Oct 12, 2026 with 8 guests" {
		t.Fatalf("unexpected template render: %s", got)
	}
}

func TestRenderTemplateLeavesUnknownPlaceholders(t *testing.T) {
	got := renderTemplate("Hello {first_name}", payloadData{})
	if got != "Hello {first_name}" {
		t.Fatalf("unexpected render: %s", got)
	}
}

func TestTemplateForKnownEvents(t *testing.T) {
	for _, name := range []string{
		events.ChefEventRequested,
		events.ChefEventAccepted,
		events.ChefEventRejected,
		events.ChefEventEmailResend,
		events.ChefEventReceipt,
	} {
		subject, body, ok := templateFor(name)
		if !ok || subject == "" || body == "" {
			t.Fatalf("missing template for %s", name)
		}
		if !strings.Contains(body, "{first_name}") {
			t.Fatalf("body for %s should greet the customer", name)
		}
	}
	if _, _, ok := templateFor("chef-event.unknown"); ok {
		t.Fatal("unknown event must have no template")
	}
}
