package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"chef-catering/types"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns an arbitrary string into a URL-safe handle segment.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// TicketHandle derives the product handle for an event ticket. The same
// inputs always produce the same handle, so a retried accept collides on the
// unique handle index instead of creating a second product.
func TicketHandle(eventType string, date time.Time, customerName string) string {
	return fmt.Sprintf("%s-%s-%s-ticket",
		Slugify(eventType), date.Format("2006-01-02"), Slugify(customerName))
}

// TicketTitle is the human-readable product title for an event ticket.
func TicketTitle(eventType string, date time.Time, customerName string) string {
	label := titleCase(strings.ReplaceAll(eventType, "_", " "))
	return fmt.Sprintf("%s for %s - %s", label, customerName, date.Format("Jan 2, 2006"))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// TicketSKU derives the deterministic variant SKU for an event ticket.
// Format: EVENT-{eventID}-{isoDate}-{eventType}.
func TicketSKU(eventID uint, date time.Time, eventType string) string {
	return fmt.Sprintf("EVENT-%d-%s-%s", eventID, date.Format("2006-01-02"), eventType)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ValidTimeHHMM checks an HH:mm time-of-day string.
func ValidTimeHHMM(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// DaysUntil returns the number of whole calendar days from today until the
// given date.
func DaysUntil(date time.Time) int {
	today := now.BeginningOfDay()
	target := now.With(date).BeginningOfDay()
	return int(target.Sub(today).Hours() / 24)
}

// MeetsAdvanceNotice checks that the requested date is at least noticeDays
// calendar days away.
func MeetsAdvanceNotice(requested time.Time, noticeDays int) bool {
	return DaysUntil(requested) >= noticeDays
}

// CreateLogEntry captures the current request/response pair for the async
// request logger. All data is deep-copied so the entry stays valid after
// fiber recycles the context.
func CreateLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := string(append([]byte(nil), c.Body()...))
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
