package chefevent

// Status is the lifecycle state of a chef event request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// EventType classifies the kind of catering experience requested.
type EventType string

const (
	EventTypePlatedDinner EventType = "plated_dinner"
	EventTypeBuffetStyle  EventType = "buffet_style"
	EventTypePickup       EventType = "pickup"
)

// LocationType says where the event takes place.
type LocationType string

const (
	LocationCustomer LocationType = "customer_location"
	LocationChef     LocationType = "chef_location"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further transition is allowed from this status.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func (e EventType) String() string {
	return string(e)
}

func (e EventType) IsValid() bool {
	switch e {
	case EventTypePlatedDinner, EventTypeBuffetStyle, EventTypePickup:
		return true
	default:
		return false
	}
}

// DefaultDuration returns the default estimated duration in minutes for the
// event type. Pickup has no duration concept, so ok is false.
func (e EventType) DefaultDuration() (int, bool) {
	switch e {
	case EventTypePlatedDinner:
		return 240, true
	case EventTypeBuffetStyle:
		return 150, true
	default:
		return 0, false
	}
}

// GetAllStatuses returns every valid chef event status.
func GetAllStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}
}

// GetAllEventTypes returns every valid event type.
func GetAllEventTypes() []EventType {
	return []EventType{EventTypePlatedDinner, EventTypeBuffetStyle, EventTypePickup}
}
