package chefevent

// transitionMap lists the statuses each lifecycle action may start from.
var transitionMap = map[string][]Status{
	"accept":   {StatusPending},
	"reject":   {StatusPending},
	"complete": {StatusConfirmed},
	"cancel":   {StatusPending, StatusConfirmed},
}

// ValidAction reports whether the named lifecycle action is allowed from the
// given status.
func ValidAction(action string, from Status) bool {
	allowed, ok := transitionMap[action]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == from {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether a direct status change from s to next is
// permitted. Terminal statuses reject everything.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}
