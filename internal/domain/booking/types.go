package booking

// Status is the booking lifecycle state.
//
// Allowed transitions:
//
//	pending   -> confirmed | cancelled
//	confirmed -> completed | cancelled | refunded
//
// cancelled, refunded and completed are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusRefunded, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking blocks other bookings for the same
// car. Only pending and confirmed bookings occupy the car's calendar.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusRefunded, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled || next == StatusRefunded
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
