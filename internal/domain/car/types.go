package car

// Status is the car's fleet availability flag. It is a derived convenience
// state: rented is set when a booking is confirmed and cleared when no
// active booking covers the present moment anymore.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusRented      Status = "rented"
	StatusMaintenance Status = "maintenance"
	StatusUnavailable Status = "unavailable"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusRented, StatusMaintenance, StatusUnavailable:
		return true
	default:
		return false
	}
}

// IsBookable reports whether new bookings may be created for the car.
// A rented car stays bookable for future periods; only maintenance and
// unavailable take the car off the marketplace.
func (s Status) IsBookable() bool {
	return s == StatusAvailable || s == StatusRented
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidCarStatus
	}
	return status, nil
}
