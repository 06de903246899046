package user

type Role string

const (
	RoleCustomer     Role = "customer"
	RoleFleetManager Role = "fleet_manager"
	RoleAdmin        Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleFleetManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageFleet reports whether the role may act on cars and on bookings
// owned by other users.
func (r Role) CanManageFleet() bool {
	return r == RoleFleetManager || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
