//go:build unit

package user_test

import (
	"testing"

	"car-rental-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

func TestRoleCanManageFleet(t *testing.T) {
	assert.False(t, user.RoleCustomer.CanManageFleet())
	assert.True(t, user.RoleFleetManager.CanManageFleet())
	assert.True(t, user.RoleAdmin.CanManageFleet())
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"customer", "fleet_manager", "admin"} {
		role, err := user.NewRole(s)
		assert.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("alice@example.com")
	assert.NoError(t, err)

	u, err := user.NewUser(email, user.RoleCustomer)
	assert.NoError(t, err)
	assert.True(t, u.IsActive())
	assert.Equal(t, user.RoleCustomer, u.Role())

	_, err = user.NewUser(email, user.Role("superuser"))
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
