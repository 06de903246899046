//go:build unit

package builder

import (
	domuser "car-rental-api/internal/domain/user"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Role         string
	IsActive     bool
	PasswordHash string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "customer@example.com",
		Role:         "customer",
		IsActive:     true,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := domuser.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(email, role)
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           u.ID,
		Email:        u.Email,
		Role:         u.Role,
		IsActive:     u.IsActive,
		PasswordHash: u.PasswordHash,
	}
}

func (u *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
