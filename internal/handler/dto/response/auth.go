package response

import (
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type LoginResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
	AccessToken string    `json:"access_token"`
}

type MeResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		UserID:      r.UserID,
		Role:        r.Role.String(),
		AccessToken: r.AccessToken,
	}
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) *MeResponse {
	return &MeResponse{
		ID:       v.ID,
		Email:    v.Email,
		Role:     v.Role,
		IsActive: v.IsActive,
	}
}
