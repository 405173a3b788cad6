package response_models

import (
	"time"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
)

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

func NewAccountResponse(u *db_models.User) AccountResponse {
	return AccountResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

type LoginResponse struct {
	User      AccountResponse `json:"user"`
	ExpiresAt time.Time       `json:"expires_at"`
	// Token is also set as an HttpOnly cookie; returned for non-browser clients.
	Token string `json:"token"`
}
