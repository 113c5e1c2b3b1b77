package auth

import (
	"time"

	"logistics-backoffice/internal/usecase/user"
	"logistics-backoffice/pkg/utils"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Sanitize() {
	r.Username = utils.SanitizeString(r.Username)
}

type LoginResponse struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	User      *user.UserResponse `json:"user"`
}
