package user

import (
	"time"

	domainUser "logistics-backoffice/internal/domain/user"
	"logistics-backoffice/pkg/utils"
)

type CreateUserRequest struct {
	Username string               `json:"username" validate:"required,min=3,max=100"`
	Password string               `json:"password" validate:"required,min=8,max=72"`
	FullName *string              `json:"fullName" validate:"omitempty,max=255"`
	Email    string               `json:"email" validate:"required,email"`
	Role     *domainUser.Role     `json:"role" validate:"omitnil,oneof=admin logist manager financier user"`
	Position *string              `json:"position" validate:"omitempty,max=255"`
	Language *domainUser.Language `json:"language" validate:"omitnil,oneof=ru en de"`
}

type UpdateUserRequest struct {
	Password *string              `json:"password" validate:"omitnil,min=8,max=72"`
	FullName *string              `json:"fullName" validate:"omitempty,max=255"`
	Email    *string              `json:"email" validate:"omitnil,email"`
	Role     *domainUser.Role     `json:"role" validate:"omitnil,oneof=admin logist manager financier user"`
	Position *string              `json:"position" validate:"omitempty,max=255"`
	Language *domainUser.Language `json:"language" validate:"omitnil,oneof=ru en de"`
}

type ListUsersRequest struct {
	Role *domainUser.Role `form:"role" validate:"omitnil,oneof=admin logist manager financier user"`
}

// Actor is the authenticated caller of a user-administration operation.
type Actor struct {
	ID   int64
	Role domainUser.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == domainUser.RoleAdmin
}

func (r *CreateUserRequest) Sanitize() {
	r.Username = utils.SanitizeString(r.Username)
	r.Email = utils.SanitizeEmail(r.Email)
	r.FullName = utils.SanitizeOptional(r.FullName)
	r.Position = utils.SanitizeOptional(r.Position)
}

func (r *UpdateUserRequest) Sanitize() {
	r.Email = utils.SanitizeOptionalEmail(r.Email)
	r.FullName = utils.SanitizeOptional(r.FullName)
	r.Position = utils.SanitizeOptional(r.Position)
}

// ApplyTo overlays profile fields. Password and Role are handled by the service.
func (r *UpdateUserRequest) ApplyTo(u *domainUser.User) {
	if r.FullName != nil {
		u.FullName = r.FullName
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Position != nil {
		u.Position = r.Position
	}
	if r.Language != nil {
		u.Language = *r.Language
	}
}

// UserResponse is the public view of a user. The password hash has no field here.
type UserResponse struct {
	ID        int64               `json:"id"`
	Username  string              `json:"username"`
	FullName  *string             `json:"fullName"`
	Email     string              `json:"email"`
	Role      domainUser.Role     `json:"role"`
	Position  *string             `json:"position"`
	Language  domainUser.Language `json:"language"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

func ToUserResponse(u *domainUser.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Position:  u.Position,
		Language:  u.Language,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToUserResponses(users []*domainUser.User) []*UserResponse {
	out := make([]*UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}
