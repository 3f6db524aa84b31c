package dto

import (
	"time"

	"civicmatch_backend/internal/models"
)

type UserResponse struct {
	ID               string                  `json:"id"`
	Email            string                  `json:"email"`
	FullName         string                  `json:"full_name"`
	PhoneNumber      string                  `json:"phone_number,omitempty"`
	Role             models.UserRole         `json:"role"`
	EmploymentStatus models.EmploymentStatus `json:"employment_status,omitempty"`
	IsActive         bool                    `json:"is_active"`
	IsVerified       bool                    `json:"is_verified"`
	CreatedAt        time.Time               `json:"created_at"`
}

// UpdateUserRequest uses pointers so that absent fields stay untouched.
type UpdateUserRequest struct {
	FullName         *string `json:"full_name" validate:"omitempty,min=2,max=120"`
	PhoneNumber      *string `json:"phone_number" validate:"omitempty,min=5,max=20"`
	EmploymentStatus *string `json:"employment_status" validate:"omitempty,oneof=employed unemployed seeking student"`
}

// NewUserResponse maps a user entity into its API shape.
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		FullName:         user.FullName,
		PhoneNumber:      user.PhoneNumber,
		Role:             user.Role,
		EmploymentStatus: user.EmploymentStatus,
		IsActive:         user.IsActive,
		IsVerified:       user.IsVerified,
		CreatedAt:        user.CreatedAt,
	}
}
