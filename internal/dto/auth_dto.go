package dto

import (
	"github.com/google/uuid"

	"github.com/tradegate/marketplace-backend/internal/models"
)

type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role,omitempty"`
	CompanyName  string `json:"company_name,omitempty"`
	Country      string `json:"country,omitempty"`
	MobileNumber string `json:"mobile_number,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty"`
	CompanyName  *string `json:"company_name,omitempty"`
	Country      *string `json:"country,omitempty"`
	MobileNumber *string `json:"mobile_number,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the subset of a user record safe for client consumption.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CompanyName string    `json:"company_name,omitempty"`
	Country     string    `json:"country,omitempty"`
	Verified    bool      `json:"verified"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		CompanyName: u.CompanyName,
		Country:     u.Country,
		Verified:    u.Verified,
	}
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	// Detail carries the underlying error text for 5xx responses outside
	// production.
	Detail string `json:"detail,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
