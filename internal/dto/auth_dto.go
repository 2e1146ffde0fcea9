package dto

import "github.com/google/uuid"

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Age      *int   `json:"age,omitempty" validate:"omitempty,gte=5,lte=100"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,gte=5,lte=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	Id                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	Age                *int      `json:"age,omitempty"`
	Credits            int       `json:"credits"`
	SubscriptionStatus string    `json:"subscription_status"`
}
