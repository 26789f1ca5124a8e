package auth

import "time"

type CreateUserRequest struct {
	Name       string `json:"name" validate:"required,min=3,max=255"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8,max=32"`
	TargetRole string `json:"target_role" validate:"omitempty,max=100"`
}

type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginUserResponse struct {
	AccessToken      string  `json:"access_token"`
	RefreshToken     string  `json:"refresh_token"`
	ExpiresInMinutes float64 `json:"expires_in_minutes"`
}

type UpdateProfileRequest struct {
	Name        string `json:"name" validate:"omitempty,min=3,max=255"`
	TargetRole  string `json:"target_role" validate:"omitempty,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=15"`
}

type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	TargetRole      string    `json:"target_role,omitempty"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`
	IsVerified      bool      `json:"is_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

type ProfilePhotoResponse struct {
	ID              string `json:"id"`
	ProfilePhotoURL string `json:"profile_photo_url"`
}

type UserGoogle struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	VerifiedEmail bool   `json:"verified_email"`
	Picture       string `json:"picture"`
}
