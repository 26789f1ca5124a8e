package entity

import "time"

type User struct {
	ID              string    `db:"id"`
	Email           string    `db:"email"`
	Name            string    `db:"name"`
	Password        string    `db:"password"`
	PhoneNumber     string    `db:"phone_number"`
	TargetRole      string    `db:"target_role"`
	ProfilePhotoURL string    `db:"profile_photo_url"`
	IsVerified      bool      `db:"is_verified"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID       string
	Username string
	Email    string
}

type AuthProvider uint8

const (
	AuthProviderUnknown AuthProvider = 0
	AuthProviderGoogle  AuthProvider = 1
)

var AuthProviderMap = map[AuthProvider]string{
	AuthProviderGoogle: "Google",
}

func (a AuthProvider) String() string {
	return AuthProviderMap[a]
}

func (a AuthProvider) Value() uint8 {
	return uint8(a)
}
