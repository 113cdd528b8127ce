package domain

import "time"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Account models a registered user of the quiz platform.
type Account struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	DisplayName    string    `json:"display_name"`
	Bio            string    `json:"bio,omitempty"`
	FavoriteAnimal string    `json:"favorite_animal,omitempty"`
	Interests      []string  `json:"interests,omitempty"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProfileUpdate carries the subset of account fields a user may edit.
// Nil pointers mean "leave unchanged"; unknown request fields never reach here.
type ProfileUpdate struct {
	DisplayName    *string
	Bio            *string
	FavoriteAnimal *string
	Interests      []string
}
