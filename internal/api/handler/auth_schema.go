package handler

import "github.com/wildquiz/wildquiz-api/internal/core/domain"

// Request schemas carry the full validation contract declaratively; no
// handler re-checks what a tag already enforces.

type registerRequest struct {
	Name            string `json:"name"            validate:"required,min=2,max=50"`
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	DisplayName    *string  `json:"display_name"    validate:"omitempty,min=2,max=50"`
	Bio            *string  `json:"bio"             validate:"omitempty,max=500"`
	FavoriteAnimal *string  `json:"favorite_animal" validate:"omitempty,max=100"`
	Interests      []string `json:"interests"       validate:"omitempty,max=20,dive,max=50"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

type deleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token   string          `json:"token,omitempty"`
	Account *domain.Account `json:"account,omitempty"`
}

type verifyResponse struct {
	Subject string `json:"subject"`
}
