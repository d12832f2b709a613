package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RegisterRequest is the payload for POST /register. Only presence is
// checked; email format and password strength are not validated.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required"), validation.Length(1, 150)),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
		validation.Field(&r.Email, validation.Required.Error("email is required")),
	)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Refresh, validation.Required.Error("refresh token is required")),
	)
}

// TokenResponse carries the credential pair issued at registration, login
// and refresh.
type TokenResponse struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}
