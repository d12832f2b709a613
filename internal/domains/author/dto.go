package author

import (
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateAuthorRequest is the payload for POST /authors and the embedded
// author object on book creation.
type CreateAuthorRequest struct {
	Name  string  `json:"name"`
	About *string `json:"about,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
	)
}

// UpdateAuthorRequest carries partial updates; nil fields are left untouched.
type UpdateAuthorRequest struct {
	Name  *string `json:"name,omitempty"`
	About *string `json:"about,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil, validation.Required.Error("name cannot be empty"), validation.Length(1, 255)),
		),
	)
}

type AuthorResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	About *string   `json:"about"`
}

// ToResponse converts Author to AuthorResponse
func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:    a.ID,
		Name:  a.Name,
		About: a.About,
	}
}
