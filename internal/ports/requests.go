package ports

import "github.com/wishmas/core/internal/domain/entities"

// Creation requests bound from API bodies. Validation tags are enforced by
// the echo validator before a service sees the request.

type CreateAccountRequest struct {
	Username    string        `json:"username" validate:"required"`
	Password    string        `json:"password" validate:"required"`
	DisplayName string        `json:"displayName" validate:"required"`
	Role        entities.Role `json:"role" validate:"required,oneof=user parent developer"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type CreateAnnouncementRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	IsActive *bool  `json:"isActive"`
}

type CreateItemRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity" validate:"omitempty,min=1"`
	Image       string `json:"image"`
	ImageURL    string `json:"imageUrl"`
}
