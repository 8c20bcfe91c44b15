package ports

import (
	"context"

	"github.com/wishmas/core/internal/domain/entities"
)

// ConfigRepository defines access to the singleton password config.
type ConfigRepository interface {
	Get(ctx context.Context) (*entities.Config, error)
	Update(ctx context.Context, update ConfigUpdate) (*entities.Config, error)
}

// AccountRepository defines the interface for login account storage.
type AccountRepository interface {
	List(ctx context.Context) ([]*entities.Account, error)
	GetByID(ctx context.Context, id string) (*entities.Account, error)
	GetByUsername(ctx context.Context, username string) (*entities.Account, error)
	Create(ctx context.Context, account *entities.Account) error
	Update(ctx context.Context, id string, update AccountUpdate) (*entities.Account, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository defines the interface for legacy user record storage.
type UserRepository interface {
	List(ctx context.Context) ([]*entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) error
	Update(ctx context.Context, id string, update UserUpdate) (*entities.User, error)
	Delete(ctx context.Context, id string) error
}

// ListRepository defines the interface for persisted wish list storage.
type ListRepository interface {
	List(ctx context.Context) ([]*entities.WishList, error)
	GetByID(ctx context.Context, id string) (*entities.WishList, error)
	GetByUsername(ctx context.Context, username string) (*entities.WishList, error)
	// Replace removes any persisted list matching the new list's username
	// (case-insensitive) and appends the new one in a single step.
	Replace(ctx context.Context, list *entities.WishList) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// AnnouncementRepository defines the interface for announcement storage.
type AnnouncementRepository interface {
	List(ctx context.Context) ([]*entities.Announcement, error)
	GetByID(ctx context.Context, id string) (*entities.Announcement, error)
	Create(ctx context.Context, announcement *entities.Announcement) error
	Update(ctx context.Context, id string, update AnnouncementUpdate) (*entities.Announcement, error)
	Delete(ctx context.Context, id string) error
}

// DraftRepository holds the unsent items each user is composing. Drafts are
// process-local and never persisted; a restart discards them.
type DraftRepository interface {
	Add(username string, item entities.WishListItem)
	Update(username, itemID string, update ItemUpdate) (*entities.WishListItem, error)
	Remove(username, itemID string) error
	Items(username string) []entities.WishListItem
	Clear(username string)
}

// Typed partial updates. A nil field is left untouched; only explicitly set
// fields merge into the stored record.

type ConfigUpdate struct {
	UserPassword   *string `json:"userPassword"`
	ParentPassword *string `json:"parentPassword"`
	DevPassword    *string `json:"devPassword"`
}

type AccountUpdate struct {
	Username    *string        `json:"username"`
	Password    *string        `json:"password"`
	DisplayName *string        `json:"displayName"`
	Role        *entities.Role `json:"role" validate:"omitempty,oneof=user parent developer"`
}

type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type AnnouncementUpdate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsActive *bool   `json:"isActive"`
}

type ItemUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity" validate:"omitempty,min=1"`
	Image       *string `json:"image"`
	ImageURL    *string `json:"imageUrl"`
}
