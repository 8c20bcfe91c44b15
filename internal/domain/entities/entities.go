package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrListNotFound         = errors.New("wish list not found")
	ErrItemNotFound         = errors.New("wish list item not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrEmptyDraft           = errors.New("draft list is empty")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

// Role identifies which space of the application a login grants access to.
type Role string

const (
	RoleUser      Role = "user"
	RoleParent    Role = "parent"
	RoleDeveloper Role = "developer"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleParent, RoleDeveloper:
		return true
	default:
		return false
	}
}

// Account is a login identity managed from the developer space.
type Account struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
	CreatedAt   string `json:"createdAt"`
}

// WithoutPassword returns a copy safe to hand to API clients.
func (a *Account) WithoutPassword() *Account {
	clone := *a
	clone.Password = ""
	return &clone
}

// User is the legacy identity record kept alongside accounts. It is not
// used for login.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// WishListItem is a single wish. Items live in the per-user draft until the
// list is sent; after that they are frozen inside a WishList.
type WishListItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	Image       string `json:"image,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// WishList is a sent, durable snapshot of a user's draft. At most one
// persisted list exists per username; sending again replaces the old one.
type WishList struct {
	ID        string         `json:"id"`
	Username  string         `json:"username"`
	CreatedAt string         `json:"createdAt"`
	Items     []WishListItem `json:"items"`
}

// Announcement is a developer-authored message. Only active announcements
// are shown to end users.
type Announcement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	IsActive  bool   `json:"isActive"`
}

// Config holds the shared per-role passwords.
type Config struct {
	UserPassword   string `json:"userPassword"`
	ParentPassword string `json:"parentPassword"`
	DevPassword    string `json:"devPassword"`
}

// DefaultConfig returns the passwords a fresh installation starts with.
func DefaultConfig() *Config {
	return &Config{
		UserPassword:   "user123",
		ParentPassword: "parent123",
		DevPassword:    "dev123",
	}
}

// PasswordForRole returns the shared password gating the given role.
func (c *Config) PasswordForRole(role Role) (string, bool) {
	switch role {
	case RoleUser:
		return c.UserPassword, true
	case RoleParent:
		return c.ParentPassword, true
	case RoleDeveloper:
		return c.DevPassword, true
	default:
		return "", false
	}
}

// Stats is derived on demand from the current collection sizes.
type Stats struct {
	TotalLists         int `json:"totalLists"`
	TotalUsers         int `json:"totalUsers"`
	TotalItems         int `json:"totalItems"`
	TotalAnnouncements int `json:"totalAnnouncements"`
	TotalAccounts      int `json:"totalAccounts"`
}

// NormalizeUsername is the single normalization applied at every boundary:
// draft keys, list lookups and account lookups all match case-insensitively.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NewID returns an opaque unique identifier for a new entity.
func NewID() string {
	return uuid.NewString()
}

// Timestamp returns the creation timestamp format used across collections.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
