package repository

import (
	"sync"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/ports"
)

// DraftCache holds the unsent wish list items each user is composing.
// Purely process-local: nothing here ever touches disk, and a restart
// silently discards every draft. Keys are normalized usernames so two
// logins differing only in case edit the same draft.
type DraftCache struct {
	mu     sync.Mutex
	drafts map[string][]entities.WishListItem
}

// NewDraftCache creates an empty draft cache
func NewDraftCache() *DraftCache {
	return &DraftCache{drafts: make(map[string][]entities.WishListItem)}
}

func (c *DraftCache) Add(username string, item entities.WishListItem) {
	key := entities.NormalizeUsername(username)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.drafts[key] = append(c.drafts[key], item)
}

func (c *DraftCache) Update(username, itemID string, update ports.ItemUpdate) (*entities.WishListItem, error) {
	key := entities.NormalizeUsername(username)

	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.drafts[key]
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		if update.Title != nil {
			items[i].Title = *update.Title
		}
		if update.Description != nil {
			items[i].Description = *update.Description
		}
		if update.Quantity != nil {
			items[i].Quantity = *update.Quantity
		}
		if update.Image != nil {
			items[i].Image = *update.Image
		}
		if update.ImageURL != nil {
			items[i].ImageURL = *update.ImageURL
		}
		clone := items[i]
		return &clone, nil
	}
	return nil, entities.ErrItemNotFound
}

func (c *DraftCache) Remove(username, itemID string) error {
	key := entities.NormalizeUsername(username)

	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.drafts[key]
	for i := range items {
		if items[i].ID == itemID {
			c.drafts[key] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return entities.ErrItemNotFound
}

// Items returns a copy of the user's current draft. The result is never nil;
// a user without a draft gets an empty slice so it serializes as [].
func (c *DraftCache) Items(username string) []entities.WishListItem {
	key := entities.NormalizeUsername(username)

	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entities.WishListItem{}, c.drafts[key]...)
}

func (c *DraftCache) Clear(username string) {
	key := entities.NormalizeUsername(username)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.drafts, key)
}
