package services

import (
	"context"
	"fmt"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/logger"
	"github.com/wishmas/core/internal/ports"
)

// ListService manages wish lists across their two tiers: the volatile
// per-user draft and the persisted, sent lists parents can read. Only a
// deliberate send produces a durable list, and each send fully supersedes
// the sender's previous one.
type ListService struct {
	listRepo ports.ListRepository
	drafts   ports.DraftRepository
	logger   *logger.Logger
}

// NewListService creates a new list service
func NewListService(listRepo ports.ListRepository, drafts ports.DraftRepository, appLogger *logger.Logger) *ListService {
	return &ListService{
		listRepo: listRepo,
		drafts:   drafts,
		logger:   appLogger,
	}
}

// ListLists returns every sent wish list.
func (s *ListService) ListLists(ctx context.Context) ([]*entities.WishList, error) {
	lists, err := s.listRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wish lists: %w", err)
	}
	return lists, nil
}

// GetList returns a sent wish list by id.
func (s *ListService) GetList(ctx context.Context, id string) (*entities.WishList, error) {
	return s.listRepo.GetByID(ctx, id)
}

// CurrentList returns the user's draft dressed up as a wish list, so the
// client renders drafts and sent lists the same way.
func (s *ListService) CurrentList(ctx context.Context, username string) *entities.WishList {
	return &entities.WishList{
		ID:        "current",
		Username:  username,
		CreatedAt: entities.Timestamp(),
		Items:     s.drafts.Items(username),
	}
}

// AddItem appends an item to the user's draft. Quantity defaults to one.
func (s *ListService) AddItem(ctx context.Context, username string, req ports.CreateItemRequest) (*entities.WishListItem, error) {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item := entities.WishListItem{
		ID:          entities.NewID(),
		Title:       req.Title,
		Description: req.Description,
		Quantity:    quantity,
		Image:       req.Image,
		ImageURL:    req.ImageURL,
	}

	s.drafts.Add(username, item)
	return &item, nil
}

// UpdateItem merges the provided fields into a draft item. Items are only
// addressable within their owner's draft.
func (s *ListService) UpdateItem(ctx context.Context, username, itemID string, update ports.ItemUpdate) (*entities.WishListItem, error) {
	return s.drafts.Update(username, itemID, update)
}

// DeleteItem removes an item from the user's draft.
func (s *ListService) DeleteItem(ctx context.Context, username, itemID string) error {
	return s.drafts.Remove(username, itemID)
}

// Send freezes the user's draft into a persisted wish list, replacing any
// previously sent list for that username, then clears the draft. An empty
// draft is a no-op failure: nothing is created or altered.
func (s *ListService) Send(ctx context.Context, username string) (*entities.WishList, error) {
	items := s.drafts.Items(username)
	if len(items) == 0 {
		return nil, entities.ErrEmptyDraft
	}

	list := &entities.WishList{
		ID:        entities.NewID(),
		Username:  username,
		CreatedAt: entities.Timestamp(),
		Items:     items,
	}

	if err := s.listRepo.Replace(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to persist wish list: %w", err)
	}

	// The draft only goes away once the list is safely on disk.
	s.drafts.Clear(username)

	s.logger.LogUserAction(username, "send_list", map[string]interface{}{"list_id": list.ID, "items": len(list.Items)})
	return list, nil
}

// DeleteList removes a single sent list.
func (s *ListService) DeleteList(ctx context.Context, id string) error {
	if err := s.listRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Wish list deleted", "list_id", id)
	return nil
}

// Reset wipes every sent list. Irreversible.
func (s *ListService) Reset(ctx context.Context) error {
	if err := s.listRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to reset wish lists: %w", err)
	}

	s.logger.Warn("All wish lists deleted")
	return nil
}
