package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/config"
	"github.com/wishmas/core/internal/infrastructure/logger"
)

const (
	accountsFile      = "accounts.json"
	usersFile         = "users.json"
	listsFile         = "lists.json"
	announcementsFile = "annonces.json"
	lockFile          = ".lock"
)

// Store is the file-backed persistence layer. All collections are loaded
// into memory on Open and each mutation rewrites the whole affected file
// before returning. An advisory lock on the data dir keeps a second process
// from sharing the same files; a RWMutex serializes in-process access.
type Store struct {
	cfg    config.StorageConfig
	logger *logger.Logger
	fl     *flock.Flock

	mu            sync.RWMutex
	accounts      []*entities.Account
	users         []*entities.User
	lists         []*entities.WishList
	announcements []*entities.Announcement
	config        *entities.Config
}

// Open loads all collections from the configured data dir. Unreadable or
// absent collection files degrade to empty collections; a missing config
// file is initialized with the default passwords and persisted immediately.
func Open(cfg config.StorageConfig, appLogger *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	fl := flock.New(filepath.Join(cfg.DataDir, lockFile))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock data dir: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("data dir %s is locked by another process", cfg.DataDir)
	}

	s := &Store{
		cfg:    cfg,
		logger: appLogger.WithComponent("filestore"),
		fl:     fl,
	}

	loadCollection(s, filepath.Join(cfg.DataDir, accountsFile), &s.accounts)
	loadCollection(s, filepath.Join(cfg.DataDir, usersFile), &s.users)
	loadCollection(s, filepath.Join(cfg.DataDir, listsFile), &s.lists)
	loadCollection(s, filepath.Join(cfg.DataDir, announcementsFile), &s.announcements)

	if err := s.loadConfig(); err != nil {
		fl.Unlock()
		return nil, err
	}

	return s, nil
}

// Close releases the data dir lock.
func (s *Store) Close() error {
	return s.fl.Unlock()
}

// HealthCheck verifies the data dir is still reachable.
func (s *Store) HealthCheck() error {
	if _, err := os.Stat(s.cfg.DataDir); err != nil {
		return fmt.Errorf("data dir unavailable: %w", err)
	}
	return nil
}

// loadCollection reads a JSON array file into dest. Read or parse failures
// are logged and leave the collection empty (spec: best-effort local store).
func loadCollection[T any](s *Store, path string, dest *[]T) {
	*dest = []T{}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnw("Failed to read collection, starting empty", "file", path, "error", err)
		}
		return
	}
	if len(raw) == 0 {
		return
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		s.logger.Warnw("Failed to parse collection, starting empty", "file", path, "error", err)
		*dest = []T{}
	}
}

func (s *Store) loadConfig() error {
	path := s.configPath()

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnw("Failed to read config, using defaults", "file", path, "error", err)
		}
		s.config = entities.DefaultConfig()
		// Make sure the config file exists from the first run on.
		if err := writeJSON(path, s.config); err != nil {
			return fmt.Errorf("failed to initialize config file: %w", err)
		}
		return nil
	}

	cfg := entities.DefaultConfig()
	if err := json.Unmarshal(raw, cfg); err != nil {
		s.logger.Warnw("Failed to parse config, using defaults", "file", path, "error", err)
		cfg = entities.DefaultConfig()
	}
	s.config = cfg
	return nil
}

func (s *Store) configPath() string {
	if filepath.IsAbs(s.cfg.ConfigFile) {
		return s.cfg.ConfigFile
	}
	return filepath.Join(s.cfg.DataDir, s.cfg.ConfigFile)
}

// writeJSON persists v pretty-printed via a temp file and rename, so a
// crash mid-write never leaves a truncated collection behind.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename %s: %w", tmp, err)
	}
	return nil
}

// View/Update pairs below run the given closure under the appropriate lock.
// Update closures return the next state of the collection; on success the
// whole file is rewritten before the call returns.

func (s *Store) ViewAccounts(fn func([]*entities.Account) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.accounts)
}

func (s *Store) UpdateAccounts(fn func([]*entities.Account) ([]*entities.Account, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.accounts)
	if err != nil {
		return err
	}
	s.accounts = next

	err = writeJSON(filepath.Join(s.cfg.DataDir, accountsFile), s.accounts)
	s.logger.LogStorageWrite(accountsFile, len(s.accounts), err)
	return err
}

func (s *Store) ViewUsers(fn func([]*entities.User) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.users)
}

func (s *Store) UpdateUsers(fn func([]*entities.User) ([]*entities.User, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.users)
	if err != nil {
		return err
	}
	s.users = next

	err = writeJSON(filepath.Join(s.cfg.DataDir, usersFile), s.users)
	s.logger.LogStorageWrite(usersFile, len(s.users), err)
	return err
}

func (s *Store) ViewLists(fn func([]*entities.WishList) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.lists)
}

func (s *Store) UpdateLists(fn func([]*entities.WishList) ([]*entities.WishList, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.lists)
	if err != nil {
		return err
	}
	s.lists = next

	err = writeJSON(filepath.Join(s.cfg.DataDir, listsFile), s.lists)
	s.logger.LogStorageWrite(listsFile, len(s.lists), err)
	return err
}

func (s *Store) ViewAnnouncements(fn func([]*entities.Announcement) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.announcements)
}

func (s *Store) UpdateAnnouncements(fn func([]*entities.Announcement) ([]*entities.Announcement, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.announcements)
	if err != nil {
		return err
	}
	s.announcements = next

	err = writeJSON(filepath.Join(s.cfg.DataDir, announcementsFile), s.announcements)
	s.logger.LogStorageWrite(announcementsFile, len(s.announcements), err)
	return err
}

func (s *Store) ViewConfig(fn func(*entities.Config) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.config)
}

func (s *Store) UpdateConfig(fn func(*entities.Config) (*entities.Config, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.config)
	if err != nil {
		return err
	}
	s.config = next

	err = writeJSON(s.configPath(), s.config)
	s.logger.LogStorageWrite(filepath.Base(s.configPath()), 1, err)
	return err
}
