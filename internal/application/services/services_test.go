package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wishmas/core/internal/infrastructure/config"
	"github.com/wishmas/core/internal/infrastructure/filestore"
	"github.com/wishmas/core/internal/infrastructure/logger"
)

func newTestStore(t *testing.T) *filestore.Store {
	t.Helper()

	store, err := filestore.Open(config.StorageConfig{
		DataDir:    t.TempDir(),
		ConfigFile: "config.json",
	}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}
