package session_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jrsteele09/go-budget-client/internal/config"
	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
	"github.com/jrsteele09/go-budget-client/session"
	sessionrepofakes "github.com/jrsteele09/go-budget-client/session/repofakes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func stores(t *testing.T) map[string]session.Store {
	t.Helper()
	keyring.MockInit()
	return map[string]session.Store{
		"memory":  session.NewMemoryStore(),
		"file":    session.NewFileStore(filepath.Join(t.TempDir(), "budgetctl")),
		"keyring": session.NewKeyringStore("budgetctl-test"),
		"fake":    sessionrepofakes.NewFakeSessionStore(),
	}
}

func TestStore_Lifecycle(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			access, err := store.GetAccessToken()
			require.NoError(t, err)
			require.Nil(t, access)
			require.False(t, session.IsAuthenticated(store))

			require.NoError(t, store.SetTokens("access-1", "refresh-1"))
			access, err = store.GetAccessToken()
			require.NoError(t, err)
			require.Equal(t, "access-1", *access)
			refresh, err := store.GetRefreshToken()
			require.NoError(t, err)
			require.Equal(t, "refresh-1", *refresh)
			require.True(t, session.IsAuthenticated(store))

			require.NoError(t, store.SetAccessToken("access-2"))
			access, err = store.GetAccessToken()
			require.NoError(t, err)
			require.Equal(t, "access-2", *access)
			refresh, err = store.GetRefreshToken()
			require.NoError(t, err)
			require.Equal(t, "refresh-1", *refresh, "renewal must leave the refresh token untouched")

			require.NoError(t, store.Clear())
			access, err = store.GetAccessToken()
			require.NoError(t, err)
			require.Nil(t, access)
			refresh, err = store.GetRefreshToken()
			require.NoError(t, err)
			require.Nil(t, refresh)

			require.NoError(t, store.Clear(), "clearing an empty session is not an error")
		})
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, session.NewFileStore(dir).SetTokens("a", "r"))

	reopened := session.NewFileStore(dir)
	access, err := reopened.GetAccessToken()
	require.NoError(t, err)
	require.Equal(t, "a", *access)

	info, err := os.Stat(reopened.Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_SeesWritesFromOtherInstances(t *testing.T) {
	dir := t.TempDir()
	reader := session.NewFileStore(dir)
	writer := session.NewFileStore(dir)

	require.NoError(t, writer.SetTokens("a1", "r1"))
	require.NoError(t, writer.SetAccessToken("a2"))

	access, err := reader.GetAccessToken()
	require.NoError(t, err)
	require.Equal(t, "a2", *access)
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := session.NewFileStore(dir)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o600))

	_, err := store.GetAccessToken()
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestFileStore_ConcurrentWriters(t *testing.T) {
	store := session.NewFileStore(t.TempDir())
	require.NoError(t, store.SetTokens("a0", "r0"))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.SetAccessToken("a-next"))
		}()
	}
	wg.Wait()

	access, err := store.GetAccessToken()
	require.NoError(t, err)
	require.Equal(t, "a-next", *access)
	refresh, err := store.GetRefreshToken()
	require.NoError(t, err)
	require.Equal(t, "r0", *refresh)
}

func TestNewStore(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		t.Setenv("BUDGET_SESSION_STORE", "memory")
		store, err := session.NewStore(config.New())
		require.NoError(t, err)
		require.IsType(t, &session.MemoryStore{}, store)
	})

	t.Run("file", func(t *testing.T) {
		t.Setenv("BUDGET_SESSION_STORE", "file")
		t.Setenv("BUDGET_DATA_DIR", t.TempDir())
		store, err := session.NewStore(config.New())
		require.NoError(t, err)
		require.IsType(t, &session.FileStore{}, store)
	})

	t.Run("keyring", func(t *testing.T) {
		t.Setenv("BUDGET_SESSION_STORE", "keyring")
		store, err := session.NewStore(config.New())
		require.NoError(t, err)
		require.IsType(t, &session.KeyringStore{}, store)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Setenv("BUDGET_SESSION_STORE", "cookie-jar")
		_, err := session.NewStore(config.New())
		require.ErrorIs(t, err, apperrors.ErrUnknownStore)
	})
}
