package session

import (
	"sync"

	"github.com/jrsteele09/go-budget-client/internal/utils"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps the tokens for the lifetime of the process only.
type MemoryStore struct {
	tokens Tokens
	lock   sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) GetAccessToken() (*string, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return utils.NonEmptyPtr(m.tokens.AccessToken), nil
}

func (m *MemoryStore) GetRefreshToken() (*string, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return utils.NonEmptyPtr(m.tokens.RefreshToken), nil
}

func (m *MemoryStore) SetTokens(access, refresh string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.tokens = Tokens{AccessToken: access, RefreshToken: refresh}
	return nil
}

func (m *MemoryStore) SetAccessToken(access string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.tokens.AccessToken = access
	return nil
}

func (m *MemoryStore) Clear() error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.tokens = Tokens{}
	return nil
}
