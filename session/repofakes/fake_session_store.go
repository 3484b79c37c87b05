package sessionrepofakes

import (
	"sync"

	"github.com/jrsteele09/go-budget-client/session"
)

var _ session.Store = (*FakeSessionStore)(nil)

// FakeSessionStore is an in-memory Store that records its mutations.
type FakeSessionStore struct {
	tokens session.Tokens
	lock   sync.RWMutex

	// Err, when set, is returned by every operation.
	Err error

	SetTokensCalls      int
	SetAccessTokenCalls int
	ClearCalls          int
	AccessTokenHistory  []string
}

func NewFakeSessionStore() *FakeSessionStore {
	return &FakeSessionStore{}
}

// NewFakeSessionStoreWith returns a fake already holding both tokens.
func NewFakeSessionStoreWith(access, refresh string) *FakeSessionStore {
	return &FakeSessionStore{
		tokens: session.Tokens{AccessToken: access, RefreshToken: refresh},
	}
}

func (f *FakeSessionStore) GetAccessToken() (*string, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if f.tokens.AccessToken == "" {
		return nil, nil
	}
	token := f.tokens.AccessToken
	return &token, nil
}

func (f *FakeSessionStore) GetRefreshToken() (*string, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if f.tokens.RefreshToken == "" {
		return nil, nil
	}
	token := f.tokens.RefreshToken
	return &token, nil
}

func (f *FakeSessionStore) SetTokens(access, refresh string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.SetTokensCalls++
	f.tokens = session.Tokens{AccessToken: access, RefreshToken: refresh}
	f.AccessTokenHistory = append(f.AccessTokenHistory, access)
	return nil
}

func (f *FakeSessionStore) SetAccessToken(access string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.SetAccessTokenCalls++
	f.tokens.AccessToken = access
	f.AccessTokenHistory = append(f.AccessTokenHistory, access)
	return nil
}

func (f *FakeSessionStore) Clear() error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.ClearCalls++
	f.tokens = session.Tokens{}
	return nil
}

// Snapshot returns a copy of the held tokens.
func (f *FakeSessionStore) Snapshot() session.Tokens {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.tokens
}
