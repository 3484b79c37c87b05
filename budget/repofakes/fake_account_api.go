package budgetrepofakes

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-budget-client/budget"
)

var _ budget.AccountAPI = (*FakeAccountAPI)(nil)

// FakeAccountAPI answers account calls from canned values and records what
// it was asked.
type FakeAccountAPI struct {
	lock sync.Mutex

	LoginResponse     *budget.LoginResponse
	LoginErr          error
	RegisterResponse  *budget.RegisterResponse
	RegisterErr       error
	LogoutErr         error
	ChangePasswordErr error

	LoginCalls          []budget.Credentials
	RegisterCalls       []budget.Registration
	LogoutCalls         []string
	ChangePasswordCalls [][2]string
}

func NewFakeAccountAPI() *FakeAccountAPI {
	return &FakeAccountAPI{}
}

func (f *FakeAccountAPI) Login(ctx context.Context, credentials budget.Credentials) (*budget.LoginResponse, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.LoginCalls = append(f.LoginCalls, credentials)
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	return f.LoginResponse, nil
}

func (f *FakeAccountAPI) Register(ctx context.Context, registration budget.Registration) (*budget.RegisterResponse, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.RegisterCalls = append(f.RegisterCalls, registration)
	if f.RegisterErr != nil {
		return nil, f.RegisterErr
	}
	return f.RegisterResponse, nil
}

func (f *FakeAccountAPI) Logout(ctx context.Context, refreshToken string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.LogoutCalls = append(f.LogoutCalls, refreshToken)
	return f.LogoutErr
}

func (f *FakeAccountAPI) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.ChangePasswordCalls = append(f.ChangePasswordCalls, [2]string{oldPassword, newPassword})
	return f.ChangePasswordErr
}
