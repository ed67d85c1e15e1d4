package handler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Santosh7017/NoteBook/internal/auth"
	"github.com/Santosh7017/NoteBook/internal/user"
)

// fakeUserStore is an in-memory user.Store for handler tests.
type fakeUserStore struct {
	mu     sync.Mutex
	byID   map[string]user.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byID: make(map[string]user.User)}
}

func (f *fakeUserStore) Create(_ context.Context, nu user.NewUser) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.byID {
		if strings.EqualFold(u.Email, nu.Email) {
			return user.User{}, user.ErrDuplicateEmail
		}
	}

	f.nextID++
	u := user.User{
		ID:           fmt.Sprintf("user-%d", f.nextID),
		Email:        nu.Email,
		Name:         nu.Name,
		PasswordHash: nu.PasswordHash,
		CreatedAt:    time.Now(),
	}
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

// fakeResolver maps identities onto the fake user store: existing email
// wins, otherwise a passwordless user is created.
type fakeResolver struct {
	users *fakeUserStore
}

func (r *fakeResolver) Resolve(ctx context.Context, identity *auth.Identity) (string, error) {
	u, err := r.users.GetByEmail(ctx, identity.Email)
	if err == nil {
		return u.ID, nil
	}

	name := identity.Name
	if name == "" {
		name = identity.Email
	}
	u, err = r.users.Create(ctx, user.NewUser{Email: identity.Email, Name: name})
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

// fakeProvider stands in for the google OIDC provider.
type fakeProvider struct {
	identity    *auth.Identity
	exchangeErr error
}

func (p *fakeProvider) Name() string { return "google" }

func (p *fakeProvider) AuthCodeURL(state string, codeChallenge string) string {
	return "https://accounts.google.com/o/oauth2/v2/auth" +
		"?client_id=test-client&scope=openid+profile+email" +
		"&state=" + state + "&code_challenge=" + codeChallenge
}

func (p *fakeProvider) ExchangeCode(_ context.Context, code string, _ string) (*auth.Identity, error) {
	if p.exchangeErr != nil {
		return nil, p.exchangeErr
	}
	if code == "" {
		return nil, fmt.Errorf("empty code")
	}
	return p.identity, nil
}
