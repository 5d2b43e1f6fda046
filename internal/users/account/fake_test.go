// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/contacts/internal/platform/apperr"
	"github.com/taibuivan/contacts/internal/platform/sec"
	"github.com/taibuivan/contacts/internal/users/account"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fastHasher keeps bcrypt in the loop at its cheapest cost.
var fastHasher = sec.NewHasher(bcrypt.MinCost)

// memoryUsers is an in-memory [account.UserRepository].
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]account.User

	tokenLookups int
	createErr    error

	// afterTokenLookup runs once, outside the lock, after the next FindByToken.
	afterTokenLookup func()
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]account.User{}}
}

func (repo *memoryUsers) FindByUsername(_ context.Context, username string) (*account.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.users[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return &user, nil
}

func (repo *memoryUsers) FindByToken(_ context.Context, token string) (*account.User, error) {
	user, err := repo.findByToken(token)

	repo.mu.Lock()
	hook := repo.afterTokenLookup
	repo.afterTokenLookup = nil
	repo.mu.Unlock()

	if hook != nil {
		hook()
	}
	return user, err
}

func (repo *memoryUsers) findByToken(token string) (*account.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.tokenLookups++
	for _, user := range repo.users {
		if user.Token != nil && *user.Token == token {
			found := user
			return &found, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *memoryUsers) Exists(_ context.Context, username string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	_, ok := repo.users[username]
	return ok, nil
}

func (repo *memoryUsers) Create(_ context.Context, user *account.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.createErr != nil {
		return repo.createErr
	}
	repo.users[user.Username] = *user
	return nil
}

func (repo *memoryUsers) Update(_ context.Context, username string, fields account.UpdateFields) (*account.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.users[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	if fields.Name != nil {
		user.Name = *fields.Name
	}
	if fields.PasswordHash != nil {
		user.PasswordHash = *fields.PasswordHash
	}
	repo.users[username] = user
	return &user, nil
}

func (repo *memoryUsers) SetToken(_ context.Context, username string, token *string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.users[username]
	if !ok {
		return apperr.NotFound("User")
	}
	if token != nil {
		value := *token
		token = &value
	}
	user.Token = token
	repo.users[username] = user
	return nil
}

// stored returns a copy of the row as the database would see it.
func (repo *memoryUsers) stored(username string) account.User {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.users[username]
}

// memoryCache is an in-memory [account.TokenCache].
type memoryCache struct {
	mu      sync.Mutex
	entries    map[string]sec.AuthUser
	failGet    bool
	failDelete bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]sec.AuthUser{}}
}

func (cache *memoryCache) Get(_ context.Context, token string) (*sec.AuthUser, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.failGet {
		return nil, errors.New("connection refused")
	}
	user, ok := cache.entries[token]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (cache *memoryCache) Set(_ context.Context, token string, user *sec.AuthUser) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.entries[token] = *user
	return nil
}

func (cache *memoryCache) Delete(_ context.Context, token string) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.failDelete {
		return errors.New("connection refused")
	}
	delete(cache.entries, token)
	return nil
}

func (cache *memoryCache) has(token string) bool {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	_, ok := cache.entries[token]
	return ok
}
