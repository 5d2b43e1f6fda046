// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/contacts/internal/platform/apperr"
	"github.com/taibuivan/contacts/internal/platform/sec"
	"github.com/taibuivan/contacts/internal/users/account"
	"github.com/taibuivan/contacts/pkg/pointer"
)

func newService(repo *memoryUsers, cache account.TokenCache) *account.Service {
	return account.NewService(repo, cache, fastHasher, discardLogger)
}

// registerAndLogin seeds a user and returns its first token.
func registerAndLogin(t *testing.T, service *account.Service, username string) string {
	t.Helper()
	ctx := context.Background()

	_, err := service.Register(ctx, account.RegisterInput{Username: username, Password: "rahasia", Name: "Test"})
	require.NoError(t, err)

	token, err := service.Login(ctx, account.LoginInput{Username: username, Password: "rahasia"})
	require.NoError(t, err)
	return token.Token
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUsers()
	service := newService(repo, nil)

	user, err := service.Register(ctx, account.RegisterInput{Username: " test ", Password: "rahasia", Name: "Test"})
	require.NoError(t, err)
	assert.Equal(t, &account.UserResponse{Username: "test", Name: "Test"}, user)

	stored := repo.stored("test")
	assert.NotEqual(t, "rahasia", stored.PasswordHash)
	assert.True(t, fastHasher.CheckPasswordHash("rahasia", stored.PasswordHash))
	assert.Nil(t, stored.Token)

	_, err = service.Register(ctx, account.RegisterInput{Username: "test", Password: "other", Name: "Other"})
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
	assert.Equal(t, "Username already exist", appError.Message)
}

func TestService_Register_Validation(t *testing.T) {
	service := newService(newMemoryUsers(), nil)

	tests := []struct {
		name   string
		input  account.RegisterInput
		fields []string
	}{
		{"all_missing", account.RegisterInput{}, []string{"username", "password", "name"}},
		{"username_too_long", account.RegisterInput{Username: strings.Repeat("a", 101), Password: "x", Name: "x"}, []string{"username"}},
		{"blank_name", account.RegisterInput{Username: "test", Password: "x", Name: "   "}, []string{"name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tt.input)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)

			fields := make([]string, 0, len(appError.Details))
			for _, detail := range appError.Details {
				fields = append(fields, detail.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestService_Register_InsertRace(t *testing.T) {
	repo := newMemoryUsers()
	repo.createErr = apperr.BadRequest("Username already exist")
	service := newService(repo, nil)

	_, err := service.Register(context.Background(), account.RegisterInput{Username: "test", Password: "x", Name: "x"})
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUsers()
	service := newService(repo, nil)

	first := registerAndLogin(t, service, "test")
	assert.Len(t, first, 36)
	assert.Equal(t, first, *repo.stored("test").Token)

	second, err := service.Login(ctx, account.LoginInput{Username: "test", Password: "rahasia"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second.Token)
	assert.Equal(t, second.Token, *repo.stored("test").Token)

	_, wrongPassword := service.Login(ctx, account.LoginInput{Username: "test", Password: "salah"})
	_, unknownUser := service.Login(ctx, account.LoginInput{Username: "nobody", Password: "rahasia"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, apperr.As(wrongPassword), apperr.As(unknownUser))
	assert.Equal(t, http.StatusUnauthorized, apperr.As(wrongPassword).HTTPStatus)
	assert.Equal(t, "Username or password wrong", wrongPassword.Error())
}

func TestService_Login_InvalidatesPreviousToken(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUsers()
	cache := newMemoryCache()
	service := newService(repo, cache)

	first := registerAndLogin(t, service, "test")
	_, err := service.ResolveToken(ctx, first)
	require.NoError(t, err)
	require.True(t, cache.has(first))

	_, err = service.Login(ctx, account.LoginInput{Username: "test", Password: "rahasia"})
	require.NoError(t, err)

	assert.False(t, cache.has(first))
	_, err = service.ResolveToken(ctx, first)
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUsers()
	service := newService(repo, nil)
	registerAndLogin(t, service, "test")
	caller := &sec.AuthUser{Username: "test", Name: "Test"}

	t.Run("password_only_keeps_name", func(t *testing.T) {
		user, err := service.Update(ctx, caller, account.UpdateInput{Password: pointer.To("baru")})
		require.NoError(t, err)
		assert.Equal(t, "Test", user.Name)
		assert.True(t, fastHasher.CheckPasswordHash("baru", repo.stored("test").PasswordHash))
	})

	t.Run("name_only_keeps_password", func(t *testing.T) {
		user, err := service.Update(ctx, caller, account.UpdateInput{Name: pointer.To("Renamed")})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", user.Name)
		assert.True(t, fastHasher.CheckPasswordHash("baru", repo.stored("test").PasswordHash))
	})

	t.Run("empty_body_is_a_read", func(t *testing.T) {
		user, err := service.Update(ctx, caller, account.UpdateInput{})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", user.Name)
	})

	t.Run("blank_name_rejected", func(t *testing.T) {
		_, err := service.Update(ctx, caller, account.UpdateInput{Name: pointer.To("")})
		assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
	})

	t.Run("vanished_user", func(t *testing.T) {
		_, err := service.Update(ctx, &sec.AuthUser{Username: "ghost"}, account.UpdateInput{Name: pointer.To("x")})
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUsers()
	cache := newMemoryCache()
	service := newService(repo, cache)

	token := registerAndLogin(t, service, "test")
	identity, err := service.ResolveToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, identity))

	assert.Nil(t, repo.stored("test").Token)
	assert.False(t, cache.has(token))
	_, err = service.ResolveToken(ctx, token)
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_ResolveToken(t *testing.T) {
	ctx := context.Background()

	t.Run("cache_hit_skips_repository", func(t *testing.T) {
		repo := newMemoryUsers()
		service := newService(repo, newMemoryCache())
		token := registerAndLogin(t, service, "test")

		for range 3 {
			user, err := service.ResolveToken(ctx, token)
			require.NoError(t, err)
			assert.Equal(t, "test", user.Username)
		}
		// Lookup plus the confirmation after the first cache write.
		assert.Equal(t, 2, repo.tokenLookups)
	})

	t.Run("cache_failure_falls_back", func(t *testing.T) {
		repo := newMemoryUsers()
		cache := newMemoryCache()
		cache.failGet = true
		service := newService(repo, cache)
		token := registerAndLogin(t, service, "test")

		user, err := service.ResolveToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "test", user.Username)
	})

	t.Run("without_cache", func(t *testing.T) {
		service := newService(newMemoryUsers(), nil)
		_, err := service.ResolveToken(ctx, "salah")
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("logout_between_lookup_and_cache_write", func(t *testing.T) {
		repo := newMemoryUsers()
		cache := newMemoryCache()
		service := newService(repo, cache)
		token := registerAndLogin(t, service, "test")

		repo.afterTokenLookup = func() {
			require.NoError(t, service.Logout(ctx, &sec.AuthUser{Username: "test"}))
		}

		_, err := service.ResolveToken(ctx, token)
		assert.True(t, apperr.IsNotFound(err))
		assert.Nil(t, repo.stored("test").Token)
		assert.False(t, cache.has(token))

		_, err = service.ResolveToken(ctx, token)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestService_EvictFailureIsReported(t *testing.T) {
	ctx := context.Background()

	t.Run("logout", func(t *testing.T) {
		repo := newMemoryUsers()
		cache := newMemoryCache()
		service := newService(repo, cache)
		token := registerAndLogin(t, service, "test")

		identity, err := service.ResolveToken(ctx, token)
		require.NoError(t, err)

		cache.failDelete = true
		err = service.Logout(ctx, identity)
		require.Error(t, err)
		assert.Nil(t, apperr.As(err))
	})

	t.Run("login", func(t *testing.T) {
		repo := newMemoryUsers()
		cache := newMemoryCache()
		service := newService(repo, cache)
		registerAndLogin(t, service, "test")

		cache.failDelete = true
		_, err := service.Login(ctx, account.LoginInput{Username: "test", Password: "rahasia"})
		require.Error(t, err)
		assert.Nil(t, apperr.As(err))
	})
}

func TestService_LongPasswords(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name     string
		password string
	}{
		{"ascii", strings.Repeat("a", account.MaxPasswordLength)},
		{"multibyte", strings.Repeat("é", account.MaxPasswordLength)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(newMemoryUsers(), nil)

			_, err := service.Register(ctx, account.RegisterInput{Username: "test", Password: tt.password, Name: "Test"})
			require.NoError(t, err)

			_, err = service.Login(ctx, account.LoginInput{Username: "test", Password: tt.password})
			require.NoError(t, err)

			_, err = service.Login(ctx, account.LoginInput{Username: "test", Password: "b" + string([]rune(tt.password)[1:])})
			assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)

			_, err = service.Update(ctx, &sec.AuthUser{Username: "test"}, account.UpdateInput{Password: pointer.To(tt.password)})
			require.NoError(t, err)
		})
	}
}
