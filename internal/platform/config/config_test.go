// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/contacts/internal/platform/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/contacts")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.CacheEnabled())
	assert.Equal(t, 10*time.Minute, cfg.TokenCacheTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "./data/migrations", cfg.MigrationPath)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &config.Config{ExtraOrigins: " https://a.example , ,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())

	assert.Empty(t, (&config.Config{}).AllowedOrigins())
}

func TestLoad_TrustedProxies(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/contacts")

	t.Run("parsed", func(t *testing.T) {
		t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.1")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, []netip.Prefix{
			netip.MustParsePrefix("10.0.0.0/8"),
			netip.MustParsePrefix("192.168.1.1/32"),
		}, cfg.TrustedProxyPrefixes())
	})

	t.Run("malformed", func(t *testing.T) {
		t.Setenv("TRUSTED_PROXIES", "10.0.0.0/99")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("default_trusts_nobody", func(t *testing.T) {
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.TrustedProxyPrefixes())
	})
}
