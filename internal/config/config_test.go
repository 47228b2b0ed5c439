package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultCatalogPageSize, cfg.Builder.CatalogPageSize)
	assert.Equal(t, 5*time.Minute, cfg.Builder.CatalogCacheTTL)
	assert.Equal(t, DefaultSessionTTL, cfg.Builder.SessionTTL)
	assert.Equal(t, DefaultSubmitLockTTL, cfg.Builder.SubmitLockTTL)
	assert.Equal(t, "development", cfg.Logger.Env)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("builder.catalog_page_size", 250)
	v.Set("builder.catalog_cache_ttl", "0s")
	v.Set("builder.session_ttl", "0s")
	v.Set("db.host", "oracle.internal")
	v.Set("db.user", "builder")
	v.Set("db.password", "secret")
	v.Set("db.name", "FEEDBACK")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Builder.CatalogPageSize)
	assert.Zero(t, cfg.Builder.CatalogCacheTTL)
	assert.Equal(t, DefaultSessionTTL, cfg.Builder.SessionTTL, "non-positive session ttl falls back to default")
	assert.Contains(t, cfg.GetDSN(), "oracle.internal:1521")
	assert.Contains(t, cfg.GetDSN(), "FEEDBACK")
}

func TestFromViper_RejectsNonPositivePageSize(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("builder.catalog_page_size", 0)

	_, err := fromViper(v)
	assert.Error(t, err)
}
