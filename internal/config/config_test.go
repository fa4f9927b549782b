package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_DRIVER", "MONGO_DATABASE", "JWT_SECRET", "SECRET_TOKEN", "CORS_ORIGINS", "REDIS_ADDR"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, "doctor_portal_server", cfg.MongoDatabase)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.RedisAddr)
	require.NoError(t, cfg.Validate())
}

func TestLoad_SecretTokenFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SECRET_TOKEN", "legacy-secret")

	assert.Equal(t, "legacy-secret", Load().JWTSecret)

	t.Setenv("JWT_SECRET", "primary-secret")
	assert.Equal(t, "primary-secret", Load().JWTSecret)
}

func TestLoad_ParsesListsAndInts(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,,")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("STORE_DRIVER", "MySQL")

	cfg := Load()

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, DriverMySQL, cfg.StoreDriver)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "mongo", cfg: Config{StoreDriver: DriverMongo, JWTSecret: "s"}},
		{name: "mysql", cfg: Config{StoreDriver: DriverMySQL, JWTSecret: "s"}},
		{name: "unknown driver", cfg: Config{StoreDriver: "postgres", JWTSecret: "s"}, wantErr: true},
		{name: "default secret in production", cfg: Config{StoreDriver: DriverMongo, Env: "production", JWTSecret: defaultJWTSecret}, wantErr: true},
		{name: "default secret in development", cfg: Config{StoreDriver: DriverMongo, Env: "development", JWTSecret: defaultJWTSecret}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
