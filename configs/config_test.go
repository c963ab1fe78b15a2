package configs_test

import (
	"context"
	"testing"
	"time"

	"hospitality/configs"
	"hospitality/internal/testdb"
	"hospitality/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"APP_ENV", "PORT", "DB_DRIVER", "DB_SOURCE", "CORS_ORIGIN", "JWT_SECRET", "JWT_TTL",
		"RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW", "TELEGRAM_CHAT_ID", "KAFKA_TOPIC",
		"ADMIN_EMAIL", "ADMIN_PASSWORD", "ADMIN_NAME",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_SOURCE", "file:test.db")
	t.Setenv("JWT_SECRET", secret)

	cfg, err := configs.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.CORSOrigin)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, "hospitality.events", cfg.KafkaTopic)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_SOURCE", "host=db")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_SECRET", secret)
	t.Setenv("CORS_ORIGIN", "https://a.example, https://b.example")
	t.Setenv("TELEGRAM_CHAT_ID", "-1001")
	t.Setenv("APP_ENV", "production")

	cfg, err := configs.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigin)
	assert.EqualValues(t, -1001, cfg.TelegramChatID)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]struct {
		env  map[string]string
		want string
	}{
		"missing required": {map[string]string{}, "missing env: DB_SOURCE, JWT_SECRET"},
		"short secret":     {map[string]string{"DB_SOURCE": "x", "JWT_SECRET": "short"}, "JWT_SECRET must be at least 32 characters"},
		"bad driver":       {map[string]string{"DB_SOURCE": "x", "JWT_SECRET": secret, "DB_DRIVER": "mysql"}, `unsupported DB_DRIVER "mysql"`},
		"bad ttl":          {map[string]string{"DB_SOURCE": "x", "JWT_SECRET": secret, "JWT_TTL": "soon"}, "JWT_TTL"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := configs.LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestSeedAdmin_OnlyOnce(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	cfg := &configs.Config{JWTSecret: secret, AdminEmail: "seed@example.com", AdminPassword: "secret1", AdminName: "Seed"}

	require.NoError(t, configs.SeedAdmin(ctx, db, cfg))
	require.NoError(t, configs.SeedAdmin(ctx, db, cfg))

	n, err := repository.NewAdminRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, configs.SeedAdmin(ctx, testdb.Open(t), &configs.Config{JWTSecret: secret}))
}
