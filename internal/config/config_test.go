package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FIREBASE_PROJECT_ID", "purenote-test")
	t.Setenv("FIREBASE_WEB_API_KEY", "web-api-key")
	t.Setenv("CLIENT_URL", "http://localhost:5173")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, DefaultCheckoutOrigin, cfg.DefaultOrigin)
	assert.Equal(t, "purenote-test", cfg.FirebaseProjectID)
}

func TestLoadConfig_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"missing project id", "FIREBASE_PROJECT_ID"},
		{"missing web api key", "FIREBASE_WEB_API_KEY"},
		{"missing client url", "CLIENT_URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.unset)
		})
	}
}

func TestLoadConfig_StripeKeysOptional(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STRIPE_SECRET_KEY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.PaymentConfigured())

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.PaymentConfigured())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DEFAULT_CHECKOUT_ORIGIN", "https://donate.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "https://donate.example.com", cfg.DefaultOrigin)
}
