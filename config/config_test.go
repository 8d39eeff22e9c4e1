package config_test

import (
	"hostel/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "access"
	cfg.JWT.RefreshSecret = "refresh"
	cfg.Hostel.MessMenuDays = 7

	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(cfg *config.Config)
		expected string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:     "missing secrets",
			mutate:   func(cfg *config.Config) { cfg.JWT.RefreshSecret = "" },
			expected: "JWT_ACCESS_SECRET and JWT_REFRESH_SECRET are required",
		},
		{
			name:     "shared secret",
			mutate:   func(cfg *config.Config) { cfg.JWT.RefreshSecret = "access" },
			expected: "different secrets",
		},
		{
			name: "rate limiter without window",
			mutate: func(cfg *config.Config) {
				cfg.App.RateLimiter.Enable = true
				cfg.App.RateLimiter.MaxRequests = 10
			},
			expected: "positive request count and window",
		},
		{
			name:     "menu horizon too long",
			mutate:   func(cfg *config.Config) { cfg.Hostel.MessMenuDays = 60 },
			expected: "HOSTEL_MESS_MENU_DAYS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.expected == "" {
				assert.NoError(t, err)

				return
			}

			assert.ErrorContains(t, err, tt.expected)
		})
	}
}
