package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() *Config {
	return &Config{
		Port:           "8080",
		DBPassword:     "password",
		DBSSLMode:      "disable",
		JWTSecret:      "development-secret",
		TokenTTLMins:   60,
		BcryptCost:     12,
		PasswordMinLen: 5,
		TitleMinLen:    5,
		ContentMinLen:  5,
		PostsPerPage:   2,
		ImageDir:       "images",
		Env:            "development",
	}
}

func TestValidateAcceptsDevelopmentDefaults(t *testing.T) {
	assert.NoError(t, validTestConfig().Validate())
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Missing port", func(c *Config) { c.Port = "" }},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }},
		{"Zero token TTL", func(c *Config) { c.TokenTTLMins = 0 }},
		{"Bcrypt cost too low", func(c *Config) { c.BcryptCost = 3 }},
		{"Bcrypt cost too high", func(c *Config) { c.BcryptCost = 32 }},
		{"Zero page size", func(c *Config) { c.PostsPerPage = 0 }},
		{"Missing image dir", func(c *Config) { c.ImageDir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateProductionHardening(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Default JWT secret", func(c *Config) {
			c.JWTSecret = "your-secret-key-change-in-production"
		}},
		{"Short JWT secret", func(c *Config) {
			c.JWTSecret = "short"
		}},
		{"Default DB password", func(c *Config) {
			c.DBPassword = "password"
		}},
		{"Empty DB password", func(c *Config) {
			c.DBPassword = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.Env = "production"
			cfg.JWTSecret = "a-long-production-secret-with-32-chars!"
			cfg.DBPassword = "genuinely-strong-password"
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateProductionAcceptsHardenedConfig(t *testing.T) {
	cfg := validTestConfig()
	cfg.Env = "production"
	cfg.JWTSecret = "a-long-production-secret-with-32-chars!"
	cfg.DBPassword = "genuinely-strong-password"
	cfg.DBSSLMode = "require"
	assert.NoError(t, cfg.Validate())
}
