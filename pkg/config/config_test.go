package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8000", cfg.Server.Port)
				assert.Equal(t, "memory", cfg.Cache.Type)
				assert.Equal(t, int64(10*1024*1024), cfg.Conversion.MaxUploadBytes)
				assert.Equal(t, "", cfg.Conversion.ConverterURL)
				assert.Equal(t, time.Hour, cfg.Conversion.CacheTTL)
				assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
				assert.Equal(t, 30*time.Second, cfg.Server.HTTPTimeout)
				assert.Equal(t, "info", cfg.Log.Level)
				assert.Equal(t, "text", cfg.Log.Format)
			},
		},
		{
			name:    "uses PORT env var when set",
			envVars: map[string]string{"PORT": "3000"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "3000", cfg.Server.Port)
			},
		},
		{
			name: "conversion settings",
			envVars: map[string]string{
				"MAX_UPLOAD_BYTES":     "1048576",
				"CONVERTER_URL":        "http://markitdown:8000/api/convert",
				"CONVERSION_CACHE_TTL": "10m",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, int64(1048576), cfg.Conversion.MaxUploadBytes)
				assert.Equal(t, "http://markitdown:8000/api/convert", cfg.Conversion.ConverterURL)
				assert.Equal(t, 10*time.Minute, cfg.Conversion.CacheTTL)
			},
		},
		{
			name:    "durations accept plain seconds",
			envVars: map[string]string{"SESSION_TTL": "120", "RATE_WINDOW": "30"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 2*time.Minute, cfg.Session.TTL)
				assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
			},
		},
		{
			name:    "unparseable values fall back to defaults",
			envVars: map[string]string{"REDIS_DB": "one", "HTTP_TIMEOUT": "soon"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 0, cfg.Cache.Redis.DB)
				assert.Equal(t, 30*time.Second, cfg.Server.HTTPTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(cfg *Config) {}},
		{name: "empty port", mutate: func(cfg *Config) { cfg.Server.Port = "" }, wantErr: true},
		{name: "unknown cache type", mutate: func(cfg *Config) { cfg.Cache.Type = "memcached" }, wantErr: true},
		{name: "sqlite cache", mutate: func(cfg *Config) { cfg.Cache.Type = "sqlite" }},
		{name: "sqlite without path", mutate: func(cfg *Config) {
			cfg.Cache.Type = "sqlite"
			cfg.Cache.SQLite.Path = ""
		}, wantErr: true},
		{name: "redis without address", mutate: func(cfg *Config) {
			cfg.Cache.Type = "redis"
			cfg.Cache.Redis.Address = ""
		}, wantErr: true},
		{name: "zero upload bound", mutate: func(cfg *Config) { cfg.Conversion.MaxUploadBytes = 0 }, wantErr: true},
		{name: "relative converter url", mutate: func(cfg *Config) { cfg.Conversion.ConverterURL = "/api/convert" }, wantErr: true},
		{name: "converter url", mutate: func(cfg *Config) { cfg.Conversion.ConverterURL = "https://conv.example.com/api/convert" }},
		{name: "bad log format", mutate: func(cfg *Config) { cfg.Log.Format = "xml" }, wantErr: true},
		{name: "zero rate limit", mutate: func(cfg *Config) { cfg.Server.RateLimit = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			cfg, err := LoadFromEnv()
			require.NoError(t, err)

			tt.mutate(cfg)

			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
