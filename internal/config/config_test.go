package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "Defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name: "Postgres without URL",
			mutate: func(c *Config) {
				c.DBDriver = DriverPostgres
			},
			wantErr: "POSTGRES_URL is required",
		},
		{
			name: "Postgres with URL",
			mutate: func(c *Config) {
				c.DBDriver = DriverPostgres
				c.PostgresURL = "postgres://localhost/buddy"
			},
		},
		{
			name: "Unknown driver",
			mutate: func(c *Config) {
				c.DBDriver = "mysql"
			},
			wantErr: `unsupported database driver "mysql"`,
		},
		{
			name: "Empty port",
			mutate: func(c *Config) {
				c.Port = ""
			},
			wantErr: "PORT must not be empty",
		},
		{
			name: "Production without toast secret",
			mutate: func(c *Config) {
				c.Env = "production"
			},
			wantErr: "TOAST_SECRET is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BUDDY_TEST_VALUE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("BUDDY_TEST_VALUE") })

	err := LoadDotEnv(filepath.Join(dir, "missing.env"), path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", os.Getenv("BUDDY_TEST_VALUE"))
}

func TestValidateDatabase_IgnoresServerSettings(t *testing.T) {
	cfg := Default()
	cfg.Env = "production"
	cfg.Port = ""

	assert.NoError(t, cfg.ValidateDatabase())
	assert.Error(t, cfg.Validate())
}
