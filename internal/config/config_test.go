package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "https://opentdb.com", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.Difficulty)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: http://localhost:8080
timeout: 3s
difficulty: Medium
log:
  file: /tmp/trivia.log
  level: debug
`), 0o600))

	t.Setenv("TRIVIA_TIMEOUT", "7s")
	t.Setenv("TRIVIA_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.Timeout, "env beats file")
	assert.Equal(t, "medium", cfg.Difficulty)
	assert.Equal(t, "/tmp/trivia.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_DiscoversFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trivia.yaml"), []byte("difficulty: hard\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "hard", cfg.Difficulty)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TRIVIA_DIFFICULTY=easy\n"), 0o600))

	// Register cleanup for the variable godotenv is about to set.
	t.Setenv("TRIVIA_DIFFICULTY", "")
	require.NoError(t, os.Unsetenv("TRIVIA_DIFFICULTY"))

	require.NoError(t, LoadDotEnv(envFile, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "easy", os.Getenv("TRIVIA_DIFFICULTY"))

	t.Chdir(dir)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "easy", cfg.Difficulty)
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TRIVIA_ENV=staging\n"), 0o600))
	t.Setenv("TRIVIA_ENV", "production")

	require.NoError(t, LoadDotEnv(envFile))
	assert.Equal(t, "production", os.Getenv("TRIVIA_ENV"))
}

func TestValidate(t *testing.T) {
	valid := Config{BaseURL: "https://opentdb.com", Timeout: time.Second}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"valid difficulty", func(c *Config) { c.Difficulty = "hard" }, nil},
		{"bad difficulty", func(c *Config) { c.Difficulty = "insane" }, ErrInvalidDifficulty},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, ErrInvalidTimeout},
		{"relative url", func(c *Config) { c.BaseURL = "opentdb.com" }, ErrInvalidBaseURL},
		{"ftp url", func(c *Config) { c.BaseURL = "ftp://opentdb.com" }, ErrInvalidBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
