package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inDir runs the test from an empty directory so no stray config.yaml or
// .env is picked up.
func inDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_PATH", "")
	return dir
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "kesteai.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	inDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "./data/kesteai.db", cfg.Database.DSN)
	assert.Equal(t, "rules", cfg.Bot.Mode)
	assert.Equal(t, 10, cfg.Bot.HistoryLimit)
	assert.Equal(t, 5, cfg.Bot.HistoryRender)
	assert.Equal(t, 40, cfg.Bot.MaxWeeklyHours)
	assert.Equal(t, 20000, cfg.LLM.TimeoutMs)
	assert.Equal(t, 0, cfg.LLM.MaxRetries)
	assert.Empty(t, cfg.Telegram.Token)
	assert.Equal(t, "development", cfg.Log.Env)
}

func TestLoad_EnvOverrides(t *testing.T) {
	inDir(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/kesteai")
	t.Setenv("BOT_MODE", "llm")
	t.Setenv("TELEGRAM_ALLOWED_CHAT_ID", "-1001234")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "llm", cfg.Bot.Mode)
	assert.Equal(t, int64(-1001234), cfg.Telegram.AllowedChatID)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := inDir(t)
	path := writeYAML(t, dir, `
server:
  port: 9090
bot:
  history_limit: 3
llm:
  model: "qwen2.5"
  timeout_ms: 5000
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Bot.HistoryLimit)
	assert.Equal(t, "qwen2.5", cfg.LLM.Model)
	assert.Equal(t, 5000, cfg.LLM.TimeoutMs)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := inDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BOT_HISTORY_RENDER=7\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("BOT_HISTORY_RENDER") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Bot.HistoryRender)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	dir := inDir(t)
	t.Setenv("CONFIG_PATH", filepath.Join(dir, "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Database: DatabaseConfig{Driver: "sqlite", DSN: ":memory:"},
			Bot:      BotConfig{Mode: "rules", HistoryLimit: 10, HistoryRender: 5, MaxWeeklyHours: 40},
			LLM:      LLMConfig{TimeoutMs: 20000},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "database.driver"},
		{"empty dsn", func(c *Config) { c.Database.DSN = "" }, "database.dsn"},
		{"unknown mode", func(c *Config) { c.Bot.Mode = "gpt" }, "bot.mode"},
		{"zero history", func(c *Config) { c.Bot.HistoryLimit = 0 }, "bot.history_limit"},
		{"zero render", func(c *Config) { c.Bot.HistoryRender = 0 }, "bot.history_render"},
		{"zero hours cap", func(c *Config) { c.Bot.MaxWeeklyHours = 0 }, "bot.max_weekly_hours"},
		{"zero timeout", func(c *Config) { c.LLM.TimeoutMs = 0 }, "llm.timeout_ms"},
		{"negative retries", func(c *Config) { c.LLM.MaxRetries = -1 }, "llm.max_retries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
