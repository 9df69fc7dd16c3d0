package config

import (
	"fmt"
	"slices"
)

var (
	drivers  = []string{"sqlite", "postgres"}
	botModes = []string{"rules", "llm"}
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if !slices.Contains(drivers, c.Database.Driver) {
		return fmt.Errorf("database.driver must be one of %v (got %q)", drivers, c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn must not be empty")
	}
	if !slices.Contains(botModes, c.Bot.Mode) {
		return fmt.Errorf("bot.mode must be one of %v (got %q)", botModes, c.Bot.Mode)
	}
	if c.Bot.HistoryLimit <= 0 {
		return fmt.Errorf("bot.history_limit must be > 0 (got %d)", c.Bot.HistoryLimit)
	}
	if c.Bot.HistoryRender <= 0 {
		return fmt.Errorf("bot.history_render must be > 0 (got %d)", c.Bot.HistoryRender)
	}
	if c.Bot.MaxWeeklyHours <= 0 {
		return fmt.Errorf("bot.max_weekly_hours must be > 0 (got %d)", c.Bot.MaxWeeklyHours)
	}
	if c.LLM.TimeoutMs <= 0 {
		return fmt.Errorf("llm.timeout_ms must be > 0 (got %d)", c.LLM.TimeoutMs)
	}
	if c.LLM.MaxRetries < 0 {
		return fmt.Errorf("llm.max_retries must be >= 0 (got %d)", c.LLM.MaxRetries)
	}
	return nil
}

// Addr returns the HTTP listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
