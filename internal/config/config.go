package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Bot      BotConfig      `yaml:"bot"`
	LLM      LLMConfig      `yaml:"llm"`
	Telegram TelegramConfig `yaml:"telegram"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:""`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig selects the timetable store. Driver is "sqlite" or
// "postgres".
type DatabaseConfig struct {
	Driver string `yaml:"driver" env:"DATABASE_DRIVER" env-default:"sqlite"`
	DSN    string `yaml:"dsn"    env:"DATABASE_DSN"    env-default:"./data/kesteai.db"`
}

// BotConfig drives the conversational interpreter. Mode "rules" runs the
// command interpreter, "llm" forwards every message to the LLM backend.
type BotConfig struct {
	Mode           string `yaml:"mode"             env:"BOT_MODE"             env-default:"rules"`
	HistoryLimit   int    `yaml:"history_limit"    env:"BOT_HISTORY_LIMIT"    env-default:"10"`
	HistoryRender  int    `yaml:"history_render"   env:"BOT_HISTORY_RENDER"   env-default:"5"`
	MaxWeeklyHours int    `yaml:"max_weekly_hours" env:"BOT_MAX_WEEKLY_HOURS" env-default:"40"`
}

type LLMConfig struct {
	Endpoint     string `yaml:"endpoint"      env:"LLM_ENDPOINT"      env-default:"http://localhost:11434"`
	Model        string `yaml:"model"         env:"LLM_MODEL"         env-default:"llama3.2"`
	SystemPrompt string `yaml:"system_prompt" env:"LLM_SYSTEM_PROMPT"`
	TimeoutMs    int    `yaml:"timeout_ms"    env:"LLM_TIMEOUT_MS"    env-default:"20000"`
	MaxRetries   int    `yaml:"max_retries"   env:"LLM_MAX_RETRIES"   env-default:"0"`
}

// TelegramConfig enables the Telegram operator channel when Token is set.
// A non-zero AllowedChatID ignores every other chat.
type TelegramConfig struct {
	Token         string `yaml:"token"           env:"TELEGRAM_TOKEN"`
	AllowedChatID int64  `yaml:"allowed_chat_id" env:"TELEGRAM_ALLOWED_CHAT_ID" env-default:"0"`
}

type LogConfig struct {
	Env   string `yaml:"env"   env:"APP_ENV"   env-default:"development"`
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}
