package llm

import "time"

// Config holds the settings of the generative-text backend used when the bot
// runs in forwarding mode.
type Config struct {
	Endpoint     string
	Model        string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
	TimeoutMs    int // per attempt
	MaxRetries   int
}

// DefaultConfig returns a Config pointing at a local Ollama instance.
func DefaultConfig() Config {
	return Config{
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		Temperature: 0.3,
		MaxTokens:   1024,
		TimeoutMs:   20000,
		MaxRetries:  0,
	}
}

// Timeout returns the per-attempt deadline, falling back to the default when
// unset.
func (c Config) Timeout() time.Duration {
	ms := c.TimeoutMs
	if ms <= 0 {
		ms = DefaultConfig().TimeoutMs
	}
	return time.Duration(ms) * time.Millisecond
}
