package model

import "time"

// Config is the full runtime configuration, assembled from defaults, the
// config file, CANON_* environment variables and CLI flags.
type Config struct {
	Store  StoreConfig  `yaml:"store" json:"store"`
	Cache  CacheConfig  `yaml:"cache" json:"cache"`
	Output OutputConfig `yaml:"output" json:"output"`
	LLM    LLMConfig    `yaml:"llm" json:"llm"`
}

// StoreConfig configures the entry store location and write behavior
type StoreConfig struct {
	Path        string `yaml:"path" json:"path"`               // Store root directory
	Contributor string `yaml:"contributor" json:"contributor"` // Default contributor identifier
}

// CacheConfig configures the parsed-entry cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"` // Footer on Markdown reports
}

// LLMConfig configures the optional index-summary provider.
// The LLM never participates in integrity scanning; it only drafts the
// one-line summaries shown in category indexes.
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"` // From environment only, never persisted
	BaseURL   string `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // Seconds
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path:        "canon",
			Contributor: "anonymous",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "gpt-4o-mini",
			Timeout:   30,
			MaxTokens: 120,
		},
	}
}
