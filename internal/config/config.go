package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/joseph-ayodele/claims-parser/internal/common"
)

// Config holds all application configuration.
type Config struct {
	Log     LogConfig
	Extract ExtractConfig
	Batch   BatchConfig
	Export  ExportConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ExtractConfig holds text extraction settings.
type ExtractConfig struct {
	// MaxPages caps how many PDF pages are read per document. Zero means no cap.
	MaxPages int `mapstructure:"max_pages"`
}

// BatchConfig holds batch runner settings.
type BatchConfig struct {
	Workers        int           `mapstructure:"workers"`
	ProcessTimeout time.Duration `mapstructure:"process_timeout"`
	SkipHidden     bool          `mapstructure:"skip_hidden"`
	Extensions     []string      `mapstructure:"extensions"`
}

// ExportConfig holds export output settings.
type ExportConfig struct {
	Format   string `mapstructure:"format"`
	Validate bool   `mapstructure:"validate"`
}

// Load reads configuration from CLAIMS_-prefixed environment variables,
// falling back to defaults suitable for local runs.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CLAIMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Extract defaults
	v.SetDefault("extract.max_pages", 0)

	// Batch defaults
	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.process_timeout", "1m")
	v.SetDefault("batch.skip_hidden", true)
	v.SetDefault("batch.extensions", "")

	// Export defaults
	v.SetDefault("export.format", "json")
	v.SetDefault("export.validate", false)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"log.level":             "CLAIMS_LOG_LEVEL",
		"log.format":            "CLAIMS_LOG_FORMAT",
		"extract.max_pages":     "CLAIMS_EXTRACT_MAX_PAGES",
		"batch.workers":         "CLAIMS_BATCH_WORKERS",
		"batch.process_timeout": "CLAIMS_BATCH_PROCESS_TIMEOUT",
		"batch.skip_hidden":     "CLAIMS_BATCH_SKIP_HIDDEN",
		"batch.extensions":      "CLAIMS_BATCH_EXTENSIONS",
		"export.format":         "CLAIMS_EXPORT_FORMAT",
		"export.validate":       "CLAIMS_EXPORT_VALIDATE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Extract = ExtractConfig{
		MaxPages: v.GetInt("extract.max_pages"),
	}

	// Parse extensions from a comma-separated string
	var exts []string
	for _, e := range strings.Split(v.GetString("batch.extensions"), ",") {
		e = strings.TrimSpace(e)
		if e != "" {
			exts = append(exts, e)
		}
	}
	cfg.Batch = BatchConfig{
		Workers:        v.GetInt("batch.workers"),
		ProcessTimeout: v.GetDuration("batch.process_timeout"),
		SkipHidden:     v.GetBool("batch.skip_hidden"),
		Extensions:     exts,
	}
	cfg.Export = ExportConfig{
		Format:   v.GetString("export.format"),
		Validate: v.GetBool("export.validate"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if c.Batch.Workers < 1 {
		return common.NewAppError("CONFIG_ERROR", "batch.workers must be at least 1", common.ErrInvalidInput)
	}
	if c.Batch.ProcessTimeout <= 0 {
		return common.NewAppError("CONFIG_ERROR", "batch.process_timeout must be positive", common.ErrInvalidInput)
	}
	if c.Extract.MaxPages < 0 {
		return common.NewAppError("CONFIG_ERROR", "extract.max_pages cannot be negative", common.ErrInvalidInput)
	}
	return nil
}
