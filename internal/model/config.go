package model

import "time"

// Config is the full tool configuration. Field names double as viper keys
// through the mapstructure tags.
type Config struct {
	Transit     TransitConfig     `mapstructure:"transit" yaml:"transit"`
	Cache       CacheConfig       `mapstructure:"cache" yaml:"cache"`
	Concurrency ConcurrencyConfig `mapstructure:"concurrency" yaml:"concurrency"`
	Output      OutputConfig      `mapstructure:"output" yaml:"output"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
	Metrics     MetricsConfig     `mapstructure:"metrics" yaml:"metrics"`
}

// TransitConfig pins the Saturn ingress anchor the cycle is generated from
type TransitConfig struct {
	AnchorSign Sign   `mapstructure:"anchor_sign" yaml:"anchor_sign"`
	AnchorDate string `mapstructure:"anchor_date" yaml:"anchor_date"` // YYYY-MM-DD, UTC
}

// CacheConfig controls report memoisation
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	MemoryTTL time.Duration `mapstructure:"memory_ttl" yaml:"memory_ttl"`
	DiskDir   string        `mapstructure:"disk_dir" yaml:"disk_dir"` // empty disables the disk layer
	DiskTTL   time.Duration `mapstructure:"disk_ttl" yaml:"disk_ttl"`
}

// ConcurrencyConfig controls batch evaluation
type ConcurrencyConfig struct {
	Workers       int     `mapstructure:"workers" yaml:"workers"`
	RatePerSecond float64 `mapstructure:"rate_per_second" yaml:"rate_per_second"` // per chart directory, 0 disables
	Burst         int     `mapstructure:"burst" yaml:"burst"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool   `mapstructure:"verbose" yaml:"verbose"`
	IncludeFooter bool   `mapstructure:"include_footer" yaml:"include_footer"`
	Language      string `mapstructure:"language" yaml:"language"` // "en" or "hi"
}

// LogConfig controls the structured log file
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Debug bool   `mapstructure:"debug" yaml:"debug"`
}

// MetricsConfig controls the Prometheus textfile export
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path" yaml:"textfile_path"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Transit: TransitConfig{
			AnchorSign: Aquarius,
			AnchorDate: "2023-01-17",
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
			Burst:   5,
		},
		Output: OutputConfig{
			IncludeFooter: true,
			Language:      "en",
		},
	}
}
