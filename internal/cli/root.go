package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vastucartapps/jyotish/internal/logger"
	"github.com/vastucartapps/jyotish/internal/model"
)

const version = "jyotish v0.3.0"

var (
	cfgFile string
	verbose bool
	logFile string
	debug   bool

	closeLog func() error
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jyotish",
	Short: "Jyotish - rule-based Vedic chart diagnostics",
	Long: `Jyotish evaluates a Whole-Sign birth chart against classical rules:

- Kalsarp and Pitra doshas
- Pancha Mahapurusha, Gaja Kesari, Budhaditya, Lakshmi, Viparita Raja,
  Neecha Bhanga and Dhana yogas
- Saturn's ingress cycle, Sade Sati and the small Panoti
- Vikram Samvat and Panchak

Charts are read from YAML, JSON or TOML files. Jyotish does not compute
planetary positions; bring them from an ephemeris.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cleanup, err := logger.Setup(logger.Config{File: cfg.Log.File, Debug: cfg.Log.Debug})
		if err != nil {
			return fmt.Errorf("setup logging: %w", err)
		}
		closeLog = cleanup
		logger.L().Debug("command.start", "command", cmd.CommandPath(), "config", viper.ConfigFileUsed())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog == nil {
			return nil
		}
		return closeLog()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.jyotish/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file (\"-\" for stderr)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log.file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("log.debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	setDefaults(model.DefaultConfig())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".jyotish"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// JYOTISH_CACHE_ENABLED overrides cache.enabled, and so on
	viper.SetEnvPrefix("JYOTISH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setDefaults registers every key so environment overrides reach Unmarshal
func setDefaults(cfg *model.Config) {
	viper.SetDefault("transit.anchor_sign", cfg.Transit.AnchorSign.String())
	viper.SetDefault("transit.anchor_date", cfg.Transit.AnchorDate)
	viper.SetDefault("cache.enabled", cfg.Cache.Enabled)
	viper.SetDefault("cache.memory_ttl", cfg.Cache.MemoryTTL)
	viper.SetDefault("cache.disk_dir", cfg.Cache.DiskDir)
	viper.SetDefault("cache.disk_ttl", cfg.Cache.DiskTTL)
	viper.SetDefault("concurrency.workers", cfg.Concurrency.Workers)
	viper.SetDefault("concurrency.rate_per_second", cfg.Concurrency.RatePerSecond)
	viper.SetDefault("concurrency.burst", cfg.Concurrency.Burst)
	viper.SetDefault("output.verbose", cfg.Output.Verbose)
	viper.SetDefault("output.include_footer", cfg.Output.IncludeFooter)
	viper.SetDefault("output.language", cfg.Output.Language)
	viper.SetDefault("log.file", cfg.Log.File)
	viper.SetDefault("log.debug", cfg.Log.Debug)
	viper.SetDefault("metrics.textfile_path", cfg.Metrics.TextfilePath)
}

// loadConfig merges defaults, config file, environment and bound flags
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	err := viper.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	if err != nil {
		return nil, &model.OpError{Op: "config.load", Kind: model.KindInvalidInput, Path: viper.ConfigFileUsed(), Err: err}
	}
	return cfg, nil
}

// parseDate accepts YYYY-MM-DD or RFC 3339. Empty means today, UTC midnight.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is neither YYYY-MM-DD nor RFC 3339", model.ErrInvalidInput, raw)
	}
	return t.UTC(), nil
}
