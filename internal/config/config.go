package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const appName = "karmator"

// Tab names accepted by UI.StartTab.
const (
	TabPair    = "pair"
	TabClassic = "classic"
	TabOrdered = "altin-gunu"
)

// Config holds application configuration.
type Config struct {
	Animation AnimationConfig
	Shuffle   ShuffleConfig
	Input     InputConfig
	Export    ExportConfig
	Log       LogConfig
	UI        UIConfig
}

// AnimationConfig holds spin timing. Ticks are per mode.
type AnimationConfig struct {
	Interval     time.Duration
	PairTicks    int `mapstructure:"pair_ticks"`
	ClassicTicks int `mapstructure:"classic_ticks"`
	OrderedTicks int `mapstructure:"ordered_ticks"`
}

// ShuffleConfig holds the randomness seed. Zero seeds from the clock.
type ShuffleConfig struct {
	Seed uint64
}

// InputConfig holds editor defaults.
type InputConfig struct {
	DefaultRows        int `mapstructure:"default_rows"`
	SimilarityDistance int `mapstructure:"similarity_distance"`
}

// ExportConfig holds result export settings.
type ExportConfig struct {
	DownloadDir string `mapstructure:"download_dir"`
	Clipboard   bool
}

// LogConfig holds log destination and level.
type LogConfig struct {
	File  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartTab string `mapstructure:"start_tab"`
}

// Path returns the config file location. KARMATOR_CONFIG wins over the XDG
// default.
func Path() string {
	if p := os.Getenv("KARMATOR_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// KARMATOR_. A .env file in the working directory is loaded first if present.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load with an explicit config file path. A missing file is not
// an error.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	// default values
	v.SetDefault("animation.interval", 80*time.Millisecond)
	v.SetDefault("animation.pair_ticks", 15)
	v.SetDefault("animation.classic_ticks", 20)
	v.SetDefault("animation.ordered_ticks", 25)
	v.SetDefault("shuffle.seed", 0)
	v.SetDefault("input.default_rows", 10)
	v.SetDefault("input.similarity_distance", 1)
	v.SetDefault("export.download_dir", xdg.UserDirs.Download)
	v.SetDefault("export.clipboard", true)
	v.SetDefault("log.file", filepath.Join(xdg.StateHome, appName, appName+".log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.start_tab", TabPair)

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("KARMATOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Animation.Interval <= 0 {
		return fmt.Errorf("animation.interval must be positive, got %s", c.Animation.Interval)
	}
	for name, n := range map[string]int{
		"animation.pair_ticks":    c.Animation.PairTicks,
		"animation.classic_ticks": c.Animation.ClassicTicks,
		"animation.ordered_ticks": c.Animation.OrderedTicks,
		"input.default_rows":      c.Input.DefaultRows,
	} {
		if n < 1 {
			return fmt.Errorf("%s must be at least 1, got %d", name, n)
		}
	}
	if c.Input.SimilarityDistance < 0 {
		return fmt.Errorf("input.similarity_distance must not be negative, got %d", c.Input.SimilarityDistance)
	}
	switch c.UI.StartTab {
	case TabPair, TabClassic, TabOrdered:
	default:
		return fmt.Errorf("ui.start_tab %q is not one of %s, %s, %s", c.UI.StartTab, TabPair, TabClassic, TabOrdered)
	}
	return nil
}
