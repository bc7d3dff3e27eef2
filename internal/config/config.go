package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	LogFile  string `mapstructure:"log_file"`
	Preserve bool   `mapstructure:"preserve"`
	Level    string `mapstructure:"level"`
}

// ServeConfig holds the HTTP preview settings
type ServeConfig struct {
	Port string `mapstructure:"port"`
}

type Config struct {
	SaveDirectory string        `mapstructure:"save_directory"`
	Autoplay      bool          `mapstructure:"autoplay"`
	VideoSeconds  int           `mapstructure:"video_seconds"`
	SmoothScroll  bool          `mapstructure:"smooth_scroll"`
	ScrollStep    int           `mapstructure:"scroll_step"`
	BaseURL       string        `mapstructure:"base_url"`
	Section       string        `mapstructure:"section"`
	Serve         ServeConfig   `mapstructure:"serve"`
	Logging       LoggingConfig `mapstructure:"logging"`
}

const (
	EnvPrefix       = "OAKVIEW"
	defaultDir      = ".oakview"
	defaultFileName = "settings"
)

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("save_directory", "")
	v.SetDefault("autoplay", true)
	v.SetDefault("video_seconds", 12)
	v.SetDefault("smooth_scroll", true)
	v.SetDefault("scroll_step", 3)
	v.SetDefault("base_url", "http://localhost:8090")
	v.SetDefault("section", "")

	v.SetDefault("serve.port", "8090")

	v.SetDefault("logging.log_file", "~/"+defaultDir+"/oakview.log")
	v.SetDefault("logging.preserve", true)
	v.SetDefault("logging.level", "info")
}

// ReadFile points v at cfgFile, or at ~/.oakview/settings.yaml when empty, and
// reads it. A missing default file is not an error.
func ReadFile(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandHome(cfgFile))
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, defaultDir))
	}
	v.SetConfigType("yaml")
	v.SetConfigName(defaultFileName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load decodes v into a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.SaveDirectory != "" {
		cfg.SaveDirectory = expandHome(cfg.SaveDirectory)
		if !filepath.IsAbs(cfg.SaveDirectory) {
			if absPath, err := filepath.Abs(cfg.SaveDirectory); err == nil {
				cfg.SaveDirectory = absPath
			}
		}
	}
	cfg.Logging.LogFile = expandHome(cfg.Logging.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.VideoSeconds <= 0 {
		return fmt.Errorf("video_seconds must be positive, got %d", c.VideoSeconds)
	}
	if c.ScrollStep <= 0 {
		return fmt.Errorf("scroll_step must be positive, got %d", c.ScrollStep)
	}
	if strings.TrimSpace(c.Serve.Port) == "" {
		return fmt.Errorf("serve.port is required")
	}
	return nil
}

// SavePath resolves an export file name inside the save directory, creating it if needed.
func (c *Config) SavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("failed to create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}

// AnchorURL is the shareable link to a section anchor.
func (c *Config) AnchorURL(anchor string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + anchor
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
