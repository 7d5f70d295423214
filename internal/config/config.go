// Package config loads the keyword server configuration from defaults, an
// optional YAML file and OCR_KEYWORDS_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// OCR_KEYWORDS_LOG_LEVEL=debug.
const EnvPrefix = "OCR_KEYWORDS"

// Config is the complete server configuration.
type Config struct {
	Log       LogConfig `mapstructure:"log"`
	OCR       OCRConfig `mapstructure:"ocr"`
	OutputDir string    `mapstructure:"output_dir"`
}

// LogConfig controls the logrus logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// OCRConfig holds the Tesseract defaults used by the keywords.
type OCRConfig struct {
	Config         string `mapstructure:"config"`
	Language       string `mapstructure:"language"`
	TessdataPrefix string `mapstructure:"tessdata_prefix"`
}

// Load builds the configuration. path names a YAML file and may be empty,
// in which case only defaults and the environment are used.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("output_dir", ".")

	v.SetDefault("ocr.config", "--psm 6")
	v.SetDefault("ocr.language", "eng")
	v.SetDefault("ocr.tessdata_prefix", "")
}

func (c *Config) validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q: want text or json", c.Log.Format)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	return nil
}
