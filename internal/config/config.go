package config

import (
	"errors"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Config struct {
	Address      string   `mapstructure:"address"`
	LogLevel     string   `mapstructure:"log_level"`
	LogFormat    string   `mapstructure:"log_format"`
	TelemetryURL string   `mapstructure:"telemetry_url"`
	BannedTerms  []string `mapstructure:"banned_terms"`
	CORSOrigins  []string `mapstructure:"cors_origins"`

	v *viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("address", "0.0.0.0:5000")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("telemetry_url", "")
	v.SetDefault("banned_terms", []string{})
	v.SetDefault("cors_origins", []string{"*"})
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	setDefaults(v)

	// allow environment variables like RELAY_ADDRESS
	v.SetEnvPrefix("RELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// don't fail if config file is missing, allow env-only config
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, err
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	c.v = v
	return &c, nil
}

// File returns the config file in use, or "" when running from env only.
func (c *Config) File() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}

// OnChange calls fn with the re-read config each time the config file
// changes. It does nothing when no file was loaded.
func (c *Config) OnChange(fn func(*Config, error)) {
	if c.File() == "" {
		return
	}
	c.v.OnConfigChange(func(fsnotify.Event) {
		fn(decode(c.v))
	})
	c.v.WatchConfig()
}
