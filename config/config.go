package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name string
		Port string
		Prod bool
	}
	Database struct {
		Dsn                  string
		MaxIdleConns         int
		MaxOpenConns         int
		ConnMaxLifetimeHours int
	}
	Redis struct {
		Addr     string
		DB       int
		Password string
	}
	Translator struct {
		BaseURL        string
		ApiKey         string
		Model          string
		TimeoutSeconds int
	}
	Jwt struct {
		Secret      string
		ExpireHours int
	}
}

// Load reads config/config.yml via viper and unmarshals it. Environment
// variables override file values (LINGUA_TRANSLATOR_APIKEY etc).
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")
	viper.SetEnvPrefix("lingua")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Port returns the listen address, defaulting to :8080.
func (c *Config) ListenAddr() string {
	port := c.App.Port
	if port == "" {
		return ":8080"
	}
	if port[0] != ':' {
		port = ":" + port
	}
	return port
}

func (c *Config) TranslatorTimeout() time.Duration {
	if c.Translator.TimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(c.Translator.TimeoutSeconds) * time.Second
}

func (c *Config) JwtTTL() time.Duration {
	if c.Jwt.ExpireHours <= 0 {
		return 72 * time.Hour
	}
	return time.Duration(c.Jwt.ExpireHours) * time.Hour
}
