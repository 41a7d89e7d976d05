package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "http://localhost:8080"
	defaultEnv           = "local"
	defaultConfigDir     = ".syncboard"
	tokenFileName        = "token"
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	ServerAddress string `mapstructure:"server_address"`
	ConfigDir     string `mapstructure:"config_dir"`
	TokenPath     string `mapstructure:"token_path"`
}

// MustLoad reads the client configuration from the environment with
// sensible defaults. Nothing here is fatal except an unresolvable home
// directory when no explicit config dir is given.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server_address", defaultServerAddress)

	cfg := &Config{
		Env:           v.GetString("app_env"),
		ServerAddress: v.GetString("server_address"),
		ConfigDir:     v.GetString("config_dir"),
		TokenPath:     v.GetString("token_path"),
	}

	if cfg.ConfigDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.ConfigDir = filepath.Join(home, defaultConfigDir)
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = filepath.Join(cfg.ConfigDir, tokenFileName)
	}

	return cfg
}
