package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress  = ":8080"
	defaultMigrations  = "migrations"
	defaultUsersFile   = "users.yaml"
	defaultTokenTTL    = 60 * time.Minute
	defaultGitHubRepo  = "facebook/react"
	defaultWeatherList = "London,New York,Tokyo,Sydney,Paris"
)

type Config struct {
	Env     string
	Server  server
	DB      db
	Auth    auth
	Logger  logger
	Sources sources
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type auth struct {
	Secret    string        `env:"SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL"`
	UsersFile string        `env:"USERS_FILE"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type sources struct {
	SaaSAPIURL        string   `env:"SAAS_API_URL"`
	StripeAPIKey      string   `env:"STRIPE_API_KEY"`
	GitHubToken       string   `env:"GITHUB_TOKEN"`
	GitHubRepo        string   `env:"GITHUB_REPO"`
	OpenWeatherAPIKey string   `env:"OPENWEATHER_API_KEY"`
	WeatherCities     []string `env:"WEATHER_CITIES"`
}

// Load reads configuration from the environment, with an optional .env
// overlay. SECRET has no default; an empty value is a startup error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	secret := viper.GetString("secret")
	if secret == "" {
		return nil, fmt.Errorf("SECRET must be set")
	}

	config := Config{
		Env: viper.GetString("app_env"),
		Server: server{
			RunAddress: withDefault(viper.GetString("run_address"), defaultRunAddress),
		},
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  withDefault(viper.GetString("migrations_path"), defaultMigrations),
		},
		Auth: auth{
			Secret:    secret,
			TokenTTL:  viper.GetDuration("token_ttl"),
			UsersFile: withDefault(viper.GetString("users_file"), defaultUsersFile),
		},
		Logger: logger{LogLevel: viper.GetString("log_level")},
		Sources: sources{
			SaaSAPIURL:        viper.GetString("saas_api_url"),
			StripeAPIKey:      viper.GetString("stripe_api_key"),
			GitHubToken:       viper.GetString("github_token"),
			GitHubRepo:        withDefault(viper.GetString("github_repo"), defaultGitHubRepo),
			OpenWeatherAPIKey: viper.GetString("openweather_api_key"),
			WeatherCities:     splitCities(withDefault(viper.GetString("weather_cities"), defaultWeatherList)),
		},
	}
	if config.Auth.TokenTTL <= 0 {
		config.Auth.TokenTTL = defaultTokenTTL
	}

	return &config, nil
}

// MustLoad is Load for main: any configuration error is fatal.
func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		log.Fatalln(err)
	}
	return config
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func splitCities(value string) []string {
	parts := strings.Split(value, ",")
	cities := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cities = append(cities, p)
		}
	}
	return cities
}
