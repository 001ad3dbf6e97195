// Package config resolves runtime settings.
//
// Layering, lowest to highest precedence:
//  1. built-in defaults
//  2. optional YAML file (explicit path, or $TILES_CONFIG)
//  3. .env in the working directory (never overrides real environment)
//  4. environment variables
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the server and the terminal client.
type Config struct {
	Port          string `yaml:"port"`
	LogLevel      string `yaml:"logLevel"`
	LogFile       string `yaml:"logFile"` // terminal client only; empty discards logs
	ClientOrigin  string `yaml:"clientOrigin"`
	StoreDSN      string `yaml:"storeDSN"` // "" or "memory" for in-memory sessions
	SessionSecret string `yaml:"sessionSecret"`
	CookieName    string `yaml:"cookieName"`
	AnswersFile   string `yaml:"answersFile"`
	// Daily serves one answer per UTC day. Restart then replays the same
	// word until the date changes instead of drawing a new one.
	Daily         bool   `yaml:"daily"`
	DailySalt     string `yaml:"dailySalt"`
	Env           string `yaml:"env"`
}

// DevSecret is the session secret used when none is configured.
const DevSecret = "dev_secret_change_me"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:          "5175",
		LogLevel:      "info",
		ClientOrigin:  "http://localhost:5173",
		StoreDSN:      "memory",
		SessionSecret: DevSecret,
		CookieName:    "tiles_session",
		DailySalt:     "local_dev_salt",
		Env:           "development",
	}
}

// Load resolves the configuration. path may be empty.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("TILES_CONFIG")
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	_ = godotenv.Load()
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Production reports whether the app runs in production mode.
func (c Config) Production() bool { return c.Env == "production" }

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setStr(&cfg.Port, "PORT")
	setStr(&cfg.LogLevel, "LOG_LEVEL")
	setStr(&cfg.LogFile, "LOG_FILE")
	setStr(&cfg.ClientOrigin, "CLIENT_ORIGIN")
	setStr(&cfg.StoreDSN, "STORE_DSN")
	setStr(&cfg.SessionSecret, "SESSION_SECRET")
	setStr(&cfg.CookieName, "COOKIE_NAME")
	setStr(&cfg.AnswersFile, "WORDS_ANSWERS_FILE")
	setStr(&cfg.DailySalt, "DAILY_SALT")
	setStr(&cfg.Env, "APP_ENV")

	if v := os.Getenv("DAILY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DAILY=%q: %w", v, err)
		}
		cfg.Daily = b
	}
	return nil
}

// setStr overwrites *dst with $key when it is set and non-empty.
func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ErrInsecureSecret is returned by Validate for production configs still
// using the development session secret.
var ErrInsecureSecret = errors.New("config: SESSION_SECRET must be set in production")

// Validate checks settings that would be unsafe to run with.
func (c Config) Validate() error {
	if c.Production() && (c.SessionSecret == "" || c.SessionSecret == DevSecret) {
		return ErrInsecureSecret
	}
	if c.CookieName == "" {
		return errors.New("config: cookie name is empty")
	}
	return nil
}
