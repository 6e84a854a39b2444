package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"

	"github.com/MikhailRaia/link-share/internal/shortener"
)

// Clipboard modes.
const (
	ClipboardSystem = "system"
	ClipboardNone   = "none"
)

type Config struct {
	ServerAddress     string
	PageURL           string
	ShortenerEndpoint string
	Username          string
	APIKey            string
	Buttons           int
	Clipboard         string
	LogLevel          string
	ConfigPath        string
}

// NewConfig builds the configuration from defaults, an optional config file,
// command line flags and environment variables, in increasing priority.
func NewConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:     ":8080",
		ShortenerEndpoint: shortener.DefaultEndpoint,
		Buttons:           1,
		Clipboard:         ClipboardSystem,
		LogLevel:          "info",
	}

	flags := *cfg

	flag.StringVar(&flags.ServerAddress, "a", cfg.ServerAddress, "HTTP server address (e.g. localhost:8888)")
	flag.StringVar(&flags.PageURL, "u", cfg.PageURL, "Page URL to share")
	flag.StringVar(&flags.ShortenerEndpoint, "e", cfg.ShortenerEndpoint, "Shortening service endpoint")
	flag.StringVar(&flags.Username, "l", cfg.Username, "Shortening service login")
	flag.StringVar(&flags.APIKey, "k", cfg.APIKey, "Shortening service API key")
	flag.IntVar(&flags.Buttons, "n", cfg.Buttons, "Number of share buttons")
	flag.StringVar(&flags.Clipboard, "clipboard", cfg.Clipboard, "Clipboard mode: system or none")
	flag.StringVar(&flags.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&flags.ConfigPath, "c", "", "Path to JSON or YAML config file")

	flag.Parse()

	configPath := flags.ConfigPath
	if envConfig := os.Getenv("CONFIG"); envConfig != "" {
		configPath = envConfig
	}

	if configPath != "" {
		if err := cfg.loadFile(configPath); err != nil {
			return nil, err
		}
		cfg.ConfigPath = configPath
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.ServerAddress = flags.ServerAddress
		case "u":
			cfg.PageURL = flags.PageURL
		case "e":
			cfg.ShortenerEndpoint = flags.ShortenerEndpoint
		case "l":
			cfg.Username = flags.Username
		case "k":
			cfg.APIKey = flags.APIKey
		case "n":
			cfg.Buttons = flags.Buttons
		case "clipboard":
			cfg.Clipboard = flags.Clipboard
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		}
	})

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	setString := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	setString("server_address", &c.ServerAddress)
	setString("page_url", &c.PageURL)
	setString("shortener_endpoint", &c.ShortenerEndpoint)
	setString("share_username", &c.Username)
	setString("share_key", &c.APIKey)
	setString("clipboard", &c.Clipboard)
	setString("log_level", &c.LogLevel)

	if v.IsSet("buttons") {
		c.Buttons = v.GetInt("buttons")
	}

	return nil
}

func (c *Config) loadEnv() error {
	envStrings := map[string]*string{
		"SERVER_ADDRESS":     &c.ServerAddress,
		"PAGE_URL":           &c.PageURL,
		"SHORTENER_ENDPOINT": &c.ShortenerEndpoint,
		"SHARE_USERNAME":     &c.Username,
		"SHARE_KEY":          &c.APIKey,
		"CLIPBOARD":          &c.Clipboard,
		"LOG_LEVEL":          &c.LogLevel,
	}

	for name, dst := range envStrings {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("SHARE_BUTTONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse SHARE_BUTTONS: %w", err)
		}
		c.Buttons = n
	}

	return nil
}

// Credentials returns the shortening credentials, or nil when either part is
// missing and shortening is disabled.
func (c *Config) Credentials() *shortener.Credentials {
	if c.Username == "" || c.APIKey == "" {
		return nil
	}
	return &shortener.Credentials{
		Login:  c.Username,
		APIKey: c.APIKey,
	}
}

// Validate checks the settings every front-end needs.
func (c *Config) Validate() error {
	if c.PageURL == "" {
		return errors.New("page URL is required")
	}
	if c.Buttons < 1 {
		return fmt.Errorf("at least one share button is required, got %d", c.Buttons)
	}
	if c.Clipboard != ClipboardSystem && c.Clipboard != ClipboardNone {
		return fmt.Errorf("unknown clipboard mode %q", c.Clipboard)
	}
	return nil
}
