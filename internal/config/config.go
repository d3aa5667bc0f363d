// Package config loads client and server settings from flags, environment
// variables (prefix GOPHSAVE_) and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "GOPHSAVE"

// Ключи клиента
const (
	KeyOrigin          = "origin"
	KeyHostURL         = "host.url"
	KeyHostToken       = "host.token"
	KeySlot            = "slot"
	KeyLabel           = "label"
	KeyDB              = "db"
	KeyState           = "state"
	KeyTimeout         = "timeout"
	KeySettleDelay     = "settle_delay"
	KeyMaxRetries      = "max_retries"
	KeyPlatform        = "platform"
	KeyExprData        = "expressions.data"
	KeyExprManifest    = "expressions.manifest"
	KeyExprAutorun     = "expressions.autorun"
	KeyLogLevel        = "log.level"
	KeyLogFile         = "log.file"
	KeyServerListen    = "listen"
	KeyServerJWTSecret = "jwt_secret"
	KeyServerTokenTTL  = "token_ttl"
	KeyRateRequests    = "rate_limit.requests"
	KeyRateWindow      = "rate_limit.window"
)

var (
	// ErrInvalidConfig is returned for settings that fail validation
	ErrInvalidConfig = errors.New("invalid config")
)

// Log holds logging settings shared by both binaries
type Log struct {
	Level string
	File  string // пусто: писать в stderr
}

// Expressions holds the well-known widget expression ids
type Expressions struct {
	Data     string
	Manifest string
	Autorun  string
}

// Client holds the widget runner settings
type Client struct {
	Expressions Expressions
	Log         Log
	Origin      string
	HostURL     string
	HostToken   string
	Label       string
	DB          string
	State       string
	Slot        int
	MaxRetries  int
	Timeout     time.Duration
	SettleDelay time.Duration
	Platform    bool
}

// Server holds the cloud-save host settings
type Server struct {
	Log       Log
	Listen    string
	DB        string
	JWTSecret string
	Origin    string
	TokenTTL  time.Duration
	// RateWindow и RateRequests ограничивают подключения с одного IP, 0 отключает
	RateWindow   time.Duration
	RateRequests int
}

// New creates a viper instance reading GOPHSAVE_* variables and, if path is
// not empty, the given config file.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return v, nil
}

// SetClientDefaults registers the client defaults
func SetClientDefaults(v *viper.Viper) {
	v.SetDefault(KeyOrigin, "https://galaxy.click")
	v.SetDefault(KeyHostURL, "")
	v.SetDefault(KeyHostToken, "")
	v.SetDefault(KeySlot, 0)
	v.SetDefault(KeyLabel, "Cloud Save")
	v.SetDefault(KeyDB, "gophsave-client.db")
	v.SetDefault(KeyState, "state.json")
	v.SetDefault(KeyTimeout, time.Second)
	v.SetDefault(KeySettleDelay, 250*time.Millisecond)
	v.SetDefault(KeyMaxRetries, 5)
	v.SetDefault(KeyPlatform, false)
	v.SetDefault(KeyExprData, "583")
	v.SetDefault(KeyExprManifest, "585")
	v.SetDefault(KeyExprAutorun, "544")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
}

// SetServerDefaults registers the server defaults
func SetServerDefaults(v *viper.Viper) {
	v.SetDefault(KeyServerListen, ":8080")
	v.SetDefault(KeyDB, "gophsave-server.db")
	v.SetDefault(KeyServerJWTSecret, "")
	v.SetDefault(KeyServerTokenTTL, 30*24*time.Hour)
	v.SetDefault(KeyRateRequests, 60)
	v.SetDefault(KeyRateWindow, time.Minute)
	v.SetDefault(KeyOrigin, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
}

// LoadClient reads and validates the client settings
func LoadClient(v *viper.Viper) (*Client, error) {
	cfg := &Client{
		Origin:      v.GetString(KeyOrigin),
		HostURL:     v.GetString(KeyHostURL),
		HostToken:   v.GetString(KeyHostToken),
		Slot:        v.GetInt(KeySlot),
		Label:       v.GetString(KeyLabel),
		DB:          v.GetString(KeyDB),
		State:       v.GetString(KeyState),
		Timeout:     v.GetDuration(KeyTimeout),
		SettleDelay: v.GetDuration(KeySettleDelay),
		MaxRetries:  v.GetInt(KeyMaxRetries),
		Platform:    v.GetBool(KeyPlatform),
		Expressions: Expressions{
			Data:     v.GetString(KeyExprData),
			Manifest: v.GetString(KeyExprManifest),
			Autorun:  v.GetString(KeyExprAutorun),
		},
		Log: Log{
			Level: v.GetString(KeyLogLevel),
			File:  v.GetString(KeyLogFile),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the client settings
func (c *Client) Validate() error {
	switch {
	case c.Slot < 0:
		return fmt.Errorf("%w: slot must not be negative", ErrInvalidConfig)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	case c.SettleDelay < 0:
		return fmt.Errorf("%w: settle_delay must not be negative", ErrInvalidConfig)
	case c.MaxRetries < 0:
		return fmt.Errorf("%w: max_retries must not be negative", ErrInvalidConfig)
	case c.DB == "":
		return fmt.Errorf("%w: db path is required", ErrInvalidConfig)
	case c.State == "":
		return fmt.Errorf("%w: state document is required", ErrInvalidConfig)
	case c.Expressions.Data == "" || c.Expressions.Manifest == "":
		return fmt.Errorf("%w: data and manifest expression ids are required", ErrInvalidConfig)
	case c.HostURL != "" && c.Origin == "":
		return fmt.Errorf("%w: origin is required when host.url is set", ErrInvalidConfig)
	}
	return nil
}

// LoadServer reads and validates the server settings
func LoadServer(v *viper.Viper) (*Server, error) {
	cfg := &Server{
		Listen:    v.GetString(KeyServerListen),
		DB:        v.GetString(KeyDB),
		JWTSecret: v.GetString(KeyServerJWTSecret),
		TokenTTL:  v.GetDuration(KeyServerTokenTTL),
		Origin:    v.GetString(KeyOrigin),
		Log: Log{
			Level: v.GetString(KeyLogLevel),
			File:  v.GetString(KeyLogFile),
		},
		RateRequests: v.GetInt(KeyRateRequests),
		RateWindow:   v.GetDuration(KeyRateWindow),
	}

	switch {
	case cfg.RateRequests < 0:
		return nil, fmt.Errorf("%w: rate_limit.requests must not be negative", ErrInvalidConfig)
	case cfg.RateRequests > 0 && cfg.RateWindow <= 0:
		return nil, fmt.Errorf("%w: rate_limit.window must be positive", ErrInvalidConfig)
	case cfg.Listen == "":
		return nil, fmt.Errorf("%w: listen address is required", ErrInvalidConfig)
	case cfg.DB == "":
		return nil, fmt.Errorf("%w: db path is required", ErrInvalidConfig)
	case len(cfg.JWTSecret) < 32:
		return nil, fmt.Errorf("%w: jwt_secret must be at least 32 bytes", ErrInvalidConfig)
	case cfg.TokenTTL <= 0:
		return nil, fmt.Errorf("%w: token_ttl must be positive", ErrInvalidConfig)
	}
	return cfg, nil
}
