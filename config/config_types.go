package config

import (
	"errors"
	"time"
)

// Constants declared here are file names, environment keys and defaults
const (
	File           = "binance.yaml"
	DefaultEnvFile = ".env"
	EnvPrefix      = "BINANCE"

	defaultTimeout   = 10 * time.Second
	defaultLogLevel  = "INFO|WARN|ERROR"
	defaultLogOutput = "stderr"
	maxRecvWindow    = 60000
)

var (
	errInvalidRecvWindow = errors.New("recv_window must be between 0 and 60000 milliseconds")
	errInvalidTimeout    = errors.New("timeout must not be negative")
	errNoSecretKey       = errors.New("api_key is set without secret_key")
)

// Config is the on disk and environment configuration of the client and CLI
type Config struct {
	BaseURL        string        `mapstructure:"base_url"`
	FuturesBaseURL string        `mapstructure:"futures_base_url"`
	APIKey         string        `mapstructure:"api_key"`
	SecretKey      string        `mapstructure:"secret_key"`
	RecvWindow     int64         `mapstructure:"recv_window"`
	Timeout        time.Duration `mapstructure:"timeout"`
	Proxy          string        `mapstructure:"proxy"`
	Verbose        bool          `mapstructure:"verbose"`
	Logging        Logging       `mapstructure:"logging"`
}

// Logging holds the log levels and outputs, for example "DEBUG|INFO" and
// "stdout|stderr"
type Logging struct {
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
}
