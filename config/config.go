// Package config loads client settings from an optional config file, a .env
// file and BINANCE_* environment variables, in increasing precedence
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/thrasher-corp/gobinance/exchanges/binance"
	"github.com/thrasher-corp/gobinance/log"
)

var keys = []string{
	"base_url",
	"futures_base_url",
	"api_key",
	"secret_key",
	"recv_window",
	"timeout",
	"proxy",
	"verbose",
	"logging.level",
	"logging.output",
}

// Load reads configFile when set, loads envFile into the environment when it
// exists and binds the BINANCE_* variables on top. Variables already present
// in the environment are not overwritten by envFile.
func Load(configFile, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.output", defaultLogOutput)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
		log.Debugf(log.ConfigMgr, "Using config file %s", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	c.trim()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) trim() {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.FuturesBaseURL = strings.TrimSpace(c.FuturesBaseURL)
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.SecretKey = strings.TrimSpace(c.SecretKey)
	c.Proxy = strings.TrimSpace(c.Proxy)
}

// Validate checks the values that can be checked without a client
func (c *Config) Validate() error {
	var errs error
	if c.RecvWindow < 0 || c.RecvWindow > maxRecvWindow {
		errs = errors.Join(errs, fmt.Errorf("%w: %d", errInvalidRecvWindow, c.RecvWindow))
	}
	if c.Timeout < 0 {
		errs = errors.Join(errs, errInvalidTimeout)
	}
	if c.APIKey != "" && c.SecretKey == "" {
		log.Warnf(log.ConfigMgr, "%v, only API key endpoints are usable", errNoSecretKey)
	}
	return errs
}

// ClientConfig returns the binance client settings
func (c *Config) ClientConfig() binance.Config {
	return binance.Config{
		BaseURL:        c.BaseURL,
		FuturesBaseURL: c.FuturesBaseURL,
		APIKey:         c.APIKey,
		SecretKey:      c.SecretKey,
		RecvWindow:     c.RecvWindow,
		Timeout:        c.Timeout,
		Verbose:        c.Verbose,
		Proxy:          c.Proxy,
	}
}

// LoggerConfig returns the logger settings. Verbose adds the DEBUG level.
func (c *Config) LoggerConfig() log.Config {
	lc := log.GenDefaultSettings()
	lc.Level = c.Logging.Level
	lc.Output = c.Logging.Output
	if c.Verbose && !strings.Contains(strings.ToUpper(lc.Level), "DEBUG") {
		lc.Level += "|DEBUG"
	}
	return lc
}

// HasCredentials reports whether signed endpoints can be used
func (c *Config) HasCredentials() bool {
	return c.APIKey != "" && c.SecretKey != ""
}
