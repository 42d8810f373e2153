package livetest

import (
	"os"
	"strings"
)

// LiveTestingSkipped is the log message when live testing is skipped
const LiveTestingSkipped = "Live testing skipped for %s exchange"

// Environment variables read by live tests
const (
	EnvBaseURL   = "BINANCE_BASE_URL"
	EnvAPIKey    = "BINANCE_API_KEY"
	EnvSecretKey = "BINANCE_SECRET_KEY"
	EnvSkip      = "BINANCE_SKIP_LIVE_TESTS"
)

// Credentials holds the live test settings read from the environment
type Credentials struct {
	BaseURL   string
	APIKey    string
	SecretKey string
}

// CanSign reports whether signed endpoints can be exercised
func (c Credentials) CanSign() bool {
	return c.APIKey != "" && c.SecretKey != ""
}

// FromEnv reads the live test settings from the environment
func FromEnv() Credentials {
	return Credentials{
		BaseURL:   strings.TrimSpace(os.Getenv(EnvBaseURL)),
		APIKey:    strings.TrimSpace(os.Getenv(EnvAPIKey)),
		SecretKey: strings.TrimSpace(os.Getenv(EnvSecretKey)),
	}
}

// ShouldSkip returns true when CI should avoid live endpoint testing
func ShouldSkip() bool {
	return envIsTrue(EnvSkip)
}

func envIsTrue(name string) bool {
	value := strings.TrimSpace(os.Getenv(name))
	return strings.EqualFold(value, "true") || value == "1"
}
