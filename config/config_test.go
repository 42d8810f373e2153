package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every BINANCE_* variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		name := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(k, ".", "_"))
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load("", filepath.Join(t.TempDir(), DefaultEnvFile))
	require.NoError(t, err, "a missing .env file must not error")
	assert.Equal(t, defaultTimeout, c.Timeout)
	assert.Equal(t, defaultLogLevel, c.Logging.Level)
	assert.Equal(t, defaultLogOutput, c.Logging.Output)
	assert.Empty(t, c.BaseURL)
	assert.False(t, c.HasCredentials())
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, File, `
base_url: https://testnet.binance.vision
futures_base_url: https://testnet.binancefuture.com
api_key: file-key
secret_key: file-secret
recv_window: 5000
timeout: 3s
logging:
  level: WARN|ERROR
  output: stdout
`)
	c, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "https://testnet.binance.vision", c.BaseURL)
	assert.Equal(t, "https://testnet.binancefuture.com", c.FuturesBaseURL)
	assert.Equal(t, int64(5000), c.RecvWindow)
	assert.Equal(t, 3*time.Second, c.Timeout)
	assert.Equal(t, "WARN|ERROR", c.Logging.Level)
	assert.True(t, c.HasCredentials())

	t.Setenv("BINANCE_API_KEY", "env-key")
	t.Setenv("BINANCE_RECV_WINDOW", "10000")
	t.Setenv("BINANCE_LOGGING_OUTPUT", "stderr")
	c, err = Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "env-key", c.APIKey, "environment must override the file")
	assert.Equal(t, "file-secret", c.SecretKey)
	assert.Equal(t, int64(10000), c.RecvWindow)
	assert.Equal(t, "stderr", c.Logging.Output)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.Error(t, err, "an explicit config file must exist")
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Cleanup(func() {
		for _, k := range []string{"BINANCE_SECRET_KEY", "BINANCE_TIMEOUT", "BINANCE_VERBOSE"} {
			_ = os.Unsetenv(k)
		}
	})
	t.Setenv("BINANCE_API_KEY", "shell-key")
	envFile := writeFile(t, DefaultEnvFile, "BINANCE_API_KEY=dotenv-key\nBINANCE_SECRET_KEY=dotenv-secret\nBINANCE_TIMEOUT=1500ms\nBINANCE_VERBOSE=true\n")

	c, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "shell-key", c.APIKey, ".env must not override the shell environment")
	assert.Equal(t, "dotenv-secret", c.SecretKey)
	assert.Equal(t, 1500*time.Millisecond, c.Timeout)
	assert.True(t, c.Verbose)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	for name, tc := range map[string]struct {
		cfg Config
		err error
	}{
		"zero value":          {Config{}, nil},
		"max recv window":     {Config{RecvWindow: maxRecvWindow}, nil},
		"recv window too big": {Config{RecvWindow: maxRecvWindow + 1}, errInvalidRecvWindow},
		"negative recvWindow": {Config{RecvWindow: -5}, errInvalidRecvWindow},
		"negative timeout":    {Config{Timeout: -time.Second}, errInvalidTimeout},
		"key without secret":  {Config{APIKey: "key"}, nil},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("BINANCE_RECV_WINDOW", "70000")
	_, err := Load("", "")
	assert.ErrorIs(t, err, errInvalidRecvWindow)
}

func TestClientConfig(t *testing.T) {
	t.Parallel()
	c := Config{
		BaseURL:    "https://testnet.binance.vision",
		APIKey:     "k",
		SecretKey:  "s",
		RecvWindow: 5000,
		Timeout:    time.Second,
		Proxy:      "socks5://127.0.0.1:1080",
		Verbose:    true,
		Logging:    Logging{Level: "INFO", Output: "stdout"},
	}
	bc := c.ClientConfig()
	assert.Equal(t, c.BaseURL, bc.BaseURL)
	assert.Equal(t, c.RecvWindow, bc.RecvWindow)
	assert.Equal(t, c.Timeout, bc.Timeout)
	assert.Equal(t, c.Proxy, bc.Proxy)
	assert.True(t, bc.Verbose)

	lc := c.LoggerConfig()
	assert.Equal(t, "INFO|DEBUG", lc.Level)
	assert.Equal(t, "stdout", lc.Output)
	c.Verbose = false
	assert.Equal(t, "INFO", c.LoggerConfig().Level)
}
