package binance

const redacted = "<redacted>"

// Credentials holds the API key and HMAC secret used to authenticate
// requests. The values are never rendered by fmt.
type Credentials struct {
	apiKey string
	secret string
}

// NewCredentials returns an immutable credential pair
func NewCredentials(apiKey, secret string) Credentials {
	return Credentials{apiKey: apiKey, secret: secret}
}

// HasAPIKey reports whether an API key is configured
func (c Credentials) HasAPIKey() bool {
	return c.apiKey != ""
}

// CanSign reports whether both the API key and secret are configured
func (c Credentials) CanSign() bool {
	return c.apiKey != "" && c.secret != ""
}

// String implements fmt.Stringer without exposing either value
func (c Credentials) String() string {
	return "Credentials{APIKey: " + mask(c.apiKey) + ", Secret: " + mask(c.secret) + "}"
}

// GoString implements fmt.GoStringer without exposing either value
func (c Credentials) GoString() string {
	return "binance." + c.String()
}

func mask(s string) string {
	if s == "" {
		return `""`
	}
	return redacted
}
