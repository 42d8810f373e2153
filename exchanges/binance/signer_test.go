package binance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/gobinance/common/clock"
	"github.com/thrasher-corp/gobinance/exchanges/binance/params"
)

func fixtureQuery() params.Query {
	return params.Query{
		{Name: "symbol", Value: "LTCBTC"},
		{Name: "side", Value: "BUY"},
		{Name: "type", Value: "LIMIT"},
		{Name: "timeInForce", Value: "GTC"},
		{Name: "quantity", Value: "1"},
		{Name: "price", Value: "0.1"},
		{Name: "recvWindow", Value: "5000"},
	}
}

func TestSign(t *testing.T) {
	t.Parallel()
	s := signer{creds: NewCredentials(testAPIKey, testSecret), clock: clock.NewFrozen(testTimestamp)}

	q := fixtureQuery()
	payload, h, err := s.sign(SecuritySigned, q)
	require.NoError(t, err)
	assert.Equal(t, fixtureQuery().Encode()+"&timestamp=1499827319559&signature="+testSignature, payload)
	assert.Equal(t, testAPIKey, h.Get(headerAPIKey))
	assert.Equal(t, fixtureQuery(), q, "signing must not modify the caller's query")

	again, _, err := s.sign(SecuritySigned, q)
	require.NoError(t, err)
	assert.Equal(t, payload, again, "same inputs must sign identically")

	payload, h, err = s.sign(SecurityNone, q)
	require.NoError(t, err)
	assert.Equal(t, q.Encode(), payload)
	assert.Nil(t, h)

	payload, h, err = s.sign(SecurityAPIKey, nil)
	require.NoError(t, err)
	assert.Empty(t, payload)
	assert.Equal(t, testAPIKey, h.Get(headerAPIKey))
	assert.Equal(t, []string{testAPIKey}, h["X-Mbx-Apikey"], "header key must be canonical")

	_, _, err = s.sign(Security(99), q)
	assert.ErrorIs(t, err, errUnknownSecurity)
}

func TestSignClientRecvWindow(t *testing.T) {
	t.Parallel()
	s := signer{creds: NewCredentials(testAPIKey, testSecret), clock: clock.NewFrozen(testTimestamp), recvWindow: 6000}

	payload, _, err := s.sign(SecuritySigned, params.Query{{Name: "symbol", Value: "LTCBTC"}})
	require.NoError(t, err)
	assert.Regexp(t, `^symbol=LTCBTC&timestamp=1499827319559&recvWindow=6000&signature=[0-9a-f]{64}$`, payload)

	payload, _, err = s.sign(SecuritySigned, fixtureQuery())
	require.NoError(t, err)
	assert.Contains(t, payload, "recvWindow=5000&timestamp=1499827319559&signature="+testSignature, "a request recvWindow takes precedence")
}

func TestSignWithoutCredentials(t *testing.T) {
	t.Parallel()
	for name, creds := range map[string]Credentials{
		"none":     NewCredentials("", ""),
		"key only": NewCredentials(testAPIKey, ""),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := signer{creds: creds, clock: clock.NewFrozen(testTimestamp)}
			_, _, err := s.sign(SecuritySigned, nil)
			assert.ErrorIs(t, err, ErrCredentialsRequired)
		})
	}
	s := signer{clock: clock.NewFrozen(testTimestamp)}
	_, _, err := s.sign(SecurityUserStream, nil)
	assert.ErrorIs(t, err, ErrCredentialsRequired)
}
