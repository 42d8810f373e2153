package binance

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/thrasher-corp/gobinance/common/clock"
	"github.com/thrasher-corp/gobinance/common/crypto"
	"github.com/thrasher-corp/gobinance/exchanges/binance/params"
)

const (
	headerAPIKey      = "X-MBX-APIKEY"
	headerContentType = "Content-Type"
	contentTypeForm   = "application/x-www-form-urlencoded"

	paramTimestamp  = "timestamp"
	paramRecvWindow = "recvWindow"
	paramSignature  = "signature"
)

// signer authenticates canonical queries according to the endpoint security
// level
type signer struct {
	creds      Credentials
	clock      clock.Clock
	recvWindow int64
}

// sign returns the encoded canonical string and the headers required by sec.
// Signed queries gain timestamp, the client recvWindow when the caller did
// not set one, and finally the signature over everything before it.
func (s *signer) sign(sec Security, q params.Query) (string, http.Header, error) {
	switch sec {
	case SecurityNone:
		return q.Encode(), nil, nil
	case SecurityAPIKey, SecurityUserStream:
		if !s.creds.HasAPIKey() {
			return "", nil, ErrCredentialsRequired
		}
		return q.Encode(), s.apiKeyHeader(), nil
	case SecuritySigned:
		if !s.creds.CanSign() {
			return "", nil, ErrCredentialsRequired
		}
		signed := slices.Clip(q).Add(paramTimestamp, strconv.FormatInt(s.clock.UnixMilli(), 10))
		if s.recvWindow > 0 && !q.Has(paramRecvWindow) {
			signed = signed.Add(paramRecvWindow, strconv.FormatInt(s.recvWindow, 10))
		}
		payload := signed.Encode()
		sig, err := crypto.HexHMACSHA256([]byte(payload), []byte(s.creds.secret))
		if err != nil {
			return "", nil, err
		}
		return payload + "&" + paramSignature + "=" + sig, s.apiKeyHeader(), nil
	}
	return "", nil, errUnknownSecurity
}

func (s *signer) apiKeyHeader() http.Header {
	h := make(http.Header)
	h.Set(headerAPIKey, s.creds.apiKey)
	return h
}
