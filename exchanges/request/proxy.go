package request

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"
)

const proxyTLSTimeout = 15 * time.Second

var (
	errNoProxyURL          = errors.New("no proxy URL supplied")
	errTransportNotSet     = errors.New("transport not set, cannot set proxy")
	errUnsupportedProxy    = errors.New("unsupported proxy scheme")
	errDialerNotContextual = errors.New("proxy dialer does not support contexts")
)

// SetProxy sets a proxy address on the client transport. http and https
// proxies use the standard CONNECT proxy, socks5 proxies dial through
// golang.org/x/net/proxy.
func (r *Requester) SetProxy(p *url.URL) error {
	if p == nil || p.String() == "" {
		return errNoProxyURL
	}

	t, ok := r.HTTPClient.Transport.(*http.Transport)
	if !ok {
		return errTransportNotSet
	}

	switch p.Scheme {
	case "http", "https":
		t.Proxy = http.ProxyURL(p)
	case "socks5", "socks5h":
		d, err := proxy.FromURL(p, &net.Dialer{Timeout: proxyTLSTimeout})
		if err != nil {
			return err
		}
		cd, ok := d.(proxy.ContextDialer)
		if !ok {
			return errDialerNotContextual
		}
		t.Proxy = nil
		t.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			return cd.DialContext(ctx, network, addr)
		}
	default:
		return fmt.Errorf("%w: %q", errUnsupportedProxy, p.Scheme)
	}
	t.TLSHandshakeTimeout = proxyTLSTimeout
	return nil
}

// NewHTTPClient returns an http.Client with its own transport so that proxy
// settings never leak into http.DefaultTransport
func NewHTTPClient() *http.Client {
	return &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}
}
