package binance

import (
	"context"
	"net/http"

	"github.com/thrasher-corp/gobinance/exchanges/binance/params"
)

// Security is the authentication level of an endpoint
type Security uint8

// Security levels
const (
	SecurityNone Security = iota
	SecurityAPIKey
	SecuritySigned
	SecurityUserStream
)

func (s Security) String() string {
	switch s {
	case SecurityNone:
		return "NONE"
	case SecurityAPIKey:
		return "API_KEY"
	case SecuritySigned:
		return "SIGNED"
	case SecurityUserStream:
		return "USER_STREAM"
	}
	return "UNKNOWN"
}

// Host selects the base URL an endpoint is served from
type Host uint8

// Hosts
const (
	HostSpot Host = iota
	HostFutures
	hostCount
)

// Descriptor statically describes a single exchange route
type Descriptor struct {
	Method   string
	Path     string
	Security Security
	// Weight is the request weight charged against the IP or UID limit
	Weight int
	// OrderWeight is the order count charged, zero for non order routes
	OrderWeight int
	Host        Host
	Schema      *params.Schema
	// Weigh overrides Weight for routes whose cost depends on parameters
	Weigh func(*params.Record) int
}

func (d *Descriptor) weight(r *params.Record) int {
	if d.Weigh != nil {
		return d.Weigh(r)
	}
	return d.Weight
}

func (d *Descriptor) hasBody() bool {
	return d.Method == http.MethodPost || d.Method == http.MethodPut
}

// Endpoint is a single use request handle. Parameters are set through the
// typed wrappers and the request is executed by Do.
type Endpoint[T any] struct {
	client   *Client
	desc     *Descriptor
	params   *params.Record
	consumed bool
}

func newEndpoint[T any](c *Client, d *Descriptor) *Endpoint[T] {
	return &Endpoint[T]{client: c, desc: d, params: params.NewRecord(d.Schema)}
}

// Descriptor returns a copy of the route description
func (e *Endpoint[T]) Descriptor() Descriptor {
	return *e.desc
}

// RecvWindow sets the per request recvWindow in milliseconds on signed
// endpoints, overriding the client default
func (e *Endpoint[T]) RecvWindow(ms int64) *Endpoint[T] {
	e.params.SetInt(paramRecvWindow, ms)
	return e
}

// Query validates the parameters and returns the unsigned query string
func (e *Endpoint[T]) Query() (string, error) {
	q, err := e.params.Encode()
	if err != nil {
		return "", err
	}
	return q.Encode(), nil
}

// Do executes the request. It may be called once; later calls return
// ErrEndpointConsumed.
func (e *Endpoint[T]) Do(ctx context.Context) (T, error) {
	var resp T
	if e.consumed {
		return resp, ErrEndpointConsumed
	}
	e.consumed = true
	if err := e.client.execute(ctx, e.desc, e.params, &resp); err != nil {
		var zero T
		return zero, err
	}
	return resp, nil
}
