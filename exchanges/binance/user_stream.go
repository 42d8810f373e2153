package binance

import (
	"net/http"

	"github.com/thrasher-corp/gobinance/exchanges/binance/params"
)

var (
	listenKeySchema = params.NewSchema(stringField("listenKey", true))

	spotUserStream = userStreamRoutes{
		start:     Descriptor{Method: http.MethodPost, Path: "/api/v3/userDataStream", Security: SecurityUserStream, Weight: 2, Schema: params.NewSchema()},
		keepAlive: Descriptor{Method: http.MethodPut, Path: "/api/v3/userDataStream", Security: SecurityUserStream, Weight: 2, Schema: listenKeySchema},
		close:     Descriptor{Method: http.MethodDelete, Path: "/api/v3/userDataStream", Security: SecurityUserStream, Weight: 2, Schema: listenKeySchema},
	}
	marginUserStream = userStreamRoutes{
		start:     Descriptor{Method: http.MethodPost, Path: "/sapi/v1/userDataStream", Security: SecurityUserStream, Weight: 1, Schema: params.NewSchema()},
		keepAlive: Descriptor{Method: http.MethodPut, Path: "/sapi/v1/userDataStream", Security: SecurityUserStream, Weight: 1, Schema: listenKeySchema},
		close:     Descriptor{Method: http.MethodDelete, Path: "/sapi/v1/userDataStream", Security: SecurityUserStream, Weight: 1, Schema: listenKeySchema},
	}
	// futures listen keys are bound to the API key and take no parameters
	futuresUserStream = userStreamRoutes{
		start:     Descriptor{Method: http.MethodPost, Path: "/fapi/v1/listenKey", Security: SecurityUserStream, Weight: 1, Host: HostFutures, Schema: params.NewSchema()},
		keepAlive: Descriptor{Method: http.MethodPut, Path: "/fapi/v1/listenKey", Security: SecurityUserStream, Weight: 1, Host: HostFutures, Schema: params.NewSchema()},
		close:     Descriptor{Method: http.MethodDelete, Path: "/fapi/v1/listenKey", Security: SecurityUserStream, Weight: 1, Host: HostFutures, Schema: params.NewSchema()},
	}
)

type userStreamRoutes struct {
	start, keepAlive, close Descriptor
}

// UserStream manages the listen key of a user data stream. Streaming itself
// is out of scope; the key is handed to a websocket client.
type UserStream struct {
	c      *Client
	routes *userStreamRoutes
}

// Start creates a listen key, or returns the active one
func (u UserStream) Start() *Endpoint[ListenKey] {
	return newEndpoint[ListenKey](u.c, &u.routes.start)
}

// KeepAlive extends the validity of listenKey by 60 minutes
func (u UserStream) KeepAlive(listenKey string) *Endpoint[Empty] {
	return newListenKeyEndpoint(u.c, &u.routes.keepAlive, listenKey)
}

// Close invalidates listenKey
func (u UserStream) Close(listenKey string) *Endpoint[Empty] {
	return newListenKeyEndpoint(u.c, &u.routes.close, listenKey)
}

func newListenKeyEndpoint(c *Client, d *Descriptor, listenKey string) *Endpoint[Empty] {
	e := newEndpoint[Empty](c, d)
	if _, ok := d.Schema.Field("listenKey"); ok {
		e.params.SetString("listenKey", listenKey)
	}
	return e
}
