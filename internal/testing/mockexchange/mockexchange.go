// Package mockexchange provides a routed HTTP server that stands in for the
// exchange in tests, recording every request it receives
package mockexchange

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gorilla/mux"
)

// Request is a recorded inbound request
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Params returns the request parameters, read from the body for form
// encoded requests and from the URL otherwise
func (r *Request) Params() (url.Values, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		return url.ParseQuery(string(r.Body))
	}
	return url.ParseQuery(r.RawQuery)
}

// Payload returns the raw canonical string sent, body first
func (r *Request) Payload() string {
	if len(r.Body) > 0 {
		return string(r.Body)
	}
	return r.RawQuery
}

// Response is a canned reply
type Response struct {
	Status int
	Header map[string]string
	Body   string
}

// JSON returns a response with a JSON body and header name value pairs
func JSON(status int, body string, headerPairs ...string) Response {
	h := map[string]string{"Content-Type": "application/json;charset=UTF-8"}
	for i := 0; i+1 < len(headerPairs); i += 2 {
		h[headerPairs[i]] = headerPairs[i+1]
	}
	return Response{Status: status, Header: h, Body: body}
}

// Server is a mock exchange
type Server struct {
	*httptest.Server
	router *mux.Router

	m        sync.Mutex
	requests []Request
}

// New starts a mock exchange which is closed when the test ends
func New(tb testing.TB) *Server {
	tb.Helper()
	s := &Server{router: mux.NewRouter()}
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	tb.Cleanup(s.Close)
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	s.m.Lock()
	s.requests = append(s.requests, Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	s.m.Unlock()
	s.router.ServeHTTP(w, r)
}

// Handle replies to method and path with resp
func (s *Server) Handle(method, path string, resp Response) {
	s.HandleFunc(method, path, func(w http.ResponseWriter, _ *http.Request) {
		for k, v := range resp.Header {
			w.Header().Set(k, v)
		}
		status := resp.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, resp.Body)
	})
}

// HandleFunc routes method and path to h
func (s *Server) HandleFunc(method, path string, h http.HandlerFunc) {
	s.router.Methods(method).Path(path).HandlerFunc(h)
}

// Requests returns a copy of the recorded requests in arrival order
func (s *Server) Requests() []Request {
	s.m.Lock()
	defer s.m.Unlock()
	return slices.Clone(s.requests)
}

// Count returns the number of requests received
func (s *Server) Count() int {
	s.m.Lock()
	defer s.m.Unlock()
	return len(s.requests)
}

// Last returns the most recent request
func (s *Server) Last() (Request, bool) {
	s.m.Lock()
	defer s.m.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Spy is an http.RoundTripper that counts the requests passed to the next
// transport. It is used to prove that no network activity took place.
type Spy struct {
	next  http.RoundTripper
	calls atomic.Int64
}

// NewSpy wraps next, or http.DefaultTransport when nil
func NewSpy(next http.RoundTripper) *Spy {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Spy{next: next}
}

// RoundTrip implements http.RoundTripper
func (s *Spy) RoundTrip(r *http.Request) (*http.Response, error) {
	s.calls.Add(1)
	return s.next.RoundTrip(r)
}

// Calls returns the number of round trips attempted
func (s *Spy) Calls() int64 {
	return s.calls.Load()
}

// Client returns an http.Client using the spy
func (s *Spy) Client() *http.Client {
	return &http.Client{Transport: s}
}

// MatchParams matches request parameters, only checking the presence of
// values that change per request such as timestamp and signature
func MatchParams(got, want url.Values) bool {
	if len(got) != len(want) {
		return false
	}
	for key, val := range want {
		g, ok := got[key]
		if !ok {
			return false
		}
		if key == "signature" || key == "timestamp" {
			continue
		}
		if strings.Join(g, ",") != strings.Join(val, ",") {
			return false
		}
	}
	return true
}
