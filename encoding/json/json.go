package json

import "encoding/json"

// Implementations of the JSON encoding used across the module. Every package
// decodes and encodes through these so that the codec can be swapped in one
// place.
var (
	Marshal       = json.Marshal
	Unmarshal     = json.Unmarshal
	MarshalIndent = json.MarshalIndent
	NewEncoder    = json.NewEncoder
	NewDecoder    = json.NewDecoder
	Valid         = json.Valid
)

type (
	// RawMessage is a raw encoded JSON value
	RawMessage = json.RawMessage
	// Number is a JSON number literal
	Number = json.Number
	// UnmarshalTypeError describes a JSON value that could not be decoded
	// into a Go type
	UnmarshalTypeError = json.UnmarshalTypeError
	// SyntaxError describes malformed JSON input
	SyntaxError = json.SyntaxError
)
