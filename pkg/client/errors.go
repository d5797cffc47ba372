package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidLanguage     = errors.New("language must be chinese or english")
	ErrInvalidTemperature  = errors.New("temperature must be between 0 and 1")
	// ErrStreamClosed means the connection ended before a done event.
	ErrStreamClosed = errors.New("stream closed before completion")
)

// APIError is a non-success response. Message is the backend's message, or
// a generic one when the body carried none.
type APIError struct {
	StatusCode int
	Message    string
	// Data is the raw data field of the envelope, if any.
	Data json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// ServerError is the message of a named error event sent by the backend.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return "generation failed: " + e.Message
}

// StreamError is passed to OnError. Partial holds the text accumulated
// before the failure.
type StreamError struct {
	Partial string
	Err     error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("stream error after %d bytes: %v", len(e.Partial), e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}
