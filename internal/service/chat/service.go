package chat

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultURL is the chat endpoint of the local reference server.
	DefaultURL = "http://127.0.0.1:8000/api/chat"

	// Greeting is the fixed message carried by every payload.
	Greeting = "Hello, server!"
)

// Service errors
var (
	ErrTransport        = errors.New("chat transport failure")
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// Message is the JSON body posted to the chat endpoint.
type Message struct {
	Message string `json:"message"`
}

// DefaultPayload returns the payload sent by the runner.
func DefaultPayload() Message {
	return Message{Message: Greeting}
}

// Reply holds the raw server response.
type Reply struct {
	Status   int
	Body     []byte
	Duration time.Duration
}

// TransportError covers every condition that prevents a successful reply:
// dial failures, unreadable responses and non-2xx statuses.
type TransportError struct {
	URL    string
	Status int
	Body   []byte
	cause  error
}

func (e *TransportError) Error() string {
	if e == nil {
		return ErrTransport.Error()
	}
	if e.cause == nil {
		return fmt.Sprintf("POST %s: %v", e.URL, ErrTransport)
	}
	return fmt.Sprintf("POST %s: %v", e.URL, e.cause)
}

// Unwrap exposes both ErrTransport and the underlying cause to errors.Is/As.
func (e *TransportError) Unwrap() []error {
	if e == nil {
		return nil
	}
	if e.cause == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.cause}
}

// Service sends chat messages.
type Service interface {
	Send(ctx context.Context, msg Message) (*Reply, error)
}
