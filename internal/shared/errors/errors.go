package errors

import (
	"errors"
	"fmt"
)

var (
	ErrMissingBotToken   = errors.New("SLACK_BOT_TOKEN environment variable is required")
	ErrMissingAppToken   = errors.New("SLACK_APP_TOKEN environment variable is required")
	ErrMissingNewsAPIKey = errors.New("NEWS_API_KEY environment variable is required")
	ErrMissingInput      = errors.New("missing step input")
	ErrSenderUnavailable = errors.New("no sender configured for channel")
	ErrMessageNotFound   = errors.New("message not found")
)

// ParseError reports a provider timestamp that is not ISO-8601 in UTC.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid publishedAt %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FetchError reports a failed or malformed news provider response.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	if e.URL == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("request to %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DeliveryError reports a failed post to a channel.
type DeliveryError struct {
	Channel string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("post to channel %s: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
