package domain

import "fmt"

// Failure is reported to the host when an execution cannot complete.
// Message is the text shown to the workflow author.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Err }

// FetchFailed reports a failure to read inputs or fetch articles
func FetchFailed(err error) *Failure {
	return &Failure{Message: fmt.Sprintf("Failed to fetch news articles (%v)", err), Err: err}
}

// NotificationFailed reports a failure to post to a channel
func NotificationFailed(err error) *Failure {
	return &Failure{Message: fmt.Sprintf("Notification failed (%v)", err), Err: err}
}
