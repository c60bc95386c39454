package llm

import "fmt"

// ErrorKind classifies an API failure so the UI can show a distinct,
// actionable message for each.
type ErrorKind int

const (
	KindTransient ErrorKind = iota
	KindRateLimited
	KindUnauthenticated
	KindInvalid
)

// APIError is a classified failure from the model API.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d): %s", e.advice(), e.Status, e.Message)
}

func (e *APIError) advice() string {
	switch e.Kind {
	case KindRateLimited:
		return "the model API is rate limiting requests; wait a moment and try again"
	case KindUnauthenticated:
		return "the model API rejected the credentials; check the configured API key"
	case KindTransient:
		return "the model API is temporarily unavailable; try again shortly"
	}
	return "the model API rejected the request"
}

// classify maps an HTTP status to an error kind.
func classify(status int, body string) *APIError {
	kind := KindInvalid
	switch {
	case status == 429:
		kind = KindRateLimited
	case status == 401 || status == 403:
		kind = KindUnauthenticated
	case status >= 500:
		kind = KindTransient
	}
	return &APIError{Kind: kind, Status: status, Message: body}
}
