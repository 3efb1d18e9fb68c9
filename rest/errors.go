package rest

import (
	"fmt"
)

// HTTPError is returned when the server answers with a non-2xx status
type HTTPError struct {
	StatusCode int
	Reason     string
	Body       string
}

// Error keeps the historical format, which repeats the status code:
// "<code> Request failed with HTTP status <code> (<reason>)\n<body>"
func (e *HTTPError) Error() string {
	message := fmt.Sprintf(
		"Request failed with HTTP status %d (%s)\n%s",
		e.StatusCode,
		e.Reason,
		e.Body,
	)
	return fmt.Sprintf("%d %s", e.StatusCode, message)
}

// URLError is returned when the request url cannot be parsed as an
// absolute url. No request is sent in that case.
type URLError struct {
	URL string
	Err error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("invalid request url %q: %v", e.URL, e.Err)
}

func (e *URLError) Unwrap() error {
	return e.Err
}
