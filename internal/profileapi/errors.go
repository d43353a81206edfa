package profileapi

import (
	"fmt"

	"github.com/nfrund/househarmony/internal/domain"
)

// RequestFailedError describes a call to the profiles service that did not
// succeed. StatusCode is zero when no HTTP response was received or the
// response body could not be decoded.
//
// It always matches domain.ErrRequestFailed with errors.Is.
type RequestFailedError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RequestFailedError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s profile: unexpected status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s profile: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s profile: request failed", e.Op)
	}
}

func (e *RequestFailedError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrRequestFailed}
	}
	return []error{domain.ErrRequestFailed, e.Err}
}
