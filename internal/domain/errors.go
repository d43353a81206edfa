package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for profile operations.
var (
	// ErrRequestFailed is the single failure kind surfaced by the profiles API
	// client, whether the service answered with a non-2xx status or the call
	// never produced a usable response.
	ErrRequestFailed = errors.New("profiles request failed")

	// ErrNameRequired is returned when a draft is submitted without a name.
	ErrNameRequired = errors.New("profile name is required")

	// ErrInvalidIcon is returned when an icon is not one of the predefined options.
	ErrInvalidIcon = errors.New("icon is not one of the available options")

	// ErrNotFound is returned when a profile id is not present in the local list.
	ErrNotFound = errors.New("requested profile not found")
)
