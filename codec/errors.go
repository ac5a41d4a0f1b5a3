// Package codec defines the generic codec interface the stillpic CLI
// dispatches through, and a small self-registering registry of codecs
// keyed by name or UID.
package codec

import "errors"

// Errors returned by registry lookups and codec Encode/Decode calls.
var (
	// ErrCodecNotFound is returned by Get when no codec is registered
	// under the requested name or UID.
	ErrCodecNotFound = errors.New("codec: not found in registry")

	// ErrInvalidParameter is returned when EncodeParams carries pixel data
	// whose length doesn't match Width*Height*Components.
	ErrInvalidParameter = errors.New("codec: invalid encode parameters")

	// ErrInvalidQuality is returned by BaseOptions.Validate for a quality
	// value outside [1,100].
	ErrInvalidQuality = errors.New("codec: quality must be in [1,100]")
)
