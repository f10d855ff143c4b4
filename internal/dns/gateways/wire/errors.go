package wire

import "errors"

var (
	// ErrNotAResponse is returned when a buffer's QR bit is unset.
	ErrNotAResponse = errors.New("message is not a response")

	// ErrMalformedMessage is returned when section counts imply reads past
	// the end of the buffer, or a compression pointer does not target an
	// offset strictly before the position it was read from.
	ErrMalformedMessage = errors.New("malformed message")
)
