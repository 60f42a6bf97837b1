package smithy

import "github.com/google/uuid"

// NewIdempotencyToken returns a fresh token for members marked with the
// idempotency token trait that were left unset.
func NewIdempotencyToken() string {
	return uuid.NewString()
}
