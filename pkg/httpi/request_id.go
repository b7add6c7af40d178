package httpi

import "github.com/vayload/contact-validator/internal/shared/entity"

// MaxRequestIDLength bounds a caller supplied X-Request-Id.
const MaxRequestIDLength = 128

// AcceptRequestID returns incoming when it can be echoed back, otherwise a
// fresh ULID.
func AcceptRequestID(incoming string) string {
	if incoming == "" || len(incoming) > MaxRequestIDLength {
		return entity.NewRequestID().String()
	}
	return incoming
}
