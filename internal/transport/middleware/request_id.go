package middleware

import (
	"github.com/vayload/contact-validator/pkg/httpi"
)

// NewRequestID keeps a caller supplied X-Request-Id, or mints a ULID, and
// echoes it on the response.
func NewRequestID() httpi.HttpHandler {
	return func(req httpi.HttpRequest, res httpi.HttpResponse) error {
		id := httpi.AcceptRequestID(req.GetHeader(httpi.HTTP_REQUEST_ID_HEADER))

		req.Locals(httpi.HTTP_REQUEST_ID_KEY, id)
		res.SetHeader(httpi.HTTP_REQUEST_ID_HEADER, id)

		return req.Next()
	}
}
