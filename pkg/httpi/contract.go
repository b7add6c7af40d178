package httpi

import "context"

const (
	HTTP_REQUEST_ID_KEY    = "__request_id__"
	HTTP_REQUEST_ID_HEADER = "X-Request-Id"
)

type HttpMethod string

const (
	GET     HttpMethod = "GET"
	POST    HttpMethod = "POST"
	PUT     HttpMethod = "PUT"
	DELETE  HttpMethod = "DELETE"
	PATCH   HttpMethod = "PATCH"
	OPTIONS HttpMethod = "OPTIONS"
	HEAD    HttpMethod = "HEAD"
)

type HttpHandler func(req HttpRequest, res HttpResponse) error
type HttpRoute struct {
	Path       string
	Method     HttpMethod
	Handler    HttpHandler
	Middleware []HttpHandler
}

type Controller interface {
	Routes() []HttpRoute
	Middlewares() []HttpHandler
	Path() string
}

type HttpRequest interface {
	GetParam(key string, defaultValue ...string) string
	GetHeader(key string) string
	GetMethod() string
	GetPath() string
	GetQuery(key string, defaultValue ...string) string
	GetIP() string
	GetUserAgent() string
	// DecodeBody unmarshals the raw body as JSON whatever the Content-Type.
	DecodeBody(any) error
	Context() context.Context
	RequestID() string
	Locals(key string, value any) any
	GetLocal(key string) any
	Next() error
}

type HttpResponse interface {
	SetStatus(status int)
	SetHeader(key string, value string)
	GetStatus() int
	Send(data []byte) error
	JSON(data any) error
	Json(data any) error
	Status(status int) HttpResponse
}

type HttpError struct {
	Code    string `json:"code"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse is the envelope of every non 2xx response.
type ErrorResponse struct {
	Status string    `json:"status"` // always "error"
	Error  HttpError `json:"error"`
	Meta   any       `json:"meta,omitempty"`
}
