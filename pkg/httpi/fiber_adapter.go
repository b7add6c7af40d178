package httpi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

var ErrEmptyBody = errors.New("request body is empty")

type httpRequest struct {
	Ctx *fiber.Ctx
}

func NewHttpRequest(ctx *fiber.Ctx) HttpRequest {
	return &httpRequest{
		Ctx: ctx,
	}
}

func (request *httpRequest) GetParam(key string, defaultValue ...string) string {
	return request.Ctx.Params(key, defaultValue...)
}

func (request *httpRequest) GetHeader(key string) string {
	return request.Ctx.Get(key)
}

func (request *httpRequest) GetMethod() string {
	return request.Ctx.Method()
}

func (request *httpRequest) GetPath() string {
	return request.Ctx.Path()
}

func (request *httpRequest) GetQuery(key string, defaultValue ...string) string {
	return request.Ctx.Query(key, defaultValue...)
}

func (request *httpRequest) GetIP() string {
	return request.Ctx.IP()
}

func (request *httpRequest) GetUserAgent() string {
	return string(request.Ctx.Context().UserAgent())
}

func (request *httpRequest) DecodeBody(v any) error {
	body := request.Ctx.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return ErrEmptyBody
	}
	return json.Unmarshal(body, v)
}

func (request *httpRequest) Context() context.Context {
	return request.Ctx.UserContext()
}

// RequestID returns the id assigned by the request id middleware, or the
// incoming header when the middleware is not installed.
func (request *httpRequest) RequestID() string {
	if id, ok := request.Ctx.Locals(HTTP_REQUEST_ID_KEY).(string); ok && id != "" {
		return id
	}
	return request.Ctx.Get(HTTP_REQUEST_ID_HEADER)
}

func (request *httpRequest) GetLocal(key string) any {
	return request.Ctx.Locals(key)
}

func (request *httpRequest) Locals(key string, value any) any {
	if value != nil {
		request.Ctx.Locals(key, value)
		return value
	}

	return request.Ctx.Locals(key)
}

func (request *httpRequest) Next() error {
	return request.Ctx.Next()
}

type httpResponse struct {
	ctx *fiber.Ctx
}

func NewHttpResponse(ctx *fiber.Ctx) HttpResponse {
	return &httpResponse{
		ctx: ctx,
	}
}

func (response *httpResponse) SetStatus(status int) {
	response.ctx.Status(status)
}

func (response *httpResponse) GetStatus() int {
	return response.ctx.Response().StatusCode()
}

func (response *httpResponse) SetHeader(key string, value string) {
	response.ctx.Set(key, value)
}

func (response *httpResponse) Send(body []byte) error {
	return response.ctx.Send(body)
}

func (response *httpResponse) JSON(data any) error {
	return response.ctx.JSON(data)
}

func (response *httpResponse) Json(body any) error {
	return response.ctx.JSON(body)
}

func (response *httpResponse) Status(status int) HttpResponse {
	response.ctx.Status(status)
	return response
}

func FiberWrap(handler HttpHandler) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return handler(NewHttpRequest(ctx), NewHttpResponse(ctx))
	}
}

// FiberErrorHandler plugs HttpErrorHandler into fiber.Config.
func FiberErrorHandler(ctx *fiber.Ctx, err error) error {
	return HttpErrorHandler(NewHttpRequest(ctx), NewHttpResponse(ctx), err)
}

func RegisterController(router fiber.Router, c Controller) {
	group := router.Group(c.Path())

	for _, mw := range c.Middlewares() {
		group.Use(FiberWrap(mw))
	}

	for _, route := range c.Routes() {
		handlers := make([]fiber.Handler, 0, len(route.Middleware)+1)
		for _, mw := range route.Middleware {
			handlers = append(handlers, FiberWrap(mw))
		}

		handlers = append(handlers, FiberWrap(route.Handler))
		routePath := strings.TrimPrefix(route.Path, "/")
		if routePath == "" {
			routePath = "/"
		}

		group.Add(string(route.Method), routePath, handlers...)
		LogRegisteredRoute(string(route.Method), fmt.Sprintf("%s/%s", strings.TrimRight(c.Path(), "/"), strings.TrimLeft(route.Path, "/")))
	}
}

// ANSI colors
const (
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	reset  = "\033[0m"
)

// RouteLogging toggles the route table printed by RegisterController.
var RouteLogging = true

func LogRegisteredRoute(method, path string) {
	if !RouteLogging {
		return
	}
	fmt.Printf("  %s%-6s%s %s\n", methodToColor(method), method, reset, path)
}

func methodToColor(method string) string {
	switch method {
	case "GET":
		return green
	case "POST":
		return yellow
	default:
		return cyan
	}
}
