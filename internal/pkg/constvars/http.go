package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"
	MIMETextMarkdown    = "text/markdown"
	MIMEApplicationJSON = "application/json"

	MIMETextHTMLCharsetUTF8        = "text/html; charset=utf-8"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderCookie        = "Cookie"
	HeaderSetCookie     = "Set-Cookie"
	HeaderRetryAfter    = "Retry-After"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXCSRFToken    = "X-CSRF-Token"
	HeaderLink          = "Link"
)

const (
	BearerPrefix = "Bearer "
)
