package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
	ErrMsgLockedOut       = "Too many failed admin key attempts"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAuthLockedOut    = "Admin request refused, client locked out"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderRetryAfter     = "Retry-After"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueDeny                 = "DENY"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Request budgets per client IP. Actions each run a transaction; a
// stamina-limited player cannot use more than a few per minute.
const (
	RateLimitWindow         = time.Minute
	ReadRequestsPerWindow   = 600
	ActionRequestsPerWindow = 120
	AdminRequestsPerWindow  = 60
	MaxTrackedClients       = 10000
)

// Admin key failures. The alert fires at FailedAuthAlertThreshold; at
// AdminLockoutThreshold the client is refused until the window ends.
const (
	FailedAuthAlertThreshold = 3
	AdminLockoutThreshold    = 10
	AdminLockoutWindow       = 15 * time.Minute
)

// AdminPathPrefix is where the API-key protected routes live
const AdminPathPrefix = "/api/v1/admin"

const (
	MaxRequestBodyBytes = 1 << 16
	ReadHeaderTimeout   = 5 * time.Second
)

// Paths skipped by the request logger
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
