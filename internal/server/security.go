package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/osse101/HackArena_Go/internal/logger"
)

// RouteClass groups endpoints that share a request budget.
type RouteClass string

const (
	// ClassRead covers GET endpoints: previews, listings, the feed.
	ClassRead RouteClass = "read"
	// ClassAction covers state-changing player calls. Each one runs a
	// transaction, so the budget is tighter.
	ClassAction RouteClass = "action"
	// ClassAdmin covers everything under the admin prefix.
	ClassAdmin RouteClass = "admin"
)

// Budget is how many requests one client may make per window.
type Budget struct {
	Limit  int
	Window time.Duration
}

// DefaultBudgets returns the production budgets per route class.
func DefaultBudgets() map[RouteClass]Budget {
	return map[RouteClass]Budget{
		ClassRead:   {Limit: ReadRequestsPerWindow, Window: RateLimitWindow},
		ClassAction: {Limit: ActionRequestsPerWindow, Window: RateLimitWindow},
		ClassAdmin:  {Limit: AdminRequestsPerWindow, Window: RateLimitWindow},
	}
}

type clientKey struct {
	class RouteClass
	ip    string
}

type windowCount struct {
	n     int
	start time.Time
}

// Guard keeps per-client request counts per route class and failed admin
// key attempts. Fixed windows, reset lazily on access.
type Guard struct {
	mu         sync.Mutex
	budgets    map[RouteClass]Budget
	requests   map[clientKey]*windowCount
	failedAuth map[string]*windowCount
	now        func() time.Time
}

// NewGuard creates a guard with the given budgets. Classes missing from
// budgets are not limited.
func NewGuard(budgets map[RouteClass]Budget) *Guard {
	return &Guard{
		budgets:    budgets,
		requests:   make(map[clientKey]*windowCount),
		failedAuth: make(map[string]*windowCount),
		now:        time.Now,
	}
}

// count bumps the counter for key, starting a new window when the old one
// has expired. Callers hold the guard lock.
func count[K comparable](m map[K]*windowCount, key K, window time.Duration, now time.Time) int {
	c, ok := m[key]
	if !ok || now.Sub(c.start) >= window {
		c = &windowCount{start: now}
		m[key] = c
	}
	c.n++
	return c.n
}

// sweep drops expired counters once the table grows past MaxTrackedClients.
// Caller holds g.mu.
func (g *Guard) sweep(now time.Time) {
	if len(g.requests)+len(g.failedAuth) < MaxTrackedClients {
		return
	}
	for k, c := range g.requests {
		if now.Sub(c.start) >= g.budgets[k.class].Window {
			delete(g.requests, k)
		}
	}
	for ip, c := range g.failedAuth {
		if now.Sub(c.start) >= AdminLockoutWindow {
			delete(g.failedAuth, ip)
		}
	}
}

// Allow records a request and reports whether ip is still inside the
// budget of class. The second value is the time until the window resets.
func (g *Guard) Allow(class RouteClass, ip string) (bool, time.Duration) {
	b, ok := g.budgets[class]
	if !ok || b.Limit <= 0 {
		return true, 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	g.sweep(now)
	key := clientKey{class: class, ip: ip}
	n := count(g.requests, key, b.Window, now)
	if n <= b.Limit {
		return true, 0
	}

	if n == b.Limit+1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "class", class, "limit", b.Limit)
	}
	return false, b.Window - now.Sub(g.requests[key].start)
}

// RecordFailedAuth counts a wrong admin key from ip and returns the count
// in the current lockout window.
func (g *Guard) RecordFailedAuth(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := count(g.failedAuth, ip, AdminLockoutWindow, g.now())
	if n == FailedAuthAlertThreshold || n == AdminLockoutThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n, "locked_out", n >= AdminLockoutThreshold)
	}
	return n
}

// LockedOut reports whether ip has used up its failed admin key attempts.
func (g *Guard) LockedOut(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.failedAuth[ip]
	if !ok || g.now().Sub(c.start) >= AdminLockoutWindow {
		return false
	}
	return c.n >= AdminLockoutThreshold
}

// classify maps a request to its budget class.
func classify(r *http.Request) RouteClass {
	if strings.HasPrefix(r.URL.Path, AdminPathPrefix) {
		return ClassAdmin
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return ClassRead
	default:
		return ClassAction
	}
}

// RateLimitMiddleware rejects clients over the budget of the route class
// the request falls in.
func RateLimitMiddleware(trustedProxies []string, guard *Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if ok, retry := guard.Allow(classify(r), ip); !ok {
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(retry.Round(time.Second)/time.Second)))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AuthMiddleware requires a matching X-API-Key on the admin routes. A
// client that keeps sending wrong keys is locked out for AdminLockoutWindow,
// right key or not.
func AuthMiddleware(apiKey string, trustedProxies []string, guard *Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			log := logger.FromContext(r.Context())

			if guard.LockedOut(ip) {
				log.Warn(LogMsgAuthLockedOut, "ip", ip, "path", r.URL.Path)
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(AdminLockoutWindow/time.Second)))
				http.Error(w, ErrMsgLockedOut, http.StatusTooManyRequests)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				failures := guard.RecordFailedAuth(ip)
				log.Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip,
					"failures", failures)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// X-Forwarded-For is only trusted when the direct peer is a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost entry is the hop our trusted proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
		break
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueDeny)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
