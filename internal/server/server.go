package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/HackArena_Go/internal/economy"
	"github.com/osse101/HackArena_Go/internal/feed"
	"github.com/osse101/HackArena_Go/internal/hack"
	"github.com/osse101/HackArena_Go/internal/handler"
	"github.com/osse101/HackArena_Go/internal/logger"
	"github.com/osse101/HackArena_Go/internal/metrics"
	"github.com/osse101/HackArena_Go/internal/player"
	"github.com/osse101/HackArena_Go/internal/quest"
	"github.com/osse101/HackArena_Go/internal/quiz"
	"github.com/osse101/HackArena_Go/internal/sse"
)

// Deps is everything the HTTP surface routes to
type Deps struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string

	Store   handler.Pinger
	Cache   handler.CacheAdmin
	Hack    hack.Service
	Economy economy.Service
	Quest   quest.Service
	Quiz    quiz.Service
	Feed    feed.Service
	Players player.Service

	// Stream serves /api/v1/feed/stream when set
	Stream *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", deps.Port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router. Split out so tests can drive it with httptest.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	guard := NewGuard(DefaultBudgets())

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(deps.TrustedProxies, guard))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))
	r.Get("/version", handler.HandleVersion(deps.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/hack", func(r chi.Router) {
			r.Get("/preview", handler.HandlePreviewHack(deps.Hack))
			r.Post("/", handler.HandleResolveHack(deps.Hack))
		})

		r.Route("/shop", func(r chi.Router) {
			r.Get("/items", handler.HandleListShopItems(deps.Economy))
			r.Post("/purchase", handler.HandlePurchase(deps.Economy))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(deps.Economy))
			r.Post("/activate", handler.HandleActivate(deps.Economy))
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", handler.HandleListTasks(deps.Quest))
			r.Get("/templates", handler.HandleListTemplates(deps.Quest))
			r.Post("/accept", handler.HandleAcceptTask(deps.Quest))
			r.Post("/claim", handler.HandleClaimTask(deps.Quest))
		})

		r.Route("/quiz", func(r chi.Router) {
			r.Get("/questions", handler.HandleListQuestions(deps.Quiz))
			r.Post("/answer", handler.HandleAnswerQuiz(deps.Quiz))
		})

		r.Route("/feed", func(r chi.Router) {
			r.Get("/", handler.HandleGetFeed(deps.Feed))
			if deps.Stream != nil {
				r.Get("/stream", sse.Handler(deps.Stream))
			}
			r.Post("/{id}/react", handler.HandleReact(deps.Feed))
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", handler.HandleListPlayers(deps.Players))
			r.Post("/", handler.HandleRegisterPlayer(deps.Players))
			r.Get("/{id}", handler.HandleGetPlayer(deps.Players))
		})

		r.Post("/auth/login", handler.HandleLogin(deps.Players))

		adminHandler := handler.NewAdminHandler(deps.Players, deps.Cache)
		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(deps.APIKey, deps.TrustedProxies, guard))

			r.Delete("/players/{id}", adminHandler.HandleDeletePlayer)
			r.Post("/stamina/regen", adminHandler.HandleRegenStamina)
			r.Post("/tasks/assign", handler.HandleAssignTask(deps.Quest))
			r.Post("/tasks/advance", handler.HandleAdvanceTask(deps.Quest))
			r.Get("/cache/stats", adminHandler.HandleGetCacheStats)
			r.Post("/cache/purge", adminHandler.HandlePurgeCache)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
