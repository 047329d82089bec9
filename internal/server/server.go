package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lukeramljak/charsibot/internal/blindbox"
	"github.com/lukeramljak/charsibot/internal/database"
	"github.com/lukeramljak/charsibot/internal/handler"
	"github.com/lukeramljak/charsibot/internal/logger"
	"github.com/lukeramljak/charsibot/internal/metrics"
	"github.com/lukeramljak/charsibot/internal/sse"
	"github.com/lukeramljak/charsibot/internal/stats"
)

// Config holds the HTTP listener settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
}

type Server struct {
	httpServer *http.Server
}

// NewServer wires the overlay streams, health probes and the /api/v1 routes
func NewServer(cfg Config, dbPool database.Pool, hub *sse.Hub, blindBoxService blindbox.Service, statsService stats.Service, redemptions handler.RedemptionProcessor) *Server {
	handler.InitValidator()

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, dbPool, hub, blindBoxService, statsService, redemptions),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Split out so tests can drive it with httptest.
func NewRouter(cfg Config, dbPool database.Pool, hub *sse.Hub, blindBoxService blindbox.Service, statsService stats.Service, redemptions handler.RedemptionProcessor) http.Handler {
	r := chi.NewRouter()

	detector := NewSuspiciousActivityDetector()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	var clients handler.ClientCounter
	if hub != nil {
		clients = hub
		r.Get("/events", sse.Handler(hub))
		r.Get("/ws", sse.WebSocketHandler(hub))
	}

	r.Get("/healthz", handler.HandleHealthz(clients))
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/blindbox", func(r chi.Router) {
			r.Post("/redeem", handler.HandleRedeem(blindBoxService))
			r.Post("/redemption", handler.HandleRedeemByRewardTitle(blindBoxService))
			r.Post("/display", handler.HandleShowCollection(blindBoxService))
			r.Post("/reset", handler.HandleResetCollection(blindBoxService))
			r.Get("/collection", handler.HandleGetCollection(blindBoxService))
			r.Get("/completed", handler.HandleCompletedCollections(blindBoxService))
			r.Get("/catalogs", handler.HandleListCatalogs(blindBoxService))
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/", handler.HandleGetStats(statsService))
			r.Post("/modify", handler.HandleModifyStat(statsService))
			r.Post("/potion", handler.HandleDrinkPotion(statsService))
			r.Get("/leaderboard", handler.HandleLeaderboard(statsService))
		})

		r.Post("/redemptions", handler.HandleChannelRedemption(redemptions))
	})

	return r
}

// responseWriter captures the status code. Streaming handlers behind it still
// need Flush and Hijack.
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

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if h, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return h.Hijack()
	}
	return nil, nil, errors.New("response writer does not support hijacking")
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
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

// Start serves until Stop is called. http.ErrServerClosed is not an error.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
