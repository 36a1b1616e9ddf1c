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

	"github.com/striderush/StrideRush_Go/internal/achievement"
	"github.com/striderush/StrideRush_Go/internal/booster"
	"github.com/striderush/StrideRush_Go/internal/character"
	"github.com/striderush/StrideRush_Go/internal/cosmetic"
	"github.com/striderush/StrideRush_Go/internal/database"
	"github.com/striderush/StrideRush_Go/internal/game"
	"github.com/striderush/StrideRush_Go/internal/handler"
	"github.com/striderush/StrideRush_Go/internal/ledger"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/metrics"
	"github.com/striderush/StrideRush_Go/internal/movement"
	"github.com/striderush/StrideRush_Go/internal/store"
)

// Services bundles everything the router needs. Keeping it a struct stops
// NewServer's parameter list from growing with every feature.
type Services struct {
	Movement    movement.Service
	Ledger      ledger.Service
	Character   character.Service
	Cosmetic    cosmetic.Service
	Store       store.Service
	Achievement achievement.Service
	Game        game.Service
	Booster     booster.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	services   Services
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies, adminEmails []string, dbPool database.Pool, services Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Movement routes
		movementHandler := handler.NewMovementHandler(services.Movement)
		r.Route("/movement", func(r chi.Router) {
			r.Post("/start", movementHandler.HandleStart)
			r.Post("/complete", movementHandler.HandleComplete)
			r.Post("/cancel", movementHandler.HandleCancel)
			r.Get("/active", movementHandler.HandleGetActive)
			r.Get("/get", movementHandler.HandleGet)
		})

		r.Get("/stride/status", movementHandler.HandleStrideStatus)

		// Character routes
		characterHandler := handler.NewCharacterHandler(services.Character)
		r.Route("/character", func(r chi.Router) {
			r.Get("/", characterHandler.HandleGet)
			r.Post("/level-up", characterHandler.HandleLevelUp)
			r.Post("/exp", characterHandler.HandleGrantExp)
			r.Post("/feed", characterHandler.HandleFeed)
		})

		// Ledger routes
		r.Route("/coins", func(r chi.Router) {
			r.Get("/balance", handler.HandleGetBalance(services.Ledger))
			r.Get("/transactions", handler.HandleGetTransactions(services.Ledger))
		})

		// Cosmetic routes
		cosmeticHandler := handler.NewCosmeticHandler(services.Cosmetic)
		r.Route("/cosmetics", func(r chi.Router) {
			r.Get("/templates", cosmeticHandler.HandleListTemplates)
			r.Get("/owned", cosmeticHandler.HandleListOwned)
			r.Post("/mint", cosmeticHandler.HandleMint)
			r.Post("/enhance", cosmeticHandler.HandleEnhance)
			r.Post("/equip", cosmeticHandler.HandleEquip)
			r.Post("/unequip", cosmeticHandler.HandleUnequip)
		})

		// Store routes
		r.Route("/store", func(r chi.Router) {
			r.Get("/items", handler.HandleListStoreItems(services.Store))
			r.Post("/purchase", handler.HandlePurchase(services.Store))
		})

		// Achievement routes
		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", handler.HandleListAchievements(services.Achievement))
			r.Post("/claim", handler.HandleClaimAchievement(services.Achievement))
		})

		// Game routes
		gameHandler := handler.NewGameHandler(services.Game)
		r.Route("/game", func(r chi.Router) {
			r.Get("/wheel", gameHandler.HandleGetWheel)
			r.Post("/spin", gameHandler.HandleSpin)
			r.Get("/history", gameHandler.HandleGetHistory)
		})

		// Booster routes
		r.Route("/booster", func(r chi.Router) {
			r.Post("/redeem", handler.HandleRedeemBooster(services.Booster))
			r.Get("/active", handler.HandleGetActiveBooster(services.Booster))
		})

		// Admin routes (allowlist-gated via the X-Admin-Email header)
		r.Post("/admin/grant", handler.HandleAdminGrant(services.Ledger, adminEmails))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:   dbPool,
		services: services,
	}
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
		statusCode:     http.StatusOK, // default status
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
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
