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

	"github.com/haneul-dev/raidledger/internal/database"
	"github.com/haneul-dev/raidledger/internal/distribution"
	"github.com/haneul-dev/raidledger/internal/gear"
	"github.com/haneul-dev/raidledger/internal/handler"
	"github.com/haneul-dev/raidledger/internal/item"
	"github.com/haneul-dev/raidledger/internal/job"
	"github.com/haneul-dev/raidledger/internal/logger"
	"github.com/haneul-dev/raidledger/internal/loot"
	"github.com/haneul-dev/raidledger/internal/metrics"
	"github.com/haneul-dev/raidledger/internal/party"
	"github.com/haneul-dev/raidledger/internal/priority"
	"github.com/haneul-dev/raidledger/internal/schedule"
	"github.com/haneul-dev/raidledger/internal/stats"
	"github.com/haneul-dev/raidledger/internal/user"
)

// Services bundles everything the router needs
type Services struct {
	User         user.Service
	Job          job.Service
	Item         item.Service
	Party        party.Service
	Gear         gear.Service
	Loot         loot.Service
	Priority     priority.Service
	Schedule     schedule.Service
	Stats        stats.Service
	Distribution distribution.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, svcs Services) *Server {
	r := chi.NewRouter()

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
		r.Route("/users", func(r chi.Router) {
			r.Post("/", handler.HandleRegisterUser(svcs.User))
			r.Get("/", handler.HandleListUsers(svcs.User))
			r.Get("/{userID}", handler.HandleGetUser(svcs.User))
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", handler.HandleListJobs(svcs.Job))
			r.Get("/{jobID}", handler.HandleGetJob(svcs.Job))
		})

		r.Route("/items", func(r chi.Router) {
			r.Post("/", handler.HandleCreateItem(svcs.Item))
			r.Get("/", handler.HandleListItems(svcs.Item))
			r.Get("/{itemID}", handler.HandleGetItem(svcs.Item))
			r.Delete("/{itemID}", handler.HandleDeleteItem(svcs.Item))
		})

		r.Route("/parties", func(r chi.Router) {
			r.Post("/", handler.HandleCreateParty(svcs.Party))
			r.Get("/", handler.HandleListParties(svcs.Party))

			r.Route("/{partyID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetParty(svcs.Party))
				r.Delete("/", handler.HandleDeleteParty(svcs.Party))
				r.Put("/policy", handler.HandleSetPolicy(svcs.Party))

				r.Post("/players", handler.HandleAddPlayer(svcs.Party))
				r.Get("/players", handler.HandleGetRoster(svcs.Party))

				r.Post("/priorities", handler.HandleCreatePriority(svcs.Priority))
				r.Get("/priorities", handler.HandleListPriorities(svcs.Priority))

				r.Post("/schedules", handler.HandleCreateSchedule(svcs.Schedule))
				r.Get("/schedules", handler.HandleListSchedules(svcs.Schedule))

				r.Get("/distribution/resolve", handler.HandleResolveRecipient(svcs.Distribution))
				r.Post("/distribution/records", handler.HandleRecordDistribution(svcs.Distribution))
				r.Get("/players/{playerID}/rotation-eligibility", handler.HandleRotationEligibility(svcs.Distribution))
			})
		})

		r.Route("/players/{playerID}", func(r chi.Router) {
			r.Get("/", handler.HandleGetPlayer(svcs.Party))
			r.Delete("/", handler.HandleRemovePlayer(svcs.Party))

			// "needs" must register before the {setType} wildcard
			r.Get("/gear/needs", handler.HandleBiSNeeds(svcs.Gear))
			r.Put("/gear/{setType}", handler.HandleReplaceGearSet(svcs.Gear))
			r.Get("/gear/{setType}", handler.HandleGetGearSet(svcs.Gear))
		})

		r.Delete("/priorities/{priorityID}", handler.HandleDeletePriority(svcs.Priority))
		r.Delete("/schedules/{scheduleID}", handler.HandleDeactivateSchedule(svcs.Schedule))

		r.Get("/loot/records", handler.HandleListLootRecords(svcs.Loot))

		r.Route("/stats", func(r chi.Router) {
			r.Get("/parties", handler.HandlePartyTotals(svcs.Stats))
			r.Get("/players", handler.HandlePlayerTotals(svcs.Stats))
			r.Get("/slots", handler.HandleSlotTotals(svcs.Stats))
			r.Get("/weekly", handler.HandleWeeklyTotals(svcs.Stats))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{"[REDACTED]"}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug("Request headers", "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
