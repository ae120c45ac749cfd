package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	appchecks "github.com/Laevateinn0131/callguard/internal/application/checks"
	appconv "github.com/Laevateinn0131/callguard/internal/application/conversations"
	appreports "github.com/Laevateinn0131/callguard/internal/application/reports"
	domai "github.com/Laevateinn0131/callguard/internal/domain/ai"
	domchecks "github.com/Laevateinn0131/callguard/internal/domain/checks"
	"github.com/Laevateinn0131/callguard/internal/domain/numbers"
	"github.com/Laevateinn0131/callguard/internal/middleware"
)

// errBadRequest marks validation failures for the 400 mapping in wrap.
var errBadRequest = errors.New("bad request")

func badRequest(err error) error {
	return fmt.Errorf("%w: %s", errBadRequest, err)
}

type Router struct {
	checks        *appchecks.Service
	reports       *appreports.Service
	conversations *appconv.Service
	rules         *numbers.RuleSet
	logger        *zap.Logger
}

type Options struct {
	Checks         *appchecks.Service
	Reports        *appreports.Service
	Conversations  *appconv.Service
	Rules          *numbers.RuleSet
	Logger         *zap.Logger
	DB             *sql.DB
	AllowedOrigins []string
}

// New builds the HTTP surface: one endpoint per page of the original
// checker, plus health and metrics.
func New(opts Options) http.Handler {
	r := &Router{
		checks:        opts.Checks,
		reports:       opts.Reports,
		conversations: opts.Conversations,
		rules:         opts.Rules,
		logger:        opts.Logger,
	}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	mux.Use(middleware.Logging(opts.Logger))
	mux.Use(middleware.Metrics)
	mux.Use(middleware.RateLimit(100, 50))

	mux.Get("/", r.wrap(r.handleIndex))
	mux.Get("/health", middleware.HealthHandler(map[string]middleware.HealthChecker{
		"database": &middleware.DatabaseHealthChecker{DB: opts.DB},
	}))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Handle("/metrics", middleware.MetricsHandler())

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/checks", r.wrap(r.handleCheck))
		rt.Get("/checks/latest", r.wrap(r.handleLatest))
		rt.Get("/checks/{id}", r.wrap(r.handleGet))
		rt.Delete("/checks", r.wrap(r.handleClear))
		rt.Get("/stats", r.wrap(r.handleStats))
		rt.Post("/conversations/analyze", r.wrap(r.handleConversation))
		rt.Post("/reports", r.wrap(r.handleReport))
		rt.Get("/reports", r.wrap(r.handleReportList))
		rt.Get("/database", r.wrap(r.handleDatabase))
		rt.Post("/database/numbers", r.wrap(r.handleAddScamNumber))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		switch {
		case errors.Is(err, errBadRequest),
			errors.Is(err, appchecks.ErrEmptyNumber),
			errors.Is(err, appreports.ErrEmptyNumber),
			errors.Is(err, appconv.ErrEmptyTranscript):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, sql.ErrNoRows):
			http.Error(w, "not found", http.StatusNotFound)
		case errors.Is(err, domai.ErrNotConfigured):
			http.Error(w, "ai enrichment is not configured", http.StatusServiceUnavailable)
		case errors.Is(err, domai.ErrQuotaExceeded):
			http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
		default:
			r.logger.Error("request failed",
				zap.String("path", req.URL.Path),
				zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// GET /
func (r *Router) handleIndex(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, map[string]any{
		"service": "callguard",
		"version": "0.1.0",
		"endpoints": []string{
			"POST /v1/checks",
			"GET /v1/checks/latest",
			"GET /v1/checks/{id}",
			"DELETE /v1/checks",
			"GET /v1/stats",
			"POST /v1/conversations/analyze",
			"POST /v1/reports",
			"GET /v1/reports",
			"GET /v1/database",
			"POST /v1/database/numbers",
		},
	})
}

// POST /v1/checks
// Body: {"number": "090-1234-5678", "enrich": true}
func (r *Router) handleCheck(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Number string `json:"number"`
		Enrich bool   `json:"enrich"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}
	if err := middleware.ValidatePhoneNumber(body.Number); err != nil {
		return badRequest(err)
	}

	chk, err := r.checks.Check(req.Context(), appchecks.CheckCommand{
		Number: middleware.SanitizeString(body.Number),
		Enrich: body.Enrich,
	})
	if err != nil {
		return err
	}

	middleware.ObserveCheck(string(chk.Risk))
	// only count AI calls that were actually made: not nil-client or
	// emergency short-circuit checks
	if body.Enrich && r.checks.Enriches() && chk.Risk != numbers.RiskEmergency {
		outcome := "error"
		if chk.Insight != nil {
			outcome = "ok"
		}
		middleware.ObserveAI("number", outcome)
	}
	return writeJSON(w, chk)
}

// GET /v1/checks/latest?limit=20
func (r *Router) handleLatest(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	list, err := r.checks.Latest(req.Context(), middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domchecks.Check{}
	}
	return writeJSON(w, list)
}

// GET /v1/checks/{id}
func (r *Router) handleGet(w http.ResponseWriter, req *http.Request) error {
	chk, err := r.checks.Get(req.Context(), domchecks.CheckID(chi.URLParam(req, "id")))
	if err != nil {
		return err
	}
	return writeJSON(w, chk)
}

// DELETE /v1/checks
func (r *Router) handleClear(w http.ResponseWriter, req *http.Request) error {
	if err := r.checks.ClearHistory(req.Context()); err != nil {
		return err
	}
	return writeJSON(w, map[string]string{"status": "cleared"})
}

// GET /v1/stats
func (r *Router) handleStats(w http.ResponseWriter, req *http.Request) error {
	summary, err := r.checks.Stats(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, summary)
}

// POST /v1/conversations/analyze
// Body: {"transcript": "..."}
func (r *Router) handleConversation(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Transcript string `json:"transcript"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}
	if err := middleware.ValidateTranscript(body.Transcript); err != nil {
		return badRequest(err)
	}

	insight, err := r.conversations.Analyze(req.Context(), middleware.SanitizeString(body.Transcript))
	if err != nil {
		middleware.ObserveAI("conversation", "error")
		return err
	}
	middleware.ObserveAI("conversation", "ok")
	return writeJSON(w, insight)
}

// POST /v1/reports
// Body: {"number": "...", "description": "...", "category": "scam"}
func (r *Router) handleReport(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Number      string `json:"number"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}
	if err := middleware.ValidateDescription(body.Description); err != nil {
		return badRequest(err)
	}

	c, err := r.reports.Submit(req.Context(), appreports.SubmitCommand{
		Number:      body.Number,
		Description: middleware.SanitizeString(body.Description),
		Category:    middleware.SanitizeString(body.Category),
	})
	if err != nil {
		return err
	}
	middleware.ObserveReport()
	return writeJSON(w, c)
}

// GET /v1/reports?limit=20
func (r *Router) handleReportList(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	list, err := r.reports.Recent(req.Context(), middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}
	return writeJSON(w, list)
}

// GET /v1/database
func (r *Router) handleDatabase(w http.ResponseWriter, req *http.Request) error {
	cases, err := r.reports.Recent(req.Context(), 100)
	if err != nil {
		return err
	}
	return writeJSON(w, map[string]any{
		"rules":          r.rules.Snapshot(),
		"reported_cases": cases,
	})
}

// POST /v1/database/numbers
// Body: {"number": "..."}
func (r *Router) handleAddScamNumber(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Number string `json:"number"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}
	if err := middleware.ValidatePhoneNumber(body.Number); err != nil {
		return badRequest(err)
	}

	normalized, added := r.rules.AddScamNumber(body.Number)
	return writeJSON(w, map[string]any{
		"number": normalized,
		"added":  added,
	})
}
