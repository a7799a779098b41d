package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/alibix/storefront/internal/catalog/domain"
	"github.com/alibix/storefront/internal/history/usecase/command"
	"github.com/alibix/storefront/internal/history/usecase/query"
	"github.com/alibix/storefront/pkg/logger"
)

const defaultSessionID = "guest"

// HistoryHandler handles HTTP requests for browsing history
type HistoryHandler struct {
	recordViewHandler   *command.RecordViewHandler
	removeViewHandler   *command.RemoveViewHandler
	clearViewsHandler   *command.ClearViewsHandler
	recordSearchHandler *command.RecordSearchHandler

	listViewsHandler    *query.ListViewsHandler
	listSearchesHandler *query.ListSearchesHandler
	viewStatsHandler    *query.ViewStatsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(
	recordViewHandler *command.RecordViewHandler,
	removeViewHandler *command.RemoveViewHandler,
	clearViewsHandler *command.ClearViewsHandler,
	recordSearchHandler *command.RecordSearchHandler,
	listViewsHandler *query.ListViewsHandler,
	listSearchesHandler *query.ListSearchesHandler,
	viewStatsHandler *query.ViewStatsHandler,
) *HistoryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_history_requests_total",
			Help: "Total number of requests to the history endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_history_request_duration_seconds",
			Help:    "Duration of history requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &HistoryHandler{
		recordViewHandler:   recordViewHandler,
		removeViewHandler:   removeViewHandler,
		clearViewsHandler:   clearViewsHandler,
		recordSearchHandler: recordSearchHandler,
		listViewsHandler:    listViewsHandler,
		listSearchesHandler: listSearchesHandler,
		viewStatsHandler:    viewStatsHandler,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *HistoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *HistoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/history/views", h.metricsMiddleware("/api/history/views", h.ListViews)).Methods("GET")
	router.HandleFunc("/api/history/views", h.metricsMiddleware("/api/history/views", h.RecordView)).Methods("POST")
	router.HandleFunc("/api/history/views", h.metricsMiddleware("/api/history/views", h.ClearViews)).Methods("DELETE")
	router.HandleFunc("/api/history/views/{id}", h.metricsMiddleware("/api/history/views/{id}", h.RemoveView)).Methods("DELETE")
	router.HandleFunc("/api/history/searches", h.metricsMiddleware("/api/history/searches", h.ListSearches)).Methods("GET")
	router.HandleFunc("/api/history/searches", h.metricsMiddleware("/api/history/searches", h.RecordSearch)).Methods("POST")
	router.HandleFunc("/api/history/stats", h.metricsMiddleware("/api/history/stats", h.ViewStats)).Methods("GET")
}

func sessionID(r *http.Request) string {
	if sid := r.Header.Get("X-Session-ID"); sid != "" {
		return sid
	}
	return defaultSessionID
}

// RecordView handles POST /api/history/views
func (h *HistoryHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uint `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	views, err := h.recordViewHandler.Handle(r.Context(), command.RecordViewCommand{
		SessionID: sessionID(r),
		ProductID: req.ProductID,
	})
	if err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Product not found",
			})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to record view")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to record view",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    views,
	})
}

// ListViews handles GET /api/history/views
func (h *HistoryHandler) ListViews(w http.ResponseWriter, r *http.Request) {
	views, err := h.listViewsHandler.Handle(r.Context(), sessionID(r))
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list views")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list views",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    views,
	})
}

// RemoveView handles DELETE /api/history/views/{id}
func (h *HistoryHandler) RemoveView(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	views, err := h.removeViewHandler.Handle(r.Context(), command.RemoveViewCommand{
		SessionID: sessionID(r),
		ProductID: uint(id),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to remove view")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to remove view",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    views,
	})
}

// ClearViews handles DELETE /api/history/views
func (h *HistoryHandler) ClearViews(w http.ResponseWriter, r *http.Request) {
	if err := h.clearViewsHandler.Handle(r.Context(), sessionID(r)); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to clear views")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear views",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "View history cleared",
	})
}

// RecordSearch handles POST /api/history/searches
func (h *HistoryHandler) RecordSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query       string `json:"query"`
		ResultCount int    `json:"result_count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	searches, err := h.recordSearchHandler.Handle(r.Context(), command.RecordSearchCommand{
		SessionID:   sessionID(r),
		Query:       req.Query,
		ResultCount: req.ResultCount,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to record search")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to record search",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    searches,
	})
}

// ListSearches handles GET /api/history/searches
func (h *HistoryHandler) ListSearches(w http.ResponseWriter, r *http.Request) {
	searches, err := h.listSearchesHandler.Handle(r.Context(), sessionID(r))
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list searches")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list searches",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    searches,
	})
}

// ViewStats handles GET /api/history/stats
func (h *HistoryHandler) ViewStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.viewStatsHandler.Handle(r.Context(), sessionID(r))
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute view stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to compute view stats",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
