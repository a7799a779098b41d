package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/alibix/storefront/internal/wishlist/usecase"
	"github.com/alibix/storefront/pkg/logger"
)

const defaultSessionID = "guest"

// WishlistHandler handles HTTP requests for the wishlist
type WishlistHandler struct {
	service *usecase.Service

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(service *usecase.Service) *WishlistHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_wishlist_requests_total",
			Help: "Total number of requests to the wishlist endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_wishlist_request_duration_seconds",
			Help:    "Duration of wishlist requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &WishlistHandler{
		service:        service,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
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

func (h *WishlistHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *WishlistHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/wishlist", h.metricsMiddleware("/api/wishlist", h.List)).Methods("GET")
	router.HandleFunc("/api/wishlist", h.metricsMiddleware("/api/wishlist", h.Clear)).Methods("DELETE")
	router.HandleFunc("/api/wishlist/{id}/toggle", h.metricsMiddleware("/api/wishlist/{id}/toggle", h.Toggle)).Methods("POST")
	router.HandleFunc("/api/wishlist/{id}", h.metricsMiddleware("/api/wishlist/{id}", h.Contains)).Methods("GET")
}

func sessionID(r *http.Request) string {
	if sid := r.Header.Get("X-Session-ID"); sid != "" {
		return sid
	}
	return defaultSessionID
}

// List handles GET /api/wishlist
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context(), sessionID(r))
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to load wishlist")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load wishlist",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    products,
	})
}

// Toggle handles POST /api/wishlist/{id}/toggle
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	added, err := h.service.Toggle(r.Context(), sessionID(r), id)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to toggle wishlist product")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to toggle wishlist product",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]bool{"saved": added},
	})
}

// Contains handles GET /api/wishlist/{id}
func (h *WishlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	saved, err := h.service.Contains(r.Context(), sessionID(r), id)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to check wishlist")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to check wishlist",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]bool{"saved": saved},
	})
}

// Clear handles DELETE /api/wishlist
func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context(), sessionID(r)); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to clear wishlist")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear wishlist",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Wishlist cleared",
	})
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return 0, false
	}
	return uint(id), true
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
