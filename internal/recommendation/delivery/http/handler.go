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
	"github.com/alibix/storefront/internal/recommendation/usecase/query"
	"github.com/alibix/storefront/pkg/logger"
)

const defaultSessionID = "guest"

// RecommendationHandler handles HTTP requests for product recommendations
type RecommendationHandler struct {
	personalizedHandler *query.PersonalizedHandler
	similarHandler      *query.SimilarProductsHandler
	categoryHandler     *query.CategoryRecommendationsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(
	personalizedHandler *query.PersonalizedHandler,
	similarHandler *query.SimilarProductsHandler,
	categoryHandler *query.CategoryRecommendationsHandler,
) *RecommendationHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_recommendation_requests_total",
			Help: "Total number of requests to the recommendation endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_recommendation_request_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &RecommendationHandler{
		personalizedHandler: personalizedHandler,
		similarHandler:      similarHandler,
		categoryHandler:     categoryHandler,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
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

func (h *RecommendationHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *RecommendationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/recommendations", h.metricsMiddleware("/api/recommendations", h.Personalized)).Methods("GET")
	router.HandleFunc("/api/recommendations/category/{category}", h.metricsMiddleware("/api/recommendations/category/{category}", h.ByCategory)).Methods("GET")
	router.HandleFunc("/api/products/{id}/similar", h.metricsMiddleware("/api/products/{id}/similar", h.Similar)).Methods("GET")
}

func sessionID(r *http.Request) string {
	if sid := r.Header.Get("X-Session-ID"); sid != "" {
		return sid
	}
	return defaultSessionID
}

// Personalized handles GET /api/recommendations
func (h *RecommendationHandler) Personalized(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recommendations, err := h.personalizedHandler.Handle(r.Context(), query.PersonalizedQuery{
		SessionID: sessionID(r),
		Limit:     limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build recommendations")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to build recommendations",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    recommendations,
	})
}

// Similar handles GET /api/products/{id}/similar
func (h *RecommendationHandler) Similar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recommendations, err := h.similarHandler.Handle(r.Context(), query.SimilarProductsQuery{
		ProductID: uint(id),
		Limit:     limit,
	})
	if err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Product not found",
			})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to find similar products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to find similar products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    recommendations,
	})
}

// ByCategory handles GET /api/recommendations/category/{category}
func (h *RecommendationHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recommendations := h.categoryHandler.Handle(r.Context(), query.CategoryRecommendationsQuery{
		SessionID: sessionID(r),
		Category:  mux.Vars(r)["category"],
		Limit:     limit,
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    recommendations,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
