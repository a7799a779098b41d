package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/alibix/storefront/internal/order/domain"
	"github.com/alibix/storefront/internal/order/usecase/command"
	"github.com/alibix/storefront/internal/order/usecase/query"
	"github.com/alibix/storefront/pkg/logger"
)

// Middleware wraps a handler func, used to guard admin routes
type Middleware func(http.HandlerFunc) http.HandlerFunc

// OrderHandler handles HTTP requests for orders and promo codes
type OrderHandler struct {
	createHandler       *command.CreateOrderHandler
	updateStatusHandler *command.UpdateStatusHandler
	deleteHandler       *command.DeleteOrderHandler

	getHandler   *query.GetOrderHandler
	listHandler  *query.ListOrdersHandler
	statsHandler *query.GetStatsHandler
	promoHandler *query.ResolvePromoHandler

	admin Middleware

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	ordersPlaced   prometheus.Counter
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	createHandler *command.CreateOrderHandler,
	updateStatusHandler *command.UpdateStatusHandler,
	deleteHandler *command.DeleteOrderHandler,
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
	statsHandler *query.GetStatsHandler,
	promoHandler *query.ResolvePromoHandler,
	admin Middleware,
) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_order_requests_total",
			Help: "Total number of requests to the order endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_order_request_duration_seconds",
			Help:    "Duration of order requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Total number of orders placed",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(ordersPlaced)

	return &OrderHandler{
		createHandler:       createHandler,
		updateStatusHandler: updateStatusHandler,
		deleteHandler:       deleteHandler,
		getHandler:          getHandler,
		listHandler:         listHandler,
		statsHandler:        statsHandler,
		promoHandler:        promoHandler,
		admin:               admin,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		ordersPlaced:        ordersPlaced,
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

func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", h.CreateOrder)).Methods("POST")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", h.GetOrder)).Methods("GET")
	router.HandleFunc("/api/promo/validate", h.metricsMiddleware("/api/promo/validate", h.ValidatePromo)).Methods("POST")

	// Admin routes
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", h.admin(h.ListOrders))).Methods("GET")
	router.HandleFunc("/api/orders/stats", h.metricsMiddleware("/api/orders/stats", h.admin(h.GetStats))).Methods("GET")
	router.HandleFunc("/api/orders/{id}/status", h.metricsMiddleware("/api/orders/{id}/status", h.admin(h.UpdateStatus))).Methods("PATCH")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", h.admin(h.DeleteOrder))).Methods("DELETE")
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID          string            `json:"user_id"`
		Items           []domain.LineItem `json:"items"`
		PromoCode       string            `json:"promo_code"`
		PaymentMethod   string            `json:"payment_method"`
		ShippingAddress string            `json:"shipping_address"`
		Phone           string            `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateOrderCommand{
		UserID:          req.UserID,
		Items:           req.Items,
		PromoCode:       req.PromoCode,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
		Phone:           req.Phone,
	}

	order, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create order")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.ordersPlaced.Inc()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    order,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	order, err := h.getHandler.Handle(query.GetOrderQuery{OrderID: id})
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Order not found",
			})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to get order")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get order",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    order,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	q := query.ListOrdersQuery{
		UserID: r.URL.Query().Get("user_id"),
		Status: r.URL.Query().Get("status"),
		Limit:  limit,
	}
	if from := r.URL.Query().Get("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			q.From = t
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			q.To = t
		}
	}

	orders, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list orders",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"orders": orders,
			"total":  len(orders),
		},
	})
}

// UpdateStatus handles PATCH /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	order, err := h.updateStatusHandler.Handle(command.UpdateStatusCommand{OrderID: id, Status: req.Status})
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Order not found",
			})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to update order status")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order status updated",
		Data:    order,
	})
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteOrderCommand{OrderID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete order")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order deleted successfully",
	})
}

// GetStats handles GET /api/orders/stats
func (h *OrderHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get order stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get statistics",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// ValidatePromo handles POST /api/promo/validate
func (h *OrderHandler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code     string  `json:"code"`
		Subtotal float64 `json:"subtotal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result := h.promoHandler.Handle(query.ResolvePromoQuery{Code: req.Code, Subtotal: req.Subtotal})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
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
