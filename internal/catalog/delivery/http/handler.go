package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/alibix/storefront/internal/catalog/usecase/command"
	"github.com/alibix/storefront/internal/catalog/usecase/query"
	"github.com/alibix/storefront/pkg/logger"
)

// Middleware wraps a handler func, used to guard admin routes
type Middleware func(http.HandlerFunc) http.HandlerFunc

// PassThrough is the no-op middleware for setups without auth
func PassThrough(next http.HandlerFunc) http.HandlerFunc { return next }

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	createHandler         *command.CreateProductHandler
	updateHandler         *command.UpdateProductHandler
	deleteHandler         *command.DeleteProductHandler
	updateStockHandler    *command.UpdateStockHandler
	applyDiscountHandler  *command.ApplyDiscountHandler
	removeDiscountHandler *command.RemoveDiscountHandler
	saveCategoryHandler   *command.SaveCategoryHandler
	deleteCategoryHandler *command.DeleteCategoryHandler

	getProductHandler  *query.GetProductHandler
	listHandler        *query.ListProductsHandler
	searchHandler      *query.SearchProductsHandler
	relatedHandler     *query.GetRelatedHandler
	inventoryHandler   *query.InventoryReportHandler
	listCategories     *query.ListCategoriesHandler
	getCategoryHandler *query.GetCategoryHandler

	admin Middleware

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	updateStockHandler *command.UpdateStockHandler,
	applyDiscountHandler *command.ApplyDiscountHandler,
	removeDiscountHandler *command.RemoveDiscountHandler,
	saveCategoryHandler *command.SaveCategoryHandler,
	deleteCategoryHandler *command.DeleteCategoryHandler,
	getProductHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	searchHandler *query.SearchProductsHandler,
	relatedHandler *query.GetRelatedHandler,
	inventoryHandler *query.InventoryReportHandler,
	listCategories *query.ListCategoriesHandler,
	getCategoryHandler *query.GetCategoryHandler,
	admin Middleware,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_requests_total",
			Help: "Total number of requests to the catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "storefront_catalog_request_duration_summary",
			Help: "Summary of catalog request durations with percentiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)

	return &CatalogHandler{
		createHandler:         createHandler,
		updateHandler:         updateHandler,
		deleteHandler:         deleteHandler,
		updateStockHandler:    updateStockHandler,
		applyDiscountHandler:  applyDiscountHandler,
		removeDiscountHandler: removeDiscountHandler,
		saveCategoryHandler:   saveCategoryHandler,
		deleteCategoryHandler: deleteCategoryHandler,
		getProductHandler:     getProductHandler,
		listHandler:           listHandler,
		searchHandler:         searchHandler,
		relatedHandler:        relatedHandler,
		inventoryHandler:      inventoryHandler,
		listCategories:        listCategories,
		getCategoryHandler:    getCategoryHandler,
		admin:                 admin,
		requestCounter:        requestCounter,
		requestLatency:        requestLatency,
		requestSummary:        requestSummary,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/search", h.metricsMiddleware("/api/products/search", h.SearchProducts)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}/related", h.metricsMiddleware("/api/products/{id}/related", h.GetRelated)).Methods("GET")
	router.HandleFunc("/api/categories", h.metricsMiddleware("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/categories/{slug}", h.metricsMiddleware("/api/categories/{slug}", h.GetCategory)).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.admin(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.admin(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.admin(h.DeleteProduct))).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/stock", h.metricsMiddleware("/api/products/{id}/stock", h.admin(h.UpdateStock))).Methods("PATCH")
	router.HandleFunc("/api/products/{id}/discount", h.metricsMiddleware("/api/products/{id}/discount", h.admin(h.ApplyDiscount))).Methods("PUT")
	router.HandleFunc("/api/products/{id}/discount", h.metricsMiddleware("/api/products/{id}/discount", h.admin(h.RemoveDiscount))).Methods("DELETE")
	router.HandleFunc("/api/categories", h.metricsMiddleware("/api/categories", h.admin(h.SaveCategory))).Methods("POST")
	router.HandleFunc("/api/categories/{id}", h.metricsMiddleware("/api/categories/{id}", h.admin(h.DeleteCategory))).Methods("DELETE")
	router.HandleFunc("/api/admin/inventory", h.metricsMiddleware("/api/admin/inventory", h.admin(h.InventoryReport))).Methods("GET")
}

type productRequest struct {
	Name          string   `json:"name"`
	NameUrdu      string   `json:"name_urdu"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price"`
	Stock         int      `json:"stock"`
	Featured      bool     `json:"featured"`
	IsNew         bool     `json:"is_new"`
	Images        []string `json:"images"`
}

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateProductCommand{
		Name:          req.Name,
		NameUrdu:      req.NameUrdu,
		Description:   req.Description,
		Category:      req.Category,
		Brand:         req.Brand,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		Featured:      req.Featured,
		IsNew:         req.IsNew,
		Images:        req.Images,
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{
		Category:   r.URL.Query().Get("category"),
		Collection: r.URL.Query().Get("collection"),
	}

	products, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// SearchProducts handles GET /api/products/search
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := query.SearchProductsQuery{Query: r.URL.Query().Get("q")}

	products, err := h.searchHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to search products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to search products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
			"query":    q.Query,
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	product, err := h.getProductHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// GetRelated handles GET /api/products/{id}/related
func (h *CatalogHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.relatedHandler.Handle(query.GetRelatedQuery{ProductID: id, Limit: limit})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    products,
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateProductCommand{
		ID:            id,
		Name:          req.Name,
		NameUrdu:      req.NameUrdu,
		Description:   req.Description,
		Category:      req.Category,
		Brand:         req.Brand,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		Featured:      req.Featured,
		IsNew:         req.IsNew,
		Images:        req.Images,
	}

	product, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// UpdateStock handles PATCH /api/products/{id}/stock
func (h *CatalogHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Stock int `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.updateStockHandler.Handle(command.UpdateStockCommand{ID: id, Stock: req.Stock}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update stock")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
	})
}

// ApplyDiscount handles PUT /api/products/{id}/discount
func (h *CatalogHandler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		DiscountPrice float64 `json:"discount_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.ApplyDiscountCommand{ID: id, DiscountPrice: req.DiscountPrice}
	if err := h.applyDiscountHandler.Handle(cmd); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to apply discount")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Discount applied successfully",
	})
}

// RemoveDiscount handles DELETE /api/products/{id}/discount
func (h *CatalogHandler) RemoveDiscount(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.removeDiscountHandler.Handle(command.RemoveDiscountCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to remove discount")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Discount removed successfully",
	})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listCategories.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list categories")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list categories",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    categories,
	})
}

// GetCategory handles GET /api/categories/{slug}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, err := h.getCategoryHandler.Handle(query.GetCategoryQuery{Slug: slug})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Category not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    category,
	})
}

// SaveCategory handles POST /api/categories
func (h *CatalogHandler) SaveCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		NameUrdu string `json:"name_urdu"`
		Slug     string `json:"slug"`
		Image    string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.SaveCategoryCommand{
		ID:       req.ID,
		Name:     req.Name,
		NameUrdu: req.NameUrdu,
		Slug:     req.Slug,
		Image:    req.Image,
	}

	category, err := h.saveCategoryHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to save category")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category saved successfully",
		Data:    category,
	})
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.deleteCategoryHandler.Handle(command.DeleteCategoryCommand{ID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete category")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category deleted successfully",
	})
}

// InventoryReport handles GET /api/admin/inventory
func (h *CatalogHandler) InventoryReport(w http.ResponseWriter, r *http.Request) {
	threshold, _ := strconv.Atoi(r.URL.Query().Get("threshold"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	report, err := h.inventoryHandler.Handle(query.InventoryReportQuery{
		LowStockThreshold: threshold,
		TopSellingLimit:   limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build inventory report")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to build inventory report",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    report,
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
