package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/alibix/storefront/internal/auth"
	"github.com/alibix/storefront/pkg/logger"
)

// Credentials holds the configured admin account
type Credentials struct {
	Email        string
	PasswordHash string
}

// AuthHandler handles HTTP requests for admin authentication
type AuthHandler struct {
	jwtService  *auth.JWTService
	credentials Credentials

	loginAttempts *prometheus.CounterVec
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(jwtService *auth.JWTService, credentials Credentials) *AuthHandler {
	loginAttempts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_auth_login_attempts_total",
			Help: "Total number of admin login attempts",
		},
		[]string{"status"},
	)

	prometheus.MustRegister(loginAttempts)

	return &AuthHandler{
		jwtService:    jwtService,
		credentials:   credentials,
		loginAttempts: loginAttempts,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      string    `json:"role"`
}

func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/admin/login", h.Login).Methods("POST")
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Email != h.credentials.Email || !auth.CheckPassword(req.Password, h.credentials.PasswordHash) {
		h.loginAttempts.WithLabelValues(strconv.Itoa(http.StatusUnauthorized)).Inc()
		logger.Warn(r.Context()).Str("email", req.Email).Msg("Rejected admin login attempt")
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Invalid email or password",
		})
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(req.Email, req.Email, "admin")
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to issue admin token")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to issue token",
		})
		return
	}

	h.loginAttempts.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    loginResponse{Token: token, ExpiresAt: expiresAt, Role: "admin"},
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
