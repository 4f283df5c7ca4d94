package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/idanlevi/cost_manager_app/internal/dto"
	"github.com/idanlevi/cost_manager_app/internal/middleware"
	"github.com/idanlevi/cost_manager_app/internal/platform/config"
	"github.com/idanlevi/cost_manager_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// adminSubject is the JWT subject for the single admin principal.
const adminSubject = "admin"

// defaultAdminPassword is only used when ADMIN_PASSWORD_HASH is unset.
const defaultAdminPassword = "costmanager"

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	passwordHash string
	jwtSecret    string
	jwtDuration  time.Duration
	jwtIssuer    string
}

// NewAuthHandler creates a new AuthHandler. When no admin password hash is
// configured, a hash of the default password is computed at startup.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	passwordHash := cfg.AdminPasswordHash
	if passwordHash == "" {
		hash, err := utils.HashPassword(defaultAdminPassword)
		if err != nil {
			// bcrypt only fails on absurd cost parameters; treat as fatal misconfig.
			panic("failed to hash default admin password: " + err.Error())
		}
		passwordHash = hash
	}

	return &AuthHandler{
		passwordHash: passwordHash,
		jwtSecret:    cfg.JWTSecret,
		jwtDuration:  cfg.JWTExpiryDuration,
		jwtIssuer:    cfg.JWTIssuer,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	// 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
	}
}

// Login godoc
// @Summary Admin login
// @Description Authenticates the admin password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, h.passwordHash) {
		logger.Warn("Failed admin login attempt")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid password"})
		return
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		Issuer:    h.jwtIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.jwtDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to issue token"})
		return
	}

	logger.Info("Admin logged in")
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     signed,
		ExpiresIn: int64(h.jwtDuration.Seconds()),
	})
}
