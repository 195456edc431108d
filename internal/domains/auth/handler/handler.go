package handler

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"distribution-oos-backend/internal/config"
	"distribution-oos-backend/internal/shared/response"
	"distribution-oos-backend/pkg/jwt"
)

type TokenRequest struct {
	Operator string `json:"operator"`
	APIKey   string `json:"api_key"`
}

func (req TokenRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Operator, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.APIKey, validation.Required),
	)
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // seconds
}

type Handler struct {
	cfg        *config.Config
	jwtManager *jwt.Manager
}

func NewHandler(cfg *config.Config, jwtManager *jwt.Manager) *Handler {
	return &Handler{cfg: cfg, jwtManager: jwtManager}
}

// IssueToken đổi operator API key lấy JWT cho admin surface
// POST /auth/token
func (h *Handler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "VALIDATION_ERROR", err.Error())
		return
	}

	if h.cfg.Auth.OperatorKeyHash == "" {
		response.Unauthorized(c, "Operator access is not configured")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.Auth.OperatorKeyHash), []byte(req.APIKey)); err != nil {
		response.Unauthorized(c, "Invalid operator credentials")
		return
	}

	token, err := h.jwtManager.GenerateOperatorToken(req.Operator)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token")
		return
	}

	response.Success(c, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   h.cfg.Auth.TokenExpiryHours * 3600,
	})
}
