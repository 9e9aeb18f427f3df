package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/corebeautylab/salon-scheduler/internal/config"
	"github.com/corebeautylab/salon-scheduler/internal/httperr"
	"github.com/corebeautylab/salon-scheduler/internal/httpresp"
	"github.com/corebeautylab/salon-scheduler/internal/middleware"
	"github.com/corebeautylab/salon-scheduler/internal/models"
)

const sessionTTL = 24 * time.Hour

// Revoker invalidates a session token until its natural expiry.
type Revoker interface {
	Blacklist(ctx context.Context, token string, until time.Time) error
}

type AuthHandler struct {
	db      *gorm.DB
	config  *config.Config
	log     zerolog.Logger
	revoker Revoker
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, log zerolog.Logger, revoker Revoker) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, log: log, revoker: revoker}
}

// --------- Requests ---------

type SetupPinRequest struct {
	Pin   string `json:"pin" binding:"required,len=4,numeric"`
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

type LoginRequest struct {
	Pin string `json:"pin" binding:"required,len=4,numeric"`
}

// --------- Handlers ---------

// SetupPin creates the single operator profile. Refused once one
// exists; changing the PIN afterwards is a settings concern.
func (h *AuthHandler) SetupPin(c *gin.Context) {
	var req SetupPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "PIN must be exactly 4 digits.")
		return
	}

	var count int64
	h.db.Model(&models.Operator{}).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "operator_exists", "An operator profile already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Pin), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error().Err(err).Msg("pin hash failed")
		httperr.Internal(c, "failed_to_hash_pin", "Could not store the PIN.")
		return
	}

	name := req.Name
	if name == "" {
		name = "Operator"
	}

	op := models.Operator{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   req.Email,
		PinHash: string(hashed),
	}

	if err := h.db.Create(&op).Error; err != nil {
		h.log.Error().Err(err).Msg("operator create failed")
		httperr.Internal(c, "failed_to_create_operator", "Could not create the operator profile.")
		return
	}

	httpresp.Created(c, gin.H{
		"id":   op.ID,
		"name": op.Name,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "PIN must be exactly 4 digits.")
		return
	}

	var op models.Operator
	if err := h.db.First(&op).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "operator_not_found", "No operator profile is configured.")
			return
		}
		h.log.Error().Err(err).Msg("operator lookup failed")
		httperr.Internal(c, "internal_error", "Login failed.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.PinHash), []byte(req.Pin)); err != nil {
		httperr.Unauthorized(c, "invalid_pin", "Wrong PIN.")
		return
	}

	token, err := h.generateToken(&op)
	if err != nil {
		h.log.Error().Err(err).Msg("token signing failed")
		httperr.Internal(c, "failed_to_generate_token", "Login failed.")
		return
	}

	httpresp.OK(c, gin.H{
		"token": token,
		"operator": gin.H{
			"id":    op.ID,
			"name":  op.Name,
			"email": op.Email,
		},
	})
}

// Logout blacklists the presented token; without a cache backend
// the token simply ages out at its exp.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)

	if h.revoker != nil && token != "" {
		until := time.Now().Add(sessionTTL)
		if exp, ok := c.Get(middleware.ContextTokenExp); ok {
			if t, ok := exp.(time.Time); ok {
				until = t
			}
		}
		if err := h.revoker.Blacklist(c.Request.Context(), token, until); err != nil {
			h.log.Error().Err(err).Msg("token revoke failed")
			httperr.Internal(c, "logout_failed", "Could not revoke the session.")
			return
		}
	}

	httpresp.OK(c, gin.H{"logged_out": true})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(op *models.Operator) (string, error) {
	claims := jwt.MapClaims{
		"sub": op.ID,
		"exp": time.Now().Add(sessionTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
