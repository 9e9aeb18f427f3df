package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/corebeautylab/salon-scheduler/internal/audit"
	"github.com/corebeautylab/salon-scheduler/internal/httperr"
	"github.com/corebeautylab/salon-scheduler/internal/httpresp"
	"github.com/corebeautylab/salon-scheduler/internal/middleware"
	"github.com/corebeautylab/salon-scheduler/internal/models"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher, log zerolog.Logger) *ClientHandler {
	return &ClientHandler{db: db, audit: audit, log: log}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	q := h.db.Model(&models.Client{})

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		h.log.Error().Err(err).Msg("client list failed")
		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Malformed client id.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextOperatorID).(string)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name is required.")
		return
	}

	client := models.Client{
		Name:  strings.TrimSpace(req.Name),
		Phone: req.Phone,
		Email: req.Email,
	}

	if err := h.db.Create(&client).Error; err != nil {
		h.log.Error().Err(err).Msg("client create failed")
		httperr.Internal(c, "failed_to_create_client", "Could not create the client.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OperatorID: &operatorID,
		Action:     "client_created",
		Entity:     "client",
		EntityID:   &client.ID,
	})

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextOperatorID).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Malformed client id.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			httperr.BadRequest(c, "invalid_request", "Name cannot be empty.")
			return
		}
		client.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}

	if err := h.db.Save(&client).Error; err != nil {
		h.log.Error().Err(err).Msg("client update failed")
		httperr.Internal(c, "failed_to_update_client", "Could not update the client.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OperatorID: &operatorID,
		Action:     "client_updated",
		Entity:     "client",
		EntityID:   &client.ID,
	})

	httpresp.OK(c, client)
}

// Delete removes the client and, through the FK cascade, every
// appointment that references it.
func (h *ClientHandler) Delete(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextOperatorID).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Malformed client id.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		// Explicit cascade: AutoMigrate-managed FKs are not
		// guaranteed on every backend (sqlite in tests).
		if err := tx.Where("client_id = ?", client.ID).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})
	if err != nil {
		h.log.Error().Err(err).Msg("client delete failed")
		httperr.Internal(c, "failed_to_delete_client", "Could not delete the client.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OperatorID: &operatorID,
		Action:     "client_deleted",
		Entity:     "client",
		EntityID:   &client.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
