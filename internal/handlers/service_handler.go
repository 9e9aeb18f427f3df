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

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher, log zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit, log: log}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"omitempty,oneof=FACE HANDS FEET BODY WAXING OTHER"`
	DurationMin int     `json:"duration_min" binding:"omitempty,gte=0"`
	Price       float64 `json:"price" binding:"omitempty,gte=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category" binding:"omitempty,oneof=FACE HANDS FEET BODY WAXING OTHER"`
	DurationMin *int     `json:"duration_min" binding:"omitempty,gte=0"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("category ASC").
		Order("name ASC").
		Find(&services).Error; err != nil {
		h.log.Error().Err(err).Msg("service list failed")
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Malformed service id.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextOperatorID).(string)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name is required and category must be valid.")
		return
	}

	category := req.Category
	if category == "" {
		category = models.CategoryOther
	}

	svc := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Category:    category,
		DurationMin: req.DurationMin,
		Price:       req.Price,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		h.log.Error().Err(err).Msg("service create failed")
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OperatorID: &operatorID,
		Action:     "service_created",
		Entity:     "service",
		EntityID:   &svc.ID,
	})

	httpresp.Created(c, svc)
}

// Update edits the catalog entry. Existing appointments keep the
// duration they snapshotted at creation.
func (h *ServiceHandler) Update(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextOperatorID).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Malformed service id.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			httperr.BadRequest(c, "invalid_request", "Name cannot be empty.")
			return
		}
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.DurationMin != nil {
		svc.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}

	if err := h.db.Save(&svc).Error; err != nil {
		h.log.Error().Err(err).Msg("service update failed")
		httperr.Internal(c, "failed_to_update_service", "Could not update the service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OperatorID: &operatorID,
		Action:     "service_updated",
		Entity:     "service",
		EntityID:   &svc.ID,
	})

	httpresp.OK(c, svc)
}

// Delete removes the catalog entry only. Appointments referencing
// it survive with their service_id nulled and their snapshotted
// duration intact.
func (h *ServiceHandler) Delete(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextOperatorID).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Malformed service id.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Appointment{}).
			Where("service_id = ?", svc.ID).
			Update("service_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&svc).Error
	})
	if err != nil {
		h.log.Error().Err(err).Msg("service delete failed")
		httperr.Internal(c, "failed_to_delete_service", "Could not delete the service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OperatorID: &operatorID,
		Action:     "service_deleted",
		Entity:     "service",
		EntityID:   &svc.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
