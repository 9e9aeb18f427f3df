package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/corebeautylab/salon-scheduler/internal/httperr"
	"github.com/corebeautylab/salon-scheduler/internal/httpresp"
	"github.com/corebeautylab/salon-scheduler/internal/models"
)

type SettingHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewSettingHandler(db *gorm.DB, log zerolog.Logger) *SettingHandler {
	return &SettingHandler{db: db, log: log}
}

type PutSettingRequest struct {
	Value       string `json:"value" binding:"required"`
	Type        string `json:"type" binding:"omitempty,oneof=string number boolean color json"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (h *SettingHandler) List(c *gin.Context) {
	var settings []models.Setting
	if err := h.db.Order("key ASC").Find(&settings).Error; err != nil {
		h.log.Error().Err(err).Msg("setting list failed")
		httperr.Internal(c, "failed_to_list_settings", "Could not list settings.")
		return
	}

	httpresp.List(c, settings)
}

func (h *SettingHandler) Get(c *gin.Context) {
	key := c.Param("key")

	var setting models.Setting
	if err := h.db.Where("key = ?", key).First(&setting).Error; err != nil {
		httperr.NotFound(c, "setting_not_found", "Setting not found.")
		return
	}

	httpresp.OK(c, setting)
}

// Put upserts a key; settings are free-form typed values so the
// UI can store week start, theme colors and the like.
func (h *SettingHandler) Put(c *gin.Context) {
	key := c.Param("key")

	var req PutSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Value is required.")
		return
	}

	settingType := req.Type
	if settingType == "" {
		settingType = "string"
	}

	var setting models.Setting
	err := h.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			h.log.Error().Err(err).Msg("setting lookup failed")
			httperr.Internal(c, "failed_to_save_setting", "Could not save the setting.")
			return
		}
		setting = models.Setting{Key: key}
	}

	setting.Value = req.Value
	setting.Type = settingType
	setting.Category = req.Category
	setting.Description = req.Description

	if err := h.db.Save(&setting).Error; err != nil {
		h.log.Error().Err(err).Msg("setting save failed")
		httperr.Internal(c, "failed_to_save_setting", "Could not save the setting.")
		return
	}

	httpresp.OK(c, setting)
}
