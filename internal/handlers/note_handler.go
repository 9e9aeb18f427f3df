package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/corebeautylab/salon-scheduler/internal/audit"
	"github.com/corebeautylab/salon-scheduler/internal/config"
	"github.com/corebeautylab/salon-scheduler/internal/httperr"
	"github.com/corebeautylab/salon-scheduler/internal/httpresp"
	"github.com/corebeautylab/salon-scheduler/internal/middleware"
	"github.com/corebeautylab/salon-scheduler/internal/models"
)

type NoteHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
	log    zerolog.Logger
}

func NewNoteHandler(db *gorm.DB, cfg *config.Config, audit *audit.Dispatcher, log zerolog.Logger) *NoteHandler {
	return &NoteHandler{db: db, config: cfg, audit: audit, log: log}
}

// --------- Requests ---------

type CreateNoteRequest struct {
	Date string `json:"date" binding:"required"`
	Body string `json:"body" binding:"required"`
}

type UpdateNoteRequest struct {
	Date *string `json:"date"`
	Body *string `json:"body"`
}

// --------- Handlers ---------

// List returns the journal for an exact date, or everything from
// today onward when no date is given. Ordered by date ascending.
func (h *NoteHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Note{})

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(h.config, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		q = q.Where("date = ?", date)
	} else {
		now := salonNow(h.config)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		q = q.Where("date >= ?", today)
	}

	var notes []models.Note
	if err := q.Order("date ASC").Find(&notes).Error; err != nil {
		h.log.Error().Err(err).Msg("note list failed")
		httperr.Internal(c, "failed_to_list_notes", "Could not list notes.")
		return
	}

	httpresp.List(c, notes)
}

func (h *NoteHandler) Create(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextOperatorID).(string)

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date and body are required.")
		return
	}

	date, err := parseDate(h.config, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	note := models.Note{
		Date: date,
		Body: strings.TrimSpace(req.Body),
	}

	if err := h.db.Create(&note).Error; err != nil {
		h.log.Error().Err(err).Msg("note create failed")
		httperr.Internal(c, "failed_to_create_note", "Could not create the note.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OperatorID: &operatorID,
		Action:     "note_created",
		Entity:     "note",
		EntityID:   &note.ID,
	})

	httpresp.Created(c, note)
}

func (h *NoteHandler) Update(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextOperatorID).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Malformed note id.")
		return
	}

	var note models.Note
	if err := h.db.First(&note, id).Error; err != nil {
		httperr.NotFound(c, "note_not_found", "Note not found.")
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Date != nil {
		date, err := parseDate(h.config, *req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		note.Date = date
	}
	if req.Body != nil {
		if strings.TrimSpace(*req.Body) == "" {
			httperr.BadRequest(c, "invalid_request", "Body cannot be empty.")
			return
		}
		note.Body = strings.TrimSpace(*req.Body)
	}

	if err := h.db.Save(&note).Error; err != nil {
		h.log.Error().Err(err).Msg("note update failed")
		httperr.Internal(c, "failed_to_update_note", "Could not update the note.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OperatorID: &operatorID,
		Action:     "note_updated",
		Entity:     "note",
		EntityID:   &note.ID,
	})

	httpresp.OK(c, note)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextOperatorID).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Malformed note id.")
		return
	}

	var note models.Note
	if err := h.db.First(&note, id).Error; err != nil {
		httperr.NotFound(c, "note_not_found", "Note not found.")
		return
	}

	if err := h.db.Delete(&note).Error; err != nil {
		h.log.Error().Err(err).Msg("note delete failed")
		httperr.Internal(c, "failed_to_delete_note", "Could not delete the note.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OperatorID: &operatorID,
		Action:     "note_deleted",
		Entity:     "note",
		EntityID:   &note.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
