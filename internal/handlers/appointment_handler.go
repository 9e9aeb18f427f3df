package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/corebeautylab/salon-scheduler/internal/config"
	"github.com/corebeautylab/salon-scheduler/internal/httperr"
	"github.com/corebeautylab/salon-scheduler/internal/httpresp"
	"github.com/corebeautylab/salon-scheduler/internal/middleware"
	ucAppointment "github.com/corebeautylab/salon-scheduler/internal/usecase/appointment"
)

type AppointmentHandler struct {
	config *config.Config
	log    zerolog.Logger

	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	listUC   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	cfg *config.Config,
	log zerolog.Logger,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		config:   cfg,
		log:      log,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Start     string `json:"start" binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ClientID  *uint   `json:"client_id"`
	ServiceID *uint   `json:"service_id"`
	Start     *string `json:"start"`
	Notes     *string `json:"notes"`
	Completed *bool   `json:"completed"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextOperatorID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Client, service and start are required.")
		return
	}

	start, err := parseStart(h.config, req.Start)
	if err != nil {
		httperr.BadRequest(c, "invalid_start", "Start must be a valid timestamp.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		OperatorID: operatorID,
		ClientID:   req.ClientID,
		ServiceID:  req.ServiceID,
		Start:      start,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "client_not_found"):
			httperr.NotFound(c, "client_not_found", "Client not found.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Service not found.")
		default:
			h.log.Error().Err(err).Msg("appointment create failed")
			httperr.Internal(c, "failed_to_create_appointment", "Could not create the appointment.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// List dispatches on the filter: ?date= for one day, ?start_date=
// &end_date= for an inclusive range, ?client_id= for history,
// otherwise upcoming appointments.
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := parseDate(h.config, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		items, err := h.listUC.ByDay(ctx, day)
		if err != nil {
			h.log.Error().Err(err).Msg("appointment list failed")
			httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
			return
		}
		httpresp.List(c, items)
		return
	}

	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr != "" && endStr != "" {
		from, err := parseDate(h.config, startStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "start_date must be YYYY-MM-DD.")
			return
		}
		to, err := parseDate(h.config, endStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "end_date must be YYYY-MM-DD.")
			return
		}
		if to.Before(from) {
			httperr.BadRequest(c, "invalid_range", "end_date precedes start_date.")
			return
		}
		items, err := h.listUC.ByRange(ctx, from, to)
		if err != nil {
			h.log.Error().Err(err).Msg("appointment list failed")
			httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
			return
		}
		httpresp.List(c, items)
		return
	}

	if clientStr := c.Query("client_id"); clientStr != "" {
		clientID, err := strconv.Atoi(clientStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_id", "Malformed client id.")
			return
		}
		items, err := h.listUC.ByClient(ctx, uint(clientID))
		if err != nil {
			h.log.Error().Err(err).Msg("appointment list failed")
			httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
			return
		}
		httpresp.List(c, items)
		return
	}

	items, err := h.listUC.Upcoming(ctx, salonNow(h.config))
	if err != nil {
		h.log.Error().Err(err).Msg("appointment list failed")
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}
	httpresp.List(c, items)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextOperatorID).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Malformed appointment id.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	in := ucAppointment.UpdateAppointmentInput{
		OperatorID: operatorID,
		ID:         uint(id),
		ClientID:   req.ClientID,
		ServiceID:  req.ServiceID,
		Notes:      req.Notes,
		Completed:  req.Completed,
	}

	if req.Start != nil {
		start, err := parseStart(h.config, *req.Start)
		if err != nil {
			httperr.BadRequest(c, "invalid_start", "Start must be a valid timestamp.")
			return
		}
		in.Start = &start
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), in)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "client_not_found"):
			httperr.NotFound(c, "client_not_found", "Client not found.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Service not found.")
		default:
			h.log.Error().Err(err).Msg("appointment update failed")
			httperr.Internal(c, "failed_to_update_appointment", "Could not update the appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextOperatorID).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Malformed appointment id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), operatorID, uint(id)); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		h.log.Error().Err(err).Msg("appointment delete failed")
		httperr.Internal(c, "failed_to_delete_appointment", "Could not delete the appointment.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
