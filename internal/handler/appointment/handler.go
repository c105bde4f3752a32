package appointment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/command"
	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/metrics"
	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/service/appointment"
	"github.com/clinicdesk/clinic-api/internal/service/patient"
)

type Handler struct {
	book     *appointment.Service
	registry *patient.Service
	metrics  *metrics.Metrics
}

func NewHandler(book *appointment.Service, registry *patient.Service, m *metrics.Metrics) *Handler {
	return &Handler{
		book:     book,
		registry: registry,
		metrics:  m,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.ScheduleAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.DELETE("/:id", h.CancelAppointment)
	}

	r.GET("/availability", h.GetAvailability)
}

// ScheduleAppointment books a slot through the schedule command, so a
// successful booking is announced to subscribers in the same call.
func (h *Handler) ScheduleAppointment(c *gin.Context) {
	var req model.ScheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	p := h.registry.FindByID(req.PatientID)
	if p == nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("patient not found"))
		return
	}

	cmd := command.NewScheduleAppointment(h.book, p, req.DateTime, req.Reason)
	if !cmd.Execute() {
		err := cmd.Err()
		c.JSON(handler.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	h.metrics.AppointmentsScheduled.Inc()
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(cmd.Appointment))
}

// ListAppointments returns Scheduled appointments in booking order, or
// the full history of every status when all=true.
func (h *Handler) ListAppointments(c *gin.Context) {
	if c.Query("all") == "true" {
		c.JSON(http.StatusOK, handler.NewSuccessResponse(h.book.All()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.book.AllScheduled()))
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	appt := h.book.FindByID(id)
	if appt == nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("appointment not found"))
		return
	}

	cmd := command.NewCancelAppointment(h.book, appt)
	if !cmd.Execute() {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("appointment not found"))
		return
	}

	h.metrics.AppointmentsCancelled.Inc()
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appt))
}

func (h *Handler) GetAvailability(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.book.Availability()))
}
