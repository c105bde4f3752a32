package patient

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/metrics"
	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/service/appointment"
	"github.com/clinicdesk/clinic-api/internal/service/patient"
	"github.com/clinicdesk/clinic-api/internal/service/treatment"
)

type Handler struct {
	registry *patient.Service
	book     *appointment.Service
	ledger   *treatment.Service
	metrics  *metrics.Metrics
}

func NewHandler(registry *patient.Service, book *appointment.Service, ledger *treatment.Service, m *metrics.Metrics) *Handler {
	return &Handler{
		registry: registry,
		book:     book,
		ledger:   ledger,
		metrics:  m,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.RegisterPatient)
		patients.GET("", h.ListPatients)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)

		patients.GET("/:id/appointments", h.ListAppointments)
		patients.GET("/:id/treatments", h.ListTreatments)
		patients.POST("/:id/treatments", h.RecordTreatment)
	}
}

func (h *Handler) RegisterPatient(c *gin.Context) {
	var req model.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	p, err := h.registry.Register(req.Name, req.Phone, req.Address, req.BirthDate, req.MedicalHistory)
	if err != nil {
		c.JSON(handler.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	h.metrics.PatientsRegistered.Inc()
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(p))
}

func (h *Handler) GetPatient(c *gin.Context) {
	p, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(p))
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.registry.Update(id, &req)
	if err != nil {
		c.JSON(handler.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("patient not found"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.registry.FindByID(id)))
}

// ListPatients returns the whole registry, or a substring search over
// names when the name query parameter is present.
func (h *Handler) ListPatients(c *gin.Context) {
	if query := c.Query("name"); query != "" {
		c.JSON(http.StatusOK, handler.NewSuccessResponse(h.registry.FindByName(query)))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.registry.ListAll()))
}

func (h *Handler) ListAppointments(c *gin.Context) {
	p, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.book.AppointmentsForPatient(p)))
}

func (h *Handler) ListTreatments(c *gin.Context) {
	p, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.ledger.TreatmentsForPatient(p)))
}

func (h *Handler) RecordTreatment(c *gin.Context) {
	p, ok := h.lookup(c)
	if !ok {
		return
	}

	var req model.RecordTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	t, err := h.ledger.Record(p, req.Date, req.Description, req.Practitioner)
	if err != nil {
		c.JSON(handler.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	h.metrics.TreatmentsRecorded.Inc()
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(t))
}

func (h *Handler) lookup(c *gin.Context) (*model.Patient, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return nil, false
	}
	p := h.registry.FindByID(id)
	if p == nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("patient not found"))
		return nil, false
	}
	return p, true
}
