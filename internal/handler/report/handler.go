package report

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/clinicdesk/clinic-api/internal/service/appointment"
	"github.com/clinicdesk/clinic-api/internal/service/patient"
	"github.com/clinicdesk/clinic-api/internal/service/report"
	"github.com/clinicdesk/clinic-api/internal/service/treatment"
)

const (
	cacheTTL     = 30 * time.Second
	cacheCleanup = time.Minute
)

// Handler generates plain-text reports. Generated text is cached
// briefly; reports are snapshots, not live views.
type Handler struct {
	registry *patient.Service
	book     *appointment.Service
	ledger   *treatment.Service
	cache    *cache.Cache
}

func NewHandler(registry *patient.Service, book *appointment.Service, ledger *treatment.Service) *Handler {
	return &Handler{
		registry: registry,
		book:     book,
		ledger:   ledger,
		cache:    cache.New(cacheTTL, cacheCleanup),
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/patients", h.PatientList)
		reports.GET("/appointments", h.AppointmentsByDay)
		reports.GET("/treatments", h.CommonTreatments)
	}
}

func (h *Handler) PatientList(c *gin.Context) {
	h.respond(c, "patients", func() string {
		return report.PatientList(h.registry.ListAll())
	})
}

// AppointmentsByDay takes the target date as a query parameter. A
// missing or malformed date still yields a 200 with the failure text:
// the report carries its own error, matching the report contract.
func (h *Handler) AppointmentsByDay(c *gin.Context) {
	date := c.Query("date")
	h.respond(c, "appointments:"+date, func() string {
		return report.AppointmentsByDay(h.book.All(), date)
	})
}

func (h *Handler) CommonTreatments(c *gin.Context) {
	h.respond(c, "treatments", func() string {
		return report.CommonTreatments(h.ledger.MostCommon(5))
	})
}

func (h *Handler) respond(c *gin.Context, key string, generate func() string) {
	if text, found := h.cache.Get(key); found {
		c.String(http.StatusOK, text.(string))
		return
	}
	text := generate()
	h.cache.Set(key, text, cache.DefaultExpiration)
	c.String(http.StatusOK, text)
}
