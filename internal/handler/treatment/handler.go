package treatment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/service/treatment"
)

const defaultTopN = 5

type Handler struct {
	ledger *treatment.Service
}

func NewHandler(ledger *treatment.Service) *Handler {
	return &Handler{ledger: ledger}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	treatments := r.Group("/treatments")
	{
		treatments.GET("/common", h.MostCommon)
	}
}

func (h *Handler) MostCommon(c *gin.Context) {
	topN := defaultTopN
	if raw := c.Query("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("top must be a non-negative integer"))
			return
		}
		topN = n
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.ledger.MostCommon(topN)))
}
