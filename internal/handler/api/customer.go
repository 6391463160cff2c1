package api

import (
	"fmt"
	"net/http"

	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerReportRenderer interface {
	RenderCustomerSummary(s *queries.CustomerBookingSummary) ([]byte, string, error)
}

type CustomerHandler struct {
	q        queries.BookingQueries
	renderer CustomerReportRenderer
}

func NewCustomerHandler(q queries.BookingQueries, renderer CustomerReportRenderer) *CustomerHandler {
	return &CustomerHandler{q: q, renderer: renderer}
}

// @Summary List customer bookings
// @Description List every booking with its customer and room name
// @Tags customers
// @Produce json
// @Success 200 {array} resdto.CustomerBookingResponse
// @Router /api/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	rows, err := h.q.ListCustomerBookings(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	out := make([]*resdto.CustomerBookingResponse, len(rows))
	for i, row := range rows {
		out[i] = resdto.FromCustomerBookingView(row)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Customer booking summary
// @Description Count and list the bookings of one customer (name matched case-insensitively)
// @Tags customers
// @Produce json
// @Param customerName path string true "Customer name"
// @Success 200 {object} resdto.CustomerBookingSummaryResponse
// @Failure 404 {object} httperr.Response
// @Router /api/customers/{customerName}/bookings [get]
func (h *CustomerHandler) Summary(c *gin.Context) {
	summary, err := h.q.GetCustomerBookingSummary(c.Request.Context(), c.Param("customerName"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerBookingSummary(summary))
}

// @Summary Customer booking report
// @Description Download the customer booking summary as a PDF document
// @Tags customers
// @Produce application/pdf
// @Param customerName path string true "Customer name"
// @Success 200 {file} file
// @Failure 404 {object} httperr.Response
// @Router /api/customers/{customerName}/report [get]
func (h *CustomerHandler) Report(c *gin.Context) {
	summary, err := h.q.GetCustomerBookingSummary(c.Request.Context(), c.Param("customerName"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	doc, filename, err := h.renderer.RenderCustomerSummary(summary)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render report", nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}
