package api

import (
	"net/http"

	reqdto "hall-booking/internal/handler/dto/request"
	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderIdempotencyKey     = "Idempotency-Key"
	HeaderIdempotentReplayed = "Idempotent-Replayed"
)

var ErrInvalidIdempotencyKey = errs.New("invalid idempotency key format")

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a room for a time slot. A repeated Idempotency-Key with the same payload replays the original booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key (UUID)"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req.ToInput(key))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/api/bookings/"+result.Booking.ID.String())
	if result.IsReplayed {
		c.Header(HeaderIdempotentReplayed, "true")
		c.JSON(http.StatusOK, resdto.FromBookingView(result.Booking))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(result.Booking))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// idempotencyKey returns nil when the header is absent.
func idempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(HeaderIdempotencyKey)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil || key == uuid.Nil {
		return nil, ErrInvalidIdempotencyKey
	}
	return &key, nil
}
