package api

import (
	"net/http"

	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	ref    error
	status int
	msg    string
}

var useCaseErrors = []errorMapping{
	{ref: errs.ErrValidation, status: http.StatusBadRequest, msg: "Invalid request"},
	{ref: errs.ErrRoomNotFound, status: http.StatusNotFound, msg: "Room not found"},
	{ref: errs.ErrBookingConflict, status: http.StatusConflict, msg: "Room is already booked for the given time"},
	{ref: errs.ErrNoBookingsFound, status: http.StatusNotFound, msg: "No bookings found for this customer"},
	{ref: errs.ErrIdempotencyConflict, status: http.StatusConflict, msg: "Idempotency key reused with a different request"},
}

// abortWithUseCaseError maps use case errors to statuses. Validation errors carry
// their message as detail; anything unmapped becomes a bare 500.
func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range useCaseErrors {
		if errs.Is(err, m.ref) {
			var detail any
			if m.status == http.StatusBadRequest {
				detail = err.Error()
			}
			httperr.AbortWithError(c, m.status, err, m.msg, detail)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
