package errs

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Validation errors
	ErrValidation = New("validation error")

	// Room errors
	ErrRoomNotFound = New("room not found")

	// Booking errors
	ErrBookingConflict = New("room is already booked for the given time")
	ErrNoBookingsFound = New("no bookings found for this customer")

	// Idempotency errors
	ErrIdempotencyConflict = New("idempotency key reused with a different request")
)
