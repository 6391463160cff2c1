package commands

import (
	"github.com/google/uuid"
)

// Inputs carry pointers so that an absent field can be told apart from a zero value.

type CreateRoomInput struct {
	Name         *string
	SeatCapacity *int
	Amenities    []string
	PricePerHour *float64
}

type CreateBookingInput struct {
	CustomerName *string
	Date         *string
	StartTime    *string
	EndTime      *string
	RoomID       *string

	// IdempotencyKey is optional; nil disables replay protection.
	IdempotencyKey *uuid.UUID
}
