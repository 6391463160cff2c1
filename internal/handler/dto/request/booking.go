package request

import (
	"hall-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerName *string `json:"customerName"`
	Date         *string `json:"date"`
	StartTime    *string `json:"startTime"`
	EndTime      *string `json:"endTime"`
	RoomID       *string `json:"roomId"`
}

func (r CreateBookingRequest) ToInput(idempotencyKey *uuid.UUID) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		CustomerName:   r.CustomerName,
		Date:           r.Date,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		RoomID:         r.RoomID,
		IdempotencyKey: idempotencyKey,
	}
}
