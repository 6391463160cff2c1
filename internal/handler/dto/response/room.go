package response

import (
	"time"

	"hall-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomName     string    `json:"roomName"`
	Seats        int       `json:"seats"`
	Amenities    []string  `json:"amenities"`
	PricePerHour float64   `json:"pricePerHour"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BookingSlotResponse struct {
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

type RoomOccupancyResponse struct {
	RoomID       uuid.UUID              `json:"roomId"`
	RoomName     string                 `json:"roomName"`
	BookedStatus string                 `json:"bookedStatus"`
	Bookings     []*BookingSlotResponse `json:"bookings"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	amenities := v.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &RoomResponse{
		ID:           v.ID,
		RoomName:     v.Name,
		Seats:        v.SeatCapacity,
		Amenities:    amenities,
		PricePerHour: v.PricePerHour,
		CreatedAt:    v.CreatedAt,
	}
}

func FromRoomOccupancyView(v *queries.RoomOccupancyView) *RoomOccupancyResponse {
	bookings := make([]*BookingSlotResponse, len(v.Bookings))
	for i, b := range v.Bookings {
		bookings[i] = &BookingSlotResponse{
			CustomerName: b.CustomerName,
			Date:         b.Date,
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
		}
	}
	return &RoomOccupancyResponse{
		RoomID:       v.RoomID,
		RoomName:     v.RoomName,
		BookedStatus: v.Status,
		Bookings:     bookings,
	}
}
