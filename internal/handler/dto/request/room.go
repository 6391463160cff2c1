package request

import (
	"hall-booking/internal/usecase/commands"
)

// Fields are pointers so that a missing or null field reaches the use case as absent
// instead of as a zero value.
type CreateRoomRequest struct {
	RoomName     *string  `json:"roomName"`
	Seats        *int     `json:"seats"`
	Amenities    []string `json:"amenities"`
	PricePerHour *float64 `json:"pricePerHour"`
}

func (r CreateRoomRequest) ToInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		Name:         r.RoomName,
		SeatCapacity: r.Seats,
		Amenities:    r.Amenities,
		PricePerHour: r.PricePerHour,
	}
}
