package converter

import (
	"hall-booking/internal/domain/room"
	"hall-booking/internal/usecase/queries"
)

func RoomToView(r *room.Room) *queries.RoomView {
	return &queries.RoomView{
		ID:           r.ID(),
		Name:         r.Name(),
		SeatCapacity: r.SeatCapacity(),
		Amenities:    r.Amenities().Items(),
		PricePerHour: r.PricePerHour().Decimal(),
		CreatedAt:    r.CreatedAt(),
	}
}
