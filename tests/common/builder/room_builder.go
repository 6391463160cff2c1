//go:build unit || e2e

package builder

import (
	"time"

	domroom "hall-booking/internal/domain/room"
	reqdto "hall-booking/internal/handler/dto/request"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID           uuid.UUID
	Name         string
	SeatCapacity int
	Amenities    []string
	PricePerHour float64
	CreatedAt    time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:           uuid.New(),
		Name:         "Conference Hall A",
		SeatCapacity: 100,
		Amenities:    []string{"Projector", "AC", "WiFi"},
		PricePerHour: 150,
		CreatedAt:    time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	amenities, err := domroom.NewAmenities(r.Amenities)
	if err != nil {
		return nil, err
	}
	price, err := domroom.NewMoneyFromDecimal(r.PricePerHour)
	if err != nil {
		return nil, err
	}
	return domroom.NewRoom(r.ID, r.Name, r.SeatCapacity, amenities, price, r.CreatedAt)
}

func (r *RoomBuilder) BuildInput() commands.CreateRoomInput {
	name := r.Name
	seats := r.SeatCapacity
	price := r.PricePerHour
	amenities := append([]string{}, r.Amenities...)
	return commands.CreateRoomInput{
		Name:         &name,
		SeatCapacity: &seats,
		Amenities:    amenities,
		PricePerHour: &price,
	}
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	name := r.Name
	seats := r.SeatCapacity
	price := r.PricePerHour
	return reqdto.CreateRoomRequest{
		RoomName:     &name,
		Seats:        &seats,
		Amenities:    append([]string{}, r.Amenities...),
		PricePerHour: &price,
	}
}

func (r *RoomBuilder) BuildViewQuery() *queries.RoomView {
	return &queries.RoomView{
		ID:           r.ID,
		Name:         r.Name,
		SeatCapacity: r.SeatCapacity,
		Amenities:    append([]string{}, r.Amenities...),
		PricePerHour: r.PricePerHour,
		CreatedAt:    r.CreatedAt,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithID(id uuid.UUID) *RoomBuilder {
	r.ID = id
	return r
}

func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}

func (r *RoomBuilder) WithSeatCapacity(seats int) *RoomBuilder {
	r.SeatCapacity = seats
	return r
}

func (r *RoomBuilder) WithAmenities(amenities ...string) *RoomBuilder {
	r.Amenities = amenities
	return r
}

func (r *RoomBuilder) WithPricePerHour(price float64) *RoomBuilder {
	r.PricePerHour = price
	return r
}
