//go:build unit || e2e

package builder

import (
	"time"

	dombooking "hall-booking/internal/domain/booking"
	reqdto "hall-booking/internal/handler/dto/request"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	RoomID       uuid.UUID
	RoomName     string
	CustomerName string
	Date         string
	StartTime    string
	EndTime      string
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           uuid.New(),
		RoomID:       uuid.New(),
		RoomName:     "Conference Hall A",
		CustomerName: "Alice",
		Date:         "2025-03-10",
		StartTime:    "10:00",
		EndTime:      "12:00",
		CreatedAt:    time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	customer, err := dombooking.NewCustomerName(b.CustomerName)
	if err != nil {
		return nil, err
	}
	slot, err := b.BuildTimeSlot()
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.ID, b.RoomID, customer, slot, b.CreatedAt)
}

func (b *BookingBuilder) BuildTimeSlot() (dombooking.TimeSlot, error) {
	date, err := dombooking.ParseDate(b.Date)
	if err != nil {
		return dombooking.TimeSlot{}, err
	}
	start, err := dombooking.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return dombooking.TimeSlot{}, err
	}
	end, err := dombooking.ParseTimeOfDay(b.EndTime)
	if err != nil {
		return dombooking.TimeSlot{}, err
	}
	return dombooking.NewTimeSlot(date, start, end)
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	customer := b.CustomerName
	date := b.Date
	start := b.StartTime
	end := b.EndTime
	roomID := b.RoomID.String()
	return commands.CreateBookingInput{
		CustomerName: &customer,
		Date:         &date,
		StartTime:    &start,
		EndTime:      &end,
		RoomID:       &roomID,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	customer := b.CustomerName
	date := b.Date
	start := b.StartTime
	end := b.EndTime
	roomID := b.RoomID.String()
	return reqdto.CreateBookingRequest{
		CustomerName: &customer,
		Date:         &date,
		StartTime:    &start,
		EndTime:      &end,
		RoomID:       &roomID,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:           b.ID,
		RoomID:       b.RoomID,
		CustomerName: b.CustomerName,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       dombooking.StatusConfirmed.String(),
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCustomerView() *queries.CustomerBookingView {
	return &queries.CustomerBookingView{
		CustomerName: b.CustomerName,
		RoomName:     b.RoomName,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
	}
}

func (b *BookingBuilder) BuildCustomerDetail() *queries.CustomerBookingDetail {
	return &queries.CustomerBookingDetail{
		BookingID:    b.ID,
		CustomerName: b.CustomerName,
		RoomName:     b.RoomName,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       dombooking.StatusConfirmed.String(),
		CreatedAt:    b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithRoomID(roomID uuid.UUID) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithRoomName(name string) *BookingBuilder {
	b.RoomName = name
	return b
}

func (b *BookingBuilder) WithCustomerName(name string) *BookingBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlot(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}
