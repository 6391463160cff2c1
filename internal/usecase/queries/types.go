package queries

import (
	"time"

	"github.com/google/uuid"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	SeatCapacity int       `json:"seat_capacity"`
	Amenities    []string  `json:"amenities"`
	PricePerHour float64   `json:"price_per_hour"`
	CreatedAt    time.Time `json:"created_at"`
}

// BookingView represents a single booking as stored
type BookingView struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"room_id"`
	CustomerName string    `json:"customer_name"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingSlotView struct {
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

// RoomOccupancyView is a room joined with every booking that references it
type RoomOccupancyView struct {
	RoomID   uuid.UUID          `json:"room_id"`
	RoomName string             `json:"room_name"`
	Status   string             `json:"status"`
	Bookings []*BookingSlotView `json:"bookings"`
}

// CustomerBookingView is a booking flattened with its room name
type CustomerBookingView struct {
	CustomerName string `json:"customer_name"`
	RoomName     string `json:"room_name"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

type CustomerBookingDetail struct {
	BookingID    uuid.UUID `json:"booking_id"`
	CustomerName string    `json:"customer_name"`
	RoomName     string    `json:"room_name"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type CustomerBookingSummary struct {
	CustomerName  string                   `json:"customer_name"`
	TotalBookings int                      `json:"total_bookings"`
	Bookings      []*CustomerBookingDetail `json:"bookings"`
}
