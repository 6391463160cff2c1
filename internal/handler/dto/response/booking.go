package response

import (
	"time"

	"hall-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customerName"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	RoomID        uuid.UUID `json:"roomId"`
	BookingDate   time.Time `json:"bookingDate"`
	BookingStatus string    `json:"bookingStatus"`
}

type CustomerBookingResponse struct {
	CustomerName string `json:"customerName"`
	RoomName     string `json:"roomName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

type CustomerBookingDetailResponse struct {
	BookingID     uuid.UUID `json:"bookingId"`
	RoomName      string    `json:"roomName"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	BookingDate   time.Time `json:"bookingDate"`
	BookingStatus string    `json:"bookingStatus"`
}

type CustomerBookingSummaryResponse struct {
	CustomerName  string                           `json:"customerName"`
	TotalBookings int                              `json:"totalBookings"`
	Bookings      []*CustomerBookingDetailResponse `json:"bookings"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            v.ID,
		CustomerName:  v.CustomerName,
		Date:          v.Date,
		StartTime:     v.StartTime,
		EndTime:       v.EndTime,
		RoomID:        v.RoomID,
		BookingDate:   v.CreatedAt,
		BookingStatus: v.Status,
	}
}

func FromCustomerBookingView(v *queries.CustomerBookingView) *CustomerBookingResponse {
	return &CustomerBookingResponse{
		CustomerName: v.CustomerName,
		RoomName:     v.RoomName,
		Date:         v.Date,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
	}
}

func FromCustomerBookingSummary(s *queries.CustomerBookingSummary) *CustomerBookingSummaryResponse {
	bookings := make([]*CustomerBookingDetailResponse, len(s.Bookings))
	for i, b := range s.Bookings {
		bookings[i] = &CustomerBookingDetailResponse{
			BookingID:     b.BookingID,
			RoomName:      b.RoomName,
			Date:          b.Date,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			BookingDate:   b.CreatedAt,
			BookingStatus: b.Status,
		}
	}
	return &CustomerBookingSummaryResponse{
		CustomerName:  s.CustomerName,
		TotalBookings: s.TotalBookings,
		Bookings:      bookings,
	}
}
