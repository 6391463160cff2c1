package converter

import (
	"hall-booking/internal/domain/booking"
	"hall-booking/internal/usecase/queries"
)

func BookingToView(b *booking.Booking) *queries.BookingView {
	slot := b.TimeSlot()
	return &queries.BookingView{
		ID:           b.ID(),
		RoomID:       b.RoomID(),
		CustomerName: b.Customer().String(),
		Date:         slot.Date().String(),
		StartTime:    slot.Start().String(),
		EndTime:      slot.End().String(),
		Status:       b.Status().String(),
		CreatedAt:    b.CreatedAt(),
	}
}

func BookingToSlotView(b *booking.Booking) *queries.BookingSlotView {
	slot := b.TimeSlot()
	return &queries.BookingSlotView{
		CustomerName: b.Customer().String(),
		Date:         slot.Date().String(),
		StartTime:    slot.Start().String(),
		EndTime:      slot.End().String(),
	}
}

func BookingToCustomerView(b *booking.Booking, roomName string) *queries.CustomerBookingView {
	slot := b.TimeSlot()
	return &queries.CustomerBookingView{
		CustomerName: b.Customer().String(),
		RoomName:     roomName,
		Date:         slot.Date().String(),
		StartTime:    slot.Start().String(),
		EndTime:      slot.End().String(),
	}
}

func BookingToCustomerDetail(b *booking.Booking, roomName string) *queries.CustomerBookingDetail {
	slot := b.TimeSlot()
	return &queries.CustomerBookingDetail{
		BookingID:    b.ID(),
		CustomerName: b.Customer().String(),
		RoomName:     roomName,
		Date:         slot.Date().String(),
		StartTime:    slot.Start().String(),
		EndTime:      slot.End().String(),
		Status:       b.Status().String(),
		CreatedAt:    b.CreatedAt(),
	}
}
