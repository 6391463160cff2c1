package readstore

import (
	"context"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra/converter"
	"hall-booking/internal/usecase/queries"
	"hall-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomReadStore struct {
	uow shared.UnitOfWork
}

func NewRoomReadStore(uow shared.UnitOfWork) *RoomReadStore {
	return &RoomReadStore{
		uow: uow,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	var view *queries.RoomView
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		rm, err := reads.RoomByID(ctx, id)
		if err != nil {
			return err
		}
		view = converter.RoomToView(rm)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *RoomReadStore) List(ctx context.Context) ([]*queries.RoomView, error) {
	var result []*queries.RoomView
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		rooms, err := reads.ListRooms(ctx)
		if err != nil {
			return err
		}
		result = make([]*queries.RoomView, len(rooms))
		for i, rm := range rooms {
			result[i] = converter.RoomToView(rm)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListWithBookings joins every room with the bookings referencing it, rooms in
// registration order and bookings in creation order.
func (r *RoomReadStore) ListWithBookings(ctx context.Context) ([]*queries.RoomOccupancyView, error) {
	var result []*queries.RoomOccupancyView
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		rooms, err := reads.ListRooms(ctx)
		if err != nil {
			return err
		}
		bookings, err := reads.ListBookings(ctx)
		if err != nil {
			return err
		}

		byRoom := make(map[uuid.UUID][]*queries.BookingSlotView, len(rooms))
		for _, b := range bookings {
			byRoom[b.RoomID()] = append(byRoom[b.RoomID()], converter.BookingToSlotView(b))
		}

		result = make([]*queries.RoomOccupancyView, len(rooms))
		for i, rm := range rooms {
			slots := byRoom[rm.ID()]
			if slots == nil {
				slots = []*queries.BookingSlotView{}
			}
			result[i] = &queries.RoomOccupancyView{
				RoomID:   rm.ID(),
				RoomName: rm.Name(),
				Status:   string(booking.OccupancyOf(len(slots))),
				Bookings: slots,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
