package readstore

import (
	"context"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/converter"
	"hall-booking/internal/usecase/queries"
	"hall-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	uow shared.UnitOfWork
}

func NewBookingReadStore(uow shared.UnitOfWork) *BookingReadStore {
	return &BookingReadStore{
		uow: uow,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var view *queries.BookingView
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		b, err := reads.BookingByID(ctx, id)
		if err != nil {
			return err
		}
		view = converter.BookingToView(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ListWithRoomNames flattens every booking with its room name in creation order.
// Bookings whose room cannot be resolved are left out.
func (r *BookingReadStore) ListWithRoomNames(ctx context.Context) ([]*queries.CustomerBookingView, error) {
	result := []*queries.CustomerBookingView{}
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		bookings, err := reads.ListBookings(ctx)
		if err != nil {
			return err
		}
		names := make(map[uuid.UUID]string)
		for _, b := range bookings {
			name, ok, err := roomName(ctx, reads, names, b.RoomID())
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			result = append(result, converter.BookingToCustomerView(b, name))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *BookingReadStore) FindByCustomerName(ctx context.Context, customerName string) ([]*queries.CustomerBookingDetail, error) {
	customer, err := booking.NewCustomerName(customerName)
	if err != nil {
		return []*queries.CustomerBookingDetail{}, nil
	}

	result := []*queries.CustomerBookingDetail{}
	err = r.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		bookings, err := reads.ListBookings(ctx)
		if err != nil {
			return err
		}
		names := make(map[uuid.UUID]string)
		for _, b := range bookings {
			if !b.Customer().Matches(customer.String()) {
				continue
			}
			name, ok, err := roomName(ctx, reads, names, b.RoomID())
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			result = append(result, converter.BookingToCustomerDetail(b, name))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func roomName(ctx context.Context, reads shared.Reads, cache map[uuid.UUID]string, id uuid.UUID) (string, bool, error) {
	if name, ok := cache[id]; ok {
		return name, true, nil
	}
	rm, err := reads.RoomByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	cache[rm.ID()] = rm.Name()
	return rm.Name(), true, nil
}
