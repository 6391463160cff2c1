package queries

import (
	"context"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	ListWithBookings(ctx context.Context) ([]*RoomOccupancyView, error)
}

//go:generate mockgen -source=room.go -destination=../../../tests/mock/queries/room.go -package=queriesmock
type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	ListWithBookings(ctx context.Context) ([]*RoomOccupancyView, error)
}

type roomQueriesImpl struct {
	repo RoomReadStore
}

func NewRoomQueries(repo RoomReadStore) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, err
	}
	return rv, nil
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.repo.List(ctx)
}

func (q *roomQueriesImpl) ListWithBookings(ctx context.Context) ([]*RoomOccupancyView, error) {
	rows, err := q.repo.ListWithBookings(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Bookings == nil {
			row.Bookings = []*BookingSlotView{}
		}
		row.Status = string(booking.OccupancyOf(len(row.Bookings)))
	}
	return rows, nil
}
