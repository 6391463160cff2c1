package queries

import (
	"context"
	"strings"

	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListWithRoomNames(ctx context.Context) ([]*CustomerBookingView, error)
	FindByCustomerName(ctx context.Context, customerName string) ([]*CustomerBookingDetail, error)
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock
type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListCustomerBookings(ctx context.Context) ([]*CustomerBookingView, error)
	GetCustomerBookingSummary(ctx context.Context, customerName string) (*CustomerBookingSummary, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	bv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	return bv, nil
}

func (q *bookingQueriesImpl) ListCustomerBookings(ctx context.Context) ([]*CustomerBookingView, error) {
	rows, err := q.repo.ListWithRoomNames(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*CustomerBookingView{}
	}
	return rows, nil
}

// GetCustomerBookingSummary matches names case-insensitively. The summary carries
// the name as written on the customer's earliest booking, so lookups that differ
// only in case produce identical results.
func (q *bookingQueriesImpl) GetCustomerBookingSummary(ctx context.Context, customerName string) (*CustomerBookingSummary, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, errs.ErrNoBookingsFound
	}

	rows, err := q.repo.FindByCustomerName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.ErrNoBookingsFound
	}

	return &CustomerBookingSummary{
		CustomerName:  rows[0].CustomerName,
		TotalBookings: len(rows),
		Bookings:      rows,
	}, nil
}
