//go:build unit

package uow_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"hall-booking/internal/infra"
	"hall-booking/internal/infra/uow"
	"hall-booking/internal/usecase/shared"
	"hall-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errAbort = errors.New("abort")

func TestMemoryUoW_Within(t *testing.T) {
	ctx := context.Background()

	t.Run("commits staged writes when fn succeeds", func(t *testing.T) {
		stores := uow.NewStores()
		u := uow.NewMemoryUoW(stores)
		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		bk, err := builder.NewBookingBuilder().WithRoomID(rm.ID()).BuildDomain()
		require.NoError(t, err)

		err = u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Rooms().Create(ctx, rm); err != nil {
				return err
			}
			_, err := tx.Bookings().Create(ctx, bk)
			return err
		})

		require.NoError(t, err)
		assert.Equal(t, 1, stores.Rooms.Len())
		assert.Equal(t, 1, stores.Bookings.Len())
	})

	t.Run("discards every staged write when fn fails", func(t *testing.T) {
		stores := uow.NewStores()
		u := uow.NewMemoryUoW(stores)
		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		err = u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Rooms().Create(ctx, rm); err != nil {
				return err
			}
			require.NoError(t, tx.Idempotency().Save(ctx, shared.IdempotencyRecord{Key: uuid.New()}))
			return errAbort
		})

		require.ErrorIs(t, err, errAbort)
		assert.Equal(t, 0, stores.Rooms.Len())
		assert.False(t, stores.Rooms.Contains(rm.ID()))
	})

	t.Run("reads inside tx observe staged writes", func(t *testing.T) {
		stores := uow.NewStores()
		u := uow.NewMemoryUoW(stores)
		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		bb := builder.NewBookingBuilder().WithRoomID(rm.ID())
		bk, err := bb.BuildDomain()
		require.NoError(t, err)
		key := uuid.New()

		err = u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, _ = tx.Rooms().Create(ctx, rm)
			_, _ = tx.Bookings().Create(ctx, bk)
			_ = tx.Idempotency().Save(ctx, shared.IdempotencyRecord{Key: key, ResultBookingID: bk.ID()})

			got, err := tx.Reads().RoomByID(ctx, rm.ID())
			require.NoError(t, err)
			assert.Equal(t, rm.ID(), got.ID())

			rooms, err := tx.Reads().ListRooms(ctx)
			require.NoError(t, err)
			assert.Len(t, rooms, 1)

			sameDay, err := tx.Reads().BookingsByRoomAndDate(ctx, rm.ID(), bk.TimeSlot().Date())
			require.NoError(t, err)
			assert.Len(t, sameDay, 1)

			found, err := tx.Reads().BookingByID(ctx, bk.ID())
			require.NoError(t, err)
			assert.Equal(t, bk.ID(), found.ID())

			rec, err := tx.Reads().IdempotencyByKey(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, bk.ID(), rec.ResultBookingID)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("rejects duplicate keys within one tx", func(t *testing.T) {
		u := uow.NewMemoryUoW(uow.NewStores())
		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		key := uuid.New()

		err = u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Rooms().Create(ctx, rm)
			require.NoError(t, err)
			_, err = tx.Rooms().Create(ctx, rm)
			assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

			require.NoError(t, tx.Idempotency().Save(ctx, shared.IdempotencyRecord{Key: key}))
			err = tx.Idempotency().Save(ctx, shared.IdempotencyRecord{Key: key})
			assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("rejects ids already committed", func(t *testing.T) {
		stores := uow.NewStores()
		u := uow.NewMemoryUoW(stores)
		bk, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, stores.Bookings.Insert(bk))

		err = u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Bookings().Create(ctx, bk)
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, 1, stores.Bookings.Len())
	})

	t.Run("cancelled context never runs fn", func(t *testing.T) {
		u := uow.NewMemoryUoW(uow.NewStores())
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		called := false
		err := u.Within(cctx, func(context.Context, shared.Tx) error {
			called = true
			return nil
		})

		assert.False(t, called)
		assert.True(t, infra.IsKind(err, infra.KindCanceled))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMemoryUoW_WithinReadOnly(t *testing.T) {
	ctx := context.Background()

	t.Run("sees committed state only", func(t *testing.T) {
		stores := uow.NewStores()
		u := uow.NewMemoryUoW(stores)
		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, stores.Rooms.Insert(rm))

		err = u.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
			rooms, err := reads.ListRooms(ctx)
			require.NoError(t, err)
			assert.Len(t, rooms, 1)

			_, err = reads.BookingByID(ctx, uuid.New())
			assert.True(t, infra.IsKind(err, infra.KindNotFound))
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		u := uow.NewMemoryUoW(uow.NewStores())
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := u.WithinReadOnly(cctx, func(context.Context, shared.Reads) error { return nil })
		assert.True(t, infra.IsKind(err, infra.KindCanceled))
	})

	t.Run("readers never observe a half-applied unit", func(t *testing.T) {
		stores := uow.NewStores()
		u := uow.NewMemoryUoW(stores)

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				rm, err := builder.NewRoomBuilder().WithID(uuid.New()).BuildDomain()
				if err != nil {
					return
				}
				bk, err := builder.NewBookingBuilder().WithRoomID(rm.ID()).BuildDomain()
				if err != nil {
					return
				}
				_ = u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
					if _, err := tx.Rooms().Create(ctx, rm); err != nil {
						return err
					}
					_, err := tx.Bookings().Create(ctx, bk)
					return err
				})
			}()
			go func() {
				defer wg.Done()
				_ = u.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
					rooms, _ := reads.ListRooms(ctx)
					bookings, _ := reads.ListBookings(ctx)
					assert.Equal(t, len(rooms), len(bookings))
					return nil
				})
			}()
		}
		wg.Wait()

		assert.Equal(t, 16, stores.Rooms.Len())
		assert.Equal(t, 16, stores.Bookings.Len())
	})
}
