//go:build unit

package memstore_test

import (
	"testing"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/memstore"
	"hall-booking/internal/usecase/shared"
	"hall-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomStore(t *testing.T) {
	s := memstore.NewRoomStore()
	first, err := builder.NewRoomBuilder().WithID(uuid.New()).WithName("First").BuildDomain()
	require.NoError(t, err)
	second, err := builder.NewRoomBuilder().WithID(uuid.New()).WithName("Second").BuildDomain()
	require.NoError(t, err)

	require.NoError(t, s.Insert(first))
	require.NoError(t, s.Insert(second))

	t.Run("duplicate id", func(t *testing.T) {
		err := s.Insert(first)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("list keeps insertion order and returns a fresh slice", func(t *testing.T) {
		list := s.List()
		require.Len(t, list, 2)
		assert.Equal(t, "First", list[0].Name())
		assert.Equal(t, "Second", list[1].Name())

		list[0] = nil
		assert.NotNil(t, s.List()[0])
	})

	t.Run("find", func(t *testing.T) {
		got, err := s.FindByID(second.ID())
		require.NoError(t, err)
		assert.Equal(t, second.ID(), got.ID())

		_, err = s.FindByID(uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingStore(t *testing.T) {
	s := memstore.NewBookingStore()
	roomID := uuid.New()

	morning, err := builder.NewBookingBuilder().WithRoomID(roomID).WithSlot("09:00", "10:00").BuildDomain()
	require.NoError(t, err)
	nextDay, err := builder.NewBookingBuilder().WithRoomID(roomID).WithDate("2025-03-11").BuildDomain()
	require.NoError(t, err)
	otherRoom, err := builder.NewBookingBuilder().WithRoomID(uuid.New()).BuildDomain()
	require.NoError(t, err)

	for _, b := range []*booking.Booking{morning, nextDay, otherRoom} {
		require.NoError(t, s.Insert(b))
	}

	t.Run("duplicate id", func(t *testing.T) {
		err := s.Insert(morning)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, 3, s.Len())
	})

	t.Run("room and date index", func(t *testing.T) {
		got := s.FindByRoomAndDate(roomID, morning.TimeSlot().Date())
		require.Len(t, got, 1)
		assert.Equal(t, morning.ID(), got[0].ID())

		assert.Empty(t, s.FindByRoomAndDate(uuid.New(), morning.TimeSlot().Date()))
	})

	t.Run("list keeps creation order", func(t *testing.T) {
		list := s.List()
		require.Len(t, list, 3)
		assert.Equal(t, morning.ID(), list[0].ID())
		assert.Equal(t, otherRoom.ID(), list[2].ID())
	})

	t.Run("find", func(t *testing.T) {
		_, err := s.FindByID(uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, s.Contains(nextDay.ID()))
	})
}

func TestIdempotencyStore(t *testing.T) {
	s := memstore.NewIdempotencyStore()
	rec := shared.IdempotencyRecord{Key: uuid.New(), RequestHash: "abc", ResultBookingID: uuid.New()}

	require.NoError(t, s.Insert(rec))
	assert.True(t, infra.IsKind(s.Insert(rec), infra.KindDuplicateKey))

	got, err := s.Get(rec.Key)
	require.NoError(t, err)
	assert.Equal(t, rec, *got)

	_, err = s.Get(uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
