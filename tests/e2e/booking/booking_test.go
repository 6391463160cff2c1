//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"hall-booking/internal/handler/api"
	"hall-booking/internal/handler/dto/response"
	"hall-booking/tests/common/builder"
	"hall-booking/tests/common/httptest"
	"hall-booking/tests/common/testutil"
	"hall-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roomsURL           = "/api/rooms"
	bookingsURL        = "/api/bookings"
	customersURL       = "/api/customers"
	customerSummaryURL = "/api/customers/%s/bookings"
	customerReportURL  = "/api/customers/%s/report"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) createRoom(t *testing.T, name string) uuid.UUID {
	t.Helper()
	reqBody := builder.NewRoomBuilder().WithName(name).BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody, nil)
	var created response.RoomResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return created.ID
}

func (s *BookingSuite) book(t *testing.T, bb *builder.BookingBuilder, headers map[string]string) *response.BookingResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bb.BuildCreateRequestDTO(), headers)
	var created response.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return &created
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking is confirmed and shows up in occupancy", func() {
		t := s.T()
		roomID := s.createRoom(t, "Hall A")

		created := s.book(t, builder.NewBookingBuilder().WithRoomID(roomID), nil)
		require.Equal(t, "confirmed", created.BookingStatus)
		require.False(t, created.BookingDate.IsZero())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, nil)
		var fetched response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, created.ID, fetched.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, nil)
		var rooms []response.RoomOccupancyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rooms)

		want := []response.RoomOccupancyResponse{{
			RoomID:       roomID,
			RoomName:     "Hall A",
			BookedStatus: "Booked",
			Bookings: []*response.BookingSlotResponse{{
				CustomerName: "Alice", Date: "2025-03-10", StartTime: "10:00", EndTime: "12:00",
			}},
		}}
		if diff := cmp.Diff(want, rooms); diff != "" {
			t.Errorf("occupancy mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: back-to-back and other-day slots do not conflict", func() {
		t := s.T()
		roomID := s.createRoom(t, "Hall A")

		s.book(t, builder.NewBookingBuilder().WithRoomID(roomID).WithSlot("10:00", "12:00"), nil)
		s.book(t, builder.NewBookingBuilder().WithRoomID(roomID).WithSlot("12:00", "13:00"), nil)
		s.book(t, builder.NewBookingBuilder().WithRoomID(roomID).WithDate("2025-03-11"), nil)
	})

	s.Run("Error case: overlapping slot is a conflict", func() {
		t := s.T()
		roomID := s.createRoom(t, "Hall A")
		s.book(t, builder.NewBookingBuilder().WithRoomID(roomID), nil)

		reqBody := builder.NewBookingBuilder().WithRoomID(roomID).WithCustomerName("Bob").WithSlot("11:00", "13:00").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, nil)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already booked")
	})

	s.Run("Error case: unknown room", func() {
		t := s.T()
		reqBody := builder.NewBookingBuilder().WithRoomID(uuid.New()).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room not found")
	})

	s.Run("Error case: validation happens before room lookup", func() {
		t := s.T()
		base := builder.NewBookingBuilder().WithRoomID(uuid.New()).BuildCreateRequestDTO()

		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"missing customerName", testutil.Field("customerName", nil)},
			{"null date", testutil.Null("date")},
			{"bad date", testutil.Field("date", "10-03-2025")},
			{"bad time", testutil.Field("startTime", "25:00")},
			{"reversed slot", testutil.Field("endTime", "09:00")},
			{"bad roomId", testutil.Field("roomId", "room-1")},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, testutil.DtoMap(t, base, tc.mutate), nil)
			httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("Normal case: concurrent requests for one slot yield a single booking", func() {
		t := s.T()
		roomID := s.createRoom(t, "Hall A")

		const n = 16
		codes := make([]int, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				reqBody := builder.NewBookingBuilder().WithRoomID(roomID).WithCustomerName(fmt.Sprintf("guest-%d", i)).BuildCreateRequestDTO()
				codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, nil).Code
			}(i)
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, created)
		require.Equal(t, n-1, conflicts)
	})
}

// =============================================================================
// TestIdempotentBooking
// =============================================================================

func (s *BookingSuite) TestIdempotentBooking() {
	s.Run("Normal case: retry with same key replays the booking", func() {
		t := s.T()
		roomID := s.createRoom(t, "Hall A")
		bb := builder.NewBookingBuilder().WithRoomID(roomID)
		headers := map[string]string{api.HeaderIdempotencyKey: uuid.NewString()}

		first := s.book(t, bb, headers)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bb.BuildCreateRequestDTO(), headers)
		var replayed response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &replayed)
		require.Equal(t, "true", w.Header().Get(api.HeaderIdempotentReplayed))
		if diff := cmp.Diff(*first, replayed, cmpopts.EquateApproxTime(0)); diff != "" {
			t.Errorf("replayed booking mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: same key with a different payload", func() {
		t := s.T()
		roomID := s.createRoom(t, "Hall A")
		headers := map[string]string{api.HeaderIdempotencyKey: uuid.NewString()}
		s.book(t, builder.NewBookingBuilder().WithRoomID(roomID), headers)

		reqBody := builder.NewBookingBuilder().WithRoomID(roomID).WithDate("2025-03-12").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, headers)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Idempotency key reused")
	})

	s.Run("Error case: malformed key", func() {
		t := s.T()
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody,
			map[string]string{api.HeaderIdempotencyKey: "abc"})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid Idempotency-Key")
	})
}

// =============================================================================
// TestCustomerQueries
// =============================================================================

func (s *BookingSuite) TestCustomerQueries() {
	s.Run("Normal case: customer listing and case-insensitive summary", func() {
		t := s.T()
		hallA := s.createRoom(t, "Hall A")
		hallB := s.createRoom(t, "Hall B")

		s.book(t, builder.NewBookingBuilder().WithRoomID(hallA).WithCustomerName("Alice"), nil)
		s.book(t, builder.NewBookingBuilder().WithRoomID(hallB).WithCustomerName("Bob"), nil)
		s.book(t, builder.NewBookingBuilder().WithRoomID(hallB).WithCustomerName("ALICE").WithDate("2025-03-11"), nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, customersURL, nil, nil)
		var rows []response.CustomerBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rows)
		require.Len(t, rows, 3)
		require.Equal(t, "Hall A", rows[0].RoomName)
		require.Equal(t, "Bob", rows[1].CustomerName)

		var lower, upper response.CustomerBookingSummaryResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(customerSummaryURL, "alice"), nil, nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &lower)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(customerSummaryURL, "ALICE"), nil, nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &upper)

		require.Equal(t, "Alice", lower.CustomerName)
		require.Equal(t, 2, lower.TotalBookings)
		require.Equal(t, "Hall B", lower.Bookings[1].RoomName)
		if diff := cmp.Diff(lower, upper); diff != "" {
			t.Errorf("summary differs by lookup case (-lower +upper):\n%s", diff)
		}
	})

	s.Run("Normal case: PDF report", func() {
		t := s.T()
		roomID := s.createRoom(t, "Hall A")
		s.book(t, builder.NewBookingBuilder().WithRoomID(roomID), nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(customerReportURL, "alice"), nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		require.Equal(t, `attachment; filename="bookings_Alice.pdf"`, w.Header().Get("Content-Disposition"))
		require.Equal(t, "%PDF-", w.Body.String()[:5])
	})

	s.Run("Error case: unknown customer", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(customerSummaryURL, "nobody"), nil, nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No bookings found")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(customerReportURL, "nobody"), nil, nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No bookings found")
	})
}
