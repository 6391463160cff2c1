//go:build e2e

package room_test

import (
	"net/http"
	"testing"

	"hall-booking/internal/handler/dto/response"
	"hall-booking/tests/common/builder"
	"hall-booking/tests/common/httptest"
	"hall-booking/tests/common/testutil"
	"hall-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const roomsURL = "/api/rooms"

type RoomSuite struct {
	e2e.SharedSuite
}

func TestRoomSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RoomSuite))
}

// =============================================================================
// TestCreateRoom
// =============================================================================

func (s *RoomSuite) TestCreateRoom() {
	s.Run("Normal case: created room is listed and retrievable", func() {
		t := s.T()
		reqBody := builder.NewRoomBuilder().BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody, nil)
		var created response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, roomsURL+"/"+created.ID.String(), w.Header().Get("Location"))

		want := response.RoomResponse{
			RoomName:     "Conference Hall A",
			Seats:        100,
			Amenities:    []string{"Projector", "AC", "WiFi"},
			PricePerHour: 150,
		}
		if diff := cmp.Diff(want, created, cmpopts.IgnoreFields(response.RoomResponse{}, "ID", "CreatedAt")); diff != "" {
			t.Errorf("created room mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/"+created.ID.String(), nil, nil)
		var fetched response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, created.ID, fetched.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, nil)
		var listed []response.RoomOccupancyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, "Available", listed[0].BookedStatus)
		require.Empty(t, listed[0].Bookings)
	})

	s.Run("Normal case: free room with no amenities", func() {
		t := s.T()
		reqBody := builder.NewRoomBuilder().WithAmenities().WithPricePerHour(0).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, reqBody, nil)
		var created response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, float64(0), created.PricePerHour)
		require.Equal(t, []string{}, created.Amenities)
	})

	s.Run("Error case: missing and null fields are rejected", func() {
		t := s.T()
		reqBody := builder.NewRoomBuilder().BuildCreateRequestDTO()

		for _, mutate := range []func(map[string]any){
			testutil.Field("seats", nil),
			testutil.Null("roomName"),
			testutil.Field("amenities", nil),
			testutil.Null("pricePerHour"),
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, testutil.DtoMap(t, reqBody, mutate), nil)
			httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, nil)
		require.JSONEq(t, "[]", w.Body.String())
	})

	s.Run("Error case: non-JSON body", func() {
		t := s.T()
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, roomsURL, []byte("roomName=A"),
			map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
		httptest.AssertErrorResponse(t, w, http.StatusUnsupportedMediaType, "application/json")
	})
}

func (s *RoomSuite) TestUnknownRoute() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/nowhere", nil, nil)
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
}

func (s *RoomSuite) TestHealth() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
}
