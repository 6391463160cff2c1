package api

import (
	"net/http"

	reqdto "hall-booking/internal/handler/dto/request"
	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary Create room
// @Description Register a bookable room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Create room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	view, err := h.cmds.CreateRoom(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/rooms/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary List rooms with bookings
// @Description List every room with its occupancy status and bookings
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomOccupancyResponse
// @Router /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rows, err := h.q.ListWithBookings(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	out := make([]*resdto.RoomOccupancyResponse, len(rows))
	for i, row := range rows {
		out[i] = resdto.FromRoomOccupancyView(row)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get room
// @Description Get a room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}
