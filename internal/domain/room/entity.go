package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName      = errors.New("room name cannot be empty")
	ErrRoomNameTooLong    = errors.New("room name is too long (max 255 characters)")
	ErrInvalidSeatCount   = errors.New("seat capacity must be a positive integer")
	ErrEmptyAmenity       = errors.New("amenity cannot be empty")
	ErrNegativePrice      = errors.New("price per hour cannot be negative")
	ErrPriceTooPrecise    = errors.New("price per hour cannot have more than two decimal places")
	ErrPriceOutOfRange    = errors.New("price per hour is out of range")
	ErrNilRoomIdentifier  = errors.New("room id cannot be nil")
	ErrMissingRoomDetails = errors.New("all room details (seats, amenities, pricePerHour, roomName) are required")
)

const (
	MaxRoomNameLength = 255
)

// Room is immutable once registered.
type Room struct {
	id           uuid.UUID
	name         string
	seatCapacity int
	amenities    Amenities
	pricePerHour Money
	createdAt    time.Time
}

func NewRoom(id uuid.UUID, name string, seatCapacity int, amenities Amenities, pricePerHour Money, now time.Time) (*Room, error) {
	if id == uuid.Nil {
		return nil, ErrNilRoomIdentifier
	}
	if err := validateRoomName(name); err != nil {
		return nil, err
	}
	if seatCapacity <= 0 {
		return nil, ErrInvalidSeatCount
	}

	return &Room{
		id:           id,
		name:         strings.TrimSpace(name),
		seatCapacity: seatCapacity,
		amenities:    amenities,
		pricePerHour: pricePerHour,
		createdAt:    now,
	}, nil
}

func validateRoomName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return ErrRoomNameTooLong
	}
	return nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) SeatCapacity() int    { return r.seatCapacity }
func (r *Room) Amenities() Amenities { return r.amenities }
func (r *Room) PricePerHour() Money  { return r.pricePerHour }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
