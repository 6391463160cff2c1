package commands

import (
	"context"
	"strings"

	"hall-booking/internal/domain/room"
	"hall-booking/internal/infra/converter"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/usecase/queries"
	"hall-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=room.go -destination=../../../tests/mock/commands/room.go -package=commandsmock
type RoomCommands interface {
	CreateRoom(ctx context.Context, in CreateRoomInput) (*queries.RoomView, error)
}

type roomUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomUseCase(uow shared.UnitOfWork, clk clock.Clock) RoomCommands {
	return &roomUseCaseImpl{uow: uow, clock: clk}
}

func (uc *roomUseCaseImpl) CreateRoom(ctx context.Context, in CreateRoomInput) (*queries.RoomView, error) {
	if missing := missingRoomFields(in); len(missing) > 0 {
		return nil, validationErr(errs.Wrap(room.ErrMissingRoomDetails, "missing "+strings.Join(missing, ", ")))
	}

	amenities, err := room.NewAmenities(in.Amenities)
	if err != nil {
		return nil, validationErr(err)
	}
	price, err := room.NewMoneyFromDecimal(*in.PricePerHour)
	if err != nil {
		return nil, validationErr(err)
	}
	rm, err := room.NewRoom(uuid.New(), *in.Name, *in.SeatCapacity, amenities, price, uc.clock.Now())
	if err != nil {
		return nil, validationErr(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, cerr := tx.Rooms().Create(ctx, rm)
		return cerr
	})
	if err != nil {
		return nil, err
	}

	return converter.RoomToView(rm), nil
}

func missingRoomFields(in CreateRoomInput) []string {
	var missing []string
	if in.SeatCapacity == nil {
		missing = append(missing, "seats")
	}
	if in.Amenities == nil {
		missing = append(missing, "amenities")
	}
	if in.PricePerHour == nil {
		missing = append(missing, "pricePerHour")
	}
	if in.Name == nil {
		missing = append(missing, "roomName")
	}
	return missing
}

func validationErr(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}
