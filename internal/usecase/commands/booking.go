package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/converter"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/usecase/queries"
	"hall-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const createBookingEndpoint = "POST /api/bookings"

var ErrInvalidRoomID = errs.New("roomId must be a valid UUID")

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock
type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

type bookingRequest struct {
	roomID   uuid.UUID
	customer booking.CustomerName
	slot     booking.TimeSlot
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	req, err := parseBookingInput(in)
	if err != nil {
		return nil, err
	}
	requestHash := calculateRequestHash(req)

	var result *CreateBookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if in.IdempotencyKey != nil {
			replayed, rerr := uc.replay(ctx, tx.Reads(), *in.IdempotencyKey, requestHash)
			if rerr != nil {
				return rerr
			}
			if replayed != nil {
				result = &CreateBookingResult{Booking: replayed, IsReplayed: true}
				return nil
			}
		}

		created, cerr := uc.createNewBooking(ctx, tx, req)
		if cerr != nil {
			return cerr
		}

		if in.IdempotencyKey != nil {
			rec := shared.IdempotencyRecord{
				Key:             *in.IdempotencyKey,
				Endpoint:        createBookingEndpoint,
				RequestHash:     requestHash,
				ResultBookingID: created.ID(),
				CreatedAt:       uc.clock.Now(),
			}
			if serr := tx.Idempotency().Save(ctx, rec); serr != nil {
				return serr
			}
		}

		result = &CreateBookingResult{Booking: converter.BookingToView(created)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// replay returns the booking recorded under key, or nil when the key is new.
func (uc *bookingUseCaseImpl) replay(ctx context.Context, reads shared.Reads, key uuid.UUID, requestHash string) (*queries.BookingView, error) {
	rec, err := reads.IdempotencyByKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if rec.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyConflict
	}

	b, err := reads.BookingByID(ctx, rec.ResultBookingID)
	if err != nil {
		return nil, errs.Wrap(err, "idempotency record points to a missing booking")
	}
	return converter.BookingToView(b), nil
}

func (uc *bookingUseCaseImpl) createNewBooking(ctx context.Context, tx shared.Tx, req *bookingRequest) (*booking.Booking, error) {
	reads := tx.Reads()

	if _, err := reads.RoomByID(ctx, req.roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, err
	}

	candidate, err := booking.NewBooking(uuid.New(), req.roomID, req.customer, req.slot, uc.clock.Now())
	if err != nil {
		return nil, validationErr(err)
	}

	existing, err := reads.BookingsByRoomAndDate(ctx, req.roomID, req.slot.Date())
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if candidate.ConflictsWith(other) {
			return nil, errs.ErrBookingConflict
		}
	}

	if _, err := tx.Bookings().Create(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// parseBookingInput checks presence of every field before any format check.
func parseBookingInput(in CreateBookingInput) (*bookingRequest, error) {
	if missing := missingBookingFields(in); len(missing) > 0 {
		return nil, validationErr(errs.Wrap(booking.ErrMissingBookingDetails, "missing "+strings.Join(missing, ", ")))
	}

	customer, err := booking.NewCustomerName(*in.CustomerName)
	if err != nil {
		return nil, validationErr(err)
	}
	date, err := booking.ParseDate(*in.Date)
	if err != nil {
		return nil, validationErr(err)
	}
	start, err := booking.ParseTimeOfDay(*in.StartTime)
	if err != nil {
		return nil, validationErr(errs.Wrap(err, "startTime"))
	}
	end, err := booking.ParseTimeOfDay(*in.EndTime)
	if err != nil {
		return nil, validationErr(errs.Wrap(err, "endTime"))
	}
	slot, err := booking.NewTimeSlot(date, start, end)
	if err != nil {
		return nil, validationErr(err)
	}
	roomID, err := uuid.Parse(strings.TrimSpace(*in.RoomID))
	if err != nil || roomID == uuid.Nil {
		return nil, validationErr(ErrInvalidRoomID)
	}

	return &bookingRequest{roomID: roomID, customer: customer, slot: slot}, nil
}

func missingBookingFields(in CreateBookingInput) []string {
	var missing []string
	if in.CustomerName == nil {
		missing = append(missing, "customerName")
	}
	if in.Date == nil {
		missing = append(missing, "date")
	}
	if in.StartTime == nil {
		missing = append(missing, "startTime")
	}
	if in.EndTime == nil {
		missing = append(missing, "endTime")
	}
	if in.RoomID == nil {
		missing = append(missing, "roomId")
	}
	return missing
}

// calculateRequestHash fingerprints the normalized request, so cosmetic
// differences such as surrounding whitespace still replay.
func calculateRequestHash(req *bookingRequest) string {
	data, _ := json.Marshal(map[string]string{
		"customerName": req.customer.String(),
		"date":         req.slot.Date().String(),
		"startTime":    req.slot.Start().String(),
		"endTime":      req.slot.End().String(),
		"roomId":       req.roomID.String(),
	})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
