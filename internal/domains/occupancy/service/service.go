// Package service keeps Room.occupied in step with the students bound to a
// room. Every change is a single conditional UPDATE run inside the caller's
// transaction, so two requests can never claim the last seat.
package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/room/model"
	"hostel/internal/domains/room/repository"
	"hostel/shared"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Tracker interface {
	Increment(ctx context.Context, tx *sqlx.Tx, roomID string) error
	Decrement(ctx context.Context, tx *sqlx.Tx, roomID string) (bool, error)
	Audit(ctx context.Context) ([]model.Drift, error)
	Repair(ctx context.Context, act actor.Actor) (int64, error)
}

type serviceImpl struct {
	repo       repository.Room
	transactor postgres.Transactor
	otel       otel.Otel
}

func New(repo repository.Room, transactor postgres.Transactor, otel otel.Otel) Tracker {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		otel:       otel,
	}
}

// Increment claims a seat. It fails with failure.ErrRoomFull when the room
// has no vacancy and leaves the row untouched.
func (s *serviceImpl) Increment(ctx context.Context, tx *sqlx.Tx, roomID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".occupancy.Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claimed, err := s.repo.IncrementOccupiedTx(ctx, tx, roomID)
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to increment occupancy")

		return fmt.Errorf("failed to increment occupancy: %w", err)
	}

	if claimed {
		return nil
	}

	room, err := s.repo.GetTx(ctx, tx, shared.FilterByID(roomID, model.FieldID, model.TableName), model.FieldID)
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	return failure.ErrRoomFull
}

// Decrement releases a seat. A room that is already empty is left alone and
// reported with false.
func (s *serviceImpl) Decrement(ctx context.Context, tx *sqlx.Tx, roomID string) (released bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".occupancy.Decrement")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	released, err = s.repo.DecrementOccupiedTx(ctx, tx, roomID)
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to decrement occupancy")

		return false, fmt.Errorf("failed to decrement occupancy: %w", err)
	}

	if !released {
		log.Warn().Str("roomID", roomID).Msg("room occupancy already zero, nothing to release")
	}

	return released, nil
}

// Audit reports rooms whose counter disagrees with their students. Each one
// is logged as a warning.
func (s *serviceImpl) Audit(ctx context.Context) (drift []model.Drift, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".occupancy.Audit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	drift, err = s.repo.GetDrift(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to audit occupancy")

		return nil, fmt.Errorf("failed to audit occupancy: %w", err)
	}

	for _, room := range drift {
		log.Warn().
			Str("roomID", room.ID).
			Str("number", room.Number).
			Int("occupied", room.Occupied).
			Int("assigned", room.Assigned).
			Msg("room occupancy drifted")
	}

	return drift, nil
}

// Repair recounts every drifted room. Only operators may run it.
func (s *serviceImpl) Repair(ctx context.Context, act actor.Actor) (fixed int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".occupancy.Repair")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return 0, err
	}

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		fixed, err = s.repo.RecountOccupiedTx(ctx, tx)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to repair occupancy")

		return 0, fmt.Errorf("failed to repair occupancy: %w", err)
	}

	log.Info().Int64("rooms", fixed).Str("by", act.UserID).Msg("occupancy repaired")

	return fixed, nil
}
