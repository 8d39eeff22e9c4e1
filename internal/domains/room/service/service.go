package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/room/model"
	"hostel/internal/domains/room/model/dto"
	"hostel/internal/domains/room/repository"
	studentModel "hostel/internal/domains/student/model"
	studentRepo "hostel/internal/domains/student/repository"
	"hostel/shared"
	"hostel/shared/actor"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Rooms are not cached: occupancy changes on every allocation.
type Room interface {
	Create(ctx context.Context, act actor.Actor, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, act actor.Actor, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, act actor.Actor, id string) (dto.RoomDetailResponse, error)
	Update(ctx context.Context, act actor.Actor, req dto.UpdateRoomRequest, id string) (dto.RoomResponse, error)
	Delete(ctx context.Context, act actor.Actor, id string) error
}

type serviceImpl struct {
	repo        repository.Room
	studentRepo studentRepo.Student
	transactor  postgres.Transactor
	otel        otel.Otel
}

func New(repo repository.Room, studentRepo studentRepo.Student, transactor postgres.Transactor, otel otel.Otel) Room {
	return &serviceImpl{
		repo:        repo,
		studentRepo: studentRepo,
		transactor:  transactor,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, act actor.Actor, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return res, err
	}

	room := req.ToModel(act.UserID)

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Str("number", req.Number).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, act actor.Actor, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireAny(); err != nil {
		return res, err
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	rooms, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms, total, params.Limit)

	return res, nil
}

// Get returns the room together with the students assigned to it.
func (s *serviceImpl) Get(ctx context.Context, act actor.Actor, id string) (res dto.RoomDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireAny(); err != nil {
		return res, err
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	occupants, err := s.studentRepo.GetAll(ctx, gDto.QueryParams{SortBy: studentModel.FieldRollNo, SortDir: gDto.SortDirAsc},
		shared.FilterByField(studentModel.FieldRoomID, room.ID, studentModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room occupants")

		return res, fmt.Errorf("failed to get room occupants: %w", err)
	}

	res.FromModel(room, occupants)

	return res, nil
}

// Update locks the room so capacity is checked against the occupancy that
// concurrent allocations will see.
func (s *serviceImpl) Update(ctx context.Context, act actor.Actor, req dto.UpdateRoomRequest, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return res, err
	}

	if req == (dto.UpdateRoomRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	var room model.Room

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		room, err = s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		if req.Capacity != nil && *req.Capacity < room.Occupied {
			return failure.BadRequestFromString(fmt.Sprintf("capacity cannot be lower than current occupancy (%d)", room.Occupied))
		}

		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(req, act.UserID), filter); err != nil {
			return fmt.Errorf("failed to update room: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("roomID", id).Msg("failed to update room")

		return res, err
	}

	req.Apply(&room)
	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, act actor.Actor, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		room, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		if room.Occupied > 0 {
			return failure.Conflict("room still has assigned students")
		}

		if err := s.repo.DeleteTx(ctx, tx, filter); err != nil {
			return fmt.Errorf("failed to delete room: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("roomID", id).Msg("failed to delete room")

		return err
	}

	return nil
}
