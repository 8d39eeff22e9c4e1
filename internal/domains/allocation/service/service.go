package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/allocation/model/dto"
	occupancy "hostel/internal/domains/occupancy/service"
	roomModel "hostel/internal/domains/room/model"
	roomRepo "hostel/internal/domains/room/repository"
	studentModel "hostel/internal/domains/student/model"
	studentRepo "hostel/internal/domains/student/repository"
	"hostel/shared"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Allocation interface {
	Allocate(ctx context.Context, act actor.Actor, req dto.AllocateRequest) (dto.AllocationResponse, error)
	Unassign(ctx context.Context, act actor.Actor, studentID string) (dto.UnassignResponse, error)
	AssignTx(ctx context.Context, tx *sqlx.Tx, act actor.Actor, student studentModel.Student, roomID string) error
}

type serviceImpl struct {
	studentRepo studentRepo.Student
	roomRepo    roomRepo.Room
	tracker     occupancy.Tracker
	transactor  postgres.Transactor
	otel        otel.Otel
}

func New(studentRepo studentRepo.Student, roomRepo roomRepo.Room, tracker occupancy.Tracker, transactor postgres.Transactor, otel otel.Otel) Allocation {
	return &serviceImpl{
		studentRepo: studentRepo,
		roomRepo:    roomRepo,
		tracker:     tracker,
		transactor:  transactor,
		otel:        otel,
	}
}

// Allocate binds an unassigned student to a room. A full room fails with
// failure.ErrRoomFull and nothing is written.
func (s *serviceImpl) Allocate(ctx context.Context, act actor.Actor, req dto.AllocateRequest) (res dto.AllocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".allocation.Allocate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return res, err
	}

	scope.SetActor(act.UserID, act.Role)

	var (
		student studentModel.Student
		room    roomModel.Room
	)

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		student, err = s.lockStudent(ctx, tx, req.StudentID)
		if err != nil {
			return err
		}

		if student.HasRoom() {
			return failure.Conflict("student already has a room assigned, unassign first")
		}

		if err := s.tracker.Increment(ctx, tx, req.RoomID); err != nil {
			return err
		}

		if err := s.AssignTx(ctx, tx, act, student, req.RoomID); err != nil {
			return err
		}

		room, err = s.roomRepo.GetTx(ctx, tx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("studentID", req.StudentID).Str("roomID", req.RoomID).Msg("failed to allocate room")

		return res, err
	}

	student.RoomID = &room.ID

	res.Student.FromModel(student)
	res.Student.WithRoom(room)
	res.Room.FromModel(room)

	log.Info().Str("studentID", student.ID).Str("roomID", room.ID).Str("by", act.UserID).Msg("room allocated")

	return res, nil
}

// Unassign clears the student's room. A student without a room is not an
// error: the response carries dto.NoRoomAssignedWarning instead.
func (s *serviceImpl) Unassign(ctx context.Context, act actor.Actor, studentID string) (res dto.UnassignResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".allocation.Unassign")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return res, err
	}

	res.StudentID = studentID

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		student, err := s.lockStudent(ctx, tx, studentID)
		if err != nil {
			return err
		}

		if !student.HasRoom() {
			res.Warning = dto.NoRoomAssignedWarning

			return nil
		}

		res.PreviousRoomID = *student.RoomID

		if err := s.setRoom(ctx, tx, act, student.ID, nil); err != nil {
			return err
		}

		if _, err := s.tracker.Decrement(ctx, tx, res.PreviousRoomID); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("studentID", studentID).Msg("failed to unassign room")

		return dto.UnassignResponse{}, err
	}

	if res.Warning != constant.Empty {
		log.Warn().Str("studentID", studentID).Msg(res.Warning)
	}

	return res, nil
}

// AssignTx points the student at roomID, whose seat the caller has already
// claimed. A different room the student held is released in the same tx.
func (s *serviceImpl) AssignTx(ctx context.Context, tx *sqlx.Tx, act actor.Actor, student studentModel.Student, roomID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".allocation.AssignTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if student.InRoom(roomID) {
		return nil
	}

	if student.HasRoom() {
		if _, err = s.tracker.Decrement(ctx, tx, *student.RoomID); err != nil {
			return err
		}
	}

	return s.setRoom(ctx, tx, act, student.ID, &roomID)
}

func (s *serviceImpl) lockStudent(ctx context.Context, tx *sqlx.Tx, id string) (studentModel.Student, error) {
	student, err := s.studentRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, studentModel.FieldID, studentModel.TableName))
	if err != nil {
		return student, fmt.Errorf("failed to lock student: %w", err)
	}

	if student.ID == constant.Empty {
		return student, failure.NotFound("student not found") // nolint:wrapcheck
	}

	return student, nil
}

func (s *serviceImpl) setRoom(ctx context.Context, tx *sqlx.Tx, act actor.Actor, studentID string, roomID *string) error {
	fields := map[string]any{
		studentModel.FieldRoomID:  roomID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: act.UserID,
	}

	if err := s.studentRepo.UpdateTx(ctx, tx, fields, shared.FilterByID(studentID, studentModel.FieldID, studentModel.TableName)); err != nil {
		return fmt.Errorf("failed to update student room: %w", err)
	}

	return nil
}
