package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=RoomRequest=MockRoomRequestService

import (
	"context"
	"errors"
	"fmt"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	allocation "hostel/internal/domains/allocation/service"
	occupancy "hostel/internal/domains/occupancy/service"
	roomModel "hostel/internal/domains/room/model"
	roomRepo "hostel/internal/domains/room/repository"
	"hostel/internal/domains/roomrequest/model"
	"hostel/internal/domains/roomrequest/model/dto"
	"hostel/internal/domains/roomrequest/repository"
	studentModel "hostel/internal/domains/student/model"
	studentRepo "hostel/internal/domains/student/repository"
	"hostel/shared"
	"hostel/shared/actor"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	"hostel/shared/timezone"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type RoomRequest interface {
	Submit(ctx context.Context, act actor.Actor, req dto.SubmitRoomRequest) (dto.RoomRequestResponse, error)
	Process(ctx context.Context, act actor.Actor, id, action string) (dto.RoomRequestResponse, error)
	GetAll(ctx context.Context, act actor.Actor, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomRequestsResponse, error)
	Get(ctx context.Context, act actor.Actor, id string) (dto.RoomRequestResponse, error)
}

type serviceImpl struct {
	repo        repository.RoomRequest
	studentRepo studentRepo.Student
	roomRepo    roomRepo.Room
	tracker     occupancy.Tracker
	allocation  allocation.Allocation
	transactor  postgres.Transactor
	otel        otel.Otel
}

func New(
	repo repository.RoomRequest,
	studentRepo studentRepo.Student,
	roomRepo roomRepo.Room,
	tracker occupancy.Tracker,
	allocation allocation.Allocation,
	transactor postgres.Transactor,
	otel otel.Otel,
) RoomRequest {
	return &serviceImpl{
		repo:        repo,
		studentRepo: studentRepo,
		roomRepo:    roomRepo,
		tracker:     tracker,
		allocation:  allocation,
		transactor:  transactor,
		otel:        otel,
	}
}

// Submit files a pending request for the calling student. A student may
// have at most one pending request.
func (s *serviceImpl) Submit(ctx context.Context, act actor.Actor, req dto.SubmitRoomRequest) (res dto.RoomRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomrequest.Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStudent(); err != nil {
		return res, err
	}

	student, err := s.callerStudent(ctx, act)
	if err != nil {
		return res, err
	}

	request := req.ToModel(student.ID, act.UserID)

	if request.HasPreference() {
		exist, err := s.roomRepo.Exist(ctx, shared.FilterByID(*request.PreferredRoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check preferred room")

			return res, fmt.Errorf("failed to check preferred room: %w", err)
		}

		if !exist {
			return res, failure.NotFound("preferred room not found") // nolint:wrapcheck
		}
	}

	pending, err := s.repo.Exist(ctx, shared.FilterAnd(
		shared.FilterByField(model.FieldStudentID, student.ID, model.TableName),
		shared.FilterByField(model.FieldStatus, model.StatusPending, model.TableName),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to check pending room requests")

		return res, fmt.Errorf("failed to check pending room requests: %w", err)
	}

	if pending {
		return res, failure.Conflict("a pending room request already exists")
	}

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Str("studentID", student.ID).Msg("failed to submit room request")

		return res, fmt.Errorf("failed to submit room request: %w", err)
	}

	res.FromModel(request)

	return res, nil
}

// Process approves or rejects a pending request. Approval walks the
// candidate rooms and keeps the first one whose seat it manages to claim.
// When none can be claimed the request stays pending.
func (s *serviceImpl) Process(ctx context.Context, act actor.Actor, id, action string) (res dto.RoomRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomrequest.Process")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return res, err
	}

	if action != model.ActionApprove && action != model.ActionReject {
		return res, failure.BadRequestFromString("action must be approve or reject")
	}

	scope.SetActor(act.UserID, act.Role)

	var request model.RoomRequest

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		request, err = s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock room request: %w", err)
		}

		if request.ID == constant.Empty {
			return failure.NotFound("room request not found") // nolint:wrapcheck
		}

		if !request.IsPending() {
			return failure.Conflict("room request already " + request.Status)
		}

		now := timezone.Now()
		request.ProcessedBy = &act.UserID
		request.ProcessedAt = &now
		request.Status = model.StatusRejected

		if action == model.ActionApprove {
			roomID, err := s.approve(ctx, tx, act, request)
			if err != nil {
				return err
			}

			request.Status = model.StatusApproved
			request.AllocatedRoomID = &roomID
		}

		fields := map[string]any{
			model.FieldStatus:          request.Status,
			model.FieldAllocatedRoomID: request.AllocatedRoomID,
			model.FieldProcessedBy:     request.ProcessedBy,
			model.FieldProcessedAt:     request.ProcessedAt,
			constant.FieldModifiedAt:   now,
			constant.FieldModifiedBy:   act.UserID,
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(request.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update room request: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("requestID", id).Str("action", action).Msg("failed to process room request")

		return res, err
	}

	log.Info().Str("requestID", request.ID).Str("status", request.Status).Str("by", act.UserID).Msg("room request processed")

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) approve(ctx context.Context, tx *sqlx.Tx, act actor.Actor, request model.RoomRequest) (string, error) {
	student, err := s.studentRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(request.StudentID, studentModel.FieldID, studentModel.TableName))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to lock student: %w", err)
	}

	if student.ID == constant.Empty {
		return constant.Empty, failure.NotFound("student not found") // nolint:wrapcheck
	}

	// Asking for the room already held is granted as is; the seat is already counted.
	if request.HasPreference() && student.InRoom(*request.PreferredRoomID) {
		log.Info().Str("studentID", student.ID).Str("roomID", *request.PreferredRoomID).Msg("student already in preferred room")

		return *request.PreferredRoomID, nil
	}

	candidates, err := s.candidates(ctx, tx, request, student)
	if err != nil {
		return constant.Empty, err
	}

	for _, roomID := range candidates {
		if err := s.tracker.Increment(ctx, tx, roomID); err != nil {
			if errors.Is(err, failure.ErrRoomFull) || failure.GetCode(err) == http.StatusNotFound {
				log.Debug().Str("roomID", roomID).Msg("candidate room unavailable, trying next")

				continue
			}

			return constant.Empty, err
		}

		if err := s.allocation.AssignTx(ctx, tx, act, student, roomID); err != nil {
			return constant.Empty, err
		}

		return roomID, nil
	}

	return constant.Empty, failure.ErrNoAvailableRoom
}

// candidates lists the preferred room first, then every room with a free
// seat by ascending number. The student's current room is never a fallback.
func (s *serviceImpl) candidates(ctx context.Context, tx *sqlx.Tx, request model.RoomRequest, student studentModel.Student) ([]string, error) {
	var res []string

	preferred := constant.Empty
	if request.HasPreference() {
		preferred = *request.PreferredRoomID
		res = append(res, preferred)
	}

	available, err := s.roomRepo.GetAvailableTx(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	for _, room := range available {
		if room.ID == preferred || student.InRoom(room.ID) {
			continue
		}

		res = append(res, room.ID)
	}

	return res, nil
}

// GetAll lists every request for staff and only the caller's own for students.
func (s *serviceImpl) GetAll(ctx context.Context, act actor.Actor, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomrequest.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireAny(); err != nil {
		return res, err
	}

	if act.IsStudent() {
		student, err := s.callerStudent(ctx, act)
		if err != nil {
			return res, err
		}

		filter = shared.FilterAnd(filter, shared.FilterByField(model.FieldStudentID, student.ID, model.TableName))
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room requests")

		return res, fmt.Errorf("failed to count room requests: %w", err)
	}

	requests, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room requests")

		return res, fmt.Errorf("failed to get room requests: %w", err)
	}

	res.FromModels(requests, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, act actor.Actor, id string) (res dto.RoomRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomrequest.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireAny(); err != nil {
		return res, err
	}

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room request")

		return res, fmt.Errorf("failed to get room request: %w", err)
	}

	if request.ID == constant.Empty {
		return res, failure.NotFound("room request not found") // nolint:wrapcheck
	}

	if act.IsStudent() {
		student, err := s.callerStudent(ctx, act)
		if err != nil {
			return res, err
		}

		if request.StudentID != student.ID {
			return res, failure.ResourceRestrictedError
		}
	}

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) callerStudent(ctx context.Context, act actor.Actor) (studentModel.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, act.UserID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get student profile")

		return student, fmt.Errorf("failed to get student profile: %w", err)
	}

	if student.ID == constant.Empty {
		return student, failure.NotFound("student profile not found") // nolint:wrapcheck
	}

	return student, nil
}
