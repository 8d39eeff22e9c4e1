package service

import (
	"context"
	"fmt"
	"hostel/infras/otel"
	roomModel "hostel/internal/domains/room/model"
	roomRepo "hostel/internal/domains/room/repository"
	"hostel/internal/domains/student/model"
	"hostel/internal/domains/student/model/dto"
	"hostel/internal/domains/student/repository"
	userModel "hostel/internal/domains/user/model"
	userRepo "hostel/internal/domains/user/repository"
	"hostel/shared"
	"hostel/shared/actor"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Student interface {
	Create(ctx context.Context, act actor.Actor, req dto.CreateStudentRequest) (dto.StudentResponse, error)
	GetAll(ctx context.Context, act actor.Actor, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStudentsResponse, error)
	Get(ctx context.Context, act actor.Actor, id string) (dto.StudentResponse, error)
	GetMe(ctx context.Context, act actor.Actor) (dto.StudentResponse, error)
	UpdateProfile(ctx context.Context, act actor.Actor, req dto.UpdateProfileRequest) (dto.StudentResponse, error)
}

type serviceImpl struct {
	repo     repository.Student
	userRepo userRepo.User
	roomRepo roomRepo.Room
	otel     otel.Otel
}

func New(repo repository.Student, userRepo userRepo.User, roomRepo roomRepo.Room, otel otel.Otel) Student {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		roomRepo: roomRepo,
		otel:     otel,
	}
}

// Create attaches a student record to an existing student account.
func (s *serviceImpl) Create(ctx context.Context, act actor.Actor, req dto.CreateStudentRequest) (res dto.StudentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".student.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return res, err
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	if user.Level != constant.RoleStudent {
		return res, failure.BadRequestFromString("account is not a student account")
	}

	student := req.ToModel(user.ID, act.UserID)

	if err = s.repo.Insert(ctx, student); err != nil {
		log.Error().Err(err).Str("rollNo", req.RollNo).Msg("failed to create student")

		return res, fmt.Errorf("failed to create student: %w", err)
	}

	res.FromModel(student)
	res.WithUser(user)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, act actor.Actor, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStudentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".student.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return res, err
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count students")

		return res, fmt.Errorf("failed to count students: %w", err)
	}

	students, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get students")

		return res, fmt.Errorf("failed to get students: %w", err)
	}

	userIDs := make([]string, 0, len(students))
	roomIDs := make([]string, 0, len(students))

	for _, student := range students {
		userIDs = append(userIDs, student.UserID)

		if student.HasRoom() {
			roomIDs = append(roomIDs, *student.RoomID)
		}
	}

	users, err := s.usersByID(ctx, userIDs)
	if err != nil {
		return res, err
	}

	rooms, err := s.roomsByID(ctx, roomIDs)
	if err != nil {
		return res, err
	}

	res.FromModels(students, users, rooms, total, params.Limit)

	return res, nil
}

// Get returns any student to staff and only the caller's own record to students.
func (s *serviceImpl) Get(ctx context.Context, act actor.Actor, id string) (res dto.StudentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".student.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireAny(); err != nil {
		return res, err
	}

	student, err := s.get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	if !act.IsStaff() && student.UserID != act.UserID {
		return res, failure.ResourceRestrictedError
	}

	return s.describe(ctx, student)
}

func (s *serviceImpl) GetMe(ctx context.Context, act actor.Actor) (res dto.StudentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".student.GetMe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStudent(); err != nil {
		return res, err
	}

	student, err := s.get(ctx, shared.FilterByField(model.FieldUserID, act.UserID, model.TableName))
	if err != nil {
		return res, err
	}

	return s.describe(ctx, student)
}

// UpdateProfile lets a student change contact details. Room and roll number
// are not editable here.
func (s *serviceImpl) UpdateProfile(ctx context.Context, act actor.Actor, req dto.UpdateProfileRequest) (res dto.StudentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".student.UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStudent(); err != nil {
		return res, err
	}

	if req == (dto.UpdateProfileRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	student, err := s.get(ctx, shared.FilterByField(model.FieldUserID, act.UserID, model.TableName))
	if err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, act.UserID), shared.FilterByID(student.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update student profile")

		return res, fmt.Errorf("failed to update student profile: %w", err)
	}

	if req.Contact != constant.Empty {
		student.Contact = req.Contact
	}

	if req.Course != constant.Empty {
		student.Course = req.Course
	}

	if req.Semester != 0 {
		student.Semester = req.Semester
	}

	return s.describe(ctx, student)
}

func (s *serviceImpl) get(ctx context.Context, filter gDto.FilterGroup) (model.Student, error) {
	student, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get student")

		return student, fmt.Errorf("failed to get student: %w", err)
	}

	if student.ID == constant.Empty {
		return student, failure.NotFound("student not found") // nolint:wrapcheck
	}

	return student, nil
}

func (s *serviceImpl) describe(ctx context.Context, student model.Student) (res dto.StudentResponse, err error) {
	res.FromModel(student)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(student.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get student account")

		return res, fmt.Errorf("failed to get student account: %w", err)
	}

	res.WithUser(user)

	if !student.HasRoom() {
		return res, nil
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(*student.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get student room")

		return res, fmt.Errorf("failed to get student room: %w", err)
	}

	res.WithRoom(room)

	return res, nil
}

func (s *serviceImpl) usersByID(ctx context.Context, ids []string) (map[string]userModel.User, error) {
	res := make(map[string]userModel.User, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	users, err := s.userRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterIn(userModel.FieldID, ids, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get student accounts")

		return nil, fmt.Errorf("failed to get student accounts: %w", err)
	}

	for _, user := range users {
		res[user.ID] = user
	}

	return res, nil
}

func (s *serviceImpl) roomsByID(ctx context.Context, ids []string) (map[string]roomModel.Room, error) {
	res := make(map[string]roomModel.Room, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterIn(roomModel.FieldID, ids, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get student rooms")

		return nil, fmt.Errorf("failed to get student rooms: %w", err)
	}

	for _, room := range rooms {
		res[room.ID] = room
	}

	return res, nil
}
