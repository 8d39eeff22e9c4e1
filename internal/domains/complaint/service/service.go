package service

import (
	"context"
	"fmt"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/complaint/model"
	"hostel/internal/domains/complaint/model/dto"
	"hostel/internal/domains/complaint/repository"
	studentModel "hostel/internal/domains/student/model"
	studentRepo "hostel/internal/domains/student/repository"
	"hostel/shared"
	"hostel/shared/actor"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	"hostel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var errAlreadyResolved = failure.Conflict("complaint already resolved")

type Complaint interface {
	Create(ctx context.Context, act actor.Actor, req dto.CreateComplaintRequest) (dto.ComplaintResponse, error)
	Get(ctx context.Context, act actor.Actor, id string) (dto.ComplaintDetailResponse, error)
	GetAll(ctx context.Context, act actor.Actor, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetComplaintsResponse, error)
	AddComment(ctx context.Context, act actor.Actor, id string, req dto.AddCommentRequest) (dto.CommentResponse, error)
	Resolve(ctx context.Context, act actor.Actor, id string, req dto.ResolveComplaintRequest) (dto.ComplaintResponse, error)
}

type serviceImpl struct {
	repo        repository.Complaint
	commentRepo repository.Comment
	studentRepo studentRepo.Student
	transactor  postgres.Transactor
	otel        otel.Otel
}

func New(repo repository.Complaint, commentRepo repository.Comment, studentRepo studentRepo.Student, transactor postgres.Transactor, otel otel.Otel) Complaint {
	return &serviceImpl{
		repo:        repo,
		commentRepo: commentRepo,
		studentRepo: studentRepo,
		transactor:  transactor,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, act actor.Actor, req dto.CreateComplaintRequest) (res dto.ComplaintResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".complaint.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStudent(); err != nil {
		return res, err
	}

	student, err := s.callerStudent(ctx, act)
	if err != nil {
		return res, err
	}

	complaint := req.ToModel(student.ID, act.UserID)

	if err = s.repo.Insert(ctx, complaint); err != nil {
		log.Error().Err(err).Str("studentID", student.ID).Msg("failed to create complaint")

		return res, fmt.Errorf("failed to create complaint: %w", err)
	}

	res.FromModel(complaint)

	return res, nil
}

// Get returns the complaint with its comments oldest first.
func (s *serviceImpl) Get(ctx context.Context, act actor.Actor, id string) (res dto.ComplaintDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".complaint.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireAny(); err != nil {
		return res, err
	}

	complaint, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get complaint")

		return res, fmt.Errorf("failed to get complaint: %w", err)
	}

	if complaint.ID == constant.Empty {
		return res, failure.NotFound("complaint not found") // nolint:wrapcheck
	}

	if act.IsStudent() {
		student, err := s.callerStudent(ctx, act)
		if err != nil {
			return res, err
		}

		if complaint.StudentID != student.ID {
			return res, failure.ResourceRestrictedError
		}
	}

	comments, err := s.commentRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldCommentCreatedAt, SortDir: gDto.SortDirAsc},
		shared.FilterByField(model.FieldCommentComplaintID, complaint.ID, model.CommentTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get complaint comments")

		return res, fmt.Errorf("failed to get complaint comments: %w", err)
	}

	res.FromModel(complaint, comments)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, act actor.Actor, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetComplaintsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".complaint.GetAll")
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
		log.Error().Err(err).Msg("failed to count complaints")

		return res, fmt.Errorf("failed to count complaints: %w", err)
	}

	complaints, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get complaints")

		return res, fmt.Errorf("failed to get complaints: %w", err)
	}

	res.FromModels(complaints, total, params.Limit)

	return res, nil
}

// AddComment appends a staff comment. The first comment on a pending
// complaint moves it to in_progress.
func (s *serviceImpl) AddComment(ctx context.Context, act actor.Actor, id string, req dto.AddCommentRequest) (res dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".complaint.AddComment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return res, err
	}

	now := timezone.Now()
	comment := req.ToModel(id, act.UserID, now)

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		complaint, err := s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if complaint.IsResolved() {
			return errAlreadyResolved
		}

		if err := s.commentRepo.InsertTx(ctx, tx, comment); err != nil {
			return fmt.Errorf("failed to add comment: %w", err)
		}

		if complaint.Status != model.StatusPending {
			return nil
		}

		return s.update(ctx, tx, act, complaint.ID, map[string]any{
			model.FieldStatus: model.StatusInProgress,
		})
	})
	if err != nil {
		log.Error().Err(err).Str("complaintID", id).Msg("failed to comment on complaint")

		return res, err
	}

	res.FromModel(comment)

	return res, nil
}

func (s *serviceImpl) Resolve(ctx context.Context, act actor.Actor, id string, req dto.ResolveComplaintRequest) (res dto.ComplaintResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".complaint.Resolve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStaff(); err != nil {
		return res, err
	}

	var complaint model.Complaint

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		complaint, err = s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if complaint.IsResolved() {
			return errAlreadyResolved
		}

		complaint.Status = model.StatusResolved
		complaint.Resolved = true

		fields := map[string]any{
			model.FieldStatus:   complaint.Status,
			model.FieldResolved: true,
		}

		if req.Response != constant.Empty {
			complaint.Response = &req.Response
			fields[model.FieldResponse] = req.Response
		}

		return s.update(ctx, tx, act, complaint.ID, fields)
	})
	if err != nil {
		log.Error().Err(err).Str("complaintID", id).Msg("failed to resolve complaint")

		return res, err
	}

	log.Info().Str("complaintID", complaint.ID).Str("by", act.UserID).Msg("complaint resolved")

	res.FromModel(complaint)

	return res, nil
}

func (s *serviceImpl) lock(ctx context.Context, tx *sqlx.Tx, id string) (model.Complaint, error) {
	complaint, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return complaint, fmt.Errorf("failed to lock complaint: %w", err)
	}

	if complaint.ID == constant.Empty {
		return complaint, failure.NotFound("complaint not found") // nolint:wrapcheck
	}

	return complaint, nil
}

func (s *serviceImpl) update(ctx context.Context, tx *sqlx.Tx, act actor.Actor, id string, fields map[string]any) error {
	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = act.UserID

	if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to update complaint: %w", err)
	}

	return nil
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
