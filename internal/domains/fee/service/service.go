package service

import (
	"context"
	"fmt"
	"hostel/infras/otel"
	"hostel/internal/domains/fee/model"
	"hostel/internal/domains/fee/model/dto"
	"hostel/internal/domains/fee/repository"
	studentModel "hostel/internal/domains/student/model"
	studentRepo "hostel/internal/domains/student/repository"
	"hostel/shared"
	"hostel/shared/actor"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	"hostel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Fee interface {
	Submit(ctx context.Context, act actor.Actor, req dto.SubmitFeeRequest) (dto.FeeResponse, error)
	MarkPaid(ctx context.Context, act actor.Actor, id string) (dto.FeeResponse, error)
	Verify(ctx context.Context, act actor.Actor, id string) (dto.FeeResponse, error)
	GetAll(ctx context.Context, act actor.Actor, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFeesResponse, error)
	Get(ctx context.Context, act actor.Actor, id string) (dto.FeeResponse, error)
}

type serviceImpl struct {
	repo        repository.Fee
	studentRepo studentRepo.Student
	otel        otel.Otel
}

func New(repo repository.Fee, studentRepo studentRepo.Student, otel otel.Otel) Fee {
	return &serviceImpl{
		repo:        repo,
		studentRepo: studentRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, act actor.Actor, req dto.SubmitFeeRequest) (res dto.FeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fee.Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireStudent(); err != nil {
		return res, err
	}

	if req.Amount <= 0 {
		return res, failure.BadRequestFromString("amount must be greater than 0")
	}

	student, err := s.callerStudent(ctx, act)
	if err != nil {
		return res, err
	}

	fee := req.ToModel(student.ID, act.UserID)

	if err = s.repo.Insert(ctx, fee); err != nil {
		log.Error().Err(err).Str("studentID", student.ID).Msg("failed to submit fee")

		return res, fmt.Errorf("failed to submit fee: %w", err)
	}

	res.FromModel(fee)

	return res, nil
}

// MarkPaid and Verify have the same effect. They stay separate so the audit
// trail records which confirmation staff performed.
func (s *serviceImpl) MarkPaid(ctx context.Context, act actor.Actor, id string) (res dto.FeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fee.MarkPaid")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.settle(ctx, act, id, "mark_paid")
}

func (s *serviceImpl) Verify(ctx context.Context, act actor.Actor, id string) (res dto.FeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fee.Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.settle(ctx, act, id, "verify")
}

// settle sets paid and verified. It never reverts a flag and is a no-op on
// a settled fee.
func (s *serviceImpl) settle(ctx context.Context, act actor.Actor, id, audit string) (res dto.FeeResponse, err error) {
	if err = act.RequireStaff(); err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	fee, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get fee")

		return res, fmt.Errorf("failed to get fee: %w", err)
	}

	if fee.ID == constant.Empty {
		return res, failure.NotFound("fee not found") // nolint:wrapcheck
	}

	if fee.IsSettled() {
		log.Debug().Str("feeID", fee.ID).Str("action", audit).Msg("fee already settled")

		res.FromModel(fee)

		return res, nil
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldPaid:          true,
		model.FieldVerified:      true,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: act.UserID,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("feeID", fee.ID).Msg("failed to settle fee")

		return res, fmt.Errorf("failed to settle fee: %w", err)
	}

	fee.Paid = true
	fee.Verified = true
	fee.ModifiedAt = now
	fee.ModifiedBy = act.UserID

	log.Info().Str("feeID", fee.ID).Str("action", audit).Str("by", act.UserID).Msg("fee settled")

	res.FromModel(fee)

	return res, nil
}

// GetAll lists every fee for staff and only the caller's own for students.
func (s *serviceImpl) GetAll(ctx context.Context, act actor.Actor, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fee.GetAll")
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
		log.Error().Err(err).Msg("failed to count fees")

		return res, fmt.Errorf("failed to count fees: %w", err)
	}

	fees, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get fees")

		return res, fmt.Errorf("failed to get fees: %w", err)
	}

	res.FromModels(fees, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, act actor.Actor, id string) (res dto.FeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fee.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireAny(); err != nil {
		return res, err
	}

	fee, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get fee")

		return res, fmt.Errorf("failed to get fee: %w", err)
	}

	if fee.ID == constant.Empty {
		return res, failure.NotFound("fee not found") // nolint:wrapcheck
	}

	if act.IsStudent() {
		student, err := s.callerStudent(ctx, act)
		if err != nil {
			return res, err
		}

		if fee.StudentID != student.ID {
			return res, failure.ResourceRestrictedError
		}
	}

	res.FromModel(fee)

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
