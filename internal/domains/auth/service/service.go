package service

import (
	"context"
	"errors"
	"fmt"
	"hostel/infras/jwt"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/auth/model/dto"
	studentRepo "hostel/internal/domains/student/repository"
	userModel "hostel/internal/domains/user/model"
	userRepo "hostel/internal/domains/user/repository"
	"hostel/shared"
	"hostel/shared/actor"
	"hostel/shared/cache"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/password"
	"hostel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var errInvalidCredentials = failure.Unauthorized("invalid username or password")

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
	ChangePassword(ctx context.Context, act actor.Actor, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo    userRepo.User
	studentRepo studentRepo.Student
	transactor  postgres.Transactor
	jwt         jwt.JWT
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	userRepo userRepo.User,
	studentRepo studentRepo.Student,
	transactor postgres.Transactor,
	jwt jwt.JWT,
	cache cache.RedisCache,
	otel otel.Otel,
) Auth {
	return &serviceImpl{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		transactor:  transactor,
		jwt:         jwt,
		cache:       cache,
		otel:        otel,
	}
}

// Register creates the account and its student profile in one transaction.
// A taken username, email or roll number surfaces as a 409 from the store.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hashedPassword, timezone.Now())
	student := req.Profile.ToModel(user.ID, user.ID)

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.userRepo.InsertTx(ctx, tx, user); err != nil {
			return err
		}

		return s.studentRepo.InsertTx(ctx, tx, student)
	})
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("failed to register student")

		return res, fmt.Errorf("failed to register student: %w", err)
	}

	log.Info().Str("userID", user.ID).Str("studentID", student.ID).Msg("student registered")

	s.invalidateUserLists(ctx)

	res.UserID = user.ID
	res.StudentID = student.ID
	res.Username = user.Username

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		_ = password.VerifyUnknown(req.Password)

		return res, errInvalidCredentials
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, errInvalidCredentials
	}

	if !user.Active {
		return res, failure.Forbidden("account is deactivated")
	}

	tokenPair, err := s.jwt.GenerateTokenPair(user.ID, user.Username, user.Level)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}, user.ID)

	if err := s.userRepo.Update(ctx, lastLogin, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Warn().Err(err).Str("userID", user.ID).Msg("failed to update last login")
	} else {
		// last_login is part of both the single and the listed view
		s.forgetUser(ctx, user.ID)
		s.invalidateUserLists(ctx)
	}

	res.FromTokenPair(tokenPair, user.Level)

	return res, nil
}

// RefreshToken issues a new pair from the account's current level so a
// demoted or deactivated account cannot keep its old role.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwt.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("rejected refresh token")

		if errors.Is(err, jwt.ErrExpiredToken) {
			return res, failure.Unauthorized("refresh token has expired")
		}

		return res, failure.Unauthorized("invalid refresh token")
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(claims.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty || !user.Active {
		return res, failure.Unauthorized("invalid refresh token")
	}

	tokenPair, err := s.jwt.GenerateTokenPair(user.ID, user.Username, user.Level)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair, user.Level)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, act actor.Actor, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = act.RequireAny(); err != nil {
		return err
	}

	filter := shared.FilterByID(act.UserID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err = password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	fields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword}, act.UserID)

	if err = s.userRepo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	s.forgetUser(ctx, act.UserID)

	return nil
}

func (s *serviceImpl) forgetUser(ctx context.Context, userID string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(userModel.CacheGetUser, userID)); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("failed to delete user from cache")
	}
}

func (s *serviceImpl) invalidateUserLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, userModel.CacheGetAllUser)
	shared.InvalidateCaches(ctx, s.cache, userModel.CacheCountUser)
}
