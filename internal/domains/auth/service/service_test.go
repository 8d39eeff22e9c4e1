package service_test

import (
	"context"
	"errors"
	"hostel/infras/jwt"
	jwtMocks "hostel/infras/jwt/mocks"
	"hostel/infras/otel/mocks"
	txMocks "hostel/infras/postgres/mocks"
	"hostel/internal/domains/auth/model/dto"
	"hostel/internal/domains/auth/service"
	studentMocks "hostel/internal/domains/student/mocks"
	studentModel "hostel/internal/domains/student/model"
	studentDto "hostel/internal/domains/student/model/dto"
	userMocks "hostel/internal/domains/user/mocks"
	userModel "hostel/internal/domains/user/model"
	"hostel/shared/actor"
	cacheMocks "hostel/shared/cache/mocks"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/password"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc      service.Auth
	users    *userMocks.MockUser
	students *studentMocks.MockStudent
	jwt      *jwtMocks.MockJWT
	cache    *cacheMocks.MockRedisCache
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		users:    userMocks.NewMockUser(ctrl),
		students: studentMocks.NewMockStudent(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.users, f.students, txMocks.NewTransactor(), f.jwt, f.cache, mocks.NewOtel())

	return f
}

func hashed(t *testing.T, plain string) string {
	t.Helper()

	hash, err := password.Hash(plain)
	require.NoError(t, err)

	return hash
}

func (f fixture) expectListsCleared() {
	f.cache.EXPECT().Clear(gomock.Any(), "user:gets*").Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "user:count*").Return(nil)
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "asha",
		Email:    "asha@example.org",
		Password: "hostel-pass",
		FullName: "Asha Rao",
		Profile:  studentDto.Profile{RollNo: "CS21-004", Contact: "98450 12345", Course: "BE CSE", Semester: 5},
	}
}

func TestAuthService_Register(t *testing.T) {
	f := setup(t)

	var userID string

	gomock.InOrder(
		f.users.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, user userModel.User) error {
			userID = user.ID

			assert.Equal(t, constant.RoleStudent, user.Level)
			assert.NotEqual(t, "hostel-pass", user.Password)

			return nil
		}),
		f.students.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, student studentModel.Student) error {
			assert.Equal(t, userID, student.UserID)
			assert.Equal(t, "CS21-004", student.RollNo)
			assert.Nil(t, student.RoomID)

			return nil
		}),
	)
	f.expectListsCleared()

	res, err := f.svc.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	assert.Equal(t, userID, res.UserID)
	assert.NotEmpty(t, res.StudentID)
	assert.Equal(t, "asha", res.Username)
}

func TestAuthService_Register_DuplicateRollNo(t *testing.T) {
	f := setup(t)

	f.users.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.students.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(failure.Duplicate("student", "roll_no"))

	_, err := f.svc.Register(context.Background(), registerRequest())

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		user      userModel.User
		setupMock func(f fixture)
		code      int
	}{
		{
			name:     "success",
			password: "hostel-pass",
			user:     userModel.User{ID: "u1", Username: "warden", Level: constant.RoleStaff, Active: true},
			setupMock: func(f fixture) {
				f.jwt.EXPECT().GenerateTokenPair("u1", "warden", constant.RoleStaff).Return(&jwt.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)
				f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Delete(gomock.Any(), "user:get:u1").Return(nil)
				f.expectListsCleared()
			},
		},
		{
			name:     "last login update failure is ignored",
			password: "hostel-pass",
			user:     userModel.User{ID: "u1", Username: "warden", Level: constant.RoleStaff, Active: true},
			setupMock: func(f fixture) {
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(&jwt.TokenPair{AccessToken: "a"}, nil)
				f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
		},
		{
			name:     "wrong password",
			password: "guess",
			user:     userModel.User{ID: "u1", Active: true},
			code:     http.StatusUnauthorized,
		},
		{
			name:     "unknown username",
			password: "hostel-pass",
			user:     userModel.User{},
			code:     http.StatusUnauthorized,
		},
		{
			name:     "deactivated",
			password: "hostel-pass",
			user:     userModel.User{ID: "u1", Active: false},
			code:     http.StatusForbidden,
		},
	}

	hash := hashed(t, "hostel-pass")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			user := tt.user
			if user.ID != "" {
				user.Password = hash
			}

			f.users.EXPECT().GetByUsername(gomock.Any(), "warden").Return(user, nil)

			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			res, err := f.svc.Login(context.Background(), dto.LoginRequest{Username: "warden", Password: tt.password})

			if tt.code != 0 {
				assert.Equal(t, tt.code, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "a", res.AccessToken)
			assert.Equal(t, tt.user.Level, res.Role)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	f := setup(t)

	f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(&jwt.Claims{UserID: "u1", Role: constant.RoleStaff}, nil)
	f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "u1", Username: "asha", Level: constant.RoleStudent, Active: true}, nil)
	f.jwt.EXPECT().GenerateTokenPair("u1", "asha", constant.RoleStudent).Return(&jwt.TokenPair{AccessToken: "a2"}, nil)

	res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

	require.NoError(t, err)
	assert.Equal(t, constant.RoleStudent, res.Role)
}

func TestAuthService_RefreshToken_Rejected(t *testing.T) {
	f := setup(t)

	f.jwt.EXPECT().ValidateToken(gomock.Any(), jwt.RefreshToken).Return(nil, jwt.ErrExpiredToken)

	_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old"})
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	f.jwt.EXPECT().ValidateToken(gomock.Any(), jwt.RefreshToken).Return(&jwt.Claims{UserID: "u1"}, nil)
	f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "u1", Active: false}, nil)

	_, err = f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "r"})
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestAuthService_ChangePassword(t *testing.T) {
	f := setup(t)
	act := actor.New("u1", constant.RoleStudent)

	f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "u1", Password: hashed(t, "old-password")}, nil).Times(2)
	f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
		assert.NoError(t, password.Verify("new-password", fields[userModel.FieldPassword].(string)))

		return nil
	})
	f.cache.EXPECT().Delete(gomock.Any(), "user:get:u1").Return(nil)

	err := f.svc.ChangePassword(context.Background(), act, dto.ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"})
	require.NoError(t, err)

	err = f.svc.ChangePassword(context.Background(), act, dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "new-password"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	err = f.svc.ChangePassword(context.Background(), actor.Actor{}, dto.ChangePasswordRequest{})
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}
