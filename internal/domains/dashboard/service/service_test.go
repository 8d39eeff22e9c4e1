package service_test

import (
	"context"
	"errors"
	"hostel/config"
	"hostel/infras/otel/mocks"
	dashboardMocks "hostel/internal/domains/dashboard/mocks"
	"hostel/internal/domains/dashboard/model"
	"hostel/internal/domains/dashboard/service"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (service.Dashboard, *dashboardMocks.MockDashboard) {
	t.Helper()

	repo := dashboardMocks.NewMockDashboard(gomock.NewController(t))

	return service.New(repo, &config.Config{}, mocks.NewOtel()), repo
}

func TestDashboardService_Summary_Cached(t *testing.T) {
	svc, repo := setup(t)
	staff := actor.New("staff-1", constant.RoleStaff)

	repo.EXPECT().Summary(gomock.Any()).Return(model.Summary{RoomCount: 10, AvailableRoomCount: 3, UnpaidFees: 2}, nil).Times(1)

	first, err := svc.Summary(context.Background(), staff)
	require.NoError(t, err)

	second, err := svc.Summary(context.Background(), staff)
	require.NoError(t, err)

	assert.Equal(t, 10, first.RoomCount)
	assert.Equal(t, 3, first.AvailableRoomCount)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first.GeneratedAt)
}

func TestDashboardService_Summary_Errors(t *testing.T) {
	svc, repo := setup(t)

	_, err := svc.Summary(context.Background(), actor.New("user-2", constant.RoleStudent))
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))

	repo.EXPECT().Summary(gomock.Any()).Return(model.Summary{}, errors.New("connection reset"))

	_, err = svc.Summary(context.Background(), actor.New("staff-1", constant.RoleStaff))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
