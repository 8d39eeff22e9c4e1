package service_test

import (
	"context"
	"errors"
	"hostel/config"
	"hostel/infras/otel/mocks"
	menuMocks "hostel/internal/domains/messmenu/mocks"
	"hostel/internal/domains/messmenu/model"
	"hostel/internal/domains/messmenu/model/dto"
	"hostel/internal/domains/messmenu/service"
	"hostel/shared/actor"
	cacheMocks "hostel/shared/cache/mocks"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/timezone"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	staff   = actor.New("staff-1", constant.RoleStaff)
	student = actor.New("user-2", constant.RoleStudent)
)

func setup(t *testing.T, days int) (service.MessMenu, *menuMocks.MockMessMenu, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := menuMocks.NewMockMessMenu(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Hostel.MessMenuDays = days
	cfg.Cache.TTL = 60

	return service.New(repo, cfg, redisCache, mocks.NewOtel()), repo, redisCache
}

func TestMessMenuService_Upsert(t *testing.T) {
	svc, repo, redisCache := setup(t, 7)

	gomock.InOrder(
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, menu model.MessMenu) (model.MessMenu, error) {
			assert.Equal(t, "2024-06-03", menu.Date.Format(constant.DayDateFormat))
			assert.Equal(t, staff.UserID, menu.ModifiedBy)

			return menu, nil
		}),
		redisCache.EXPECT().Clear(gomock.Any(), "messmenu:week*").Return(nil),
	)

	res, err := svc.Upsert(context.Background(), staff, dto.UpsertMenuRequest{Date: "2024-06-03", Breakfast: "Poha", Lunch: "Thali", Dinner: "Biryani"})

	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", res.Date)
	assert.Equal(t, "Monday", res.Weekday)
	assert.Equal(t, "Biryani", res.Dinner)
}

func TestMessMenuService_Upsert_Errors(t *testing.T) {
	svc, repo, _ := setup(t, 7)

	_, err := svc.Upsert(context.Background(), student, dto.UpsertMenuRequest{Date: "2024-06-03"})
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))

	_, err = svc.Upsert(context.Background(), staff, dto.UpsertMenuRequest{Date: "03/06/2024"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(model.MessMenu{}, errors.New("connection reset"))

	_, err = svc.Upsert(context.Background(), staff, dto.UpsertMenuRequest{Date: "2024-06-03"})
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestMessMenuService_GetWeek_FillsMissingDays(t *testing.T) {
	svc, repo, redisCache := setup(t, 0)

	today := timezone.Today()
	tomorrow := today.AddDate(0, 0, 1)

	redisCache.EXPECT().Get(gomock.Any(), "messmenu:week:"+today.Format(constant.DayDateFormat), gomock.Any()).Return(errors.New("miss"))
	repo.EXPECT().GetRange(gomock.Any(), today, today.AddDate(0, 0, 6)).
		Return([]model.MessMenu{{Date: tomorrow, Lunch: "Chole bhature"}}, nil)
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil)

	res, err := svc.GetWeek(context.Background(), student)

	require.NoError(t, err)
	require.Len(t, res.Days, 7)
	assert.Equal(t, today.Format(constant.DayDateFormat), res.Days[0].Date)
	assert.Empty(t, res.Days[0].Lunch)
	assert.Equal(t, "Chole bhature", res.Days[1].Lunch)
	assert.Equal(t, today.AddDate(0, 0, 6).Format(constant.DayDateFormat), res.Days[6].Date)
}

func TestMessMenuService_GetWeek_CacheHit(t *testing.T) {
	svc, _, redisCache := setup(t, 3)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*dto.WeekMenuResponse) = dto.WeekMenuResponse{Days: make([]dto.MenuResponse, 3)}

			return nil
		})

	res, err := svc.GetWeek(context.Background(), staff)

	require.NoError(t, err)
	assert.Len(t, res.Days, 3)
}

func TestMessMenuService_GetWeek_Anonymous(t *testing.T) {
	svc, _, _ := setup(t, 7)

	_, err := svc.GetWeek(context.Background(), actor.Actor{})

	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}
