package room_test

import (
	"context"
	"hostel/infras/otel/mocks"
	"hostel/internal/domains/room/model/dto"
	roomMocks "hostel/internal/domains/room/mocks"
	"hostel/internal/handlers/room"
	"hostel/shared/actor"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var staff = actor.New("staff-1", constant.RoleStaff)

func newRouter(t *testing.T) (http.Handler, *roomMocks.MockRoomService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := roomMocks.NewMockRoomService(ctrl)

	handler := room.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, staff.UserID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, staff.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.Router(router)

	return router, service
}

func TestCreateRoom(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().
		Create(gomock.Any(), staff, dto.CreateRoomRequest{Number: "A-101", Capacity: 2}).
		Return(dto.RoomResponse{ID: "room-1", Number: "A-101", Capacity: 2, Vacancy: 2, Available: true}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader(`{"number":"A-101","capacity":2}`)))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"number":"A-101"`)
}

func TestCreateRoom_InvalidBody(t *testing.T) {
	router, _ := newRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader(`{"number":"A-101","capacity":0}`)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetRooms_Filters(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().
		GetAll(gomock.Any(), staff, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ actor.Actor, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error) {
			where, args := filter.GetWhereClause()

			assert.Equal(t, "number", params.SortBy)
			assert.Equal(t, "(LOWER(rooms.number) LIKE LOWER(:number) AND (rooms.occupied < rooms.capacity))", where)
			assert.Equal(t, "%A-%", args["number"])

			return dto.GetRoomsResponse{TotalPage: 1}, nil
		})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/rooms?number=A-&available=true&sort_by=password", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDeleteRoom_Occupied(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().Delete(gomock.Any(), staff, "room-1").Return(failure.Conflict("room is occupied"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/rooms/room-1", nil))

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.JSONEq(t, `{"error":"room is occupied"}`, recorder.Body.String())
}
