package allocation_test

import (
	"context"
	"hostel/infras/otel/mocks"
	allocationMocks "hostel/internal/domains/allocation/mocks"
	"hostel/internal/domains/allocation/model/dto"
	roomDto "hostel/internal/domains/room/model/dto"
	"hostel/internal/handlers/allocation"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	studentID = "0b7f3c1f-8a11-4c53-9b1d-6f1c7b9a1d2e"
	roomID    = "6f1c7b9a-1d2e-4c53-9b1d-0b7f3c1f8a11"
)

var warden = actor.New("warden-1", constant.RoleStaff)

func newRouter(t *testing.T) (http.Handler, *allocationMocks.MockAllocation) {
	t.Helper()

	service := allocationMocks.NewMockAllocation(gomock.NewController(t))
	handler := allocation.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, warden.UserID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, warden.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.Router(router)

	return router, service
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(service *allocationMocks.MockAllocation)
		code     int
		contains string
	}{
		{
			name: "allocated",
			body: `{"student_id":"` + studentID + `","room_id":"` + roomID + `"}`,
			mock: func(service *allocationMocks.MockAllocation) {
				service.EXPECT().
					Allocate(gomock.Any(), warden, dto.AllocateRequest{StudentID: studentID, RoomID: roomID}).
					Return(dto.AllocationResponse{Room: roomDto.RoomResponse{ID: roomID, Number: "A1", Capacity: 1, Occupied: 1}}, nil)
			},
			code:     http.StatusOK,
			contains: `"number":"A1"`,
		},
		{
			name: "room full",
			body: `{"student_id":"` + studentID + `","room_id":"` + roomID + `"}`,
			mock: func(service *allocationMocks.MockAllocation) {
				service.EXPECT().Allocate(gomock.Any(), warden, gomock.Any()).Return(dto.AllocationResponse{}, failure.ErrRoomFull)
			},
			code:     http.StatusConflict,
			contains: `"error":"room is full"`,
		},
		{
			name:     "room id is not a uuid",
			body:     `{"student_id":"` + studentID + `","room_id":"A1"}`,
			code:     http.StatusBadRequest,
			contains: "room_id must be a valid UUID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)

			if tt.mock != nil {
				tt.mock(service)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/allocations", strings.NewReader(tt.body)))

			assert.Equal(t, tt.code, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.contains)
		})
	}
}

func TestUnassign_NoRoomIsAWarning(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().
		Unassign(gomock.Any(), warden, studentID).
		Return(dto.UnassignResponse{StudentID: studentID, Warning: dto.NoRoomAssignedWarning}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/allocations/"+studentID, nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"warning":"student has no room assigned"`)
}
