package export_test

import (
	"context"
	"hostel/infras/otel/mocks"
	exportMocks "hostel/internal/domains/export/mocks"
	"hostel/internal/domains/export/model/dto"
	"hostel/internal/handlers/export"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func serve(t *testing.T, service *exportMocks.MockExportService, role string, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	handler := export.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	ctx := context.WithValue(req.Context(), constant.ContextKeyUserID, "user-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, role)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req.WithContext(ctx))

	return recorder
}

func TestDownloadFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := exportMocks.NewMockExportService(ctrl)

	service.EXPECT().
		Render(gomock.Any(), actor.New("user-1", constant.RoleStaff), "rooms").
		Return(dto.CSVFile{FileName: "rooms.csv", Data: []byte("number,capacity,occupied\nA-101,2,1\n"), Rows: 1}, nil)

	recorder := serve(t, service, constant.RoleStaff, httptest.NewRequest(http.MethodGet, "/exports/rooms", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, constant.ContentTypeCSV, recorder.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="rooms.csv"`, recorder.Header().Get(constant.RequestHeaderContentDisposition))
	assert.Equal(t, "number,capacity,occupied\nA-101,2,1\n", recorder.Body.String())
}

func TestDownloadFeed_Errors(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		feed         string
		err          error
		expectedCode int
	}{
		{name: "student", role: constant.RoleStudent, feed: "rooms", err: failure.ForbiddenError, expectedCode: http.StatusForbidden},
		{name: "unknown feed", role: constant.RoleStaff, feed: "fees", err: failure.BadRequestFromString("unknown export feed"), expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := exportMocks.NewMockExportService(ctrl)
			service.EXPECT().Render(gomock.Any(), gomock.Any(), tt.feed).Return(dto.CSVFile{}, tt.err)

			recorder := serve(t, service, tt.role, httptest.NewRequest(http.MethodGet, "/exports/"+tt.feed, nil))

			assert.Equal(t, tt.expectedCode, recorder.Code)
			assert.Empty(t, recorder.Header().Get(constant.RequestHeaderContentDisposition))
		})
	}
}

func TestArchiveFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := exportMocks.NewMockExportService(ctrl)

	service.EXPECT().
		Archive(gomock.Any(), actor.New("user-1", constant.RoleStaff), "students").
		Return(dto.ArchiveResponse{Feed: "students", FileName: "students-20240601T020000.csv", Rows: 3, URL: "https://files.example.com/exports/students-20240601T020000.csv"}, nil)

	recorder := serve(t, service, constant.RoleStaff, httptest.NewRequest(http.MethodPost, "/exports/students/archive", nil))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"rows":3`)
}
