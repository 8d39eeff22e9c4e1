package service_test

import (
	"context"
	"errors"
	"hostel/config"
	"hostel/infras/otel/mocks"
	s3Mocks "hostel/infras/s3/mocks"
	exportMocks "hostel/internal/domains/export/mocks"
	"hostel/internal/domains/export/model"
	"hostel/internal/domains/export/service"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/timezone"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	staff   = actor.New("staff-1", constant.RoleStaff)
	student = actor.New("user-2", constant.RoleStudent)
)

func setup(t *testing.T) (service.Export, *exportMocks.MockExport, *s3Mocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := exportMocks.NewMockExport(ctrl)
	storage := s3Mocks.NewMockStorage(ctrl)

	cfg := &config.Config{}
	cfg.Hostel.ExportDir = "exports"

	return service.New(repo, storage, cfg, mocks.NewOtel()), repo, storage
}

func TestExportService_Render(t *testing.T) {
	created := time.Date(2024, 6, 3, 9, 15, 0, 0, time.UTC)

	tests := []struct {
		name      string
		feed      string
		setupMock func(repo *exportMocks.MockExport)
		expected  []string
	}{
		{
			name: "students",
			feed: model.FeedStudents,
			setupMock: func(repo *exportMocks.MockExport) {
				repo.EXPECT().Students(gomock.Any()).Return([]model.StudentRow{
					{Username: "asha", FullName: "Asha Rao", RollNo: "CS21-004", Contact: "98450 12345", Course: "BE CSE", Semester: 5, Room: "A-101"},
					{Username: "vikram", FullName: "Vikram, Jr", RollNo: "ME21-011", Course: "BE Mech", Semester: 3},
				}, nil)
			},
			expected: []string{
				"username,full_name,roll_no,contact,course,semester,room",
				"asha,Asha Rao,CS21-004,98450 12345,BE CSE,5,A-101",
				`vikram,"Vikram, Jr",ME21-011,,BE Mech,3,`,
			},
		},
		{
			name: "rooms",
			feed: model.FeedRooms,
			setupMock: func(repo *exportMocks.MockExport) {
				repo.EXPECT().Rooms(gomock.Any()).Return([]model.RoomRow{{Number: "A-101", Capacity: 3, Occupied: 2}}, nil)
			},
			expected: []string{"number,capacity,occupied", "A-101,3,2"},
		},
		{
			name: "complaints",
			feed: model.FeedComplaints,
			setupMock: func(repo *exportMocks.MockExport) {
				repo.EXPECT().Complaints(gomock.Any()).Return([]model.ComplaintRow{
					{Title: "Tap leaking", Student: "asha", Category: "water", Status: "pending", CreatedAt: created},
				}, nil)
			},
			expected: []string{"title,student,category,status,created_at", "Tap leaking,asha,water,pending," + timezone.Format(created, constant.DateFormat)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := setup(t)
			tt.setupMock(repo)

			file, err := svc.Render(context.Background(), staff, tt.feed)

			require.NoError(t, err)
			assert.Equal(t, tt.feed+".csv", file.FileName)
			assert.Equal(t, len(tt.expected)-1, file.Rows)

			lines := strings.Split(strings.TrimSuffix(string(file.Data), "\n"), "\n")
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestExportService_Render_Errors(t *testing.T) {
	svc, repo, _ := setup(t)

	_, err := svc.Render(context.Background(), staff, "fees")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.Render(context.Background(), student, model.FeedRooms)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))

	repo.EXPECT().Rooms(gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err = svc.Render(context.Background(), staff, model.FeedRooms)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestExportService_Archive(t *testing.T) {
	svc, repo, storage := setup(t)

	repo.EXPECT().Rooms(gomock.Any()).Return([]model.RoomRow{{Number: "A-101", Capacity: 2}}, nil)
	storage.EXPECT().Upload(gomock.Any(), "exports", gomock.Any(), constant.ContentTypeCSV, []byte("number,capacity,occupied\nA-101,2,0\n")).
		DoAndReturn(func(_ context.Context, dir, fileName, _ string, _ []byte) (string, error) {
			assert.True(t, strings.HasPrefix(fileName, "rooms-"))
			assert.True(t, strings.HasSuffix(fileName, ".csv"))

			return "https://files.example.org/" + dir + "/" + fileName, nil
		})

	res, err := svc.Archive(context.Background(), staff, model.FeedRooms)

	require.NoError(t, err)
	assert.Equal(t, model.FeedRooms, res.Feed)
	assert.Equal(t, 1, res.Rows)
	assert.Equal(t, "https://files.example.org/exports/"+res.FileName, res.URL)
}

func TestExportService_Archive_UploadFails(t *testing.T) {
	svc, repo, storage := setup(t)

	repo.EXPECT().Rooms(gomock.Any()).Return(nil, nil)
	storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket missing"))

	_, err := svc.Archive(context.Background(), staff, model.FeedRooms)

	assert.ErrorContains(t, err, "failed to archive export")
}
