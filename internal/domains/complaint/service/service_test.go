package service_test

import (
	"context"
	"hostel/infras/otel/mocks"
	txMocks "hostel/infras/postgres/mocks"
	complaintMocks "hostel/internal/domains/complaint/mocks"
	"hostel/internal/domains/complaint/model"
	"hostel/internal/domains/complaint/model/dto"
	"hostel/internal/domains/complaint/service"
	studentMocks "hostel/internal/domains/student/mocks"
	studentModel "hostel/internal/domains/student/model"
	"hostel/shared/actor"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	staff   = actor.New("staff-1", constant.RoleStaff)
	student = actor.New("user-2", constant.RoleStudent)
)

type fixture struct {
	svc      service.Complaint
	repo     *complaintMocks.MockComplaint
	comments *complaintMocks.MockComment
	students *studentMocks.MockStudent
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:     complaintMocks.NewMockComplaint(ctrl),
		comments: complaintMocks.NewMockComment(ctrl),
		students: studentMocks.NewMockStudent(ctrl),
	}
	f.svc = service.New(f.repo, f.comments, f.students, txMocks.NewTransactor(), mocks.NewOtel())

	return f
}

func TestComplaintService_Create(t *testing.T) {
	f := setup(t)

	f.students.EXPECT().GetByUserID(gomock.Any(), student.UserID).Return(studentModel.Student{ID: "s1"}, nil)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, complaint model.Complaint) error {
		assert.Equal(t, "s1", complaint.StudentID)
		assert.Equal(t, model.CategoryOther, complaint.Category)
		assert.Equal(t, model.StatusPending, complaint.Status)
		assert.False(t, complaint.Resolved)

		return nil
	})

	res, err := f.svc.Create(context.Background(), student, dto.CreateComplaintRequest{Title: "Leaking tap", Description: "Room A-101"})

	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, res.Status)

	_, err = f.svc.Create(context.Background(), staff, dto.CreateComplaintRequest{Title: "x", Description: "y"})
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestComplaintService_Get(t *testing.T) {
	f := setup(t)
	first := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Complaint{ID: "c1", StudentID: "s1", Status: model.StatusInProgress}, nil)
	f.students.EXPECT().GetByUserID(gomock.Any(), student.UserID).Return(studentModel.Student{ID: "s1"}, nil)
	f.comments.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Comment, error) {
		assert.Equal(t, "created_at", params.SortBy)
		assert.Equal(t, gDto.SortDirAsc, params.SortDir)

		where, _ := filter.GetWhereClause()
		assert.Equal(t, "(complaint_comments.complaint_id = :complaint_id)", where)

		return []model.Comment{
			{ID: "m1", Comment: "checking", CreatedAt: first},
			{ID: "m2", Comment: "plumber booked", CreatedAt: first.Add(time.Hour)},
		}, nil
	})

	res, err := f.svc.Get(context.Background(), student, "c1")

	require.NoError(t, err)
	require.Len(t, res.Comments, 2)
	assert.Equal(t, "m1", res.Comments[0].ID)
	assert.Equal(t, "m2", res.Comments[1].ID)
}

func TestComplaintService_Get_OtherStudent(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Complaint{ID: "c1", StudentID: "s-other"}, nil)
	f.students.EXPECT().GetByUserID(gomock.Any(), student.UserID).Return(studentModel.Student{ID: "s1"}, nil)

	_, err := f.svc.Get(context.Background(), student, "c1")

	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestComplaintService_AddComment(t *testing.T) {
	tests := []struct {
		name      string
		complaint model.Complaint
		setupMock func(t *testing.T, f fixture)
		code      int
	}{
		{
			name:      "first comment starts progress",
			complaint: model.Complaint{ID: "c1", Status: model.StatusPending},
			setupMock: func(t *testing.T, f fixture) {
				f.comments.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, comment model.Comment) error {
					assert.Equal(t, "c1", comment.ComplaintID)
					assert.Equal(t, staff.UserID, comment.AuthorID)

					return nil
				})
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, model.StatusInProgress, fields[model.FieldStatus])

					return nil
				})
			},
		},
		{
			name:      "later comment keeps status",
			complaint: model.Complaint{ID: "c1", Status: model.StatusInProgress},
			setupMock: func(_ *testing.T, f fixture) {
				f.comments.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "resolved complaint",
			complaint: model.Complaint{ID: "c1", Status: model.StatusResolved, Resolved: true},
			setupMock: func(_ *testing.T, _ fixture) {},
			code:      http.StatusConflict,
		},
		{
			name:      "missing complaint",
			complaint: model.Complaint{},
			setupMock: func(_ *testing.T, _ fixture) {},
			code:      http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.complaint, nil)
			tt.setupMock(t, f)

			res, err := f.svc.AddComment(context.Background(), staff, "c1", dto.AddCommentRequest{Comment: "on it"})

			if tt.code != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.code, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "on it", res.Comment)
			assert.NotEmpty(t, res.CreatedAt)
		})
	}
}

func TestComplaintService_Resolve(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Complaint{ID: "c1", Status: model.StatusInProgress}, nil)
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
		assert.Equal(t, model.StatusResolved, fields[model.FieldStatus])
		assert.Equal(t, true, fields[model.FieldResolved])
		assert.Equal(t, "tap replaced", fields[model.FieldResponse])

		return nil
	})

	res, err := f.svc.Resolve(context.Background(), staff, "c1", dto.ResolveComplaintRequest{Response: "tap replaced"})

	require.NoError(t, err)
	assert.True(t, res.Resolved)
	assert.Equal(t, model.StatusResolved, res.Status)
	assert.Equal(t, "tap replaced", res.Response)
}

func TestComplaintService_Resolve_Twice(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Complaint{ID: "c1", Status: model.StatusResolved, Resolved: true}, nil)

	_, err := f.svc.Resolve(context.Background(), staff, "c1", dto.ResolveComplaintRequest{})

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestComplaintService_Resolve_WithoutResponse(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Complaint{ID: "c1", Status: model.StatusPending}, nil)
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
		assert.NotContains(t, fields, model.FieldResponse)

		return nil
	})

	res, err := f.svc.Resolve(context.Background(), staff, "c1", dto.ResolveComplaintRequest{})

	require.NoError(t, err)
	assert.Empty(t, res.Response)
}

func TestComplaintService_GetAll(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Complaint{{ID: "c1"}}, nil)

	res, err := f.svc.GetAll(context.Background(), staff, gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
}
