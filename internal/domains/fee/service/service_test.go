package service_test

import (
	"context"
	"hostel/infras/otel/mocks"
	feeMocks "hostel/internal/domains/fee/mocks"
	"hostel/internal/domains/fee/model"
	"hostel/internal/domains/fee/model/dto"
	"hostel/internal/domains/fee/service"
	studentMocks "hostel/internal/domains/student/mocks"
	studentModel "hostel/internal/domains/student/model"
	"hostel/shared/actor"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
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

func setup(t *testing.T) (service.Fee, *feeMocks.MockFee, *studentMocks.MockStudent) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := feeMocks.NewMockFee(ctrl)
	students := studentMocks.NewMockStudent(ctrl)

	return service.New(repo, students, mocks.NewOtel()), repo, students
}

func TestFeeService_Submit(t *testing.T) {
	svc, repo, students := setup(t)

	students.EXPECT().GetByUserID(gomock.Any(), student.UserID).Return(studentModel.Student{ID: "s1"}, nil)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fee model.Fee) error {
		assert.Equal(t, "s1", fee.StudentID)
		assert.InDelta(t, 1500.25, fee.Amount, 0.001)
		assert.False(t, fee.Paid)
		assert.False(t, fee.Verified)

		return nil
	})

	res, err := svc.Submit(context.Background(), student, dto.SubmitFeeRequest{Amount: 1500.25, ReceiptText: "UTR 99812"})

	require.NoError(t, err)
	assert.False(t, res.Paid)
	assert.Equal(t, "UTR 99812", res.ReceiptText)
}

func TestFeeService_Submit_Errors(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.Submit(context.Background(), student, dto.SubmitFeeRequest{Amount: 0, ReceiptText: "x"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.Submit(context.Background(), student, dto.SubmitFeeRequest{Amount: -5, ReceiptText: "x"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.Submit(context.Background(), staff, dto.SubmitFeeRequest{Amount: 5, ReceiptText: "x"})
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestFeeService_Settle(t *testing.T) {
	type settleFunc func(svc service.Fee, act actor.Actor) (dto.FeeResponse, error)

	operations := map[string]settleFunc{
		"mark paid": func(svc service.Fee, act actor.Actor) (dto.FeeResponse, error) {
			return svc.MarkPaid(context.Background(), act, "f1")
		},
		"verify": func(svc service.Fee, act actor.Actor) (dto.FeeResponse, error) {
			return svc.Verify(context.Background(), act, "f1")
		},
	}

	for name, settle := range operations {
		t.Run(name+" sets both flags", func(t *testing.T) {
			svc, repo, _ := setup(t)

			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Fee{ID: "f1", Amount: 100}, nil)
			repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, true, fields[model.FieldPaid])
				assert.Equal(t, true, fields[model.FieldVerified])

				return nil
			})

			res, err := settle(svc, staff)

			require.NoError(t, err)
			assert.True(t, res.Paid)
			assert.True(t, res.Verified)
		})

		t.Run(name+" is idempotent", func(t *testing.T) {
			svc, repo, _ := setup(t)

			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Fee{ID: "f1", Paid: true, Verified: true}, nil)

			res, err := settle(svc, staff)

			require.NoError(t, err)
			assert.True(t, res.Paid)
			assert.True(t, res.Verified)
		})

		t.Run(name+" requires staff", func(t *testing.T) {
			svc, _, _ := setup(t)

			_, err := settle(svc, student)

			assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		})

		t.Run(name+" missing fee", func(t *testing.T) {
			svc, repo, _ := setup(t)

			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Fee{}, nil)

			_, err := settle(svc, staff)

			assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		})
	}
}

func TestFeeService_GetAll_StudentSeesOwn(t *testing.T) {
	svc, repo, students := setup(t)

	students.EXPECT().GetByUserID(gomock.Any(), student.UserID).Return(studentModel.Student{ID: "s1"}, nil)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
		where, _ := filter.GetWhereClause()
		assert.Equal(t, "((fees.student_id = :student_id))", where)

		return 1, nil
	})
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Fee{{ID: "f1", StudentID: "s1"}}, nil)

	res, err := svc.GetAll(context.Background(), student, gDto.QueryParams{}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Len(t, res.Fees, 1)
}

func TestFeeService_Get(t *testing.T) {
	svc, repo, students := setup(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Fee{ID: "f1", StudentID: "s-other"}, nil)
	students.EXPECT().GetByUserID(gomock.Any(), student.UserID).Return(studentModel.Student{ID: "s1"}, nil)

	_, err := svc.Get(context.Background(), student, "f1")

	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}
