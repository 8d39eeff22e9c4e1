package service_test

import (
	"context"
	"errors"
	"hostel/infras/otel/mocks"
	"hostel/infras/postgres"
	txMocks "hostel/infras/postgres/mocks"
	"hostel/internal/domains/allocation/model/dto"
	"hostel/internal/domains/allocation/service"
	occupancyMocks "hostel/internal/domains/occupancy/mocks"
	occupancy "hostel/internal/domains/occupancy/service"
	roomMocks "hostel/internal/domains/room/mocks"
	roomModel "hostel/internal/domains/room/model"
	roomRepo "hostel/internal/domains/room/repository"
	studentMocks "hostel/internal/domains/student/mocks"
	studentModel "hostel/internal/domains/student/model"
	studentRepo "hostel/internal/domains/student/repository"
	"hostel/shared/actor"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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
	svc      service.Allocation
	students *studentMocks.MockStudent
	rooms    *roomMocks.MockRoom
	tracker  *occupancyMocks.MockTracker
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		students: studentMocks.NewMockStudent(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
		tracker:  occupancyMocks.NewMockTracker(ctrl),
	}
	f.svc = service.New(f.students, f.rooms, f.tracker, txMocks.NewTransactor(), mocks.NewOtel())

	return f
}

func ptr(s string) *string {
	return &s
}

func roomIDOf(t *testing.T, fields map[string]any) *string {
	t.Helper()

	roomID, ok := fields[studentModel.FieldRoomID].(*string)
	require.True(t, ok)

	return roomID
}

func TestAllocationService_Allocate(t *testing.T) {
	req := dto.AllocateRequest{StudentID: "s1", RoomID: "r1"}

	tests := []struct {
		name      string
		actor     actor.Actor
		setupMock func(f fixture)
		wantErr   error
		code      int
	}{
		{
			name:  "allocates free seat",
			actor: staff,
			setupMock: func(f fixture) {
				f.students.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(studentModel.Student{ID: "s1"}, nil)
				f.tracker.EXPECT().Increment(gomock.Any(), gomock.Any(), "r1").Return(nil)
				f.students.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, "r1", *roomIDOf(t, fields))
					assert.Equal(t, staff.UserID, fields[constant.FieldModifiedBy])

					return nil
				})
				f.rooms.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "r1", Number: "A-101", Capacity: 2, Occupied: 1}, nil)
			},
		},
		{
			name:  "room full leaves student unassigned",
			actor: staff,
			setupMock: func(f fixture) {
				f.students.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(studentModel.Student{ID: "s1"}, nil)
				f.tracker.EXPECT().Increment(gomock.Any(), gomock.Any(), "r1").Return(failure.ErrRoomFull)
			},
			wantErr: failure.ErrRoomFull,
			code:    http.StatusConflict,
		},
		{
			name:  "room missing",
			actor: staff,
			setupMock: func(f fixture) {
				f.students.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(studentModel.Student{ID: "s1"}, nil)
				f.tracker.EXPECT().Increment(gomock.Any(), gomock.Any(), "r1").Return(failure.NotFound("room not found"))
			},
			code: http.StatusNotFound,
		},
		{
			name:  "student missing",
			actor: staff,
			setupMock: func(f fixture) {
				f.students.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(studentModel.Student{}, nil)
			},
			code: http.StatusNotFound,
		},
		{
			name:  "student already housed",
			actor: staff,
			setupMock: func(f fixture) {
				f.students.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(studentModel.Student{ID: "s1", RoomID: ptr("r9")}, nil)
			},
			code: http.StatusConflict,
		},
		{
			name:      "student actor",
			actor:     student,
			setupMock: func(_ fixture) {},
			code:      http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			tt.setupMock(f)

			res, err := f.svc.Allocate(context.Background(), tt.actor, req)

			if tt.code != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.code, failure.GetCode(err))

				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "r1", res.Student.RoomID)
			assert.Equal(t, "A-101", res.Student.RoomNumber)
			assert.Equal(t, 1, res.Room.Occupied)
		})
	}
}

func TestAllocationService_Unassign(t *testing.T) {
	t.Run("releases the room", func(t *testing.T) {
		f := setup(t)

		f.students.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(studentModel.Student{ID: "s1", RoomID: ptr("r1")}, nil)
		f.students.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Nil(t, roomIDOf(t, fields))

			return nil
		})
		f.tracker.EXPECT().Decrement(gomock.Any(), gomock.Any(), "r1").Return(true, nil)

		res, err := f.svc.Unassign(context.Background(), staff, "s1")

		require.NoError(t, err)
		assert.Equal(t, "r1", res.PreviousRoomID)
		assert.Empty(t, res.Warning)
	})

	t.Run("no room is a warning", func(t *testing.T) {
		f := setup(t)

		f.students.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(studentModel.Student{ID: "s1"}, nil)

		res, err := f.svc.Unassign(context.Background(), staff, "s1")

		require.NoError(t, err)
		assert.Equal(t, dto.NoRoomAssignedWarning, res.Warning)
		assert.Empty(t, res.PreviousRoomID)
	})

	t.Run("decrement failure rolls back", func(t *testing.T) {
		f := setup(t)

		f.students.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(studentModel.Student{ID: "s1", RoomID: ptr("r1")}, nil)
		f.students.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.tracker.EXPECT().Decrement(gomock.Any(), gomock.Any(), "r1").Return(false, errors.New("connection reset"))

		res, err := f.svc.Unassign(context.Background(), staff, "s1")

		require.Error(t, err)
		assert.Empty(t, res.StudentID)
	})
}

func TestAllocationService_AssignTx(t *testing.T) {
	t.Run("moves student and releases the old room", func(t *testing.T) {
		f := setup(t)

		gomock.InOrder(
			f.tracker.EXPECT().Decrement(gomock.Any(), gomock.Any(), "r-old").Return(true, nil),
			f.students.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)

		err := f.svc.AssignTx(context.Background(), nil, staff, studentModel.Student{ID: "s1", RoomID: ptr("r-old")}, "r-new")

		require.NoError(t, err)
	})

	t.Run("same room is a no-op", func(t *testing.T) {
		f := setup(t)

		err := f.svc.AssignTx(context.Background(), nil, staff, studentModel.Student{ID: "s1", RoomID: ptr("r1")}, "r1")

		require.NoError(t, err)
	})
}

// Runs the real repositories and tracker over sqlmock so the whole claim
// and bind happens in one transaction.
func TestAllocationService_Allocate_SingleTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() { sqlxDB.Close() })

	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}
	ot := mocks.NewOtel()
	rooms := roomRepo.New(conn, ot)
	svc := service.New(studentRepo.New(conn, ot), rooms, occupancy.New(rooms, postgres.NewTransactor(conn), ot), postgres.NewTransactor(conn), ot)
	now := time.Now()

	t.Run("commits claim and binding", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectPrepare(`SELECT (.+) FROM students\s+WHERE \(students.id = \$1\)\s+FOR UPDATE`).
			ExpectQuery().
			WithArgs("s1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "roll_no", "room_id"}).AddRow("s1", "u1", "CS-1", nil))
		mock.ExpectExec(`UPDATE rooms SET occupied = occupied \+ 1`).
			WithArgs("r1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE students SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectPrepare(`SELECT (.+) FROM rooms\s+WHERE \(rooms.id = \$1\)`).
			ExpectQuery().
			WithArgs("r1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "number", "capacity", "occupied", "created_at", "modified_at"}).
				AddRow("r1", "A-101", 2, 2, now, now))
		mock.ExpectCommit()

		res, err := svc.Allocate(context.Background(), staff, dto.AllocateRequest{StudentID: "s1", RoomID: "r1"})

		require.NoError(t, err)
		assert.False(t, res.Room.Available)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("full room rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectPrepare(`SELECT (.+) FROM students\s+WHERE \(students.id = \$1\)\s+FOR UPDATE`).
			ExpectQuery().
			WithArgs("s2").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "roll_no", "room_id"}).AddRow("s2", "u2", "CS-2", nil))
		mock.ExpectExec(`UPDATE rooms SET occupied = occupied \+ 1`).
			WithArgs("r1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectPrepare(`SELECT rooms.id FROM rooms`).
			ExpectQuery().
			WithArgs("r1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r1"))
		mock.ExpectRollback()

		_, err := svc.Allocate(context.Background(), staff, dto.AllocateRequest{StudentID: "s2", RoomID: "r1"})

		assert.ErrorIs(t, err, failure.ErrRoomFull)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
