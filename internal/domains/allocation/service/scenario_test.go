package service_test

import (
	"context"
	"hostel/infras/otel/mocks"
	"hostel/internal/domains/allocation/model/dto"
	"hostel/internal/domains/allocation/service"
	occupancy "hostel/internal/domains/occupancy/service"
	roomMocks "hostel/internal/domains/room/mocks"
	roomModel "hostel/internal/domains/room/model"
	studentMocks "hostel/internal/domains/student/mocks"
	studentModel "hostel/internal/domains/student/model"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	"maps"
	"math/rand/v2"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// hostelStore answers the room and student repositories from memory with
// the same conditional counter updates the SQL performs. A failed
// transaction restores the state it started from.
type hostelStore struct {
	rooms    map[string]roomModel.Room
	students map[string]*string
}

func (h *hostelStore) WithinTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	rooms := maps.Clone(h.rooms)
	students := maps.Clone(h.students)

	if err := fn(nil); err != nil {
		h.rooms, h.students = rooms, students

		return err
	}

	return nil
}

// assigned counts the students bound to roomID.
func (h *hostelStore) assigned(roomID string) int {
	count := 0

	for _, room := range h.students {
		if room != nil && *room == roomID {
			count++
		}
	}

	return count
}

func idOf(filter gDto.FilterGroup) string {
	_, args := filter.GetWhereClause()
	id, _ := args[roomModel.FieldID].(string)

	return id
}

func newHostel(t *testing.T, rooms []roomModel.Room, studentIDs ...string) (service.Allocation, *hostelStore) {
	t.Helper()

	store := &hostelStore{rooms: map[string]roomModel.Room{}, students: map[string]*string{}}
	for _, room := range rooms {
		store.rooms[room.ID] = room
	}

	for _, id := range studentIDs {
		store.students[id] = nil
	}

	ctrl := gomock.NewController(t)
	roomRepo := roomMocks.NewMockRoom(ctrl)
	studentRepo := studentMocks.NewMockStudent(ctrl)

	roomRepo.EXPECT().IncrementOccupiedTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, id string) (bool, error) {
		room, ok := store.rooms[id]
		if !ok || room.Occupied >= room.Capacity {
			return false, nil
		}

		room.Occupied++
		store.rooms[id] = room

		return true, nil
	}).AnyTimes()
	roomRepo.EXPECT().DecrementOccupiedTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, id string) (bool, error) {
		room, ok := store.rooms[id]
		if !ok || room.Occupied == 0 {
			return false, nil
		}

		room.Occupied--
		store.rooms[id] = room

		return true, nil
	}).AnyTimes()
	roomRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, _ ...string) (roomModel.Room, error) {
		return store.rooms[idOf(filter)], nil
	}).AnyTimes()

	studentRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, _ ...string) (studentModel.Student, error) {
		id := idOf(filter)

		roomID, ok := store.students[id]
		if !ok {
			return studentModel.Student{}, nil
		}

		return studentModel.Student{ID: id, RoomID: roomID}, nil
	}).AnyTimes()
	studentRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error {
		roomID, _ := fields[studentModel.FieldRoomID].(*string)
		store.students[idOf(filter)] = roomID

		return nil
	}).AnyTimes()

	ot := mocks.NewOtel()
	tracker := occupancy.New(roomRepo, store, ot)

	return service.New(studentRepo, roomRepo, tracker, store, ot), store
}

func TestAllocationScenario_SingleSeatRoom(t *testing.T) {
	svc, store := newHostel(t, []roomModel.Room{{ID: "a1", Number: "A1", Capacity: 1}}, "s1", "s2")
	ctx := context.Background()

	_, err := svc.Allocate(ctx, staff, dto.AllocateRequest{StudentID: "s1", RoomID: "a1"})
	require.NoError(t, err)
	assert.Equal(t, 1, store.rooms["a1"].Occupied)

	_, err = svc.Allocate(ctx, staff, dto.AllocateRequest{StudentID: "s2", RoomID: "a1"})
	require.ErrorIs(t, err, failure.ErrRoomFull)
	assert.Equal(t, 1, store.rooms["a1"].Occupied)
	assert.Nil(t, store.students["s2"])

	res, err := svc.Unassign(ctx, staff, "s1")
	require.NoError(t, err)
	assert.Empty(t, res.Warning)
	assert.Equal(t, "a1", res.PreviousRoomID)
	assert.Equal(t, 0, store.rooms["a1"].Occupied)

	res, err = svc.Unassign(ctx, staff, "s1")
	require.NoError(t, err)
	assert.Equal(t, dto.NoRoomAssignedWarning, res.Warning)
	assert.Equal(t, 0, store.rooms["a1"].Occupied)

	_, err = svc.Allocate(ctx, staff, dto.AllocateRequest{StudentID: "s2", RoomID: "a1"})
	require.NoError(t, err)
	assert.Equal(t, 1, store.rooms["a1"].Occupied)
}

// Any mix of allocations and unassignments keeps every counter equal to the
// students bound to the room and never above capacity.
func TestAllocationScenario_CounterMatchesAssignments(t *testing.T) {
	rooms := []roomModel.Room{
		{ID: "a1", Number: "A1", Capacity: 1},
		{ID: "a2", Number: "A2", Capacity: 2},
		{ID: "b1", Number: "B1", Capacity: 3},
	}
	students := []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7"}

	svc, store := newHostel(t, rooms, students...)
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(7, 11))

	for step := range 300 {
		studentID := students[rng.IntN(len(students))]

		if rng.IntN(2) == 0 {
			roomID := rooms[rng.IntN(len(rooms))].ID
			_, err := svc.Allocate(ctx, staff, dto.AllocateRequest{StudentID: studentID, RoomID: roomID})

			// a full room or a student who already has one
			if err != nil {
				require.Equal(t, http.StatusConflict, failure.GetCode(err), "step %d: %v", step, err)
			}
		} else {
			_, err := svc.Unassign(ctx, staff, studentID)
			require.NoError(t, err, "step %d", step)
		}

		for _, room := range store.rooms {
			require.Equal(t, store.assigned(room.ID), room.Occupied, "step %d room %s", step, room.Number)
			require.LessOrEqual(t, room.Occupied, room.Capacity, "step %d room %s", step, room.Number)
		}
	}
}
