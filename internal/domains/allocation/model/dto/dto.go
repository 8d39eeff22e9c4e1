package dto

import (
	roomDto "hostel/internal/domains/room/model/dto"
	studentDto "hostel/internal/domains/student/model/dto"
)

// NoRoomAssignedWarning is returned, not raised, when unassigning a student
// that holds no room.
const NoRoomAssignedWarning = "student has no room assigned"

type AllocateRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	RoomID    string `json:"room_id"    validate:"required,uuid"`
}

type AllocationResponse struct {
	Student studentDto.StudentResponse `json:"student"`
	Room    roomDto.RoomResponse       `json:"room"`
}

type UnassignResponse struct {
	StudentID      string `json:"student_id"`
	PreviousRoomID string `json:"previous_room_id,omitempty"`
	Warning        string `json:"warning,omitempty"`
}
