package model

import (
	"hostel/shared/model"
	"time"
)

const (
	TableName  = "room_requests"
	EntityName = "room request"

	FieldID              = "id"
	FieldStudentID       = "student_id"
	FieldPreferredRoomID = "preferred_room_id"
	FieldReason          = "reason"
	FieldStatus          = "status"
	FieldAllocatedRoomID = "allocated_room_id"
	FieldProcessedBy     = "processed_by"
	FieldProcessedAt     = "processed_at"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type RoomRequest struct {
	ID              string     `db:"id"`
	StudentID       string     `db:"student_id"`
	PreferredRoomID *string    `db:"preferred_room_id"`
	Reason          string     `db:"reason"`
	Status          string     `db:"status"`
	AllocatedRoomID *string    `db:"allocated_room_id"`
	ProcessedBy     *string    `db:"processed_by"`
	ProcessedAt     *time.Time `db:"processed_at"`
	model.Metadata
}

// IsPending reports whether the request can still be processed. Approved
// and rejected are terminal.
func (r RoomRequest) IsPending() bool {
	return r.Status == StatusPending
}

func (r RoomRequest) HasPreference() bool {
	return r.PreferredRoomID != nil && *r.PreferredRoomID != ""
}
