package model

import "hostel/shared/model"

const (
	TableName  = "students"
	EntityName = "student"

	FieldID       = "id"
	FieldUserID   = "user_id"
	FieldRollNo   = "roll_no"
	FieldContact  = "contact"
	FieldCourse   = "course"
	FieldSemester = "semester"
	FieldRoomID   = "room_id"
)

type Student struct {
	ID       string  `db:"id"`
	UserID   string  `db:"user_id"`
	RollNo   string  `db:"roll_no"`
	Contact  string  `db:"contact"`
	Course   string  `db:"course"`
	Semester int     `db:"semester"`
	RoomID   *string `db:"room_id"`
	model.Metadata
}

func (s Student) HasRoom() bool {
	return s.RoomID != nil && *s.RoomID != ""
}

// InRoom reports whether the student currently holds roomID.
func (s Student) InRoom(roomID string) bool {
	return s.HasRoom() && *s.RoomID == roomID
}
