package dto

import (
	"hostel/internal/domains/room/model"
	studentModel "hostel/internal/domains/student/model"
	"hostel/shared"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	"hostel/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number   string `json:"number"   validate:"required,notblank,max=20"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:       uuid.NewString(),
		Number:   c.Number,
		Capacity: c.Capacity,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateRoomRequest struct {
	Number   string `db:"number"   json:"number,omitempty"   validate:"omitempty,notblank,max=20"`
	Capacity *int   `db:"capacity" json:"capacity,omitempty" validate:"omitempty,gt=0"`
}

// Apply copies the requested changes onto room.
func (u *UpdateRoomRequest) Apply(room *model.Room) {
	if u.Number != "" {
		room.Number = u.Number
	}

	if u.Capacity != nil {
		room.Capacity = *u.Capacity
	}
}

type RoomResponse struct {
	ID        string `json:"id"`
	Number    string `json:"number"`
	Capacity  int    `json:"capacity"`
	Occupied  int    `json:"occupied"`
	Vacancy   int    `json:"vacancy"`
	Available bool   `json:"available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Capacity = model.Capacity
	r.Occupied = model.Occupied
	r.Vacancy = model.Vacancy()
	r.Available = model.IsAvailable()
	r.Metadata.FromModel(model.Metadata)
}

type Occupant struct {
	StudentID string `json:"student_id"`
	RollNo    string `json:"roll_no"`
	Course    string `json:"course"`
	Semester  int    `json:"semester"`
}

type RoomDetailResponse struct {
	RoomResponse
	Occupants []Occupant `json:"occupants"`
}

func (r *RoomDetailResponse) FromModel(room model.Room, students []studentModel.Student) {
	r.RoomResponse.FromModel(room)

	r.Occupants = make([]Occupant, len(students))
	for i, student := range students {
		r.Occupants[i] = Occupant{
			StudentID: student.ID,
			RollNo:    student.RollNo,
			Course:    student.Course,
			Semester:  student.Semester,
		}
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
