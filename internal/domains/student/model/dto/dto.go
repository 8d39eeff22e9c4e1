package dto

import (
	roomModel "hostel/internal/domains/room/model"
	"hostel/internal/domains/student/model"
	userModel "hostel/internal/domains/user/model"
	"hostel/shared"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	"hostel/shared/timezone"

	"github.com/google/uuid"
)

// Profile holds the fields a student fills in at registration.
type Profile struct {
	RollNo   string `json:"roll_no"  validate:"required,rollno"`
	Contact  string `json:"contact"  validate:"required,notblank,max=20"`
	Course   string `json:"course"   validate:"required,notblank,max=100"`
	Semester int    `json:"semester" validate:"required,gt=0,lte=12"`
}

func (p *Profile) ToModel(userID, createdBy string) model.Student {
	return model.Student{
		ID:       uuid.NewString(),
		UserID:   userID,
		RollNo:   p.RollNo,
		Contact:  p.Contact,
		Course:   p.Course,
		Semester: p.Semester,
		Metadata: gModel.NewMetadata(createdBy, timezone.Now()),
	}
}

type CreateStudentRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Profile
}

type UpdateProfileRequest struct {
	Contact  string `db:"contact"  json:"contact,omitempty"  validate:"omitempty,notblank,max=20"`
	Course   string `db:"course"   json:"course,omitempty"   validate:"omitempty,notblank,max=100"`
	Semester int    `db:"semester" json:"semester,omitempty" validate:"omitempty,gt=0,lte=12"`
}

type StudentResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Username   string `json:"username,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	Email      string `json:"email,omitempty"`
	RollNo     string `json:"roll_no"`
	Contact    string `json:"contact"`
	Course     string `json:"course"`
	Semester   int    `json:"semester"`
	RoomID     string `json:"room_id,omitempty"`
	RoomNumber string `json:"room_number,omitempty"`
	gDto.Metadata
}

func (r *StudentResponse) FromModel(model model.Student) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.RollNo = model.RollNo
	r.Contact = model.Contact
	r.Course = model.Course
	r.Semester = model.Semester

	if model.HasRoom() {
		r.RoomID = *model.RoomID
	}

	r.Metadata.FromModel(model.Metadata)
}

func (r *StudentResponse) WithUser(user userModel.User) {
	r.Username = user.Username
	r.FullName = user.FullName
	r.Email = user.Email
}

func (r *StudentResponse) WithRoom(room roomModel.Room) {
	r.RoomNumber = room.Number
}

type GetStudentsResponse struct {
	Students  []StudentResponse `json:"students"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

// FromModels fills the page. users and rooms are keyed by id and may be
// missing entries.
func (r *GetStudentsResponse) FromModels(models []model.Student, users map[string]userModel.User, rooms map[string]roomModel.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Students = make([]StudentResponse, len(models))
	for i, mod := range models {
		r.Students[i].FromModel(mod)

		if user, ok := users[mod.UserID]; ok {
			r.Students[i].WithUser(user)
		}

		if room, ok := rooms[r.Students[i].RoomID]; ok {
			r.Students[i].WithRoom(room)
		}
	}
}
