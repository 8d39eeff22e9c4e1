package dto

import (
	"hostel/internal/domains/roomrequest/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	"hostel/shared/timezone"

	"github.com/google/uuid"
)

type SubmitRoomRequest struct {
	PreferredRoomID *string `json:"preferred_room_id,omitempty" validate:"omitempty,uuid"`
	Reason          string  `json:"reason"                      validate:"required,notblank,max=500"`
}

func (r *SubmitRoomRequest) ToModel(studentID, createdBy string) model.RoomRequest {
	var preferred *string
	if r.PreferredRoomID != nil && *r.PreferredRoomID != constant.Empty {
		preferred = r.PreferredRoomID
	}

	return model.RoomRequest{
		ID:              uuid.NewString(),
		StudentID:       studentID,
		PreferredRoomID: preferred,
		Reason:          r.Reason,
		Status:          model.StatusPending,
		Metadata:        gModel.NewMetadata(createdBy, timezone.Now()),
	}
}

type RoomRequestResponse struct {
	ID              string `json:"id"`
	StudentID       string `json:"student_id"`
	PreferredRoomID string `json:"preferred_room_id,omitempty"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	AllocatedRoomID string `json:"allocated_room_id,omitempty"`
	ProcessedBy     string `json:"processed_by,omitempty"`
	ProcessedAt     string `json:"processed_at,omitempty"`
	gDto.Metadata
}

func (r *RoomRequestResponse) FromModel(model model.RoomRequest) {
	r.ID = model.ID
	r.StudentID = model.StudentID
	r.PreferredRoomID = deref(model.PreferredRoomID)
	r.Reason = model.Reason
	r.Status = model.Status
	r.AllocatedRoomID = deref(model.AllocatedRoomID)
	r.ProcessedBy = deref(model.ProcessedBy)

	if model.ProcessedAt != nil {
		r.ProcessedAt = timezone.Format(*model.ProcessedAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetRoomRequestsResponse struct {
	RoomRequests []RoomRequestResponse `json:"room_requests"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetRoomRequestsResponse) FromModels(models []model.RoomRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomRequests = make([]RoomRequestResponse, len(models))
	for i, mod := range models {
		r.RoomRequests[i].FromModel(mod)
	}
}

func deref(s *string) string {
	if s == nil {
		return constant.Empty
	}

	return *s
}
