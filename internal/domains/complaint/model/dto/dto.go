package dto

import (
	"hostel/internal/domains/complaint/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	"hostel/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateComplaintRequest struct {
	Title       string `json:"title"       validate:"required,notblank,max=200"`
	Category    string `json:"category"    validate:"omitempty,oneof=cleaning electricity water other"`
	Description string `json:"description" validate:"required,notblank,max=2000"`
}

func (r *CreateComplaintRequest) ToModel(studentID, createdBy string) model.Complaint {
	category := r.Category
	if category == constant.Empty {
		category = model.CategoryOther
	}

	return model.Complaint{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		Title:       r.Title,
		Category:    category,
		Description: r.Description,
		Status:      model.StatusPending,
		Metadata:    gModel.NewMetadata(createdBy, timezone.Now()),
	}
}

type AddCommentRequest struct {
	Comment string `json:"comment" validate:"required,notblank,max=1000"`
}

func (r *AddCommentRequest) ToModel(complaintID, authorID string, now time.Time) model.Comment {
	return model.Comment{
		ID:          uuid.NewString(),
		ComplaintID: complaintID,
		AuthorID:    authorID,
		Comment:     r.Comment,
		CreatedAt:   now,
	}
}

type ResolveComplaintRequest struct {
	Response string `json:"response,omitempty" validate:"omitempty,max=2000"`
}

type ComplaintResponse struct {
	ID          string `json:"id"`
	StudentID   string `json:"student_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Resolved    bool   `json:"resolved"`
	Response    string `json:"response,omitempty"`
	gDto.Metadata
}

func (r *ComplaintResponse) FromModel(model model.Complaint) {
	r.ID = model.ID
	r.StudentID = model.StudentID
	r.Title = model.Title
	r.Category = model.Category
	r.Description = model.Description
	r.Status = model.Status
	r.Resolved = model.Resolved

	if model.Response != nil {
		r.Response = *model.Response
	}

	r.Metadata.FromModel(model.Metadata)
}

type CommentResponse struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

func (r *CommentResponse) FromModel(model model.Comment) {
	r.ID = model.ID
	r.AuthorID = model.AuthorID
	r.Comment = model.Comment
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type ComplaintDetailResponse struct {
	ComplaintResponse
	Comments []CommentResponse `json:"comments"`
}

func (r *ComplaintDetailResponse) FromModel(complaint model.Complaint, comments []model.Comment) {
	r.ComplaintResponse.FromModel(complaint)

	r.Comments = make([]CommentResponse, len(comments))
	for i, comment := range comments {
		r.Comments[i].FromModel(comment)
	}
}

type GetComplaintsResponse struct {
	Complaints []ComplaintResponse `json:"complaints"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetComplaintsResponse) FromModels(models []model.Complaint, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Complaints = make([]ComplaintResponse, len(models))
	for i, mod := range models {
		r.Complaints[i].FromModel(mod)
	}
}
