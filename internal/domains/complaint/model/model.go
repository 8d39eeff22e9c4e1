package model

import (
	"hostel/shared/model"
	"time"
)

const (
	TableName  = "complaints"
	EntityName = "complaint"

	FieldID          = "id"
	FieldStudentID   = "student_id"
	FieldTitle       = "title"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldResolved    = "resolved"
	FieldResponse    = "response"
)

const (
	CommentTableName  = "complaint_comments"
	CommentEntityName = "complaint comment"

	FieldCommentID          = "id"
	FieldCommentComplaintID = "complaint_id"
	FieldCommentCreatedAt   = "created_at"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

const (
	CategoryCleaning    = "cleaning"
	CategoryElectricity = "electricity"
	CategoryWater       = "water"
	CategoryOther       = "other"
)

type Complaint struct {
	ID          string  `db:"id"`
	StudentID   string  `db:"student_id"`
	Title       string  `db:"title"`
	Category    string  `db:"category"`
	Description string  `db:"description"`
	Status      string  `db:"status"`
	Resolved    bool    `db:"resolved"`
	Response    *string `db:"response"`
	model.Metadata
}

func (c Complaint) IsResolved() bool {
	return c.Resolved || c.Status == StatusResolved
}

// Comment is append-only, so it carries no modification metadata.
type Comment struct {
	ID          string    `db:"id"`
	ComplaintID string    `db:"complaint_id"`
	AuthorID    string    `db:"author_id"`
	Comment     string    `db:"comment"`
	CreatedAt   time.Time `db:"created_at"`
}
