package model

import "hostel/shared/model"

const (
	TableName  = "fees"
	EntityName = "fee"

	FieldID          = "id"
	FieldStudentID   = "student_id"
	FieldAmount      = "amount"
	FieldPaid        = "paid"
	FieldVerified    = "verified"
	FieldReceiptText = "receipt_text"
)

// Fee is a receipt a student submits and staff confirm. Amount is stored as
// numeric(10,2).
type Fee struct {
	ID          string  `db:"id"`
	StudentID   string  `db:"student_id"`
	Amount      float64 `db:"amount"`
	Paid        bool    `db:"paid"`
	Verified    bool    `db:"verified"`
	ReceiptText string  `db:"receipt_text"`
	model.Metadata
}

func (f Fee) IsSettled() bool {
	return f.Paid && f.Verified
}
