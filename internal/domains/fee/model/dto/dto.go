package dto

import (
	"hostel/internal/domains/fee/model"
	"hostel/shared"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	"hostel/shared/timezone"
	"math"

	"github.com/google/uuid"
)

type SubmitFeeRequest struct {
	Amount      float64 `json:"amount"       validate:"required,gt=0,lte=99999999.99"`
	ReceiptText string  `json:"receipt_text" validate:"required,notblank,max=1000"`
}

func (r *SubmitFeeRequest) ToModel(studentID, createdBy string) model.Fee {
	return model.Fee{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		Amount:      math.Round(r.Amount*100) / 100,
		ReceiptText: r.ReceiptText,
		Metadata:    gModel.NewMetadata(createdBy, timezone.Now()),
	}
}

type FeeResponse struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"student_id"`
	Amount      float64 `json:"amount"`
	Paid        bool    `json:"paid"`
	Verified    bool    `json:"verified"`
	ReceiptText string  `json:"receipt_text"`
	gDto.Metadata
}

func (r *FeeResponse) FromModel(model model.Fee) {
	r.ID = model.ID
	r.StudentID = model.StudentID
	r.Amount = model.Amount
	r.Paid = model.Paid
	r.Verified = model.Verified
	r.ReceiptText = model.ReceiptText
	r.Metadata.FromModel(model.Metadata)
}

type GetFeesResponse struct {
	Fees      []FeeResponse `json:"fees"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetFeesResponse) FromModels(models []model.Fee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Fees = make([]FeeResponse, len(models))
	for i, mod := range models {
		r.Fees[i].FromModel(mod)
	}
}
