package validator_test

import (
	"hostel/shared/failure"
	"hostel/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feeRequest struct {
	Amount      float64 `json:"amount"       validate:"required,gt=0"`
	ReceiptText string  `json:"receipt_text" validate:"required,notblank,max=255"`
}

type studentRequest struct {
	RollNo   string `json:"roll_no"  validate:"required,rollno"`
	Semester int    `json:"semester" validate:"gte=1,lte=12"`
	Category string `json:"category" validate:"omitempty,oneof=cleaning electricity water other"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    any
		wantErr string
	}{
		{
			name: "valid fee",
			data: &feeRequest{Amount: 1500, ReceiptText: "UTR 99812"},
		},
		{
			name:    "zero amount",
			data:    &feeRequest{ReceiptText: "UTR 99812"},
			wantErr: "amount is required",
		},
		{
			name:    "negative amount",
			data:    &feeRequest{Amount: -1, ReceiptText: "UTR 99812"},
			wantErr: "amount must be greater than 0",
		},
		{
			name:    "blank receipt",
			data:    &feeRequest{Amount: 10, ReceiptText: "   "},
			wantErr: "receipt_text must not be blank",
		},
		{
			name:    "receipt too long",
			data:    &feeRequest{Amount: 10, ReceiptText: strings.Repeat("x", 256)},
			wantErr: "receipt_text must be at most 255 characters",
		},
		{
			name: "valid student",
			data: &studentRequest{RollNo: "4CS21-017", Semester: 3, Category: "water"},
		},
		{
			name:    "roll number with spaces",
			data:    &studentRequest{RollNo: "4CS 017", Semester: 3},
			wantErr: "roll_no must be a valid roll number",
		},
		{
			name:    "semester out of range",
			data:    &studentRequest{RollNo: "4CS21017", Semester: 13},
			wantErr: "semester must be less than or equal to 12",
		},
		{
			name:    "unknown category",
			data:    &studentRequest{RollNo: "4CS21017", Semester: 1, Category: "noise"},
			wantErr: "category must be one of cleaning electricity water other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error

			switch data := tt.data.(type) {
			case *feeRequest:
				err = validator.ValidateStruct(data)
			case *studentRequest:
				err = validator.ValidateStruct(data)
			}

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate_DecodesBody(t *testing.T) {
	var req feeRequest

	err := validator.Validate(strings.NewReader(`{"amount": 250.5, "receipt_text": "cash"}`), &req)

	require.NoError(t, err)
	assert.InDelta(t, 250.5, req.Amount, 0.001)
	assert.Equal(t, "cash", req.ReceiptText)
}

func TestValidate_MalformedBody(t *testing.T) {
	var req feeRequest

	err := validator.Validate(strings.NewReader(`{"amount":`), &req)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "failed to decode request body")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("6f1c7b9a-1d2e-4c53-9b1d-0b7f3c1f8a11", "uuid"))
	assert.Error(t, validator.ValidateVar("room-12", "uuid"))
	assert.NoError(t, validator.ValidateVar("", "empty"))
}
