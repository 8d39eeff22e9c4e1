package response_test

import (
	"errors"
	"fmt"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/transport/http/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "failure keeps its message",
			err:          failure.NotFound("room not found"),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"room not found"}`,
		},
		{
			name:         "wrapped failure is unwrapped",
			err:          fmt.Errorf("failed to allocate room: %w", failure.ErrRoomFull),
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"room is full"}`,
		},
		{
			name:         "driver error is hidden",
			err:          errors.New("pq: connection refused"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.expectedCode, recorder.Code)
			assert.JSONEq(t, tt.expectedBody, recorder.Body.String())
			assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]int{"capacity": 2})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"capacity":2}}`, recorder.Body.String())
}

func TestWithAttachment(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithAttachment(recorder, constant.ContentTypeCSV, "rooms.csv", []byte("number,capacity,occupied\n"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, constant.ContentTypeCSV, recorder.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="rooms.csv"`, recorder.Header().Get(constant.RequestHeaderContentDisposition))
	assert.Equal(t, "number,capacity,occupied\n", recorder.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithRequestLimitExceeded(recorder)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, recorder.Body.String())
}
