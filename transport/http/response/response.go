// Package response writes the JSON envelopes every endpoint answers with:
// {"data": ...} on success, {"error": "..."} on failure and {"message": "..."}
// for bare notices.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/logger"
	"net/http"
	"strconv"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	send(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	send(writer, code, Data[any]{Data: &payload})
}

// WithError answers with the status of err. Only the message of a client
// failure is shown; server errors are reported generically.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	message := http.StatusText(http.StatusInternalServerError)

	var fail *failure.Failure
	if code < http.StatusInternalServerError && errors.As(err, &fail) {
		message = fail.Message
	}

	send(writer, code, Error{Error: &message})
}

// WithAttachment sends data as a file download named fileName.
func WithAttachment(writer http.ResponseWriter, contentType, fileName string, data []byte) {
	header := writer.Header()
	header.Set(constant.RequestHeaderContentType, contentType)
	header.Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	header.Set("Content-Length", strconv.Itoa(len(data)))

	write(writer, http.StatusOK, data)
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func send(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	write(writer, code, body)
}

func write(writer http.ResponseWriter, code int, body []byte) {
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
