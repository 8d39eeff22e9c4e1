// Package failure carries the HTTP status an error should be answered with.
// Anything that is not a *Failure is answered with 500 and a generic body.
package failure

import (
	"errors"
	"net/http"
)

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidPageParam        = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
	InvalidLimitParam       = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
)

// Allocation workflow errors. Compare with errors.Is.
var (
	ErrRoomFull        = &Failure{Code: http.StatusConflict, Message: "room is full"}
	ErrNoAvailableRoom = &Failure{Code: http.StatusConflict, Message: "no available room to allocate"}
)

func (e *Failure) Error() string {
	return e.Message
}

// Is matches any failure with the same code and message, so a failure
// rebuilt from a message still compares equal to its sentinel.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return e.Code == other.Code && e.Message == other.Message
}

func newFailure(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

// BadRequest turns a validation error into a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// Duplicate is the conflict raised when a unique key is already taken.
func Duplicate(entityName, key string) error {
	return newFailure(http.StatusConflict, entityName+" with this "+key+" already exists")
}

// GetCode returns the status for err, looking through wrapping.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
