// Package actor identifies who is calling a workflow. Handlers build it from
// the authenticated request and services check its class once on entry.
package actor

import (
	"context"
	"hostel/shared/constant"
	"hostel/shared/failure"
)

type Actor struct {
	UserID string
	Role   string
}

func New(userID, role string) Actor {
	return Actor{UserID: userID, Role: role}
}

// FromContext reads the identity stored by the auth middleware.
func FromContext(ctx context.Context) Actor {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Actor{UserID: userID, Role: role}
}

func (a Actor) IsStaff() bool {
	return a.UserID != constant.Empty && a.Role == constant.RoleStaff
}

func (a Actor) IsStudent() bool {
	return a.UserID != constant.Empty && a.Role == constant.RoleStudent
}

func (a Actor) RequireStaff() error {
	if !a.IsStaff() {
		return failure.ForbiddenError
	}

	return nil
}

func (a Actor) RequireStudent() error {
	if !a.IsStudent() {
		return failure.ForbiddenError
	}

	return nil
}

// RequireAny accepts either class as long as the caller is authenticated.
func (a Actor) RequireAny() error {
	if !a.IsStaff() && !a.IsStudent() {
		return failure.ForbiddenError
	}

	return nil
}

// System is the identity used by operator tooling outside HTTP requests.
func System() Actor {
	return Actor{UserID: constant.ActorSystem, Role: constant.RoleStaff}
}
