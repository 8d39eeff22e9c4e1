package otel

import (
	"fmt"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const errorCodeAttribute = "error.code"

// Scope is one span as seen by handlers, services and repositories.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetActor(userID, role string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type spanScope struct {
	span oteltrace.Span
}

func NewScope(span oteltrace.Span) Scope {
	return spanScope{span: span}
}

func (s spanScope) End() { s.span.End() }

func (s spanScope) AddEvent(name string) { s.span.AddEvent(name) }

// TraceError records err with its failure code. Only server side failures
// mark the span as errored; a rejected request is still a successful trace.
func (s spanScope) TraceError(err error) {
	code := failure.GetCode(err)

	s.span.RecordError(err, oteltrace.WithAttributes(attribute.Int(errorCodeAttribute, code)))
	s.span.SetAttributes(attribute.Int(errorCodeAttribute, code))

	if code >= http.StatusInternalServerError {
		s.span.SetStatus(codes.Error, err.Error())
	}
}

func (s spanScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s spanScope) SetActor(userID, role string) {
	s.span.SetAttributes(
		attribute.String(constant.OtelActorUserAttribute, userID),
		attribute.String(constant.OtelActorRoleAttribute, role),
	)
}

func (s spanScope) SetAttribute(key string, value any) {
	s.span.SetAttributes(keyValue(key, value))
}

func (s spanScope) SetAttributes(attributes map[string]any) {
	kvs := make([]attribute.KeyValue, 0, len(attributes))
	for key, value := range attributes {
		kvs = append(kvs, keyValue(key, value))
	}

	s.span.SetAttributes(kvs...)
}

// keyValue converts value to the matching attribute type; anything else is
// recorded as its %v text.
func keyValue(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case bool:
		return attribute.Bool(key, v)
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprint(v))
	}
}
