package mocks

import (
	"context"
	"hostel/infras/otel"
	"sync"
)

// Recorder is an otel.Otel that keeps what the code under test traced.
type Recorder struct {
	mu         sync.Mutex
	Spans      []string
	Errors     []error
	Attributes map[string]any
}

func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	r.Spans = append(r.Spans, spanName)
	r.mu.Unlock()

	return ctx, &scopeImpl{recorder: r}
}

func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

func (r *Recorder) recordError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Errors = append(r.Errors, err)
}

func (r *Recorder) recordAttribute(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Attributes == nil {
		r.Attributes = map[string]any{}
	}

	r.Attributes[key] = value
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewOtel returns a tracer that drops everything.
func NewOtel() otel.Otel {
	return NewRecorder()
}
