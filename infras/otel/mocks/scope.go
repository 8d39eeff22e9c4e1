package mocks

import "hostel/shared/constant"

type scopeImpl struct {
	recorder *Recorder
}

func (s *scopeImpl) AddEvent(_ string) {}

func (s *scopeImpl) End() {}

func (s *scopeImpl) SetActor(userID, role string) {
	s.SetAttribute(constant.OtelActorUserAttribute, userID)
	s.SetAttribute(constant.OtelActorRoleAttribute, role)
}

func (s *scopeImpl) SetAttribute(key string, value any) {
	if s.recorder != nil {
		s.recorder.recordAttribute(key, value)
	}
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func (s *scopeImpl) TraceError(err error) {
	if s.recorder != nil {
		s.recorder.recordError(err)
	}
}

func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

