package notify

import (
	"context"
	"event-registration/common"
	"event-registration/common/constant"
	"event-registration/common/contract"
	"event-registration/model"
)

// RegistrationPublisher publishes committed registration changes to the
// queue stream, one subject per notification kind.
type RegistrationPublisher struct {
	Publisher contract.Publisher
}

func (p RegistrationPublisher) Notify(ctx context.Context, kind model.NotificationKind, event model.Event, registration model.Registration) error {
	msg := model.NewRegistrationEventMessage(kind, event, registration)
	return common.PublishMessage(ctx, p.Publisher, Subject(kind), msg.MessageID(), msg)
}

func Subject(kind model.NotificationKind) string {
	return constant.SubjectRegistrationPrefix + string(kind)
}
