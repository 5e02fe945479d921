package model

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRegistrationEventMessage_MessageID(t *testing.T) {
	registration := Registration{ID: "reg-1", Status: RegistrationStatusConfirmed, Version: 3}

	created := NewRegistrationEventMessage(NotificationCreated, Event{ID: "event-1"}, registration)
	assert.Equal(t, int32(3), created.Version)
	assert.Equal(t, "registration:reg-1:created:3", created.MessageID())

	registration.Version = 4
	cancelled := NewRegistrationEventMessage(NotificationCancelled, Event{ID: "event-1"}, registration)
	assert.Equal(t, "registration:reg-1:cancelled:4", cancelled.MessageID())
	assert.NotEqual(t, created.MessageID(), cancelled.MessageID())
}

func TestPaymentCallbackEventMessage_MessageID(t *testing.T) {
	success := PaymentCallbackEventMessage{ExternalOrderID: "ext-1", Outcome: "success", Amount: 1000}
	replay := PaymentCallbackEventMessage{ExternalOrderID: "ext-1", Outcome: "success", Amount: 900}
	failure := PaymentCallbackEventMessage{ExternalOrderID: "ext-1", Outcome: "failure"}

	assert.Equal(t, "payment:ext-1:success", success.MessageID())
	assert.Equal(t, success.MessageID(), replay.MessageID())
	assert.NotEqual(t, success.MessageID(), failure.MessageID())
}
