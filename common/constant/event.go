package constant

import "time"

const (
	QueueStreamName      = "event_registration_queue_stream"
	QueueDuplicateWindow = 2 * time.Minute
)

const (
	AllWildcard          = "events.>"
	PaymentWildcard      = "events.payment.>"
	RegistrationWildcard = "events.registration.>"
	EmailWildcard        = "events.email.>"

	SubjectPaymentCallback    = "events.payment.callback"
	SubjectRegistrationPrefix = "events.registration."
	SubjectSendEmail          = "events.email.send"
)
