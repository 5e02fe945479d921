package allocation

import (
	"context"
	"event-registration/model"
	"time"
)

// Store is the persistence port of the engine. Conditional mutations report
// whether they applied so that the decision and the write stay one atomic step.
//
// Lookups return an error wrapping errs.ErrNotFound when nothing matches.
// UpdateRegistration fails with errs.ErrConflict when the stored version moved.
type Store interface {
	// InTx runs fn against a transactional view. Calling InTx on that view
	// reuses the open transaction.
	InTx(ctx context.Context, fn func(tx Store) error) error

	GetEvent(ctx context.Context, id string) (model.Event, error)
	InsertEvent(ctx context.Context, event model.Event) error
	ListOpenEvents(ctx context.Context) ([]model.Event, error)
	ReserveSeats(ctx context.Context, eventID string, seats int32) (bool, error)
	ReleaseSeats(ctx context.Context, eventID string, seats int32) error
	UpdateCapacity(ctx context.Context, eventID string, capacity int32) (bool, error)
	ClampCapacity(ctx context.Context, eventID string, capacity int32) (int32, error)
	NextWaitlistPriority(ctx context.Context, eventID string) (int32, error)
	CloseStartedEvents(ctx context.Context, now time.Time) ([]model.Event, error)

	ListTables(ctx context.Context, eventID string) ([]model.Table, error)
	GetTable(ctx context.Context, id string) (model.Table, error)
	InsertTable(ctx context.Context, table model.Table) error
	ReserveTable(ctx context.Context, tableID, registrationID string) (bool, error)
	ReleaseTable(ctx context.Context, tableID string) error

	InsertRegistration(ctx context.Context, registration model.Registration) error
	GetRegistration(ctx context.Context, id string) (model.Registration, error)
	GetRegistrationByCode(ctx context.Context, confirmationCode string) (model.Registration, error)
	UpdateRegistration(ctx context.Context, registration model.Registration) (model.Registration, error)
	ListWaitlist(ctx context.Context, eventID string) ([]model.Registration, error)
	ListRegistrationsSince(ctx context.Context, eventID string, since time.Time) ([]model.Registration, error)
	CountRegistrations(ctx context.Context, eventID string) (map[model.RegistrationStatus]int32, error)

	InsertPayment(ctx context.Context, payment model.Payment) error
	GetPaymentByExternalID(ctx context.Context, externalOrderID string) (model.Payment, error)
	GetPendingPayment(ctx context.Context, registrationID string) (model.Payment, error)
	SettlePayment(ctx context.Context, externalOrderID string, status model.PaymentStatus, at time.Time) (bool, error)

	ListActiveBans(ctx context.Context, tenantID, phoneNumber string) ([]model.Ban, error)
	InsertBan(ctx context.Context, ban model.Ban) error
	DeactivateBan(ctx context.Context, tenantID, banID string) (bool, error)
	AdvanceCountBans(ctx context.Context, tenantID string, closedAt time.Time) (int64, error)
}
