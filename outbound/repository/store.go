package repository

import (
	"context"
	"encoding/json"
	"errors"
	"event-registration/allocation"
	"event-registration/common"
	"event-registration/common/constant"
	"event-registration/common/contract"
	"event-registration/common/errs"
	"event-registration/common/otel"
	"event-registration/model"
	"event-registration/outbound/sqlgen"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"log/slog"
	"time"
)

// Store is the Postgres backed allocation.Store. A Store returned to an InTx
// callback is bound to that transaction.
type Store struct {
	Db      contract.DbConn
	Querier *sqlgen.Queries

	tx pgx.Tx
}

func NewStore(db contract.DbConn) *Store {
	return &Store{
		Db:      db,
		Querier: sqlgen.New(db),
	}
}

func (s *Store) InTx(ctx context.Context, fn func(tx allocation.Store) error) (err error) {
	if s.tx != nil {
		return fn(s)
	}

	ctx, span := otel.Tracer.Start(ctx, "Store.InTx")
	defer func() {
		common.UtilSpanError(span, err)
		span.End()
	}()

	tx, err := s.Db.Begin(ctx)
	if err != nil {
		return mapErr(err)
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback transaction", slog.Any(constant.LogFieldErr, err))
		}
	}()

	view := &Store{Db: s.Db, Querier: s.Querier.WithTx(tx), tx: tx}
	if err = fn(view); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return mapErr(err)
	}

	return nil
}

// mapErr translates driver errors into the engine's sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", errs.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03", "57014":
			return fmt.Errorf("%w: %w", errs.ErrTransient, err)
		case "23505":
			return fmt.Errorf("%w: %w", errs.ErrConflict, err)
		}
	}

	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", errs.ErrTransient, err)
	}

	return err
}

func (s *Store) GetEvent(ctx context.Context, id string) (model.Event, error) {
	row, err := s.Querier.GetEvent(ctx, id)
	if err != nil {
		return model.Event{}, mapErr(err)
	}
	return toEvent(row), nil
}

func (s *Store) InsertEvent(ctx context.Context, event model.Event) error {
	err := s.Querier.InsertEvent(ctx, sqlgen.InsertEventParams{
		ID:                event.ID,
		TenantID:          event.TenantID,
		Name:              event.Name,
		Capacity:          event.Capacity,
		ConfirmedSeats:    event.ConfirmedSeats,
		MaxSpotsPerPerson: event.MaxSpotsPerPerson,
		Status:            string(event.Status),
		StartsAt:          timestamptz(event.StartsAt),
		PaymentRequired:   event.PaymentRequired,
		PaymentTiming:     string(event.PaymentTiming),
		PricingModel:      string(event.PricingModel),
		PriceAmount:       event.PriceAmount,
		Currency:          event.Currency,
		WaitlistSeq:       event.WaitlistSeq,
		CreatedAt:         timestamptz(event.CreatedAt),
	})
	return mapErr(err)
}

func (s *Store) ListOpenEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := s.Querier.ListOpenEvents(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return toEvents(rows), nil
}

func (s *Store) ReserveSeats(ctx context.Context, eventID string, seats int32) (bool, error) {
	cmd, err := s.Querier.ReserveEventSeats(ctx, sqlgen.ReserveEventSeatsParams{Seats: seats, ID: eventID})
	if err != nil {
		return false, mapErr(err)
	}
	return cmd.RowsAffected() == 1, nil
}

func (s *Store) ReleaseSeats(ctx context.Context, eventID string, seats int32) error {
	err := s.Querier.ReleaseEventSeats(ctx, sqlgen.ReleaseEventSeatsParams{Seats: seats, ID: eventID})
	return mapErr(err)
}

func (s *Store) UpdateCapacity(ctx context.Context, eventID string, capacity int32) (bool, error) {
	cmd, err := s.Querier.UpdateEventCapacity(ctx, sqlgen.UpdateEventCapacityParams{Capacity: capacity, ID: eventID})
	if err != nil {
		return false, mapErr(err)
	}
	return cmd.RowsAffected() == 1, nil
}

func (s *Store) ClampCapacity(ctx context.Context, eventID string, capacity int32) (int32, error) {
	applied, err := s.Querier.ClampEventCapacity(ctx, sqlgen.ClampEventCapacityParams{Capacity: capacity, ID: eventID})
	if err != nil {
		return 0, mapErr(err)
	}
	return applied, nil
}

func (s *Store) NextWaitlistPriority(ctx context.Context, eventID string) (int32, error) {
	priority, err := s.Querier.NextWaitlistPriority(ctx, eventID)
	if err != nil {
		return 0, mapErr(err)
	}
	return priority, nil
}

func (s *Store) CloseStartedEvents(ctx context.Context, now time.Time) ([]model.Event, error) {
	rows, err := s.Querier.CloseStartedEvents(ctx, timestamptz(now))
	if err != nil {
		return nil, mapErr(err)
	}
	return toEvents(rows), nil
}

func (s *Store) ListTables(ctx context.Context, eventID string) ([]model.Table, error) {
	rows, err := s.Querier.ListEventTables(ctx, eventID)
	if err != nil {
		return nil, mapErr(err)
	}

	tables := make([]model.Table, 0, len(rows))
	for _, row := range rows {
		tables = append(tables, toTable(row))
	}
	return tables, nil
}

func (s *Store) GetTable(ctx context.Context, id string) (model.Table, error) {
	row, err := s.Querier.GetEventTable(ctx, id)
	if err != nil {
		return model.Table{}, mapErr(err)
	}
	return toTable(row), nil
}

func (s *Store) InsertTable(ctx context.Context, table model.Table) error {
	err := s.Querier.InsertEventTable(ctx, sqlgen.InsertEventTableParams{
		ID:           table.ID,
		TenantID:     table.TenantID,
		EventID:      table.EventID,
		Name:         table.Name,
		Capacity:     table.Capacity,
		MinOrder:     table.MinOrder,
		Status:       string(table.Status),
		DisplayOrder: table.DisplayOrder,
	})
	return mapErr(err)
}

func (s *Store) ReserveTable(ctx context.Context, tableID, registrationID string) (bool, error) {
	cmd, err := s.Querier.ReserveEventTable(ctx, sqlgen.ReserveEventTableParams{
		RegistrationID: text(&registrationID),
		ID:             tableID,
	})
	if err != nil {
		return false, mapErr(err)
	}
	return cmd.RowsAffected() == 1, nil
}

func (s *Store) ReleaseTable(ctx context.Context, tableID string) error {
	return mapErr(s.Querier.ReleaseEventTable(ctx, tableID))
}

func (s *Store) InsertRegistration(ctx context.Context, registration model.Registration) error {
	data, err := marshalData(registration.Data)
	if err != nil {
		return err
	}

	err = s.Querier.InsertRegistration(ctx, sqlgen.InsertRegistrationParams{
		ID:               registration.ID,
		TenantID:         registration.TenantID,
		EventID:          registration.EventID,
		PartySize:        registration.PartySize,
		Status:           string(registration.Status),
		WaitlistPriority: int4(registration.WaitlistPriority),
		ConfirmationCode: registration.ConfirmationCode,
		PhoneNumber:      registration.PhoneNumber,
		Email:            registration.Email,
		Name:             registration.Name,
		PaymentStatus:    string(registration.PaymentStatus),
		AmountDue:        registration.AmountDue,
		AmountPaid:       registration.AmountPaid,
		AssignedTableID:  text(registration.AssignedTableID),
		HoldsCapacity:    registration.HoldsCapacity,
		Data:             data,
		Version:          registration.Version,
		CreatedAt:        timestamptz(registration.CreatedAt),
		UpdatedAt:        timestamptz(registration.UpdatedAt),
	})
	return mapErr(err)
}

func (s *Store) GetRegistration(ctx context.Context, id string) (model.Registration, error) {
	row, err := s.Querier.GetRegistration(ctx, id)
	if err != nil {
		return model.Registration{}, mapErr(err)
	}
	return toRegistration(row)
}

func (s *Store) GetRegistrationByCode(ctx context.Context, confirmationCode string) (model.Registration, error) {
	row, err := s.Querier.GetRegistrationByConfirmationCode(ctx, confirmationCode)
	if err != nil {
		return model.Registration{}, mapErr(err)
	}
	return toRegistration(row)
}

// UpdateRegistration writes the mutable fields when the stored version still
// matches registration.Version and returns the registration with its new
// version.
func (s *Store) UpdateRegistration(ctx context.Context, registration model.Registration) (model.Registration, error) {
	version, err := s.Querier.UpdateRegistration(ctx, sqlgen.UpdateRegistrationParams{
		Status:           string(registration.Status),
		WaitlistPriority: int4(registration.WaitlistPriority),
		PaymentStatus:    string(registration.PaymentStatus),
		AmountDue:        registration.AmountDue,
		AmountPaid:       registration.AmountPaid,
		AssignedTableID:  text(registration.AssignedTableID),
		HoldsCapacity:    registration.HoldsCapacity,
		UpdatedAt:        timestamptz(registration.UpdatedAt),
		ID:               registration.ID,
		Version:          registration.Version,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Registration{}, fmt.Errorf("registration %s version %d: %w", registration.ID, registration.Version, errs.ErrConflict)
	}
	if err != nil {
		return model.Registration{}, mapErr(err)
	}

	registration.Version = version
	return registration, nil
}

func (s *Store) ListWaitlist(ctx context.Context, eventID string) ([]model.Registration, error) {
	rows, err := s.Querier.ListWaitlist(ctx, eventID)
	if err != nil {
		return nil, mapErr(err)
	}
	return toRegistrations(rows)
}

func (s *Store) ListRegistrationsSince(ctx context.Context, eventID string, since time.Time) ([]model.Registration, error) {
	rows, err := s.Querier.ListRegistrationsSince(ctx, sqlgen.ListRegistrationsSinceParams{
		EventID:   eventID,
		CreatedAt: timestamptz(since),
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toRegistrations(rows)
}

func (s *Store) CountRegistrations(ctx context.Context, eventID string) (map[model.RegistrationStatus]int32, error) {
	rows, err := s.Querier.CountRegistrationsByStatus(ctx, eventID)
	if err != nil {
		return nil, mapErr(err)
	}

	counts := make(map[model.RegistrationStatus]int32, len(rows))
	for _, row := range rows {
		counts[model.RegistrationStatus(row.Status)] = int32(row.Total)
	}
	return counts, nil
}

func (s *Store) InsertPayment(ctx context.Context, payment model.Payment) error {
	err := s.Querier.InsertPayment(ctx, sqlgen.InsertPaymentParams{
		ID:              payment.ID,
		RegistrationID:  payment.RegistrationID,
		ExternalOrderID: payment.ExternalOrderID,
		Amount:          payment.Amount,
		Currency:        payment.Currency,
		Status:          string(payment.Status),
		CompletedAt:     optionalTimestamptz(payment.CompletedAt),
		CreatedAt:       timestamptz(payment.CreatedAt),
	})
	return mapErr(err)
}

func (s *Store) GetPaymentByExternalID(ctx context.Context, externalOrderID string) (model.Payment, error) {
	row, err := s.Querier.GetPaymentByExternalOrderID(ctx, externalOrderID)
	if err != nil {
		return model.Payment{}, mapErr(err)
	}
	return toPayment(row), nil
}

func (s *Store) GetPendingPayment(ctx context.Context, registrationID string) (model.Payment, error) {
	row, err := s.Querier.GetPendingPaymentByRegistration(ctx, registrationID)
	if err != nil {
		return model.Payment{}, mapErr(err)
	}
	return toPayment(row), nil
}

func (s *Store) SettlePayment(ctx context.Context, externalOrderID string, status model.PaymentStatus, at time.Time) (bool, error) {
	cmd, err := s.Querier.SettlePayment(ctx, sqlgen.SettlePaymentParams{
		Status:          string(status),
		CompletedAt:     timestamptz(at),
		ExternalOrderID: externalOrderID,
	})
	if err != nil {
		return false, mapErr(err)
	}
	return cmd.RowsAffected() == 1, nil
}

func (s *Store) ListActiveBans(ctx context.Context, tenantID, phoneNumber string) ([]model.Ban, error) {
	rows, err := s.Querier.ListActiveBansByPhone(ctx, sqlgen.ListActiveBansByPhoneParams{
		TenantID:    tenantID,
		PhoneNumber: phoneNumber,
	})
	if err != nil {
		return nil, mapErr(err)
	}

	bans := make([]model.Ban, 0, len(rows))
	for _, row := range rows {
		bans = append(bans, toBan(row))
	}
	return bans, nil
}

func (s *Store) InsertBan(ctx context.Context, ban model.Ban) error {
	err := s.Querier.InsertBan(ctx, sqlgen.InsertBanParams{
		ID:                 ban.ID,
		TenantID:           ban.TenantID,
		PhoneNumber:        ban.PhoneNumber,
		Reason:             ban.Reason,
		CountLimit:         int4(ban.CountLimit),
		EventsBlockedSoFar: ban.EventsBlockedSoFar,
		ExpiresAt:          optionalTimestamptz(ban.ExpiresAt),
		Active:             ban.Active,
		CreatedAt:          timestamptz(ban.CreatedAt),
	})
	return mapErr(err)
}

func (s *Store) DeactivateBan(ctx context.Context, tenantID, banID string) (bool, error) {
	cmd, err := s.Querier.DeactivateBan(ctx, sqlgen.DeactivateBanParams{ID: banID, TenantID: tenantID})
	if err != nil {
		return false, mapErr(err)
	}
	return cmd.RowsAffected() == 1, nil
}

func (s *Store) AdvanceCountBans(ctx context.Context, tenantID string, closedAt time.Time) (int64, error) {
	cmd, err := s.Querier.AdvanceCountBans(ctx, sqlgen.AdvanceCountBansParams{
		TenantID: tenantID,
		ClosedAt: timestamptz(closedAt),
	})
	if err != nil {
		return 0, mapErr(err)
	}
	return cmd.RowsAffected(), nil
}

func marshalData(data map[string]any) ([]byte, error) {
	if data == nil {
		return []byte("{}"), nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: registration data: %w", errs.ErrInvalidArgument, err)
	}
	return raw, nil
}

var _ allocation.Store = (*Store)(nil)
