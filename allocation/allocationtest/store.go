// Package allocationtest provides an in-memory allocation.Store.
package allocationtest

import (
	"context"
	"event-registration/allocation"
	"event-registration/common/errs"
	"event-registration/model"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"
)

type state struct {
	events        map[string]model.Event
	tables        map[string]model.Table
	registrations map[string]model.Registration
	payments      map[string]model.Payment
	bans          map[string]model.Ban
}

func newState() *state {
	return &state{
		events:        map[string]model.Event{},
		tables:        map[string]model.Table{},
		registrations: map[string]model.Registration{},
		payments:      map[string]model.Payment{},
		bans:          map[string]model.Ban{},
	}
}

func (s *state) clone() *state {
	return &state{
		events:        maps.Clone(s.events),
		tables:        maps.Clone(s.tables),
		registrations: maps.Clone(s.registrations),
		payments:      maps.Clone(s.payments),
		bans:          maps.Clone(s.bans),
	}
}

type root struct {
	mu      sync.Mutex
	state   *state
	txCount int
	failN   int
	failErr error
}

// Store keeps everything in maps. Transactions are serialized and work on a
// copy of the data that replaces the committed data when fn succeeds.
type Store struct {
	root *root
	tx   *state
}

func NewStore() *Store {
	return &Store{root: &root{state: newState()}}
}

// FailNextTx makes the next n transactions fail with err before running.
func (s *Store) FailNextTx(n int, err error) {
	s.root.mu.Lock()
	defer s.root.mu.Unlock()

	s.root.failN = n
	s.root.failErr = err
}

// TxCount returns how many top level transactions were started.
func (s *Store) TxCount() int {
	s.root.mu.Lock()
	defer s.root.mu.Unlock()

	return s.root.txCount
}

func (s *Store) InTx(ctx context.Context, fn func(tx allocation.Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	s.root.mu.Lock()
	defer s.root.mu.Unlock()

	s.root.txCount++
	if s.root.failN > 0 {
		s.root.failN--
		return s.root.failErr
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	view := &Store{root: s.root, tx: s.root.state.clone()}
	if err := fn(view); err != nil {
		return err
	}

	s.root.state = view.tx
	return nil
}

func (s *Store) with(fn func(st *state) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}

	s.root.mu.Lock()
	defer s.root.mu.Unlock()

	return fn(s.root.state)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, errs.ErrNotFound)
}

func (s *Store) GetEvent(_ context.Context, id string) (model.Event, error) {
	var event model.Event
	err := s.with(func(st *state) error {
		e, ok := st.events[id]
		if !ok {
			return notFound("event", id)
		}
		event = e
		return nil
	})
	return event, err
}

func (s *Store) InsertEvent(_ context.Context, event model.Event) error {
	return s.with(func(st *state) error {
		if _, ok := st.events[event.ID]; ok {
			return errs.ErrConflict
		}
		st.events[event.ID] = event
		return nil
	})
}

func (s *Store) ListOpenEvents(_ context.Context) ([]model.Event, error) {
	var events []model.Event
	err := s.with(func(st *state) error {
		for _, event := range st.events {
			if event.Status == model.EventStatusOpen {
				events = append(events, event)
			}
		}
		return nil
	})

	sort.Slice(events, func(i, j int) bool {
		if !events[i].StartsAt.Equal(events[j].StartsAt) {
			return events[i].StartsAt.Before(events[j].StartsAt)
		}
		return events[i].ID < events[j].ID
	})

	return events, err
}

func (s *Store) ReserveSeats(_ context.Context, eventID string, seats int32) (bool, error) {
	var applied bool
	err := s.with(func(st *state) error {
		event, ok := st.events[eventID]
		if !ok || event.Capacity <= 0 || event.ConfirmedSeats+seats > event.Capacity {
			return nil
		}
		event.ConfirmedSeats += seats
		st.events[eventID] = event
		applied = true
		return nil
	})
	return applied, err
}

func (s *Store) ReleaseSeats(_ context.Context, eventID string, seats int32) error {
	return s.with(func(st *state) error {
		event, ok := st.events[eventID]
		if !ok {
			return notFound("event", eventID)
		}
		event.ConfirmedSeats = max(event.ConfirmedSeats-seats, 0)
		st.events[eventID] = event
		return nil
	})
}

func (s *Store) UpdateCapacity(_ context.Context, eventID string, capacity int32) (bool, error) {
	var applied bool
	err := s.with(func(st *state) error {
		event, ok := st.events[eventID]
		if !ok || event.Capacity <= 0 || event.ConfirmedSeats > capacity {
			return nil
		}
		event.Capacity = capacity
		st.events[eventID] = event
		applied = true
		return nil
	})
	return applied, err
}

func (s *Store) ClampCapacity(_ context.Context, eventID string, capacity int32) (int32, error) {
	var applied int32
	err := s.with(func(st *state) error {
		event, ok := st.events[eventID]
		if !ok {
			return notFound("event", eventID)
		}
		event.Capacity = max(capacity, event.ConfirmedSeats)
		st.events[eventID] = event
		applied = event.Capacity
		return nil
	})
	return applied, err
}

func (s *Store) NextWaitlistPriority(_ context.Context, eventID string) (int32, error) {
	var priority int32
	err := s.with(func(st *state) error {
		event, ok := st.events[eventID]
		if !ok {
			return notFound("event", eventID)
		}
		event.WaitlistSeq++
		st.events[eventID] = event
		priority = event.WaitlistSeq
		return nil
	})
	return priority, err
}

func (s *Store) CloseStartedEvents(_ context.Context, now time.Time) ([]model.Event, error) {
	var closed []model.Event
	err := s.with(func(st *state) error {
		for id, event := range st.events {
			if event.Status != model.EventStatusOpen || event.StartsAt.After(now) {
				continue
			}
			event.Status = model.EventStatusClosed
			st.events[id] = event
			closed = append(closed, event)
		}
		return nil
	})

	sort.Slice(closed, func(i, j int) bool { return closed[i].ID < closed[j].ID })

	return closed, err
}

func (s *Store) ListTables(_ context.Context, eventID string) ([]model.Table, error) {
	var tables []model.Table
	err := s.with(func(st *state) error {
		for _, table := range st.tables {
			if table.EventID == eventID {
				tables = append(tables, table)
			}
		}
		return nil
	})

	sort.Slice(tables, func(i, j int) bool {
		if tables[i].DisplayOrder != tables[j].DisplayOrder {
			return tables[i].DisplayOrder < tables[j].DisplayOrder
		}
		return tables[i].ID < tables[j].ID
	})

	return tables, err
}

func (s *Store) GetTable(_ context.Context, id string) (model.Table, error) {
	var table model.Table
	err := s.with(func(st *state) error {
		t, ok := st.tables[id]
		if !ok {
			return notFound("table", id)
		}
		table = t
		return nil
	})
	return table, err
}

func (s *Store) InsertTable(_ context.Context, table model.Table) error {
	return s.with(func(st *state) error {
		if _, ok := st.tables[table.ID]; ok {
			return errs.ErrConflict
		}
		st.tables[table.ID] = table
		return nil
	})
}

func (s *Store) ReserveTable(_ context.Context, tableID, registrationID string) (bool, error) {
	var applied bool
	err := s.with(func(st *state) error {
		table, ok := st.tables[tableID]
		if !ok || table.Status != model.TableStatusAvailable {
			return nil
		}
		table.Status = model.TableStatusReserved
		table.ReservedRegistrationID = &registrationID
		st.tables[tableID] = table
		applied = true
		return nil
	})
	return applied, err
}

func (s *Store) ReleaseTable(_ context.Context, tableID string) error {
	return s.with(func(st *state) error {
		table, ok := st.tables[tableID]
		if !ok {
			return notFound("table", tableID)
		}
		if table.Status == model.TableStatusReserved {
			table.Status = model.TableStatusAvailable
		}
		table.ReservedRegistrationID = nil
		st.tables[tableID] = table
		return nil
	})
}

func (s *Store) InsertRegistration(_ context.Context, registration model.Registration) error {
	return s.with(func(st *state) error {
		for _, existing := range st.registrations {
			if existing.ID == registration.ID || existing.ConfirmationCode == registration.ConfirmationCode {
				return errs.ErrConflict
			}
		}
		st.registrations[registration.ID] = registration
		return nil
	})
}

func (s *Store) GetRegistration(_ context.Context, id string) (model.Registration, error) {
	var registration model.Registration
	err := s.with(func(st *state) error {
		r, ok := st.registrations[id]
		if !ok {
			return notFound("registration", id)
		}
		registration = r
		return nil
	})
	return registration, err
}

func (s *Store) GetRegistrationByCode(_ context.Context, confirmationCode string) (model.Registration, error) {
	var registration model.Registration
	err := s.with(func(st *state) error {
		for _, r := range st.registrations {
			if r.ConfirmationCode == confirmationCode {
				registration = r
				return nil
			}
		}
		return notFound("registration", confirmationCode)
	})
	return registration, err
}

func (s *Store) UpdateRegistration(_ context.Context, registration model.Registration) (model.Registration, error) {
	err := s.with(func(st *state) error {
		stored, ok := st.registrations[registration.ID]
		if !ok {
			return notFound("registration", registration.ID)
		}
		if stored.Version != registration.Version {
			return fmt.Errorf("registration %s version %d: %w", registration.ID, registration.Version, errs.ErrConflict)
		}
		registration.Version++
		st.registrations[registration.ID] = registration
		return nil
	})
	if err != nil {
		return model.Registration{}, err
	}
	return registration, nil
}

func (s *Store) ListWaitlist(_ context.Context, eventID string) ([]model.Registration, error) {
	var waitlist []model.Registration
	err := s.with(func(st *state) error {
		for _, r := range st.registrations {
			if r.EventID == eventID && r.Status == model.RegistrationStatusWaitlist {
				waitlist = append(waitlist, r)
			}
		}
		return nil
	})

	sort.Slice(waitlist, func(i, j int) bool { return waitlist[i].Priority() < waitlist[j].Priority() })

	return waitlist, err
}

func (s *Store) ListRegistrationsSince(_ context.Context, eventID string, since time.Time) ([]model.Registration, error) {
	var registrations []model.Registration
	err := s.with(func(st *state) error {
		for _, r := range st.registrations {
			if r.EventID == eventID && r.CreatedAt.After(since) {
				registrations = append(registrations, r)
			}
		}
		return nil
	})

	sort.Slice(registrations, func(i, j int) bool {
		if !registrations[i].CreatedAt.Equal(registrations[j].CreatedAt) {
			return registrations[i].CreatedAt.Before(registrations[j].CreatedAt)
		}
		return registrations[i].ID < registrations[j].ID
	})

	return registrations, err
}

func (s *Store) CountRegistrations(_ context.Context, eventID string) (map[model.RegistrationStatus]int32, error) {
	counts := map[model.RegistrationStatus]int32{}
	err := s.with(func(st *state) error {
		for _, r := range st.registrations {
			if r.EventID == eventID {
				counts[r.Status]++
			}
		}
		return nil
	})
	return counts, err
}

func (s *Store) InsertPayment(_ context.Context, payment model.Payment) error {
	return s.with(func(st *state) error {
		for _, existing := range st.payments {
			if existing.ID == payment.ID || existing.ExternalOrderID == payment.ExternalOrderID {
				return errs.ErrConflict
			}
		}
		st.payments[payment.ID] = payment
		return nil
	})
}

func (s *Store) GetPaymentByExternalID(_ context.Context, externalOrderID string) (model.Payment, error) {
	var payment model.Payment
	err := s.with(func(st *state) error {
		for _, p := range st.payments {
			if p.ExternalOrderID == externalOrderID {
				payment = p
				return nil
			}
		}
		return notFound("payment", externalOrderID)
	})
	return payment, err
}

func (s *Store) GetPendingPayment(_ context.Context, registrationID string) (model.Payment, error) {
	var payment model.Payment
	err := s.with(func(st *state) error {
		for _, p := range st.payments {
			if p.RegistrationID == registrationID && p.Status == model.PaymentStatusPending {
				payment = p
				return nil
			}
		}
		return notFound("pending payment", registrationID)
	})
	return payment, err
}

func (s *Store) SettlePayment(_ context.Context, externalOrderID string, status model.PaymentStatus, at time.Time) (bool, error) {
	var applied bool
	err := s.with(func(st *state) error {
		for id, p := range st.payments {
			if p.ExternalOrderID != externalOrderID || p.Status != model.PaymentStatusPending {
				continue
			}
			p.Status = status
			p.CompletedAt = &at
			st.payments[id] = p
			applied = true
		}
		return nil
	})
	return applied, err
}

// Payments returns every payment of a registration, oldest first.
func (s *Store) Payments(registrationID string) []model.Payment {
	var payments []model.Payment
	_ = s.with(func(st *state) error {
		for _, p := range st.payments {
			if p.RegistrationID == registrationID {
				payments = append(payments, p)
			}
		}
		return nil
	})

	sort.Slice(payments, func(i, j int) bool { return payments[i].CreatedAt.Before(payments[j].CreatedAt) })

	return payments
}

func (s *Store) ListActiveBans(_ context.Context, tenantID, phoneNumber string) ([]model.Ban, error) {
	var bans []model.Ban
	err := s.with(func(st *state) error {
		for _, ban := range st.bans {
			if ban.Active && ban.TenantID == tenantID && ban.PhoneNumber == phoneNumber {
				bans = append(bans, ban)
			}
		}
		return nil
	})

	sort.Slice(bans, func(i, j int) bool { return bans[i].CreatedAt.Before(bans[j].CreatedAt) })

	return bans, err
}

func (s *Store) InsertBan(_ context.Context, ban model.Ban) error {
	return s.with(func(st *state) error {
		st.bans[ban.ID] = ban
		return nil
	})
}

func (s *Store) DeactivateBan(_ context.Context, tenantID, banID string) (bool, error) {
	var applied bool
	err := s.with(func(st *state) error {
		ban, ok := st.bans[banID]
		if !ok || ban.TenantID != tenantID || !ban.Active {
			return nil
		}
		ban.Active = false
		st.bans[banID] = ban
		applied = true
		return nil
	})
	return applied, err
}

func (s *Store) AdvanceCountBans(_ context.Context, tenantID string, closedAt time.Time) (int64, error) {
	var advanced int64
	err := s.with(func(st *state) error {
		for id, ban := range st.bans {
			if !ban.Active || ban.TenantID != tenantID || ban.CountLimit == nil {
				continue
			}
			if ban.EventsBlockedSoFar >= *ban.CountLimit || ban.CreatedAt.After(closedAt) {
				continue
			}
			ban.EventsBlockedSoFar++
			st.bans[id] = ban
			advanced++
		}
		return nil
	})
	return advanced, err
}
