package allocation

import (
	"context"
	"errors"
	"event-registration/common/constant"
	"event-registration/common/errs"
	"event-registration/model"
	"fmt"
	"github.com/cenkalti/backoff/v4"
	"log/slog"
	"time"
)

type RetryConfig struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Ledger owns the seat counters and table inventory. Every admission and
// release goes through it inside a store transaction opened by Run.
type Ledger struct {
	Store Store
	Retry RetryConfig
}

type Admission struct {
	Confirmed bool
	TableID   *string
}

// Run executes fn in one transaction. Conflicts and transient storage errors
// roll back and retry a bounded number of times. Any other error is returned
// as is.
func (l Ledger) Run(ctx context.Context, fn func(tx Store) error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = l.Retry.InitialInterval
	policy.MaxInterval = l.Retry.MaxInterval
	policy.MaxElapsedTime = 0

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++

		err := l.Store.InTx(ctx, fn)
		if err == nil {
			return nil
		}

		if retryable(err) {
			slog.WarnContext(ctx, "ledger transaction retry", slog.Int("attempt", attempt), slog.Any(constant.LogFieldErr, err))
			return err
		}

		return backoff.Permanent(err)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, l.Retry.MaxRetries), ctx))

	if err != nil && retryable(err) && !errors.Is(err, errs.ErrTransient) {
		return fmt.Errorf("%w: %w", errs.ErrTransient, err)
	}

	return err
}

func retryable(err error) bool {
	return errors.Is(err, errs.ErrConflict) || errors.Is(err, errs.ErrTransient)
}

// Admit decides CONFIRMED or WAITLIST for a party. The decision and the
// counter update are one conditional write. Seats of a capacity event are
// never taken while other parties are still waiting for them.
func (l Ledger) Admit(ctx context.Context, tx Store, event model.Event, registrationID string, partySize int32) (Admission, error) {
	if !event.TableBased() {
		waitlist, err := tx.ListWaitlist(ctx, event.ID)
		if err != nil {
			return Admission{}, err
		}
		if waitingAhead(waitlist, registrationID) {
			return Admission{}, nil
		}

		ok, err := tx.ReserveSeats(ctx, event.ID, partySize)
		if err != nil {
			return Admission{}, err
		}
		return Admission{Confirmed: ok}, nil
	}

	tables, err := tx.ListTables(ctx, event.ID)
	if err != nil {
		return Admission{}, err
	}

	waitlist, err := tx.ListWaitlist(ctx, event.ID)
	if err != nil {
		return Admission{}, err
	}

	candidates := MatchingTables(partySize, unclaimedTables(waitlist, tables))
	sortTables(candidates)

	for _, table := range candidates {
		ok, err := tx.ReserveTable(ctx, table.ID, registrationID)
		if err != nil {
			return Admission{}, err
		}
		if ok {
			tableID := table.ID
			return Admission{Confirmed: true, TableID: &tableID}, nil
		}
	}

	return Admission{}, nil
}

func waitingAhead(waitlist []model.Registration, registrationID string) bool {
	for _, registration := range waitlist {
		if registration.ID != registrationID {
			return true
		}
	}
	return false
}

// Release frees whatever registration holds. It is a no-op for registrations
// that hold nothing.
func (l Ledger) Release(ctx context.Context, tx Store, event model.Event, registration *model.Registration) error {
	if !registration.HoldsCapacity {
		return nil
	}

	if event.TableBased() {
		if registration.AssignedTableID != nil {
			if err := tx.ReleaseTable(ctx, *registration.AssignedTableID); err != nil {
				return err
			}
		}
	} else {
		if err := tx.ReleaseSeats(ctx, event.ID, registration.PartySize); err != nil {
			return err
		}
	}

	registration.HoldsCapacity = false
	registration.AssignedTableID = nil

	return nil
}
