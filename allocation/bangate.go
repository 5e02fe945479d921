package allocation

import (
	"context"
	"event-registration/model"
	"time"
)

// BanGate answers whether a phone number may register with a tenant.
type BanGate struct {
	TimeNow func() time.Time
}

// Check reports the first ban that still blocks phoneNumber. It never writes.
func (g BanGate) Check(ctx context.Context, tx Store, tenantID, phoneNumber string) (model.BanCheck, error) {
	bans, err := tx.ListActiveBans(ctx, tenantID, model.NormalizePhone(phoneNumber))
	if err != nil {
		return model.BanCheck{}, err
	}

	now := g.TimeNow()
	for _, ban := range bans {
		if ban.SatisfiedAt(now) {
			continue
		}

		check := model.BanCheck{Blocked: true, Reason: ban.Reason, ExpiresAt: ban.ExpiresAt}
		if ban.CountLimit != nil {
			remaining := *ban.CountLimit - ban.EventsBlockedSoFar
			check.RemainingEvents = &remaining
		}

		return check, nil
	}

	return model.BanCheck{}, nil
}
