package allocation

import (
	"context"
	"event-registration/common"
	"event-registration/common/constant"
	"event-registration/common/errs"
	"event-registration/common/otel"
	"event-registration/model"
	"github.com/google/uuid"
	"log/slog"
	"strings"
	"time"
)

// Catalog manages events, tables and bans.
type Catalog struct {
	Store   Store
	BanGate BanGate
	TimeNow func() time.Time
}

func NewCatalog(store Store) *Catalog {
	c := &Catalog{Store: store, TimeNow: time.Now}
	c.BanGate = BanGate{TimeNow: func() time.Time { return c.TimeNow() }}
	return c
}

func (c *Catalog) CreateEvent(ctx context.Context, event model.Event) (model.Event, error) {
	ctx, span := otel.Tracer.Start(ctx, "Catalog.CreateEvent")
	defer span.End()

	if event.Capacity < 0 {
		return model.Event{}, errs.Reject(errs.ErrInvalidArgument, errs.ReasonInvalidCapacity, map[string]any{"capacity": event.Capacity})
	}

	if !event.PaymentRequired {
		event.PaymentTiming = model.PaymentTimingNone
		event.PricingModel = model.PricingModelNone
		event.PriceAmount = 0
	} else if event.PaymentTiming == "" || event.PaymentTiming == model.PaymentTimingNone {
		return model.Event{}, errs.Reject(errs.ErrInvalidArgument, errs.ReasonInvalidPaymentTiming, nil)
	}

	if event.PricingModel == "" {
		event.PricingModel = model.PricingModelNone
	}

	event.ID = uuid.NewString()
	event.Status = model.EventStatusOpen
	event.ConfirmedSeats = 0
	event.WaitlistSeq = 0
	event.Currency = strings.ToUpper(event.Currency)
	event.CreatedAt = c.TimeNow()

	if err := c.Store.InsertEvent(ctx, event); err != nil {
		common.UtilSpanError(span, err)
		return model.Event{}, err
	}

	return event, nil
}

// CreateTable adds a table to a table-based event.
func (c *Catalog) CreateTable(ctx context.Context, tenantID, eventID string, table model.Table) (model.Table, error) {
	ctx, span := otel.Tracer.Start(ctx, "Catalog.CreateTable")
	defer span.End()

	event, err := c.Store.GetEvent(ctx, eventID)
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Table{}, err
	}

	if event.TenantID != tenantID {
		return model.Table{}, errs.ErrCrossTenant
	}

	if !event.TableBased() {
		return model.Table{}, errs.Reject(errs.ErrInvalidArgument, errs.ReasonNotTableBased, nil)
	}

	if table.Capacity < 1 || table.MinOrder > table.Capacity {
		return model.Table{}, errs.Reject(errs.ErrInvalidArgument, errs.ReasonInvalidCapacity, map[string]any{
			"capacity":  table.Capacity,
			"min_order": table.MinOrder,
		})
	}

	table.ID = uuid.NewString()
	table.TenantID = tenantID
	table.EventID = event.ID
	table.Status = model.TableStatusAvailable
	table.ReservedRegistrationID = nil

	if err := c.Store.InsertTable(ctx, table); err != nil {
		common.UtilSpanError(span, err)
		return model.Table{}, err
	}

	return table, nil
}

func (c *Catalog) CreateBan(ctx context.Context, ban model.Ban) (model.Ban, error) {
	ctx, span := otel.Tracer.Start(ctx, "Catalog.CreateBan")
	defer span.End()

	ban.PhoneNumber = model.NormalizePhone(ban.PhoneNumber)
	if ban.PhoneNumber == "" {
		return model.Ban{}, errs.Reject(errs.ErrInvalidArgument, errs.ReasonInvalidPhoneNumber, nil)
	}

	ban.ID = uuid.NewString()
	ban.EventsBlockedSoFar = 0
	ban.Active = true
	ban.CreatedAt = c.TimeNow()

	if err := c.Store.InsertBan(ctx, ban); err != nil {
		common.UtilSpanError(span, err)
		return model.Ban{}, err
	}

	return ban, nil
}

func (c *Catalog) LiftBan(ctx context.Context, tenantID, banID string) error {
	ctx, span := otel.Tracer.Start(ctx, "Catalog.LiftBan")
	defer span.End()

	ok, err := c.Store.DeactivateBan(ctx, tenantID, banID)
	if err != nil {
		common.UtilSpanError(span, err)
		return err
	}

	if !ok {
		return errs.ErrNotFound
	}

	return nil
}

// CheckBan reports whether phoneNumber is currently blocked by the tenant.
func (c *Catalog) CheckBan(ctx context.Context, tenantID, phoneNumber string) (model.BanCheck, error) {
	ctx, span := otel.Tracer.Start(ctx, "Catalog.CheckBan")
	defer span.End()

	check, err := c.BanGate.Check(ctx, c.Store, tenantID, phoneNumber)
	if err != nil {
		common.UtilSpanError(span, err)
		return model.BanCheck{}, err
	}

	return check, nil
}

func (c *Catalog) OpenEvents(ctx context.Context) ([]model.Event, error) {
	ctx, span := otel.Tracer.Start(ctx, "Catalog.OpenEvents")
	defer span.End()

	events, err := c.Store.ListOpenEvents(ctx)
	if err != nil {
		common.UtilSpanError(span, err)
		return nil, err
	}

	return events, nil
}

// CloseStartedEvents closes the open events whose start time passed. Every
// closed event counts once against the count-based bans of its tenant.
func (c *Catalog) CloseStartedEvents(ctx context.Context) ([]model.Event, error) {
	ctx, span := otel.Tracer.Start(ctx, "Catalog.CloseStartedEvents")
	defer span.End()

	var closed []model.Event
	err := c.Store.InTx(ctx, func(tx Store) error {
		var err error
		closed, err = tx.CloseStartedEvents(ctx, c.TimeNow())
		if err != nil {
			return err
		}

		for _, event := range closed {
			advanced, err := tx.AdvanceCountBans(ctx, event.TenantID, event.StartsAt)
			if err != nil {
				return err
			}

			slog.InfoContext(ctx, "event closed",
				slog.String(constant.LogFieldTenantId, event.TenantID),
				slog.String(constant.LogFieldEventId, event.ID),
				slog.Int64("bans_advanced", advanced))
		}

		return nil
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return nil, err
	}

	return closed, nil
}
