package allocation_test

import (
	"context"
	"event-registration/allocation"
	"event-registration/common/errs"
	"event-registration/model"
	"github.com/google/uuid"
	"time"
)

func (s *OrchestratorTestSuite) seedBan(mutate func(b *model.Ban)) model.Ban {
	ban := model.Ban{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		PhoneNumber: "+62811000001",
		Reason:      "no show",
		Active:      true,
		CreatedAt:   s.Now.Add(-24 * time.Hour),
	}
	if mutate != nil {
		mutate(&ban)
	}

	s.Require().NoError(s.Store.InsertBan(context.Background(), ban))
	return ban
}

func limit(n int32) *int32 {
	return &n
}

func (s *OrchestratorTestSuite) TestBanLifecycle() {
	tests := []struct {
		name            string
		mutate          func(b *model.Ban)
		expectedBlocked bool
		expectedRemain  *int32
	}{
		{
			name:            "permanent ban blocks",
			expectedBlocked: true,
		},
		{
			name: "expired ban allows",
			mutate: func(b *model.Ban) {
				expiresAt := s.Now.Add(-time.Hour)
				b.ExpiresAt = &expiresAt
			},
		},
		{
			name: "ban expiring later blocks",
			mutate: func(b *model.Ban) {
				expiresAt := s.Now.Add(time.Hour)
				b.ExpiresAt = &expiresAt
			},
			expectedBlocked: true,
		},
		{
			name: "count ban used up allows",
			mutate: func(b *model.Ban) {
				b.CountLimit = limit(2)
				b.EventsBlockedSoFar = 2
			},
		},
		{
			name: "count ban still running blocks",
			mutate: func(b *model.Ban) {
				b.CountLimit = limit(3)
				b.EventsBlockedSoFar = 1
			},
			expectedBlocked: true,
			expectedRemain:  limit(2),
		},
		{
			name: "inactive ban allows",
			mutate: func(b *model.Ban) {
				b.Active = false
			},
		},
		{
			name: "ban of another tenant allows",
			mutate: func(b *model.Ban) {
				b.TenantID = "tenant-2"
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			event := s.seedEvent(nil)
			s.seedBan(tt.mutate)

			check, err := s.Catalog.CheckBan(context.Background(), tenantID, "+62 811-000-001")
			s.Require().NoError(err)
			s.Equal(tt.expectedBlocked, check.Blocked)
			s.Equal(tt.expectedRemain, check.RemainingEvents)

			_, err = s.Orchestrator.Register(context.Background(), s.command(event, "+62811000001", 1))
			if tt.expectedBlocked {
				s.ErrorIs(err, errs.ErrBlocked)
				s.Equal(errs.ReasonBanned, errs.ReasonOf(err))
				return
			}
			s.NoError(err)
		})
	}
}

func (s *OrchestratorTestSuite) TestLiftBan() {
	ban, err := s.Catalog.CreateBan(context.Background(), model.Ban{
		TenantID:    tenantID,
		PhoneNumber: "0811 000 001",
		Reason:      "no show",
	})
	s.Require().NoError(err)
	s.Equal("0811000001", ban.PhoneNumber)
	s.True(ban.Active)

	s.ErrorIs(s.Catalog.LiftBan(context.Background(), "tenant-2", ban.ID), errs.ErrNotFound)
	s.Require().NoError(s.Catalog.LiftBan(context.Background(), tenantID, ban.ID))
	s.ErrorIs(s.Catalog.LiftBan(context.Background(), tenantID, ban.ID), errs.ErrNotFound)

	check, err := s.Catalog.CheckBan(context.Background(), tenantID, "0811000001")
	s.Require().NoError(err)
	s.False(check.Blocked)

	_, err = s.Catalog.CreateBan(context.Background(), model.Ban{TenantID: tenantID, PhoneNumber: "n/a"})
	s.ErrorIs(err, errs.ErrInvalidArgument)
}

func (s *OrchestratorTestSuite) TestCloseStartedEvents_AdvancesCountBans() {
	started := s.seedEvent(func(e *model.Event) { e.StartsAt = s.Now.Add(-time.Hour) })
	upcoming := s.seedEvent(nil)
	other := s.seedEvent(func(e *model.Event) {
		e.TenantID = "tenant-2"
		e.StartsAt = s.Now.Add(-time.Hour)
	})

	ban := s.seedBan(func(b *model.Ban) { b.CountLimit = limit(1) })
	late := s.seedBan(func(b *model.Ban) {
		b.PhoneNumber = "+62811000002"
		b.CountLimit = limit(1)
		b.CreatedAt = s.Now
	})

	check, err := s.Catalog.CheckBan(context.Background(), tenantID, ban.PhoneNumber)
	s.Require().NoError(err)
	s.True(check.Blocked)

	closed, err := s.Catalog.CloseStartedEvents(context.Background())
	s.Require().NoError(err)
	s.Len(closed, 2)

	s.Equal(model.EventStatusClosed, s.event(started.ID).Status)
	s.Equal(model.EventStatusClosed, s.event(other.ID).Status)
	s.Equal(model.EventStatusOpen, s.event(upcoming.ID).Status)

	check, err = s.Catalog.CheckBan(context.Background(), tenantID, ban.PhoneNumber)
	s.Require().NoError(err)
	s.False(check.Blocked)

	check, err = s.Catalog.CheckBan(context.Background(), tenantID, late.PhoneNumber)
	s.Require().NoError(err)
	s.True(check.Blocked)

	closed, err = s.Catalog.CloseStartedEvents(context.Background())
	s.Require().NoError(err)
	s.Empty(closed)

	open, err := s.Catalog.OpenEvents(context.Background())
	s.Require().NoError(err)
	s.Require().Len(open, 1)
	s.Equal(upcoming.ID, open[0].ID)
}

func (s *OrchestratorTestSuite) TestCreateEvent() {
	event, err := s.Catalog.CreateEvent(context.Background(), model.Event{
		TenantID:          tenantID,
		Name:              "Gala",
		Capacity:          20,
		MaxSpotsPerPerson: 4,
		StartsAt:          s.Now.Add(72 * time.Hour),
		PaymentRequired:   true,
		PaymentTiming:     model.PaymentTimingUpfront,
		PricingModel:      model.PricingModelPerGuest,
		PriceAmount:       25000,
		Currency:          "idr",
	})
	s.Require().NoError(err)
	s.NotEmpty(event.ID)
	s.Equal(model.EventStatusOpen, event.Status)
	s.Equal("IDR", event.Currency)
	s.Equal(int64(75000), event.AmountFor(3))

	_, err = s.Catalog.CreateEvent(context.Background(), model.Event{
		TenantID:        tenantID,
		Name:            "Broken",
		Capacity:        20,
		PaymentRequired: true,
	})
	s.ErrorIs(err, errs.ErrInvalidArgument)
	s.Equal(errs.ReasonInvalidPaymentTiming, errs.ReasonOf(err))

	_, err = s.Catalog.CreateTable(context.Background(), tenantID, event.ID, model.Table{Name: "A", Capacity: 4})
	s.ErrorIs(err, errs.ErrInvalidArgument)
	s.Equal(errs.ReasonNotTableBased, errs.ReasonOf(err))
}

func (s *OrchestratorTestSuite) TestCreateTable() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 0 })

	table, err := s.Catalog.CreateTable(context.Background(), tenantID, event.ID, model.Table{Name: "A", Capacity: 6, MinOrder: 2})
	s.Require().NoError(err)
	s.Equal(model.TableStatusAvailable, table.Status)
	s.Equal(event.ID, table.EventID)

	_, err = s.Catalog.CreateTable(context.Background(), "tenant-2", event.ID, model.Table{Name: "B", Capacity: 6})
	s.ErrorIs(err, errs.ErrCrossTenant)

	_, err = s.Catalog.CreateTable(context.Background(), tenantID, event.ID, model.Table{Name: "C", Capacity: 2, MinOrder: 3})
	s.ErrorIs(err, errs.ErrInvalidArgument)

	registration := s.register(event, "+62811000001", 5)
	s.Equal(table.ID, *registration.AssignedTableID)
}

func (s *OrchestratorTestSuite) TestFeed() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 2 })
	feed := allocation.Feed{Store: s.Store}

	s.register(event, "+62811000001", 2)
	since := s.Now

	s.Now = s.Now.Add(time.Second)
	waiting := s.register(event, "+62811000002", 1)

	registrations, err := feed.RegistrationsSince(context.Background(), tenantID, event.ID, since)
	s.Require().NoError(err)
	s.Require().Len(registrations, 1)
	s.Equal(waiting.ID, registrations[0].ID)

	counts, err := feed.StatusCounts(context.Background(), tenantID, event.ID)
	s.Require().NoError(err)
	s.Equal(model.StatusCounts{Confirmed: 1, Waitlist: 1, ConfirmedSeats: 2, Capacity: 2}, counts)

	_, err = feed.StatusCounts(context.Background(), "tenant-2", event.ID)
	s.ErrorIs(err, errs.ErrCrossTenant)
}
