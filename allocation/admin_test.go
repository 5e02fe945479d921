package allocation_test

import (
	"context"
	"event-registration/common/errs"
	"event-registration/model"
)

func (s *OrchestratorTestSuite) TestCancel_ReleasesAndPromotes() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 5 })

	first := s.register(event, "+62811000001", 3)
	s.register(event, "+62811000002", 2)
	waiting := s.register(event, "+62811000003", 3)
	behind := s.register(event, "+62811000004", 1)
	s.Equal(int32(1), waiting.Priority())
	s.Equal(int32(2), behind.Priority())

	cancelled, err := s.Orchestrator.Cancel(context.Background(), tenantID, first.ID)
	s.Require().NoError(err)
	s.Equal(model.RegistrationStatusCancelled, cancelled.Status)
	s.False(cancelled.HoldsCapacity)

	promoted := s.reload(waiting)
	s.Equal(model.RegistrationStatusConfirmed, promoted.Status)
	s.Nil(promoted.WaitlistPriority)
	s.True(promoted.HoldsCapacity)

	s.Equal(model.RegistrationStatusWaitlist, s.reload(behind).Status)
	s.Equal(int32(5), s.event(event.ID).ConfirmedSeats)
	s.Equal(1, s.Notifier.count(model.NotificationPromoted))
	s.Equal(1, s.Notifier.count(model.NotificationCancelled))
}

func (s *OrchestratorTestSuite) TestCancel_ReleasesExactlyPartySize() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 5 })
	s.Orchestrator.Cfg.AutoPromote = false

	first := s.register(event, "+62811000001", 3)
	s.register(event, "+62811000002", 2)
	s.register(event, "+62811000003", 1)
	s.Equal(int32(5), s.event(event.ID).ConfirmedSeats)

	_, err := s.Orchestrator.Cancel(context.Background(), tenantID, first.ID)
	s.Require().NoError(err)
	s.Equal(int32(2), s.event(event.ID).ConfirmedSeats)

	_, err = s.Orchestrator.Cancel(context.Background(), tenantID, first.ID)
	s.Require().NoError(err)
	s.Equal(int32(2), s.event(event.ID).ConfirmedSeats)
	s.Equal(1, s.Notifier.count(model.NotificationCancelled))
}

func (s *OrchestratorTestSuite) TestCancel_PromotionIsStrictlyFIFO() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 4 })

	first := s.register(event, "+62811000001", 2)
	s.register(event, "+62811000002", 2)
	head := s.register(event, "+62811000003", 3)
	small := s.register(event, "+62811000004", 1)

	_, err := s.Orchestrator.Cancel(context.Background(), tenantID, first.ID)
	s.Require().NoError(err)

	s.Equal(model.RegistrationStatusWaitlist, s.reload(head).Status)
	s.Equal(model.RegistrationStatusWaitlist, s.reload(small).Status)
	s.Equal(int32(2), s.event(event.ID).ConfirmedSeats)
}

func (s *OrchestratorTestSuite) TestRegister_FreedSeatsStayWithWaitlist() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 4 })

	first := s.register(event, "+62811000001", 3)
	second := s.register(event, "+62811000002", 1)
	head := s.register(event, "+62811000003", 3)
	small := s.register(event, "+62811000004", 1)

	_, err := s.Orchestrator.Cancel(context.Background(), tenantID, second.ID)
	s.Require().NoError(err)
	s.Equal(int32(3), s.event(event.ID).ConfirmedSeats)

	late := s.register(event, "+62811000005", 1)
	s.Equal(model.RegistrationStatusWaitlist, late.Status)
	s.Equal(int32(3), late.Priority())
	s.Equal(model.RegistrationStatusWaitlist, s.reload(small).Status)
	s.Equal(int32(3), s.event(event.ID).ConfirmedSeats)

	_, err = s.Orchestrator.Cancel(context.Background(), tenantID, first.ID)
	s.Require().NoError(err)

	s.Equal(model.RegistrationStatusConfirmed, s.reload(head).Status)
	s.Equal(model.RegistrationStatusConfirmed, s.reload(small).Status)
	s.Equal(model.RegistrationStatusWaitlist, s.reload(late).Status)
	s.Equal(int32(4), s.event(event.ID).ConfirmedSeats)
}

func (s *OrchestratorTestSuite) TestCancel_WaitlistedDoesNotPromote() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 2 })

	s.register(event, "+62811000001", 2)
	waiting := s.register(event, "+62811000002", 1)
	behind := s.register(event, "+62811000003", 1)

	_, err := s.Orchestrator.Cancel(context.Background(), tenantID, waiting.ID)
	s.Require().NoError(err)

	stored := s.reload(waiting)
	s.Equal(model.RegistrationStatusCancelled, stored.Status)
	s.Nil(stored.WaitlistPriority)
	s.Equal(model.RegistrationStatusWaitlist, s.reload(behind).Status)
	s.Equal(int32(2), s.event(event.ID).ConfirmedSeats)
}

func (s *OrchestratorTestSuite) TestCancel_CrossTenant() {
	event := s.seedEvent(nil)
	registration := s.register(event, "+62811000001", 2)

	_, err := s.Orchestrator.Cancel(context.Background(), "tenant-2", registration.ID)

	s.ErrorIs(err, errs.ErrCrossTenant)
	s.Equal(model.RegistrationStatusConfirmed, s.reload(registration).Status)
}

func (s *OrchestratorTestSuite) TestCancel_NotFound() {
	_, err := s.Orchestrator.Cancel(context.Background(), tenantID, "missing")

	s.ErrorIs(err, errs.ErrNotFound)
}

func (s *OrchestratorTestSuite) TestCancel_TableBasedPromotesBestFit() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 0 })
	s.seedTable(event, "t4", 4, 1, 1)
	s.seedTable(event, "t6", 6, 1, 2)

	small := s.register(event, "+62811000001", 4)
	s.register(event, "+62811000002", 6)
	waiting := s.register(event, "+62811000003", 3)
	large := s.register(event, "+62811000004", 5)

	_, err := s.Orchestrator.Cancel(context.Background(), tenantID, small.ID)
	s.Require().NoError(err)

	promoted := s.reload(waiting)
	s.Equal(model.RegistrationStatusConfirmed, promoted.Status)
	s.Require().NotNil(promoted.AssignedTableID)
	s.Equal("t4", *promoted.AssignedTableID)
	s.Equal(model.RegistrationStatusWaitlist, s.reload(large).Status)
}

func (s *OrchestratorTestSuite) TestMoveToWaitlist() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 2 })

	seated := s.register(event, "+62811000001", 2)
	waiting := s.register(event, "+62811000002", 1)

	moved, err := s.Orchestrator.MoveToWaitlist(context.Background(), tenantID, seated.ID)
	s.Require().NoError(err)

	s.Equal(model.RegistrationStatusWaitlist, moved.Status)
	s.Equal(int32(2), moved.Priority())
	s.False(moved.HoldsCapacity)
	s.Equal(int32(0), s.event(event.ID).ConfirmedSeats)
	s.Equal(model.RegistrationStatusWaitlist, s.reload(waiting).Status)

	again, err := s.Orchestrator.MoveToWaitlist(context.Background(), tenantID, seated.ID)
	s.Require().NoError(err)
	s.Equal(int32(2), again.Priority())

	_, err = s.Orchestrator.Cancel(context.Background(), tenantID, seated.ID)
	s.Require().NoError(err)

	_, err = s.Orchestrator.MoveToWaitlist(context.Background(), tenantID, seated.ID)
	s.ErrorIs(err, errs.ErrInvalidTransition)
	s.Equal(errs.ReasonRegistrationCancelled, errs.ReasonOf(err))
}

func (s *OrchestratorTestSuite) TestConfirm() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 2 })
	s.Orchestrator.Cfg.AutoPromote = false

	seated := s.register(event, "+62811000001", 2)
	head := s.register(event, "+62811000002", 1)
	behind := s.register(event, "+62811000003", 1)

	_, err := s.Orchestrator.Confirm(context.Background(), tenantID, behind.ID, false)
	s.ErrorIs(err, errs.ErrPolicyViolation)
	s.Equal(errs.ReasonPrioritySkip, errs.ReasonOf(err))

	_, err = s.Orchestrator.Confirm(context.Background(), tenantID, head.ID, false)
	s.ErrorIs(err, errs.ErrCapacityExceeded)
	s.Equal(errs.ReasonNoCapacity, errs.ReasonOf(err))

	_, err = s.Orchestrator.Confirm(context.Background(), tenantID, seated.ID, false)
	s.ErrorIs(err, errs.ErrInvalidTransition)

	_, err = s.Orchestrator.Cancel(context.Background(), tenantID, seated.ID)
	s.Require().NoError(err)

	confirmed, err := s.Orchestrator.Confirm(context.Background(), tenantID, behind.ID, true)
	s.Require().NoError(err)
	s.Equal(model.RegistrationStatusConfirmed, confirmed.Status)
	s.Nil(confirmed.WaitlistPriority)

	confirmed, err = s.Orchestrator.Confirm(context.Background(), tenantID, head.ID, false)
	s.Require().NoError(err)
	s.Equal(model.RegistrationStatusConfirmed, confirmed.Status)
	s.Equal(int32(2), s.event(event.ID).ConfirmedSeats)
}

func (s *OrchestratorTestSuite) TestConfirm_TableBasedEvent() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 0 })
	s.seedTable(event, "t4", 4, 1, 1)

	s.register(event, "+62811000001", 4)
	waiting := s.register(event, "+62811000002", 2)

	_, err := s.Orchestrator.Confirm(context.Background(), tenantID, waiting.ID, true)

	s.ErrorIs(err, errs.ErrInvalidTransition)
	s.Equal(errs.ReasonTableBasedEvent, errs.ReasonOf(err))
}

func (s *OrchestratorTestSuite) TestAssignTable() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 0 })
	s.seedTable(event, "t4", 4, 1, 1)
	s.seedTable(event, "t6", 6, 1, 2)
	s.seedTable(event, "t8", 8, 6, 3)
	s.Orchestrator.Cfg.AutoPromote = false

	var holders []model.Registration
	holders = append(holders, s.register(event, "+62811000001", 4))
	holders = append(holders, s.register(event, "+62811000002", 5))
	holders = append(holders, s.register(event, "+62811000003", 8))
	first := s.register(event, "+62811000004", 3)
	second := s.register(event, "+62811000005", 3)

	for _, holder := range holders {
		_, err := s.Orchestrator.Cancel(context.Background(), tenantID, holder.ID)
		s.Require().NoError(err)
	}

	recs, err := s.Orchestrator.WaitlistRecommendations(context.Background(), tenantID, event.ID)
	s.Require().NoError(err)
	s.Require().Len(recs, 2)
	s.Equal(first.ID, recs[0].RegistrationID)
	s.Equal("t4", *recs[0].TableID)
	s.Equal(second.ID, recs[1].RegistrationID)
	s.Equal("t6", *recs[1].TableID)

	tests := []struct {
		name           string
		registrationID string
		tableID        string
		override       bool
		expectedErr    error
		expectedReason string
	}{
		{
			name:           "below minimum",
			registrationID: first.ID,
			tableID:        "t8",
			expectedErr:    errs.ErrPolicyViolation,
			expectedReason: errs.ReasonBelowMinimum,
		},
		{
			name:           "not the best fit",
			registrationID: first.ID,
			tableID:        "t6",
			expectedErr:    errs.ErrPolicyViolation,
			expectedReason: errs.ReasonSuboptimalTable,
		},
		{
			name:           "skips earlier party",
			registrationID: second.ID,
			tableID:        "t4",
			expectedErr:    errs.ErrPolicyViolation,
			expectedReason: errs.ReasonPrioritySkip,
		},
		{
			name:           "unknown table",
			registrationID: second.ID,
			tableID:        "t99",
			expectedErr:    errs.ErrNotFound,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.Orchestrator.AssignTable(context.Background(), tenantID, tt.registrationID, tt.tableID, tt.override)

			s.ErrorIs(err, tt.expectedErr)
			s.Equal(tt.expectedReason, errs.ReasonOf(err))
		})
	}

	assigned, err := s.Orchestrator.AssignTable(context.Background(), tenantID, second.ID, "t4", true)
	s.Require().NoError(err)
	s.Equal(model.RegistrationStatusConfirmed, assigned.Status)
	s.Require().NotNil(assigned.AssignedTableID)
	s.Equal("t4", *assigned.AssignedTableID)

	_, err = s.Orchestrator.AssignTable(context.Background(), tenantID, first.ID, "t4", true)
	s.ErrorIs(err, errs.ErrCapacityExceeded)
	s.Equal(errs.ReasonTableUnavailable, errs.ReasonOf(err))

	assigned, err = s.Orchestrator.AssignTable(context.Background(), tenantID, first.ID, "t6", false)
	s.Require().NoError(err)
	s.Equal("t6", *assigned.AssignedTableID)

	table, err := s.Store.GetTable(context.Background(), "t6")
	s.Require().NoError(err)
	s.Equal(model.TableStatusReserved, table.Status)
}

func (s *OrchestratorTestSuite) TestAssignTable_CapacityEvent() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 1 })

	s.register(event, "+62811000001", 1)
	waiting := s.register(event, "+62811000002", 1)

	_, err := s.Orchestrator.AssignTable(context.Background(), tenantID, waiting.ID, "t4", true)

	s.ErrorIs(err, errs.ErrInvalidTransition)
	s.Equal(errs.ReasonNotTableBased, errs.ReasonOf(err))
}

func (s *OrchestratorTestSuite) TestUpdateCapacity() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 3 })

	s.register(event, "+62811000001", 2)
	s.register(event, "+62811000002", 1)
	waiting := s.register(event, "+62811000003", 2)

	_, err := s.Orchestrator.UpdateCapacity(context.Background(), tenantID, event.ID, 2, false)
	s.ErrorIs(err, errs.ErrPolicyViolation)
	s.Equal(errs.ReasonCapacityBelowConfirmed, errs.ReasonOf(err))
	s.Equal(int32(3), s.event(event.ID).Capacity)

	updated, err := s.Orchestrator.UpdateCapacity(context.Background(), tenantID, event.ID, 2, true)
	s.Require().NoError(err)
	s.Equal(int32(3), updated.Capacity)

	_, err = s.Orchestrator.UpdateCapacity(context.Background(), tenantID, event.ID, 0, true)
	s.ErrorIs(err, errs.ErrInvalidArgument)

	updated, err = s.Orchestrator.UpdateCapacity(context.Background(), tenantID, event.ID, 5, false)
	s.Require().NoError(err)
	s.Equal(int32(5), updated.Capacity)
	s.Equal(int32(5), updated.ConfirmedSeats)
	s.Equal(model.RegistrationStatusConfirmed, s.reload(waiting).Status)
}

func (s *OrchestratorTestSuite) TestWaitlistRecommendations_CapacityEvent() {
	event := s.seedEvent(func(e *model.Event) { e.Capacity = 4 })
	s.Orchestrator.Cfg.AutoPromote = false

	seated := s.register(event, "+62811000001", 4)
	b := s.register(event, "+62811000002", 1)
	c := s.register(event, "+62811000003", 2)
	s.register(event, "+62811000004", 3)

	_, err := s.Orchestrator.Cancel(context.Background(), tenantID, seated.ID)
	s.Require().NoError(err)

	recs, err := s.Orchestrator.WaitlistRecommendations(context.Background(), tenantID, event.ID)
	s.Require().NoError(err)

	s.Require().Len(recs, 2)
	s.Equal(b.ID, recs[0].RegistrationID)
	s.Equal(int32(1), recs[0].Priority)
	s.Nil(recs[0].TableID)
	s.Equal(c.ID, recs[1].RegistrationID)
}
