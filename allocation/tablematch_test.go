package allocation

import (
	"event-registration/common/errs"
	"event-registration/model"
	"github.com/stretchr/testify/suite"
	"testing"
)

type TableMatchTestSuite struct {
	suite.Suite

	Tables []model.Table
}

func (s *TableMatchTestSuite) SetupTest() {
	s.Tables = []model.Table{
		{ID: "t8", Capacity: 8, MinOrder: 1, Status: model.TableStatusAvailable, DisplayOrder: 1},
		{ID: "t4", Capacity: 4, MinOrder: 1, Status: model.TableStatusAvailable, DisplayOrder: 2},
		{ID: "t6", Capacity: 6, MinOrder: 1, Status: model.TableStatusAvailable, DisplayOrder: 3},
	}
}

func TestTableMatchTestSuite(t *testing.T) {
	suite.Run(t, new(TableMatchTestSuite))
}

func waitlisted(id string, partySize, priority int32) model.Registration {
	return model.Registration{
		ID:               id,
		ConfirmationCode: "code-" + id,
		PartySize:        partySize,
		Status:           model.RegistrationStatusWaitlist,
		WaitlistPriority: &priority,
	}
}

func (s *TableMatchTestSuite) TestBestTable() {
	tests := []struct {
		name       string
		partySize  int32
		mutate     func(tables []model.Table)
		expectedID string
		expectedOk bool
	}{
		{
			name:       "smallest fitting table wins",
			partySize:  3,
			expectedID: "t4",
			expectedOk: true,
		},
		{
			name:       "party larger than small tables",
			partySize:  5,
			expectedID: "t6",
			expectedOk: true,
		},
		{
			name:      "reserved table is skipped",
			partySize: 3,
			mutate: func(tables []model.Table) {
				tables[1].Status = model.TableStatusReserved
			},
			expectedID: "t6",
			expectedOk: true,
		},
		{
			name:      "minimum order excludes table",
			partySize: 3,
			mutate: func(tables []model.Table) {
				tables[1].MinOrder = 4
			},
			expectedID: "t6",
			expectedOk: true,
		},
		{
			name:      "tie broken by display order",
			partySize: 5,
			mutate: func(tables []model.Table) {
				tables[0].Capacity = 6
			},
			expectedID: "t8",
			expectedOk: true,
		},
		{
			name:       "nothing fits",
			partySize:  9,
			expectedOk: false,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			if tt.mutate != nil {
				tt.mutate(s.Tables)
			}

			table, ok := BestTable(tt.partySize, s.Tables)
			s.Equal(tt.expectedOk, ok)
			s.Equal(tt.expectedID, table.ID)
		})
	}
}

func (s *TableMatchTestSuite) TestMatchingTables() {
	matches := MatchingTables(5, s.Tables)

	ids := make([]string, 0, len(matches))
	for _, table := range matches {
		ids = append(ids, table.ID)
	}

	s.ElementsMatch([]string{"t8", "t6"}, ids)
}

func (s *TableMatchTestSuite) TestRecommend() {
	waitlist := []model.Registration{
		waitlisted("c", 3, 3),
		waitlisted("a", 3, 1),
		waitlisted("b", 7, 2),
		waitlisted("d", 2, 4),
	}

	recs := Recommend(waitlist, s.Tables)

	s.Require().Len(recs, 3)
	s.Equal("a", recs[0].Registration.ID)
	s.Equal("t4", recs[0].Table.ID)
	s.Equal("b", recs[1].Registration.ID)
	s.Equal("t8", recs[1].Table.ID)
	s.Equal("c", recs[2].Registration.ID)
	s.Equal("t6", recs[2].Table.ID)
}

func (s *TableMatchTestSuite) TestCheckAssignment() {
	tests := []struct {
		name           string
		registration   model.Registration
		tableID        string
		waitlist       []model.Registration
		mutate         func(tables []model.Table)
		override       bool
		expectedErr    error
		expectedReason string
	}{
		{
			name:         "best fit passes",
			registration: waitlisted("a", 3, 1),
			tableID:      "t4",
			waitlist:     []model.Registration{waitlisted("a", 3, 1)},
		},
		{
			name:           "larger table needs override",
			registration:   waitlisted("a", 3, 1),
			tableID:        "t8",
			waitlist:       []model.Registration{waitlisted("a", 3, 1)},
			expectedErr:    errs.ErrPolicyViolation,
			expectedReason: errs.ReasonSuboptimalTable,
		},
		{
			name:         "larger table with override",
			registration: waitlisted("a", 3, 1),
			tableID:      "t8",
			waitlist:     []model.Registration{waitlisted("a", 3, 1)},
			override:     true,
		},
		{
			name:           "table claimed by earlier party",
			registration:   waitlisted("b", 3, 2),
			tableID:        "t4",
			waitlist:       []model.Registration{waitlisted("a", 4, 1), waitlisted("b", 3, 2)},
			expectedErr:    errs.ErrPolicyViolation,
			expectedReason: errs.ReasonPrioritySkip,
		},
		{
			name:         "every fitting table claimed by earlier parties",
			registration: waitlisted("d", 3, 4),
			tableID:      "t6",
			waitlist: []model.Registration{
				waitlisted("a", 4, 1),
				waitlisted("b", 6, 2),
				waitlisted("c", 8, 3),
				waitlisted("d", 3, 4),
			},
			expectedErr:    errs.ErrPolicyViolation,
			expectedReason: errs.ReasonPrioritySkip,
		},
		{
			name:         "below minimum needs override",
			registration: waitlisted("a", 3, 1),
			tableID:      "t8",
			waitlist:     []model.Registration{waitlisted("a", 3, 1)},
			mutate: func(tables []model.Table) {
				tables[0].MinOrder = 6
			},
			expectedErr:    errs.ErrPolicyViolation,
			expectedReason: errs.ReasonBelowMinimum,
		},
		{
			name:         "below minimum with override",
			registration: waitlisted("a", 3, 1),
			tableID:      "t8",
			waitlist:     []model.Registration{waitlisted("a", 3, 1)},
			mutate: func(tables []model.Table) {
				tables[0].MinOrder = 6
			},
			override: true,
		},
		{
			name:         "reserved table is never overridable",
			registration: waitlisted("a", 3, 1),
			tableID:      "t4",
			waitlist:     []model.Registration{waitlisted("a", 3, 1)},
			mutate: func(tables []model.Table) {
				tables[1].Status = model.TableStatusReserved
			},
			override:       true,
			expectedErr:    errs.ErrCapacityExceeded,
			expectedReason: errs.ReasonTableUnavailable,
		},
		{
			name:           "party larger than table",
			registration:   waitlisted("a", 5, 1),
			tableID:        "t4",
			waitlist:       []model.Registration{waitlisted("a", 5, 1)},
			override:       true,
			expectedErr:    errs.ErrCapacityExceeded,
			expectedReason: errs.ReasonTableTooSmall,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			if tt.mutate != nil {
				tt.mutate(s.Tables)
			}

			var table model.Table
			for _, t := range s.Tables {
				if t.ID == tt.tableID {
					table = t
				}
			}

			err := CheckAssignment(tt.registration, table, tt.waitlist, s.Tables, tt.override)
			if tt.expectedErr == nil {
				s.NoError(err)
				return
			}

			s.ErrorIs(err, tt.expectedErr)
			s.Equal(tt.expectedReason, errs.ReasonOf(err))
		})
	}
}

func (s *TableMatchTestSuite) TestUnclaimedTables() {
	waitlist := []model.Registration{waitlisted("a", 4, 1)}

	remaining := unclaimedTables(waitlist, s.Tables)

	ids := make([]string, 0, len(remaining))
	for _, table := range remaining {
		ids = append(ids, table.ID)
	}

	s.ElementsMatch([]string{"t8", "t6"}, ids)
}
