package allocation

import (
	"event-registration/common/errs"
	"event-registration/model"
	"sort"
)

// MatchingTables returns the available tables that accept a party of partySize.
func MatchingTables(partySize int32, tables []model.Table) []model.Table {
	var matches []model.Table
	for _, table := range tables {
		if table.Fits(partySize) {
			matches = append(matches, table)
		}
	}
	return matches
}

// BestTable picks the smallest matching table, breaking ties by display order
// and then id.
func BestTable(partySize int32, tables []model.Table) (model.Table, bool) {
	matches := MatchingTables(partySize, tables)
	if len(matches) == 0 {
		return model.Table{}, false
	}

	sortTables(matches)

	return matches[0], true
}

func sortTables(tables []model.Table) {
	sort.SliceStable(tables, func(i, j int) bool {
		return tableLess(tables[i], tables[j])
	})
}

func tableLess(a, b model.Table) bool {
	if a.Capacity != b.Capacity {
		return a.Capacity < b.Capacity
	}
	if a.DisplayOrder != b.DisplayOrder {
		return a.DisplayOrder < b.DisplayOrder
	}
	return a.ID < b.ID
}

type Recommendation struct {
	Registration model.Registration
	Table        model.Table
}

// Recommend walks the waitlist in priority order and lets every entry claim
// its best fit among the tables not yet claimed by an earlier entry.
func Recommend(waitlist []model.Registration, tables []model.Table) []Recommendation {
	ordered := sortedByPriority(waitlist)
	remaining := append([]model.Table(nil), tables...)

	var recs []Recommendation
	for _, registration := range ordered {
		table, ok := BestTable(registration.PartySize, remaining)
		if !ok {
			continue
		}

		recs = append(recs, Recommendation{Registration: registration, Table: table})
		remaining = withoutTable(remaining, table.ID)
	}

	return recs
}

// unclaimedTables removes the tables that waitlisted parties would claim.
func unclaimedTables(waitlist []model.Registration, tables []model.Table) []model.Table {
	remaining := tables
	for _, rec := range Recommend(waitlist, tables) {
		remaining = withoutTable(remaining, rec.Table.ID)
	}
	return remaining
}

// CheckAssignment validates seating registration at table. Hard failures are
// never overridable; policy violations pass when override is set.
func CheckAssignment(registration model.Registration, table model.Table, waitlist []model.Registration, tables []model.Table, override bool) error {
	if table.Status != model.TableStatusAvailable {
		return errs.Reject(errs.ErrCapacityExceeded, errs.ReasonTableUnavailable, map[string]any{"table_id": table.ID, "status": table.Status})
	}

	if registration.PartySize > table.Capacity {
		return errs.Reject(errs.ErrCapacityExceeded, errs.ReasonTableTooSmall, map[string]any{"table_id": table.ID, "capacity": table.Capacity})
	}

	if override {
		return nil
	}

	if registration.PartySize < table.MinOrder {
		return errs.Reject(errs.ErrPolicyViolation, errs.ReasonBelowMinimum, map[string]any{"table_id": table.ID, "min_order": table.MinOrder})
	}

	var own *Recommendation
	recs := Recommend(waitlist, tables)
	for i, rec := range recs {
		if rec.Table.ID == table.ID && rec.Registration.ID != registration.ID && rec.Registration.Priority() < registration.Priority() {
			return errs.Reject(errs.ErrPolicyViolation, errs.ReasonPrioritySkip, map[string]any{
				"table_id":         table.ID,
				"claimed_by":       rec.Registration.ConfirmationCode,
				"claimed_priority": rec.Registration.Priority(),
				"current_priority": registration.Priority(),
			})
		}
		if rec.Registration.ID == registration.ID {
			own = &recs[i]
		}
	}

	if own == nil {
		if len(MatchingTables(registration.PartySize, tables)) > 0 {
			return errs.Reject(errs.ErrPolicyViolation, errs.ReasonPrioritySkip, map[string]any{"table_id": table.ID})
		}
		return nil
	}

	if own.Table.ID != table.ID && own.Table.Capacity < table.Capacity {
		return errs.Reject(errs.ErrPolicyViolation, errs.ReasonSuboptimalTable, map[string]any{
			"table_id":       table.ID,
			"recommended_id": own.Table.ID,
		})
	}

	return nil
}

func sortedByPriority(waitlist []model.Registration) []model.Registration {
	ordered := append([]model.Registration(nil), waitlist...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() < ordered[j].Priority()
	})
	return ordered
}

func withoutTable(tables []model.Table, id string) []model.Table {
	out := make([]model.Table, 0, len(tables))
	for _, table := range tables {
		if table.ID != id {
			out = append(out, table)
		}
	}
	return out
}
