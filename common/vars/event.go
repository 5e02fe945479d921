package vars

import (
	"event-registration/model"
	"sync/atomic"
)

// openEvents holds the snapshot served by the public event listing. Readers
// never block the cron that replaces it.
var openEvents atomic.Pointer[[]model.Event]

// GetOpenEvents returns the open events of a tenant from the current snapshot.
func GetOpenEvents(tenantID string) []model.Event {
	ptr := openEvents.Load()
	if ptr == nil {
		return nil
	}

	var events []model.Event
	for _, event := range *ptr {
		if event.TenantID == tenantID {
			events = append(events, event)
		}
	}

	return events
}

// SetOpenEvents replaces the snapshot with a copy of events. Pass nil to clear it.
func SetOpenEvents(events []model.Event) {
	if len(events) == 0 {
		openEvents.Store(nil)
		return
	}

	eventsCopy := make([]model.Event, len(events))
	copy(eventsCopy, events)
	openEvents.Store(&eventsCopy)
}
