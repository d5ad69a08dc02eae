package dummydb

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/trezcool/charityevents/core/event"
)

var eventPKCount int

type eventRepository struct {
	db *eventTable
}

var _ event.Repository = (*eventRepository)(nil) // interface compliance check

func NewEventRepository(db *DB) *eventRepository {
	return &eventRepository{db: db.event}
}

// CreateEvent registers an event for tests.
func (repo *eventRepository) CreateEvent(evt event.EventDetail) event.EventDetail {
	repo.db.Lock()
	defer repo.db.Unlock()

	eventPKCount++
	evt.ID = eventPKCount
	repo.db.table[evt.ID] = &evt
	return evt
}

func statusIn(statusID int, statuses []int) bool {
	for _, s := range statuses {
		if statusID == s {
			return true
		}
	}
	return false
}

func sortByStart(events []event.Event) {
	sort.Slice(events, func(i, j int) bool { return events[i].StartsAt.Before(events[j].StartsAt) })
}

func (repo *eventRepository) QueryListedEvents(ctx context.Context, since time.Time) ([]event.Event, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	events := make([]event.Event, 0, len(repo.db.table))
	for _, evt := range repo.db.table {
		if statusIn(evt.StatusID, event.ListedStatuses) && !evt.StartsAt.Before(since) {
			events = append(events, evt.Event)
		}
	}
	sortByStart(events)
	return events, nil
}

func (repo *eventRepository) SearchEvents(ctx context.Context, filter event.SearchFilter) ([]event.Event, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	events := make([]event.Event, 0, len(repo.db.table))
	for _, evt := range repo.db.table {
		if !statusIn(evt.StatusID, event.SearchableStatuses) {
			continue
		}
		if filter.Date != "" && evt.StartsAt.Format("2006-01-02") != filter.Date {
			continue
		}
		if filter.Location != "" &&
			!strings.Contains(strings.ToLower(evt.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if id, ok := filter.CategoryID(); ok && (!evt.CategoryID.Valid || int(evt.CategoryID.Int) != id) {
			continue
		}
		events = append(events, evt.Event)
	}
	sortByStart(events)
	return events, nil
}

func (repo *eventRepository) GetEventByID(ctx context.Context, id int) (event.EventDetail, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if evt, ok := repo.db.table[id]; ok {
		detail := *evt
		detail.Tags = nil // tags are fetched separately, as with the real store
		return detail, nil
	}
	return event.EventDetail{}, event.ErrNotFound
}

func (repo *eventRepository) GetEventTags(ctx context.Context, eventID int) ([]event.Tag, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	tags := make([]event.Tag, 0)
	if evt, ok := repo.db.table[eventID]; ok {
		tags = append(tags, evt.Tags...)
	}
	return tags, nil
}

func (repo *eventRepository) QueryFeaturedEvents(ctx context.Context, after time.Time, limit int) ([]event.Event, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	events := make([]event.Event, 0, len(repo.db.table))
	for _, evt := range repo.db.table {
		if evt.StatusID == event.StatusActive && evt.StartsAt.After(after) {
			events = append(events, evt.Event)
		}
	}
	sortByStart(events)
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}
