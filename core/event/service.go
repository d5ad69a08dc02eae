package event

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("event not found")

// listedSince: listed events may have started up to a day ago.
const listedSince = 24 * time.Hour

// featuredLimit caps the landing-page carousel.
const featuredLimit = 6

type (
	Repository interface {
		// QueryListedEvents returns events in ListedStatuses starting on or
		// after `since`, ordered by start time ascending.
		QueryListedEvents(ctx context.Context, since time.Time) ([]Event, error)
		// SearchEvents applies AND on available SearchFilter fields over
		// SearchableStatuses; an absent field adds no predicate.
		SearchEvents(ctx context.Context, filter SearchFilter) ([]Event, error)
		// GetEventByID returns ErrNotFound when no row matches.
		GetEventByID(ctx context.Context, id int) (EventDetail, error)
		GetEventTags(ctx context.Context, eventID int) ([]Tag, error)
		// QueryFeaturedEvents returns up to `limit` StatusActive events
		// starting strictly after `after`, ordered by start time ascending.
		QueryFeaturedEvents(ctx context.Context, after time.Time, limit int) ([]Event, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryListed(ctx context.Context) ([]Event, error) {
	since := time.Now().UTC().Add(-listedSince)
	return svc.repo.QueryListedEvents(ctx, since)
}

func (svc *Service) Search(ctx context.Context, filter SearchFilter) ([]Event, error) {
	return svc.repo.SearchEvents(ctx, filter)
}

// GetDetail fetches one event with its tags and attaches the derived
// fundraising and capacity fields.
func (svc *Service) GetDetail(ctx context.Context, id int) (EventDetail, error) {
	evt, err := svc.repo.GetEventByID(ctx, id)
	if err != nil {
		return EventDetail{}, err
	}

	tags, err := svc.repo.GetEventTags(ctx, id)
	if err != nil {
		return EventDetail{}, errors.Wrap(err, "fetching event tags")
	}
	if tags == nil {
		tags = make([]Tag, 0)
	}

	evt.Tags = tags
	evt.ProgressPercentage = ProgressPercentage(evt.CurrentRaised, evt.FundraisingGoal)
	evt.RemainingSpots = RemainingSpots(evt.MaxAttendees, evt.CurrentAttendees)
	return evt, nil
}

func (svc *Service) QueryFeatured(ctx context.Context) ([]Event, error) {
	return svc.repo.QueryFeaturedEvents(ctx, time.Now().UTC(), featuredLimit)
}
