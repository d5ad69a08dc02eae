package echoapi

import (
	"time"

	"github.com/trezcool/charityevents/core"
	"github.com/trezcool/charityevents/core/event"
)

type (
	// ListResponse wraps a collection payload.
	ListResponse struct {
		Success bool        `json:"success"`
		Data    interface{} `json:"data"`
		Count   int         `json:"count"`
	}

	// SearchResponse echoes the applied filters back alongside the results.
	SearchResponse struct {
		ListResponse
		Filters event.SearchFilter `json:"filters"`
	}

	DetailResponse struct {
		Success bool        `json:"success"`
		Data    interface{} `json:"data"`
	}

	ErrorResponse struct {
		Success bool              `json:"success"`
		Error   string            `json:"error"`
		Errors  []core.FieldError `json:"errors,omitempty"`
	}

	ContactResponse struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		Reference string `json:"reference"`
	}
)

func newListResponse(data interface{}, count int) ListResponse {
	return ListResponse{Success: true, Data: data, Count: count}
}

// excerptLength caps the card blurb on listing payloads.
const excerptLength = 120

type (
	// EventPayload is a listed event with every derived display value
	// attached, so clients render rows without re-deriving any of it.
	EventPayload struct {
		event.Event
		DisplayStatus      event.DisplayStatus `json:"display_status"`
		Excerpt            string              `json:"excerpt"`
		ProgressPercentage int                 `json:"progress_percentage"`
		ProgressClass      string              `json:"progress_class"`
		RemainingSpots     event.Remaining     `json:"remaining_spots"`
		StartsIn           string              `json:"starts_in"`
		TicketPriceDisplay string              `json:"ticket_price_display"`
	}

	// EventDetailPayload decorates the detail view the same way; the
	// fundraising and capacity fields already come derived off the service.
	EventDetailPayload struct {
		event.EventDetail
		DisplayStatus      event.DisplayStatus `json:"display_status"`
		ProgressClass      string              `json:"progress_class"`
		StartsIn           string              `json:"starts_in"`
		TicketPriceDisplay string              `json:"ticket_price_display"`
	}
)

func newEventPayload(evt event.Event, now time.Time) EventPayload {
	progress := event.ProgressPercentage(evt.CurrentRaised, evt.FundraisingGoal)
	return EventPayload{
		Event:              evt,
		DisplayStatus:      event.StatusOf(evt.StatusID, evt.StartsAt, evt.EndsAt, now),
		Excerpt:            event.TruncateText(evt.ShortDescription.String, excerptLength),
		ProgressPercentage: progress,
		ProgressClass:      event.ProgressBarClass(progress),
		RemainingSpots:     event.RemainingSpots(evt.MaxAttendees, evt.CurrentAttendees),
		StartsIn:           event.DaysUntil(evt.StartsAt, now),
		TicketPriceDisplay: event.FormatCurrency(evt.TicketPrice),
	}
}

func newEventPayloads(events []event.Event, now time.Time) []EventPayload {
	payloads := make([]EventPayload, 0, len(events))
	for _, evt := range events {
		payloads = append(payloads, newEventPayload(evt, now))
	}
	return payloads
}

func newEventDetailPayload(evt event.EventDetail, now time.Time) EventDetailPayload {
	return EventDetailPayload{
		EventDetail:        evt,
		DisplayStatus:      event.StatusOf(evt.StatusID, evt.StartsAt, evt.EndsAt, now),
		ProgressClass:      event.ProgressBarClass(evt.ProgressPercentage),
		StartsIn:           event.DaysUntil(evt.StartsAt, now),
		TicketPriceDisplay: event.FormatCurrency(evt.TicketPrice),
	}
}
