package echoapi

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/charityevents/core"
	"github.com/trezcool/charityevents/core/event"
)

func Test_eventApi_query(t *testing.T) {
	app := setup(t)
	now := time.Now().UTC()

	recent := createEvent(t, "Winter Appeal Concert", event.StatusActive, now.Add(-2*time.Hour))
	cleanup := createEvent(t, "Beach Cleanup", event.StatusActive, now.Add(72*time.Hour))
	funRun := createEvent(t, "Community Fun Run", event.StatusScheduled, now.Add(150*time.Hour))
	gala := createEvent(t, "Charity Gala", event.StatusReady, now.Add(300*time.Hour))

	// never listed
	createEvent(t, "Old Food Drive", event.StatusActive, now.Add(-72*time.Hour))
	createEvent(t, "Suspended Expo", event.StatusSuspended, now.Add(96*time.Hour))
	createEvent(t, "Cancelled Walkathon", event.StatusCancelled, now.Add(96*time.Hour))

	listed := []event.Event{recent.Event, cleanup.Event, funRun.Event, gala.Event}
	tt := httpTest{
		name:     "listing is eligible events only, soonest first",
		method:   http.MethodGet,
		path:     "/api/events",
		wantCode: http.StatusOK,
		wantData: marchallObj(t, newListResponse(newEventPayloads(listed, now), len(listed))),
	}

	t.Run(tt.name, func(t *testing.T) {
		req, rec := newRequest(tt.method, tt.path)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}

func Test_eventApi_search(t *testing.T) {
	app := setup(t)
	now := time.Now().UTC()

	cleanup := createEvent(t, "Beach Cleanup", event.StatusActive, now.Add(48*time.Hour),
		func(evt *event.EventDetail) {
			evt.Location = "Bondi Beach, Sydney"
			evt.CategoryID = null.IntFrom(1)
		})
	gala := createEvent(t, "Charity Gala", event.StatusScheduled, now.Add(200*time.Hour),
		func(evt *event.EventDetail) {
			evt.Location = "Melbourne Town Hall"
			evt.CategoryID = null.IntFrom(2)
		})

	// not searchable
	createEvent(t, "Ready Fair", event.StatusReady, now.Add(100*time.Hour))
	createEvent(t, "Cancelled Walkathon", event.StatusCancelled, now.Add(100*time.Hour))

	cleanupDate := cleanup.StartsAt.Format("2006-01-02")

	searchData := func(filter event.SearchFilter, events ...event.Event) []byte {
		return marchallObj(t, SearchResponse{
			ListResponse: newListResponse(newEventPayloads(events, now), len(events)),
			Filters:      filter,
		})
	}
	errData := func(fldErrs ...core.FieldError) []byte {
		return marchallObj(t, ErrorResponse{Error: errValidationFailed, Errors: fldErrs})
	}

	tests := []httpTest{
		{
			name:     "no filters returns all searchable events",
			path:     "/api/events/search",
			wantCode: http.StatusOK,
			wantData: searchData(event.SearchFilter{}, cleanup.Event, gala.Event),
		},
		{
			name:     "date filter matches the calendar day",
			path:     "/api/events/search?date=" + cleanupDate,
			wantCode: http.StatusOK,
			wantData: searchData(event.SearchFilter{Date: cleanupDate}, cleanup.Event),
		},
		{
			name:     "location filter is a case-insensitive partial match",
			path:     "/api/events/search?location=bondi",
			wantCode: http.StatusOK,
			wantData: searchData(event.SearchFilter{Location: "bondi"}, cleanup.Event),
		},
		{
			name:     "category filter matches by id",
			path:     "/api/events/search?category=2",
			wantCode: http.StatusOK,
			wantData: searchData(event.SearchFilter{Category: "2"}, gala.Event),
		},
		{
			name:     "category all behaves like no category filter",
			path:     "/api/events/search?category=all",
			wantCode: http.StatusOK,
			wantData: searchData(event.SearchFilter{Category: "all"}, cleanup.Event, gala.Event),
		},
		{
			name:     "filters combine conjunctively",
			path:     "/api/events/search?date=" + cleanupDate + "&location=sydney&category=1",
			wantCode: http.StatusOK,
			wantData: searchData(event.SearchFilter{Date: cleanupDate, Location: "sydney", Category: "1"}, cleanup.Event),
		},
		{
			name:     "no match yields an empty result, not an error",
			path:     "/api/events/search?location=melbourne&category=1",
			wantCode: http.StatusOK,
			wantData: searchData(event.SearchFilter{Location: "melbourne", Category: "1"}),
		},
		{
			name:     "malformed date is rejected",
			path:     "/api/events/search?date=20-12-2025",
			wantCode: http.StatusBadRequest,
			wantData: errData(core.FieldError{
				Field: "date", Error: "must be a valid date in YYYY-MM-DD format", Value: "20-12-2025",
			}),
		},
		{
			name:     "too-short location is rejected",
			path:     "/api/events/search?location=x",
			wantCode: http.StatusBadRequest,
			wantData: errData(core.FieldError{
				Field: "location", Error: "location must be at least 2 characters in length", Value: "x",
			}),
		},
		{
			name:     "non-positive category is rejected",
			path:     "/api/events/search?category=0",
			wantCode: http.StatusBadRequest,
			wantData: errData(core.FieldError{
				Field: "category", Error: "must be a positive integer or \"all\"", Value: "0",
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_eventApi_retrieve(t *testing.T) {
	app := setup(t)
	now := time.Now().UTC()

	tags := []event.Tag{
		{ID: 1, Name: "family-friendly", ColorCode: null.StringFrom("#2e7d32")},
		{ID: 2, Name: "outdoors", ColorCode: null.StringFrom("#0277bd")},
	}
	overbooked := createEvent(t, "Beach Cleanup", event.StatusActive, now.Add(48*time.Hour),
		func(evt *event.EventDetail) {
			evt.ShortDescription = null.StringFrom("A morning tidying up the shoreline.")
			evt.TicketPrice = 25
			evt.MaxAttendees = null.IntFrom(100)
			evt.CurrentAttendees = 130
			evt.FundraisingGoal = null.Float64From(500)
			evt.CurrentRaised = 250
			evt.FullDescription = null.StringFrom("Gloves and bags provided; bring sunscreen.")
			evt.IsFeatured = true
			evt.Tags = tags
		})
	unlimited := createEvent(t, "Open Day", event.StatusScheduled, now.Add(96*time.Hour))

	// what the service hands back: tags attached, derived fields filled in
	wantOverbooked := overbooked
	wantOverbooked.ProgressPercentage = 50
	wantOverbooked.RemainingSpots = event.Remaining{Spots: -30}
	wantUnlimited := unlimited
	wantUnlimited.Tags = []event.Tag{}
	wantUnlimited.RemainingSpots = event.Remaining{Unlimited: true}

	detailData := func(evt event.EventDetail) []byte {
		return marchallObj(t, DetailResponse{Success: true, Data: newEventDetailPayload(evt, now)})
	}

	tests := []httpTest{
		{
			name:     "non-integer id is rejected",
			path:     "/api/events/abc",
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, ErrorResponse{Error: errValidationFailed, Errors: []core.FieldError{
				{Field: "id", Error: "must be a positive integer", Value: "abc"},
			}}),
		},
		{
			name:     "non-positive id is rejected",
			path:     "/api/events/0",
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, ErrorResponse{Error: errValidationFailed, Errors: []core.FieldError{
				{Field: "id", Error: "must be a positive integer", Value: "0"},
			}}),
		},
		{
			name:     "unknown id is a distinct not-found",
			path:     "/api/events/999",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, ErrorResponse{Error: "Event not found"}),
		},
		{
			name:     "detail carries tags and derived fields, over-capacity unclamped",
			path:     "/api/events/" + strconv.Itoa(overbooked.ID),
			wantCode: http.StatusOK,
			wantData: detailData(wantOverbooked),
		},
		{
			name:     "no capacity set means unlimited spots",
			path:     "/api/events/" + strconv.Itoa(unlimited.ID),
			wantCode: http.StatusOK,
			wantData: detailData(wantUnlimited),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_eventApi_featured(t *testing.T) {
	app := setup(t)
	now := time.Now().UTC()

	var future []event.Event
	names := []string{
		"Beach Cleanup", "Community Fun Run", "Charity Gala", "Winter Appeal Concert",
		"Bake Sale Bonanza", "River Paddle Challenge", "Art For Aid", "Trivia Night",
	}
	for i, name := range names {
		evt := createEvent(t, name, event.StatusActive, now.Add(time.Duration(i+1)*24*time.Hour))
		future = append(future, evt.Event)
	}

	// never featured: already started, or not in the active status
	createEvent(t, "Old Food Drive", event.StatusActive, now.Add(-48*time.Hour))
	createEvent(t, "Planned Expo", event.StatusScheduled, now.Add(24*time.Hour))

	want := future[:6]
	tt := httpTest{
		name:     "featured is capped at the six soonest active future events",
		method:   http.MethodGet,
		path:     "/api/events/featured/upcoming",
		wantCode: http.StatusOK,
		wantData: marchallObj(t, newListResponse(newEventPayloads(want, now), len(want))),
	}

	t.Run(tt.name, func(t *testing.T) {
		req, rec := newRequest(tt.method, tt.path)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}
