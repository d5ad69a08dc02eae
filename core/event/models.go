package event

import (
	"strconv"
	"time"

	"github.com/volatiletech/null/v8"
)

// Status codes, as stored in event_status. They control listing
// eligibility and the derived display label.
const (
	StatusActive    = 1
	StatusScheduled = 2
	StatusReady     = 3
	StatusSuspended = 4
	StatusCancelled = 5
)

var (
	// ListedStatuses are eligible for the unfiltered home listing.
	// SearchableStatuses is deliberately narrower: "ready" events surface
	// on the home feed but are not searchable.
	ListedStatuses     = []int{StatusActive, StatusScheduled, StatusReady}
	SearchableStatuses = []int{StatusActive, StatusScheduled}
)

// CategoryAll is the documented sentinel meaning "no category filter";
// it must behave exactly like an absent parameter.
const CategoryAll = "all"

// Event is a charity event row as listed; joined display names included.
type Event struct {
	ID               int          `db:"id" json:"id"`
	Name             string       `db:"name" json:"name"`
	ShortDescription null.String  `db:"short_description" json:"short_description"`
	StartsAt         time.Time    `db:"event_date" json:"event_date"`
	EndsAt           time.Time    `db:"end_date" json:"end_date"`
	Location         string       `db:"location" json:"location"`
	TicketPrice      float64      `db:"ticket_price" json:"ticket_price"`
	MaxAttendees     null.Int     `db:"max_attendees" json:"max_attendees"`
	CurrentAttendees int          `db:"current_attendees" json:"current_attendees"`
	FundraisingGoal  null.Float64 `db:"fundraising_goal" json:"fundraising_goal"`
	CurrentRaised    float64      `db:"current_raised" json:"current_raised"`
	ImageURL         null.String  `db:"image_url" json:"image_url"`
	StatusID         int          `db:"status_id" json:"status_id"`
	CategoryName     null.String  `db:"category_name" json:"category_name"`
	IconClass        null.String  `db:"icon_class" json:"icon_class"`
	OrganizationName null.String  `db:"organization_name" json:"organization_name"`
	StatusName       null.String  `db:"status_name" json:"status_name"`
}

// EventDetail is the single-event view: every event column plus the
// owning organization's profile and the event's tags and derived fields.
type EventDetail struct {
	Event
	FullDescription null.String `db:"full_description" json:"full_description"`
	IsFeatured      bool        `db:"is_featured" json:"is_featured"`
	CategoryID      null.Int    `db:"category_id" json:"category_id"`
	OrganizationID  null.Int    `db:"organization_id" json:"organization_id"`

	OrganizationDescription null.String `db:"organization_description" json:"organization_description"`
	MissionStatement        null.String `db:"mission_statement" json:"mission_statement"`
	OrgContactEmail         null.String `db:"org_contact_email" json:"org_contact_email"`
	OrgContactPhone         null.String `db:"org_contact_phone" json:"org_contact_phone"`
	OrgWebsiteURL           null.String `db:"org_website_url" json:"org_website_url"`

	Tags               []Tag     `db:"-" json:"tags"`
	ProgressPercentage int       `db:"-" json:"progress_percentage"`
	RemainingSpots     Remaining `db:"-" json:"remaining_spots"`
}

type Tag struct {
	ID        int         `db:"id" json:"id"`
	Name      string      `db:"name" json:"name"`
	ColorCode null.String `db:"color_code" json:"color_code"`
}

// SearchFilter holds the optional, conjunctive search parameters.
// An empty field never contributes a predicate.
type SearchFilter struct {
	Date     string `query:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
	Location string `query:"location" json:"location" validate:"omitempty,min=2,max=100"`
	Category string `query:"category" json:"category" validate:"omitempty,categoryid"`
}

// CategoryID reports the category predicate value, if any. The "all"
// sentinel and an absent parameter are both "no filter".
func (f SearchFilter) CategoryID() (int, bool) {
	if f.Category == "" || f.Category == CategoryAll {
		return 0, false
	}
	id, err := strconv.Atoi(f.Category)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
