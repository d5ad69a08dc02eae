package event

import (
	"fmt"
	"math"
	"time"

	"github.com/volatiletech/null/v8"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// This file is the single authoritative implementation of every derived
// display value. Both the detail composition (service) and the listing
// response shaping (API) call into it; there is no parallel copy to drift.

// DisplayStatus is the presentation status of an event at a point in time.
type DisplayStatus struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Class  string `json:"class"`
}

var (
	statusSuspended = DisplayStatus{Status: "suspended", Label: "Suspended", Class: "status-suspended"}
	statusCancelled = DisplayStatus{Status: "cancelled", Label: "Cancelled", Class: "status-suspended"}
	statusPast      = DisplayStatus{Status: "past", Label: "Past Event", Class: "status-past"}
	statusActive    = DisplayStatus{Status: "active", Label: "Active Now", Class: "status-active"}
	statusUpcoming  = DisplayStatus{Status: "upcoming", Label: "Upcoming", Class: "status-upcoming"}
)

// StatusOf derives the display status from the stored status code and the
// event timestamps. Evaluation order matters: explicit suspension or
// cancellation always wins over time-based inference, and "past" is
// checked before "active". Total over any inputs.
func StatusOf(statusID int, startsAt, endsAt, now time.Time) DisplayStatus {
	switch statusID {
	case StatusSuspended:
		return statusSuspended
	case StatusCancelled:
		return statusCancelled
	}
	if endsAt.Before(now) {
		return statusPast
	}
	if !startsAt.After(now) { // startsAt <= now <= endsAt
		return statusActive
	}
	return statusUpcoming
}

// ProgressPercentage is round(raised/goal*100); 0 whenever no goal is
// tracked (NULL or 0), never a division error.
func ProgressPercentage(raised float64, goal null.Float64) int {
	if !goal.Valid || goal.Float64 <= 0 {
		return 0
	}
	return int(math.Round(raised / goal.Float64 * 100))
}

// Remaining is the seats left for an event; Unlimited when no capacity is
// set. Over-capacity data yields a negative count, surfaced as-is since
// clamping policy belongs upstream.
type Remaining struct {
	Unlimited bool
	Spots     int
}

func (r Remaining) MarshalJSON() ([]byte, error) {
	if r.Unlimited {
		return []byte(`"unlimited"`), nil
	}
	return []byte(fmt.Sprintf("%d", r.Spots)), nil
}

func RemainingSpots(maxAttendees null.Int, currentAttendees int) Remaining {
	if !maxAttendees.Valid {
		return Remaining{Unlimited: true}
	}
	return Remaining{Spots: int(maxAttendees.Int) - currentAttendees}
}

// TruncateText shortens s to at most max characters, appending an ellipsis.
func TruncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// DaysUntil phrases how far away an event start is.
func DaysUntil(startsAt, now time.Time) string {
	days := int(math.Ceil(startsAt.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return "Event has passed"
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	}
	return fmt.Sprintf("%d days", days)
}

// ProgressBarClass buckets a progress percentage into a display class.
func ProgressBarClass(percentage int) string {
	switch {
	case percentage >= 100:
		return "progress-green"
	case percentage >= 75:
		return "progress-blue"
	case percentage >= 50:
		return "progress-yellow"
	case percentage >= 25:
		return "progress-orange"
	}
	return "progress-red"
}

var currencyPrinter = message.NewPrinter(language.MustParse("en-AU"))

// FormatCurrency renders an AUD amount for display.
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("%v", currency.Symbol(currency.AUD.Amount(amount)))
}
