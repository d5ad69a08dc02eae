package sqlxrepos

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"

	"github.com/trezcool/charityevents/core"
	"github.com/trezcool/charityevents/core/event"
)

// listingSelect is the shared projection for every multi-row event query;
// joined display names come along so responses need no follow-up lookups.
const listingSelect = `
SELECT ce.id, ce.name, ce.short_description, ce.event_date, ce.end_date,
       ce.location, ce.ticket_price, ce.max_attendees, ce.current_attendees,
       ce.fundraising_goal, ce.current_raised, ce.image_url, ce.status_id,
       ec.name AS category_name, ec.icon_class,
       os.name AS organization_name,
       es.status_name
FROM charity_events ce
LEFT JOIN event_categories ec ON ce.category_id = ec.id
LEFT JOIN organizations os ON ce.organization_id = os.id
LEFT JOIN event_status es ON ce.status_id = es.id`

const detailSelect = `
SELECT ce.*,
       ec.name AS category_name, ec.icon_class,
       os.name AS organization_name,
       os.description AS organization_description,
       os.mission_statement,
       os.contact_email AS org_contact_email,
       os.contact_phone AS org_contact_phone,
       os.website_url AS org_website_url,
       es.status_name
FROM charity_events ce
LEFT JOIN event_categories ec ON ce.category_id = ec.id
LEFT JOIN organizations os ON ce.organization_id = os.id
LEFT JOIN event_status es ON ce.status_id = es.id
WHERE ce.id = $1`

const tagsSelect = `
SELECT et.id, et.name, et.color_code
FROM event_tags et
INNER JOIN event_tag_relations etr ON et.id = etr.tag_id
WHERE etr.event_id = $1`

var startAsc = core.DBOrdering{Field: "ce.event_date", Ascending: true}

type eventRepository struct {
	db *sqlx.DB
}

var _ event.Repository = (*eventRepository)(nil) // interface compliance check

func NewEventRepository(db *sql.DB) *eventRepository {
	return &eventRepository{db: sqlx.NewDb(db, "postgres")}
}

// trapNoRowsErr maps psql "no rows" err to event.ErrNotFound
func trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return event.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo eventRepository) selectEvents(ctx context.Context, query string, args []interface{}) ([]event.Event, error) {
	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "expanding query placeholders")
	}
	events := make([]event.Event, 0)
	if err := repo.db.SelectContext(ctx, &events, repo.db.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "selecting events")
	}
	return events, nil
}

func (repo eventRepository) QueryListedEvents(ctx context.Context, since time.Time) ([]event.Event, error) {
	query := listingSelect + `
WHERE ce.status_id IN (?) AND ce.event_date >= ?
ORDER BY ` + startAsc.String()
	return repo.selectEvents(ctx, query, []interface{}{event.ListedStatuses, since})
}

// searchConditions composes the conjunctive WHERE clause for a filtered
// search. Predicates are independent; an absent filter field contributes
// none, so it can only ever narrow the result set. Placeholders are in
// sqlx.In form and rebound to the driver's at execution.
func searchConditions(f event.SearchFilter) (string, []interface{}) {
	conds := []string{"ce.status_id IN (?)"}
	args := []interface{}{event.SearchableStatuses}

	if f.Date != "" {
		// match on the calendar date portion only
		conds = append(conds, "ce.event_date::date = ?")
		args = append(args, f.Date)
	}
	if f.Location != "" {
		conds = append(conds, "ce.location ILIKE ?")
		args = append(args, "%"+f.Location+"%")
	}
	if id, ok := f.CategoryID(); ok {
		conds = append(conds, "ce.category_id = ?")
		args = append(args, id)
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (repo eventRepository) SearchEvents(ctx context.Context, filter event.SearchFilter) ([]event.Event, error) {
	where, args := searchConditions(filter)
	query := listingSelect + "\n" + where + "\nORDER BY " + startAsc.String()
	return repo.selectEvents(ctx, query, args)
}

func (repo eventRepository) GetEventByID(ctx context.Context, id int) (event.EventDetail, error) {
	var evt event.EventDetail
	if err := repo.db.GetContext(ctx, &evt, detailSelect, id); err != nil {
		return event.EventDetail{}, trapNoRowsErr(err, "getting event by id")
	}
	return evt, nil
}

func (repo eventRepository) GetEventTags(ctx context.Context, eventID int) ([]event.Tag, error) {
	tags := make([]event.Tag, 0)
	if err := repo.db.SelectContext(ctx, &tags, tagsSelect, eventID); err != nil {
		return nil, errors.Wrap(err, "selecting event tags")
	}
	return tags, nil
}

func (repo eventRepository) QueryFeaturedEvents(ctx context.Context, after time.Time, limit int) ([]event.Event, error) {
	query := listingSelect + `
WHERE ce.status_id = ? AND ce.event_date > ?
ORDER BY ` + startAsc.String() + `
LIMIT ?`
	return repo.selectEvents(ctx, query, []interface{}{event.StatusActive, after, limit})
}
