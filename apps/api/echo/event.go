package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/charityevents/core"
	"github.com/trezcool/charityevents/core/event"
)

type eventApi struct {
	svc      *event.Service
	validate *validator.Validate
}

func registerEventAPI(g *echo.Group, svc *event.Service, validate *validator.Validate) {
	api := eventApi{
		svc:      svc,
		validate: validate,
	}

	eg := g.Group("/events")
	eg.GET("", api.query)
	eg.GET("/search", api.search)
	eg.GET("/featured/upcoming", api.featured)
	eg.GET("/:id", api.retrieve)
}

// Handlers

func (api *eventApi) query(ctx echo.Context) error {
	events, err := api.svc.QueryListed(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying listed events")
	}

	payloads := newEventPayloads(events, time.Now().UTC())
	return ctx.JSON(http.StatusOK, newListResponse(payloads, len(payloads)))
}

func (api *eventApi) search(ctx echo.Context) error {
	var filter event.SearchFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to SearchFilter")
	}
	if err := filter.Validate(api.validate); err != nil {
		return err
	}

	events, err := api.svc.Search(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "searching events")
	}

	payloads := newEventPayloads(events, time.Now().UTC())
	return ctx.JSON(http.StatusOK, SearchResponse{
		ListResponse: newListResponse(payloads, len(payloads)),
		Filters:      filter,
	})
}

func (api *eventApi) retrieve(ctx echo.Context) error {
	rawID := ctx.Param("id")
	id, err := strconv.Atoi(rawID)
	if err != nil || id < 1 {
		return core.NewValidationError(nil, core.FieldError{
			Field: "id",
			Error: "must be a positive integer",
			Value: rawID,
		})
	}

	evt, err := api.svc.GetDetail(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == event.ErrNotFound {
			return errEventNotFound
		}
		return errors.Wrap(err, "getting event detail")
	}

	return ctx.JSON(http.StatusOK, DetailResponse{
		Success: true,
		Data:    newEventDetailPayload(evt, time.Now().UTC()),
	})
}

func (api *eventApi) featured(ctx echo.Context) error {
	events, err := api.svc.QueryFeatured(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying featured events")
	}

	payloads := newEventPayloads(events, time.Now().UTC())
	return ctx.JSON(http.StatusOK, newListResponse(payloads, len(payloads)))
}
