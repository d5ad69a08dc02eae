package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/charityevents/core/category"
)

type categoryApi struct {
	svc *category.Service
}

func registerCategoryAPI(g *echo.Group, svc *category.Service) {
	api := categoryApi{svc: svc}
	g.GET("/categories", api.query)
}

func (api *categoryApi) query(ctx echo.Context) error {
	categories, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying categories")
	}
	return ctx.JSON(http.StatusOK, newListResponse(categories, len(categories)))
}
