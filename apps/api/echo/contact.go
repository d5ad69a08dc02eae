package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/charityevents/core/contact"
)

type contactApi struct {
	svc      *contact.Service
	validate *validator.Validate
}

func registerContactAPI(g *echo.Group, svc *contact.Service, validate *validator.Validate) {
	api := contactApi{
		svc:      svc,
		validate: validate,
	}
	g.POST("/contact", api.create)
}

func (api *contactApi) create(ctx echo.Context) error {
	var data contact.Submission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Submission")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ref := api.svc.Submit(data)
	return ctx.JSON(http.StatusOK, ContactResponse{
		Success:   true,
		Message:   "Thank you for reaching out. We will get back to you shortly.",
		Reference: ref,
	})
}
