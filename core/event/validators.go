package event

import (
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/charityevents/core"
)

var (
	categoryIDTag  = "categoryid"
	categoryIDText = "must be a positive integer or \"all\""
)

// RegisterValidators registers this package's custom validation tags.
func RegisterValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(categoryIDTag, categoryIDValidation)
	core.RegisterCustomTranslation(validate, translator, categoryIDTag, categoryIDText)
}

// categoryIDValidation allows the "all" sentinel or a positive integer.
func categoryIDValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == CategoryAll {
		return true
	}
	id, err := strconv.Atoi(val)
	return err == nil && id >= 1
}

// Validate cleans and validates the filter; it must pass before any query
// is composed.
func (f *SearchFilter) Validate(validate *validator.Validate) error {
	f.Date = core.CleanString(f.Date)
	f.Location = core.CleanString(f.Location)
	f.Category = core.CleanString(f.Category, true /* lower */)
	return validate.Struct(f)
}
