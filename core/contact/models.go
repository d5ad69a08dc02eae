package contact

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/charityevents/core"
)

// Submission is a demo contact-form submission. It is mailed to the site
// inbox and never stored.
type Submission struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

func (s *Submission) Validate(validate *validator.Validate) error {
	s.Name = core.CleanString(s.Name)
	s.Email = core.CleanString(s.Email, true /* lower */)
	s.Subject = core.CleanString(s.Subject)
	s.Message = core.CleanString(s.Message)
	return validate.Struct(s)
}
