package services

import (
	"html"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/doae178/job-landing-page/internal/models"
)

// FieldValidator sanitizes and validates the textual form fields. It is a
// pure transformation: either the cleaned triple comes back, or every
// failing field is reported at once.
type FieldValidator interface {
	Validate(name, email, phone string) (*models.ApplicantFields, models.ValidationErrors)
}

type fieldValidator struct {
	validate *validator.Validate
}

func NewFieldValidator() FieldValidator {
	return &fieldValidator{
		validate: validator.New(),
	}
}

func (v *fieldValidator) Validate(name, email, phone string) (*models.ApplicantFields, models.ValidationErrors) {
	var errs models.ValidationErrors

	name = html.EscapeString(strings.TrimSpace(name))
	if name == "" {
		errs = append(errs, models.FieldError{Field: "name", Message: "name must not be empty"})
	}

	email = strings.TrimSpace(email)
	if err := v.validate.Var(email, "required,email"); err != nil {
		errs = append(errs, models.FieldError{Field: "email", Message: "email must be a valid email address"})
	} else {
		email = normalizeEmail(email)
	}

	phone = html.EscapeString(strings.TrimSpace(phone))
	if phone == "" {
		errs = append(errs, models.FieldError{Field: "phone", Message: "phone must not be empty"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.ApplicantFields{
		Name:  name,
		Email: email,
		Phone: phone,
	}, nil
}

// Providers that ignore dots in the local part, so jane.doe and janedoe
// collapse to the same canonical address.
var dotInsensitiveDomains = map[string]bool{
	"gmail.com":      true,
	"googlemail.com": true,
}

func normalizeEmail(email string) string {
	email = strings.ToLower(email)

	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	local, domain := email[:at], email[at+1:]
	if dotInsensitiveDomains[domain] {
		local = strings.ReplaceAll(local, ".", "")
		domain = "gmail.com"
	}

	return local + "@" + domain
}
