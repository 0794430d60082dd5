package models

import "errors"

// Caller-fault errors. Handlers map these to HTTP 400; anything else that
// comes out of the pipeline is a system fault and maps to HTTP 500.
var (
	ErrFileMissing      = errors.New("no resume file was uploaded")
	ErrFileTooLarge     = errors.New("resume file exceeds the maximum allowed size")
	ErrFileTypeRejected = errors.New("only PDF and Word documents are allowed")

	ErrChallengeMissing  = errors.New("recaptcha response is missing")
	ErrChallengeRejected = errors.New("recaptcha verification failed")
)

// FieldError is one field-level validation failure, shaped for the
// client-facing errors array.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every failing field of one submission, in
// form order. It implements error so the pipeline can return it directly.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	msg := "validation failed:"
	for _, e := range v {
		msg += " " + e.Field + " (" + e.Message + ")"
	}
	return msg
}

// AsValidationErrors unwraps err into a ValidationErrors value, if it is one.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
