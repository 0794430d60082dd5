package handlers

import (
	"errors"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/doae178/job-landing-page/internal/models"
	"github.com/doae178/job-landing-page/internal/services"
)

type ApplyHandler struct {
	submissions services.SubmissionService
}

func NewApplyHandler(submissions services.SubmissionService) *ApplyHandler {
	return &ApplyHandler{submissions: submissions}
}

// HandleApply accepts one application submission and maps the pipeline
// outcome to a response. Caller faults come back as 400 with a message the
// applicant can act on; system faults are logged and come back as a
// generic 500.
func (h *ApplyHandler) HandleApply(c *fiber.Ctx) error {
	req := models.SubmissionRequest{
		Name:           c.FormValue("name"),
		Email:          c.FormValue("email"),
		Phone:          c.FormValue("phone"),
		ChallengeToken: c.FormValue("g-recaptcha-response"),
	}

	var resume *multipart.FileHeader
	if file, err := c.FormFile("resume"); err == nil {
		resume = file
	}

	applicant, err := h.submissions.Submit(c.Context(), req, resume)
	if err != nil {
		return h.writeError(c, err)
	}

	log.Printf("✅ Applicant saved: %s", applicant.ID)

	return c.Status(fiber.StatusOK).SendString("Application submitted successfully!")
}

func (h *ApplyHandler) writeError(c *fiber.Ctx, err error) error {
	if verrs, ok := models.AsValidationErrors(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": verrs,
		})
	}

	switch {
	case errors.Is(err, models.ErrFileMissing),
		errors.Is(err, models.ErrFileTooLarge),
		errors.Is(err, models.ErrFileTypeRejected):
		return c.Status(fiber.StatusBadRequest).SendString("The resume was not uploaded correctly: " + err.Error())
	case errors.Is(err, models.ErrChallengeMissing):
		return c.Status(fiber.StatusBadRequest).SendString("Please complete the reCAPTCHA")
	case errors.Is(err, models.ErrChallengeRejected):
		return c.Status(fiber.StatusBadRequest).SendString("reCAPTCHA verification failed")
	}

	log.Printf("❌ Submission failed: %v", err)

	return c.Status(fiber.StatusInternalServerError).SendString("Server error")
}
