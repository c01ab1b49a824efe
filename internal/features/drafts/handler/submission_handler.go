package handler

import (
	"waste-movements/internal/features/drafts/domain"

	"github.com/gofiber/fiber/v2"
)

// GetSubmissionConfirmation returns the confirmation section.
func (h *DraftHandler) GetSubmissionConfirmation(c *fiber.Ctx) error {
	section, err := h.service.GetSubmissionConfirmation(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// SetSubmissionConfirmation godoc
// @Summary Confirm a draft submission
// @Description Applies the check-your-answers action; an invalid collection date resets that section and fails
// @Tags submission
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param section body domain.SubmissionConfirmation true "Confirmation"
// @Success 200 {object} domain.SubmissionConfirmation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id}/submission-confirmation [put]
func (h *DraftHandler) SetSubmissionConfirmation(c *fiber.Ctx) error {
	var value domain.SubmissionConfirmation
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetSubmissionConfirmation(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// GetSubmissionDeclaration returns the declaration section.
func (h *DraftHandler) GetSubmissionDeclaration(c *fiber.Ctx) error {
	section, err := h.service.GetSubmissionDeclaration(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// SetSubmissionDeclaration godoc
// @Summary Declare a draft submission
// @Description Completing the declaration stamps the transaction id and migrates the draft into the submission history
// @Tags submission
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param section body domain.SubmissionDeclaration true "Declaration"
// @Success 200 {object} domain.SubmissionDeclaration
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id}/submission-declaration [put]
func (h *DraftHandler) SetSubmissionDeclaration(c *fiber.Ctx) error {
	var value domain.SubmissionDeclaration
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetSubmissionDeclaration(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// GetSubmissions lists submitted records.
func (h *DraftHandler) GetSubmissions(c *fiber.Ctx) error {
	submissions, err := h.service.GetSubmissions(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(submissions)
}

// GetSubmission returns one submitted record.
func (h *DraftHandler) GetSubmission(c *fiber.Ctx) error {
	submission, err := h.service.GetSubmission(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(submission)
}

// CancelSubmission godoc
// @Summary Cancel a submitted record
// @Tags submission
// @Accept json
// @Param id path string true "Submission ID"
// @Param cancellation body domain.CancellationType true "Cancellation reason"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /submissions/{id}/cancel [put]
func (h *DraftHandler) CancelSubmission(c *fiber.Ctx) error {
	var cancellation domain.CancellationType
	if err := c.BodyParser(&cancellation); err != nil {
		return badBody(c)
	}
	if err := h.service.CancelSubmission(c.Context(), c.Params("id"), cancellation); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetSubmissionCollectionDate updates the collection date on a submitted
// record, moving it from estimate to actual.
func (h *DraftHandler) SetSubmissionCollectionDate(c *fiber.Ctx) error {
	var value domain.CollectionDateValue
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetSubmissionCollectionDate(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// SetSubmissionWasteQuantity updates the waste quantity on a submitted
// record, moving it from estimate to actual.
func (h *DraftHandler) SetSubmissionWasteQuantity(c *fiber.Ctx) error {
	var value domain.WasteQuantityValue
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetSubmissionWasteQuantity(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}
