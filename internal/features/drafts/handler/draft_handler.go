package handler

import (
	"errors"
	"net/http"

	"waste-movements/internal/features/drafts/domain"
	"waste-movements/internal/features/drafts/service"

	"github.com/gofiber/fiber/v2"
)

// DraftHandler handles HTTP requests for draft submissions.
type DraftHandler struct {
	service *service.DraftService
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(s *service.DraftService) *DraftHandler {
	return &DraftHandler{service: s}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// CreateDraftRequest is the payload for creating a draft.
type CreateDraftRequest struct {
	// Reference is the free-text customer reference, bounded length.
	Reference string `json:"reference"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// fail maps the engine's error kinds onto HTTP statuses.
func fail(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	}
	return c.Status(status).JSON(ErrorResponse{Message: err.Error(), RayID: rayID(c)})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Message: "invalid request body",
		RayID:   rayID(c),
	})
}

// CreateDraft godoc
// @Summary Create a draft submission
// @Description Creates an empty draft waste-movement submission with a generated id
// @Tags drafts
// @Accept json
// @Produce json
// @Param request body CreateDraftRequest true "Customer reference"
// @Success 201 {object} domain.DraftSubmission
// @Failure 400 {object} ErrorResponse
// @Router /drafts [post]
func (h *DraftHandler) CreateDraft(c *fiber.Ctx) error {
	var req CreateDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	draft, err := h.service.CreateDraft(c.Context(), req.Reference)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(draft)
}

// GetDrafts godoc
// @Summary List draft submissions
// @Description Lists all in-progress drafts; tombstoned drafts are excluded
// @Tags drafts
// @Produce json
// @Success 200 {array} domain.DraftSubmission
// @Router /drafts [get]
func (h *DraftHandler) GetDrafts(c *fiber.Ctx) error {
	drafts, err := h.service.GetDrafts(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(drafts)
}

// GetDraft godoc
// @Summary Get a draft submission
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} domain.DraftSubmission
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id} [get]
func (h *DraftHandler) GetDraft(c *fiber.Ctx) error {
	draft, err := h.service.GetDraft(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(draft)
}

// DeleteDraft godoc
// @Summary Delete a draft submission
// @Description Tombstones the draft; the record is kept but leaves listings
// @Tags drafts
// @Param id path string true "Draft ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id} [delete]
func (h *DraftHandler) DeleteDraft(c *fiber.Ctx) error {
	if err := h.service.DeleteDraft(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetWasteDescription godoc
// @Summary Get the waste-description section
// @Tags sections
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} domain.WasteDescription
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id}/waste-description [get]
func (h *DraftHandler) GetWasteDescription(c *fiber.Ctx) error {
	section, err := h.service.GetWasteDescription(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// SetWasteDescription godoc
// @Summary Replace the waste-description section
// @Description Applies the waste-description edit including resets of dependent sections
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param section body domain.WasteDescription true "Waste description"
// @Success 200 {object} domain.WasteDescription
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id}/waste-description [put]
func (h *DraftHandler) SetWasteDescription(c *fiber.Ctx) error {
	var value domain.WasteDescription
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetWasteDescription(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// GetWasteQuantity returns the waste-quantity section.
// @Summary Get the waste-quantity section
// @Tags sections
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} domain.WasteQuantity
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id}/waste-quantity [get]
func (h *DraftHandler) GetWasteQuantity(c *fiber.Ctx) error {
	section, err := h.service.GetWasteQuantity(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// SetWasteQuantity replaces the waste-quantity section.
// @Summary Replace the waste-quantity section
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param section body domain.WasteQuantity true "Waste quantity"
// @Success 200 {object} domain.WasteQuantity
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id}/waste-quantity [put]
func (h *DraftHandler) SetWasteQuantity(c *fiber.Ctx) error {
	var value domain.WasteQuantity
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetWasteQuantity(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// GetExporterDetail returns the exporter section.
func (h *DraftHandler) GetExporterDetail(c *fiber.Ctx) error {
	section, err := h.service.GetExporterDetail(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// SetExporterDetail replaces the exporter section.
func (h *DraftHandler) SetExporterDetail(c *fiber.Ctx) error {
	var value domain.ExporterDetail
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetExporterDetail(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// GetImporterDetail returns the importer section.
func (h *DraftHandler) GetImporterDetail(c *fiber.Ctx) error {
	section, err := h.service.GetImporterDetail(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// SetImporterDetail replaces the importer section.
func (h *DraftHandler) SetImporterDetail(c *fiber.Ctx) error {
	var value domain.ImporterDetail
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetImporterDetail(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// GetCollectionDate returns the collection-date section.
func (h *DraftHandler) GetCollectionDate(c *fiber.Ctx) error {
	section, err := h.service.GetCollectionDate(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// SetCollectionDate replaces the collection-date section.
func (h *DraftHandler) SetCollectionDate(c *fiber.Ctx) error {
	var value domain.CollectionDate
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetCollectionDate(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// GetCollectionDetail returns the collection-detail section.
func (h *DraftHandler) GetCollectionDetail(c *fiber.Ctx) error {
	section, err := h.service.GetCollectionDetail(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// SetCollectionDetail replaces the collection-detail section.
func (h *DraftHandler) SetCollectionDetail(c *fiber.Ctx) error {
	var value domain.CollectionDetail
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetCollectionDetail(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// GetExitLocation returns the UK exit-location section.
func (h *DraftHandler) GetExitLocation(c *fiber.Ctx) error {
	section, err := h.service.GetExitLocation(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// SetExitLocation replaces the UK exit-location section.
func (h *DraftHandler) SetExitLocation(c *fiber.Ctx) error {
	var value domain.UKExitLocation
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetExitLocation(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// GetTransitCountries returns the transit-countries section.
func (h *DraftHandler) GetTransitCountries(c *fiber.Ctx) error {
	section, err := h.service.GetTransitCountries(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// SetTransitCountries replaces the transit-countries section.
func (h *DraftHandler) SetTransitCountries(c *fiber.Ctx) error {
	var value domain.TransitCountries
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetTransitCountries(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}
