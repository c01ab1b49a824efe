package handler

import (
	"net/http"

	"waste-movements/internal/features/drafts/domain"

	"github.com/gofiber/fiber/v2"
)

// GetCarriers godoc
// @Summary Get the carriers section
// @Tags carriers
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} domain.Carriers
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id}/carriers [get]
func (h *DraftHandler) GetCarriers(c *fiber.Ctx) error {
	section, err := h.service.GetCarriers(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// CreateCarrier godoc
// @Summary Create a carrier entry
// @Description Appends a blank carrier entry with a generated id; the payload must carry status Started
// @Tags carriers
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param section body domain.Carriers true "Carriers section with status Started"
// @Success 201 {object} domain.Carriers
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id}/carriers [post]
func (h *DraftHandler) CreateCarrier(c *fiber.Ctx) error {
	var value domain.Carriers
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.CreateCarrier(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(section)
}

// GetCarrier godoc
// @Summary Get one carrier entry
// @Tags carriers
// @Produce json
// @Param id path string true "Draft ID"
// @Param carrierId path string true "Carrier ID"
// @Success 200 {object} domain.Carriers
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id}/carriers/{carrierId} [get]
func (h *DraftHandler) GetCarrier(c *fiber.Ctx) error {
	section, err := h.service.GetCarrier(c.Context(), c.Params("id"), c.Params("carrierId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// SetCarrier godoc
// @Summary Replace one carrier entry
// @Description Replaces the entry matching the id; status NotStarted resets the whole section
// @Tags carriers
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param carrierId path string true "Carrier ID"
// @Param section body domain.Carriers true "Carriers section"
// @Success 200 {object} domain.Carriers
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id}/carriers/{carrierId} [put]
func (h *DraftHandler) SetCarrier(c *fiber.Ctx) error {
	var value domain.Carriers
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetCarrier(c.Context(), c.Params("id"), c.Params("carrierId"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// DeleteCarrier godoc
// @Summary Delete one carrier entry
// @Tags carriers
// @Param id path string true "Draft ID"
// @Param carrierId path string true "Carrier ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{id}/carriers/{carrierId} [delete]
func (h *DraftHandler) DeleteCarrier(c *fiber.Ctx) error {
	if err := h.service.DeleteCarrier(c.Context(), c.Params("id"), c.Params("carrierId")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetRecoveryFacilities returns the recovery-facility section.
func (h *DraftHandler) GetRecoveryFacilities(c *fiber.Ctx) error {
	section, err := h.service.GetRecoveryFacilities(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// CreateRecoveryFacility appends a blank facility entry.
func (h *DraftHandler) CreateRecoveryFacility(c *fiber.Ctx) error {
	var value domain.RecoveryFacilityDetail
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.CreateRecoveryFacility(c.Context(), c.Params("id"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(section)
}

// GetRecoveryFacility returns one facility entry.
func (h *DraftHandler) GetRecoveryFacility(c *fiber.Ctx) error {
	section, err := h.service.GetRecoveryFacility(c.Context(), c.Params("id"), c.Params("facilityId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// SetRecoveryFacility replaces one facility entry.
func (h *DraftHandler) SetRecoveryFacility(c *fiber.Ctx) error {
	var value domain.RecoveryFacilityDetail
	if err := c.BodyParser(&value); err != nil {
		return badBody(c)
	}
	section, err := h.service.SetRecoveryFacility(c.Context(), c.Params("id"), c.Params("facilityId"), value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(section)
}

// DeleteRecoveryFacility removes one facility entry.
func (h *DraftHandler) DeleteRecoveryFacility(c *fiber.Ctx) error {
	if err := h.service.DeleteRecoveryFacility(c.Context(), c.Params("id"), c.Params("facilityId")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
