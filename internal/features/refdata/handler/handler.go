package handler

import (
	"net/http"

	"waste-movements/internal/features/refdata/service"

	"github.com/gofiber/fiber/v2"
)

// ReferenceDataHandler handles HTTP requests for the regulatory lists.
type ReferenceDataHandler struct {
	service *service.ReferenceDataService
}

// NewReferenceDataHandler creates a new ReferenceDataHandler.
func NewReferenceDataHandler(s *service.ReferenceDataService) *ReferenceDataHandler {
	return &ReferenceDataHandler{service: s}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

func (h *ReferenceDataHandler) fail(c *fiber.Ctx, err error) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   rayID,
	})
}

// GetCountries godoc
// @Summary List countries
// @Tags reference-data
// @Produce json
// @Success 200 {array} domain.Country
// @Router /reference-data/countries [get]
func (h *ReferenceDataHandler) GetCountries(c *fiber.Ctx) error {
	countries, err := h.service.Countries(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(countries)
}

// GetWasteCodes godoc
// @Summary List waste codes grouped by category
// @Tags reference-data
// @Produce json
// @Success 200 {array} domain.WasteCodeGroup
// @Router /reference-data/waste-codes [get]
func (h *ReferenceDataHandler) GetWasteCodes(c *fiber.Ctx) error {
	groups, err := h.service.WasteCodes(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(groups)
}

// GetEWCCodes godoc
// @Summary List European Waste Catalogue codes
// @Tags reference-data
// @Produce json
// @Success 200 {array} domain.EWCCode
// @Router /reference-data/ewc-codes [get]
func (h *ReferenceDataHandler) GetEWCCodes(c *fiber.Ctx) error {
	codes, err := h.service.EWCCodes(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(codes)
}

// GetPops godoc
// @Summary List persistent organic pollutants
// @Tags reference-data
// @Produce json
// @Success 200 {array} domain.Pop
// @Router /reference-data/pops [get]
func (h *ReferenceDataHandler) GetPops(c *fiber.Ctx) error {
	pops, err := h.service.Pops(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(pops)
}
