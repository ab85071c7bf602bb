package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/upl-snipe/partner-api/internal/application/dto"
	"github.com/upl-snipe/partner-api/internal/application/franchise"
)

// FranchiseHandler maneja el perfil de las franquicias aprovisionadas.
type FranchiseHandler struct {
	uc *franchise.UseCase
}

// NewFranchiseHandler construye el handler de franquicias.
func NewFranchiseHandler(uc *franchise.UseCase) *FranchiseHandler {
	return &FranchiseHandler{uc: uc}
}

// GetMine godoc
// @Summary      Franquicia del socio autenticado
// @Tags         franchises
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.FranchiseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/franchises/me [get]
func (h *FranchiseHandler) GetMine(c *fiber.Ctx) error {
	out, err := h.uc.GetMyFranchise(c.Context(), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// SubmitDetails godoc
// @Summary      Completar el perfil de la franquicia (onboarding)
// @Tags         franchises
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SubmitFranchiseDetailsRequest  true  "datos del negocio"
// @Success      200   {object}  dto.FranchiseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/franchises/me/details [put]
func (h *FranchiseHandler) SubmitDetails(c *fiber.Ctx) error {
	var in dto.SubmitFranchiseDetailsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SubmitDetails(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listado administrativo de franquicias
// @Tags         franchises
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máx. filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.FranchiseSummaryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/franchises [get]
func (h *FranchiseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.ListFranchises(c.Context(), page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Consultar una franquicia por id
// @Tags         franchises
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la franquicia"
// @Success      200  {object}  dto.FranchiseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/franchises/{id} [get]
func (h *FranchiseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetFranchise(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
