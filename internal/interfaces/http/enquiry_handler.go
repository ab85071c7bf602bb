package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/upl-snipe/partner-api/internal/application/dto"
	"github.com/upl-snipe/partner-api/internal/application/workflow"
)

// EnquiryHandler maneja las solicitudes de franquicia y su flujo de aprobación.
type EnquiryHandler struct {
	uc *workflow.UseCase
}

// NewEnquiryHandler construye el handler del motor de aprobación.
func NewEnquiryHandler(uc *workflow.UseCase) *EnquiryHandler {
	return &EnquiryHandler{uc: uc}
}

func actorFrom(c *fiber.Ctx) workflow.Actor {
	return workflow.Actor{ID: GetUserID(c), Role: GetRole(c)}
}

// Submit godoc
// @Summary      Enviar solicitud de franquicia (público)
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitEnquiryRequest  true  "datos del interesado"
// @Success      201   {object}  dto.EnquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/enquiries [post]
func (h *EnquiryHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitEnquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SubmitEnquiry(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes según la etapa del rol
// @Tags         enquiries
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "filtro por estado (solo admin)"
// @Param        limit   query  int     false  "máx. filas (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}   dto.EnquiryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/enquiries [get]
func (h *EnquiryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.ListEnquiries(c.Context(), actorFrom(c), c.Query("status"), page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Consultar una solicitud
// @Tags         enquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la solicitud"
// @Success      200  {object}  dto.EnquiryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/enquiries/{id} [get]
func (h *EnquiryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetEnquiry(c.Context(), actorFrom(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// HRDecision godoc
// @Summary      Decisión de HR sobre una solicitud pendiente
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string               true  "id de la solicitud"
// @Param        body  body  dto.DecisionRequest  true  "action: approve|reject"
// @Success      200   {object}  dto.EnquiryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/enquiries/{id}/hr-decision [post]
func (h *EnquiryHandler) HRDecision(c *fiber.Ctx) error {
	var in dto.DecisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordHRDecision(c.Context(), actorFrom(c), c.Params("id"), in.Action, in.Notes)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// OperationalDecision godoc
// @Summary      Decisión final del Operational Head (aprueba y aprovisiona)
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string               true  "id de la solicitud"
// @Param        body  body  dto.DecisionRequest  true  "action: approve|reject"
// @Success      200   {object}  dto.OperationalDecisionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/enquiries/{id}/operational-decision [post]
func (h *EnquiryHandler) OperationalDecision(c *fiber.Ctx) error {
	var in dto.DecisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordOperationalDecision(c.Context(), actorFrom(c), c.Params("id"), in.Action, in.Notes)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// CreateManual godoc
// @Summary      Alta manual de socio por HR (queda esperando aprobación final)
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateManualPartnerRequest  true  "datos del socio y rol"
// @Success      201   {object}  dto.EnquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/enquiries/manual [post]
func (h *EnquiryHandler) CreateManual(c *fiber.Ctx) error {
	var in dto.CreateManualPartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateManualPartnerRequest(c.Context(), actorFrom(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
