package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/upl-snipe/partner-api/internal/application/agreement"
	"github.com/upl-snipe/partner-api/internal/application/dto"
)

// AgreementHandler maneja la aceptación e impresión del contrato.
type AgreementHandler struct {
	uc *agreement.UseCase
}

// NewAgreementHandler construye el handler del contrato.
func NewAgreementHandler(uc *agreement.UseCase) *AgreementHandler {
	return &AgreementHandler{uc: uc}
}

// Accept godoc
// @Summary      Aceptar el contrato de franquicia
// @Tags         agreement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AcceptAgreementRequest  true  "firma opcional"
// @Success      200   {object}  dto.AgreementStatusResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/agreement/accept [post]
func (h *AgreementHandler) Accept(c *fiber.Ctx) error {
	var in dto.AcceptAgreementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// IP y user-agent se toman de la petición, nunca del cuerpo.
	in.IPAddress = c.IP()
	in.UserAgent = c.Get("User-Agent")

	out, err := h.uc.Accept(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Status godoc
// @Summary      Estado del contrato del socio autenticado
// @Tags         agreement
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AgreementStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agreement/status [get]
func (h *AgreementHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(c.Context(), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar el contrato en PDF
// @Tags         agreement
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  false  "id de la franquicia (solo personal interno)"
// @Success      200  {file}    binary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/agreement/pdf [get]
func (h *AgreementHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadPDF(c.Context(), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
