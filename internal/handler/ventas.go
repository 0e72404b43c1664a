package handler

import (
	"fmt"
	"net/http"

	"github.com/erickbalderas17/rastro-pollos/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct {
	svc          service.VentaService
	devoluciones service.DevolucionService
}

func NewVentasHandler(svc service.VentaService, devoluciones service.DevolucionService) *VentasHandler {
	return &VentasHandler{svc: svc, devoluciones: devoluciones}
}

// Obtener godoc
// @Summary      Obtener una venta
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID de la venta"
// @Success      200  {object} dto.VentaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/ventas/{id} [get]
func (h *VentasHandler) Obtener(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Ticket streams the sale's ticket as a PDF download.
//
// @Summary      Ticket de la venta en PDF
// @Tags         ventas
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path int true "ID de la venta"
// @Success      200  {file} binary
// @Failure      404  {object} apierror.APIError
// @Router       /v1/ventas/{id}/ticket.pdf [get]
func (h *VentasHandler) Ticket(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	path, err := h.svc.TicketPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, fmt.Sprintf("ticket_%d.pdf", id))
}

// Devoluciones godoc
// @Summary      Devoluciones de una venta
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID de la venta"
// @Success      200  {array}  dto.DevolucionResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/ventas/{id}/devoluciones [get]
func (h *VentasHandler) Devoluciones(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.devoluciones.ListarPorVenta(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
