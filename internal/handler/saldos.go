package handler

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/erickbalderas17/rastro-pollos/internal/dto"
	"github.com/erickbalderas17/rastro-pollos/internal/service"

	"github.com/gin-gonic/gin"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SaldosHandler struct{ svc service.SaldoService }

func NewSaldosHandler(svc service.SaldoService) *SaldosHandler {
	return &SaldosHandler{svc: svc}
}

// Listar godoc
// @Summary      Saldo de cada cliente
// @Tags         saldos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.SaldoItem
// @Router       /v1/saldos [get]
func (h *SaldosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Saldos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EstadoCuenta godoc
// @Summary      Estado de cuenta con saldo corrido
// @Tags         saldos
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID del cliente"
// @Success      200  {object} dto.EstadoCuentaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/clientes/{id}/estado-cuenta [get]
func (h *SaldosHandler) EstadoCuenta(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.EstadoCuenta(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Ajuste godoc
// @Summary      Ajuste manual de saldo
// @Tags         saldos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID del cliente"
// @Param        body body dto.AjusteRequest true "Monto con signo"
// @Success      201  {object} dto.MovimientoResponse
// @Failure      404  {object} apierror.APIError
// @Failure      422  {object} apierror.APIError
// @Router       /v1/clientes/{id}/ajustes [post]
func (h *SaldosHandler) Ajuste(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.AjusteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Ajuste(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Pago godoc
// @Summary      Abono del cliente
// @Tags         saldos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID del cliente"
// @Param        body body dto.PagoClienteRequest true "Monto recibido"
// @Success      201  {object} dto.MovimientoResponse
// @Failure      404  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/clientes/{id}/pagos [post]
func (h *SaldosHandler) Pago(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.PagoClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Pago(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ExportarXLSX godoc
// @Summary      Estado de cuenta en Excel
// @Tags         saldos
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        id path int true "ID del cliente"
// @Success      200  {file} binary
// @Failure      404  {object} apierror.APIError
// @Router       /v1/clientes/{id}/estado-cuenta.xlsx [get]
func (h *SaldosHandler) ExportarXLSX(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	data, err := h.svc.ExportarXLSX(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="estado_cuenta_%d.xlsx"`, id))
	c.Data(http.StatusOK, mimeXLSX, data)
}

// ExportarPDF godoc
// @Summary      Estado de cuenta en PDF
// @Tags         saldos
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path int true "ID del cliente"
// @Success      200  {file} binary
// @Failure      404  {object} apierror.APIError
// @Router       /v1/clientes/{id}/estado-cuenta.pdf [get]
func (h *SaldosHandler) ExportarPDF(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	path, err := h.svc.ExportarPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// Enviar queues the statement for delivery; 202 means accepted, not sent.
//
// @Summary      Enviar el estado de cuenta por correo
// @Tags         saldos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID del cliente"
// @Param        body body dto.EnviarEstadoCuentaRequest true "Destinatario"
// @Success      202
// @Failure      404  {object} apierror.APIError
// @Failure      503  {object} apierror.APIError
// @Router       /v1/clientes/{id}/estado-cuenta/enviar [post]
func (h *SaldosHandler) Enviar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.EnviarEstadoCuentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarPorCorreo(c.Request.Context(), id, req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"encolado": true, "email": req.Email})
}
