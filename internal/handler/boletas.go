package handler

import (
	"net/http"

	"github.com/erickbalderas17/rastro-pollos/internal/dto"
	"github.com/erickbalderas17/rastro-pollos/internal/service"

	"github.com/gin-gonic/gin"
)

type BoletasHandler struct {
	svc    service.BoletaService
	ventas service.VentaService
}

func NewBoletasHandler(svc service.BoletaService, ventas service.VentaService) *BoletasHandler {
	return &BoletasHandler{svc: svc, ventas: ventas}
}

// Crear godoc
// @Summary      Registrar una boleta de pesaje
// @Tags         boletas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearBoletaRequest true "Pesaje"
// @Success      201  {object} dto.BoletaResponse
// @Failure      404  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/boletas [post]
func (h *BoletasHandler) Crear(c *gin.Context) {
	var req dto.CrearBoletaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarAbiertas godoc
// @Summary      Boletas pendientes de cobro
// @Tags         boletas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.BoletaResponse
// @Router       /v1/boletas/abiertas [get]
func (h *BoletasHandler) ListarAbiertas(c *gin.Context) {
	resp, err := h.svc.ListarAbiertas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type cobradasQuery struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=200"`
}

// ListarCobradas godoc
// @Summary      Boletas cobradas, la mas reciente primero
// @Tags         boletas
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximo 200"
// @Success      200  {array}  dto.BoletaCobradaItem
// @Router       /v1/boletas/cobradas [get]
func (h *BoletasHandler) ListarCobradas(c *gin.Context) {
	var q cobradasQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.ventas.ListarCobradas(c.Request.Context(), q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener una boleta con su detalle de cajas
// @Tags         boletas
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID de la boleta"
// @Success      200  {object} dto.BoletaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/boletas/{id} [get]
func (h *BoletasHandler) Obtener(c *gin.Context) {
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

// Cobrar handles POST /v1/boletas/:id/cobrar and answers with the sale.
// A ticket that was already settled yields 409.
//
// @Summary      Cobrar una boleta
// @Tags         boletas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID de la boleta"
// @Param        body body dto.CobrarBoletaRequest true "Tara y metodo de pago"
// @Success      201  {object} dto.VentaResponse
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.APIError
// @Router       /v1/boletas/{id}/cobrar [post]
func (h *BoletasHandler) Cobrar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.CobrarBoletaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Cobrar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
