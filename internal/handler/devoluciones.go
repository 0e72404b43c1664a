package handler

import (
	"net/http"

	"github.com/erickbalderas17/rastro-pollos/internal/dto"
	"github.com/erickbalderas17/rastro-pollos/internal/service"

	"github.com/gin-gonic/gin"
)

type DevolucionesHandler struct{ svc service.DevolucionService }

func NewDevolucionesHandler(svc service.DevolucionService) *DevolucionesHandler {
	return &DevolucionesHandler{svc: svc}
}

// Registrar godoc
// @Summary      Registrar una devolucion
// @Tags         devoluciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearDevolucionRequest true "Devolucion"
// @Success      201  {object} dto.DevolucionResponse
// @Failure      404  {object} apierror.APIError
// @Failure      422  {object} apierror.APIError
// @Router       /v1/devoluciones [post]
func (h *DevolucionesHandler) Registrar(c *gin.Context) {
	var req dto.CrearDevolucionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
