package handler

import (
	"net/http"
	"time"

	"github.com/erickbalderas17/rastro-pollos/internal/dto"
	"github.com/erickbalderas17/rastro-pollos/internal/model"
	"github.com/erickbalderas17/rastro-pollos/internal/service"

	"github.com/gin-gonic/gin"
)

type PreciosHandler struct{ svc service.PrecioService }

func NewPreciosHandler(svc service.PrecioService) *PreciosHandler {
	return &PreciosHandler{svc: svc}
}

// Registrar handles POST /v1/precios. Invalid rows are skipped and counted.
//
// @Summary      Registrar los precios del dia
// @Tags         precios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarPreciosRequest true "Precios"
// @Success      201  {object} dto.RegistrarPreciosResponse
// @Failure      404  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/precios [post]
func (h *PreciosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarPreciosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarDelDia(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Precios registrados para una fecha
// @Tags         precios
// @Produce      json
// @Security     BearerAuth
// @Param        fecha      query string false "YYYY-MM-DD"
// @Param        cliente_id query int    false "ID del cliente"
// @Success      200  {array}  dto.PrecioResponse
// @Router       /v1/precios [get]
func (h *PreciosHandler) Listar(c *gin.Context) {
	var filter dto.PrecioFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resolver handles GET /v1/precios/resolver; precio_por_kg is null when
// no price applies.
//
// @Summary      Precio vigente para un cliente
// @Tags         precios
// @Produce      json
// @Security     BearerAuth
// @Param        producto_id query int    true  "ID del producto"
// @Param        tipo_venta  query string true  "normal, mayoreo o menudeo"
// @Param        cliente_id  query int    false "ID del cliente"
// @Param        fecha       query string false "YYYY-MM-DD"
// @Success      200  {object} dto.PrecioResueltoResponse
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/precios/resolver [get]
func (h *PreciosHandler) Resolver(c *gin.Context) {
	var q dto.ResolverPrecioQuery
	if !bindQuery(c, &q) {
		return
	}
	if q.Fecha == "" {
		q.Fecha = time.Now().Format(model.FormatoFecha)
	}
	precio, err := h.svc.Resolver(c.Request.Context(), q.ClienteID, q.ProductoID, q.Fecha, q.TipoVenta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PrecioResueltoResponse{
		ClienteID:   q.ClienteID,
		ProductoID:  q.ProductoID,
		Fecha:       q.Fecha,
		TipoVenta:   q.TipoVenta,
		PrecioPorKg: precio,
	})
}

// Productos godoc
// @Summary      Catalogo de productos
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ProductoResponse
// @Router       /v1/productos [get]
func (h *PreciosHandler) Productos(c *gin.Context) {
	resp, err := h.svc.ListarProductos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
