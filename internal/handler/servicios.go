package handler

import (
	"net/http"

	"github.com/Carbyfah/magic-sub005/internal/apierror"
	"github.com/Carbyfah/magic-sub005/internal/dto"
	"github.com/Carbyfah/magic-sub005/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiciosHandler struct{ svc service.CatalogoService }

func NewServiciosHandler(svc service.CatalogoService) *ServiciosHandler {
	return &ServiciosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear servicio
// @Description  Alta de un servicio del catálogo, ligado a exactamente una ruta o un tour. El precio con descuento se deriva del precio base.
// @Tags         servicios
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearServicioRequest true "Datos del servicio"
// @Success      201  {object} dto.ServicioResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/servicios [post]
func (h *ServiciosHandler) Crear(c *gin.Context) {
	var req dto.CrearServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar servicios activos
// @Tags         servicios
// @Produce      json
// @Success      200  {array} dto.ServicioResponse
// @Router       /v1/servicios [get]
func (h *ServiciosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener servicio por ID
// @Tags         servicios
// @Produce      json
// @Param        id path string true "UUID del servicio"
// @Success      200  {object} dto.ServicioResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/servicios/{id} [get]
func (h *ServiciosHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar servicio
// @Description  Modifica precio base o descuento; el precio con descuento se recalcula siempre.
// @Tags         servicios
// @Accept       json
// @Produce      json
// @Param        id   path string                        true "UUID del servicio"
// @Param        body body dto.ActualizarServicioRequest true "Campos a actualizar"
// @Success      200  {object} dto.ServicioResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/servicios/{id} [put]
func (h *ServiciosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar godoc
// @Summary      Desactivar servicio
// @Tags         servicios
// @Param        id path string true "UUID del servicio"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Router       /v1/servicios/{id} [delete]
func (h *ServiciosHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
