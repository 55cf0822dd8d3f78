package handler

import (
	"net/http"

	"github.com/Carbyfah/magic-sub005/internal/apierror"
	"github.com/Carbyfah/magic-sub005/internal/dto"
	"github.com/Carbyfah/magic-sub005/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservasHandler struct{ svc service.ReservaService }

func NewReservasHandler(svc service.ReservaService) *ReservasHandler {
	return &ReservasHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear reserva
// @Description  Registra una reserva contra una salida de ruta o de tour. En rutas se verifica la capacidad del vehículo de forma atómica; el sobrecupo responde 409 con los números exactos de asientos.
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearReservaRequest true "Datos de la reserva"
// @Success      201  {object} dto.ReservaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.CapacidadError
// @Router       /v1/reservas [post]
func (h *ReservasHandler) Crear(c *gin.Context) {
	var req dto.CrearReservaRequest
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

// Obtener godoc
// @Summary      Obtener reserva por ID
// @Description  Incluye el escenario de liquidación clasificado.
// @Tags         reservas
// @Produce      json
// @Param        id path string true "UUID de la reserva"
// @Success      200  {object} dto.ReservaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/reservas/{id} [get]
func (h *ReservasHandler) Obtener(c *gin.Context) {
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
// @Summary      Actualizar reserva
// @Description  Cambios de pasajeros recalculan el precio salvo cobro manual, y re-verifican capacidad en rutas.
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Param        id   path string                       true "UUID de la reserva"
// @Param        body body dto.ActualizarReservaRequest true "Campos a actualizar"
// @Success      200  {object} dto.ReservaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.CapacidadError
// @Router       /v1/reservas/{id} [put]
func (h *ReservasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarReservaRequest
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

// Anular godoc
// @Summary      Anular reserva
// @Description  Cancela la reserva (borrado lógico): deja de contar para capacidad e ingresos pero queda para auditoría.
// @Tags         reservas
// @Param        id path string true "UUID de la reserva"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reservas/{id} [delete]
func (h *ReservasHandler) Anular(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Anular(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
