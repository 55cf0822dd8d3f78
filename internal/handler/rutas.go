package handler

import (
	"net/http"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/apierror"
	"github.com/Carbyfah/magic-sub005/internal/dto"
	"github.com/Carbyfah/magic-sub005/internal/model"
	"github.com/Carbyfah/magic-sub005/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RutasHandler struct {
	svc         service.RutaService
	liquidacion service.LiquidacionService
}

func NewRutasHandler(svc service.RutaService, liquidacion service.LiquidacionService) *RutasHandler {
	return &RutasHandler{svc: svc, liquidacion: liquidacion}
}

// Crear godoc
// @Summary      Crear ruta
// @Description  Alta de una plantilla de ruta (origen → destino) de una agencia.
// @Tags         rutas
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearRutaRequest true "Datos de la ruta"
// @Success      201  {object} dto.RutaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/rutas [post]
func (h *RutasHandler) Crear(c *gin.Context) {
	var req dto.CrearRutaRequest
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
// @Summary      Listar rutas activas
// @Tags         rutas
// @Produce      json
// @Success      200  {array} dto.RutaResponse
// @Router       /v1/rutas [get]
func (h *RutasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Programar godoc
// @Summary      Programar salida de ruta
// @Description  Crea una salida concreta de una ruta, opcionalmente con vehículo asignado.
// @Tags         rutas
// @Accept       json
// @Produce      json
// @Param        body body dto.ProgramarRutaRequest true "Ruta, vehículo y fecha de salida"
// @Success      201  {object} dto.RutaProgramadaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/rutas/programadas [post]
func (h *RutasHandler) Programar(c *gin.Context) {
	var req dto.ProgramarRutaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Programar(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarProgramadas godoc
// @Summary      Listar salidas programadas
// @Tags         rutas
// @Produce      json
// @Param        fecha query string false "Fecha YYYY-MM-DD"
// @Success      200  {array} dto.RutaProgramadaResponse
// @Router       /v1/rutas/programadas [get]
func (h *RutasHandler) ListarProgramadas(c *gin.Context) {
	var fecha *time.Time
	if raw := c.Query("fecha"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, formato esperado YYYY-MM-DD"))
			return
		}
		fecha = &parsed
	}
	resp, err := h.svc.ListarProgramadas(c.Request.Context(), fecha)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AsignarVehiculo godoc
// @Summary      Asignar vehículo a una salida
// @Description  Fija o cambia el vehículo; la capacidad del guard se deriva de él.
// @Tags         rutas
// @Accept       json
// @Produce      json
// @Param        id   path string                     true "UUID de la salida"
// @Param        body body dto.AsignarVehiculoRequest true "Vehículo"
// @Success      200  {object} dto.RutaProgramadaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/rutas/programadas/{id}/vehiculo [put]
func (h *RutasHandler) AsignarVehiculo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.AsignarVehiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	vehiculoID, err := uuid.Parse(req.VehiculoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de vehiculo invalido"))
		return
	}
	resp, err := h.svc.AsignarVehiculo(c.Request.Context(), id, vehiculoID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CambiarEstado godoc
// @Summary      Cambiar estado de una salida
// @Description  Avanza el ciclo de vida (activada → … → liquidada). Transiciones inválidas se rechazan con 409.
// @Tags         rutas
// @Accept       json
// @Produce      json
// @Param        id   path string                   true "UUID de la salida"
// @Param        body body dto.CambiarEstadoRequest true "Estado destino"
// @Success      204
// @Failure      409  {object} apierror.APIError
// @Router       /v1/rutas/programadas/{id}/estado [put]
func (h *RutasHandler) CambiarEstado(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.liquidacion.CambiarEstado(c.Request.Context(), id, model.EstadoRuta(req.Estado)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegistrarGasto godoc
// @Summary      Registrar gasto de una salida
// @Description  Agrega un gasto operativo (combustible, peajes, viáticos) al reporte de liquidación.
// @Tags         rutas
// @Accept       json
// @Produce      json
// @Param        id   path string                    true "UUID de la salida"
// @Param        body body dto.RegistrarGastoRequest true "Detalle del gasto"
// @Success      201  {object} dto.GastoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/rutas/programadas/{id}/gastos [post]
func (h *RutasHandler) RegistrarGasto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.RegistrarGastoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.liquidacion.RegistrarGasto(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Liquidacion godoc
// @Summary      Reporte de liquidación de una salida
// @Description  Ingresos, gastos, pago de conductor y balance de la salida.
// @Tags         rutas
// @Produce      json
// @Param        id path string true "UUID de la salida"
// @Success      200  {object} dto.LiquidacionResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/rutas/programadas/{id}/liquidacion [get]
func (h *RutasHandler) Liquidacion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.liquidacion.Reporte(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
