package handler

import (
	"net/http"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/apierror"
	"github.com/Carbyfah/magic-sub005/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Ocupacion godoc
// @Summary      Ocupación de una salida
// @Description  Asientos ocupados, disponibles y porcentaje de uso de la salida.
// @Tags         reportes
// @Produce      json
// @Param        id path string true "UUID de la salida"
// @Success      200  {object} dto.OcupacionResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/reportes/ocupacion/{id} [get]
func (h *ReportesHandler) Ocupacion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Ocupacion(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// OcupacionPorFecha godoc
// @Summary      Ocupación de las salidas de un día
// @Tags         reportes
// @Produce      json
// @Param        fecha query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Success      200  {array} dto.OcupacionResponse
// @Router       /v1/reportes/ocupacion [get]
func (h *ReportesHandler) OcupacionPorFecha(c *gin.Context) {
	fecha, ok := parseFecha(c, "fecha")
	if !ok {
		return
	}
	resp, err := h.svc.OcupacionPorFecha(c.Request.Context(), fecha)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ControlVentas godoc
// @Summary      Control de ventas del día
// @Description  Cada reserva del día con método de pago y escenario de liquidación clasificado.
// @Tags         reportes
// @Produce      json
// @Param        fecha query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Success      200  {object} dto.ControlVentasResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reportes/control-ventas [get]
func (h *ReportesHandler) ControlVentas(c *gin.Context) {
	fecha, ok := parseFecha(c, "fecha")
	if !ok {
		return
	}
	resp, err := h.svc.ControlVentas(c.Request.Context(), fecha)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CuentasPorAgencia godoc
// @Summary      Cuentas por agencia
// @Description  Cargos de un rango de fechas agrupados por agencia operadora, con subtotal por escenario.
// @Tags         reportes
// @Produce      json
// @Param        desde query string true "Fecha inicial YYYY-MM-DD"
// @Param        hasta query string true "Fecha final YYYY-MM-DD (exclusiva)"
// @Success      200  {object} dto.CuentasPorAgenciaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reportes/cuentas-agencia [get]
func (h *ReportesHandler) CuentasPorAgencia(c *gin.Context) {
	desde, err := time.Parse("2006-01-02", c.Query("desde"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametro desde invalido, formato esperado YYYY-MM-DD"))
		return
	}
	hasta, err := time.Parse("2006-01-02", c.Query("hasta"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametro hasta invalido, formato esperado YYYY-MM-DD"))
		return
	}
	resp, err := h.svc.CuentasPorAgencia(c.Request.Context(), desde, hasta)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
