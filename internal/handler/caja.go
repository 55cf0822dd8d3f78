package handler

import (
	"net/http"

	"github.com/Carbyfah/magic-sub005/internal/apierror"
	"github.com/Carbyfah/magic-sub005/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

// ReporteDiario godoc
// @Summary      Caja diaria
// @Description  Entradas del libro de caja del día: reservas pagadas operadas por la casa, con totales.
// @Tags         caja
// @Produce      json
// @Param        fecha query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Success      200  {object} dto.CajaDiariaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/caja/diaria [get]
func (h *CajaHandler) ReporteDiario(c *gin.Context) {
	fecha, ok := parseFecha(c, "fecha")
	if !ok {
		return
	}
	resp, err := h.svc.ReporteDiario(c.Request.Context(), fecha)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MetodoPago godoc
// @Summary      Método de pago de una reserva
// @Description  Deriva el método (caja, conductor, otro, pendiente) del libro de caja y el estado de la reserva.
// @Tags         caja
// @Produce      json
// @Param        id path string true "UUID de la reserva"
// @Success      200  {object} map[string]string
// @Failure      404  {object} apierror.APIError
// @Router       /v1/caja/metodo-pago/{id} [get]
func (h *CajaHandler) MetodoPago(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	metodo, err := h.svc.ResolverMetodoPago(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reserva_id": id.String(), "metodo_pago": string(metodo)})
}
