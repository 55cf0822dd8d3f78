package handler

import (
	"net/http"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/apierror"
	"github.com/Carbyfah/magic-sub005/internal/dto"
	"github.com/Carbyfah/magic-sub005/internal/service"

	"github.com/gin-gonic/gin"
)

type ToursHandler struct{ svc service.TourService }

func NewToursHandler(svc service.TourService) *ToursHandler { return &ToursHandler{svc: svc} }

// Crear godoc
// @Summary      Crear tour
// @Description  Alta de una plantilla de tour de una agencia. Los tours no tienen límite de asientos.
// @Tags         tours
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearTourRequest true "Datos del tour"
// @Success      201  {object} dto.TourResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/tours [post]
func (h *ToursHandler) Crear(c *gin.Context) {
	var req dto.CrearTourRequest
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
// @Summary      Listar tours activos
// @Tags         tours
// @Produce      json
// @Success      200  {array} dto.TourResponse
// @Router       /v1/tours [get]
func (h *ToursHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Programar godoc
// @Summary      Programar salida de tour
// @Tags         tours
// @Accept       json
// @Produce      json
// @Param        body body dto.ProgramarTourRequest true "Tour y fecha de salida"
// @Success      201  {object} dto.TourProgramadoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/tours/programados [post]
func (h *ToursHandler) Programar(c *gin.Context) {
	var req dto.ProgramarTourRequest
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

// ListarProgramados godoc
// @Summary      Listar salidas de tour programadas
// @Tags         tours
// @Produce      json
// @Param        fecha query string false "Fecha YYYY-MM-DD"
// @Success      200  {array} dto.TourProgramadoResponse
// @Router       /v1/tours/programados [get]
func (h *ToursHandler) ListarProgramados(c *gin.Context) {
	var fecha *time.Time
	if raw := c.Query("fecha"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, formato esperado YYYY-MM-DD"))
			return
		}
		fecha = &parsed
	}
	resp, err := h.svc.ListarProgramados(c.Request.Context(), fecha)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
