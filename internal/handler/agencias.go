package handler

import (
	"net/http"

	"github.com/Carbyfah/magic-sub005/internal/apierror"
	"github.com/Carbyfah/magic-sub005/internal/dto"
	"github.com/Carbyfah/magic-sub005/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AgenciasHandler struct{ svc service.AgenciaService }

func NewAgenciasHandler(svc service.AgenciaService) *AgenciasHandler {
	return &AgenciasHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar agencia
// @Description  Da de alta una agencia asociada (vendedora u operadora).
// @Tags         agencias
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearAgenciaRequest true "Datos de la agencia"
// @Success      201  {object} dto.AgenciaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/agencias [post]
func (h *AgenciasHandler) Crear(c *gin.Context) {
	var req dto.CrearAgenciaRequest
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
// @Summary      Listar agencias activas
// @Tags         agencias
// @Produce      json
// @Success      200  {array} dto.AgenciaResponse
// @Router       /v1/agencias [get]
func (h *AgenciasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener agencia por ID
// @Tags         agencias
// @Produce      json
// @Param        id path string true "UUID de la agencia"
// @Success      200  {object} dto.AgenciaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/agencias/{id} [get]
func (h *AgenciasHandler) Obtener(c *gin.Context) {
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
// @Summary      Actualizar agencia
// @Tags         agencias
// @Accept       json
// @Produce      json
// @Param        id   path string                       true "UUID de la agencia"
// @Param        body body dto.ActualizarAgenciaRequest true "Campos a actualizar"
// @Success      200  {object} dto.AgenciaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/agencias/{id} [put]
func (h *AgenciasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarAgenciaRequest
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
// @Summary      Desactivar agencia
// @Tags         agencias
// @Param        id path string true "UUID de la agencia"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Router       /v1/agencias/{id} [delete]
func (h *AgenciasHandler) Desactivar(c *gin.Context) {
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
