package handler

import (
	"net/http"

	"github.com/Carbyfah/magic-sub005/internal/apierror"
	"github.com/Carbyfah/magic-sub005/internal/dto"
	"github.com/Carbyfah/magic-sub005/internal/model"
	"github.com/Carbyfah/magic-sub005/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VehiculosHandler works against the repository directly: fleet CRUD carries
// no business rules beyond validation.
type VehiculosHandler struct{ repo repository.VehiculoRepository }

func NewVehiculosHandler(repo repository.VehiculoRepository) *VehiculosHandler {
	return &VehiculosHandler{repo: repo}
}

// Crear godoc
// @Summary      Registrar vehículo
// @Description  Da de alta una unidad de flota. La capacidad limita reservas en rutas programadas.
// @Tags         vehiculos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearVehiculoRequest true "Datos del vehículo"
// @Success      201  {object} dto.VehiculoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/vehiculos [post]
func (h *VehiculosHandler) Crear(c *gin.Context) {
	var req dto.CrearVehiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	vehiculo := &model.Vehiculo{
		Placa:         req.Placa,
		Marca:         req.Marca,
		Capacidad:     req.Capacidad,
		PagoConductor: req.PagoConductor,
		Activo:        true,
	}
	if err := h.repo.Create(c.Request.Context(), vehiculo); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehiculoToResponse(vehiculo))
}

// Listar godoc
// @Summary      Listar vehículos activos
// @Tags         vehiculos
// @Produce      json
// @Success      200  {array} dto.VehiculoResponse
// @Router       /v1/vehiculos [get]
func (h *VehiculosHandler) Listar(c *gin.Context) {
	vehiculos, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]dto.VehiculoResponse, 0, len(vehiculos))
	for i := range vehiculos {
		out = append(out, *vehiculoToResponse(&vehiculos[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Actualizar godoc
// @Summary      Actualizar vehículo
// @Tags         vehiculos
// @Accept       json
// @Produce      json
// @Param        id   path string                        true "UUID del vehículo"
// @Param        body body dto.ActualizarVehiculoRequest true "Campos a actualizar"
// @Success      200  {object} dto.VehiculoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/vehiculos/{id} [put]
func (h *VehiculosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	vehiculo, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	var req dto.ActualizarVehiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.Placa != nil {
		vehiculo.Placa = *req.Placa
	}
	if req.Marca != nil {
		vehiculo.Marca = req.Marca
	}
	if req.Capacidad != nil {
		vehiculo.Capacidad = *req.Capacidad
	}
	if req.PagoConductor != nil {
		vehiculo.PagoConductor = req.PagoConductor
	}
	if err := h.repo.Update(c.Request.Context(), vehiculo); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehiculoToResponse(vehiculo))
}

// Desactivar godoc
// @Summary      Desactivar vehículo
// @Tags         vehiculos
// @Param        id path string true "UUID del vehículo"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Router       /v1/vehiculos/{id} [delete]
func (h *VehiculosHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.repo.Desactivar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func vehiculoToResponse(v *model.Vehiculo) *dto.VehiculoResponse {
	return &dto.VehiculoResponse{
		ID:            v.ID.String(),
		Placa:         v.Placa,
		Marca:         v.Marca,
		Capacidad:     v.Capacidad,
		PagoConductor: v.PagoConductor,
		Activo:        v.Activo,
	}
}
