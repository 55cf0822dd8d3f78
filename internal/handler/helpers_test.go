package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Carbyfah/magic-sub005/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func writeErr(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/reservas", nil)
	writeServiceError(c, err)
	return rec
}

func TestWriteServiceError_InfraNoSeFiltra(t *testing.T) {
	rec := writeErr(errors.New("driver: bad connection"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error interno del servidor")
	assert.NotContains(t, rec.Body.String(), "bad connection")
}

func TestWriteServiceError_Capacidad(t *testing.T) {
	rec := writeErr(&service.ErrCapacidadExcedida{Capacidad: 4, Ocupados: 3, Solicitados: 2})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"disponibles":1`)
}

func TestWriteServiceError_NoEncontrado(t *testing.T) {
	rec := writeErr(gorm.ErrRecordNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWriteServiceError_ReferenciaRota(t *testing.T) {
	rec := writeErr(&service.ErrReferencia{Entidad: "agencia", Causa: errors.New("uuid invalido")})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWriteServiceError_TransicionInvalida(t *testing.T) {
	rec := writeErr(&service.ErrTransicionEstado{Desde: "activada", Hacia: "liquidada"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}
