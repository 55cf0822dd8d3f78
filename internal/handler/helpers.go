package handler

import (
	"errors"
	"net/http"
	"reflect"
	"time"

	"github.com/Carbyfah/magic-sub005/internal/apierror"
	"github.com/Carbyfah/magic-sub005/internal/middleware"
	"github.com/Carbyfah/magic-sub005/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeServiceError translates service-layer errors into HTTP responses:
// capacity rejections carry the seat numbers (409), state transition
// conflicts are 409, broken references are 400, a missing row is 404, and
// everything else is a 500 with a generic envelope.
func writeServiceError(c *gin.Context, err error) {
	var capErr *service.ErrCapacidadExcedida
	if errors.As(err, &capErr) {
		c.JSON(http.StatusConflict, &apierror.CapacidadError{
			Detail:      capErr.Error(),
			Capacidad:   capErr.Capacidad,
			Ocupados:    capErr.Ocupados,
			Solicitados: capErr.Solicitados,
			Disponibles: capErr.Disponibles(),
		})
		return
	}
	var transErr *service.ErrTransicionEstado
	if errors.As(err, &transErr) {
		c.JSON(http.StatusConflict, apierror.New(transErr.Error()))
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Registro no encontrado"))
		return
	}
	var refErr *service.ErrReferencia
	if errors.As(err, &refErr) {
		if errors.Is(refErr.Causa, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(refErr.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(refErr.Error()))
		return
	}
	if errors.Is(err, service.ErrDestinoServicio) {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	// Anything unclassified is an infrastructure fault (dropped connection,
	// constraint violation, ...): log the detail, keep it off the wire.
	log.Error().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Err(err).
		Msg("unhandled service error")
	c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
}

// parseFecha reads a YYYY-MM-DD query parameter, defaulting to today.
// Writes the 400 itself when the value is malformed.
func parseFecha(c *gin.Context, param string) (time.Time, bool) {
	raw := c.Query(param)
	if raw == "" {
		return time.Now(), true
	}
	fecha, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, formato esperado YYYY-MM-DD"))
		return time.Time{}, false
	}
	return fecha, true
}
