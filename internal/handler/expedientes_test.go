package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"aguanueva/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestObtenerPorCodigoHojaInvalida(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewExpedientesHandler(nil) // rejected before the service is touched

	for _, hoja := range []string{"abc", "0", "-1"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/expedientes/codigo/AGU00001/"+hoja, nil)
		c.Params = gin.Params{
			{Key: "codigo", Value: "AGU00001"},
			{Key: "hoja", Value: hoja},
		}

		h.ObtenerPorCodigo(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, hoja)
		assert.Contains(t, w.Body.String(), "Hoja invalida", hoja)
	}
}

func TestCantidadCeroEsValida(t *testing.T) {
	req := dto.CrearDatosExpedienteRequest{
		Expediente: "AGU00001",
		Hoja:       1,
		CrearDatosExpedienteLinea: dto.CrearDatosExpedienteLinea{
			Cantidad:     decimal.Zero,
			FechaInicio:  "2024-01-01",
			FechaFin:     "2024-04-30",
			Cuatrimestre: 1,
		},
	}
	assert.NoError(t, validate.Struct(req))

	req.Cantidad = decimal.NewFromInt(-1)
	assert.Error(t, validate.Struct(req))
}
