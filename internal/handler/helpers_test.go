package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatoDNI(t *testing.T) {
	casos := map[string]bool{
		"12345678Z":  true,
		"X1234567L":  true, // NIE
		"1234567Z":   false,
		"12345678z":  false,
		"123456789":  false,
		"12345678ZZ": false,
	}
	for dni, esperado := range casos {
		assert.Equal(t, esperado, dniRe.MatchString(dni), dni)
	}
}

func TestFormatoCodigoExpediente(t *testing.T) {
	casos := map[string]bool{
		"AGU00001":  true,
		"EXP99999":  true,
		"agu00001":  false,
		"AG000001":  false, // only two letters
		"AGU0001":   false,
		"AGU000001": false,
	}
	for codigo, esperado := range casos {
		assert.Equal(t, esperado, expedienteRe.MatchString(codigo), codigo)
	}
}

func TestBindRangoFechas(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?desde=2024-01-01", nil)

	desde, hasta, ok := bindRangoFechas(c)
	require.True(t, ok)
	require.NotNil(t, desde)
	assert.Equal(t, "2024-01-01", *desde)
	assert.Nil(t, hasta)
}

func TestBindRangoFechasInvalido(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?hasta=10-05-2024", nil)

	_, _, ok := bindRangoFechas(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBindRangoFechasAusente(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	// Both bounds absent is accepted here; the service decides
	desde, hasta, ok := bindRangoFechas(c)
	assert.True(t, ok)
	assert.Nil(t, desde)
	assert.Nil(t, hasta)
}
