package service

import (
	"context"
	"net/http"
	"testing"

	"aguanueva/internal/apierror"
	"aguanueva/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMunicipioCrearYObtener(t *testing.T) {
	svc := NewMunicipioService(newFakeMunicipioRepo(), nil)

	resp, err := svc.Crear(context.Background(), dto.CrearMunicipioRequest{
		Nombre:    "Antigua",
		Provincia: ptr("Las Palmas"),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Antigua", resp.Nombre)

	got, err := svc.ObtenerPorID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Antigua", got.Nombre)
	require.NotNil(t, got.Provincia)
	assert.Equal(t, "Las Palmas", *got.Provincia)
}

func TestMunicipioObtenerInexistente(t *testing.T) {
	svc := NewMunicipioService(newFakeMunicipioRepo(), nil)

	_, err := svc.ObtenerPorID(context.Background(), 99)
	assert.True(t, apierror.IsNotFound(err))
}

func TestMunicipioListarSinCache(t *testing.T) {
	repo := newFakeMunicipioRepo()
	svc := NewMunicipioService(repo, nil)

	_, err := svc.Crear(context.Background(), dto.CrearMunicipioRequest{Nombre: "Tuineje"})
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), dto.CrearMunicipioRequest{Nombre: "La Oliva"})
	require.NoError(t, err)

	list, err := svc.Listar(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestMunicipioBuscarPorNombre(t *testing.T) {
	svc := NewMunicipioService(newFakeMunicipioRepo(), nil)

	_, err := svc.Crear(context.Background(), dto.CrearMunicipioRequest{Nombre: "Pajara"})
	require.NoError(t, err)

	got, err := svc.BuscarPorNombre(context.Background(), "Pajara")
	require.NoError(t, err)
	assert.Equal(t, "Pajara", got.Nombre)

	_, err = svc.BuscarPorNombre(context.Background(), "Teguise")
	assert.True(t, apierror.IsNotFound(err))

	_, err = svc.BuscarPorNombre(context.Background(), "")
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestMunicipioActualizarSinCampos(t *testing.T) {
	svc := NewMunicipioService(newFakeMunicipioRepo(), nil)

	_, err := svc.Actualizar(context.Background(), 1, dto.ActualizarMunicipioRequest{})

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestMunicipioActualizarInexistente(t *testing.T) {
	svc := NewMunicipioService(newFakeMunicipioRepo(), nil)

	_, err := svc.Actualizar(context.Background(), 42, dto.ActualizarMunicipioRequest{Nombre: ptr("Betancuria")})
	assert.True(t, apierror.IsNotFound(err))
}

func TestMunicipioEliminarReferenciado(t *testing.T) {
	repo := newFakeMunicipioRepo()
	repo.eliminarErr = gorm.ErrForeignKeyViolated
	svc := NewMunicipioService(repo, nil)

	err := svc.Eliminar(context.Background(), 1)

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "El municipio esta referenciado y no puede eliminarse", apiErr.Detail)
}
