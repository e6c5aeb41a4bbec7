package service

import (
	"context"
	"net/http"
	"testing"

	"aguanueva/internal/apierror"
	"aguanueva/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMateriaCrearMultiplicadorPorDefecto(t *testing.T) {
	svc := NewMateriaService(newFakeMateriaRepo(), nil)

	resp, err := svc.Crear(context.Background(), dto.CrearMateriaRequest{
		Orden:       1,
		Tipo:        "AGRICOLA",
		Descripcion: "Riego de cultivos al aire libre",
	})
	require.NoError(t, err)
	assert.True(t, resp.Multiplicador.Equal(decimal.NewFromInt(1)),
		"multiplicador por defecto debe ser 1, fue %s", resp.Multiplicador)
}

func TestMateriaCrearDuplicada(t *testing.T) {
	svc := NewMateriaService(newFakeMateriaRepo(), nil)

	req := dto.CrearMateriaRequest{Orden: 1, Tipo: "GANADERA", Descripcion: "Abrevado de ganado"}
	_, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), req)

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "Ya existe una materia con ese orden y tipo", apiErr.Detail)
}

func TestMateriaBuscarPorNombreVacio(t *testing.T) {
	svc := NewMateriaService(newFakeMateriaRepo(), nil)

	_, err := svc.BuscarPorNombre(context.Background(), "")

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestMateriaBuscarPorNombre(t *testing.T) {
	svc := NewMateriaService(newFakeMateriaRepo(), nil)

	_, err := svc.Crear(context.Background(), dto.CrearMateriaRequest{
		Orden: 1, Tipo: "AGRICOLA", Descripcion: "Riego de frutales",
	})
	require.NoError(t, err)

	list, err := svc.BuscarPorNombre(context.Background(), "frutales")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.BuscarPorNombre(context.Background(), "invernadero")
	assert.True(t, apierror.IsNotFound(err))
}

func TestMateriaListarPorTipoSinResultados(t *testing.T) {
	svc := NewMateriaService(newFakeMateriaRepo(), nil)

	_, err := svc.ListarPorTipo(context.Background(), "FORESTAL")
	assert.True(t, apierror.IsNotFound(err))
}

func TestMateriaEliminarInexistente(t *testing.T) {
	svc := NewMateriaService(newFakeMateriaRepo(), nil)

	err := svc.Eliminar(context.Background(), 7)
	assert.True(t, apierror.IsNotFound(err))
}
