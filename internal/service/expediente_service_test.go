package service

import (
	"context"
	"net/http"
	"testing"

	"aguanueva/internal/apierror"
	"aguanueva/internal/dto"
	"aguanueva/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entornoExpedientes struct {
	svc        ExpedienteService
	repo       *fakeExpedienteRepo
	datosRepo  *fakeDatosRepo
	materias   *fakeMateriaRepo
	municipios *fakeMunicipioRepo
	idMun      uint
}

// nuevoEntornoExpedientes seeds a municipality and a claimant so reference
// checks pass.
func nuevoEntornoExpedientes(t *testing.T) *entornoExpedientes {
	t.Helper()
	env := &entornoExpedientes{
		repo:       newFakeExpedienteRepo(),
		datosRepo:  newFakeDatosRepo(),
		materias:   newFakeMateriaRepo(),
		municipios: newFakeMunicipioRepo(),
	}
	env.repo.lineas = env.datosRepo
	env.idMun = crearMunicipioDePrueba(t, env.municipios, "Antigua")

	personas := newFakePersonasRepo()
	require.NoError(t, personas.Crear(context.Background(), &model.DatosPersonales{
		DNI:         "12345678Z",
		Apellidos:   "Hernandez Cabrera",
		MunicipioID: env.idMun,
	}))

	env.svc = NewExpedienteService(env.repo, env.datosRepo, personas, env.municipios, env.materias)
	return env
}

func solicitudExpediente(idMun uint) dto.CrearExpedienteRequest {
	return dto.CrearExpedienteRequest{
		Codigo:      "AGU00001",
		Hoja:        1,
		DNI:         "12345678Z",
		MunicipioID: idMun,
		Fecha:       "2024-05-10",
		Localidad:   ptr("Valles de Ortega"),
	}
}

func TestExpedienteCrearYObtener(t *testing.T) {
	env := nuevoEntornoExpedientes(t)

	resp, err := env.svc.Crear(context.Background(), solicitudExpediente(env.idMun))
	require.NoError(t, err)
	assert.Equal(t, "AGU00001", resp.Codigo)
	assert.Equal(t, 1, resp.Hoja)
	assert.Equal(t, "2024-05-10", resp.Fecha)

	got, err := env.svc.ObtenerPorCodigoHoja(context.Background(), "AGU00001", 1)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)
}

func TestExpedienteCrearPersonaInexistente(t *testing.T) {
	env := nuevoEntornoExpedientes(t)

	req := solicitudExpediente(env.idMun)
	req.DNI = "99999999R"
	_, err := env.svc.Crear(context.Background(), req)

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "No existe ninguna persona con DNI 99999999R", apiErr.Detail)
}

func TestExpedienteCrearDuplicado(t *testing.T) {
	env := nuevoEntornoExpedientes(t)

	_, err := env.svc.Crear(context.Background(), solicitudExpediente(env.idMun))
	require.NoError(t, err)

	_, err = env.svc.Crear(context.Background(), solicitudExpediente(env.idMun))

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "Ya existe el expediente AGU00001 hoja 1", apiErr.Detail)
}

func TestExpedienteMismaHojaDistintoCodigo(t *testing.T) {
	env := nuevoEntornoExpedientes(t)

	_, err := env.svc.Crear(context.Background(), solicitudExpediente(env.idMun))
	require.NoError(t, err)

	// Same case, second sheet: allowed
	req := solicitudExpediente(env.idMun)
	req.Hoja = 2
	_, err = env.svc.Crear(context.Background(), req)
	require.NoError(t, err)
}

func TestExpedienteCrearCompleto(t *testing.T) {
	env := nuevoEntornoExpedientes(t)

	materia := &model.Materia{
		Orden:         1,
		Tipo:          "AGRICOLA",
		Descripcion:   "Riego de cultivos al aire libre",
		Multiplicador: decimal.RequireFromString("1.25"),
		Maximo:        ptr(decimal.RequireFromString("750.00")),
	}
	require.NoError(t, env.materias.Crear(context.Background(), materia))

	req := dto.CrearExpedienteCompletoRequest{
		CrearExpedienteRequest: solicitudExpediente(env.idMun),
		Datos: []dto.CrearDatosExpedienteLinea{
			{
				MateriaID:    &materia.ID,
				Cantidad:     decimal.NewFromInt(120),
				FechaInicio:  "2024-01-01",
				FechaFin:     "2024-04-30",
				Cuatrimestre: 1,
			},
			{
				Cantidad:     decimal.NewFromInt(80),
				FechaInicio:  "2024-05-01",
				FechaFin:     "2024-08-31",
				Cuatrimestre: 2,
			},
		},
	}

	resp, err := env.svc.CrearCompleto(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "AGU00001", resp.Codigo)

	lineas, err := env.datosRepo.ListarPorExpedienteHoja(context.Background(), "AGU00001", 1)
	require.NoError(t, err)
	require.Len(t, lineas, 2)

	porOrden := map[int]model.DatosExpediente{}
	for _, l := range lineas {
		porOrden[l.Orden] = l
	}

	// First line inherits multiplicador and maximo from the materia
	l1 := porOrden[1]
	assert.True(t, l1.Multiplicador.Equal(decimal.RequireFromString("1.25")))
	require.NotNil(t, l1.Maximo)
	assert.True(t, l1.Maximo.Equal(decimal.RequireFromString("750.00")))
	assert.True(t, l1.CantidadInicial.Equal(decimal.NewFromInt(120)))

	// Second line has no materia: multiplicador defaults to 1
	l2 := porOrden[2]
	assert.True(t, l2.Multiplicador.Equal(decimal.NewFromInt(1)))
	assert.Nil(t, l2.Maximo)
}

func TestExpedienteCrearCompletoMateriaInexistente(t *testing.T) {
	env := nuevoEntornoExpedientes(t)

	req := dto.CrearExpedienteCompletoRequest{
		CrearExpedienteRequest: solicitudExpediente(env.idMun),
		Datos: []dto.CrearDatosExpedienteLinea{
			{
				MateriaID:    ptr(uint(99)),
				Cantidad:     decimal.NewFromInt(10),
				FechaInicio:  "2024-01-01",
				FechaFin:     "2024-04-30",
				Cuatrimestre: 1,
			},
		},
	}

	_, err := env.svc.CrearCompleto(context.Background(), req)

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "La materia 99 no existe", apiErr.Detail)
}

func TestExpedienteBuscarFechasSinLimites(t *testing.T) {
	env := nuevoEntornoExpedientes(t)

	_, err := env.svc.ListarPorFechas(context.Background(), nil, nil)

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Debe indicar al menos una fecha (desde o hasta)", apiErr.Detail)
}

func TestExpedienteBuscarFechas(t *testing.T) {
	env := nuevoEntornoExpedientes(t)

	_, err := env.svc.Crear(context.Background(), solicitudExpediente(env.idMun))
	require.NoError(t, err)

	list, err := env.svc.ListarPorFechas(context.Background(), ptr("2024-01-01"), ptr("2024-12-31"))
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = env.svc.ListarPorFechas(context.Background(), ptr("2025-01-01"), nil)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "No se encontraron expedientes desde 2025-01-01", apiErr.Detail)
}

func TestExpedienteListarPorDNISinResultados(t *testing.T) {
	env := nuevoEntornoExpedientes(t)

	_, err := env.svc.ListarPorDNI(context.Background(), "12345678Z")
	assert.True(t, apierror.IsNotFound(err))
}

func TestExpedienteActualizarInformeTecnico(t *testing.T) {
	env := nuevoEntornoExpedientes(t)

	resp, err := env.svc.Crear(context.Background(), solicitudExpediente(env.idMun))
	require.NoError(t, err)

	_, err = env.svc.Actualizar(context.Background(), resp.ID, dto.ActualizarExpedienteRequest{
		Tecnico:      ptr("J. Perdomo"),
		FechaInforme: ptr("2024-06-01"),
		Informe:      ptr("Instalacion conforme"),
	})
	require.NoError(t, err)

	require.Len(t, env.repo.lastCampos, 3)
	assert.Equal(t, "J. Perdomo", env.repo.lastCampos["tecnico"])
	assert.Equal(t, "Instalacion conforme", env.repo.lastCampos["informe"])
	assert.Contains(t, env.repo.lastCampos, "fecha_informe")
}

func TestExpedienteActualizarSinCampos(t *testing.T) {
	env := nuevoEntornoExpedientes(t)

	_, err := env.svc.Actualizar(context.Background(), 1, dto.ActualizarExpedienteRequest{})

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestExpedienteEliminarBorraLineas(t *testing.T) {
	env := nuevoEntornoExpedientes(t)

	req := dto.CrearExpedienteCompletoRequest{
		CrearExpedienteRequest: solicitudExpediente(env.idMun),
		Datos: []dto.CrearDatosExpedienteLinea{
			{
				Cantidad:     decimal.NewFromInt(40),
				FechaInicio:  "2024-01-01",
				FechaFin:     "2024-04-30",
				Cuatrimestre: 1,
			},
			{
				Cantidad:     decimal.NewFromInt(60),
				FechaInicio:  "2024-05-01",
				FechaFin:     "2024-08-31",
				Cuatrimestre: 2,
			},
		},
	}
	resp, err := env.svc.CrearCompleto(context.Background(), req)
	require.NoError(t, err)

	require.NoError(t, env.svc.Eliminar(context.Background(), resp.ID))

	// Deleting the case file takes its line items with it
	lineas, err := env.datosRepo.ListarPorExpedienteHoja(context.Background(), "AGU00001", 1)
	require.NoError(t, err)
	assert.Empty(t, lineas)
}

func TestExpedienteEliminarInexistente(t *testing.T) {
	env := nuevoEntornoExpedientes(t)

	err := env.svc.Eliminar(context.Background(), 77)
	assert.True(t, apierror.IsNotFound(err))
}
