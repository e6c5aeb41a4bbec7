package service

import (
	"context"
	"errors"
	"fmt"

	"aguanueva/internal/apierror"
	"aguanueva/internal/dto"
	"aguanueva/internal/model"
	"aguanueva/internal/repository"

	"gorm.io/gorm"
)

// ExpedienteService manages subsidy case files. Expediente is the aggregate
// root of its line items: the combined create runs in one transaction and a
// delete cascades to the lines.
type ExpedienteService interface {
	Crear(ctx context.Context, req dto.CrearExpedienteRequest) (*dto.ExpedienteResponse, error)
	CrearCompleto(ctx context.Context, req dto.CrearExpedienteCompletoRequest) (*dto.ExpedienteResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ExpedienteResponse, error)
	ObtenerPorCodigoHoja(ctx context.Context, codigo string, hoja int) (*dto.ExpedienteResponse, error)
	Listar(ctx context.Context, filter dto.ExpedienteFilter) ([]dto.ExpedienteResponse, error)
	ListarPorFechas(ctx context.Context, desde, hasta *string) ([]dto.ExpedienteResponse, error)
	ListarPorDNI(ctx context.Context, dni string) ([]dto.ExpedienteResponse, error)
	ListarPorMunicipio(ctx context.Context, municipioID uint) ([]dto.ExpedienteResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarExpedienteRequest) (*dto.ExpedienteResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type expedienteService struct {
	repo          repository.ExpedienteRepository
	datosRepo     repository.DatosExpedienteRepository
	personasRepo  repository.DatosPersonalesRepository
	municipioRepo repository.MunicipioRepository
	materiaRepo   repository.MateriaRepository
}

func NewExpedienteService(
	repo repository.ExpedienteRepository,
	datosRepo repository.DatosExpedienteRepository,
	personasRepo repository.DatosPersonalesRepository,
	municipioRepo repository.MunicipioRepository,
	materiaRepo repository.MateriaRepository,
) ExpedienteService {
	return &expedienteService{
		repo:          repo,
		datosRepo:     datosRepo,
		personasRepo:  personasRepo,
		municipioRepo: municipioRepo,
		materiaRepo:   materiaRepo,
	}
}

func mapExpediente(e model.Expediente) dto.ExpedienteResponse {
	resp := dto.ExpedienteResponse{
		ID:          e.ID,
		Codigo:      e.Codigo,
		Hoja:        e.Hoja,
		DNI:         e.DNI,
		MunicipioID: e.MunicipioID,
		Fecha:       fmtFecha(e.Fecha),

		Lugar:           e.Lugar,
		Localidad:       e.Localidad,
		TitularContador: e.TitularContador,
		PolizaContador:  e.PolizaContador,
		Observaciones:   e.Observaciones,

		Tecnico:              e.Tecnico,
		FechaInforme:         fmtFechaPtr(e.FechaInforme),
		DiasTranscurridos:    e.DiasTranscurridos,
		ObservacionesTecnico: e.ObservacionesTecnico,
		Informe:              e.Informe,
	}
	if e.Municipio.ID != 0 {
		resp.Municipio = &e.Municipio.Nombre
	}
	for _, d := range e.Datos {
		resp.Datos = append(resp.Datos, mapDatosExpediente(d))
	}
	return resp
}

// resolverReferencias verifies the claimant and municipality exist before any
// write, so reference failures carry a message naming the missing target.
func (s *expedienteService) resolverReferencias(ctx context.Context, dni string, municipioID uint) error {
	if _, err := s.personasRepo.ObtenerPorDNI(ctx, dni); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Reference("No existe ninguna persona con DNI " + dni)
		}
		return err
	}
	if _, err := s.municipioRepo.ObtenerPorID(ctx, municipioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Reference(fmt.Sprintf("El municipio %d no existe", municipioID))
		}
		return err
	}
	return nil
}

func (s *expedienteService) construirExpediente(req dto.CrearExpedienteRequest) *model.Expediente {
	return &model.Expediente{
		Codigo:          req.Codigo,
		Hoja:            req.Hoja,
		DNI:             req.DNI,
		MunicipioID:     req.MunicipioID,
		Fecha:           parseFecha(req.Fecha),
		Lugar:           req.Lugar,
		Localidad:       req.Localidad,
		TitularContador: req.TitularContador,
		PolizaContador:  req.PolizaContador,
		Observaciones:   req.Observaciones,
	}
}

func (s *expedienteService) Crear(ctx context.Context, req dto.CrearExpedienteRequest) (*dto.ExpedienteResponse, error) {
	if err := s.resolverReferencias(ctx, req.DNI, req.MunicipioID); err != nil {
		return nil, err
	}

	e := s.construirExpediente(req)
	if err := s.repo.Crear(ctx, nil, e); err != nil {
		return nil, traducirError(err, "",
			fmt.Sprintf("Ya existe el expediente %s hoja %d", req.Codigo, req.Hoja),
			"La persona o el municipio indicados no existen")
	}
	return s.ObtenerPorID(ctx, e.ID)
}

// CrearCompleto creates the case file and all its line items in one
// transaction: a failure in any line rolls back the whole intake.
func (s *expedienteService) CrearCompleto(ctx context.Context, req dto.CrearExpedienteCompletoRequest) (*dto.ExpedienteResponse, error) {
	if err := s.resolverReferencias(ctx, req.DNI, req.MunicipioID); err != nil {
		return nil, err
	}

	e := s.construirExpediente(req.CrearExpedienteRequest)
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Crear(ctx, tx, e); err != nil {
			return err
		}
		for i, linea := range req.Datos {
			d, err := construirLinea(ctx, s.materiaRepo, req.Codigo, req.Hoja, i+1, linea)
			if err != nil {
				return err
			}
			if err := s.datosRepo.Crear(ctx, tx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		var apiErr *apierror.Error
		if errors.As(txErr, &apiErr) {
			return nil, apiErr
		}
		return nil, traducirError(txErr, "",
			fmt.Sprintf("Ya existe el expediente %s hoja %d", req.Codigo, req.Hoja),
			"Alguna referencia del expediente no existe")
	}
	return s.ObtenerPorID(ctx, e.ID)
}

func (s *expedienteService) ObtenerPorID(ctx context.Context, id uint) (*dto.ExpedienteResponse, error) {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, traducirError(err, fmt.Sprintf("No se encontro el expediente %d", id), "", "")
	}
	resp := mapExpediente(*e)
	return &resp, nil
}

func (s *expedienteService) ObtenerPorCodigoHoja(ctx context.Context, codigo string, hoja int) (*dto.ExpedienteResponse, error) {
	e, err := s.repo.ObtenerPorCodigoHoja(ctx, codigo, hoja)
	if err != nil {
		return nil, traducirError(err,
			fmt.Sprintf("No se encontro el expediente %s hoja %d", codigo, hoja), "", "")
	}
	resp := mapExpediente(*e)
	return &resp, nil
}

func (s *expedienteService) Listar(ctx context.Context, filter dto.ExpedienteFilter) ([]dto.ExpedienteResponse, error) {
	list, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ExpedienteResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, mapExpediente(e))
	}
	return resp, nil
}

// ListarPorFechas requires at least one bound; the not-found message names
// the criteria actually used.
func (s *expedienteService) ListarPorFechas(ctx context.Context, desde, hasta *string) ([]dto.ExpedienteResponse, error) {
	if desde == nil && hasta == nil {
		return nil, apierror.InvalidRequest("Debe indicar al menos una fecha (desde o hasta)")
	}
	list, err := s.repo.ListarPorFechas(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apierror.NotFound("No se encontraron expedientes " + describirRango(desde, hasta))
	}
	resp := make([]dto.ExpedienteResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, mapExpediente(e))
	}
	return resp, nil
}

func describirRango(desde, hasta *string) string {
	switch {
	case desde != nil && hasta != nil:
		return fmt.Sprintf("entre %s y %s", *desde, *hasta)
	case desde != nil:
		return "desde " + *desde
	default:
		return "hasta " + *hasta
	}
}

func (s *expedienteService) ListarPorDNI(ctx context.Context, dni string) ([]dto.ExpedienteResponse, error) {
	list, err := s.repo.ListarPorDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apierror.NotFound("No se encontraron expedientes para el DNI " + dni)
	}
	resp := make([]dto.ExpedienteResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, mapExpediente(e))
	}
	return resp, nil
}

func (s *expedienteService) ListarPorMunicipio(ctx context.Context, municipioID uint) ([]dto.ExpedienteResponse, error) {
	m, err := s.municipioRepo.ObtenerPorID(ctx, municipioID)
	if err != nil {
		return nil, traducirError(err, fmt.Sprintf("Municipio %d no encontrado", municipioID), "", "")
	}
	list, err := s.repo.ListarPorMunicipio(ctx, municipioID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apierror.NotFound("No se encontraron expedientes en el municipio " + m.Nombre)
	}
	resp := make([]dto.ExpedienteResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, mapExpediente(e))
	}
	return resp, nil
}

func (s *expedienteService) Actualizar(ctx context.Context, id uint, req dto.ActualizarExpedienteRequest) (*dto.ExpedienteResponse, error) {
	campos := map[string]interface{}{}
	if req.DNI != nil {
		campos["dni"] = *req.DNI
	}
	if req.MunicipioID != nil {
		campos["municipio_id"] = *req.MunicipioID
	}
	if req.Fecha != nil {
		campos["fecha"] = parseFecha(*req.Fecha)
	}
	if req.Lugar != nil {
		campos["lugar"] = *req.Lugar
	}
	if req.Localidad != nil {
		campos["localidad"] = *req.Localidad
	}
	if req.TitularContador != nil {
		campos["titular_contador"] = *req.TitularContador
	}
	if req.PolizaContador != nil {
		campos["poliza_contador"] = *req.PolizaContador
	}
	if req.Observaciones != nil {
		campos["observaciones"] = *req.Observaciones
	}
	if req.Tecnico != nil {
		campos["tecnico"] = *req.Tecnico
	}
	if req.FechaInforme != nil {
		campos["fecha_informe"] = parseFecha(*req.FechaInforme)
	}
	if req.DiasTranscurridos != nil {
		campos["dias_transcurridos"] = *req.DiasTranscurridos
	}
	if req.ObservacionesTecnico != nil {
		campos["observaciones_tecnico"] = *req.ObservacionesTecnico
	}
	if req.Informe != nil {
		campos["informe"] = *req.Informe
	}
	if len(campos) == 0 {
		return nil, apierror.InvalidRequest("No se indico ningun campo a actualizar")
	}

	filas, err := s.repo.Actualizar(ctx, id, campos)
	if err != nil {
		return nil, traducirError(err, "", "",
			"La persona o el municipio indicados no existen")
	}
	if filas == 0 {
		return nil, apierror.NotFound(fmt.Sprintf("No se encontro el expediente %d", id))
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *expedienteService) Eliminar(ctx context.Context, id uint) error {
	filas, err := s.repo.Eliminar(ctx, id)
	if err != nil {
		return err
	}
	if filas == 0 {
		return apierror.NotFound(fmt.Sprintf("No se encontro el expediente %d", id))
	}
	return nil
}
