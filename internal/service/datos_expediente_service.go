package service

import (
	"context"
	"errors"
	"fmt"

	"aguanueva/internal/apierror"
	"aguanueva/internal/dto"
	"aguanueva/internal/model"
	"aguanueva/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DatosExpedienteService manages the quarterly concept lines of a case file.
type DatosExpedienteService interface {
	Crear(ctx context.Context, req dto.CrearDatosExpedienteRequest) (*dto.DatosExpedienteResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.DatosExpedienteResponse, error)
	ListarPorExpediente(ctx context.Context, codigo string) ([]dto.DatosExpedienteResponse, error)
	ListarPorExpedienteHoja(ctx context.Context, codigo string, hoja int) ([]dto.DatosExpedienteResponse, error)
	ListarPorFechas(ctx context.Context, desde, hasta *string) ([]dto.DatosExpedienteResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarDatosExpedienteRequest) (*dto.DatosExpedienteResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type datosExpedienteService struct {
	repo           repository.DatosExpedienteRepository
	expedienteRepo repository.ExpedienteRepository
	materiaRepo    repository.MateriaRepository
}

func NewDatosExpedienteService(
	repo repository.DatosExpedienteRepository,
	expedienteRepo repository.ExpedienteRepository,
	materiaRepo repository.MateriaRepository,
) DatosExpedienteService {
	return &datosExpedienteService{repo: repo, expedienteRepo: expedienteRepo, materiaRepo: materiaRepo}
}

func mapDatosExpediente(d model.DatosExpediente) dto.DatosExpedienteResponse {
	resp := dto.DatosExpedienteResponse{
		ID:         d.ID,
		Expediente: d.Expediente,
		Hoja:       d.Hoja,
		Orden:      d.Orden,

		Cultivo:  d.Cultivo,
		Poligono: d.Poligono,
		Parcela:  d.Parcela,
		Recinto:  d.Recinto,

		MateriaID: d.MateriaID,

		Multiplicador: d.Multiplicador,
		Minimo:        d.Minimo,
		Maximo:        d.Maximo,

		Cantidad:        d.Cantidad,
		CantidadInicial: d.CantidadInicial,

		FechaInicio: fmtFecha(d.FechaInicio),
		FechaFin:    fmtFecha(d.FechaFin),

		Cuatrimestre: d.Cuatrimestre,
	}
	if d.Materia != nil {
		resp.Materia = &d.Materia.Descripcion
	}
	return resp
}

// construirLinea builds a line item model, copying multiplicador / minimo /
// maximo down from the referenced Materia for any the request leaves unset.
// ordenDefault is used when the request does not number the line.
func construirLinea(ctx context.Context, materias repository.MateriaRepository, codigo string, hoja, ordenDefault int, linea dto.CrearDatosExpedienteLinea) (*model.DatosExpediente, error) {
	d := &model.DatosExpediente{
		Expediente: codigo,
		Hoja:       hoja,
		Orden:      ordenDefault,

		Cultivo:  linea.Cultivo,
		Poligono: linea.Poligono,
		Parcela:  linea.Parcela,
		Recinto:  linea.Recinto,

		MateriaID: linea.MateriaID,

		Multiplicador: decimal.NewFromInt(1),
		Minimo:        linea.Minimo,
		Maximo:        linea.Maximo,

		Cantidad:        linea.Cantidad,
		CantidadInicial: linea.Cantidad,

		FechaInicio:  parseFecha(linea.FechaInicio),
		FechaFin:     parseFecha(linea.FechaFin),
		Cuatrimestre: linea.Cuatrimestre,
	}
	if linea.Orden > 0 {
		d.Orden = linea.Orden
	}
	if linea.Multiplicador != nil {
		d.Multiplicador = *linea.Multiplicador
	}
	if linea.CantidadInicial != nil {
		d.CantidadInicial = *linea.CantidadInicial
	}

	if linea.MateriaID != nil {
		m, err := materias.ObtenerPorID(ctx, *linea.MateriaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.Reference(fmt.Sprintf("La materia %d no existe", *linea.MateriaID))
			}
			return nil, err
		}
		if linea.Multiplicador == nil {
			d.Multiplicador = m.Multiplicador
		}
		if linea.Minimo == nil {
			d.Minimo = m.Minimo
		}
		if linea.Maximo == nil {
			d.Maximo = m.Maximo
		}
	}
	return d, nil
}

func (s *datosExpedienteService) Crear(ctx context.Context, req dto.CrearDatosExpedienteRequest) (*dto.DatosExpedienteResponse, error) {
	// The parent sheet must exist; its absence is a reference error, not a
	// raw FK violation.
	if _, err := s.expedienteRepo.ObtenerPorCodigoHoja(ctx, req.Expediente, req.Hoja); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Reference(fmt.Sprintf("No existe el expediente %s hoja %d", req.Expediente, req.Hoja))
		}
		return nil, err
	}

	d, err := construirLinea(ctx, s.materiaRepo, req.Expediente, req.Hoja, 1, req.CrearDatosExpedienteLinea)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Crear(ctx, nil, d); err != nil {
		return nil, traducirError(err, "", "",
			"El expediente o la materia indicados no existen")
	}
	return s.ObtenerPorID(ctx, d.ID)
}

func (s *datosExpedienteService) ObtenerPorID(ctx context.Context, id uint) (*dto.DatosExpedienteResponse, error) {
	d, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, traducirError(err, fmt.Sprintf("No se encontro la linea %d", id), "", "")
	}
	resp := mapDatosExpediente(*d)
	return &resp, nil
}

func (s *datosExpedienteService) ListarPorExpediente(ctx context.Context, codigo string) ([]dto.DatosExpedienteResponse, error) {
	list, err := s.repo.ListarPorExpediente(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apierror.NotFound("No se encontraron lineas del expediente " + codigo)
	}
	resp := make([]dto.DatosExpedienteResponse, 0, len(list))
	for _, d := range list {
		resp = append(resp, mapDatosExpediente(d))
	}
	return resp, nil
}

func (s *datosExpedienteService) ListarPorExpedienteHoja(ctx context.Context, codigo string, hoja int) ([]dto.DatosExpedienteResponse, error) {
	list, err := s.repo.ListarPorExpedienteHoja(ctx, codigo, hoja)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apierror.NotFound(fmt.Sprintf("No se encontraron lineas del expediente %s hoja %d", codigo, hoja))
	}
	resp := make([]dto.DatosExpedienteResponse, 0, len(list))
	for _, d := range list {
		resp = append(resp, mapDatosExpediente(d))
	}
	return resp, nil
}

func (s *datosExpedienteService) ListarPorFechas(ctx context.Context, desde, hasta *string) ([]dto.DatosExpedienteResponse, error) {
	if desde == nil && hasta == nil {
		return nil, apierror.InvalidRequest("Debe indicar al menos una fecha (desde o hasta)")
	}
	list, err := s.repo.ListarPorFechas(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apierror.NotFound("No se encontraron lineas " + describirRango(desde, hasta))
	}
	resp := make([]dto.DatosExpedienteResponse, 0, len(list))
	for _, d := range list {
		resp = append(resp, mapDatosExpediente(d))
	}
	return resp, nil
}

func (s *datosExpedienteService) Actualizar(ctx context.Context, id uint, req dto.ActualizarDatosExpedienteRequest) (*dto.DatosExpedienteResponse, error) {
	campos := map[string]interface{}{}
	if req.Orden != nil {
		campos["orden"] = *req.Orden
	}
	if req.Cultivo != nil {
		campos["cultivo"] = *req.Cultivo
	}
	if req.Poligono != nil {
		campos["poligono"] = *req.Poligono
	}
	if req.Parcela != nil {
		campos["parcela"] = *req.Parcela
	}
	if req.Recinto != nil {
		campos["recinto"] = *req.Recinto
	}
	if req.MateriaID != nil {
		campos["materia_id"] = *req.MateriaID
	}
	if req.Multiplicador != nil {
		campos["multiplicador"] = *req.Multiplicador
	}
	if req.Minimo != nil {
		campos["minimo"] = *req.Minimo
	}
	if req.Maximo != nil {
		campos["maximo"] = *req.Maximo
	}
	if req.Cantidad != nil {
		campos["cantidad"] = *req.Cantidad
	}
	if req.CantidadInicial != nil {
		campos["cantidad_inicial"] = *req.CantidadInicial
	}
	if req.FechaInicio != nil {
		campos["fecha_inicio"] = parseFecha(*req.FechaInicio)
	}
	if req.FechaFin != nil {
		campos["fecha_fin"] = parseFecha(*req.FechaFin)
	}
	if req.Cuatrimestre != nil {
		campos["cuatrimestre"] = *req.Cuatrimestre
	}
	if len(campos) == 0 {
		return nil, apierror.InvalidRequest("No se indico ningun campo a actualizar")
	}

	filas, err := s.repo.Actualizar(ctx, id, campos)
	if err != nil {
		return nil, traducirError(err, "", "",
			"La materia indicada no existe")
	}
	if filas == 0 {
		return nil, apierror.NotFound(fmt.Sprintf("No se encontro la linea %d", id))
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *datosExpedienteService) Eliminar(ctx context.Context, id uint) error {
	filas, err := s.repo.Eliminar(ctx, id)
	if err != nil {
		return err
	}
	if filas == 0 {
		return apierror.NotFound(fmt.Sprintf("No se encontro la linea %d", id))
	}
	return nil
}
