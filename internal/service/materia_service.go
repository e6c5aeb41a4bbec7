package service

import (
	"context"
	"encoding/json"

	"aguanueva/internal/apierror"
	"aguanueva/internal/dto"
	"aguanueva/internal/model"
	"aguanueva/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const materiasCacheKey = "materias:all"

// MateriaService administers the subsidy category catalog.
type MateriaService interface {
	Crear(ctx context.Context, req dto.CrearMateriaRequest) (*dto.MateriaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.MateriaResponse, error)
	Listar(ctx context.Context) ([]dto.MateriaResponse, error)
	ListarPorTipo(ctx context.Context, tipo string) ([]dto.MateriaResponse, error)
	BuscarPorNombre(ctx context.Context, nombre string) ([]dto.MateriaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarMateriaRequest) (*dto.MateriaResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type materiaService struct {
	repo repository.MateriaRepository
	rdb  *redis.Client
}

func NewMateriaService(repo repository.MateriaRepository, rdb *redis.Client) MateriaService {
	return &materiaService{repo: repo, rdb: rdb}
}

func mapMateria(m model.Materia) dto.MateriaResponse {
	return dto.MateriaResponse{
		ID:            m.ID,
		Orden:         m.Orden,
		Tipo:          m.Tipo,
		Descripcion:   m.Descripcion,
		Multiplicador: m.Multiplicador,
		Minimo:        m.Minimo,
		Maximo:        m.Maximo,
	}
}

func (s *materiaService) invalidarCache(ctx context.Context) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, materiasCacheKey).Err()
	}
}

func (s *materiaService) Crear(ctx context.Context, req dto.CrearMateriaRequest) (*dto.MateriaResponse, error) {
	multiplicador := decimal.NewFromInt(1)
	if req.Multiplicador != nil {
		multiplicador = *req.Multiplicador
	}
	m := &model.Materia{
		Orden:         req.Orden,
		Tipo:          req.Tipo,
		Descripcion:   req.Descripcion,
		Multiplicador: multiplicador,
		Minimo:        req.Minimo,
		Maximo:        req.Maximo,
	}
	if err := s.repo.Crear(ctx, m); err != nil {
		return nil, traducirError(err, "",
			"Ya existe una materia con ese orden y tipo", "")
	}
	s.invalidarCache(ctx)
	resp := mapMateria(*m)
	return &resp, nil
}

func (s *materiaService) ObtenerPorID(ctx context.Context, id uint) (*dto.MateriaResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, traducirError(err, "Materia no encontrada", "", "")
	}
	resp := mapMateria(*m)
	return &resp, nil
}

func (s *materiaService) Listar(ctx context.Context) ([]dto.MateriaResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, materiasCacheKey).Bytes(); err == nil {
			var resp []dto.MateriaResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return resp, nil
			}
		}
	}

	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MateriaResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, mapMateria(m))
	}

	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, materiasCacheKey, b, catalogoCacheTTL).Err()
		}
	}
	return resp, nil
}

func (s *materiaService) ListarPorTipo(ctx context.Context, tipo string) ([]dto.MateriaResponse, error) {
	list, err := s.repo.ListarPorTipo(ctx, tipo)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apierror.NotFound("No se encontraron materias del tipo " + tipo)
	}
	resp := make([]dto.MateriaResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, mapMateria(m))
	}
	return resp, nil
}

func (s *materiaService) BuscarPorNombre(ctx context.Context, nombre string) ([]dto.MateriaResponse, error) {
	if nombre == "" {
		return nil, apierror.InvalidRequest("Debe indicar un nombre a buscar")
	}
	list, err := s.repo.BuscarPorNombre(ctx, nombre)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apierror.NotFound("No se encontraron materias con nombre " + nombre)
	}
	resp := make([]dto.MateriaResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, mapMateria(m))
	}
	return resp, nil
}

func (s *materiaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarMateriaRequest) (*dto.MateriaResponse, error) {
	campos := map[string]interface{}{}
	if req.Orden != nil {
		campos["orden"] = *req.Orden
	}
	if req.Tipo != nil {
		campos["tipo"] = *req.Tipo
	}
	if req.Descripcion != nil {
		campos["descripcion"] = *req.Descripcion
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
	if len(campos) == 0 {
		return nil, apierror.InvalidRequest("No se indico ningun campo a actualizar")
	}

	filas, err := s.repo.Actualizar(ctx, id, campos)
	if err != nil {
		return nil, traducirError(err, "",
			"Ya existe una materia con ese orden y tipo", "")
	}
	if filas == 0 {
		return nil, apierror.NotFound("Materia no encontrada")
	}
	s.invalidarCache(ctx)
	return s.ObtenerPorID(ctx, id)
}

// Eliminar removes a catalog entry. Line items that reference it keep their
// copied bounds; the FK sets their materia reference to NULL.
func (s *materiaService) Eliminar(ctx context.Context, id uint) error {
	filas, err := s.repo.Eliminar(ctx, id)
	if err != nil {
		return err
	}
	if filas == 0 {
		return apierror.NotFound("Materia no encontrada")
	}
	s.invalidarCache(ctx)
	return nil
}
