package service

import (
	"context"
	"encoding/json"
	"time"

	"aguanueva/internal/apierror"
	"aguanueva/internal/dto"
	"aguanueva/internal/model"
	"aguanueva/internal/repository"

	"github.com/redis/go-redis/v9"
)

const municipiosCacheKey = "municipios:all"
const catalogoCacheTTL = 4 * time.Hour

// MunicipioService manages the municipality reference table. The full list is
// read on nearly every form load, so it is served through a Redis cache that
// every write invalidates.
type MunicipioService interface {
	Crear(ctx context.Context, req dto.CrearMunicipioRequest) (*dto.MunicipioResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.MunicipioResponse, error)
	BuscarPorNombre(ctx context.Context, nombre string) (*dto.MunicipioResponse, error)
	Listar(ctx context.Context) ([]dto.MunicipioResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarMunicipioRequest) (*dto.MunicipioResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type municipioService struct {
	repo repository.MunicipioRepository
	rdb  *redis.Client
}

func NewMunicipioService(repo repository.MunicipioRepository, rdb *redis.Client) MunicipioService {
	return &municipioService{repo: repo, rdb: rdb}
}

func mapMunicipio(m model.Municipio) dto.MunicipioResponse {
	return dto.MunicipioResponse{
		ID:           m.ID,
		Nombre:       m.Nombre,
		Provincia:    m.Provincia,
		CodigoPostal: m.CodigoPostal,
	}
}

func (s *municipioService) invalidarCache(ctx context.Context) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, municipiosCacheKey).Err()
	}
}

func (s *municipioService) Crear(ctx context.Context, req dto.CrearMunicipioRequest) (*dto.MunicipioResponse, error) {
	m := &model.Municipio{
		Nombre:       req.Nombre,
		Provincia:    req.Provincia,
		CodigoPostal: req.CodigoPostal,
	}
	if err := s.repo.Crear(ctx, m); err != nil {
		return nil, err
	}
	s.invalidarCache(ctx)
	resp := mapMunicipio(*m)
	return &resp, nil
}

func (s *municipioService) ObtenerPorID(ctx context.Context, id uint) (*dto.MunicipioResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, traducirError(err, "Municipio no encontrado", "", "")
	}
	resp := mapMunicipio(*m)
	return &resp, nil
}

func (s *municipioService) BuscarPorNombre(ctx context.Context, nombre string) (*dto.MunicipioResponse, error) {
	if nombre == "" {
		return nil, apierror.InvalidRequest("Debe indicar un nombre a buscar")
	}
	m, err := s.repo.ObtenerPorNombre(ctx, nombre)
	if err != nil {
		return nil, traducirError(err, "No se encontro el municipio "+nombre, "", "")
	}
	resp := mapMunicipio(*m)
	return &resp, nil
}

func (s *municipioService) Listar(ctx context.Context) ([]dto.MunicipioResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, municipiosCacheKey).Bytes(); err == nil {
			var resp []dto.MunicipioResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return resp, nil
			}
		}
	}

	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MunicipioResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, mapMunicipio(m))
	}

	// Populate cache, best effort
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, municipiosCacheKey, b, catalogoCacheTTL).Err()
		}
	}
	return resp, nil
}

func (s *municipioService) Actualizar(ctx context.Context, id uint, req dto.ActualizarMunicipioRequest) (*dto.MunicipioResponse, error) {
	campos := map[string]interface{}{}
	if req.Nombre != nil {
		campos["nombre"] = *req.Nombre
	}
	if req.Provincia != nil {
		campos["provincia"] = *req.Provincia
	}
	if req.CodigoPostal != nil {
		campos["codigo_postal"] = *req.CodigoPostal
	}
	if len(campos) == 0 {
		return nil, apierror.InvalidRequest("No se indico ningun campo a actualizar")
	}

	filas, err := s.repo.Actualizar(ctx, id, campos)
	if err != nil {
		return nil, err
	}
	if filas == 0 {
		return nil, apierror.NotFound("Municipio no encontrado")
	}
	s.invalidarCache(ctx)
	return s.ObtenerPorID(ctx, id)
}

func (s *municipioService) Eliminar(ctx context.Context, id uint) error {
	filas, err := s.repo.Eliminar(ctx, id)
	if err != nil {
		return traducirError(err, "", "", "El municipio esta referenciado y no puede eliminarse")
	}
	if filas == 0 {
		return apierror.NotFound("Municipio no encontrado")
	}
	s.invalidarCache(ctx)
	return nil
}
