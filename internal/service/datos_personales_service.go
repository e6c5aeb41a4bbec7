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

// DatosPersonalesService manages the claimant registry.
type DatosPersonalesService interface {
	Crear(ctx context.Context, req dto.CrearDatosPersonalesRequest) (*dto.DatosPersonalesResponse, error)
	ObtenerPorDNI(ctx context.Context, dni string) (*dto.DatosPersonalesResponse, error)
	Listar(ctx context.Context) ([]dto.DatosPersonalesResponse, error)
	BuscarPorNombre(ctx context.Context, nombre, apellidos *string) ([]dto.DatosPersonalesResponse, error)
	ListarPorMunicipio(ctx context.Context, municipioID uint) ([]dto.DatosPersonalesResponse, error)
	Actualizar(ctx context.Context, dni string, req dto.ActualizarDatosPersonalesRequest) (*dto.DatosPersonalesResponse, error)
	Eliminar(ctx context.Context, dni string) error
}

type datosPersonalesService struct {
	repo          repository.DatosPersonalesRepository
	municipioRepo repository.MunicipioRepository
}

func NewDatosPersonalesService(repo repository.DatosPersonalesRepository, municipioRepo repository.MunicipioRepository) DatosPersonalesService {
	return &datosPersonalesService{repo: repo, municipioRepo: municipioRepo}
}

func mapDatosPersonales(p model.DatosPersonales) dto.DatosPersonalesResponse {
	resp := dto.DatosPersonalesResponse{
		DNI:          p.DNI,
		Apellidos:    p.Apellidos,
		Nombre:       p.Nombre,
		Direccion:    p.Direccion,
		Localidad:    p.Localidad,
		CodigoPostal: p.CodigoPostal,
		MunicipioID:  p.MunicipioID,
		Telefono:     p.Telefono,
		Email:        p.Email,

		ActividadAgropec: p.ActividadAgropec,

		PersonaFisica:              p.PersonaFisica,
		PersonaJuridica:            p.PersonaJuridica,
		AgricultorProf:             p.AgricultorProf,
		AgricultorParcial:          p.AgricultorParcial,
		TrabajadoresAsalariados:    p.TrabajadoresAsalariados,
		NumTrabajadores:            p.NumTrabajadores,
		DiscapacidadAgricultorProf: p.DiscapacidadAgricultorProf,
		NumAgricultoresProf:        p.NumAgricultoresProf,
	}
	if p.Municipio.ID != 0 {
		resp.Municipio = &p.Municipio.Nombre
	}
	return resp
}

func (s *datosPersonalesService) Crear(ctx context.Context, req dto.CrearDatosPersonalesRequest) (*dto.DatosPersonalesResponse, error) {
	// Resolve the municipality before the write so the caller gets a
	// reference error naming the target instead of a raw FK violation.
	if _, err := s.municipioRepo.ObtenerPorID(ctx, req.MunicipioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Reference(fmt.Sprintf("El municipio %d no existe", req.MunicipioID))
		}
		return nil, err
	}

	p := &model.DatosPersonales{
		DNI:          req.DNI,
		Apellidos:    req.Apellidos,
		Nombre:       req.Nombre,
		Direccion:    req.Direccion,
		Localidad:    req.Localidad,
		CodigoPostal: req.CodigoPostal,
		MunicipioID:  req.MunicipioID,
		Telefono:     req.Telefono,
		Email:        req.Email,

		ActividadAgropec: req.ActividadAgropec,

		PersonaFisica:              req.PersonaFisica,
		PersonaJuridica:            req.PersonaJuridica,
		AgricultorProf:             req.AgricultorProf,
		AgricultorParcial:          req.AgricultorParcial,
		TrabajadoresAsalariados:    req.TrabajadoresAsalariados,
		NumTrabajadores:            req.NumTrabajadores,
		DiscapacidadAgricultorProf: req.DiscapacidadAgricultorProf,
		NumAgricultoresProf:        req.NumAgricultoresProf,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return nil, traducirError(err, "",
			"Ya existe una persona con DNI "+req.DNI,
			fmt.Sprintf("El municipio %d no existe", req.MunicipioID))
	}
	resp := mapDatosPersonales(*p)
	return &resp, nil
}

func (s *datosPersonalesService) ObtenerPorDNI(ctx context.Context, dni string) (*dto.DatosPersonalesResponse, error) {
	p, err := s.repo.ObtenerPorDNI(ctx, dni)
	if err != nil {
		return nil, traducirError(err, "No se encontro ninguna persona con DNI "+dni, "", "")
	}
	resp := mapDatosPersonales(*p)
	return &resp, nil
}

func (s *datosPersonalesService) Listar(ctx context.Context) ([]dto.DatosPersonalesResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DatosPersonalesResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, mapDatosPersonales(p))
	}
	return resp, nil
}

// BuscarPorNombre requires at least one of the two fields and matches each
// supplied field exactly as stored.
func (s *datosPersonalesService) BuscarPorNombre(ctx context.Context, nombre, apellidos *string) ([]dto.DatosPersonalesResponse, error) {
	if nombre == nil && apellidos == nil {
		return nil, apierror.InvalidRequest("Debe indicar nombre o apellidos para la busqueda")
	}
	list, err := s.repo.BuscarPorNombre(ctx, nombre, apellidos)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apierror.NotFound("No se encontraron personas con los criterios indicados")
	}
	resp := make([]dto.DatosPersonalesResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, mapDatosPersonales(p))
	}
	return resp, nil
}

func (s *datosPersonalesService) ListarPorMunicipio(ctx context.Context, municipioID uint) ([]dto.DatosPersonalesResponse, error) {
	m, err := s.municipioRepo.ObtenerPorID(ctx, municipioID)
	if err != nil {
		return nil, traducirError(err, fmt.Sprintf("Municipio %d no encontrado", municipioID), "", "")
	}
	list, err := s.repo.ListarPorMunicipio(ctx, municipioID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apierror.NotFound("No se encontraron personas en el municipio " + m.Nombre)
	}
	resp := make([]dto.DatosPersonalesResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, mapDatosPersonales(p))
	}
	return resp, nil
}

func (s *datosPersonalesService) Actualizar(ctx context.Context, dni string, req dto.ActualizarDatosPersonalesRequest) (*dto.DatosPersonalesResponse, error) {
	campos := map[string]interface{}{}
	if req.Apellidos != nil {
		campos["apellidos"] = *req.Apellidos
	}
	if req.Nombre != nil {
		campos["nombre"] = *req.Nombre
	}
	if req.Direccion != nil {
		campos["direccion"] = *req.Direccion
	}
	if req.Localidad != nil {
		campos["localidad"] = *req.Localidad
	}
	if req.CodigoPostal != nil {
		campos["codigo_postal"] = *req.CodigoPostal
	}
	if req.MunicipioID != nil {
		campos["municipio_id"] = *req.MunicipioID
	}
	if req.Telefono != nil {
		campos["telefono"] = *req.Telefono
	}
	if req.Email != nil {
		campos["email"] = *req.Email
	}
	if req.ActividadAgropec != nil {
		campos["actividad_agropec"] = *req.ActividadAgropec
	}
	if req.PersonaFisica != nil {
		campos["persona_fisica"] = *req.PersonaFisica
	}
	if req.PersonaJuridica != nil {
		campos["persona_juridica"] = *req.PersonaJuridica
	}
	if req.AgricultorProf != nil {
		campos["agricultor_prof"] = *req.AgricultorProf
	}
	if req.AgricultorParcial != nil {
		campos["agricultor_parcial"] = *req.AgricultorParcial
	}
	if req.TrabajadoresAsalariados != nil {
		campos["trabajadores_asalariados"] = *req.TrabajadoresAsalariados
	}
	if req.NumTrabajadores != nil {
		campos["num_trabajadores"] = *req.NumTrabajadores
	}
	if req.DiscapacidadAgricultorProf != nil {
		campos["discapacidad_agricultor_prof"] = *req.DiscapacidadAgricultorProf
	}
	if req.NumAgricultoresProf != nil {
		campos["num_agricultores_prof"] = *req.NumAgricultoresProf
	}
	if len(campos) == 0 {
		return nil, apierror.InvalidRequest("No se indico ningun campo a actualizar")
	}

	filas, err := s.repo.Actualizar(ctx, dni, campos)
	if err != nil {
		return nil, traducirError(err, "", "",
			"El municipio indicado no existe")
	}
	if filas == 0 {
		return nil, apierror.NotFound("No se encontro ninguna persona con DNI " + dni)
	}
	return s.ObtenerPorDNI(ctx, dni)
}

// Eliminar is blocked by the FK while case files reference the claimant.
func (s *datosPersonalesService) Eliminar(ctx context.Context, dni string) error {
	filas, err := s.repo.Eliminar(ctx, dni)
	if err != nil {
		return traducirError(err, "", "",
			"La persona tiene expedientes asociados y no puede eliminarse")
	}
	if filas == 0 {
		return apierror.NotFound("No se encontro ninguna persona con DNI " + dni)
	}
	return nil
}
