package repository

import (
	"context"

	"aguanueva/internal/dto"
	"aguanueva/internal/model"

	"gorm.io/gorm"
)

type ExpedienteRepository interface {
	Crear(ctx context.Context, tx *gorm.DB, e *model.Expediente) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Expediente, error)
	ObtenerPorCodigoHoja(ctx context.Context, codigo string, hoja int) (*model.Expediente, error)
	Listar(ctx context.Context, filter dto.ExpedienteFilter) ([]model.Expediente, error)
	ListarPorFechas(ctx context.Context, desde, hasta *string) ([]model.Expediente, error)
	ListarPorDNI(ctx context.Context, dni string) ([]model.Expediente, error)
	ListarPorMunicipio(ctx context.Context, municipioID uint) ([]model.Expediente, error)
	Actualizar(ctx context.Context, id uint, campos map[string]interface{}) (int64, error)
	Eliminar(ctx context.Context, id uint) (int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type expedienteRepo struct{ db *gorm.DB }

func NewExpedienteRepository(db *gorm.DB) ExpedienteRepository { return &expedienteRepo{db: db} }

func (r *expedienteRepo) DB() *gorm.DB { return r.db }

// Crear inserts within tx when one is supplied (transactional create of case
// file plus line items), or on the repository connection otherwise.
func (r *expedienteRepo) Crear(ctx context.Context, tx *gorm.DB, e *model.Expediente) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(e).Error
}

func (r *expedienteRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Expediente, error) {
	var e model.Expediente
	err := r.db.WithContext(ctx).
		Preload("Titular").Preload("Municipio").Preload("Datos.Materia").
		First(&e, id).Error
	return &e, err
}

func (r *expedienteRepo) ObtenerPorCodigoHoja(ctx context.Context, codigo string, hoja int) (*model.Expediente, error) {
	var e model.Expediente
	err := r.db.WithContext(ctx).
		Preload("Titular").Preload("Municipio").Preload("Datos.Materia").
		Where("expediente = ? AND hoja = ?", codigo, hoja).
		First(&e).Error
	return &e, err
}

// Listar compiles the typed filter into one parameterized predicate per set
// field, AND-combined. An empty filter returns the full set.
func (r *expedienteRepo) Listar(ctx context.Context, f dto.ExpedienteFilter) ([]model.Expediente, error) {
	q := r.db.WithContext(ctx).Model(&model.Expediente{}).
		Preload("Titular").Preload("Municipio")

	if f.DNI != "" {
		q = q.Where("expedientes.dni = ?", f.DNI)
	}
	if f.Nombre != "" || f.Apellidos != "" {
		q = q.Joins("JOIN datos_personales ON datos_personales.dni = expedientes.dni")
		if f.Nombre != "" {
			q = q.Where("datos_personales.nombre = ?", f.Nombre)
		}
		if f.Apellidos != "" {
			q = q.Where("datos_personales.apellidos = ?", f.Apellidos)
		}
	}
	if f.Desde != "" {
		q = q.Where("expedientes.fecha >= ?", f.Desde)
	}
	if f.Hasta != "" {
		q = q.Where("expedientes.fecha <= ?", f.Hasta)
	}
	if f.MunicipioID != 0 {
		q = q.Where("expedientes.municipio_id = ?", f.MunicipioID)
	}
	if f.Localidad != "" {
		q = q.Where("expedientes.localidad = ?", f.Localidad)
	}
	if f.Tecnico != "" {
		q = q.Where("expedientes.tecnico = ?", f.Tecnico)
	}

	var expedientes []model.Expediente
	err := q.Order("expedientes.expediente, expedientes.hoja").Find(&expedientes).Error
	return expedientes, err
}

// ListarPorFechas builds an inclusive range over the filing date; either
// bound may be nil (the service guarantees at least one is set).
func (r *expedienteRepo) ListarPorFechas(ctx context.Context, desde, hasta *string) ([]model.Expediente, error) {
	q := r.db.WithContext(ctx).Preload("Titular").Preload("Municipio")
	if desde != nil {
		q = q.Where("fecha >= ?", *desde)
	}
	if hasta != nil {
		q = q.Where("fecha <= ?", *hasta)
	}
	var expedientes []model.Expediente
	err := q.Order("fecha").Find(&expedientes).Error
	return expedientes, err
}

func (r *expedienteRepo) ListarPorDNI(ctx context.Context, dni string) ([]model.Expediente, error) {
	var expedientes []model.Expediente
	err := r.db.WithContext(ctx).Preload("Municipio").
		Where("dni = ?", dni).
		Order("expediente, hoja").Find(&expedientes).Error
	return expedientes, err
}

// ListarPorMunicipio joins on the municipality FK, not on the locality string.
func (r *expedienteRepo) ListarPorMunicipio(ctx context.Context, municipioID uint) ([]model.Expediente, error) {
	var expedientes []model.Expediente
	err := r.db.WithContext(ctx).Preload("Titular").Preload("Municipio").
		Where("municipio_id = ?", municipioID).
		Order("expediente, hoja").Find(&expedientes).Error
	return expedientes, err
}

func (r *expedienteRepo) Actualizar(ctx context.Context, id uint, campos map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Expediente{}).Where("id = ?", id).Updates(campos)
	return res.RowsAffected, res.Error
}

// Eliminar removes the case file; the composite FK cascade deletes its line
// items in the same statement.
func (r *expedienteRepo) Eliminar(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Expediente{}, id)
	return res.RowsAffected, res.Error
}
