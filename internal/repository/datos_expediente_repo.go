package repository

import (
	"context"

	"aguanueva/internal/model"

	"gorm.io/gorm"
)

type DatosExpedienteRepository interface {
	Crear(ctx context.Context, tx *gorm.DB, d *model.DatosExpediente) error
	ObtenerPorID(ctx context.Context, id uint) (*model.DatosExpediente, error)
	ListarPorExpediente(ctx context.Context, codigo string) ([]model.DatosExpediente, error)
	ListarPorExpedienteHoja(ctx context.Context, codigo string, hoja int) ([]model.DatosExpediente, error)
	ListarPorFechas(ctx context.Context, desde, hasta *string) ([]model.DatosExpediente, error)
	Actualizar(ctx context.Context, id uint, campos map[string]interface{}) (int64, error)
	Eliminar(ctx context.Context, id uint) (int64, error)
}

type datosExpedienteRepo struct{ db *gorm.DB }

func NewDatosExpedienteRepository(db *gorm.DB) DatosExpedienteRepository {
	return &datosExpedienteRepo{db: db}
}

func (r *datosExpedienteRepo) Crear(ctx context.Context, tx *gorm.DB, d *model.DatosExpediente) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(d).Error
}

func (r *datosExpedienteRepo) ObtenerPorID(ctx context.Context, id uint) (*model.DatosExpediente, error) {
	var d model.DatosExpediente
	err := r.db.WithContext(ctx).Preload("Materia").First(&d, id).Error
	return &d, err
}

// ListarPorExpediente returns the lines of every sheet of the case, matching
// the lookup the quarterly-concepts screen performs.
func (r *datosExpedienteRepo) ListarPorExpediente(ctx context.Context, codigo string) ([]model.DatosExpediente, error) {
	var datos []model.DatosExpediente
	err := r.db.WithContext(ctx).Preload("Materia").
		Where("expediente = ?", codigo).
		Order("hoja, orden").Find(&datos).Error
	return datos, err
}

func (r *datosExpedienteRepo) ListarPorExpedienteHoja(ctx context.Context, codigo string, hoja int) ([]model.DatosExpediente, error) {
	var datos []model.DatosExpediente
	err := r.db.WithContext(ctx).Preload("Materia").
		Where("expediente = ? AND hoja = ?", codigo, hoja).
		Order("orden").Find(&datos).Error
	return datos, err
}

// ListarPorFechas ranges over the validity start/end dates of the line itself.
func (r *datosExpedienteRepo) ListarPorFechas(ctx context.Context, desde, hasta *string) ([]model.DatosExpediente, error) {
	q := r.db.WithContext(ctx).Preload("Materia")
	if desde != nil {
		q = q.Where("fecha_inicio >= ?", *desde)
	}
	if hasta != nil {
		q = q.Where("fecha_fin <= ?", *hasta)
	}
	var datos []model.DatosExpediente
	err := q.Order("expediente, hoja, orden").Find(&datos).Error
	return datos, err
}

func (r *datosExpedienteRepo) Actualizar(ctx context.Context, id uint, campos map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.DatosExpediente{}).Where("id = ?", id).Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *datosExpedienteRepo) Eliminar(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.DatosExpediente{}, id)
	return res.RowsAffected, res.Error
}
