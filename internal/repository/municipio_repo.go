package repository

import (
	"context"

	"aguanueva/internal/model"

	"gorm.io/gorm"
)

type MunicipioRepository interface {
	Crear(ctx context.Context, m *model.Municipio) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Municipio, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Municipio, error)
	Listar(ctx context.Context) ([]model.Municipio, error)
	Actualizar(ctx context.Context, id uint, campos map[string]interface{}) (int64, error)
	Eliminar(ctx context.Context, id uint) (int64, error)
}

type municipioRepo struct{ db *gorm.DB }

func NewMunicipioRepository(db *gorm.DB) MunicipioRepository { return &municipioRepo{db: db} }

func (r *municipioRepo) Crear(ctx context.Context, m *model.Municipio) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *municipioRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Municipio, error) {
	var m model.Municipio
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *municipioRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Municipio, error) {
	var m model.Municipio
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&m).Error
	return &m, err
}

func (r *municipioRepo) Listar(ctx context.Context) ([]model.Municipio, error) {
	var municipios []model.Municipio
	err := r.db.WithContext(ctx).Order("nombre").Find(&municipios).Error
	return municipios, err
}

// Actualizar writes only the supplied columns and reports the affected row
// count in the same round trip; zero rows means the ID does not exist.
func (r *municipioRepo) Actualizar(ctx context.Context, id uint, campos map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Municipio{}).Where("id = ?", id).Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *municipioRepo) Eliminar(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Municipio{}, id)
	return res.RowsAffected, res.Error
}
