package repository

import (
	"context"

	"aguanueva/internal/model"

	"gorm.io/gorm"
)

type MateriaRepository interface {
	Crear(ctx context.Context, m *model.Materia) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Materia, error)
	Listar(ctx context.Context) ([]model.Materia, error)
	ListarPorTipo(ctx context.Context, tipo string) ([]model.Materia, error)
	BuscarPorNombre(ctx context.Context, nombre string) ([]model.Materia, error)
	Actualizar(ctx context.Context, id uint, campos map[string]interface{}) (int64, error)
	Eliminar(ctx context.Context, id uint) (int64, error)
}

type materiaRepo struct{ db *gorm.DB }

func NewMateriaRepository(db *gorm.DB) MateriaRepository { return &materiaRepo{db: db} }

func (r *materiaRepo) Crear(ctx context.Context, m *model.Materia) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materiaRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Materia, error) {
	var m model.Materia
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *materiaRepo) Listar(ctx context.Context) ([]model.Materia, error) {
	var materias []model.Materia
	err := r.db.WithContext(ctx).Order("orden").Find(&materias).Error
	return materias, err
}

func (r *materiaRepo) ListarPorTipo(ctx context.Context, tipo string) ([]model.Materia, error) {
	var materias []model.Materia
	err := r.db.WithContext(ctx).Where("tipo = ?", tipo).Order("orden").Find(&materias).Error
	return materias, err
}

func (r *materiaRepo) BuscarPorNombre(ctx context.Context, nombre string) ([]model.Materia, error) {
	var materias []model.Materia
	err := r.db.WithContext(ctx).Where("descripcion ILIKE ?", "%"+nombre+"%").Order("orden").Find(&materias).Error
	return materias, err
}

func (r *materiaRepo) Actualizar(ctx context.Context, id uint, campos map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Materia{}).Where("id = ?", id).Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *materiaRepo) Eliminar(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Materia{}, id)
	return res.RowsAffected, res.Error
}
