package repository

import (
	"context"

	"aguanueva/internal/model"

	"gorm.io/gorm"
)

type DatosPersonalesRepository interface {
	Crear(ctx context.Context, p *model.DatosPersonales) error
	ObtenerPorDNI(ctx context.Context, dni string) (*model.DatosPersonales, error)
	Listar(ctx context.Context) ([]model.DatosPersonales, error)
	BuscarPorNombre(ctx context.Context, nombre, apellidos *string) ([]model.DatosPersonales, error)
	ListarPorMunicipio(ctx context.Context, municipioID uint) ([]model.DatosPersonales, error)
	Actualizar(ctx context.Context, dni string, campos map[string]interface{}) (int64, error)
	Eliminar(ctx context.Context, dni string) (int64, error)
}

type datosPersonalesRepo struct{ db *gorm.DB }

func NewDatosPersonalesRepository(db *gorm.DB) DatosPersonalesRepository {
	return &datosPersonalesRepo{db: db}
}

func (r *datosPersonalesRepo) Crear(ctx context.Context, p *model.DatosPersonales) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *datosPersonalesRepo) ObtenerPorDNI(ctx context.Context, dni string) (*model.DatosPersonales, error) {
	var p model.DatosPersonales
	err := r.db.WithContext(ctx).Preload("Municipio").Where("dni = ?", dni).First(&p).Error
	return &p, err
}

func (r *datosPersonalesRepo) Listar(ctx context.Context) ([]model.DatosPersonales, error) {
	var personas []model.DatosPersonales
	err := r.db.WithContext(ctx).Preload("Municipio").Order("apellidos").Find(&personas).Error
	return personas, err
}

// BuscarPorNombre matches the supplied fields exactly (not fuzzy). At least
// one of the two must be set; the service enforces that before calling.
func (r *datosPersonalesRepo) BuscarPorNombre(ctx context.Context, nombre, apellidos *string) ([]model.DatosPersonales, error) {
	q := r.db.WithContext(ctx).Preload("Municipio")
	if nombre != nil {
		q = q.Where("nombre = ?", *nombre)
	}
	if apellidos != nil {
		q = q.Where("apellidos = ?", *apellidos)
	}
	var personas []model.DatosPersonales
	err := q.Order("apellidos").Find(&personas).Error
	return personas, err
}

// ListarPorMunicipio joins on the municipality FK, not on the stored locality
// string.
func (r *datosPersonalesRepo) ListarPorMunicipio(ctx context.Context, municipioID uint) ([]model.DatosPersonales, error) {
	var personas []model.DatosPersonales
	err := r.db.WithContext(ctx).Preload("Municipio").
		Where("municipio_id = ?", municipioID).
		Order("apellidos").Find(&personas).Error
	return personas, err
}

func (r *datosPersonalesRepo) Actualizar(ctx context.Context, dni string, campos map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.DatosPersonales{}).Where("dni = ?", dni).Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *datosPersonalesRepo) Eliminar(ctx context.Context, dni string) (int64, error) {
	res := r.db.WithContext(ctx).Where("dni = ?", dni).Delete(&model.DatosPersonales{})
	return res.RowsAffected, res.Error
}
