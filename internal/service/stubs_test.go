package service

import (
	"context"
	"strings"

	"aguanueva/internal/dto"
	"aguanueva/internal/model"

	"gorm.io/gorm"
)

// In-memory fakes for the repository interfaces. They reproduce the behavior
// the services depend on: gorm.ErrRecordNotFound on misses, ErrDuplicatedKey
// on natural-key collisions and rows-affected counts on writes.

func ptr[T any](v T) *T { return &v }

// ── Municipios ────────────────────────────────────────────────────────────────

type fakeMunicipioRepo struct {
	seq         uint
	municipios  map[uint]model.Municipio
	eliminarErr error
}

func newFakeMunicipioRepo() *fakeMunicipioRepo {
	return &fakeMunicipioRepo{municipios: map[uint]model.Municipio{}}
}

func (f *fakeMunicipioRepo) Crear(_ context.Context, m *model.Municipio) error {
	f.seq++
	m.ID = f.seq
	f.municipios[m.ID] = *m
	return nil
}

func (f *fakeMunicipioRepo) ObtenerPorID(_ context.Context, id uint) (*model.Municipio, error) {
	m, ok := f.municipios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (f *fakeMunicipioRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Municipio, error) {
	for _, m := range f.municipios {
		if m.Nombre == nombre {
			return &m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMunicipioRepo) Listar(_ context.Context) ([]model.Municipio, error) {
	out := make([]model.Municipio, 0, len(f.municipios))
	for _, m := range f.municipios {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMunicipioRepo) Actualizar(_ context.Context, id uint, campos map[string]interface{}) (int64, error) {
	m, ok := f.municipios[id]
	if !ok {
		return 0, nil
	}
	if v, ok := campos["nombre"]; ok {
		m.Nombre = v.(string)
	}
	f.municipios[id] = m
	return 1, nil
}

func (f *fakeMunicipioRepo) Eliminar(_ context.Context, id uint) (int64, error) {
	if f.eliminarErr != nil {
		return 0, f.eliminarErr
	}
	if _, ok := f.municipios[id]; !ok {
		return 0, nil
	}
	delete(f.municipios, id)
	return 1, nil
}

// ── Materias ──────────────────────────────────────────────────────────────────

type fakeMateriaRepo struct {
	seq      uint
	materias map[uint]model.Materia
}

func newFakeMateriaRepo() *fakeMateriaRepo {
	return &fakeMateriaRepo{materias: map[uint]model.Materia{}}
}

func (f *fakeMateriaRepo) Crear(_ context.Context, m *model.Materia) error {
	for _, existente := range f.materias {
		if existente.Orden == m.Orden && existente.Tipo == m.Tipo {
			return gorm.ErrDuplicatedKey
		}
	}
	f.seq++
	m.ID = f.seq
	f.materias[m.ID] = *m
	return nil
}

func (f *fakeMateriaRepo) ObtenerPorID(_ context.Context, id uint) (*model.Materia, error) {
	m, ok := f.materias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (f *fakeMateriaRepo) Listar(_ context.Context) ([]model.Materia, error) {
	out := make([]model.Materia, 0, len(f.materias))
	for _, m := range f.materias {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMateriaRepo) ListarPorTipo(_ context.Context, tipo string) ([]model.Materia, error) {
	var out []model.Materia
	for _, m := range f.materias {
		if m.Tipo == tipo {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMateriaRepo) BuscarPorNombre(_ context.Context, nombre string) ([]model.Materia, error) {
	var out []model.Materia
	for _, m := range f.materias {
		if strings.Contains(strings.ToLower(m.Descripcion), strings.ToLower(nombre)) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMateriaRepo) Actualizar(_ context.Context, id uint, campos map[string]interface{}) (int64, error) {
	if _, ok := f.materias[id]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (f *fakeMateriaRepo) Eliminar(_ context.Context, id uint) (int64, error) {
	if _, ok := f.materias[id]; !ok {
		return 0, nil
	}
	delete(f.materias, id)
	return 1, nil
}

// ── Datos personales ──────────────────────────────────────────────────────────

type fakePersonasRepo struct {
	personas    map[string]model.DatosPersonales
	lastCampos  map[string]interface{}
	eliminarErr error
}

func newFakePersonasRepo() *fakePersonasRepo {
	return &fakePersonasRepo{personas: map[string]model.DatosPersonales{}}
}

func (f *fakePersonasRepo) Crear(_ context.Context, p *model.DatosPersonales) error {
	if _, ok := f.personas[p.DNI]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.personas[p.DNI] = *p
	return nil
}

func (f *fakePersonasRepo) ObtenerPorDNI(_ context.Context, dni string) (*model.DatosPersonales, error) {
	p, ok := f.personas[dni]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakePersonasRepo) Listar(_ context.Context) ([]model.DatosPersonales, error) {
	out := make([]model.DatosPersonales, 0, len(f.personas))
	for _, p := range f.personas {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePersonasRepo) BuscarPorNombre(_ context.Context, nombre, apellidos *string) ([]model.DatosPersonales, error) {
	var out []model.DatosPersonales
	for _, p := range f.personas {
		if nombre != nil && (p.Nombre == nil || *p.Nombre != *nombre) {
			continue
		}
		if apellidos != nil && p.Apellidos != *apellidos {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePersonasRepo) ListarPorMunicipio(_ context.Context, municipioID uint) ([]model.DatosPersonales, error) {
	var out []model.DatosPersonales
	for _, p := range f.personas {
		if p.MunicipioID == municipioID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePersonasRepo) Actualizar(_ context.Context, dni string, campos map[string]interface{}) (int64, error) {
	f.lastCampos = campos
	if _, ok := f.personas[dni]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (f *fakePersonasRepo) Eliminar(_ context.Context, dni string) (int64, error) {
	if f.eliminarErr != nil {
		return 0, f.eliminarErr
	}
	if _, ok := f.personas[dni]; !ok {
		return 0, nil
	}
	delete(f.personas, dni)
	return 1, nil
}

// ── Expedientes ───────────────────────────────────────────────────────────────

type fakeExpedienteRepo struct {
	seq         uint
	expedientes map[uint]model.Expediente
	lastCampos  map[string]interface{}

	// When set, Eliminar drops the line items of the deleted case file,
	// mirroring the ON DELETE CASCADE of the real schema.
	lineas *fakeDatosRepo
}

func newFakeExpedienteRepo() *fakeExpedienteRepo {
	return &fakeExpedienteRepo{expedientes: map[uint]model.Expediente{}}
}

// DB returns nil so runTx executes the callback directly, without a real
// transaction.
func (f *fakeExpedienteRepo) DB() *gorm.DB { return nil }

func (f *fakeExpedienteRepo) Crear(_ context.Context, _ *gorm.DB, e *model.Expediente) error {
	for _, existente := range f.expedientes {
		if existente.Codigo == e.Codigo && existente.Hoja == e.Hoja {
			return gorm.ErrDuplicatedKey
		}
	}
	f.seq++
	e.ID = f.seq
	f.expedientes[e.ID] = *e
	return nil
}

func (f *fakeExpedienteRepo) ObtenerPorID(_ context.Context, id uint) (*model.Expediente, error) {
	e, ok := f.expedientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (f *fakeExpedienteRepo) ObtenerPorCodigoHoja(_ context.Context, codigo string, hoja int) (*model.Expediente, error) {
	for _, e := range f.expedientes {
		if e.Codigo == codigo && e.Hoja == hoja {
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeExpedienteRepo) Listar(_ context.Context, _ dto.ExpedienteFilter) ([]model.Expediente, error) {
	out := make([]model.Expediente, 0, len(f.expedientes))
	for _, e := range f.expedientes {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeExpedienteRepo) ListarPorFechas(_ context.Context, desde, hasta *string) ([]model.Expediente, error) {
	var out []model.Expediente
	for _, e := range f.expedientes {
		fecha := fmtFecha(e.Fecha)
		if desde != nil && fecha < *desde {
			continue
		}
		if hasta != nil && fecha > *hasta {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeExpedienteRepo) ListarPorDNI(_ context.Context, dni string) ([]model.Expediente, error) {
	var out []model.Expediente
	for _, e := range f.expedientes {
		if e.DNI == dni {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpedienteRepo) ListarPorMunicipio(_ context.Context, municipioID uint) ([]model.Expediente, error) {
	var out []model.Expediente
	for _, e := range f.expedientes {
		if e.MunicipioID == municipioID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpedienteRepo) Actualizar(_ context.Context, id uint, campos map[string]interface{}) (int64, error) {
	f.lastCampos = campos
	if _, ok := f.expedientes[id]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (f *fakeExpedienteRepo) Eliminar(_ context.Context, id uint) (int64, error) {
	e, ok := f.expedientes[id]
	if !ok {
		return 0, nil
	}
	delete(f.expedientes, id)
	if f.lineas != nil {
		for lid, d := range f.lineas.datos {
			if d.Expediente == e.Codigo && d.Hoja == e.Hoja {
				delete(f.lineas.datos, lid)
			}
		}
	}
	return 1, nil
}

// ── Datos de expediente ───────────────────────────────────────────────────────

type fakeDatosRepo struct {
	seq        uint
	datos      map[uint]model.DatosExpediente
	lastCampos map[string]interface{}
}

func newFakeDatosRepo() *fakeDatosRepo {
	return &fakeDatosRepo{datos: map[uint]model.DatosExpediente{}}
}

func (f *fakeDatosRepo) Crear(_ context.Context, _ *gorm.DB, d *model.DatosExpediente) error {
	f.seq++
	d.ID = f.seq
	f.datos[d.ID] = *d
	return nil
}

func (f *fakeDatosRepo) ObtenerPorID(_ context.Context, id uint) (*model.DatosExpediente, error) {
	d, ok := f.datos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (f *fakeDatosRepo) ListarPorExpediente(_ context.Context, codigo string) ([]model.DatosExpediente, error) {
	var out []model.DatosExpediente
	for _, d := range f.datos {
		if d.Expediente == codigo {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDatosRepo) ListarPorExpedienteHoja(_ context.Context, codigo string, hoja int) ([]model.DatosExpediente, error) {
	var out []model.DatosExpediente
	for _, d := range f.datos {
		if d.Expediente == codigo && d.Hoja == hoja {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDatosRepo) ListarPorFechas(_ context.Context, desde, hasta *string) ([]model.DatosExpediente, error) {
	var out []model.DatosExpediente
	for _, d := range f.datos {
		if desde != nil && fmtFecha(d.FechaInicio) < *desde {
			continue
		}
		if hasta != nil && fmtFecha(d.FechaFin) > *hasta {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDatosRepo) Actualizar(_ context.Context, id uint, campos map[string]interface{}) (int64, error) {
	f.lastCampos = campos
	if _, ok := f.datos[id]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (f *fakeDatosRepo) Eliminar(_ context.Context, id uint) (int64, error) {
	if _, ok := f.datos[id]; !ok {
		return 0, nil
	}
	delete(f.datos, id)
	return 1, nil
}
