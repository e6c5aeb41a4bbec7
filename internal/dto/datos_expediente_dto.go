package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CrearDatosExpedienteLinea carries one quarterly concept line. It is used
// standalone (POST /datos-expedientes, with the parent reference) and nested
// inside CrearExpedienteCompletoRequest (reference supplied by the parent).
type CrearDatosExpedienteLinea struct {
	Orden int `json:"orden" validate:"omitempty,min=1"`

	Cultivo  *string `json:"cultivo"`
	Poligono *string `json:"poligono" validate:"omitempty,max=10"`
	Parcela  *string `json:"parcela"  validate:"omitempty,max=10"`
	Recinto  *string `json:"recinto"  validate:"omitempty,max=10"`

	MateriaID *uint `json:"id_materia"`

	// When omitted these default from the referenced Materia
	Multiplicador *decimal.Decimal `json:"multiplicador" validate:"omitempty,gt=0"`
	Minimo        *decimal.Decimal `json:"minimo"        validate:"omitempty,min=0"`
	Maximo        *decimal.Decimal `json:"maximo"        validate:"omitempty,min=0"`

	// Zero is a legal declared quantity, so no required tag: through the
	// registered decimal type func it would reject 0 as the empty value.
	Cantidad        decimal.Decimal  `json:"cantidad"         validate:"min=0"`
	CantidadInicial *decimal.Decimal `json:"cantidad_inicial" validate:"omitempty,min=0"`

	FechaInicio string `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string `json:"fecha_fin"    validate:"required,datetime=2006-01-02"`

	Cuatrimestre int `json:"cuatri" validate:"required,min=1,max=3"`
}

type CrearDatosExpedienteRequest struct {
	Expediente string `json:"expediente" validate:"required,expediente"`
	Hoja       int    `json:"hoja"       validate:"required,min=1"`
	CrearDatosExpedienteLinea
}

type ActualizarDatosExpedienteRequest struct {
	Orden *int `json:"orden" validate:"omitempty,min=1"`

	Cultivo  *string `json:"cultivo"`
	Poligono *string `json:"poligono" validate:"omitempty,max=10"`
	Parcela  *string `json:"parcela"  validate:"omitempty,max=10"`
	Recinto  *string `json:"recinto"  validate:"omitempty,max=10"`

	MateriaID *uint `json:"id_materia"`

	Multiplicador *decimal.Decimal `json:"multiplicador" validate:"omitempty,gt=0"`
	Minimo        *decimal.Decimal `json:"minimo"        validate:"omitempty,min=0"`
	Maximo        *decimal.Decimal `json:"maximo"        validate:"omitempty,min=0"`

	Cantidad        *decimal.Decimal `json:"cantidad"         validate:"omitempty,min=0"`
	CantidadInicial *decimal.Decimal `json:"cantidad_inicial" validate:"omitempty,min=0"`

	FechaInicio *string `json:"fecha_inicio" validate:"omitempty,datetime=2006-01-02"`
	FechaFin    *string `json:"fecha_fin"    validate:"omitempty,datetime=2006-01-02"`

	Cuatrimestre *int `json:"cuatri" validate:"omitempty,min=1,max=3"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type DatosExpedienteResponse struct {
	ID         uint   `json:"id"`
	Expediente string `json:"expediente"`
	Hoja       int    `json:"hoja"`
	Orden      int    `json:"orden"`

	Cultivo  *string `json:"cultivo,omitempty"`
	Poligono *string `json:"poligono,omitempty"`
	Parcela  *string `json:"parcela,omitempty"`
	Recinto  *string `json:"recinto,omitempty"`

	MateriaID *uint   `json:"id_materia,omitempty"`
	Materia   *string `json:"materia,omitempty"`

	Multiplicador decimal.Decimal  `json:"multiplicador"`
	Minimo        *decimal.Decimal `json:"minimo,omitempty"`
	Maximo        *decimal.Decimal `json:"maximo,omitempty"`

	Cantidad        decimal.Decimal `json:"cantidad"`
	CantidadInicial decimal.Decimal `json:"cantidad_inicial"`

	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`

	Cuatrimestre int `json:"cuatri"`
}
