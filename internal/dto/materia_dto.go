package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearMateriaRequest struct {
	Orden         int              `json:"orden"         validate:"required,min=1"`
	Tipo          string           `json:"tipo"          validate:"required,min=1,max=50"`
	Descripcion   string           `json:"descripcion"   validate:"required,min=2"`
	Multiplicador *decimal.Decimal `json:"multiplicador" validate:"omitempty,gt=0"`
	Minimo        *decimal.Decimal `json:"minimo"        validate:"omitempty,min=0"`
	Maximo        *decimal.Decimal `json:"maximo"        validate:"omitempty,min=0"`
}

type ActualizarMateriaRequest struct {
	Orden         *int             `json:"orden"         validate:"omitempty,min=1"`
	Tipo          *string          `json:"tipo"          validate:"omitempty,min=1,max=50"`
	Descripcion   *string          `json:"descripcion"   validate:"omitempty,min=2"`
	Multiplicador *decimal.Decimal `json:"multiplicador" validate:"omitempty,gt=0"`
	Minimo        *decimal.Decimal `json:"minimo"        validate:"omitempty,min=0"`
	Maximo        *decimal.Decimal `json:"maximo"        validate:"omitempty,min=0"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type MateriaResponse struct {
	ID            uint             `json:"id"`
	Orden         int              `json:"orden"`
	Tipo          string           `json:"tipo"`
	Descripcion   string           `json:"descripcion"`
	Multiplicador decimal.Decimal  `json:"multiplicador"`
	Minimo        *decimal.Decimal `json:"minimo,omitempty"`
	Maximo        *decimal.Decimal `json:"maximo,omitempty"`
}
