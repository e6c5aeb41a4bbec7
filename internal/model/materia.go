package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Materia is a subsidy category from the administered catalog. Its
// multiplicador / minimo / maximo act as defaults copied onto line items
// at creation time.
type Materia struct {
	ID            uint            `gorm:"primaryKey"`
	Orden         int             `gorm:"not null;uniqueIndex:idx_materias_orden_tipo"`
	Tipo          string          `gorm:"size:50;not null;uniqueIndex:idx_materias_orden_tipo"`
	Descripcion   string          `gorm:"not null"`
	Multiplicador decimal.Decimal `gorm:"type:numeric(10,2);not null;default:1.00"`
	Minimo        *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Maximo        *decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Materia) TableName() string { return "materias" }
