package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DatosExpediente is one quarterly concept line inside a case file. It
// references its parent by the natural (expediente, hoja) pair and is
// cascade-deleted with it. The materia reference is nullable: deleting a
// catalog entry sets it to NULL instead of corrupting the line.
type DatosExpediente struct {
	ID         uint   `gorm:"primaryKey"`
	Expediente string `gorm:"size:8;not null;index:idx_datos_expedientes_exp_hoja"`
	Hoja       int    `gorm:"not null;index:idx_datos_expedientes_exp_hoja"`
	Orden      int    `gorm:"not null;default:1"`

	Cultivo  *string
	Poligono *string `gorm:"size:10"`
	Parcela  *string `gorm:"size:10"`
	Recinto  *string `gorm:"size:10"`

	MateriaID *uint

	// Copied from the referenced Materia at creation when not supplied
	Multiplicador decimal.Decimal  `gorm:"type:numeric(10,2);not null;default:1.00"`
	Minimo        *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Maximo        *decimal.Decimal `gorm:"type:numeric(12,2)"`

	Cantidad        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CantidadInicial decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	FechaInicio  time.Time `gorm:"type:date;not null"`
	FechaFin     time.Time `gorm:"type:date;not null"`
	Cuatrimestre int       `gorm:"not null;default:1"`

	CreatedAt time.Time

	Materia *Materia `gorm:"foreignKey:MateriaID;constraint:OnDelete:SET NULL"`
}

func (DatosExpediente) TableName() string { return "datos_expedientes" }
