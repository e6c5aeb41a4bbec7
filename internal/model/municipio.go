package model

import "time"

// Municipio is the reference table of municipalities. Rows are seeded by
// cmd/seed and referenced with RESTRICT semantics from claimants and cases.
type Municipio struct {
	ID           uint   `gorm:"primaryKey"`
	Nombre       string `gorm:"not null;index"`
	Provincia    *string
	CodigoPostal *string `gorm:"size:5"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Municipio) TableName() string { return "municipios" }
