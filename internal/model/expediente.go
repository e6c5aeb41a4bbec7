package model

import "time"

// Expediente is a subsidy case file. It carries a surrogate ID for routing
// plus the natural (codigo, hoja) pair: a case may have several "hojas"
// (sheets) representing revisions or periods, and the pair is unique.
//
// Expediente owns its DatosExpediente children exclusively: deleting a case
// cascade-deletes its line items.
type Expediente struct {
	ID     uint   `gorm:"primaryKey"`
	Codigo string `gorm:"column:expediente;size:8;not null;uniqueIndex:idx_expedientes_codigo_hoja"`
	Hoja   int    `gorm:"not null;uniqueIndex:idx_expedientes_codigo_hoja"`

	DNI         string `gorm:"size:9;not null;index"`
	MunicipioID uint   `gorm:"not null"`

	Fecha           time.Time `gorm:"type:date;not null"`
	Lugar           *string
	Localidad       *string
	TitularContador *string
	PolizaContador  *string
	Observaciones   *string

	// Technician review, filled after intake. A non-empty Informe is what
	// the UI treats as "tramitado".
	Tecnico              *string
	FechaInforme         *time.Time `gorm:"type:date"`
	DiasTranscurridos    *int
	ObservacionesTecnico *string
	Informe              *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Titular   DatosPersonales   `gorm:"foreignKey:DNI;references:DNI;constraint:OnDelete:RESTRICT"`
	Municipio Municipio         `gorm:"foreignKey:MunicipioID;constraint:OnDelete:RESTRICT"`
	Datos     []DatosExpediente `gorm:"foreignKey:Expediente,Hoja;references:Codigo,Hoja;constraint:OnDelete:CASCADE"`
}

func (Expediente) TableName() string { return "expedientes" }
