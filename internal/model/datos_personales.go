package model

import "time"

// DatosPersonales is one claimant, keyed by national ID (DNI/NIE).
// Municipality is a hard FK with RESTRICT on delete; deleting a claimant is
// likewise blocked while case files reference it.
type DatosPersonales struct {
	DNI          string `gorm:"primaryKey;size:9"`
	Apellidos    string `gorm:"not null"`
	Nombre       *string
	Direccion    *string
	Localidad    *string
	CodigoPostal *string `gorm:"size:5"`
	MunicipioID  uint    `gorm:"not null"`
	Telefono     *string `gorm:"size:9"`
	Email        string  `gorm:"not null"`

	// "si" / "no": whether the claimant declares agricultural activity
	ActividadAgropec string `gorm:"size:2;not null;default:'no'"`

	// Classification flags from the intake form
	PersonaFisica              bool `gorm:"not null;default:false"`
	PersonaJuridica            bool `gorm:"not null;default:false"`
	AgricultorProf             bool `gorm:"not null;default:false"`
	AgricultorParcial          bool `gorm:"not null;default:false"`
	TrabajadoresAsalariados    bool `gorm:"not null;default:false"`
	NumTrabajadores            int  `gorm:"not null;default:0"`
	DiscapacidadAgricultorProf bool `gorm:"not null;default:false"`
	NumAgricultoresProf        int  `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Municipio   Municipio    `gorm:"foreignKey:MunicipioID;constraint:OnDelete:RESTRICT"`
	Expedientes []Expediente `gorm:"foreignKey:DNI;references:DNI;constraint:OnDelete:RESTRICT"`
}

func (DatosPersonales) TableName() string { return "datos_personales" }
