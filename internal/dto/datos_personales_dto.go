package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearDatosPersonalesRequest struct {
	DNI          string  `json:"dni"           validate:"required,dni"`
	Apellidos    string  `json:"apellidos"     validate:"required,min=2"`
	Nombre       *string `json:"nombre"`
	Direccion    *string `json:"direccion"`
	Localidad    *string `json:"localidad"`
	CodigoPostal *string `json:"codigo_postal" validate:"omitempty,len=5,numeric"`
	MunicipioID  uint    `json:"id_mun"        validate:"required"`
	Telefono     *string `json:"telefono"      validate:"omitempty,len=9,numeric"`
	Email        string  `json:"email"         validate:"required,email"`

	ActividadAgropec string `json:"actividad_agropec" validate:"required,oneof=si no"`

	PersonaFisica              bool `json:"persona_fisica"`
	PersonaJuridica            bool `json:"persona_juridica"`
	AgricultorProf             bool `json:"agricultor_prof"`
	AgricultorParcial          bool `json:"agricultor_parcial"`
	TrabajadoresAsalariados    bool `json:"trabajadores_asalariados"`
	NumTrabajadores            int  `json:"num_trabajadores"      validate:"min=0"`
	DiscapacidadAgricultorProf bool `json:"discapacidad_agricultor_prof"`
	NumAgricultoresProf        int  `json:"num_agricultores_prof" validate:"min=0"`
}

// ActualizarDatosPersonalesRequest is a partial update: only non-nil fields
// are written. The DNI itself is immutable.
type ActualizarDatosPersonalesRequest struct {
	Apellidos    *string `json:"apellidos"     validate:"omitempty,min=2"`
	Nombre       *string `json:"nombre"`
	Direccion    *string `json:"direccion"`
	Localidad    *string `json:"localidad"`
	CodigoPostal *string `json:"codigo_postal" validate:"omitempty,len=5,numeric"`
	MunicipioID  *uint   `json:"id_mun"`
	Telefono     *string `json:"telefono"      validate:"omitempty,len=9,numeric"`
	Email        *string `json:"email"         validate:"omitempty,email"`

	ActividadAgropec *string `json:"actividad_agropec" validate:"omitempty,oneof=si no"`

	PersonaFisica              *bool `json:"persona_fisica"`
	PersonaJuridica            *bool `json:"persona_juridica"`
	AgricultorProf             *bool `json:"agricultor_prof"`
	AgricultorParcial          *bool `json:"agricultor_parcial"`
	TrabajadoresAsalariados    *bool `json:"trabajadores_asalariados"`
	NumTrabajadores            *int  `json:"num_trabajadores"      validate:"omitempty,min=0"`
	DiscapacidadAgricultorProf *bool `json:"discapacidad_agricultor_prof"`
	NumAgricultoresProf        *int  `json:"num_agricultores_prof" validate:"omitempty,min=0"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type DatosPersonalesResponse struct {
	DNI          string  `json:"dni"`
	Apellidos    string  `json:"apellidos"`
	Nombre       *string `json:"nombre,omitempty"`
	Direccion    *string `json:"direccion,omitempty"`
	Localidad    *string `json:"localidad,omitempty"`
	CodigoPostal *string `json:"codigo_postal,omitempty"`
	MunicipioID  uint    `json:"id_mun"`
	Municipio    *string `json:"municipio,omitempty"`
	Telefono     *string `json:"telefono,omitempty"`
	Email        string  `json:"email"`

	ActividadAgropec string `json:"actividad_agropec"`

	PersonaFisica              bool `json:"persona_fisica"`
	PersonaJuridica            bool `json:"persona_juridica"`
	AgricultorProf             bool `json:"agricultor_prof"`
	AgricultorParcial          bool `json:"agricultor_parcial"`
	TrabajadoresAsalariados    bool `json:"trabajadores_asalariados"`
	NumTrabajadores            int  `json:"num_trabajadores"`
	DiscapacidadAgricultorProf bool `json:"discapacidad_agricultor_prof"`
	NumAgricultoresProf        int  `json:"num_agricultores_prof"`
}
