package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearExpedienteRequest struct {
	Codigo      string `json:"expediente" validate:"required,expediente"`
	Hoja        int    `json:"hoja"       validate:"required,min=1"`
	DNI         string `json:"dni"        validate:"required,dni"`
	MunicipioID uint   `json:"id_mun"     validate:"required"`
	Fecha       string `json:"fecha"      validate:"required,datetime=2006-01-02"`

	Lugar           *string `json:"lugar"`
	Localidad       *string `json:"localidad"`
	TitularContador *string `json:"titular_contador"  validate:"omitempty,max=100"`
	PolizaContador  *string `json:"poliza_contador"   validate:"omitempty,max=50"`
	Observaciones   *string `json:"observaciones"`
}

// CrearExpedienteCompletoRequest creates a case file together with its line
// items in a single transaction.
type CrearExpedienteCompletoRequest struct {
	CrearExpedienteRequest
	Datos []CrearDatosExpedienteLinea `json:"datos" validate:"omitempty,dive"`
}

// ActualizarExpedienteRequest is a partial update. The natural key
// (expediente, hoja) is immutable; technician review fields live here.
type ActualizarExpedienteRequest struct {
	DNI         *string `json:"dni"    validate:"omitempty,dni"`
	MunicipioID *uint   `json:"id_mun"`
	Fecha       *string `json:"fecha"  validate:"omitempty,datetime=2006-01-02"`

	Lugar           *string `json:"lugar"`
	Localidad       *string `json:"localidad"`
	TitularContador *string `json:"titular_contador" validate:"omitempty,max=100"`
	PolizaContador  *string `json:"poliza_contador"  validate:"omitempty,max=50"`
	Observaciones   *string `json:"observaciones"`

	Tecnico              *string `json:"tecnico"`
	FechaInforme         *string `json:"fecha_informe" validate:"omitempty,datetime=2006-01-02"`
	DiasTranscurridos    *int    `json:"dias_transcurridos" validate:"omitempty,min=0"`
	ObservacionesTecnico *string `json:"observaciones_tecnico"`
	Informe              *string `json:"informe"`
}

// ExpedienteFilter is the typed AND-filter for the list endpoint. Every field
// is optional; each set field compiles to one parameterized predicate.
type ExpedienteFilter struct {
	DNI         string `form:"dni"`
	Nombre      string `form:"nombre"`
	Apellidos   string `form:"apellidos"`
	Desde       string `form:"desde"  validate:"omitempty,datetime=2006-01-02"`
	Hasta       string `form:"hasta"  validate:"omitempty,datetime=2006-01-02"`
	MunicipioID uint   `form:"id_mun"`
	Localidad   string `form:"localidad"`
	Tecnico     string `form:"tecnico"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ExpedienteResponse struct {
	ID          uint    `json:"id"`
	Codigo      string  `json:"expediente"`
	Hoja        int     `json:"hoja"`
	DNI         string  `json:"dni"`
	MunicipioID uint    `json:"id_mun"`
	Municipio   *string `json:"municipio,omitempty"`
	Fecha       string  `json:"fecha"`

	Lugar           *string `json:"lugar,omitempty"`
	Localidad       *string `json:"localidad,omitempty"`
	TitularContador *string `json:"titular_contador,omitempty"`
	PolizaContador  *string `json:"poliza_contador,omitempty"`
	Observaciones   *string `json:"observaciones,omitempty"`

	Tecnico              *string `json:"tecnico,omitempty"`
	FechaInforme         *string `json:"fecha_informe,omitempty"`
	DiasTranscurridos    *int    `json:"dias_transcurridos,omitempty"`
	ObservacionesTecnico *string `json:"observaciones_tecnico,omitempty"`
	Informe              *string `json:"informe,omitempty"`

	Datos []DatosExpedienteResponse `json:"datos,omitempty"`
}
