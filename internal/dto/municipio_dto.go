package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearMunicipioRequest struct {
	Nombre       string  `json:"nombre"        validate:"required,min=2,max=100"`
	Provincia    *string `json:"provincia"`
	CodigoPostal *string `json:"codigo_postal" validate:"omitempty,len=5,numeric"`
}

type ActualizarMunicipioRequest struct {
	Nombre       *string `json:"nombre"        validate:"omitempty,min=2,max=100"`
	Provincia    *string `json:"provincia"`
	CodigoPostal *string `json:"codigo_postal" validate:"omitempty,len=5,numeric"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type MunicipioResponse struct {
	ID           uint    `json:"id"`
	Nombre       string  `json:"nombre"`
	Provincia    *string `json:"provincia,omitempty"`
	CodigoPostal *string `json:"codigo_postal,omitempty"`
}
