package service

import (
	"context"
	"fmt"

	"aguanueva/internal/infra"
	"aguanueva/internal/repository"
)

// DocumentoService renders the standard printable forms for a case file.
type DocumentoService interface {
	GenerarSolicitud(ctx context.Context, expedienteID uint) (string, error)
}

type documentoService struct {
	expedienteRepo repository.ExpedienteRepository
	storagePath    string
}

func NewDocumentoService(expedienteRepo repository.ExpedienteRepository, storagePath string) DocumentoService {
	return &documentoService{expedienteRepo: expedienteRepo, storagePath: storagePath}
}

// GenerarSolicitud writes the solicitud PDF for the given case file and
// returns the path of the generated document.
func (s *documentoService) GenerarSolicitud(ctx context.Context, expedienteID uint) (string, error) {
	e, err := s.expedienteRepo.ObtenerPorID(ctx, expedienteID)
	if err != nil {
		return "", traducirError(err, fmt.Sprintf("No se encontro el expediente %d", expedienteID), "", "")
	}
	return infra.GenerateSolicitudPDF(e, s.storagePath)
}
