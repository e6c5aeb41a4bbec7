package handler

import (
	"aguanueva/internal/service"

	"github.com/gin-gonic/gin"
)

type DocumentosHandler struct{ svc service.DocumentoService }

func NewDocumentosHandler(svc service.DocumentoService) *DocumentosHandler {
	return &DocumentosHandler{svc: svc}
}

// DescargarSolicitud GET /api/expedientes/:id/solicitud
func (h *DocumentosHandler) DescargarSolicitud(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	path, err := h.svc.GenerarSolicitud(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "solicitud.pdf")
}
