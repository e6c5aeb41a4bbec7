package handler

import (
	"net/http"
	"strconv"

	"aguanueva/internal/apierror"
	"aguanueva/internal/dto"
	"aguanueva/internal/service"

	"github.com/gin-gonic/gin"
)

type DatosExpedientesHandler struct{ svc service.DatosExpedienteService }

func NewDatosExpedientesHandler(svc service.DatosExpedienteService) *DatosExpedientesHandler {
	return &DatosExpedientesHandler{svc: svc}
}

// Crear POST /api/datos-expedientes
func (h *DatosExpedientesHandler) Crear(c *gin.Context) {
	var req dto.CrearDatosExpedienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorID GET /api/datos-expedientes/:id
func (h *DatosExpedientesHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorExpediente GET /api/datos-expedientes/expediente/:codigo[?hoja=]
// Without hoja it returns the lines of every sheet of the case.
func (h *DatosExpedientesHandler) ListarPorExpediente(c *gin.Context) {
	codigo := c.Param("codigo")
	if v, present := c.GetQuery("hoja"); present && v != "" {
		hoja, err := strconv.Atoi(v)
		if err != nil || hoja < 1 {
			c.JSON(http.StatusBadRequest, apierror.New("Hoja invalida"))
			return
		}
		resp, svcErr := h.svc.ListarPorExpedienteHoja(c.Request.Context(), codigo, hoja)
		if svcErr != nil {
			respondError(c, svcErr)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.ListarPorExpediente(c.Request.Context(), codigo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorFechas GET /api/datos-expedientes/buscar/fechas?desde=&hasta=
func (h *DatosExpedientesHandler) BuscarPorFechas(c *gin.Context) {
	desde, hasta, ok := bindRangoFechas(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorFechas(c.Request.Context(), desde, hasta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /api/datos-expedientes/:id
func (h *DatosExpedientesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarDatosExpedienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /api/datos-expedientes/:id
func (h *DatosExpedientesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
