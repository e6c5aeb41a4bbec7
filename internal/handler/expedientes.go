package handler

import (
	"net/http"
	"strconv"

	"aguanueva/internal/apierror"
	"aguanueva/internal/dto"
	"aguanueva/internal/service"

	"github.com/gin-gonic/gin"
)

type ExpedientesHandler struct{ svc service.ExpedienteService }

func NewExpedientesHandler(svc service.ExpedienteService) *ExpedientesHandler {
	return &ExpedientesHandler{svc: svc}
}

// Crear POST /api/expedientes
func (h *ExpedientesHandler) Crear(c *gin.Context) {
	var req dto.CrearExpedienteRequest
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

// CrearCompleto POST /api/expedientes/completo
func (h *ExpedientesHandler) CrearCompleto(c *gin.Context) {
	var req dto.CrearExpedienteCompletoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearCompleto(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /api/expedientes (typed AND-filter via query params)
func (h *ExpedientesHandler) Listar(c *gin.Context) {
	var filter dto.ExpedienteFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/expedientes/:id
func (h *ExpedientesHandler) ObtenerPorID(c *gin.Context) {
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

// ObtenerPorCodigo GET /api/expedientes/codigo/:codigo/:hoja
// Natural-key lookup: case code plus sheet number.
func (h *ExpedientesHandler) ObtenerPorCodigo(c *gin.Context) {
	hoja, err := strconv.Atoi(c.Param("hoja"))
	if err != nil || hoja < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("Hoja invalida"))
		return
	}
	resp, err := h.svc.ObtenerPorCodigoHoja(c.Request.Context(), c.Param("codigo"), hoja)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorFechas GET /api/expedientes/buscar/fechas?desde=&hasta=
func (h *ExpedientesHandler) BuscarPorFechas(c *gin.Context) {
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

// ListarPorDNI GET /api/expedientes/dni/:dni
func (h *ExpedientesHandler) ListarPorDNI(c *gin.Context) {
	resp, err := h.svc.ListarPorDNI(c.Request.Context(), c.Param("dni"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorMunicipio GET /api/expedientes/municipio/:id
func (h *ExpedientesHandler) ListarPorMunicipio(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorMunicipio(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /api/expedientes/:id
func (h *ExpedientesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarExpedienteRequest
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

// Eliminar DELETE /api/expedientes/:id
func (h *ExpedientesHandler) Eliminar(c *gin.Context) {
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
