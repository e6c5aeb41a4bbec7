package handler

import (
	"net/http"

	"aguanueva/internal/dto"
	"aguanueva/internal/service"

	"github.com/gin-gonic/gin"
)

type DatosPersonalesHandler struct{ svc service.DatosPersonalesService }

func NewDatosPersonalesHandler(svc service.DatosPersonalesService) *DatosPersonalesHandler {
	return &DatosPersonalesHandler{svc: svc}
}

// Crear POST /api/datos-personales
func (h *DatosPersonalesHandler) Crear(c *gin.Context) {
	var req dto.CrearDatosPersonalesRequest
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

// Listar GET /api/datos-personales
func (h *DatosPersonalesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorDNI GET /api/datos-personales/:dni
func (h *DatosPersonalesHandler) ObtenerPorDNI(c *gin.Context) {
	resp, err := h.svc.ObtenerPorDNI(c.Request.Context(), c.Param("dni"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorNombre GET /api/datos-personales/buscar/nombre?nombre=&apellidos=
func (h *DatosPersonalesHandler) BuscarPorNombre(c *gin.Context) {
	var nombre, apellidos *string
	if v, ok := c.GetQuery("nombre"); ok && v != "" {
		nombre = &v
	}
	if v, ok := c.GetQuery("apellidos"); ok && v != "" {
		apellidos = &v
	}
	resp, err := h.svc.BuscarPorNombre(c.Request.Context(), nombre, apellidos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorMunicipio GET /api/datos-personales/municipio/:id
func (h *DatosPersonalesHandler) ListarPorMunicipio(c *gin.Context) {
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

// Actualizar PUT /api/datos-personales/:dni
func (h *DatosPersonalesHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarDatosPersonalesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("dni"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /api/datos-personales/:dni
func (h *DatosPersonalesHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("dni")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
