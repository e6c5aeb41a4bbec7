package handler

import (
	"net/http"

	"aguanueva/internal/dto"
	"aguanueva/internal/service"

	"github.com/gin-gonic/gin"
)

type MateriasHandler struct{ svc service.MateriaService }

func NewMateriasHandler(svc service.MateriaService) *MateriasHandler {
	return &MateriasHandler{svc: svc}
}

// Crear POST /api/materias
func (h *MateriasHandler) Crear(c *gin.Context) {
	var req dto.CrearMateriaRequest
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

// Listar GET /api/materias
func (h *MateriasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/materias/:id
func (h *MateriasHandler) ObtenerPorID(c *gin.Context) {
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

// ListarPorTipo GET /api/materias/tipo/:tipo
func (h *MateriasHandler) ListarPorTipo(c *gin.Context) {
	resp, err := h.svc.ListarPorTipo(c.Request.Context(), c.Param("tipo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorNombre GET /api/materias/buscar/nombre?nombre=
func (h *MateriasHandler) BuscarPorNombre(c *gin.Context) {
	resp, err := h.svc.BuscarPorNombre(c.Request.Context(), c.Query("nombre"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /api/materias/:id
func (h *MateriasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarMateriaRequest
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

// Eliminar DELETE /api/materias/:id
func (h *MateriasHandler) Eliminar(c *gin.Context) {
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
