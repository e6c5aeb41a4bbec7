package handler

import (
	"net/http"
	"strconv"

	"aguanueva/internal/apierror"
	"aguanueva/internal/dto"
	"aguanueva/internal/service"

	"github.com/gin-gonic/gin"
)

type MunicipiosHandler struct{ svc service.MunicipioService }

func NewMunicipiosHandler(svc service.MunicipioService) *MunicipiosHandler {
	return &MunicipiosHandler{svc: svc}
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return uint(id), true
}

// Crear POST /api/municipios
func (h *MunicipiosHandler) Crear(c *gin.Context) {
	var req dto.CrearMunicipioRequest
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

// Listar GET /api/municipios
func (h *MunicipiosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/municipios/:id
func (h *MunicipiosHandler) ObtenerPorID(c *gin.Context) {
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

// BuscarPorNombre GET /api/municipios/buscar/nombre?nombre=
func (h *MunicipiosHandler) BuscarPorNombre(c *gin.Context) {
	resp, err := h.svc.BuscarPorNombre(c.Request.Context(), c.Query("nombre"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /api/municipios/:id
func (h *MunicipiosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarMunicipioRequest
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

// Eliminar DELETE /api/municipios/:id
func (h *MunicipiosHandler) Eliminar(c *gin.Context) {
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
