package handler

import (
	"net/http"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type TarifasHandler struct{ svc service.TarifaService }

func NewTarifasHandler(svc service.TarifaService) *TarifasHandler {
	return &TarifasHandler{svc: svc}
}

// Guardar godoc
// @Summary      Crear o reemplazar la tarifa de comisión de una categoría
// @Tags         tarifas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.GuardarTarifaRequest true "Categoría y porcentaje"
// @Success      200  {object} dto.TarifaComisionResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/tarifas [put]
func (h *TarifasHandler) Guardar(c *gin.Context) {
	var req dto.GuardarTarifaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Guardar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TarifasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorCategoria returns the rate configured for a product category.
func (h *TarifasHandler) ObtenerPorCategoria(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorCategoria(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TarifasHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
