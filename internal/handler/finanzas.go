package handler

import (
	"net/http"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type FinanzasHandler struct{ svc service.FinanzasService }

func NewFinanzasHandler(svc service.FinanzasService) *FinanzasHandler {
	return &FinanzasHandler{svc: svc}
}

// Registrar godoc
// @Summary      Registrar ingreso o egreso manual (solo administrador)
// @Tags         finanzas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarFinancieroRequest true "Tipo, descripción y monto"
// @Success      201  {object} dto.MovimientoFinancieroResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/finanzas [post]
func (h *FinanzasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarFinancieroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FinanzasHandler) Listar(c *gin.Context) {
	var filter dto.FinancieroFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resumen godoc
// @Summary      Resumen financiero: totales de ingresos, egresos y balance
// @Tags         finanzas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} dto.ResumenFinancieroResponse
// @Router       /v1/finanzas/resumen [get]
func (h *FinanzasHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
