package handler

import (
	"net/http"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/repository"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// AjustarStock godoc
// @Summary      Ajustar stock manualmente (solo administrador)
// @Description  Aplica un delta positivo (entrada) o negativo (salida) y registra el movimiento.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del producto"
// @Param        body body dto.AjustarStockRequest true "Delta y motivo"
// @Success      200  {object} dto.ProductoResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/inventario/{id}/ajuste [post]
func (h *InventarioHandler) AjustarStock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AjustarStock(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarMovimientos godoc
// @Summary      Listar movimientos de stock
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        producto_id query string false "Filtro por producto"
// @Param        tipo        query string false "entrada | salida"
// @Success      200  {object} dto.MovimientoStockListResponse
// @Router       /v1/inventario/movimientos [get]
func (h *InventarioHandler) ListarMovimientos(c *gin.Context) {
	filter := repository.MovimientoStockFilter{
		Tipo:  c.Query("tipo"),
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 100),
	}
	if raw := c.Query("producto_id"); raw != "" {
		pid, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("producto_id inválido"))
			return
		}
		filter.ProductoID = &pid
	}
	resp, err := h.svc.ListarMovimientos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Alertas godoc
// @Summary      Productos con stock bajo o agotado
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.AlertaStockResponse
// @Router       /v1/inventario/alertas [get]
func (h *InventarioHandler) Alertas(c *gin.Context) {
	resp, err := h.svc.ObtenerAlertas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
