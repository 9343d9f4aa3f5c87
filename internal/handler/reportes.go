package handler

import (
	"net/http"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// ResumenVentas godoc
// @Summary      Resumen de ventas del día
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        fecha query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Success      200  {object} dto.ResumenVentasResponse
// @Router       /v1/reportes/ventas [get]
func (h *ReportesHandler) ResumenVentas(c *gin.Context) {
	resp, err := h.svc.ResumenVentas(c.Request.Context(), c.Query("fecha"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TopProductos godoc
// @Summary      Ranking de productos por unidades vendidas
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        fecha  query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Param        limite query int    false "Tamaño del ranking (default 10)"
// @Success      200  {array} dto.TopProductoResponse
// @Router       /v1/reportes/top-productos [get]
func (h *ReportesHandler) TopProductos(c *gin.Context) {
	resp, err := h.svc.TopProductos(c.Request.Context(), c.Query("fecha"), queryInt(c, "limite", 10))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ComisionesPorVendedor godoc
// @Summary      Comisiones acumuladas por vendedor y estado
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.ComisionesVendedorResponse
// @Router       /v1/reportes/comisiones [get]
func (h *ReportesHandler) ComisionesPorVendedor(c *gin.Context) {
	resp, err := h.svc.ComisionesPorVendedor(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
