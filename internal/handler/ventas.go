package handler

import (
	"net/http"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/infra"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/middleware"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/repository"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VentasHandler struct {
	svc            service.VentaService
	repo           repository.VentaRepository
	pdfStoragePath string
}

func NewVentasHandler(svc service.VentaService, repo repository.VentaRepository, pdfStoragePath string) *VentasHandler {
	return &VentasHandler{svc: svc, repo: repo, pdfStoragePath: pdfStoragePath}
}

// RegistrarVenta godoc
// @Summary      Registrar una nueva venta
// @Description  Crea una venta ACID: cabecera, líneas, descuento de stock, movimientos de stock y comisiones automáticas.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarVentaRequest true "Detalle de la venta"
// @Success      201  {object} dto.VentaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/ventas [post]
func (h *VentasHandler) RegistrarVenta(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token mal formado"))
		return
	}

	resp, err := h.svc.RegistrarVenta(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerVenta godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200  {object} dto.VentaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/ventas/{id} [get]
func (h *VentasHandler) ObtenerVenta(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerVenta(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarVentas godoc
// @Summary      Listar ventas
// @Description  Retorna lista paginada de ventas filtrada por fecha y vendedor.
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        fecha      query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Param        usuario_id query string false "Filtro por vendedor"
// @Success      200  {object} dto.VentaListResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/ventas [get]
func (h *VentasHandler) ListarVentas(c *gin.Context) {
	var filter dto.VentaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	// Un vendedor solo ve sus propias ventas; el administrador ve todas.
	claims := middleware.GetClaims(c)
	if claims.Rol != model.RolAdministrador {
		filter.UsuarioID = claims.UserID
	}

	resp, err := h.svc.ListVentas(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DescargarRecibo godoc
// @Summary      Descargar el recibo PDF de una venta
// @Tags         ventas
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200  {file} file
// @Failure      404  {object} apierror.APIError
// @Router       /v1/ventas/{id}/recibo [get]
func (h *VentasHandler) DescargarRecibo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	venta, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Venta no encontrada"))
		return
	}

	path, err := infra.GenerarReciboPDF(venta, h.pdfStoragePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el recibo"))
		return
	}
	c.FileAttachment(path, "recibo_"+id.String()+".pdf")
}
