package handler

import (
	"net/http"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/middleware"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ComisionesHandler struct{ svc service.ComisionService }

func NewComisionesHandler(svc service.ComisionService) *ComisionesHandler {
	return &ComisionesHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar comisiones
// @Description  El vendedor ve solo las propias; el administrador puede filtrar por cualquier usuario.
// @Tags         comisiones
// @Produce      json
// @Security     BearerAuth
// @Param        usuario_id query string false "Filtro por beneficiario (solo administrador)"
// @Param        estado     query string false "pendiente | aprobada | rechazada | pagada | all"
// @Success      200  {object} dto.ComisionListResponse
// @Router       /v1/comisiones [get]
func (h *ComisionesHandler) Listar(c *gin.Context) {
	var filter dto.ComisionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	claims := middleware.GetClaims(c)
	if claims.Rol != model.RolAdministrador {
		filter.UsuarioID = claims.UserID
	}

	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CrearManual godoc
// @Summary      Crear comisión manual (solo administrador)
// @Tags         comisiones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearComisionManualRequest true "Beneficiario, monto y comentario"
// @Success      201  {object} dto.ComisionResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/comisiones [post]
func (h *ComisionesHandler) CrearManual(c *gin.Context) {
	var req dto.CrearComisionManualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearManual(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CambiarEstado godoc
// @Summary      Cambiar estado de una comisión (solo administrador)
// @Tags         comisiones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la comisión"
// @Param        body body dto.CambiarEstadoComisionRequest true "Nuevo estado"
// @Success      200  {object} dto.ComisionResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/comisiones/{id}/estado [patch]
func (h *ComisionesHandler) CambiarEstado(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.CambiarEstadoComisionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CambiarEstado(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarComentario lets the beneficiary edit the note on a pending commission.
func (h *ComisionesHandler) ActualizarComentario(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarComentarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token mal formado"))
		return
	}
	resp, err := h.svc.ActualizarComentario(c.Request.Context(), id, usuarioID, req.Comentario)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar borra una comisión pendiente según las reglas de rol.
func (h *ComisionesHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token mal formado"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id, usuarioID, claims.Rol); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
