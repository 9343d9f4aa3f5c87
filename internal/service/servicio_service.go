package service

import (
	"context"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/repository"

	"github.com/google/uuid"
)

type ServicioService interface {
	Crear(ctx context.Context, req dto.CrearServicioRequest) (*dto.ServicioResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error)
	Listar(ctx context.Context, filter dto.ServicioFilter) (*dto.ServicioListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRequest) (*dto.ServicioResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error)
}

type servicioService struct {
	repo          repository.ServicioRepository
	categoriaRepo repository.CategoriaServicioRepository
}

func NewServicioService(repo repository.ServicioRepository, categoriaRepo repository.CategoriaServicioRepository) ServicioService {
	return &servicioService{repo: repo, categoriaRepo: categoriaRepo}
}

func (s *servicioService) Crear(ctx context.Context, req dto.CrearServicioRequest) (*dto.ServicioResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, apierror.NewValidation("categoria_id inválido")
	}
	if _, err := s.categoriaRepo.ObtenerPorID(ctx, categoriaID); err != nil {
		return nil, apierror.NewNotFound("categoria", req.CategoriaID)
	}
	if req.PrecioReferencia.IsNegative() {
		return nil, apierror.NewValidation("el precio de referencia no puede ser negativo")
	}

	sv := &model.Servicio{
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		CategoriaID:      categoriaID,
		PrecioReferencia: req.PrecioReferencia,
		Activo:           true,
	}
	if err := s.repo.Create(ctx, sv); err != nil {
		return nil, apierror.NewStorage("crear servicio", err)
	}
	return servicioToResponse(sv), nil
}

func (s *servicioService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error) {
	sv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("servicio", id.String())
	}
	return servicioToResponse(sv), nil
}

func (s *servicioService) Listar(ctx context.Context, filter dto.ServicioFilter) (*dto.ServicioListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	servicios, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.NewStorage("listar servicios", err)
	}
	items := make([]dto.ServicioResponse, 0, len(servicios))
	for i := range servicios {
		items = append(items, *servicioToResponse(&servicios[i]))
	}
	return &dto.ServicioListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *servicioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRequest) (*dto.ServicioResponse, error) {
	sv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("servicio", id.String())
	}

	if req.Nombre != nil {
		sv.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		sv.Descripcion = req.Descripcion
	}
	if req.CategoriaID != nil {
		categoriaID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, apierror.NewValidation("categoria_id inválido")
		}
		if _, err := s.categoriaRepo.ObtenerPorID(ctx, categoriaID); err != nil {
			return nil, apierror.NewNotFound("categoria", *req.CategoriaID)
		}
		sv.CategoriaID = categoriaID
	}
	if req.PrecioReferencia != nil {
		if req.PrecioReferencia.IsNegative() {
			return nil, apierror.NewValidation("el precio de referencia no puede ser negativo")
		}
		sv.PrecioReferencia = *req.PrecioReferencia
	}

	if err := s.repo.Update(ctx, sv); err != nil {
		return nil, apierror.NewStorage("actualizar servicio", err)
	}
	return servicioToResponse(sv), nil
}

func (s *servicioService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NewNotFound("servicio", id.String())
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.NewStorage("desactivar servicio", err)
	}
	return nil
}

func (s *servicioService) Reactivar(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error) {
	if err := s.repo.Reactivar(ctx, id); err != nil {
		return nil, apierror.NewStorage("reactivar servicio", err)
	}
	sv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewNotFound("servicio", id.String())
	}
	return servicioToResponse(sv), nil
}

func servicioToResponse(sv *model.Servicio) *dto.ServicioResponse {
	resp := &dto.ServicioResponse{
		ID:               sv.ID.String(),
		Nombre:           sv.Nombre,
		Descripcion:      sv.Descripcion,
		CategoriaID:      sv.CategoriaID.String(),
		PrecioReferencia: sv.PrecioReferencia,
		Activo:           sv.Activo,
	}
	if sv.Categoria != nil {
		resp.Categoria = sv.Categoria.Nombre
	}
	return resp
}
