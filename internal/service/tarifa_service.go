package service

import (
	"context"
	"errors"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TarifaService administra la tarifa de comisión por categoría de producto.
// Una categoría tiene a lo sumo una tarifa; guardar sobre una existente la
// reemplaza.
type TarifaService interface {
	Guardar(ctx context.Context, req dto.GuardarTarifaRequest) (*dto.TarifaComisionResponse, error)
	ObtenerPorCategoria(ctx context.Context, categoriaID uuid.UUID) (*dto.TarifaComisionResponse, error)
	Listar(ctx context.Context) ([]dto.TarifaComisionResponse, error)
	Eliminar(ctx context.Context, categoriaID uuid.UUID) error
}

type tarifaService struct {
	repo          repository.TarifaComisionRepository
	categoriaRepo repository.CategoriaProductoRepository
}

func NewTarifaService(repo repository.TarifaComisionRepository, categoriaRepo repository.CategoriaProductoRepository) TarifaService {
	return &tarifaService{repo: repo, categoriaRepo: categoriaRepo}
}

func (s *tarifaService) Guardar(ctx context.Context, req dto.GuardarTarifaRequest) (*dto.TarifaComisionResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, apierror.NewValidation("categoria_id inválido")
	}
	if req.Porcentaje < 0 || req.Porcentaje > 100 {
		return nil, apierror.NewValidation("el porcentaje debe estar entre 0 y 100")
	}
	if _, err := s.categoriaRepo.ObtenerPorID(ctx, categoriaID); err != nil {
		return nil, apierror.NewNotFound("categoria", req.CategoriaID)
	}

	t := &model.TarifaComision{CategoriaID: categoriaID, Porcentaje: req.Porcentaje}
	if err := s.repo.Upsert(ctx, t); err != nil {
		return nil, apierror.NewStorage("guardar tarifa", err)
	}
	return tarifaToResponse(t), nil
}

func (s *tarifaService) ObtenerPorCategoria(ctx context.Context, categoriaID uuid.UUID) (*dto.TarifaComisionResponse, error) {
	t, err := s.repo.FindByCategoria(ctx, categoriaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("tarifa", categoriaID.String())
		}
		return nil, apierror.NewStorage("buscar tarifa", err)
	}
	return tarifaToResponse(t), nil
}

func (s *tarifaService) Listar(ctx context.Context) ([]dto.TarifaComisionResponse, error) {
	tarifas, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.NewStorage("listar tarifas", err)
	}
	out := make([]dto.TarifaComisionResponse, 0, len(tarifas))
	for i := range tarifas {
		out = append(out, *tarifaToResponse(&tarifas[i]))
	}
	return out, nil
}

func (s *tarifaService) Eliminar(ctx context.Context, categoriaID uuid.UUID) error {
	if _, err := s.repo.FindByCategoria(ctx, categoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("tarifa", categoriaID.String())
		}
		return apierror.NewStorage("buscar tarifa", err)
	}
	if err := s.repo.Delete(ctx, categoriaID); err != nil {
		return apierror.NewStorage("eliminar tarifa", err)
	}
	return nil
}

func tarifaToResponse(t *model.TarifaComision) *dto.TarifaComisionResponse {
	resp := &dto.TarifaComisionResponse{
		ID:          t.ID.String(),
		CategoriaID: t.CategoriaID.String(),
		Porcentaje:  t.Porcentaje,
	}
	if t.Categoria != nil {
		resp.Categoria = t.Categoria.Nombre
	}
	return resp
}
