package service

import (
	"context"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/repository"

	"github.com/shopspring/decimal"
)

// FinanzasService lleva el libro de ingresos y egresos manuales del negocio.
// Los asientos son inmutables: no hay edición ni borrado.
type FinanzasService interface {
	Registrar(ctx context.Context, req dto.RegistrarFinancieroRequest) (*dto.MovimientoFinancieroResponse, error)
	Listar(ctx context.Context, filter dto.FinancieroFilter) (*dto.FinancieroListResponse, error)
	// Resumen agrega todos los asientos en memoria: totales y balance.
	Resumen(ctx context.Context) (*dto.ResumenFinancieroResponse, error)
}

type finanzasService struct {
	repo repository.MovimientoFinancieroRepository
}

func NewFinanzasService(repo repository.MovimientoFinancieroRepository) FinanzasService {
	return &finanzasService{repo: repo}
}

func (s *finanzasService) Registrar(ctx context.Context, req dto.RegistrarFinancieroRequest) (*dto.MovimientoFinancieroResponse, error) {
	if req.Tipo != model.FinancieroIngreso && req.Tipo != model.FinancieroEgreso {
		return nil, apierror.NewValidation("tipo de movimiento inválido: %s", req.Tipo)
	}
	if req.Monto.LessThanOrEqual(decimal.Zero) {
		return nil, apierror.NewValidation("el monto debe ser mayor a cero")
	}

	m := &model.MovimientoFinanciero{
		Tipo:        req.Tipo,
		Descripcion: req.Descripcion,
		Monto:       req.Monto,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, apierror.NewStorage("registrar movimiento financiero", err)
	}
	resp := financieroToResponse(m)
	return &resp, nil
}

func (s *finanzasService) Listar(ctx context.Context, filter dto.FinancieroFilter) (*dto.FinancieroListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 100
	}
	movimientos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.NewStorage("listar movimientos financieros", err)
	}
	items := make([]dto.MovimientoFinancieroResponse, 0, len(movimientos))
	for i := range movimientos {
		items = append(items, financieroToResponse(&movimientos[i]))
	}
	return &dto.FinancieroListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *finanzasService) Resumen(ctx context.Context) (*dto.ResumenFinancieroResponse, error) {
	movimientos, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apierror.NewStorage("calcular resumen financiero", err)
	}

	ingresos := decimal.Zero
	egresos := decimal.Zero
	for i := range movimientos {
		switch movimientos[i].Tipo {
		case model.FinancieroIngreso:
			ingresos = ingresos.Add(movimientos[i].Monto)
		case model.FinancieroEgreso:
			egresos = egresos.Add(movimientos[i].Monto)
		}
	}
	return &dto.ResumenFinancieroResponse{
		TotalIngresos: ingresos,
		TotalEgresos:  egresos,
		Balance:       ingresos.Sub(egresos),
	}, nil
}

func financieroToResponse(m *model.MovimientoFinanciero) dto.MovimientoFinancieroResponse {
	return dto.MovimientoFinancieroResponse{
		ID:          m.ID.String(),
		Tipo:        m.Tipo,
		Descripcion: m.Descripcion,
		Monto:       m.Monto,
		CreatedAt:   m.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
