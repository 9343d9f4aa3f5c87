package service

import (
	"context"
	"time"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/repository"
)

const topProductosDefault = 10

type ReporteService interface {
	// ResumenVentas agrega las ventas de la fecha dada (YYYY-MM-DD);
	// fecha vacía = hoy.
	ResumenVentas(ctx context.Context, fecha string) (*dto.ResumenVentasResponse, error)
	TopProductos(ctx context.Context, fecha string, limite int) ([]dto.TopProductoResponse, error)
	ComisionesPorVendedor(ctx context.Context) ([]dto.ComisionesVendedorResponse, error)
}

type reporteService struct {
	repo repository.ReporteRepository
}

func NewReporteService(repo repository.ReporteRepository) ReporteService {
	return &reporteService{repo: repo}
}

func normalizarFecha(fecha string) (string, error) {
	if fecha == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return "", apierror.NewValidation("fecha inválida: %s (formato esperado YYYY-MM-DD)", fecha)
	}
	return fecha, nil
}

func (s *reporteService) ResumenVentas(ctx context.Context, fecha string) (*dto.ResumenVentasResponse, error) {
	fecha, err := normalizarFecha(fecha)
	if err != nil {
		return nil, err
	}
	fila, err := s.repo.ResumenVentasDia(ctx, fecha)
	if err != nil {
		return nil, apierror.NewStorage("resumen de ventas", err)
	}
	return &dto.ResumenVentasResponse{
		Fecha:          fecha,
		CantidadVentas: fila.CantidadVentas,
		TotalVendido:   fila.TotalVendido,
	}, nil
}

func (s *reporteService) TopProductos(ctx context.Context, fecha string, limite int) ([]dto.TopProductoResponse, error) {
	fecha, err := normalizarFecha(fecha)
	if err != nil {
		return nil, err
	}
	if limite < 1 || limite > 100 {
		limite = topProductosDefault
	}
	filas, err := s.repo.TopProductos(ctx, fecha, limite)
	if err != nil {
		return nil, apierror.NewStorage("top de productos", err)
	}
	out := make([]dto.TopProductoResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.TopProductoResponse{
			ProductoID:       f.ProductoID,
			Nombre:           f.Nombre,
			UnidadesVendidas: f.UnidadesVendidas,
			TotalVendido:     f.TotalVendido,
		})
	}
	return out, nil
}

func (s *reporteService) ComisionesPorVendedor(ctx context.Context) ([]dto.ComisionesVendedorResponse, error) {
	filas, err := s.repo.ComisionesPorVendedor(ctx)
	if err != nil {
		return nil, apierror.NewStorage("comisiones por vendedor", err)
	}
	out := make([]dto.ComisionesVendedorResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.ComisionesVendedorResponse{
			UsuarioID:      f.UsuarioID,
			Vendedor:       f.Vendedor,
			TotalPendiente: f.TotalPendiente,
			TotalAprobada:  f.TotalAprobada,
			TotalPagada:    f.TotalPagada,
		})
	}
	return out, nil
}
