package repository

import (
	"context"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"

	"gorm.io/gorm"
)

type MovimientoFinancieroRepository interface {
	Create(ctx context.Context, m *model.MovimientoFinanciero) error
	List(ctx context.Context, filter dto.FinancieroFilter) ([]model.MovimientoFinanciero, int64, error)
	// ListAll feeds the in-memory Resumen aggregation.
	ListAll(ctx context.Context) ([]model.MovimientoFinanciero, error)
}

type movimientoFinancieroRepo struct{ db *gorm.DB }

func NewMovimientoFinancieroRepository(db *gorm.DB) MovimientoFinancieroRepository {
	return &movimientoFinancieroRepo{db: db}
}

func (r *movimientoFinancieroRepo) Create(ctx context.Context, m *model.MovimientoFinanciero) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimientoFinancieroRepo) List(ctx context.Context, filter dto.FinancieroFilter) ([]model.MovimientoFinanciero, int64, error) {
	var movimientos []model.MovimientoFinanciero
	var total int64

	q := r.db.WithContext(ctx).Model(&model.MovimientoFinanciero{})

	if filter.Tipo != "" && filter.Tipo != "all" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(created_at) = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&movimientos).Error
	return movimientos, total, err
}

func (r *movimientoFinancieroRepo) ListAll(ctx context.Context) ([]model.MovimientoFinanciero, error) {
	var movimientos []model.MovimientoFinanciero
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&movimientos).Error
	return movimientos, err
}
