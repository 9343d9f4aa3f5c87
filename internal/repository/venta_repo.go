package repository

import (
	"context"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	CreateItemTx(tx *gorm.DB, item *model.VentaProducto) error
	CreateServicioTx(tx *gorm.DB, item *model.VentaServicio) error
	// RefreshTotalTx derives ventas.total from the persisted line items.
	// The total is authoritative only after this runs (storage-derived).
	RefreshTotalTx(tx *gorm.DB, ventaID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) CreateItemTx(tx *gorm.DB, item *model.VentaProducto) error {
	return tx.Create(item).Error
}

func (r *ventaRepo) CreateServicioTx(tx *gorm.DB, item *model.VentaServicio) error {
	return tx.Create(item).Error
}

func (r *ventaRepo) RefreshTotalTx(tx *gorm.DB, ventaID uuid.UUID) error {
	return tx.Exec(`
		UPDATE ventas SET total =
		  COALESCE((SELECT SUM(precio_final * cantidad) FROM venta_productos WHERE venta_id = ventas.id), 0)
		+ COALESCE((SELECT SUM(precio_final * cantidad) FROM venta_servicios WHERE venta_id = ventas.id), 0)
		WHERE id = ?`, ventaID).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").
		Preload("Servicios.Servicio").
		Preload("Usuario").
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Venta{})

	if filter.UsuarioID != "" {
		q = q.Where("usuario_id = ?", filter.UsuarioID)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(created_at) = ?", filter.Fecha)
	} else {
		// Default: today
		q = q.Where("DATE(created_at) = CURRENT_DATE")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Items.Producto").Preload("Servicios.Servicio").Preload("Usuario").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error

	return ventas, total, err
}
