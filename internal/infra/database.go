package infra

import (
	"fmt"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables. gen_random_uuid() requires PostgreSQL 13+.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.CategoriaProducto{},
		&model.CategoriaServicio{},
		&model.Producto{},
		&model.Servicio{},
		&model.TarifaComision{},
		&model.Venta{},
		&model.VentaProducto{},
		&model.VentaServicio{},
		&model.Comision{},
		&model.MovimientoStock{},
		&model.MovimientoFinanciero{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
