package tests

import (
	"context"
	"errors"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. Services open no real transaction when
// repo.DB() returns nil, so every *Tx method here simply ignores the tx.

// ── stubProductoRepo ──────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto

	// ventaConcurrente drains this many units from the stored row on the next
	// in-tx read, simulating a sale committed between pre-flight and the tx.
	ventaConcurrente int
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) add(p *model.Producto) *model.Producto {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.RecalcularEstado()
	r.productos[p.ID] = p
	return p
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.add(p)
	return nil
}

// Reads hand out copies, as a real row scan would: mutating the returned
// struct must not touch the stored row until an Update persists it.
func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) ListBajoStock(_ context.Context) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.Activo && p.Estado != model.EstadoDisponible {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if actual, ok := r.productos[p.ID]; ok {
		*actual = *p
		return nil
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

func (r *stubProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = true
	return nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	if r.ventaConcurrente != 0 {
		if p, ok := r.productos[id]; ok {
			p.StockActual -= r.ventaConcurrente
			p.RecalcularEstado()
		}
		r.ventaConcurrente = 0
	}
	return r.FindByID(context.Background(), id)
}

func (r *stubProductoRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta int, estado string) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockActual += delta
	p.Estado = estado
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── stubServicioRepo ──────────────────────────────────────────────────────────

type stubServicioRepo struct {
	servicios map[uuid.UUID]*model.Servicio
}

func newStubServicioRepo() *stubServicioRepo {
	return &stubServicioRepo{servicios: make(map[uuid.UUID]*model.Servicio)}
}

func (r *stubServicioRepo) add(s *model.Servicio) *model.Servicio {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.servicios[s.ID] = s
	return s
}

func (r *stubServicioRepo) Create(_ context.Context, s *model.Servicio) error {
	r.add(s)
	return nil
}

func (r *stubServicioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Servicio, error) {
	s, ok := r.servicios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubServicioRepo) List(_ context.Context, _ dto.ServicioFilter) ([]model.Servicio, int64, error) {
	out := make([]model.Servicio, 0, len(r.servicios))
	for _, s := range r.servicios {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubServicioRepo) Update(_ context.Context, s *model.Servicio) error {
	r.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	s, ok := r.servicios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Activo = false
	return nil
}

func (r *stubServicioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	s, ok := r.servicios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Activo = true
	return nil
}

var _ repository.ServicioRepository = (*stubServicioRepo)(nil)

// ── stubVentaRepo ─────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta

	failCreateItem bool // inject a storage failure mid-transaction
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) CreateTx(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) CreateItemTx(_ *gorm.DB, item *model.VentaProducto) error {
	if r.failCreateItem {
		return errors.New("write failed")
	}
	v, ok := r.ventas[item.VentaID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Items = append(v.Items, *item)
	return nil
}

func (r *stubVentaRepo) CreateServicioTx(_ *gorm.DB, item *model.VentaServicio) error {
	v, ok := r.ventas[item.VentaID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Servicios = append(v.Servicios, *item)
	return nil
}

func (r *stubVentaRepo) RefreshTotalTx(_ *gorm.DB, ventaID uuid.UUID) error {
	v, ok := r.ventas[ventaID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	total := decimal.Zero
	for _, item := range v.Items {
		total = total.Add(item.PrecioFinal.Mul(decimal.NewFromInt(int64(item.Cantidad))))
	}
	for _, item := range v.Servicios {
		total = total.Add(item.PrecioFinal.Mul(decimal.NewFromInt(int64(item.Cantidad))))
	}
	v.Total = total
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── stubComisionRepo ──────────────────────────────────────────────────────────

type stubComisionRepo struct {
	comisiones map[uuid.UUID]*model.Comision

	failCreateTx bool // commission generation failures must not abort the sale
}

func newStubComisionRepo() *stubComisionRepo {
	return &stubComisionRepo{comisiones: make(map[uuid.UUID]*model.Comision)}
}

func (r *stubComisionRepo) Create(_ context.Context, c *model.Comision) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Estado == "" {
		c.Estado = model.ComisionPendiente
	}
	r.comisiones[c.ID] = c
	return nil
}

func (r *stubComisionRepo) CreateTx(_ *gorm.DB, c *model.Comision) error {
	if r.failCreateTx {
		return errors.New("write failed")
	}
	return r.Create(context.Background(), c)
}

func (r *stubComisionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Comision, error) {
	c, ok := r.comisiones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubComisionRepo) Update(_ context.Context, c *model.Comision) error {
	r.comisiones[c.ID] = c
	return nil
}

func (r *stubComisionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.comisiones, id)
	return nil
}

func (r *stubComisionRepo) List(_ context.Context, filter dto.ComisionFilter) ([]model.Comision, int64, error) {
	var out []model.Comision
	for _, c := range r.comisiones {
		if filter.UsuarioID != "" && c.UsuarioID.String() != filter.UsuarioID {
			continue
		}
		if filter.Estado != "" && filter.Estado != "all" && c.Estado != filter.Estado {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubComisionRepo) ListByUsuario(_ context.Context, usuarioID uuid.UUID) ([]model.Comision, error) {
	var out []model.Comision
	for _, c := range r.comisiones {
		if c.UsuarioID == usuarioID {
			out = append(out, *c)
		}
	}
	return out, nil
}

var _ repository.ComisionRepository = (*stubComisionRepo)(nil)

// ── stubTarifaRepo ────────────────────────────────────────────────────────────

type stubTarifaRepo struct {
	tarifas map[uuid.UUID]*model.TarifaComision // keyed by categoria
}

func newStubTarifaRepo() *stubTarifaRepo {
	return &stubTarifaRepo{tarifas: make(map[uuid.UUID]*model.TarifaComision)}
}

func (r *stubTarifaRepo) Upsert(_ context.Context, t *model.TarifaComision) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.tarifas[t.CategoriaID] = t
	return nil
}

func (r *stubTarifaRepo) FindByCategoria(_ context.Context, categoriaID uuid.UUID) (*model.TarifaComision, error) {
	t, ok := r.tarifas[categoriaID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTarifaRepo) FindByCategoriaTx(_ *gorm.DB, categoriaID uuid.UUID) (*model.TarifaComision, error) {
	return r.FindByCategoria(context.Background(), categoriaID)
}

func (r *stubTarifaRepo) List(_ context.Context) ([]model.TarifaComision, error) {
	out := make([]model.TarifaComision, 0, len(r.tarifas))
	for _, t := range r.tarifas {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTarifaRepo) Delete(_ context.Context, categoriaID uuid.UUID) error {
	delete(r.tarifas, categoriaID)
	return nil
}

var _ repository.TarifaComisionRepository = (*stubTarifaRepo)(nil)

// ── stubMovimientoStockRepo ───────────────────────────────────────────────────

type stubMovimientoStockRepo struct {
	movimientos []model.MovimientoStock
}

func (r *stubMovimientoStockRepo) Create(_ context.Context, m *model.MovimientoStock) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoStockRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	return r.Create(context.Background(), m)
}

func (r *stubMovimientoStockRepo) List(_ context.Context, filter repository.MovimientoStockFilter) ([]model.MovimientoStock, int64, error) {
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if filter.ProductoID != nil && m.ProductoID != *filter.ProductoID {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

var _ repository.MovimientoStockRepository = (*stubMovimientoStockRepo)(nil)

// ── stubFinancieroRepo ────────────────────────────────────────────────────────

type stubFinancieroRepo struct {
	movimientos []model.MovimientoFinanciero
}

func (r *stubFinancieroRepo) Create(_ context.Context, m *model.MovimientoFinanciero) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubFinancieroRepo) List(_ context.Context, filter dto.FinancieroFilter) ([]model.MovimientoFinanciero, int64, error) {
	var out []model.MovimientoFinanciero
	for _, m := range r.movimientos {
		if filter.Tipo != "" && filter.Tipo != "all" && m.Tipo != filter.Tipo {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *stubFinancieroRepo) ListAll(_ context.Context) ([]model.MovimientoFinanciero, error) {
	return append([]model.MovimientoFinanciero(nil), r.movimientos...), nil
}

var _ repository.MovimientoFinancieroRepository = (*stubFinancieroRepo)(nil)

// ── stubUsuarioRepo ───────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) add(u *model.Usuario) *model.Usuario {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return u
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.add(u)
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Activo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = false
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = true
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── stubReporteRepo ───────────────────────────────────────────────────────────

type stubReporteRepo struct {
	resumen    repository.FilaResumenVentas
	top        []repository.FilaTopProducto
	comisiones []repository.FilaComisionVendedor
}

func (r *stubReporteRepo) ResumenVentasDia(_ context.Context, _ string) (*repository.FilaResumenVentas, error) {
	fila := r.resumen
	return &fila, nil
}

func (r *stubReporteRepo) TopProductos(_ context.Context, _ string, limite int) ([]repository.FilaTopProducto, error) {
	if limite < len(r.top) {
		return r.top[:limite], nil
	}
	return r.top, nil
}

func (r *stubReporteRepo) ComisionesPorVendedor(_ context.Context) ([]repository.FilaComisionVendedor, error) {
	return r.comisiones, nil
}

var _ repository.ReporteRepository = (*stubReporteRepo)(nil)
