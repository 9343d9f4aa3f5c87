package tests

import (
	"context"
	"testing"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type comisionFixture struct {
	svc         service.ComisionService
	repo        *stubComisionRepo
	tarifaRepo  *stubTarifaRepo
	usuarioRepo *stubUsuarioRepo
}

func newComisionFixture() *comisionFixture {
	f := &comisionFixture{
		repo:        newStubComisionRepo(),
		tarifaRepo:  newStubTarifaRepo(),
		usuarioRepo: newStubUsuarioRepo(),
	}
	f.svc = service.NewComisionService(f.repo, f.tarifaRepo, f.usuarioRepo)
	return f
}

func TestCalcularComisionProducto(t *testing.T) {
	svc := newComisionFixture().svc

	casos := []struct {
		nombre      string
		costo       string
		precioFinal string
		cantidad    int
		porcentaje  int
		esperado    string
	}{
		{"margen entero", "50.00", "70.00", 2, 10, "4.00"},
		{"redondeo unitario antes de multiplicar", "10.00", "10.05", 3, 33, "0.06"}, // 0.05×0.33=0.0165→0.02 ×3
		{"margen cero", "20.00", "20.00", 5, 40, "0.00"},
		{"margen negativo", "20.00", "15.00", 1, 40, "-2.00"},
		{"cien por ciento", "8.00", "15.00", 1, 100, "7.00"},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			p := &model.Producto{PrecioCosto: decStr(tc.costo)}
			tarifa := &model.TarifaComision{Porcentaje: tc.porcentaje}
			got := svc.CalcularComisionProducto(p, decStr(tc.precioFinal), tc.cantidad, tarifa)
			assert.True(t, got.Equal(decStr(tc.esperado)), "esperaba %s, obtuve %s", tc.esperado, got)
		})
	}
}

func TestCalcularComisionProducto_SinTarifa(t *testing.T) {
	svc := newComisionFixture().svc
	p := &model.Producto{PrecioCosto: decStr("10.00")}
	got := svc.CalcularComisionProducto(p, decStr("20.00"), 2, nil)
	assert.True(t, got.IsZero())
}

func TestCalcularComisionServicio(t *testing.T) {
	svc := newComisionFixture().svc

	casos := []struct {
		precioFinal string
		cantidad    int
		esperado    string
	}{
		{"80.00", 1, "4.00"},
		{"33.33", 1, "1.67"}, // 1.6665 → 1.67
		{"10.00", 3, "1.50"},
	}
	for _, tc := range casos {
		got := svc.CalcularComisionServicio(decStr(tc.precioFinal), tc.cantidad)
		assert.True(t, got.Equal(decStr(tc.esperado)), "esperaba %s, obtuve %s", tc.esperado, got)
	}
}

// Sin tarifa configurada o con monto ≤ 0, la generación automática no crea fila.
func TestGenerarPorProducto_SinFila(t *testing.T) {
	f := newComisionFixture()
	categoriaID := uuid.New()

	// Sin tarifa
	p := &model.Producto{ID: uuid.New(), Nombre: "Cerrojo", CategoriaID: categoriaID, PrecioCosto: decStr("10.00")}
	require.NoError(t, f.svc.GenerarPorProductoTx(nil, uuid.New(), uuid.New(), p, decStr("20.00"), 1))
	assert.Empty(t, f.repo.comisiones)

	// Tarifa presente pero margen negativo
	require.NoError(t, f.tarifaRepo.Upsert(context.Background(), &model.TarifaComision{CategoriaID: categoriaID, Porcentaje: 25}))
	require.NoError(t, f.svc.GenerarPorProductoTx(nil, uuid.New(), uuid.New(), p, decStr("8.00"), 1))
	assert.Empty(t, f.repo.comisiones)
}

func TestCrearManual(t *testing.T) {
	f := newComisionFixture()
	ctx := context.Background()
	u := f.usuarioRepo.add(&model.Usuario{Username: "maria", Nombre: "María", Rol: model.RolVendedor, Activo: true})

	resp, err := f.svc.CrearManual(ctx, dto.CrearComisionManualRequest{
		UsuarioID:  u.ID.String(),
		Monto:      decStr("25.00"),
		Comentario: "Bono por instalación fuera de horario",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ComisionPendiente, resp.Estado)
	assert.True(t, resp.EsManual)
	assert.True(t, resp.Monto.Equal(decStr("25.00")))
}

func TestCrearManual_Validaciones(t *testing.T) {
	f := newComisionFixture()
	ctx := context.Background()
	inactivo := f.usuarioRepo.add(&model.Usuario{Username: "ex", Nombre: "Ex", Rol: model.RolVendedor, Activo: false})

	var ve *apierror.ValidationError
	var nf *apierror.NotFoundError

	_, err := f.svc.CrearManual(ctx, dto.CrearComisionManualRequest{UsuarioID: "no-uuid", Monto: decStr("10"), Comentario: "x"})
	require.ErrorAs(t, err, &ve)

	_, err = f.svc.CrearManual(ctx, dto.CrearComisionManualRequest{UsuarioID: uuid.NewString(), Monto: decStr("0"), Comentario: "x"})
	require.ErrorAs(t, err, &ve)

	_, err = f.svc.CrearManual(ctx, dto.CrearComisionManualRequest{UsuarioID: uuid.NewString(), Monto: decStr("10"), Comentario: ""})
	require.ErrorAs(t, err, &ve)

	_, err = f.svc.CrearManual(ctx, dto.CrearComisionManualRequest{UsuarioID: uuid.NewString(), Monto: decStr("10"), Comentario: "x"})
	require.ErrorAs(t, err, &nf)

	_, err = f.svc.CrearManual(ctx, dto.CrearComisionManualRequest{UsuarioID: inactivo.ID.String(), Monto: decStr("10"), Comentario: "x"})
	require.ErrorAs(t, err, &ve)

	assert.Empty(t, f.repo.comisiones)
}

// Una referencia opcional mal formada se rechaza; nunca se crea la comisión
// con la referencia silenciosamente descartada.
func TestCrearManual_ReferenciaInvalida(t *testing.T) {
	f := newComisionFixture()
	ctx := context.Background()
	u := f.usuarioRepo.add(&model.Usuario{Username: "nico", Nombre: "Nico", Rol: model.RolVendedor, Activo: true})

	var ve *apierror.ValidationError

	malaVenta := "no-es-uuid"
	_, err := f.svc.CrearManual(ctx, dto.CrearComisionManualRequest{
		UsuarioID:  u.ID.String(),
		Monto:      decStr("10.00"),
		Comentario: "bono",
		VentaID:    &malaVenta,
	})
	require.ErrorAs(t, err, &ve)

	malServicio := "tampoco"
	_, err = f.svc.CrearManual(ctx, dto.CrearComisionManualRequest{
		UsuarioID:  u.ID.String(),
		Monto:      decStr("10.00"),
		Comentario: "bono",
		ServicioID: &malServicio,
	})
	require.ErrorAs(t, err, &ve)

	assert.Empty(t, f.repo.comisiones)
}

func TestCambiarEstado(t *testing.T) {
	f := newComisionFixture()
	ctx := context.Background()
	c := &model.Comision{UsuarioID: uuid.New(), Monto: decStr("12.00"), Estado: model.ComisionPendiente}
	require.NoError(t, f.repo.Create(ctx, c))

	nota := "revisada"
	resp, err := f.svc.CambiarEstado(ctx, c.ID, dto.CambiarEstadoComisionRequest{Estado: model.ComisionAprobada, ComentarioAdmin: &nota})
	require.NoError(t, err)
	assert.Equal(t, model.ComisionAprobada, resp.Estado)
	require.NotNil(t, resp.ComentarioAdmin)
	assert.Equal(t, "revisada", *resp.ComentarioAdmin)
}

// Un estado inválido se rechaza sin tocar la fila.
func TestCambiarEstado_EstadoInvalido(t *testing.T) {
	f := newComisionFixture()
	ctx := context.Background()
	c := &model.Comision{UsuarioID: uuid.New(), Monto: decStr("12.00"), Estado: model.ComisionPendiente}
	require.NoError(t, f.repo.Create(ctx, c))

	_, err := f.svc.CambiarEstado(ctx, c.ID, dto.CambiarEstadoComisionRequest{Estado: "archivada"})
	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, model.ComisionPendiente, f.repo.comisiones[c.ID].Estado)
}

func TestActualizarComentario(t *testing.T) {
	f := newComisionFixture()
	ctx := context.Background()
	duenio := uuid.New()
	c := &model.Comision{UsuarioID: duenio, Monto: decStr("9.00"), Estado: model.ComisionPendiente, ComentarioVendedor: "original"}
	require.NoError(t, f.repo.Create(ctx, c))

	resp, err := f.svc.ActualizarComentario(ctx, c.ID, duenio, "corregido")
	require.NoError(t, err)
	assert.Equal(t, "corregido", resp.ComentarioVendedor)

	// Otro usuario no puede editar
	var conflict *apierror.ConflictError
	_, err = f.svc.ActualizarComentario(ctx, c.ID, uuid.New(), "intruso")
	require.ErrorAs(t, err, &conflict)

	// Una vez pagada, ni el beneficiario
	c.Estado = model.ComisionPagada
	_, err = f.svc.ActualizarComentario(ctx, c.ID, duenio, "tarde")
	require.ErrorAs(t, err, &conflict)
}

func TestEliminar(t *testing.T) {
	f := newComisionFixture()
	ctx := context.Background()
	vendedor := uuid.New()

	manual := &model.Comision{UsuarioID: vendedor, Monto: decStr("5.00"), Estado: model.ComisionPendiente, EsManual: true}
	automatica := &model.Comision{UsuarioID: vendedor, Monto: decStr("5.00"), Estado: model.ComisionPendiente, EsManual: false}
	pagada := &model.Comision{UsuarioID: vendedor, Monto: decStr("5.00"), Estado: model.ComisionPagada, EsManual: true}
	ajena := &model.Comision{UsuarioID: uuid.New(), Monto: decStr("5.00"), Estado: model.ComisionPendiente, EsManual: true}
	for _, c := range []*model.Comision{manual, automatica, pagada, ajena} {
		require.NoError(t, f.repo.Create(ctx, c))
	}

	var conflict *apierror.ConflictError

	// Vendedor: solo propias, manuales y pendientes
	require.NoError(t, f.svc.Eliminar(ctx, manual.ID, vendedor, model.RolVendedor))
	require.ErrorAs(t, f.svc.Eliminar(ctx, automatica.ID, vendedor, model.RolVendedor), &conflict)
	require.ErrorAs(t, f.svc.Eliminar(ctx, pagada.ID, vendedor, model.RolVendedor), &conflict)
	require.ErrorAs(t, f.svc.Eliminar(ctx, ajena.ID, vendedor, model.RolVendedor), &conflict)

	// Administrador: cualquier pendiente, pero nunca una pagada
	require.NoError(t, f.svc.Eliminar(ctx, automatica.ID, uuid.New(), model.RolAdministrador))
	require.NoError(t, f.svc.Eliminar(ctx, ajena.ID, uuid.New(), model.RolAdministrador))
	require.ErrorAs(t, f.svc.Eliminar(ctx, pagada.ID, uuid.New(), model.RolAdministrador), &conflict)

	var nf *apierror.NotFoundError
	require.ErrorAs(t, f.svc.Eliminar(ctx, uuid.New(), vendedor, model.RolVendedor), &nf)
}

func TestListarComisiones_FiltroPorUsuario(t *testing.T) {
	f := newComisionFixture()
	ctx := context.Background()
	vendedor := uuid.New()
	require.NoError(t, f.repo.Create(ctx, &model.Comision{UsuarioID: vendedor, Monto: decStr("5.00"), Estado: model.ComisionPendiente}))
	require.NoError(t, f.repo.Create(ctx, &model.Comision{UsuarioID: uuid.New(), Monto: decStr("7.00"), Estado: model.ComisionPendiente}))

	resp, err := f.svc.Listar(ctx, dto.ComisionFilter{UsuarioID: vendedor.String()})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, vendedor.String(), resp.Data[0].UsuarioID)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 50, resp.Limit)
}
