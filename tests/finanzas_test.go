package tests

import (
	"context"
	"testing"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/apierror"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/dto"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinanzas_Registrar(t *testing.T) {
	repo := &stubFinancieroRepo{}
	svc := service.NewFinanzasService(repo)
	ctx := context.Background()

	resp, err := svc.Registrar(ctx, dto.RegistrarFinancieroRequest{
		Tipo:        model.FinancieroIngreso,
		Descripcion: "Venta de caja fuerte usada",
		Monto:       decStr("350.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.FinancieroIngreso, resp.Tipo)
	assert.True(t, resp.Monto.Equal(decStr("350.00")))
	require.Len(t, repo.movimientos, 1)
}

func TestFinanzas_RegistrarValidaciones(t *testing.T) {
	repo := &stubFinancieroRepo{}
	svc := service.NewFinanzasService(repo)
	ctx := context.Background()

	var ve *apierror.ValidationError

	_, err := svc.Registrar(ctx, dto.RegistrarFinancieroRequest{Tipo: "prestamo", Monto: decStr("10.00")})
	require.ErrorAs(t, err, &ve)

	_, err = svc.Registrar(ctx, dto.RegistrarFinancieroRequest{Tipo: model.FinancieroEgreso, Monto: decStr("0")})
	require.ErrorAs(t, err, &ve)

	_, err = svc.Registrar(ctx, dto.RegistrarFinancieroRequest{Tipo: model.FinancieroEgreso, Monto: decStr("-5.00")})
	require.ErrorAs(t, err, &ve)

	assert.Empty(t, repo.movimientos)
}

func TestFinanzas_Resumen(t *testing.T) {
	repo := &stubFinancieroRepo{}
	svc := service.NewFinanzasService(repo)
	ctx := context.Background()

	asientos := []dto.RegistrarFinancieroRequest{
		{Tipo: model.FinancieroIngreso, Descripcion: "ventas del día", Monto: decStr("500.00")},
		{Tipo: model.FinancieroIngreso, Descripcion: "cobro pendiente", Monto: decStr("120.50")},
		{Tipo: model.FinancieroEgreso, Descripcion: "compra de insumos", Monto: decStr("230.25")},
	}
	for _, a := range asientos {
		_, err := svc.Registrar(ctx, a)
		require.NoError(t, err)
	}

	resumen, err := svc.Resumen(ctx)
	require.NoError(t, err)
	assert.True(t, resumen.TotalIngresos.Equal(decStr("620.50")), "ingresos %s", resumen.TotalIngresos)
	assert.True(t, resumen.TotalEgresos.Equal(decStr("230.25")), "egresos %s", resumen.TotalEgresos)
	assert.True(t, resumen.Balance.Equal(decStr("390.25")), "balance %s", resumen.Balance)
}

func TestFinanzas_ListarFiltroPorTipo(t *testing.T) {
	repo := &stubFinancieroRepo{}
	svc := service.NewFinanzasService(repo)
	ctx := context.Background()

	_, err := svc.Registrar(ctx, dto.RegistrarFinancieroRequest{Tipo: model.FinancieroIngreso, Descripcion: "a", Monto: decStr("1.00")})
	require.NoError(t, err)
	_, err = svc.Registrar(ctx, dto.RegistrarFinancieroRequest{Tipo: model.FinancieroEgreso, Descripcion: "b", Monto: decStr("2.00")})
	require.NoError(t, err)

	resp, err := svc.Listar(ctx, dto.FinancieroFilter{Tipo: model.FinancieroEgreso})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, model.FinancieroEgreso, resp.Data[0].Tipo)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 100, resp.Limit)
}
