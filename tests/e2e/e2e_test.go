//go:build integration

package e2e

// End-to-end tests against Postgres + Redis reales via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Escenarios:
//   - Ciclo completo: login → alta de catálogo → venta → comisión → recibo
//   - Rollback real: stock insuficiente no deja rastro en ninguna tabla
//   - Alertas de stock tras vender hasta el umbral
//   - Consulta pública de precio con cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/config"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/infra"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Setup ────────────────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("cerrajeria_test"),
		tcPostgres.WithUsername("cerrajeria"),
		tcPostgres.WithPassword("cerrajeria"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Admin seed
	hash, err := bcrypt.GenerateFromPassword([]byte("cerrajeria2026"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Exec(`INSERT INTO usuarios (username, nombre, email, password_hash, rol, activo)
		VALUES ('admin', 'Admin E2E', 'admin@e2e.test', ?, 'administrador', true)
		ON CONFLICT DO NOTHING`, string(hash)).Error)

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "cerrajeria2026"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken}
}

// crearProducto da de alta categoría + tarifa + producto y devuelve sus ids.
func crearProducto(t *testing.T, env *testEnv, nombre string, costo, venta float64, stock, minimo, tarifaPct int) (categoriaID, productoID string) {
	t.Helper()

	catResp := do(t, env.server, "POST", "/v1/categorias/productos",
		jsonBody(t, map[string]any{"nombre": nombre + " (categoría)"}), env.token)
	require.Equal(t, http.StatusCreated, catResp.StatusCode)
	var cat struct {
		ID string `json:"id"`
	}
	decodeJSON(t, catResp, &cat)

	if tarifaPct > 0 {
		tarResp := do(t, env.server, "PUT", "/v1/tarifas",
			jsonBody(t, map[string]any{"categoria_id": cat.ID, "porcentaje": tarifaPct}), env.token)
		require.Equal(t, http.StatusOK, tarResp.StatusCode)
		tarResp.Body.Close()
	}

	prodResp := do(t, env.server, "POST", "/v1/productos",
		jsonBody(t, map[string]any{
			"nombre":       nombre,
			"categoria_id": cat.ID,
			"precio_costo": costo,
			"precio_venta": venta,
			"stock_actual": stock,
			"stock_minimo": minimo,
		}), env.token)
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var prod struct {
		ID string `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)
	return cat.ID, prod.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_CicloCompletoDeVenta(t *testing.T) {
	env := setupTestEnv(t)

	_, prodID := crearProducto(t, env, "Cerradura Yale 6600", 50, 75, 10, 4, 10)

	ventaResp := do(t, env.server, "POST", "/v1/ventas",
		jsonBody(t, map[string]any{
			"items": []map[string]any{
				{"producto_id": prodID, "cantidad": 2, "precio_final": 70},
			},
		}), env.token)
	require.Equal(t, http.StatusCreated, ventaResp.StatusCode)
	var venta struct {
		ID    string `json:"id"`
		Total string `json:"total"`
	}
	decodeJSON(t, ventaResp, &venta)
	assert.Equal(t, "140", venta.Total)

	// Stock descontado
	prodDetail := do(t, env.server, "GET", "/v1/productos/"+prodID, nil, env.token)
	require.Equal(t, http.StatusOK, prodDetail.StatusCode)
	var prod struct {
		StockActual int    `json:"stock_actual"`
		Estado      string `json:"estado"`
	}
	decodeJSON(t, prodDetail, &prod)
	assert.Equal(t, 8, prod.StockActual)
	assert.Equal(t, "disponible", prod.Estado)

	// Movimiento de salida registrado
	movResp := do(t, env.server, "GET", "/v1/inventario/movimientos?producto_id="+prodID, nil, env.token)
	require.Equal(t, http.StatusOK, movResp.StatusCode)
	var movs struct {
		Data []struct {
			Tipo          string `json:"tipo"`
			Cantidad      int    `json:"cantidad"`
			StockAnterior int    `json:"stock_anterior"`
			StockNuevo    int    `json:"stock_nuevo"`
		} `json:"data"`
	}
	decodeJSON(t, movResp, &movs)
	require.Len(t, movs.Data, 1)
	assert.Equal(t, "salida", movs.Data[0].Tipo)
	assert.Equal(t, 10, movs.Data[0].StockAnterior)
	assert.Equal(t, 8, movs.Data[0].StockNuevo)

	// Comisión automática: (70−50) × 10% = 2.00 por unidad × 2
	comResp := do(t, env.server, "GET", "/v1/comisiones", nil, env.token)
	require.Equal(t, http.StatusOK, comResp.StatusCode)
	var coms struct {
		Data []struct {
			Monto  string `json:"monto"`
			Estado string `json:"estado"`
		} `json:"data"`
	}
	decodeJSON(t, comResp, &coms)
	require.Len(t, coms.Data, 1)
	assert.Equal(t, "4", coms.Data[0].Monto)
	assert.Equal(t, "pendiente", coms.Data[0].Estado)

	// Recibo PDF descargable
	reciboResp := do(t, env.server, "GET", "/v1/ventas/"+venta.ID+"/recibo", nil, env.token)
	require.Equal(t, http.StatusOK, reciboResp.StatusCode)
	reciboResp.Body.Close()
}

// Con stock insuficiente la transacción completa se revierte: no hay venta,
// ni movimiento, ni comisión, y el stock queda intacto.
func TestE2E_StockInsuficienteSinRastro(t *testing.T) {
	env := setupTestEnv(t)

	_, prodID := crearProducto(t, env, "Candado 40mm", 10, 18, 3, 1, 20)

	ventaResp := do(t, env.server, "POST", "/v1/ventas",
		jsonBody(t, map[string]any{
			"items": []map[string]any{
				{"producto_id": prodID, "cantidad": 5, "precio_final": 18},
			},
		}), env.token)
	require.Equal(t, http.StatusConflict, ventaResp.StatusCode)
	ventaResp.Body.Close()

	prodDetail := do(t, env.server, "GET", "/v1/productos/"+prodID, nil, env.token)
	var prod struct {
		StockActual int `json:"stock_actual"`
	}
	decodeJSON(t, prodDetail, &prod)
	assert.Equal(t, 3, prod.StockActual)

	listResp := do(t, env.server, "GET", "/v1/ventas", nil, env.token)
	var list struct {
		Total int64 `json:"total"`
	}
	decodeJSON(t, listResp, &list)
	assert.Zero(t, list.Total)

	movResp := do(t, env.server, "GET", "/v1/inventario/movimientos?producto_id="+prodID, nil, env.token)
	var movs struct {
		Total int64 `json:"total"`
	}
	decodeJSON(t, movResp, &movs)
	assert.Zero(t, movs.Total)
}

func TestE2E_AlertasTrasVenta(t *testing.T) {
	env := setupTestEnv(t)

	_, prodID := crearProducto(t, env, "Cilindro europeo", 30, 55, 5, 4, 0)

	ventaResp := do(t, env.server, "POST", "/v1/ventas",
		jsonBody(t, map[string]any{
			"items": []map[string]any{
				{"producto_id": prodID, "cantidad": 2, "precio_final": 55},
			},
		}), env.token)
	require.Equal(t, http.StatusCreated, ventaResp.StatusCode)
	ventaResp.Body.Close()

	alertasResp := do(t, env.server, "GET", "/v1/inventario/alertas", nil, env.token)
	require.Equal(t, http.StatusOK, alertasResp.StatusCode)
	var alertas []struct {
		ProductoID string `json:"producto_id"`
		Estado     string `json:"estado"`
	}
	decodeJSON(t, alertasResp, &alertas)
	require.Len(t, alertas, 1)
	assert.Equal(t, prodID, alertas[0].ProductoID)
	assert.Equal(t, "stock_bajo", alertas[0].Estado)
}

// La consulta pública de precio no requiere token y cachea en Redis.
func TestE2E_ConsultaPrecioPublica(t *testing.T) {
	env := setupTestEnv(t)

	_, prodID := crearProducto(t, env, "Llave multipunto", 8, 15, 10, 2, 0)

	for i := 0; i < 2; i++ { // segunda vuelta sale del cache
		resp := do(t, env.server, "GET", fmt.Sprintf("/v1/precio/%s", prodID), nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var precio struct {
			Nombre          string `json:"nombre"`
			PrecioVenta     string `json:"precio_venta"`
			StockDisponible int    `json:"stock_disponible"`
		}
		decodeJSON(t, resp, &precio)
		assert.Equal(t, "Llave multipunto", precio.Nombre)
		assert.Equal(t, "15", precio.PrecioVenta)
		assert.Equal(t, 10, precio.StockDisponible)
	}
}
