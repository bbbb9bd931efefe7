package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager/internal/application/analytics"
	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/inventory"
	"github.com/jhoicas/stock-manager/internal/application/report"
	"github.com/jhoicas/stock-manager/internal/application/usecase"
	"github.com/jhoicas/stock-manager/internal/infrastructure/csvexport"
	"github.com/jhoicas/stock-manager/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/stock-manager/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/stock-manager/pkg/jwt"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

func newTestServer(t *testing.T, jwtSecret string) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	log := logger.Nop()
	return apphttp.NewApp(apphttp.AppConfig{Name: "stock-manager-test"}, apphttp.RouterDeps{
		ProductUC:        usecase.NewProductUseCase(store.Products(), store, log),
		RegisterMovement: inventory.NewRegisterMovementUseCase(store, log),
		MovementQuery:    inventory.NewMovementQueryUseCase(store.Movements()),
		DashboardUC:      analytics.NewDashboardUseCase(store.Products(), store.Movements()),
		ReportUC:         report.NewReportUseCase(store.Products(), store.Movements(), csvexport.NewWriter(), nil),
		JWTSecret:        jwtSecret,
		Log:              log,
	})
}

func call(t *testing.T, app *fiber.App, method, path, body string, headers ...string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

const farine = `{"name":"Farine T55","category":"Épicerie","quantity":20,"unit":"kg","min_threshold":20,"price_per_unit":"1.20"}`

func createFarine(t *testing.T, app *fiber.App, headers ...string) dto.ProductResponse {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/products", farine, headers...)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ProductResponse](t, resp)
}

func movementBody(id int64, typ, qty string) string {
	return fmt.Sprintf(`{"product_id":%d,"type":%q,"quantity":%s,"date":"2026-03-12"}`, id, typ, qty)
}

func TestHealth(t *testing.T) {
	app := newTestServer(t, "")
	resp := call(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
	body := decode[dto.HealthResponse](t, resp)
	assert.Equal(t, "ok", body.Status)
}

func TestProductLifecycle_StockFlow(t *testing.T) {
	app := newTestServer(t, "")
	p := createFarine(t, app)
	assert.Equal(t, "OK", p.Status)
	assert.Equal(t, "20", p.Quantity.String())

	resp := call(t, app, http.MethodPost, "/api/movements", movementBody(p.ID, "Sortie", "2"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	mov := decode[dto.MovementResponse](t, resp)
	assert.Equal(t, "Farine T55", mov.ProductName)
	assert.Equal(t, "2026-03-12", mov.Date)

	got := decode[dto.ProductResponse](t, call(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), ""))
	assert.Equal(t, "Alerte", got.Status)
	assert.Equal(t, 90, got.CriticalityPct)
	assert.Equal(t, "18", got.Quantity.String())

	resp = call(t, app, http.MethodPost, "/api/movements", movementBody(p.ID, "Sortie", "30"))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInsufficientStock, decode[dto.ErrorResponse](t, resp).Code)

	resp = call(t, app, http.MethodPost, "/api/movements", movementBody(p.ID, "Sortie", "18"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	got = decode[dto.ProductResponse](t, call(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), ""))
	assert.Equal(t, "Rupture", got.Status)
	assert.True(t, got.Quantity.IsZero())

	history := decode[[]dto.MovementResponse](t, call(t, app, http.MethodGet, fmt.Sprintf("/api/movements?product_id=%d", p.ID), ""))
	require.Len(t, history, 2)
	assert.Equal(t, "18", history[0].Quantity.String(), "más reciente primero")

	alerts := decode[[]dto.ProductResponse](t, call(t, app, http.MethodGet, "/api/products/alerts", ""))
	require.Len(t, alerts, 1)
	summary := decode[dto.AlertSummaryResponse](t, call(t, app, http.MethodGet, "/api/products/alerts/summary", ""))
	assert.Equal(t, 1, summary.Stockout)
	assert.Equal(t, 1, summary.Total)

	stats := decode[dto.DashboardStatsResponse](t, call(t, app, http.MethodGet, "/api/dashboard?date=2026-03-12", ""))
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 2, stats.TodayMovements)
	assert.Equal(t, "0.00", stats.TotalStockValue)
	assert.Equal(t, "2026-03-12", stats.Date)
}

func TestUpdateProduct_QuantityChangeBooksAdjustment(t *testing.T) {
	app := newTestServer(t, "")
	p := createFarine(t, app)

	body := `{"name":"Farine T65","category":"Épicerie","quantity":"12.5","unit":"kg","min_threshold":20,"price_per_unit":"1.20"}`
	resp := call(t, app, http.MethodPut, fmt.Sprintf("/api/products/%d", p.ID), body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Farine T65", got.Name)
	assert.Equal(t, "12.5", got.Quantity.String())

	history := decode[[]dto.MovementResponse](t, call(t, app, http.MethodGet, "/api/movements?type=Sortie", ""))
	require.Len(t, history, 1)
	assert.Equal(t, "7.5", history[0].Quantity.String())
	assert.Equal(t, "Farine T65", history[0].ProductName)
	require.NotNil(t, history[0].Comment)
	assert.Equal(t, inventory.ReconciliationComment, *history[0].Comment)
}

func TestErrors(t *testing.T) {
	app := newTestServer(t, "")
	p := createFarine(t, app)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"producto inexistente", http.MethodGet, "/api/products/999", "", http.StatusNotFound, apphttp.CodeNotFound},
		{"id no numérico", http.MethodGet, "/api/products/abc", "", http.StatusUnprocessableEntity, apphttp.CodeValidation},
		{"cuerpo inválido", http.MethodPost, "/api/products", "{", http.StatusUnprocessableEntity, apphttp.CodeInvalidBody},
		{"nombre requerido", http.MethodPost, "/api/products", `{"category":"Épicerie","unit":"kg"}`, http.StatusUnprocessableEntity, apphttp.CodeValidation},
		{"categoría desconocida", http.MethodPost, "/api/products", `{"name":"X","category":"Jouets","unit":"u"}`, http.StatusUnprocessableEntity, apphttp.CodeValidation},
		{"cantidad negativa", http.MethodPost, "/api/products", `{"name":"X","category":"Hygiène","unit":"u","quantity":-1}`, http.StatusUnprocessableEntity, apphttp.CodeValidation},
		{"movimiento a producto inexistente", http.MethodPost, "/api/movements", movementBody(999, "Entrée", "1"), http.StatusNotFound, apphttp.CodeNotFound},
		{"tipo desconocido", http.MethodPost, "/api/movements", movementBody(p.ID, "Transfert", "1"), http.StatusUnprocessableEntity, apphttp.CodeValidation},
		{"cantidad cero", http.MethodPost, "/api/movements", movementBody(p.ID, "Entrée", "0"), http.StatusUnprocessableEntity, apphttp.CodeValidation},
		{"filtro de fecha inválido", http.MethodGet, "/api/movements?date_from=12/03/2026", "", http.StatusUnprocessableEntity, apphttp.CodeValidation},
		{"ruta desconocida", http.MethodGet, "/api/nada", "", http.StatusNotFound, apphttp.CodeNotFound},
		{"borrar inexistente", http.MethodDelete, "/api/products/999", "", http.StatusNotFound, apphttp.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}
}

func TestDeleteProduct_CascadesMovements(t *testing.T) {
	app := newTestServer(t, "")
	p := createFarine(t, app)
	resp := call(t, app, http.MethodPost, "/api/movements", movementBody(p.ID, "Entrée", "5"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodDelete, fmt.Sprintf("/api/products/%d", p.ID), "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	history := decode[[]dto.MovementResponse](t, call(t, app, http.MethodGet, "/api/movements", ""))
	assert.Empty(t, history)
}

func TestCategoriesAndFilter(t *testing.T) {
	app := newTestServer(t, "")
	createFarine(t, app)
	resp := call(t, app, http.MethodPost, "/api/products", `{"name":"Savon","category":"Hygiène","quantity":3,"unit":"u","min_threshold":1,"price_per_unit":2}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	cats := decode[[]string](t, call(t, app, http.MethodGet, "/api/products/categories", ""))
	assert.Contains(t, cats, "Hygiène")
	assert.Len(t, cats, 6)

	list := decode[[]dto.ProductResponse](t, call(t, app, http.MethodGet, "/api/products?category=Hygi%C3%A8ne", ""))
	require.Len(t, list, 1)
	assert.Equal(t, "Savon", list[0].Name)
}

func TestExportCSV(t *testing.T) {
	app := newTestServer(t, "")
	p := createFarine(t, app)
	resp := call(t, app, http.MethodPost, "/api/movements", movementBody(p.ID, "Sortie", "2"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/movements/export.csv", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "mouvements_")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, strings.HasPrefix(string(raw), "\uFEFF"))
	assert.Contains(t, string(raw), "2026-03-12;Farine T55;Sortie;2")

	resp = call(t, app, http.MethodGet, "/api/products/export.csv", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), "Farine T55;Épicerie")
}

func TestWriteRoutesRequireRoleWhenSecretSet(t *testing.T) {
	app := newTestServer(t, testJWTSecret)

	resp := call(t, app, http.MethodPost, "/api/products", farine)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/products", farine, "Authorization", tokenForRole(t, pkgjwt.RoleReadOnly))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	p := createFarine(t, app, "Authorization", tokenForRole(t, pkgjwt.RoleManager))

	// Las lecturas no exigen token.
	resp = call(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodDelete, fmt.Sprintf("/api/products/%d", p.ID), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestOmittedOrOversizedDecimals_Rejected(t *testing.T) {
	app := newTestServer(t, "")
	p := createFarine(t, app)
	path := fmt.Sprintf("/api/products/%d", p.ID)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"PUT sin quantity", http.MethodPut, path, `{"name":"Farine T55","category":"Épicerie","unit":"kg","min_threshold":20,"price_per_unit":"1.20"}`},
		{"PUT con quantity null", http.MethodPut, path, `{"name":"Farine T55","category":"Épicerie","quantity":null,"unit":"kg","min_threshold":20,"price_per_unit":"1.20"}`},
		{"PUT sin price_per_unit", http.MethodPut, path, `{"name":"Farine T55","category":"Épicerie","quantity":20,"unit":"kg","min_threshold":20}`},
		{"POST producto sin decimales", http.MethodPost, "/api/products", `{"name":"X","category":"Épicerie","unit":"kg"}`},
		{"POST producto con tres decimales", http.MethodPost, "/api/products", `{"name":"X","category":"Épicerie","quantity":"1.125","unit":"kg","min_threshold":1,"price_per_unit":1}`},
		{"POST movimiento sin quantity", http.MethodPost, "/api/movements", fmt.Sprintf(`{"product_id":%d,"type":"Entrée","date":"2026-03-12"}`, p.ID)},
		{"POST movimiento exponente enorme", http.MethodPost, "/api/movements", movementBody(p.ID, "Entrée", `"1e3000000"`)},
		{"PUT quantity enorme", http.MethodPut, path, `{"name":"Farine T55","category":"Épicerie","quantity":"1e3000000","unit":"kg","min_threshold":20,"price_per_unit":"1.20"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			assert.Equal(t, apphttp.CodeValidation, decode[dto.ErrorResponse](t, resp).Code)
		})
	}

	got := decode[dto.ProductResponse](t, call(t, app, http.MethodGet, path, ""))
	assert.Equal(t, "20", got.Quantity.String())
	list := decode[[]dto.ProductResponse](t, call(t, app, http.MethodGet, "/api/products", ""))
	assert.Len(t, list, 1)
	history := decode[[]dto.MovementResponse](t, call(t, app, http.MethodGet, "/api/movements", ""))
	assert.Empty(t, history)
}
