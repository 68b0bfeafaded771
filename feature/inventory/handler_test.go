package inventory

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"warehouse-counter/core/catalog"
	catalogmocks "warehouse-counter/core/catalog/mocks"
	"warehouse-counter/core/domainerr"
	"warehouse-counter/core/storage"
	"warehouse-counter/core/storage/mocks"
	"warehouse-counter/feature/inventory/restock"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *catalog.Catalog, *catalogmocks.Store) {
	t.Helper()
	app := fiber.New()
	cat := catalog.New()
	cat.Replace(seedProducts())
	store := new(catalogmocks.Store)
	svc := NewService(cat, store, new(mocks.Client), storage.Config{Bucket: "warehouse"}, restock.Config{Prefix: "invoices"}, zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app, cat, store
}

func TestHandleList(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/products?state=partial", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []catalog.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "ABC123", body[0].Code)
}

func TestHandleLookup(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/products/lookup/abc123", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/inventory/products/lookup/ZZZ999", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domainerr.KindScanNotFound), body["code"])
}

func TestHandleGet_NotFound(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/products/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleCreate(t *testing.T) {
	app, _, store := setupTestApp(t)
	store.On("Create", mock.Anything, mock.Anything).Return("new-1", nil).Once()

	req := httptest.NewRequest("POST", "/inventory/products",
		strings.NewReader(`{"name":"Laptop Lenovo","category":"Equipo de Cómputo","branch":"Jardín Plaza","total_quantity":"3"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var body catalog.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "new-1", body.ID)
	assert.Equal(t, "AF.EC.JP.LAP.004", body.Code)
}

func TestHandleUpdate_KeepsCode(t *testing.T) {
	app, _, store := setupTestApp(t)
	store.On("Update", mock.Anything, "p-1", mock.MatchedBy(func(p catalog.Patch) bool {
		return p[catalog.FieldCode] == "AF.EC.JP.LAP.001"
	})).Return(nil).Once()

	req := httptest.NewRequest("PUT", "/inventory/products/p-1",
		strings.NewReader(`{"name":"Laptop Dell XPS 13","category":"Equipo de Cómputo","branch":"Jardín Plaza","total_quantity":"5"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body catalog.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "AF.EC.JP.LAP.001", body.Code)
	assert.Equal(t, "LAPTOP DELL XPS 13", body.Name)
	store.AssertExpectations(t)
}

func TestHandleCreate_Errors(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/inventory/products", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	req = httptest.NewRequest("POST", "/inventory/products", strings.NewReader(`{"name":"TV"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domainerr.KindCodeInsufficientInput), body["code"])
}

func TestHandleCount(t *testing.T) {
	app, cat, store := setupTestApp(t)
	store.On("Update", mock.Anything, "p-9", mock.Anything).Return(nil).Once()

	req := httptest.NewRequest("POST", "/inventory/products/p-9/count", strings.NewReader(`{"direction":"decrement","amount":3}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body CountResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Product.CountedQuantity.Equal(qty(7)))
	assert.Equal(t, catalog.StatePartial, body.State)

	got, _ := cat.Get("p-9")
	assert.True(t, got.CountedQuantity.Equal(qty(7)))
}

func TestHandleCount_Rejected(t *testing.T) {
	app, _, store := setupTestApp(t)

	tests := []struct {
		name   string
		body   string
		status int
		code   domainerr.Kind
	}{
		{"exceeds available", `{"direction":"DECREMENT","amount":7}`, 400, domainerr.KindExceedsAvailable},
		{"exceeds counted", `{"direction":"INCREMENT","amount":5}`, 400, domainerr.KindExceedsCounted},
		{"zero amount", `{"direction":"DECREMENT","amount":0}`, 400, domainerr.KindInvalidAmount},
		{"bad direction", `{"direction":"SIDEWAYS","amount":1}`, 400, domainerr.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/inventory/products/p-9/count", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, string(tt.code), body["code"])
		})
	}
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleCount_PersistenceFailure(t *testing.T) {
	app, cat, store := setupTestApp(t)
	store.On("Update", mock.Anything, "p-9", mock.Anything).Return(errors.New("offline")).Once()

	req := httptest.NewRequest("POST", "/inventory/products/p-9/count", strings.NewReader(`{"direction":"DECREMENT","amount":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)

	got, _ := cat.Get("p-9")
	assert.True(t, got.CountedQuantity.Equal(qty(4)))
}

func TestHandleReset(t *testing.T) {
	app, _, store := setupTestApp(t)
	store.On("Update", mock.Anything, "p-9", mock.Anything).Return(nil).Once()

	resp, err := app.Test(httptest.NewRequest("POST", "/inventory/products/p-9/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body catalog.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.CountedQuantity.IsZero())
	assert.Nil(t, body.LastCountedAt)
}

func TestHandleDelete(t *testing.T) {
	app, _, store := setupTestApp(t)
	store.On("Delete", mock.Anything, "p-1").Return(nil).Once()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/inventory/products/p-1", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestHandlePreviewCode(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/inventory/codes/preview",
		strings.NewReader(`{"category":"Mobiliario","branch":"Centro","name":"Silla ejecutiva"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "AF.MO.CE.SIL.001", body["code"])
}

func TestHandleMatch(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/inventory/match", strings.NewReader(`{"name":"impresora"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleImport_CSV(t *testing.T) {
	app, _, store := setupTestApp(t)
	store.On("Create", mock.Anything, mock.Anything).Return("i-1", nil).Once()

	csvBody := "nombre,categoria,sucursal,cantidad\nSilla gerente,Mobiliario,Centro,\"2,5\"\n"
	req := httptest.NewRequest("POST", "/inventory/import", strings.NewReader(csvBody))
	req.Header.Set("Content-Type", "text/csv")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body ImportResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Created, 1)
	assert.Equal(t, "AF.MO.CE.SIL.001", body.Created[0].Code)
	assert.Equal(t, "2.5", body.Created[0].TotalQuantity.String())
}

func TestHandleImport_NoNameColumn(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/inventory/import", strings.NewReader(`{"rows":[["codigo","cantidad"],["X1",1]]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleRestock_Plan(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/inventory/restock",
		strings.NewReader(`{"items":[{"name":"laptop dell","quantity":2}],"dry_run":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body RestockResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Plan.Actions, 1)
	assert.Equal(t, "p-1", body.Plan.Actions[0].ProductID)
	assert.False(t, body.Result.Executed)
}

func TestHandleSummary(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body catalog.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, catalog.Summary{Total: 3, NotCounted: 2, Partial: 1}, body)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, 404, StatusOf(domainerr.New(domainerr.KindScanNotFound, "x")))
	assert.Equal(t, 409, StatusOf(domainerr.New(domainerr.KindCodeCollision, "x")))
	assert.Equal(t, 409, StatusOf(domainerr.New(domainerr.KindInvalidState, "x")))
	assert.Equal(t, 503, StatusOf(domainerr.Wrap(domainerr.KindPersistenceFailure, "x", errors.New("y"))))
	assert.Equal(t, 500, StatusOf(errors.New("boom")))
}
