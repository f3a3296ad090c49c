package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mefdet1/Assignment-5/internal/config"
	"github.com/mefdet1/Assignment-5/internal/database/databasetest"
	"github.com/mefdet1/Assignment-5/internal/models"
	"github.com/mefdet1/Assignment-5/internal/repository"
	"github.com/mefdet1/Assignment-5/internal/service"
	"github.com/mefdet1/Assignment-5/pkg/logger"
)

func newTestHandlers(t *testing.T) Handlers {
	t.Helper()

	db := databasetest.Open(t)
	log := logger.New("error")

	return Handlers{
		Orders:       NewOrderHandler(service.NewOrderService(repository.NewStore[models.Order](db, "order", "OrderDetails")), log),
		Sandwiches:   NewSandwichHandler(service.NewSandwichService(repository.NewStore[models.Sandwich](db, "sandwich")), log),
		Resources:    NewResourceHandler(service.NewResourceService(repository.NewStore[models.Resource](db, "resource")), log),
		Recipes:      NewRecipeHandler(service.NewRecipeService(repository.NewStore[models.Recipe](db, "recipe")), log),
		OrderDetails: NewOrderDetailHandler(service.NewOrderDetailService(repository.NewStore[models.OrderDetail](db, "order_detail")), log),
		Health:       NewHealthHandler(nil, log),
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	return NewRouter(newTestHandlers(t), RouterOptions{
		Logger: logger.New("error"),
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
	})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return out
}

func TestScenario_DeleteSandwichWithRecipe(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/sandwiches/", `{"sandwich_name":"BLT","price":6.50}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create sandwich status = %d, want 200", w.Code)
	}
	sandwich := decode(t, w)
	if sandwich["id"] != float64(1) || sandwich["sandwich_name"] != "BLT" || sandwich["price"] != 6.5 {
		t.Errorf("unexpected sandwich: %v", sandwich)
	}

	w = do(t, r, http.MethodPost, "/recipes/", `{"sandwich_id":1,"resource_id":1,"amount":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create recipe status = %d, want 200", w.Code)
	}
	recipe := decode(t, w)
	if recipe["id"] != float64(1) || recipe["sandwich_id"] != float64(1) || recipe["resource_id"] != float64(1) || recipe["amount"] != float64(2) {
		t.Errorf("unexpected recipe: %v", recipe)
	}

	w = do(t, r, http.MethodDelete, "/sandwiches/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", w.Code)
	}
	if got := decode(t, w)["detail"]; got != "Sandwich deleted successfully" {
		t.Errorf("delete detail = %v", got)
	}

	w = do(t, r, http.MethodGet, "/sandwiches/1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("read after delete status = %d, want 404", w.Code)
	}
	if got := decode(t, w)["detail"]; got != "Sandwich not found" {
		t.Errorf("not found detail = %v", got)
	}
}

func TestEntities_CRUD(t *testing.T) {
	tests := []struct {
		collection  string
		entity      string
		create      string
		update      string
		changed     string
		changedTo   interface{}
		unchanged   string
		unchangedIs interface{}
	}{
		{
			collection: "/orders/", entity: "Order",
			create:  `{"customer_name":"Ada","description":"lunch"}`,
			update:  `{"description":"dinner"}`,
			changed: "description", changedTo: "dinner",
			unchanged: "customer_name", unchangedIs: "Ada",
		},
		{
			collection: "/sandwiches/", entity: "Sandwich",
			create:  `{"sandwich_name":"Club","price":8.25}`,
			update:  `{"price":9}`,
			changed: "price", changedTo: float64(9),
			unchanged: "sandwich_name", unchangedIs: "Club",
		},
		{
			collection: "/resources/", entity: "Resource",
			create:  `{"item":"bread","amount":40}`,
			update:  `{"item":"rye"}`,
			changed: "item", changedTo: "rye",
			unchanged: "amount", unchangedIs: float64(40),
		},
		{
			collection: "/recipes/", entity: "Recipe",
			create:  `{"sandwich_id":1,"resource_id":2,"amount":3}`,
			update:  `{"amount":4}`,
			changed: "amount", changedTo: float64(4),
			unchanged: "resource_id", unchangedIs: float64(2),
		},
		{
			collection: "/order_details/", entity: "Order detail",
			create:  `{"order_id":1,"sandwich_id":2,"amount":1}`,
			update:  `{"sandwich_id":5}`,
			changed: "sandwich_id", changedTo: float64(5),
			unchanged: "amount", unchangedIs: float64(1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.entity, func(t *testing.T) {
			r := newTestRouter(t)
			item := tt.collection + "1"

			// create
			w := do(t, r, http.MethodPost, tt.collection, tt.create)
			if w.Code != http.StatusOK {
				t.Fatalf("create status = %d, want 200: %s", w.Code, w.Body.String())
			}
			created := decode(t, w)
			if created["id"] != float64(1) {
				t.Fatalf("created id = %v, want 1", created["id"])
			}

			// read one matches created
			w = do(t, r, http.MethodGet, item, "")
			if w.Code != http.StatusOK {
				t.Fatalf("get status = %d, want 200", w.Code)
			}
			got := decode(t, w)
			var want map[string]interface{}
			if err := json.Unmarshal([]byte(tt.create), &want); err != nil {
				t.Fatal(err)
			}
			for k, v := range want {
				if got[k] != v {
					t.Errorf("field %s = %v, want %v", k, got[k], v)
				}
			}

			// read all, with and without trailing slash
			do(t, r, http.MethodPost, tt.collection, tt.create)
			for _, path := range []string{tt.collection, strings.TrimSuffix(tt.collection, "/")} {
				w = do(t, r, http.MethodGet, path, "")
				if w.Code != http.StatusOK {
					t.Fatalf("list %s status = %d, want 200", path, w.Code)
				}
				var all []map[string]interface{}
				if err := json.NewDecoder(w.Body).Decode(&all); err != nil {
					t.Fatalf("failed to decode list: %v", err)
				}
				if len(all) != 2 {
					t.Errorf("list %s returned %d items, want 2", path, len(all))
				}
			}

			// partial update
			w = do(t, r, http.MethodPut, item, tt.update)
			if w.Code != http.StatusOK {
				t.Fatalf("update status = %d, want 200: %s", w.Code, w.Body.String())
			}
			updated := decode(t, w)
			if updated[tt.changed] != tt.changedTo {
				t.Errorf("%s = %v, want %v", tt.changed, updated[tt.changed], tt.changedTo)
			}
			if updated[tt.unchanged] != tt.unchangedIs {
				t.Errorf("%s = %v, want %v", tt.unchanged, updated[tt.unchanged], tt.unchangedIs)
			}

			// delete
			w = do(t, r, http.MethodDelete, item, "")
			if w.Code != http.StatusOK {
				t.Fatalf("delete status = %d, want 200", w.Code)
			}
			if detail := decode(t, w)["detail"]; detail != tt.entity+" deleted successfully" {
				t.Errorf("delete detail = %v", detail)
			}

			// every by-id operation on the deleted id is 404
			notFound := tt.entity + " not found"
			for _, req := range []struct{ method, body string }{
				{http.MethodGet, ""},
				{http.MethodPut, tt.update},
				{http.MethodDelete, ""},
			} {
				w = do(t, r, req.method, item, req.body)
				if w.Code != http.StatusNotFound {
					t.Errorf("%s after delete status = %d, want 404", req.method, w.Code)
					continue
				}
				if detail := decode(t, w)["detail"]; detail != notFound {
					t.Errorf("%s detail = %v, want %q", req.method, detail, notFound)
				}
			}
		})
	}
}

func TestOrders_EmbedDetails(t *testing.T) {
	r := newTestRouter(t)

	do(t, r, http.MethodPost, "/orders/", `{"customer_name":"Lin"}`)
	do(t, r, http.MethodPost, "/order_details/", `{"order_id":1,"sandwich_id":3,"amount":2}`)

	w := do(t, r, http.MethodGet, "/orders/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var order models.Order
	if err := json.NewDecoder(w.Body).Decode(&order); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(order.OrderDetails) != 1 || order.OrderDetails[0].Amount != 2 {
		t.Errorf("order_details = %+v, want one line with amount 2", order.OrderDetails)
	}
	if order.OrderDate.IsZero() {
		t.Error("order_date should be set")
	}
}

func TestInvalidRequests(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedDetail string
	}{
		{"non-numeric id", http.MethodGet, "/sandwiches/abc", "", http.StatusBadRequest, "Invalid ID supplied"},
		{"zero id", http.MethodDelete, "/recipes/0", "", http.StatusBadRequest, "Invalid ID supplied"},
		{"float id", http.MethodPut, "/resources/1.5", `{"amount":1}`, http.StatusBadRequest, "Invalid ID supplied"},
		{"invalid JSON", http.MethodPost, "/sandwiches/", "not json", http.StatusUnprocessableEntity, "invalid request body"},
		{"wrong type", http.MethodPost, "/resources/", `{"item":"ham","amount":"lots"}`, http.StatusUnprocessableEntity, "invalid request body"},
		{"missing field", http.MethodPost, "/sandwiches/", `{"sandwich_name":"BLT"}`, http.StatusUnprocessableEntity, "price is required"},
		{"missing fields", http.MethodPost, "/order_details/", `{"amount":1}`, http.StatusUnprocessableEntity, "order_id is required; sandwich_id is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
			if detail := decode(t, w)["detail"]; detail != tt.expectedDetail {
				t.Errorf("detail = %v, want %q", detail, tt.expectedDetail)
			}
		})
	}
}

func TestCreate_ZeroValuesArePresent(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/resources/", `{"item":"","amount":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t)
	const origin = "http://shop.example"

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/orders/", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
		req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != origin {
			t.Errorf("Allow-Origin = %q, want %q", got, origin)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("Allow-Credentials = %q, want true", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); got != http.MethodDelete {
			t.Errorf("Allow-Methods = %q, want DELETE", got)
		}
	})

	t.Run("actual request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/sandwiches/", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != origin {
			t.Errorf("Allow-Origin = %q, want %q", got, origin)
		}
	})
}

func TestHealthHandler(t *testing.T) {
	log := logger.New("error")

	tests := []struct {
		name           string
		check          func(context.Context) error
		expectedStatus int
		expectedState  string
	}{
		{"no check", nil, http.StatusOK, "healthy"},
		{"store reachable", func(context.Context) error { return nil }, http.StatusOK, "healthy"},
		{"store down", func(context.Context) error { return errors.New("connection refused") }, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.check, log)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.expectedState {
				t.Errorf("status field = %q, want %q", resp.Status, tt.expectedState)
			}
		})
	}
}

func TestRouter_APIKeyAndMetrics(t *testing.T) {
	r := NewRouter(newTestHandlers(t), RouterOptions{
		Logger:         logger.New("error"),
		CORS:           config.CORSConfig{AllowedOrigins: []string{"*"}},
		Auth:           config.AuthConfig{APIKeys: []string{"secret"}},
		MetricsEnabled: true,
	})

	w := do(t, r, http.MethodPost, "/resources/", `{"item":"bread","amount":40}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("create without key status = %d, want 401", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/resources/", strings.NewReader(`{"item":"bread","amount":40}`))
	req.Header.Set("api_key", "secret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("create with key status = %d, want 200", w.Code)
	}

	w = do(t, r, http.MethodGet, "/resources/1", "")
	if w.Code != http.StatusOK {
		t.Errorf("read without key status = %d, want 200", w.Code)
	}

	w = do(t, r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Error("metrics output missing http_requests_total")
	}
}
