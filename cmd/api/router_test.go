package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/config"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/handlers"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/logger"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/models"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/services"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/store"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/testutil"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// testApp holds the full application stack backed by in-memory SQLite.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	token  string
}

func setupApp(t *testing.T, authDisabled bool) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	expenseService := services.NewExpenseService(store.NewGormStore(db))
	auditService := services.NewAuditService(db)
	router := newRouter(&config.Config{AuthDisabled: authDisabled}, handlers.NewExpenseHandler(expenseService, auditService))

	return &testApp{DB: db, Router: router, token: testutil.AccessToken(t, 11, "manager@test.com")}
}

func (a *testApp) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.token)
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)

	var result map[string]interface{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
			t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
		}
	}
	return rec, result
}

func TestExpenseFlow(t *testing.T) {
	app := setupApp(t, false)

	rec, result := app.do(t, "POST", "/api/v1/expenses", `{"amount":100.0,"reason":"Utilities","date":"2024-01-01"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if result["rows_affected"] != float64(1) {
		t.Errorf("expected 1 row affected, got %v", result["rows_affected"])
	}

	rec, result = app.do(t, "POST", "/api/v1/expenses", `{"amount":0,"reason":"Repair","date":"2024-01-01"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if errObj := result["error"].(map[string]interface{}); errObj["code"] != "INVALID_AMOUNT" || errObj["message"] != "Amount cannot be ₱0 or below" {
		t.Errorf("unexpected error %v", errObj)
	}

	rec, result = app.do(t, "POST", "/api/v1/expenses", `{"amount":50,"reason":"Rent","date":"2024-01-01"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if errObj := result["error"].(map[string]interface{}); errObj["code"] != "INVALID_REASON" || errObj["message"] != "Invalid reason Rent" {
		t.Errorf("unexpected error %v", errObj)
	}

	rec, result = app.do(t, "GET", "/api/v1/expenses", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	list := result["expenses"].([]interface{})
	if len(list) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(list))
	}
	e := list[0].(map[string]interface{})
	if e["amount"] != "100" || e["reason"] != "Utilities" || e["date"] != "2024-01-01" {
		t.Errorf("unexpected expense %v", e)
	}
	id := int(e["id"].(float64))

	rec, result = app.do(t, "DELETE", "/api/v1/expenses/999", "")
	if rec.Code != http.StatusOK || result["rows_affected"] != float64(0) {
		t.Errorf("expected 200 with 0 rows, got %d %v", rec.Code, result)
	}

	rec, result = app.do(t, "DELETE", "/api/v1/expenses/"+jsonInt(id), "")
	if rec.Code != http.StatusOK || result["rows_affected"] != float64(1) {
		t.Errorf("expected 200 with 1 row, got %d %v", rec.Code, result)
	}

	_, result = app.do(t, "GET", "/api/v1/expenses", "")
	if list := result["expenses"].([]interface{}); len(list) != 0 {
		t.Errorf("expected no expenses after delete, got %d", len(list))
	}

	var logs []models.AuditLog
	if err := app.DB.Order("created_at ASC").Find(&logs).Error; err != nil {
		t.Fatalf("failed to load audit logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected create and delete audit entries, got %d", len(logs))
	}
	for _, l := range logs {
		if l.UserID != 11 || l.ResourceID != uint(id) {
			t.Errorf("unexpected audit entry %+v", l)
		}
	}
}

func TestSummaryAndReasons(t *testing.T) {
	app := setupApp(t, false)

	for _, body := range []string{
		`{"amount":"10.50","reason":"Supplies","date":"2024-03-01"}`,
		`{"amount":"4.50","reason":"Supplies","date":"2024-03-15"}`,
		`{"amount":"200","reason":"Maintenance","date":"2024-04-01"}`,
	} {
		if rec, _ := app.do(t, "POST", "/api/v1/expenses", body); rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec, result := app.do(t, "GET", "/api/v1/expenses/summary?from=2024-03-01&to=2024-03-31", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if result["grand_total"] != "15" || result["count"] != float64(2) {
		t.Errorf("unexpected summary %v", result)
	}

	rec, result = app.do(t, "GET", "/api/v1/expenses/reasons", "")
	if rec.Code != http.StatusOK || len(result["reasons"].([]interface{})) != 5 {
		t.Errorf("unexpected reasons response %d %v", rec.Code, result)
	}

	rec, _ = app.do(t, "GET", "/api/v1/expenses/export", "")
	if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
		t.Errorf("expected workbook, got %d with %d bytes", rec.Code, rec.Body.Len())
	}
}

func TestAuthentication(t *testing.T) {
	t.Run("required_by_default", func(t *testing.T) {
		app := setupApp(t, false)

		req := httptest.NewRequest("GET", "/api/v1/expenses", nil)
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		app := setupApp(t, true)

		req := httptest.NewRequest("GET", "/api/v1/expenses", nil)
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})
}

func TestHealthAndCORS(t *testing.T) {
	app := setupApp(t, false)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/api/v1/expenses", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header")
	}
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}
