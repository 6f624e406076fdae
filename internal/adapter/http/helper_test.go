package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"agrifin-backend/internal/adapter/repository/gormstore"
	dbinfra "agrifin-backend/internal/infrastructure/db"
	"agrifin-backend/internal/usecase/auth"
	"agrifin-backend/internal/usecase/farmer"
	"agrifin-backend/internal/usecase/loan"
	"agrifin-backend/internal/usecase/product"
	"agrifin-backend/pkg/token"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	e   *echo.Echo
	db  *gorm.DB
	reg *prometheus.Registry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dbinfra.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	log := zap.NewNop()
	reg := prometheus.NewRegistry()
	tx := gormstore.NewGormUoW(db)
	farmers := gormstore.NewFarmerRepository(db)
	users := gormstore.NewUserRepository(db)
	authUC := auth.NewUsecase(users, token.NewIssuer("test-secret", time.Hour), log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewErrorHandler(log)
	Register(e, Routes{
		Health:        NewHandler(),
		Farmers:       NewFarmerHandler(farmer.NewUsecase(farmers, tx, log)),
		Loans:         NewLoanHandler(loan.NewUsecase(gormstore.NewLoanRepository(db), tx, loan.NewMetrics(reg), log)),
		Products:      NewProductHandler(product.NewUsecase(gormstore.NewProductRepository(db), log)),
		Auth:          NewAuthHandler(authUC),
		Authenticator: authUC,
		Gatherer:      reg,
	})
	return &testServer{e: e, db: db, reg: reg}
}

type result struct {
	Code int
	Body envelope
	Raw  json.RawMessage
	Data json.RawMessage
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers ...string) result {
	t.Helper()
	var rdr *bytes.Reader
	switch b := body.(type) {
	case nil:
		rdr = bytes.NewReader(nil)
	case string:
		rdr = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	out := result{Code: rec.Code, Raw: rec.Body.Bytes()}
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		var wire struct {
			envelope
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &wire); err != nil {
			t.Fatalf("decode %s %s: %v; raw=%s", method, path, err, rec.Body.String())
		}
		out.Body = wire.envelope
		out.Data = wire.Data
	}
	return out
}

// decode unmarshals the data member of r into v.
func (r result) decode(t *testing.T, v any) {
	t.Helper()
	if err := json.Unmarshal(r.Data, v); err != nil {
		t.Fatalf("decode data: %v; raw=%s", err, r.Raw)
	}
}

func expectStatus(t *testing.T, r result, code int) {
	t.Helper()
	if r.Code != code {
		t.Fatalf("expected status %d, got %d; body=%s", code, r.Code, r.Raw)
	}
}

func containsFieldMsg(fe []FieldError, field, sub string) bool {
	for _, e := range fe {
		if e.Field == field && strings.Contains(e.Message, sub) {
			return true
		}
	}
	return false
}

func farmerBody(email, phone string) map[string]any {
	return map[string]any{
		"name":        "Ramesh Kumar",
		"email":       email,
		"phone":       phone,
		"address":     map[string]any{"village": "Rampur", "district": "Nashik", "state": "Maharashtra", "pincode": "422001"},
		"landSize":    4,
		"cropType":    "Wheat",
		"creditScore": 720,
	}
}

func productBody() map[string]any {
	return map[string]any{
		"productName":     "Basmati Rice",
		"category":        "Grains",
		"quantity":        500,
		"unit":            "kg",
		"price":           85,
		"location":        "Karnal Mandi",
		"district":        "Karnal",
		"state":           "Haryana",
		"pincode":         "132001",
		"contactName":     "Suresh",
		"contactPhone":    "9876500000",
		"deliveryOptions": []string{"farm-pickup", "nationwide"},
	}
}
