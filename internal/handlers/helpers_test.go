package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"stockswipe/internal/models"
	"stockswipe/internal/pagination"
	"stockswipe/internal/services"
	"stockswipe/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- mock services ---

type mockMarketDataService struct {
	fetchSnapshotFn func(ticker string) models.MarketSnapshot
}

var _ services.MarketDataServicer = (*mockMarketDataService)(nil)

func (m *mockMarketDataService) FetchSnapshot(_ context.Context, ticker string) models.MarketSnapshot {
	if m.fetchSnapshotFn != nil {
		return m.fetchSnapshotFn(ticker)
	}
	return models.EmptySnapshot()
}

type mockInsightService struct {
	fetchInsightFn func(req models.RationaleRequest) (*models.AIInsight, error)
	configured     bool
}

var _ services.InsightServicer = (*mockInsightService)(nil)

func (m *mockInsightService) FetchInsight(_ context.Context, req models.RationaleRequest) (*models.AIInsight, error) {
	if m.fetchInsightFn != nil {
		return m.fetchInsightFn(req)
	}
	return &models.AIInsight{BuyProbability: 50, SellProbability: 50}, nil
}

func (m *mockInsightService) Configured() bool { return m.configured }

type mockPicksService struct {
	generatePicksFn func(provider string) (int, error)
	listPicksFn     func(page pagination.PageRequest) (*pagination.PageResponse[models.Pick], error)
	dailyPicksFn    func() ([]models.DailyPick, error)
}

var _ services.PicksServicer = (*mockPicksService)(nil)

func (m *mockPicksService) GeneratePicks(_ context.Context, provider string) (int, error) {
	if m.generatePicksFn != nil {
		return m.generatePicksFn(provider)
	}
	return 0, nil
}

func (m *mockPicksService) ListPicks(page pagination.PageRequest) (*pagination.PageResponse[models.Pick], error) {
	if m.listPicksFn != nil {
		return m.listPicksFn(page)
	}
	resp := pagination.NewPageResponse([]models.Pick{}, 1, pagination.DefaultPageSize, 0)
	return &resp, nil
}

func (m *mockPicksService) DailyPicks(_ context.Context) ([]models.DailyPick, error) {
	if m.dailyPicksFn != nil {
		return m.dailyPicksFn()
	}
	return []models.DailyPick{}, nil
}

// --- helpers ---

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func floatPtr(v float64) *float64 { return &v }
