package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"stockswipe/internal/models"
)

func setupMarketRouter(handler *MarketHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/yahoo", handler.GetSnapshot)
	return r
}

func TestMarketHandler_GetSnapshot(t *testing.T) {
	t.Run("returns_200_with_snapshot", func(t *testing.T) {
		var gotTicker string
		svc := &mockMarketDataService{fetchSnapshotFn: func(ticker string) models.MarketSnapshot {
			gotTicker = ticker
			return models.MarketSnapshot{
				Price:     floatPtr(150),
				ChangePct: floatPtr(3.45),
				Spark:     []float64{145, 150},
				YahooDesc: "Designs phones.",
			}
		}}
		r := setupMarketRouter(NewMarketHandler(svc))

		rec := doRequest(r, http.MethodGet, "/api/yahoo?symbol=%20aapl%20", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotTicker != "AAPL" {
			t.Errorf("expected trimmed upper-case ticker, got %q", gotTicker)
		}
		result := parseJSON(t, rec)
		if result["price"] != 150.0 || result["changePct"] != 3.45 {
			t.Errorf("unexpected numbers: %v", result)
		}
		if result["yahooDesc"] != "Designs phones." {
			t.Errorf("unexpected description %v", result["yahooDesc"])
		}
		if _, ok := result["error"]; ok {
			t.Errorf("expected no error field, got %v", result["error"])
		}
	})

	t.Run("returns_200_when_all_sources_fail", func(t *testing.T) {
		svc := &mockMarketDataService{fetchSnapshotFn: func(string) models.MarketSnapshot {
			snap := models.EmptySnapshot()
			snap.Error = "no upstream data available"
			return snap
		}}
		r := setupMarketRouter(NewMarketHandler(svc))

		rec := doRequest(r, http.MethodGet, "/api/yahoo?symbol=ZZZZ", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["price"] != nil || result["changePct"] != nil {
			t.Errorf("expected null numbers, got %v", result)
		}
		spark, ok := result["spark"].([]interface{})
		if !ok || len(spark) != 0 {
			t.Errorf("expected empty spark array, got %v", result["spark"])
		}
		if result["error"] != "no upstream data available" {
			t.Errorf("expected diagnostic, got %v", result["error"])
		}
		if _, ok := result["yahooDesc"]; ok {
			t.Error("expected yahooDesc to be omitted")
		}
	})

	t.Run("returns_400", func(t *testing.T) {
		r := setupMarketRouter(NewMarketHandler(&mockMarketDataService{}))

		for _, path := range []string{"/api/yahoo", "/api/yahoo?symbol=", "/api/yahoo?symbol=%20%20", "/api/yahoo?symbol=A%2FB"} {
			rec := doRequest(r, http.MethodGet, path, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", path, rec.Code)
				continue
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		}
	})
}
