package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantive/gauge/internal/core"
	"github.com/quantive/gauge/internal/marketdata"
)

func TestClient_ImplementsProvider(t *testing.T) {
	var _ marketdata.Provider = (*Client)(nil)
}

func TestClient_Name(t *testing.T) {
	c := New()
	assert.Equal(t, "yahoo", c.Name())
}

const chartBody = `{
  "chart": {
    "result": [{
      "timestamp": [1700000000, 1700086400, 1700172800, 1700259200],
      "indicators": {
        "quote": [{"close": [100.5, null, 101.25, 102.0]}]
      }
    }],
    "error": null
  }
}`

const summaryBody = `{
  "quoteSummary": {
    "result": [{
      "price": {
        "shortName": "Test Corp",
        "currency": "USD",
        "regularMarketPrice": {"raw": 102.0},
        "marketCap": {"raw": 5000000000}
      },
      "summaryDetail": {
        "trailingPE": {"raw": 24.5},
        "beta": {"raw": 1.1},
        "volume": {"raw": 1500000},
        "averageVolume": {"raw": 1000000}
      },
      "financialData": {
        "currentPrice": {"raw": 102.0},
        "recommendationMean": {"raw": 2.1},
        "recommendationKey": "buy",
        "numberOfAnalystOpinions": {"raw": 12},
        "targetMedianPrice": {"raw": 120.0},
        "debtToEquity": {"raw": 45.2},
        "currentRatio": {"raw": 1.8},
        "operatingCashflow": {"raw": 900000000},
        "freeCashflow": {"raw": 700000000}
      },
      "defaultKeyStatistics": {
        "trailingEps": {"raw": 4.16}
      },
      "assetProfile": {
        "sector": "Technology",
        "industry": "Software",
        "fullTimeEmployees": 25000,
        "auditRisk": 0.05
      },
      "incomeStatementHistory": {
        "incomeStatementHistory": [
          {"totalRevenue": {"raw": 1000}, "netIncome": {"raw": 120}, "ebitda": {"raw": 200}},
          {"totalRevenue": {"raw": 900}, "netIncome": {"raw": 100}}
        ]
      },
      "balanceSheetHistory": {
        "balanceSheetStatements": [
          {"totalStockholderEquity": {"raw": 800}, "totalAssets": {"raw": 2000}, "longTermDebt": {"raw": 400}}
        ]
      },
      "cashflowStatementHistory": {
        "cashflowStatements": [
          {"totalCashFromOperatingActivities": {"raw": 150}, "capitalExpenditures": {"raw": -30}}
        ]
      }
    }],
    "error": null
  }
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithBaseURLs(srv.URL, srv.URL)
}

func TestPriceHistory(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "TEST")
		w.Write([]byte(chartBody))
	})

	prices, err := c.PriceHistory(context.Background(), "TEST", 365)
	require.NoError(t, err)

	// Null bars are dropped and the order flipped to newest first.
	assert.Equal(t, core.PriceSeries{102.0, 101.25, 100.5}, prices)
}

func TestPriceHistory_InvalidSymbol(t *testing.T) {
	c := New()

	_, err := c.PriceHistory(context.Background(), "not a symbol!", 365)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSymbolNotFound)
}

func TestPriceHistory_NotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.PriceHistory(context.Background(), "TEST", 365)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNoData)
}

func TestPriceHistory_ServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.PriceHistory(context.Background(), "TEST", 365)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrProviderFailed)
}

func TestSnapshot(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(summaryBody))
	})

	snap, err := c.Snapshot(context.Background(), "TEST")
	require.NoError(t, err)

	assert.Equal(t, "Test Corp", snap.Name)
	assert.Equal(t, "Technology", snap.Sector)
	require.NotNil(t, snap.CurrentPrice)
	assert.Equal(t, 102.0, *snap.CurrentPrice)
	require.NotNil(t, snap.PE)
	assert.Equal(t, 24.5, *snap.PE)
	require.NotNil(t, snap.RecommendationMean)
	assert.Equal(t, 2.1, *snap.RecommendationMean)
	assert.Equal(t, "buy", snap.RecommendationKey)
	require.NotNil(t, snap.Employees)
	assert.Equal(t, 25000.0, *snap.Employees)
	require.NotNil(t, snap.AuditRisk)
	assert.Equal(t, 0.05, *snap.AuditRisk)

	// Fields absent from the payload stay nil.
	assert.Nil(t, snap.TargetHighPrice)
	assert.Nil(t, snap.QuickRatio)
	assert.Nil(t, snap.OverallRisk)
}

func TestSnapshot_EmptyResult(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary": {"result": [], "error": null}}`))
	})

	_, err := c.Snapshot(context.Background(), "TEST")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNoData)
}

func TestStatements(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(summaryBody))
	})

	stmts, err := c.Statements(context.Background(), "TEST")
	require.NoError(t, err)

	assert.Equal(t, []float64{1000, 900}, stmts.Income.Series("Total Revenue"))
	assert.Equal(t, []float64{120, 100}, stmts.Income.Series("Net Income"))
	// EBITDA missing from the second period: only one value recorded.
	assert.Equal(t, []float64{200}, stmts.Income.Series("Ebitda"))

	assert.Equal(t, []float64{800}, stmts.Balance.Series("Total Stockholder Equity"))
	assert.Equal(t, []float64{150}, stmts.CashFlow.Series("Total Cash From Operating Activities"))
	assert.Equal(t, []float64{-30}, stmts.CashFlow.Series("Capital Expenditures"))

	// Line items the payload never carried are absent, not zero.
	assert.Nil(t, stmts.Balance.Series("Total Debt"))
}

func TestValidateSymbol(t *testing.T) {
	valid := []string{"AAPL", "MSFT", "RELIANCE.NS", "0700.HK", "A"}
	for _, s := range valid {
		assert.NoError(t, validateSymbol(s), s)
	}

	invalid := []string{"", "has space", "toolongsymbolxxxxxxxxx", "bad;chars", "A..B"}
	for _, s := range invalid {
		assert.Error(t, validateSymbol(s), s)
	}
}
