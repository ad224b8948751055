// Package yahoo implements the market data provider against the Yahoo
// Finance chart and quoteSummary endpoints.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/quantive/gauge/internal/core"
)

const (
	defaultChartURL   = "https://query1.finance.yahoo.com/v8/finance/chart"
	defaultSummaryURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary"

	snapshotModules  = "price,summaryDetail,financialData,defaultKeyStatistics,assetProfile"
	statementModules = "incomeStatementHistory,balanceSheetHistory,cashflowStatementHistory"
)

// validSymbol matches stock symbols like AAPL, MSFT, RELIANCE.NS, 0700.HK
var validSymbol = regexp.MustCompile(`^[A-Za-z0-9]{1,10}(\.[A-Za-z]{1,4})?$`)

// validateSymbol checks if a symbol has valid format
func validateSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("symbol cannot be empty")
	}
	if len(symbol) > 20 {
		return fmt.Errorf("symbol too long: %s", symbol)
	}
	if !validSymbol.MatchString(symbol) {
		return fmt.Errorf("invalid symbol format: %s", symbol)
	}
	return nil
}

// Client implements marketdata.Provider against Yahoo Finance.
type Client struct {
	client     *http.Client
	chartURL   string
	summaryURL string
}

// New creates a new Yahoo client.
func New() *Client {
	return &Client{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		chartURL:   defaultChartURL,
		summaryURL: defaultSummaryURL,
	}
}

// NewWithBaseURLs creates a client against alternate endpoints, used by
// tests to point at a local server.
func NewWithBaseURLs(chartURL, summaryURL string) *Client {
	c := New()
	c.chartURL = chartURL
	c.summaryURL = summaryURL
	return c
}

func (c *Client) Name() string { return "yahoo" }

// PriceHistory fetches daily closes covering lookbackDays, most recent
// first. Missing bars are skipped rather than zero-filled.
func (c *Client) PriceHistory(ctx context.Context, symbol string, lookbackDays int) (core.PriceSeries, error) {
	if err := validateSymbol(symbol); err != nil {
		return nil, core.WrapError(core.ErrSymbolNotFound, err)
	}
	if lookbackDays <= 0 {
		lookbackDays = 365
	}

	end := time.Now()
	start := end.AddDate(0, 0, -lookbackDays)
	url := fmt.Sprintf("%s/%s?interval=1d&period1=%d&period2=%d",
		c.chartURL, symbol, start.Unix(), end.Unix())

	var result chartResponse
	if err := c.getJSON(ctx, url, &result); err != nil {
		return nil, err
	}

	if result.Chart.Error != nil {
		return nil, core.WrapError(core.ErrNoData,
			fmt.Errorf("yahoo error: %s", result.Chart.Error.Description))
	}
	if len(result.Chart.Result) == 0 || len(result.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, core.WrapError(core.ErrNoData, fmt.Errorf("no data for symbol: %s", symbol))
	}

	closes := result.Chart.Result[0].Indicators.Quote[0].Close
	chron := make([]float64, 0, len(closes))
	for _, v := range closes {
		if v == nil {
			continue // skip missing bars
		}
		chron = append(chron, *v)
	}
	if len(chron) == 0 {
		return nil, core.WrapError(core.ErrNoData, fmt.Errorf("no closes for symbol: %s", symbol))
	}

	// Chart data arrives oldest first; the pipeline wants newest first.
	series := make(core.PriceSeries, len(chron))
	for i, v := range chron {
		series[len(chron)-1-i] = v
	}
	return series, nil
}

// Statements fetches the three financial statements.
func (c *Client) Statements(ctx context.Context, symbol string) (*core.Statements, error) {
	if err := validateSymbol(symbol); err != nil {
		return nil, core.WrapError(core.ErrSymbolNotFound, err)
	}
	url := fmt.Sprintf("%s/%s?modules=%s", c.summaryURL, symbol, statementModules)

	var result summaryResponse
	if err := c.getJSON(ctx, url, &result); err != nil {
		return nil, err
	}
	r, err := result.first(symbol)
	if err != nil {
		return nil, err
	}

	stmts := &core.Statements{
		Income:   core.StatementSeries{},
		Balance:  core.StatementSeries{},
		CashFlow: core.StatementSeries{},
	}

	for _, period := range r.IncomeStatementHistory.Statements {
		appendRow(stmts.Income, "Total Revenue", period.TotalRevenue)
		appendRow(stmts.Income, "Net Income", period.NetIncome)
		appendRow(stmts.Income, "Ebitda", period.EBITDA)
	}
	for _, period := range r.BalanceSheetHistory.Statements {
		appendRow(stmts.Balance, "Total Stockholder Equity", period.TotalStockholderEquity)
		appendRow(stmts.Balance, "Total Assets", period.TotalAssets)
		appendRow(stmts.Balance, "Total Liab", period.TotalLiab)
		appendRow(stmts.Balance, "Short Long Term Debt", period.ShortLongTermDebt)
		appendRow(stmts.Balance, "Long Term Debt", period.LongTermDebt)
	}
	for _, period := range r.CashflowStatementHistory.Statements {
		appendRow(stmts.CashFlow, "Total Cash From Operating Activities", period.TotalCashFromOperatingActivities)
		appendRow(stmts.CashFlow, "Capital Expenditures", period.CapitalExpenditures)
	}

	return stmts, nil
}

// Snapshot fetches the company snapshot.
func (c *Client) Snapshot(ctx context.Context, symbol string) (*core.Snapshot, error) {
	if err := validateSymbol(symbol); err != nil {
		return nil, core.WrapError(core.ErrSymbolNotFound, err)
	}
	url := fmt.Sprintf("%s/%s?modules=%s", c.summaryURL, symbol, snapshotModules)

	var result summaryResponse
	if err := c.getJSON(ctx, url, &result); err != nil {
		return nil, err
	}
	r, err := result.first(symbol)
	if err != nil {
		return nil, err
	}

	snap := &core.Snapshot{
		Symbol:   symbol,
		Name:     r.Price.ShortName,
		Currency: r.Price.Currency,
		Sector:   r.AssetProfile.Sector,
		Industry: r.AssetProfile.Industry,

		CurrentPrice: firstRaw(r.Price.RegularMarketPrice, r.FinancialData.CurrentPrice),
		MarketCap:    firstRaw(r.Price.MarketCap, r.DefaultKeyStatistics.EnterpriseValue),
		PE:           r.SummaryDetail.TrailingPE.value(),
		EPS:          r.DefaultKeyStatistics.TrailingEps.value(),
		Beta:         r.SummaryDetail.Beta.value(),

		Volume:        r.SummaryDetail.Volume.value(),
		AverageVolume: r.SummaryDetail.AverageVolume.value(),
		Employees:     r.AssetProfile.FullTimeEmployees,

		RecommendationMean: r.FinancialData.RecommendationMean.value(),
		RecommendationKey:  r.FinancialData.RecommendationKey,
		AnalystCount:       r.FinancialData.NumberOfAnalystOpinions.value(),
		TargetHighPrice:    r.FinancialData.TargetHighPrice.value(),
		TargetLowPrice:     r.FinancialData.TargetLowPrice.value(),
		TargetMedianPrice:  r.FinancialData.TargetMedianPrice.value(),

		DebtToEquity: r.FinancialData.DebtToEquity.value(),
		CurrentRatio: r.FinancialData.CurrentRatio.value(),
		QuickRatio:   r.FinancialData.QuickRatio.value(),

		OperatingCashFlow: r.FinancialData.OperatingCashflow.value(),
		FreeCashFlow:      r.FinancialData.FreeCashflow.value(),

		AuditRisk:             r.AssetProfile.AuditRisk,
		BoardRisk:             r.AssetProfile.BoardRisk,
		CompensationRisk:      r.AssetProfile.CompensationRisk,
		ShareholderRightsRisk: r.AssetProfile.ShareHolderRightsRisk,
		OverallRisk:           r.AssetProfile.OverallRisk,
	}

	if snap.CurrentPrice == nil {
		return nil, core.WrapError(core.ErrNoData, fmt.Errorf("no price for symbol: %s", symbol))
	}
	return snap, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return core.WrapError(core.ErrProviderFailed, err)
	}
	req.Header.Set("User-Agent", "gauge/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return core.WrapError(core.ErrProviderFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return core.WrapError(core.ErrNoData, fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return core.WrapError(core.ErrProviderFailed, fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return core.WrapError(core.ErrProviderFailed, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

// appendRow appends a period value to a statement row, skipping nil
// values so absent line items stay absent.
func appendRow(series core.StatementSeries, name string, v rawValue) {
	if v.Raw == nil {
		return
	}
	series[name] = append(series[name], *v.Raw)
}

func firstRaw(values ...rawValue) *float64 {
	for _, v := range values {
		if v.Raw != nil {
			return v.value()
		}
	}
	return nil
}

// Yahoo API response types.

type rawValue struct {
	Raw *float64 `json:"raw"`
}

func (r rawValue) value() *float64 {
	if r.Raw == nil {
		return nil
	}
	v := *r.Raw
	return &v
}

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Timestamp  []int      `json:"timestamp"`
	Indicators indicators `json:"indicators"`
}

type indicators struct {
	Quote []quoteIndicator `json:"quote"`
}

type quoteIndicator struct {
	Close []*float64 `json:"close"`
}

type summaryResponse struct {
	QuoteSummary struct {
		Result []summaryResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (s summaryResponse) first(symbol string) (*summaryResult, error) {
	if s.QuoteSummary.Error != nil {
		return nil, core.WrapError(core.ErrNoData,
			fmt.Errorf("yahoo error: %s", s.QuoteSummary.Error.Description))
	}
	if len(s.QuoteSummary.Result) == 0 {
		return nil, core.WrapError(core.ErrNoData, fmt.Errorf("no data for symbol: %s", symbol))
	}
	return &s.QuoteSummary.Result[0], nil
}

type summaryResult struct {
	Price struct {
		ShortName          string   `json:"shortName"`
		Currency           string   `json:"currency"`
		RegularMarketPrice rawValue `json:"regularMarketPrice"`
		MarketCap          rawValue `json:"marketCap"`
	} `json:"price"`

	SummaryDetail struct {
		TrailingPE    rawValue `json:"trailingPE"`
		Beta          rawValue `json:"beta"`
		Volume        rawValue `json:"volume"`
		AverageVolume rawValue `json:"averageVolume"`
	} `json:"summaryDetail"`

	FinancialData struct {
		CurrentPrice            rawValue `json:"currentPrice"`
		RecommendationMean      rawValue `json:"recommendationMean"`
		RecommendationKey       string   `json:"recommendationKey"`
		NumberOfAnalystOpinions rawValue `json:"numberOfAnalystOpinions"`
		TargetHighPrice         rawValue `json:"targetHighPrice"`
		TargetLowPrice          rawValue `json:"targetLowPrice"`
		TargetMedianPrice       rawValue `json:"targetMedianPrice"`
		DebtToEquity            rawValue `json:"debtToEquity"`
		CurrentRatio            rawValue `json:"currentRatio"`
		QuickRatio              rawValue `json:"quickRatio"`
		OperatingCashflow       rawValue `json:"operatingCashflow"`
		FreeCashflow            rawValue `json:"freeCashflow"`
	} `json:"financialData"`

	DefaultKeyStatistics struct {
		TrailingEps     rawValue `json:"trailingEps"`
		EnterpriseValue rawValue `json:"enterpriseValue"`
	} `json:"defaultKeyStatistics"`

	AssetProfile struct {
		Sector                string   `json:"sector"`
		Industry              string   `json:"industry"`
		FullTimeEmployees     *float64 `json:"fullTimeEmployees"`
		AuditRisk             *float64 `json:"auditRisk"`
		BoardRisk             *float64 `json:"boardRisk"`
		CompensationRisk      *float64 `json:"compensationRisk"`
		ShareHolderRightsRisk *float64 `json:"shareHolderRightsRisk"`
		OverallRisk           *float64 `json:"overallRisk"`
	} `json:"assetProfile"`

	IncomeStatementHistory struct {
		Statements []struct {
			TotalRevenue rawValue `json:"totalRevenue"`
			NetIncome    rawValue `json:"netIncome"`
			EBITDA       rawValue `json:"ebitda"`
		} `json:"incomeStatementHistory"`
	} `json:"incomeStatementHistory"`

	BalanceSheetHistory struct {
		Statements []struct {
			TotalStockholderEquity rawValue `json:"totalStockholderEquity"`
			TotalAssets            rawValue `json:"totalAssets"`
			TotalLiab              rawValue `json:"totalLiab"`
			ShortLongTermDebt      rawValue `json:"shortLongTermDebt"`
			LongTermDebt           rawValue `json:"longTermDebt"`
		} `json:"balanceSheetStatements"`
	} `json:"balanceSheetHistory"`

	CashflowStatementHistory struct {
		Statements []struct {
			TotalCashFromOperatingActivities rawValue `json:"totalCashFromOperatingActivities"`
			CapitalExpenditures              rawValue `json:"capitalExpenditures"`
		} `json:"cashflowStatements"`
	} `json:"cashflowStatementHistory"`
}
