package core

import "time"

// PriceSeries is an ordered sequence of closing prices with index 0 as
// the most recent close and higher indices further in the past.
type PriceSeries []float64

// Len returns the number of prices in the series.
func (p PriceSeries) Len() int { return len(p) }

// Latest returns the most recent close, or nil for an empty series.
func (p PriceSeries) Latest() *float64 {
	if len(p) == 0 {
		return nil
	}
	v := p[0]
	return &v
}

// Chronological returns a copy of the series in oldest-to-newest order,
// the orientation the indicator math operates on.
func (p PriceSeries) Chronological() []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// StatementSeries maps a statement line item to its per-period values,
// period 0 being the latest reported period. Line items the provider
// could not supply are absent keys, never zero rows.
type StatementSeries map[string][]float64

// Series returns the values for a line item, or nil if absent.
func (s StatementSeries) Series(name string) []float64 {
	if s == nil {
		return nil
	}
	return s[name]
}

// Latest returns the first value found scanning the candidate row names
// in order, taking the most recent period of the first populated row.
func (s StatementSeries) Latest(names ...string) *float64 {
	for _, name := range names {
		if vals := s.Series(name); len(vals) > 0 {
			v := vals[0]
			return &v
		}
	}
	return nil
}

// Statements bundles the three financial statements for a symbol.
type Statements struct {
	Income   StatementSeries
	Balance  StatementSeries
	CashFlow StatementSeries
}

// Snapshot is a point-in-time view of a company. Every numeric field is
// optional; nil means the provider had no value, which is distinct from
// zero everywhere in the scoring pipeline.
type Snapshot struct {
	Symbol   string
	Name     string
	Sector   string
	Industry string
	Currency string

	CurrentPrice *float64
	MarketCap    *float64
	PE           *float64
	EPS          *float64
	Beta         *float64

	Volume        *float64
	AverageVolume *float64
	Employees     *float64

	// Analyst coverage
	RecommendationMean *float64
	RecommendationKey  string
	AnalystCount       *float64
	TargetHighPrice    *float64
	TargetLowPrice     *float64
	TargetMedianPrice  *float64

	// Balance-sheet context
	DebtToEquity *float64
	CurrentRatio *float64
	QuickRatio   *float64

	// Cash flow context
	OperatingCashFlow *float64
	FreeCashFlow      *float64

	// Governance risk (0-1 scale)
	AuditRisk             *float64
	BoardRisk             *float64
	CompensationRisk      *float64
	ShareholderRightsRisk *float64
	OverallRisk           *float64
}

// SubScore is one scored category inside a composite rating.
type SubScore struct {
	Name    string   `json:"name"`
	Value   float64  `json:"value"`
	Budget  float64  `json:"budget"`
	Reasons []string `json:"reasons"`
}

// TechnicalIndicators holds the indicator pass over a price series.
// Wire names match the upstream analyzer contract.
type TechnicalIndicators struct {
	Symbol           string   `json:"symbol"`
	RSI              *float64 `json:"rsi"`
	MACDLine         *float64 `json:"macd_line"`
	MACDSignal       *float64 `json:"macd_signal"`
	Momentum3M       *float64 `json:"price_3m_momentum"`
	Momentum12M      *float64 `json:"price_12m_momentum"`
	RelativeStrength *float64 `json:"relative_strength"`
	CurrentPrice     *float64 `json:"current_price"`
	PriceChange1D    *float64 `json:"price_change_1d"`
	Score            int      `json:"technical_score"`
	Reasons          []string `json:"technical_reasons"`
}

// FundamentalSummary holds the extracted ratios and the raw heuristic
// fundamental score (0-100, before composite rescaling).
type FundamentalSummary struct {
	Symbol            string   `json:"symbol"`
	CurrentPrice      *float64 `json:"current_price"`
	MarketCap         *float64 `json:"market_cap"`
	PE                *float64 `json:"pe"`
	DebtToEquity      *float64 `json:"debt_to_equity"`
	NetMargin         *float64 `json:"net_margin"`
	EBITDAMargin      *float64 `json:"ebitda_margin"`
	ROE               *float64 `json:"roe"`
	RevenueCAGR       *float64 `json:"revenue_cagr"`
	OperatingCashFlow *float64 `json:"operating_cash_flow"`
	FreeCashFlow      *float64 `json:"free_cash_flow"`
	TotalAssets       *float64 `json:"total_assets"`
	TotalLiabilities  *float64 `json:"total_liabilities"`
	Score             int      `json:"score"`
	Reasons           []string `json:"score_reasons"`
}

// EarningsQuality holds the earnings quality metrics.
type EarningsQuality struct {
	Symbol          string    `json:"symbol"`
	AccrualsQuality *float64  `json:"accruals_quality"`
	Persistence     *float64  `json:"earnings_persistence"`
	Predictability  *float64  `json:"earnings_predictability"`
	CashFlowQuality *float64  `json:"cash_flow_quality"`
	NetIncomeSeries []float64 `json:"net_income_series"`
	OCFSeries       []float64 `json:"ocf_series"`
	RevenueSeries   []float64 `json:"revenue_series"`
}

// MarketSentiment holds the analyst-driven sentiment score. The score
// is an unbounded signed integer on the banded point scale.
type MarketSentiment struct {
	Symbol             string   `json:"symbol"`
	RecommendationMean *float64 `json:"analyst_recommendation"`
	RecommendationKey  string   `json:"analyst_rating"`
	AnalystCount       *float64 `json:"number_of_analysts"`
	TargetHighPrice    *float64 `json:"target_high_price"`
	TargetLowPrice     *float64 `json:"target_low_price"`
	TargetMedianPrice  *float64 `json:"target_median_price"`
	CurrentPrice       *float64 `json:"current_price"`
	UpsidePotential    *float64 `json:"upside_potential"`
	VolumeRatio        *float64 `json:"volume_ratio"`
	Score              int      `json:"sentiment_score"`
	Reasons            []string `json:"sentiment_reasons"`
}

// ESGRisk holds the ESG heuristic and the volatility/leverage/liquidity
// risk assessment as two independent signed scores.
type ESGRisk struct {
	Symbol                string   `json:"symbol"`
	ESGScore              int      `json:"esg_score"`
	ESGReasons            []string `json:"esg_reasons"`
	RiskScore             int      `json:"risk_score"`
	RiskReasons           []string `json:"risk_reasons"`
	Beta                  *float64 `json:"beta"`
	DebtToEquity          *float64 `json:"debt_to_equity"`
	CurrentRatio          *float64 `json:"current_ratio"`
	QuickRatio            *float64 `json:"quick_ratio"`
	Sector                string   `json:"sector"`
	Industry              string   `json:"industry"`
	AuditRisk             *float64 `json:"audit_risk"`
	BoardRisk             *float64 `json:"board_risk"`
	CompensationRisk      *float64 `json:"compensation_risk"`
	ShareholderRightsRisk *float64 `json:"shareholder_rights_risk"`
	OverallRisk           *float64 `json:"overall_risk"`
}

// DetailedAnalysis nests the five sub-analyses under a composite score.
type DetailedAnalysis struct {
	Fundamentals    *FundamentalSummary  `json:"fundamentals"`
	EarningsQuality *EarningsQuality     `json:"earnings_quality"`
	Technical       *TechnicalIndicators `json:"technical_indicators"`
	Sentiment       *MarketSentiment     `json:"market_sentiment"`
	ESGRisk         *ESGRisk             `json:"esg_risk_factors"`
}

// CompositeScore is the final 0-100 rating across the four categories.
type CompositeScore struct {
	ReportID    string              `json:"report_id"`
	Symbol      string              `json:"symbol"`
	Total       float64             `json:"total_score"`
	Band        string              `json:"band"`
	Assessment  string              `json:"overall_assessment"`
	Categories  map[string]SubScore `json:"score_breakdown"`
	Summary     []string            `json:"analysis_summary"`
	Detailed    DetailedAnalysis    `json:"detailed_analysis"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// IntradayLevels holds the derived short-horizon trade levels.
type IntradayLevels struct {
	Symbol          string               `json:"symbol"`
	CurrentPrice    float64              `json:"current_price"`
	EntryPrice      float64              `json:"entry_price"`
	ExitPrice       float64              `json:"exit_price"`
	StopLoss        float64              `json:"stop_loss"`
	RiskAmount      float64              `json:"risk_amount"`
	RewardAmount    float64              `json:"reward_amount"`
	RiskRewardRatio float64              `json:"risk_reward_ratio"`
	Recommendation  string               `json:"recommendation"`
	Technical       *TechnicalIndicators `json:"technical_indicators,omitempty"`
	Sentiment       *MarketSentiment     `json:"market_sentiment,omitempty"`
	GeneratedAt     time.Time            `json:"generated_at"`
}

// Float returns a pointer to v. Scoring code uses it to mark a derived
// metric as defined.
func Float(v float64) *float64 { return &v }
