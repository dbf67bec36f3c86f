package models

// AIInsight is the buy/sell rationale for a ticker. BuyProbability and
// SellProbability always sum to exactly 100 with one decimal of precision.
type AIInsight struct {
	CompanyDescription string  `json:"companyDescription"`
	Buy                string  `json:"buy"`
	BuyProbability     float64 `json:"buyProbability" validate:"gte=0,lte=100"`
	Sell               string  `json:"sell"`
	SellProbability    float64 `json:"sellProbability" validate:"gte=0,lte=100"`
}

// RationaleRequest is what the client sends to ask for an insight. Nil
// numbers mean the value is not known yet.
type RationaleRequest struct {
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price"`
	ChangePct *float64 `json:"changePct"`
}
