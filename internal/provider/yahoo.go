package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	yahooBaseURL = "https://query1.finance.yahoo.com"
	yahooUA      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"

	chartRange    = "1d"
	chartInterval = "5m"
)

// ErrSymbolNotFound is returned when an upstream answers without data for the ticker.
var ErrSymbolNotFound = errors.New("symbol not found in response")

// yahooQuoteResponse is the v7 quote payload.
type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string    `json:"symbol"`
			RegularMarketPrice         flexFloat `json:"regularMarketPrice"`
			RegularMarketChangePercent flexFloat `json:"regularMarketChangePercent"`
			LongName                   string    `json:"longName"`
			ShortName                  string    `json:"shortName"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"quoteResponse"`
}

// yahooChartResponse is the v8 chart payload.
type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string    `json:"symbol"`
				RegularMarketPrice flexFloat `json:"regularMarketPrice"`
				PreviousClose      flexFloat `json:"previousClose"`
				ChartPreviousClose flexFloat `json:"chartPreviousClose"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Close []flexFloat `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"chart"`
}

// yahooSummaryResponse is the v10 quoteSummary payload for the profile modules.
type yahooSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile struct {
				LongBusinessSummary string `json:"longBusinessSummary"`
			} `json:"assetProfile"`
			SummaryProfile struct {
				LongBusinessSummary string `json:"longBusinessSummary"`
			} `json:"summaryProfile"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"quoteSummary"`
}

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *yahooError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// YahooProvider fetches quotes, intraday charts and company profiles from
// Yahoo Finance.
type YahooProvider struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
}

// NewYahooProvider creates a new Yahoo Finance provider. An empty baseURL
// selects the public endpoint.
func NewYahooProvider(httpClient *http.Client, baseURL string) *YahooProvider {
	if baseURL == "" {
		baseURL = yahooBaseURL
	}
	return &YahooProvider{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// Name returns the provider's display name.
func (p *YahooProvider) Name() string { return "Yahoo Finance" }

// FetchQuote fetches the latest price, percent change and company name.
func (p *YahooProvider) FetchQuote(ctx context.Context, ticker string) (*Quote, error) {
	var body yahooQuoteResponse
	if err := p.getJSON(ctx, p.baseURL+"/v7/finance/quote?symbols="+url.QueryEscape(ticker), &body); err != nil {
		return nil, fmt.Errorf("quote %s: %w", ticker, err)
	}
	if body.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("quote %s: %w", ticker, body.QuoteResponse.Error)
	}
	for _, r := range body.QuoteResponse.Result {
		if strings.EqualFold(r.Symbol, ticker) {
			name := strings.TrimSpace(r.LongName)
			if name == "" {
				name = strings.TrimSpace(r.ShortName)
			}
			return &Quote{
				Price:     r.RegularMarketPrice.ptr(),
				ChangePct: r.RegularMarketChangePercent.ptr(),
				Name:      name,
			}, nil
		}
	}
	return nil, fmt.Errorf("quote %s: %w", ticker, ErrSymbolNotFound)
}

// FetchChart fetches the one-day, five-minute close series together with the
// chart's price and previous close.
func (p *YahooProvider) FetchChart(ctx context.Context, ticker string) (*Chart, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s", p.baseURL, url.PathEscape(ticker), chartRange, chartInterval)

	var body yahooChartResponse
	if err := p.getJSON(ctx, u, &body); err != nil {
		return nil, fmt.Errorf("chart %s: %w", ticker, err)
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("chart %s: %w", ticker, body.Chart.Error)
	}
	if len(body.Chart.Result) == 0 {
		return nil, fmt.Errorf("chart %s: %w", ticker, ErrSymbolNotFound)
	}

	r := body.Chart.Result[0]
	prev := r.Meta.PreviousClose
	if !prev.valid {
		prev = r.Meta.ChartPreviousClose
	}

	closes := []float64{}
	if len(r.Indicators.Quote) > 0 {
		for _, c := range r.Indicators.Quote[0].Close {
			if c.valid {
				closes = append(closes, c.value)
			}
		}
	}

	return &Chart{
		Price:         r.Meta.RegularMarketPrice.ptr(),
		PreviousClose: prev.ptr(),
		Closes:        closes,
	}, nil
}

// FetchProfile fetches the long business summary, preferring the asset
// profile module over the summary profile.
func (p *YahooProvider) FetchProfile(ctx context.Context, ticker string) (*Profile, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=assetProfile,summaryProfile", p.baseURL, url.PathEscape(ticker))

	var body yahooSummaryResponse
	if err := p.getJSON(ctx, u, &body); err != nil {
		return nil, fmt.Errorf("profile %s: %w", ticker, err)
	}
	if body.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("profile %s: %w", ticker, body.QuoteSummary.Error)
	}
	if len(body.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("profile %s: %w", ticker, ErrSymbolNotFound)
	}

	r := body.QuoteSummary.Result[0]
	summary := strings.TrimSpace(r.AssetProfile.LongBusinessSummary)
	if summary == "" {
		summary = strings.TrimSpace(r.SummaryProfile.LongBusinessSummary)
	}
	return &Profile{Summary: summary}, nil
}

// getJSON performs a GET and decodes a 200 response into out.
func (p *YahooProvider) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", yahooUA)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
