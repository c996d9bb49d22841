package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const defaultStocksBaseURL = "https://query1.finance.yahoo.com/v8/finance"

// Stocks quotes a fixed list of symbols from the Yahoo Finance chart API,
// one line per symbol.
type Stocks struct {
	baseURL    string
	symbols    []string
	httpClient httpDoer
}

// StocksConfig controls the stocks provider.
type StocksConfig struct {
	BaseURL    string
	Symbols    []string
	HTTPClient *http.Client
}

// NewStocks builds the stock-ticker provider.
func NewStocks(cfg StocksConfig) *Stocks {
	base := cfg.BaseURL
	if base == "" {
		base = defaultStocksBaseURL
	}
	return &Stocks{
		baseURL:    strings.TrimSuffix(base, "/"),
		symbols:    cfg.Symbols,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				PreviousClose      float64 `json:"previousClose"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

func (s *Stocks) Fetch(ctx context.Context) ([]string, error) {
	lines := make([]string, 0, len(s.symbols))
	for _, symbol := range s.symbols {
		line, err := s.quote(ctx, symbol)
		if err != nil {
			// One dead symbol should not sink the whole ticker.
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 && len(s.symbols) > 0 {
		return nil, fmt.Errorf("stocks: no quotes for %d symbols", len(s.symbols))
	}
	return lines, nil
}

func (s *Stocks) quote(ctx context.Context, symbol string) (string, error) {
	url := fmt.Sprintf("%s/chart/%s?interval=1d&range=1d", s.baseURL, symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("stocks: unexpected status %d for %s", resp.StatusCode, symbol)
	}

	var payload chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if len(payload.Chart.Result) == 0 {
		return "", fmt.Errorf("stocks: empty result for %s", symbol)
	}

	meta := payload.Chart.Result[0].Meta
	change := 0.0
	if meta.PreviousClose > 0 {
		change = (meta.RegularMarketPrice - meta.PreviousClose) / meta.PreviousClose * 100
	}
	return fmt.Sprintf("%s %.2f %+.1f%%", strings.ToUpper(symbol), meta.RegularMarketPrice, change), nil
}
