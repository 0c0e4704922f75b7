package fuel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"freight-optimizer/internal/domain"
	"freight-optimizer/internal/platform/obs"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// DataSourceEIA tags prices ingested from the EIA API.
	DataSourceEIA = "EIA"

	eiaPricePath = "/v2/petroleum/pri/gnd/data/"
)

// EIAConfig configures the EIA v2 petroleum price client.
type EIAConfig struct {
	APIKey  string
	BaseURL string
	// Product is the EIA product facet, e.g. EPD2D for on-highway diesel.
	Product string
	// RecordLimit caps how many API records are expanded into prices.
	RecordLimit int
}

// EIAFuelPriceProvider implements FuelPriceProvider using the U.S. Energy
// Information Administration weekly retail price series. Regional prices
// are fanned out to jurisdictions through the PADD table.
//
// The provider is safe for concurrent use.
type EIAFuelPriceProvider struct {
	session        *http.Client
	apiKey         string
	baseURL        string
	product        string
	limit          int
	maxAttempts    int
	initialBackoff time.Duration
}

func NewEIAFuelPriceProvider(cfg EIAConfig) (*EIAFuelPriceProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("EIA api key is empty")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.eia.gov"
	}
	if cfg.Product == "" {
		cfg.Product = "EPD2D"
	}
	if cfg.RecordLimit <= 0 {
		cfg.RecordLimit = 200
	}

	return &EIAFuelPriceProvider{
		session:        &http.Client{Timeout: 30 * time.Second},
		apiKey:         cfg.APIKey,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		product:        cfg.Product,
		limit:          cfg.RecordLimit,
		maxAttempts:    4,
		initialBackoff: 200 * time.Millisecond,
	}, nil
}

type eiaResponse struct {
	Response struct {
		Data []eiaRecord `json:"data"`
	} `json:"response"`
}

type eiaRecord struct {
	Period   string   `json:"period"`
	AreaName string   `json:"area-name"`
	Value    eiaValue `json:"value"`
}

// eiaValue accepts prices encoded either as JSON numbers or numeric strings.
type eiaValue struct {
	v     float64
	valid bool
}

func (e *eiaValue) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*e = eiaValue{}
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse value %q: %w", s, err)
	}
	*e = eiaValue{v: f, valid: true}
	return nil
}

// FetchFuelPrices retrieves the most recent weekly prices and expands each
// regional record to per-jurisdiction observations.
func (p *EIAFuelPriceProvider) FetchFuelPrices(ctx context.Context) (_ []domain.FuelPrice, err error) {
	defer obs.Time(ctx, "eia.FetchFuelPrices")(&err)

	endpoint := p.baseURL + eiaPricePath

	resp, err := p.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := p.newRequest(ctx, http.MethodGet, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("api_key", p.apiKey)
		q.Set("frequency", "weekly")
		q.Set("data[0]", "value")
		q.Set("facets[product][]", p.product)
		q.Set("sort[0][column]", "period")
		q.Set("sort[0][direction]", "desc")
		q.Set("offset", "0")
		q.Set("length", "5000")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch EIA prices: %w", err)
	}
	defer resp.Body.Close()

	var decoded eiaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode EIA response: %w", err)
	}

	records := decoded.Response.Data
	if len(records) > p.limit {
		records = records[:p.limit]
	}

	out := make([]domain.FuelPrice, 0, len(records)*5)
	for i, r := range records {
		date, err := time.Parse(time.DateOnly, r.Period)
		if err != nil {
			return nil, fmt.Errorf("EIA record %d: invalid period %q: %w", i, r.Period, err)
		}
		if !r.Value.valid {
			return nil, fmt.Errorf("EIA record %d: missing value for period %s", i, r.Period)
		}

		region := r.AreaName
		if region == "" {
			region = "US"
		}

		for _, state := range StatesForRegion(region) {
			out = append(out, domain.FuelPrice{
				StateCode:      state,
				Date:           date,
				PricePerGallon: r.Value.v,
				Source:         DataSourceEIA,
			})
		}
	}

	return out, nil
}
