package goldapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Troy ounce in grams; metals APIs quote XAU per ounce.
const gramsPerTroyOunce = 31.1035

// Client pulls the 24k spot price from a goldapi.io-compatible endpoint.
type Client struct {
	http   *resty.Client
	url    string
	apiKey string
}

func NewClient(url, apiKey string) *Client {
	c := resty.New().SetTimeout(10 * time.Second)
	return &Client{http: c, url: url, apiKey: apiKey}
}

type spotResponse struct {
	Price         float64 `json:"price"`
	PriceGram24K  float64 `json:"price_gram_24k"`
	Currency      string  `json:"currency"`
	Metal         string  `json:"metal"`
	ErrorMessage  string  `json:"error"`
	TimestampUnix int64   `json:"timestamp"`
}

// Fetch24K returns the spot price per gram of pure gold. When the API
// supplies only a per-ounce price, it is converted per troy ounce.
func (c *Client) Fetch24K(ctx context.Context) (float64, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-access-token", c.apiKey).
		Get(c.url)
	if err != nil {
		return 0, fmt.Errorf("gold api request: %w", err)
	}
	if resp.StatusCode() != 200 {
		return 0, fmt.Errorf("gold api status %d: %s", resp.StatusCode(), resp.String())
	}

	var body spotResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return 0, fmt.Errorf("gold api response: %w", err)
	}
	if body.ErrorMessage != "" {
		return 0, fmt.Errorf("gold api: %s", body.ErrorMessage)
	}

	perGram := body.PriceGram24K
	if perGram == 0 && body.Price > 0 {
		perGram = body.Price / gramsPerTroyOunce
	}
	if perGram <= 0 {
		return 0, fmt.Errorf("gold api returned no usable price")
	}
	return perGram, nil
}
