package records

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/tmacher/homefit/internal/domain"
)

const contentType = "application/json"

// propertyResponse is the provider's wire format. Fields are pointers so a
// field the provider omits stays unknown instead of becoming zero.
type propertyResponse struct {
	Address          string   `json:"address"`
	Beds             *float64 `json:"beds"`
	Baths            *float64 `json:"baths"`
	Sqft             *int64   `json:"sqft"`
	LotSqft          *int64   `json:"lot_sqft"`
	YearBuilt        *int64   `json:"year_built"`
	Stories          *int64   `json:"stories"`
	Garage           *string  `json:"garage"`
	HOA              *float64 `json:"hoa_monthly"`
	Zoning           *string  `json:"zoning"`
	TaxAssessedValue *float64 `json:"tax_assessed_value"`
	LastSaleDate     *string  `json:"last_sale_date"`
	LastSalePrice    *float64 `json:"last_sale_price"`

	MedianAreaPrice *float64 `json:"median_area_price"`
	PricePerSqft    *float64 `json:"price_per_sqft"`
	AreaMedianPpsf  *float64 `json:"area_median_ppsf"`
	AvgDaysOnMarket *int64   `json:"avg_days_on_market"`
	InventoryLevel  string   `json:"inventory_level"`

	Comparables []comparableResponse `json:"comparables"`
}

type comparableResponse struct {
	Address      string   `json:"address"`
	Price        float64  `json:"price"`
	Sqft         *int64   `json:"sqft"`
	Beds         *float64 `json:"beds"`
	Baths        *float64 `json:"baths"`
	SoldDate     string   `json:"sold_date"`
	PricePerSqft *float64 `json:"price_per_sqft"`
}

func (r *propertyResponse) toSnapshot() *domain.PropertySnapshot {
	return &domain.PropertySnapshot{
		Beds:             r.Beds,
		Baths:            r.Baths,
		Sqft:             r.Sqft,
		LotSqft:          r.LotSqft,
		YearBuilt:        r.YearBuilt,
		Stories:          r.Stories,
		Garage:           r.Garage,
		HOA:              r.HOA,
		Zoning:           r.Zoning,
		TaxAssessedValue: r.TaxAssessedValue,
		LastSaleDate:     r.LastSaleDate,
		LastSalePrice:    r.LastSalePrice,
	}
}

func (r *propertyResponse) toMarketContext() *domain.MarketContext {
	mc := &domain.MarketContext{
		MedianAreaPrice: r.MedianAreaPrice,
		PricePerSqft:    r.PricePerSqft,
		AreaMedianPpsf:  r.AreaMedianPpsf,
		AvgDaysOnMarket: r.AvgDaysOnMarket,
		InventoryLevel:  domain.InventoryLevel(r.InventoryLevel),
	}
	for _, c := range r.Comparables {
		mc.Comparables = append(mc.Comparables, domain.ComparableProperty{
			Address:      c.Address,
			Price:        c.Price,
			Sqft:         c.Sqft,
			Beds:         c.Beds,
			Baths:        c.Baths,
			SoldDate:     c.SoldDate,
			PricePerSqft: c.PricePerSqft,
		})
	}
	return mc
}

func (c *Client) getProperty(address string) (*propertyResponse, error) {
	q := url.Values{}
	q.Set("address", address)

	var response *propertyResponse
	if err := c.getJSON(c.APIURL+"/v1/property", q, &response); err != nil {
		return nil, fmt.Errorf("property lookup: %w", err)
	}
	if response == nil {
		return nil, fmt.Errorf("property lookup: empty response for %q", address)
	}

	return response, nil
}

func (c *Client) getJSON(rawURL string, q url.Values, target interface{}) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return err
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	if target == nil {
		return nil
	}

	return json.Unmarshal(data, target)
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept-Encoding", "gzip")

	return req
}
