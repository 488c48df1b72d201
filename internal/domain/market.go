package domain

// InventoryLevel describes how much housing stock is on the local market.
type InventoryLevel string

const (
	InventoryLow      InventoryLevel = "low"
	InventoryBalanced InventoryLevel = "balanced"
	InventoryHigh     InventoryLevel = "high"
)

// MarketContext carries area-level pricing signals for a property.
type MarketContext struct {
	MedianAreaPrice *float64             `json:"median_area_price,omitempty"`
	PricePerSqft    *float64             `json:"price_per_sqft,omitempty"`
	AreaMedianPpsf  *float64             `json:"area_median_ppsf,omitempty"`
	AvgDaysOnMarket *int64               `json:"avg_days_on_market,omitempty"`
	InventoryLevel  InventoryLevel       `json:"inventory_level,omitempty"`
	Comparables     []ComparableProperty `json:"comparables,omitempty"`
}

// ComparableProperty is one recently sold property used for price context.
type ComparableProperty struct {
	Address      string   `json:"address"`
	Price        float64  `json:"price"`
	Sqft         *int64   `json:"sqft,omitempty"`
	Beds         *float64 `json:"beds,omitempty"`
	Baths        *float64 `json:"baths,omitempty"`
	SoldDate     string   `json:"sold_date,omitempty"`
	PricePerSqft *float64 `json:"price_per_sqft,omitempty"`
}
