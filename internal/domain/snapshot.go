package domain

// PropertySnapshot holds the physical facts known about one property. Every
// field is independently nullable: a nil pointer means the data source had
// nothing, which is different from zero. Snapshots are never mutated after
// construction; merging produces a new one.
type PropertySnapshot struct {
	Beds             *float64 `json:"beds,omitempty"`
	Baths            *float64 `json:"baths,omitempty"`
	Sqft             *int64   `json:"sqft,omitempty"`
	LotSqft          *int64   `json:"lot_sqft,omitempty"`
	YearBuilt        *int64   `json:"year_built,omitempty"`
	Stories          *int64   `json:"stories,omitempty"`
	Garage           *string  `json:"garage,omitempty"`
	HOA              *float64 `json:"hoa,omitempty"`
	Zoning           *string  `json:"zoning,omitempty"`
	TaxAssessedValue *float64 `json:"tax_assessed_value,omitempty"`
	LastSaleDate     *string  `json:"last_sale_date,omitempty"`
	LastSalePrice    *float64 `json:"last_sale_price,omitempty"`
}

// MergeSnapshots combines an authoritative record snapshot with an inferred
// one. The rule is per-field, not per-object: the authoritative value wins
// whenever it is present, and the inferred value fills every remaining gap.
// Both nil yields nil. No validation or clamping happens here.
func MergeSnapshots(authoritative, inferred *PropertySnapshot) *PropertySnapshot {
	if authoritative == nil && inferred == nil {
		return nil
	}
	if authoritative == nil {
		authoritative = &PropertySnapshot{}
	}
	if inferred == nil {
		inferred = &PropertySnapshot{}
	}

	return &PropertySnapshot{
		Beds:             mergeField(authoritative.Beds, inferred.Beds),
		Baths:            mergeField(authoritative.Baths, inferred.Baths),
		Sqft:             mergeField(authoritative.Sqft, inferred.Sqft),
		LotSqft:          mergeField(authoritative.LotSqft, inferred.LotSqft),
		YearBuilt:        mergeField(authoritative.YearBuilt, inferred.YearBuilt),
		Stories:          mergeField(authoritative.Stories, inferred.Stories),
		Garage:           mergeField(authoritative.Garage, inferred.Garage),
		HOA:              mergeField(authoritative.HOA, inferred.HOA),
		Zoning:           mergeField(authoritative.Zoning, inferred.Zoning),
		TaxAssessedValue: mergeField(authoritative.TaxAssessedValue, inferred.TaxAssessedValue),
		LastSaleDate:     mergeField(authoritative.LastSaleDate, inferred.LastSaleDate),
		LastSalePrice:    mergeField(authoritative.LastSalePrice, inferred.LastSalePrice),
	}
}

// mergeField returns the preferred value when present, otherwise the fallback.
func mergeField[T any](preferred, fallback *T) *T {
	if preferred != nil {
		return preferred
	}
	return fallback
}

// Float64 returns a pointer to v. Handy for building snapshots literally.
func Float64(v float64) *float64 { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
