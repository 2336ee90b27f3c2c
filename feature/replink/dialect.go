package replink

import (
	"catalog-sync/core/table"
	"catalog-sync/core/transform"
)

// Config holds configuration for the Replink dialect.
type Config struct {
	// EnableThreshold is the available-quantity bar a product must exceed to
	// count as enabled.
	EnableThreshold float64 `mapstructure:"enable_threshold" default:"0"`
	// PriceTier selects the feed price column to publish: MSRP, MAP,
	// UserPrice, JobberPrice or DistributorPrice.
	PriceTier string `mapstructure:"price_tier" default:"DistributorPrice"`
	// UserAccountID tags imported rows with an account; 0 leaves the column null.
	UserAccountID int `mapstructure:"user_account_id" default:"0"`
}

// Feed price tier names to canonical columns. Unknown tiers fall back to
// the distributor price.
var priceTiers = map[string]string{
	"MSRP":             "msrp",
	"MAP":              "map_price",
	"UserPrice":        "user_price",
	"JobberPrice":      "jobber_price",
	"DistributorPrice": "distributor_price",
}

const defaultPriceColumn = "distributor_price"

// Canonical column order of the Replink product schema.
var canonicalColumns = []string{
	"item_number", "product", "product_desc", "brand", "image_url",
	"qty_available", "item_status", "msrp", "map_price", "user_price",
	"jobber_price", "distributor_price", "category_id", "keywords", "upc",
	"freight", "fob_city", "fob_state", "fob_zip", "features", "enabled",
	"price", "source", "import_date", "user_account_id",
}

// Dialect implements transform.Dialect for Replink inventory feeds.
// ImportDate is stamped by the caller (service or CLI) so the transform
// itself is deterministic.
type Dialect struct {
	cfg        Config
	importDate string
}

// NewDialect creates a Replink dialect with the given import date stamp.
func NewDialect(cfg Config, importDate string) *Dialect {
	return &Dialect{cfg: cfg, importDate: importDate}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "replink"
}

// Columns returns the fixed canonical column set.
func (d *Dialect) Columns() []string {
	return canonicalColumns
}

// Key returns the natural key column.
func (d *Dialect) Key() string {
	return "item_number"
}

// Mapping returns the passthrough column map from feed to canonical names.
func (d *Dialect) Mapping() []transform.Entry {
	pairs := []struct{ source, target string }{
		{"ItemNumber", "item_number"},
		{"ShortName", "product"},
		{"SalesCopy", "product_desc"},
		{"BrandName", "brand"},
		{"ImageURL", "image_url"},
		{"QtyAvailable", "qty_available"},
		{"ItemStatus", "item_status"},
		{"MSRP", "msrp"},
		{"MAP", "map_price"},
		{"UserPrice", "user_price"},
		{"JobberPrice", "jobber_price"},
		{"DistributorPrice", "distributor_price"},
		{"RepLinkCategoryID", "category_id"},
		{"Keywords", "keywords"},
		{"UPC", "upc"},
		{"Freight", "freight"},
		{"FOBCity", "fob_city"},
		{"FOBState", "fob_state"},
		{"FOBZip", "fob_zip"},
	}
	entries := make([]transform.Entry, 0, len(pairs))
	for _, p := range pairs {
		entries = append(entries, transform.Entry{
			Source: p.source,
			Target: p.target,
			Policy: transform.PolicyPassthrough,
		})
	}
	return entries
}

// Statics returns the import metadata columns. A zero account id stays null
// so the column is present but empty, keeping the schema fixed.
func (d *Dialect) Statics() map[string]any {
	statics := map[string]any{
		"source":      "replink",
		"import_date": d.importDate,
	}
	if d.cfg.UserAccountID != 0 {
		statics["user_account_id"] = d.cfg.UserAccountID
	}
	return statics
}

// Synthesizers returns the feature-list derivation.
func (d *Dialect) Synthesizers() []transform.Synthesizer {
	return []transform.Synthesizer{
		{Target: "features", Fn: buildFeatures},
	}
}

// VolatileColumns returns the allowlist compared during reconciliation.
func (d *Dialect) VolatileColumns() []string {
	return []string{"product", "price", "qty_available", "enabled"}
}

// FinalizeRow implements transform.Finalizer: it merges the feature list
// into the description, applies the enable gate and selects the price tier.
func (d *Dialect) FinalizeRow(out table.Row, src table.Row) {
	// Description plus feature block, separated by a blank line. The feature
	// list is "" (not null) when empty, so a plain presence check suffices.
	if features := table.String(out.Get("features")); features != "" {
		if desc := out.Get("product_desc"); !table.IsNull(desc) {
			out["product_desc"] = table.String(desc) + "\n\n" + features
		} else {
			out["product_desc"] = features
		}
	}

	// Enable gate: the quantity is coerced to 0 when non-numeric, never
	// null, so a junk feed value always disables the product.
	qty, ok := table.Float(out.Get("qty_available"))
	if !ok {
		qty = 0
	}
	out["qty_available"] = qty
	out["enabled"] = qty > d.cfg.EnableThreshold

	// Published price from the configured tier.
	column, ok := priceTiers[d.cfg.PriceTier]
	if !ok {
		column = defaultPriceColumn
	}
	if price, ok := table.Float(out.Get(column)); ok {
		out["price"] = price
	} else {
		out["price"] = nil
	}
}
