package sage

import (
	"fmt"

	"catalog-sync/core/transform"
)

// Config holds configuration for the Sage dialect.
type Config struct {
	// Supplier is the supplier code used to label outputs (e.g. "hit").
	Supplier string `mapstructure:"supplier" default:"generic"`
}

// Canonical column order of the legacy import schema. Order and completeness
// are load-bearing: the downstream importer addresses columns by position.
var canonicalColumns = []string{
	"delete_product", "product_id", "item_number", "product", "categories",
	"product_desc", "production_time", "included_decoration", "decoration_method",
	"imprint_location", "colors", "sizes", "sizeupcharges", "setup_charge",
	"setup_price_code", "price_quantity_1", "price_quantity_2", "price_quantity_3",
	"price_quantity_4", "price_quantity_5", "price_quantity_6", "price_1",
	"price_2", "price_3", "price_4", "price_5", "price_6", "price_code_1",
	"price_code_2", "price_code_3", "price_code_4", "price_code_5", "price_code_6",
	"addcost", "addcostprice", "addcostpricecode", "image_name", "logo_style",
	"logo_scale", "logo_rotate", "coord_x", "coord_y",
}

// Dialect implements transform.Dialect for Sage catalog exports.
type Dialect struct{}

// NewDialect creates the Sage dialect.
func NewDialect() *Dialect {
	return &Dialect{}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "sage"
}

// Columns returns the fixed 42-column canonical schema.
func (d *Dialect) Columns() []string {
	return canonicalColumns
}

// Key returns the natural key column.
func (d *Dialect) Key() string {
	return "item_number"
}

// Mapping returns the declarative column mapping. Product names truncate to
// 100 characters; monetary and quantity fields use the zero-to-null policy.
func (d *Dialect) Mapping() []transform.Entry {
	entries := []transform.Entry{
		{Source: "ItemNum", Target: "item_number", Policy: transform.PolicyItemNumber},
		{Source: "Name", Target: "product", Policy: transform.PolicyTruncate, Limit: 100},
		{Source: "Colors", Target: "colors", Policy: transform.PolicyPassthrough},
		{Source: "DecorationMethod", Target: "decoration_method", Policy: transform.PolicyPassthrough},
		{Source: "ImprintLoc", Target: "imprint_location", Policy: transform.PolicyPassthrough},
		{Source: "SetupChg", Target: "setup_charge", Policy: transform.PolicyZeroToNull},
		{Source: "SetupChgCode", Target: "setup_price_code", Policy: transform.PolicyPassthrough},
	}
	for i := 1; i <= 6; i++ {
		entries = append(entries,
			transform.Entry{
				Source: fmt.Sprintf("Qty%d", i),
				Target: fmt.Sprintf("price_quantity_%d", i),
				Policy: transform.PolicyZeroToNull,
			},
			transform.Entry{
				Source: fmt.Sprintf("Prc%d", i),
				Target: fmt.Sprintf("price_%d", i),
				Policy: transform.PolicyZeroToNull,
			},
		)
	}
	return entries
}

// Statics returns the constant columns. The placeholder image/logo/coordinate
// columns are left unset so they serialize as always-null.
func (d *Dialect) Statics() map[string]any {
	return map[string]any{
		"delete_product": "N",
	}
}

// Synthesizers returns the composite-field derivations.
func (d *Dialect) Synthesizers() []transform.Synthesizer {
	synths := []transform.Synthesizer{
		{Target: "categories", Fn: buildCategories},
		{Target: "product_desc", Fn: buildProductDesc},
		{Target: "production_time", Fn: buildProductionTime},
		{Target: "included_decoration", Fn: buildIncludedDecoration},
	}
	for i := 1; i <= 6; i++ {
		synths = append(synths, transform.Synthesizer{
			Target: fmt.Sprintf("price_code_%d", i),
			Fn:     priceCodeAt(i),
		})
	}
	return synths
}

// VolatileColumns returns the allowlist compared during reconciliation.
func (d *Dialect) VolatileColumns() []string {
	return []string{
		"price_1", "price_2", "price_3", "price_4", "price_5", "price_6",
		"price_quantity_1", "price_quantity_2", "price_quantity_3",
		"price_quantity_4", "price_quantity_5", "price_quantity_6",
		"product", "colors", "production_time",
	}
}
