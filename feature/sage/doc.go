// Package sage implements the Sage dialect: structured supplier catalog
// exports transformed to the 42-column legacy import schema.
//
// The dialect maps direct columns (item number, name, colors, setup charge,
// six price/quantity tiers) under the engine's field policies, and
// synthesizes the composite fields the import system expects:
//
//   - categories: Cat1Name/Cat2Name merged, comma-separated, deduplicated
//   - product_desc: base description plus a tab-separated spec block
//     (imprint colors, imprint area, item size, packaging)
//   - production_time: "N to M Working Days"
//   - included_decoration: title-cased decoration summary, 60 chars max
//   - price_code_1..6: the price code string exploded one character per tier
//
// Monetary and quantity zeros become null by policy: a zero price tier means
// "tier not offered", which the import system expects as an empty cell.
package sage
