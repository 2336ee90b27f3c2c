package replink

import (
	"fmt"
	"testing"
	"time"

	"catalog-sync/core/sheet"
	"catalog-sync/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func feedTable(rows ...table.Row) *table.Table {
	cols := []string{
		"ItemNumber", "ShortName", "SalesCopy", "BrandName", "ImageURL",
		"QtyAvailable", "ItemStatus", "MSRP", "MAP", "UserPrice",
		"JobberPrice", "DistributorPrice", "RepLinkCategoryID", "Keywords",
		"UPC", "Freight", "FOBCity", "FOBState", "FOBZip",
	}
	for i := 1; i <= featureSlots; i++ {
		cols = append(cols, fmt.Sprintf("Feature%d", i))
	}
	t := table.New(cols...)
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

func fixedClock() time.Time {
	return time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
}

func newTestService(cfg Config) *Service {
	svc := NewService(cfg, zap.NewNop())
	svc.now = fixedClock
	return svc
}

func TestTransform_CanonicalShape(t *testing.T) {
	svc := newTestService(Config{PriceTier: "DistributorPrice"})

	out, err := svc.Transform(feedTable(
		table.Row{"ItemNumber": "RL-1", "ShortName": "Winch", "QtyAvailable": "12", "DistributorPrice": "149.99"},
	))
	require.NoError(t, err)

	assert.Equal(t, canonicalColumns, out.Columns)
	require.Equal(t, 1, out.Len())

	row := out.Rows[0]
	assert.Equal(t, "replink", row["source"])
	assert.Equal(t, "2026-03-15 10:30:00", row["import_date"])
	assert.Nil(t, row["user_account_id"], "zero account id stays null")
}

func TestTransform_EnableGate(t *testing.T) {
	tests := []struct {
		name      string
		qty       any
		threshold float64
		enabled   bool
		wantQty   float64
	}{
		{"stock above default threshold", "5", 0, true, 5},
		{"zero stock disabled", "0", 0, false, 0},
		{"junk quantity coerces to zero", "N/A", 0, false, 0},
		{"missing quantity disabled", nil, 0, false, 0},
		{"at threshold is not enough", "10", 10, false, 10},
		{"above raised threshold", "11", 10, true, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(Config{EnableThreshold: tt.threshold})

			out, err := svc.Transform(feedTable(table.Row{"ItemNumber": "RL-1", "QtyAvailable": tt.qty}))
			require.NoError(t, err)

			row := out.Rows[0]
			assert.Equal(t, tt.enabled, row["enabled"])
			assert.Equal(t, tt.wantQty, row["qty_available"], "quantity is coerced numeric, never null")
		})
	}
}

func TestTransform_PriceTierSelection(t *testing.T) {
	feedRow := table.Row{
		"ItemNumber":       "RL-1",
		"MSRP":             "199.99",
		"MAP":              "179.99",
		"UserPrice":        "159.99",
		"JobberPrice":      "139.99",
		"DistributorPrice": "119.99",
	}

	tests := []struct {
		tier string
		want float64
	}{
		{"MSRP", 199.99},
		{"MAP", 179.99},
		{"UserPrice", 159.99},
		{"JobberPrice", 139.99},
		{"DistributorPrice", 119.99},
		{"NoSuchTier", 119.99},
	}
	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			svc := newTestService(Config{PriceTier: tt.tier})

			out, err := svc.Transform(feedTable(feedRow))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Rows[0]["price"])
		})
	}
}

func TestTransform_UnparseablePriceIsNull(t *testing.T) {
	svc := newTestService(Config{PriceTier: "MSRP"})

	out, err := svc.Transform(feedTable(table.Row{"ItemNumber": "RL-1", "MSRP": "call"}))
	require.NoError(t, err)
	assert.Nil(t, out.Rows[0]["price"])
}

func TestTransform_FeatureListMergesIntoDescription(t *testing.T) {
	svc := newTestService(Config{})

	out, err := svc.Transform(feedTable(table.Row{
		"ItemNumber": "RL-1",
		"SalesCopy":  "A heavy-duty winch.",
		"Feature1":  "12,000 lb capacity",
		"Feature2":  "  ",
		"Feature3":  "Synthetic rope",
	}))
	require.NoError(t, err)

	row := out.Rows[0]
	assert.Equal(t, "• 12,000 lb capacity\n• Synthetic rope", row["features"])
	assert.Equal(t, "A heavy-duty winch.\n\n• 12,000 lb capacity\n• Synthetic rope", row["product_desc"])
}

func TestTransform_FeaturesAloneWhenNoDescription(t *testing.T) {
	svc := newTestService(Config{})

	out, err := svc.Transform(feedTable(table.Row{
		"ItemNumber": "RL-1",
		"Feature1":  "Sealed motor",
	}))
	require.NoError(t, err)
	assert.Equal(t, "• Sealed motor", out.Rows[0]["product_desc"])
}

func TestTransform_NoFeaturesIsEmptyStringNotNull(t *testing.T) {
	svc := newTestService(Config{})

	out, err := svc.Transform(feedTable(table.Row{
		"ItemNumber": "RL-1",
		"SalesCopy":  "Plain copy.",
	}))
	require.NoError(t, err)

	row := out.Rows[0]
	assert.Equal(t, "", row["features"])
	assert.Equal(t, "Plain copy.", row["product_desc"], "empty feature list leaves the description alone")
}

func TestTransform_UserAccountIDStamped(t *testing.T) {
	svc := newTestService(Config{UserAccountID: 42})

	out, err := svc.Transform(feedTable(table.Row{"ItemNumber": "RL-1"}))
	require.NoError(t, err)
	assert.Equal(t, 42, out.Rows[0]["user_account_id"])
}

func TestTransform_Deterministic(t *testing.T) {
	svc := newTestService(Config{})
	src := feedTable(table.Row{"ItemNumber": "RL-1", "QtyAvailable": "3", "Feature1": "LED"})

	first, err := svc.Transform(src)
	require.NoError(t, err)
	second, err := svc.Transform(src)
	require.NoError(t, err)

	require.Equal(t, first.Len(), second.Len())
	for i := range first.Rows {
		for _, col := range first.Columns {
			assert.True(t, table.Equal(first.Rows[i][col], second.Rows[i][col]), col)
		}
	}
}

func TestSplitByStatus(t *testing.T) {
	svc := newTestService(Config{})

	out, err := svc.Transform(feedTable(
		table.Row{"ItemNumber": "RL-1", "QtyAvailable": "5"},
		table.Row{"ItemNumber": "RL-2", "QtyAvailable": "0"},
		table.Row{"ItemNumber": "RL-3", "QtyAvailable": "oops"},
	))
	require.NoError(t, err)

	enabled, disabled := svc.SplitByStatus(out)
	require.Equal(t, 1, enabled.Len())
	assert.Equal(t, "RL-1", enabled.Rows[0]["item_number"])
	require.Equal(t, 2, disabled.Len())
	assert.Equal(t, out.Columns, enabled.Columns)
	assert.Equal(t, out.Columns, disabled.Columns)
}

func TestReconcile_SnapshotRoundTrip(t *testing.T) {
	// The production path: the previous canonical table arrives through the
	// workbook writer and loader, which turns booleans into "TRUE"/"FALSE"
	// strings and numbers into text. Reconciling an unchanged feed against
	// its own reloaded snapshot must report nothing to do.
	svc := newTestService(Config{PriceTier: "DistributorPrice"})

	fresh, err := svc.Transform(feedTable(
		table.Row{"ItemNumber": "RL-1", "ShortName": "Winch", "QtyAvailable": "5", "DistributorPrice": "149.99"},
		table.Row{"ItemNumber": "RL-2", "ShortName": "Shackle", "QtyAvailable": "0"},
	))
	require.NoError(t, err)

	buf, err := sheet.WriteBuffer(fresh)
	require.NoError(t, err)
	snapshot, err := sheet.NewLoader(nil).LoadReader(buf, "snapshot.xlsx")
	require.NoError(t, err)

	res, err := svc.Reconcile(snapshot, fresh)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Adds.Len())
	assert.Equal(t, 0, res.Updates.Len())
	assert.Equal(t, 0, res.Deletes.Len())
	assert.Equal(t, 2, res.Summary.Unchanged)
}

func TestSplitByStatus_ReloadedSnapshot(t *testing.T) {
	svc := newTestService(Config{})

	fresh, err := svc.Transform(feedTable(
		table.Row{"ItemNumber": "RL-1", "QtyAvailable": "5"},
		table.Row{"ItemNumber": "RL-2", "QtyAvailable": "0"},
	))
	require.NoError(t, err)

	buf, err := sheet.WriteBuffer(fresh)
	require.NoError(t, err)
	snapshot, err := sheet.NewLoader(nil).LoadReader(buf, "snapshot.xlsx")
	require.NoError(t, err)

	enabled, disabled := svc.SplitByStatus(snapshot)
	require.Equal(t, 1, enabled.Len())
	assert.Equal(t, "RL-1", enabled.Rows[0]["item_number"])
	assert.Equal(t, 1, disabled.Len())
}

func TestReconcile_VolatileQuantityChange(t *testing.T) {
	svc := newTestService(Config{})

	snapshot := func(qty float64) *table.Table {
		tbl := table.New(canonicalColumns...)
		tbl.Append(table.Row{"item_number": "rl-1", "product": "Winch", "qty_available": qty, "enabled": qty > 0})
		return tbl
	}

	res, err := svc.Reconcile(snapshot(5), snapshot(0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updates.Len())

	res, err = svc.Reconcile(snapshot(5), snapshot(5))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Updates.Len())
	assert.Equal(t, 1, res.Summary.Unchanged)
}
