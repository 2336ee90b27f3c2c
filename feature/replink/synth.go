package replink

import (
	"fmt"
	"strings"

	"catalog-sync/core/table"
)

// Feeds carry up to 18 optional feature slots.
const featureSlots = 18

// buildFeatures joins the non-blank feature slots into a bulleted list.
// The result is an empty string, not null, when no features exist; the
// downstream description merge depends on that.
func buildFeatures(row table.Row) any {
	var features []string
	for i := 1; i <= featureSlots; i++ {
		v := row.Get(fmt.Sprintf("Feature%d", i))
		if table.IsNull(v) {
			continue
		}
		if s := strings.TrimSpace(table.String(v)); s != "" {
			features = append(features, "• "+s)
		}
	}
	return strings.Join(features, "\n")
}
