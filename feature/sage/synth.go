package sage

import (
	"fmt"
	"strings"

	"catalog-sync/core/table"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// The decoration color "blank" is a sentinel meaning "no imprint included",
// not a missing value. Matching is case-insensitive.
const blankSentinel = "blank"

func isBlank(val any) bool {
	return strings.EqualFold(strings.TrimSpace(table.String(val)), blankSentinel)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// buildCategories joins Cat1Name and Cat2Name comma-separated, dropping a
// second category textually equal to the first. Null when both are absent.
func buildCategories(row table.Row) any {
	var parts []string
	cat1, cat2 := row.Get("Cat1Name"), row.Get("Cat2Name")
	if !table.IsNull(cat1) {
		parts = append(parts, table.String(cat1))
	}
	if !table.IsNull(cat2) && table.String(cat2) != table.String(cat1) {
		parts = append(parts, table.String(cat2))
	}
	if len(parts) == 0 {
		return nil
	}
	return strings.Join(parts, ",")
}

// buildProductDesc assembles the enriched description: the base description
// as paragraph one, and a Label<TAB>Value spec block as paragraph two.
// Null when no part exists anywhere.
func buildProductDesc(row table.Row) any {
	var paragraphs []string

	if desc := row.Get("Description"); !table.IsNull(desc) {
		paragraphs = append(paragraphs, table.String(desc))
	}

	var specs []string

	// Imprint color count; "blank" means the price includes no imprint, so
	// the line is skipped entirely.
	if clr := row.Get("PriceIncludeClr"); !table.IsNull(clr) && !isBlank(clr) {
		specs = append(specs, fmt.Sprintf("Maximum Imprint Colors\t%s Maximum", titleCase(table.String(clr))))
	}

	// Imprint area: one or two dimensions, each rendered with an inch mark.
	size1, size2 := row.Get("ImprintSize1"), row.Get("ImprintSize2")
	if !table.IsNull(size1) {
		if !table.IsNull(size2) {
			specs = append(specs, fmt.Sprintf("Imprint Area\t%s\" x %s\"", table.String(size1), table.String(size2)))
		} else {
			specs = append(specs, fmt.Sprintf("Imprint Area\t%s\"", table.String(size1)))
		}
	}

	// Item size: up to three non-zero dimensions.
	var dims []string
	for _, col := range []string{"Dimension1", "Dimension2", "Dimension3"} {
		v := row.Get(col)
		if table.IsNull(v) {
			continue
		}
		if f, ok := table.Float(v); ok && f == 0 {
			continue
		}
		dims = append(dims, table.String(v))
	}
	if len(dims) > 0 {
		specs = append(specs, fmt.Sprintf("Item Size\t%s\"", strings.Join(dims, "\" x ")))
	}

	if pkg := row.Get("Packaging"); !table.IsNull(pkg) {
		specs = append(specs, fmt.Sprintf("Packaging\t%s", table.String(pkg)))
	}

	if len(specs) > 0 {
		paragraphs = append(paragraphs, strings.Join(specs, "\n"))
	}
	if len(paragraphs) == 0 {
		return nil
	}
	return strings.Join(paragraphs, "\n\n")
}

// buildProductionTime renders "N to M Working Days". Null when the low bound
// is null, zero or unparseable; the high bound defaults to the low bound.
func buildProductionTime(row table.Row) any {
	lo, ok := table.Int(row.Get("ProdTimeLo"))
	if !ok || lo == 0 {
		return nil
	}
	hi, ok := table.Int(row.Get("ProdTimeHi"))
	if !ok || hi == 0 {
		hi = lo
	}
	return fmt.Sprintf("%d to %d Working Days", lo, hi)
}

// buildIncludedDecoration joins the title-cased decoration color, side,
// location and method, in that order. The "blank" color renders as
// "No Imprint". Truncated to 60 characters; null when nothing contributed.
func buildIncludedDecoration(row table.Row) any {
	var parts []string

	if clr := row.Get("PriceIncludeClr"); !table.IsNull(clr) {
		if isBlank(clr) {
			parts = append(parts, "No Imprint")
		} else {
			parts = append(parts, titleCase(table.String(clr)))
		}
	}
	for _, col := range []string{"PriceIncludeSide", "PriceIncludeLoc", "DecorationMethod"} {
		if v := row.Get(col); !table.IsNull(v) {
			parts = append(parts, titleCase(table.String(v)))
		}
	}

	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, " ")
	if r := []rune(joined); len(r) > 60 {
		joined = string(r[:60])
	}
	return joined
}

// priceCodeAt returns a synthesizer extracting the i-th character (1-based)
// of the PrCode string. Codes beyond the sixth tier are dropped by the
// dialect simply not asking for them; a short or null code yields null.
func priceCodeAt(i int) func(table.Row) any {
	return func(row table.Row) any {
		code := row.Get("PrCode")
		if table.IsNull(code) {
			return nil
		}
		chars := []rune(table.String(code))
		if len(chars) < i {
			return nil
		}
		return string(chars[i-1])
	}
}
