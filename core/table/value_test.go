package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(nil))
	assert.True(t, IsNull(math.NaN()))
	assert.False(t, IsNull(0))
	assert.False(t, IsNull(""))
	assert.False(t, IsNull("nan"))
}

func TestFloat_Coercion(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"float64", 12.5, 12.5, true},
		{"int", 7, 7, true},
		{"numeric string", "9.99", 9.99, true},
		{"padded string", " 42 ", 42, true},
		{"non-numeric string", "N/A", 0, false},
		{"empty string", "", 0, false},
		{"null", nil, 0, false},
		{"bool", true, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Float(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestString_Formatting(t *testing.T) {
	assert.Equal(t, "", String(nil))
	assert.Equal(t, "12", String(float64(12)))
	assert.Equal(t, "12.5", String(12.5))
	assert.Equal(t, "abc", String("abc"))
}

func TestEqual(t *testing.T) {
	// Null equals null, and nothing else.
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, 0))
	assert.False(t, Equal("", nil))

	// Numerics compare numerically across representations.
	assert.True(t, Equal(5, 5.0))
	assert.True(t, Equal("5", 5))
	assert.True(t, Equal("9.99", 9.99))
	assert.False(t, Equal(9.99, 12.50))

	// Everything else compares by string form.
	assert.True(t, Equal("Red", "Red"))
	assert.False(t, Equal("Red", "Blue"))
}

func TestEqual_Booleans(t *testing.T) {
	// Workbook readers hand boolean cells back as "TRUE"/"FALSE" strings, so
	// a flag survives a write/load round trip unchanged.
	assert.True(t, Equal(true, "TRUE"))
	assert.True(t, Equal("FALSE", false))
	assert.True(t, Equal(true, true))
	assert.False(t, Equal(true, "FALSE"))
	assert.False(t, Equal(false, "TRUE"))
	assert.False(t, Equal(true, "maybe"))
	assert.False(t, Equal(true, nil))
}

func TestBool_Coercion(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
		ok   bool
	}{
		{"bool", true, true, true},
		{"upper string", "TRUE", true, true},
		{"lower string", "false", false, true},
		{"padded string", " True ", true, true},
		{"numeric string", "1", true, true},
		{"zero", 0, false, true},
		{"nonzero float", 2.5, true, true},
		{"junk string", "maybe", false, false},
		{"null", nil, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Bool(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRow_Get(t *testing.T) {
	row := Row{"a": 1, "b": nil}
	assert.Equal(t, 1, row.Get("a"))
	assert.Nil(t, row.Get("b"))
	assert.Nil(t, row.Get("missing"))
}

func TestTable_Validate(t *testing.T) {
	var nilTable *Table
	assert.ErrorIs(t, nilTable.Validate(), ErrNoColumns)
	assert.ErrorIs(t, (&Table{}).Validate(), ErrNoColumns)
	assert.NoError(t, New("a").Validate())
}

func TestTable_HasColumn(t *testing.T) {
	tbl := New("item_number", "price_1")
	assert.True(t, tbl.HasColumn("price_1"))
	assert.False(t, tbl.HasColumn("price_9"))
}
