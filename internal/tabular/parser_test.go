package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkoide/supplywatch/internal/domain"
)

func TestParseBasic(t *testing.T) {
	raw := "name,category,quantity,expiry-date,note\n" +
		"Water,Water,10,-,\n" +
		"Rice,Food,5,2027-01-15,rotate yearly\n"

	records := Parse(raw)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"name", "category", "quantity", "expiry-date", "note"}, records[0].Columns)
	assert.Equal(t, "Water", records[0].Name())
	assert.Equal(t, "-", records[0].ExpiryDate())
	assert.Equal(t, "", records[0].Note())

	assert.Equal(t, "Rice", records[1].Name())
	assert.Equal(t, "2027-01-15", records[1].ExpiryDate())
	assert.Equal(t, "rotate yearly", records[1].Note())
}

func TestParseRecordCountAndOrder(t *testing.T) {
	raw := "name,category\nC,x\nA,y\nB,z"

	records := Parse(raw)
	require.Len(t, records, 3)
	// Source line order is preserved.
	assert.Equal(t, "C", records[0].Name())
	assert.Equal(t, "A", records[1].Name())
	assert.Equal(t, "B", records[2].Name())
}

func TestParseEveryRecordHasHeaderKeySet(t *testing.T) {
	raw := "name,category,quantity\nWater\nRice,Food,5,extra,columns"

	records := Parse(raw)
	require.Len(t, records, 2)

	for _, rec := range records {
		assert.Len(t, rec.Fields, 3)
		for _, col := range rec.Columns {
			_, ok := rec.Fields[col]
			assert.True(t, ok, "missing key %q", col)
		}
	}

	// Short row padded with empty strings.
	assert.Equal(t, "Water", records[0].Name())
	assert.Equal(t, "", records[0].Category())
	assert.Equal(t, "", records[0].Quantity())

	// Extra tokens silently dropped.
	assert.Equal(t, "5", records[1].Quantity())
}

func TestParseCarriageReturns(t *testing.T) {
	raw := "name,category\r\nWater,Water\r\n"

	records := Parse(raw)
	require.Len(t, records, 1)
	assert.Equal(t, "Water", records[0].Name())
	assert.Equal(t, "Water", records[0].Category())
}

func TestParseTrimsTokens(t *testing.T) {
	raw := " name , category \n Water ,  Drinks  "

	records := Parse(raw)
	require.Len(t, records, 1)
	assert.Equal(t, "Water", records[0].Get("name"))
	assert.Equal(t, "Drinks", records[0].Get("category"))
}

func TestParseEmptyInputs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"whitespace only", "  \n \r\n"},
		{"header only", "name,category,quantity"},
		{"header with trailing newline", "name,category\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Parse(tt.raw))
		})
	}
}

func TestParseUnknownColumnsReadEmpty(t *testing.T) {
	raw := "item,count\nWater,10"

	records := Parse(raw)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].Get(domain.ColName))
	assert.Equal(t, "", records[0].Get(domain.ColExpiry))
}
