package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortCloseColumns(t *testing.T) {
	columns := ShortCloseColumns()

	t.Run("has the fixed schema", func(t *testing.T) {
		require.Len(t, columns, 13)

		fieldnames := make([]string, len(columns))
		for i, c := range columns {
			fieldnames[i] = c.Fieldname
		}
		assert.Equal(t, []string{
			"date",
			"required_date",
			"purchase_order",
			"supplier",
			"qty",
			"received_qty",
			"good_in_transit_qty",
			"short_close_qty",
			"amount",
			"billed_amount",
			"pending_amount",
			"warehouse",
			"company",
		}, fieldnames)
	})

	t.Run("currency columns are rate convertible", func(t *testing.T) {
		currency := map[string]bool{"amount": true, "billed_amount": true, "pending_amount": true}
		found := 0
		for _, c := range columns {
			if !currency[c.Fieldname] {
				continue
			}
			found++
			assert.Equal(t, FieldtypeCurrency, c.Fieldtype, c.Fieldname)
			assert.Equal(t, ConvertibleRate, c.Convertible, c.Fieldname)
			assert.Equal(t, companyCurrency, c.Options, c.Fieldname)
		}
		assert.Equal(t, 3, found)
	})

	t.Run("quantity columns are qty convertible", func(t *testing.T) {
		for _, c := range columns {
			if c.Fieldtype != FieldtypeFloat {
				continue
			}
			assert.Equal(t, ConvertibleQty, c.Convertible, c.Fieldname)
		}
	})

	t.Run("link columns carry their target entity", func(t *testing.T) {
		targets := map[string]string{}
		for _, c := range columns {
			if c.Fieldtype == FieldtypeLink {
				targets[c.Fieldname] = c.Options
			}
		}
		assert.Equal(t, map[string]string{
			"purchase_order": "Purchase Order",
			"supplier":       "Supplier",
			"warehouse":      "Warehouse",
			"company":        "Company",
		}, targets)
	})

	t.Run("every column has a label and width", func(t *testing.T) {
		for _, c := range columns {
			assert.NotEmpty(t, c.Label, c.Fieldname)
			assert.Positive(t, c.Width, c.Fieldname)
		}
	})
}
