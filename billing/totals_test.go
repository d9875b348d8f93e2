package billing

import (
	"testing"

	"github.com/majjane/majjaneflow/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeTotals(t *testing.T) {
	items := []models.LineItem{
		{Description: "Hosting", Quantity: dec("1"), UnitPrice: dec("1000"), TaxRate: dec("20")},
		{Description: "Support hours", Quantity: dec("2.5"), UnitPrice: dec("80"), TaxRate: dec("10")},
	}

	totals := ComputeTotals(items)

	assert.True(t, totals.Subtotal.Equal(dec("1200")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(dec("220")), "tax = %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(dec("1420")), "total = %s", totals.Total)
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotalsInvariant(t *testing.T) {
	cases := [][]models.LineItem{
		nil,
		{{Quantity: dec("3"), UnitPrice: dec("19.99"), TaxRate: dec("20")}},
		{{Quantity: dec("0.5"), UnitPrice: dec("100"), TaxRate: dec("7.7")}},
		{
			{Quantity: dec("1"), UnitPrice: dec("1200"), TaxRate: dec("0")},
			{Quantity: dec("4"), UnitPrice: dec("25.25"), TaxRate: dec("14")},
		},
	}
	for _, items := range cases {
		totals := ComputeTotals(items)
		assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.TaxAmount)))
		assert.False(t, totals.Subtotal.IsNegative())
		assert.False(t, totals.TaxAmount.IsNegative())
	}
}

func TestComputeTotalsCreditLine(t *testing.T) {
	// Negative quantities are accepted structurally; a credit line reduces
	// the total.
	items := []models.LineItem{
		{Quantity: dec("1"), UnitPrice: dec("500"), TaxRate: dec("20")},
		{Quantity: dec("-1"), UnitPrice: dec("100"), TaxRate: dec("20")},
	}

	totals := ComputeTotals(items)

	assert.True(t, totals.Subtotal.Equal(dec("400")))
	assert.True(t, totals.Total.Equal(dec("480")))
}
