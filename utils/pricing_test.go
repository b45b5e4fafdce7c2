package utils

import (
	"testing"

	"github.com/TuanAnh19122003/motoparts-storefront/models"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestPresentPricePlain(t *testing.T) {
	view := PresentPrice(models.Product{
		Name:  "Brake pad",
		Price: floatPtr(350000),
	})

	assert.Equal(t, PriceModePlain, view.Mode)
	assert.Equal(t, FormatCurrency(350000), view.Final)
	assert.Empty(t, view.Original)
	assert.Empty(t, view.Badge)
}

func TestPresentPriceDiscount(t *testing.T) {
	view := PresentPrice(models.Product{
		Name:       "Air filter",
		Price:      floatPtr(200000),
		FinalPrice: floatPtr(180000),
		Discount:   &models.Discount{Percentage: 10, Name: "Summer sale"},
	})

	assert.Equal(t, PriceModeDiscount, view.Mode)
	assert.Equal(t, FormatCurrency(200000), view.Original)
	assert.Equal(t, FormatCurrency(180000), view.Final)
	assert.Equal(t, "-10%", view.Badge)
	assert.Equal(t, "Summer sale", view.DiscountName)
	assert.LessOrEqual(t, view.FinalAmount, 200000.0)
}

func TestPresentPriceDerivesFinalPrice(t *testing.T) {
	// The API may omit finalPrice; the discount applies to the base price.
	view := PresentPrice(models.Product{
		Price:    floatPtr(100000),
		Discount: &models.Discount{Percentage: 25},
	})

	assert.Equal(t, PriceModeDiscount, view.Mode)
	assert.Equal(t, 75000.0, view.FinalAmount)
}

func TestPresentPricePrefersOriginalPrice(t *testing.T) {
	view := PresentPrice(models.Product{
		Price:         floatPtr(180000),
		OriginalPrice: floatPtr(200000),
		FinalPrice:    floatPtr(180000),
		Discount:      &models.Discount{Percentage: 10},
	})

	assert.Equal(t, FormatCurrency(200000), view.Original)
	assert.Equal(t, FormatCurrency(180000), view.Final)
}

func TestPresentPriceContact(t *testing.T) {
	cases := []struct {
		name    string
		product models.Product
	}{
		{"nil price", models.Product{Name: "Custom exhaust"}},
		{"zero price", models.Product{Price: floatPtr(0)}},
		{"negative price", models.Product{Price: floatPtr(-1)}},
		// A product without a base price never carries a discount; a stray
		// descriptor must not produce a numeric rendering.
		{"discount without price", models.Product{Discount: &models.Discount{Percentage: 10}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view := PresentPrice(tc.product)
			assert.Equal(t, PriceModeContact, view.Mode)
			assert.Empty(t, view.Final)
			assert.Empty(t, view.Original)
			assert.Empty(t, view.Badge)
		})
	}
}

func TestPresentPriceCapsFinalAtBase(t *testing.T) {
	view := PresentPrice(models.Product{
		Price:      floatPtr(100000),
		FinalPrice: floatPtr(120000),
		Discount:   &models.Discount{Percentage: 5},
	})

	assert.Equal(t, 100000.0, view.FinalAmount)
}
