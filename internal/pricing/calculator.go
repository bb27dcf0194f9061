package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"goldpost/internal/model"
)

// TroyOunceGrams is the mass of one troy ounce in grams.
const TroyOunceGrams = 31.1034768

var pureGrade = decimal.NewFromInt(999)

// BuyPricePerGram999 converts the spot price into local currency and applies the buy-side discount.
// The discount is not validated: a value outside [0, 1] yields negative or inflated prices.
func BuyPricePerGram999(spotPricePerGram, exchangeRate, discountFraction float64) decimal.Decimal {
	local := decimal.NewFromFloat(spotPricePerGram).Mul(decimal.NewFromFloat(exchangeRate))
	return local.Mul(decimal.NewFromInt(1).Sub(decimal.NewFromFloat(discountFraction)))
}

// Compute derives buy prices for every grade by scaling the 999 price linearly.
// The table is ordered by descending grade; the grades slice is left untouched.
func Compute(spotPricePerGram, exchangeRate, discountFraction float64, purityGrades []int) model.PriceTable {
	buy999 := BuyPricePerGram999(spotPricePerGram, exchangeRate, discountFraction)

	grades := make([]int, len(purityGrades))
	copy(grades, purityGrades)
	sort.Sort(sort.Reverse(sort.IntSlice(grades)))

	table := make(model.PriceTable, len(grades))
	for i, grade := range grades {
		table[i] = model.PriceLine{
			Grade:        grade,
			PricePerGram: buy999.Mul(decimal.NewFromInt(int64(grade))).Div(pureGrade),
		}
	}

	return table
}

// PerGram converts a price per troy ounce into a price per gram.
func PerGram(pricePerTroyOunce float64) float64 {
	return pricePerTroyOunce / TroyOunceGrams
}
