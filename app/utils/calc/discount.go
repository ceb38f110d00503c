package calc

import "github.com/shopspring/decimal"

func CalculateDiscount(baseTotal, discountPercent decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(discountPercent).Div(decimal.NewFromInt(100))
}

func DiscountedPrice(mrpPrice, discountPercent decimal.Decimal) decimal.Decimal {
	return mrpPrice.Sub(CalculateDiscount(mrpPrice, discountPercent)).Round(2)
}
