package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var inr = accounting.Accounting{Symbol: "₹", Precision: 2, Thousand: ","}

func Price(amount decimal.Decimal) string {
	return inr.FormatMoneyDecimal(amount)
}
