package entities

import "github.com/shopspring/decimal"

const moneyScale = 2

// SumTaskPrices adds the estimated prices of tasks with cent precision.
func SumTaskPrices(tasks []Task) float64 {
	sum := decimal.Zero
	for _, t := range tasks {
		sum = sum.Add(decimal.NewFromFloat(t.EstimatedPrice))
	}
	return sum.Round(moneyScale).InexactFloat64()
}

// TaxBreakdown computes tax and total for a subtotal at the given rate.
func TaxBreakdown(subtotal, rate float64) (tax float64, total float64) {
	sub := decimal.NewFromFloat(subtotal).Round(moneyScale)
	t := sub.Mul(decimal.NewFromFloat(rate)).Round(moneyScale)
	return t.InexactFloat64(), sub.Add(t).InexactFloat64()
}

// RoundMoney rounds v to cents.
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(moneyScale).InexactFloat64()
}
