package kernel

import (
	"fmt"
	"math"

	"urbanmart/internal/pkg/errs"
	"urbanmart/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or ZeroMoney constructors")

// Money is an immutable monetary amount in the store currency, kept rounded
// to two decimal places. All order pricing arithmetic goes through Money so
// every persisted and reported value carries the same rounding rule.
//
// Example:
//
//	price, _ := kernel.NewMoney(29.99)
//	line := price.MulQty(3)          // 89.97
//	taxed := line.MulRate(0.08)      // 7.20
type Money struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a non-negative amount.
// The amount is rounded to two decimal places on construction.
func NewMoney(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a valid monetary amount", amount))
	}

	return Money{
		amount: round2(amount),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{guard: guard.NewConstructorGuard()}
}

// Amount returns the rounded amount as a float64.
func (m Money) Amount() float64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: round2(m.amount + other.amount), guard: guard.NewConstructorGuard()}
}

// MulQty returns the amount multiplied by an item quantity.
func (m Money) MulQty(qty int) Money {
	return Money{amount: round2(m.amount * float64(qty)), guard: guard.NewConstructorGuard()}
}

// MulRate returns the amount multiplied by a fractional rate, e.g. a tax rate.
func (m Money) MulRate(rate float64) Money {
	return Money{amount: round2(m.amount * rate), guard: guard.NewConstructorGuard()}
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount > other.amount
}

// IsEqual compares two amounts after rounding.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount with two decimals.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}

// Validate returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
