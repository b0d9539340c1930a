package accounting

import (
	"fmt"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Places is the number of decimal places every stored amount carries.
const Places = 2

// Round fixes d to currency precision.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Format renders d with exactly two decimal places.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Places)
}

// WithinZeroAnd reports whether v lies in the closed interval between 0 and bound,
// whichever sign bound has.
func WithinZeroAnd(v, bound decimal.Decimal) bool {
	if bound.IsNegative() {
		return v.GreaterThanOrEqual(bound) && v.LessThanOrEqual(decimal.Zero)
	}
	return v.GreaterThanOrEqual(decimal.Zero) && v.LessThanOrEqual(bound)
}

// DebitsAndCredits splits line values into the sum of positive values and the
// sum of negative values. Goods and vat are considered separately.
func DebitsAndCredits(lines []domain.Line) (debits, credits decimal.Decimal) {
	for _, l := range lines {
		for _, v := range []decimal.Decimal{l.Goods, l.Vat} {
			if v.IsPositive() {
				debits = debits.Add(v)
			} else {
				credits = credits.Add(v)
			}
		}
	}
	return debits, credits
}

// SumLines returns the goods and vat totals of lines.
func SumLines(lines []domain.Line) (goods, vat decimal.Decimal) {
	for _, l := range lines {
		goods = goods.Add(l.Goods)
		vat = vat.Add(l.Vat)
	}
	return goods, vat
}

// PositiveLineSums returns the goods and vat totals of the debit side only.
func PositiveLineSums(lines []domain.Line) (goods, vat decimal.Decimal) {
	for _, l := range lines {
		if l.Goods.IsPositive() {
			goods = goods.Add(l.Goods)
		}
		if l.Vat.IsPositive() {
			vat = vat.Add(l.Vat)
		}
	}
	return goods, vat
}

// ValidatePostingsBalance checks that the postings of one header net to zero.
func ValidatePostingsBalance(postings []domain.NominalTransaction) error {
	sum := decimal.Zero
	for _, p := range postings {
		sum = sum.Add(p.Value)
	}
	if !sum.IsZero() {
		return fmt.Errorf("postings do not balance to zero: sum is %s", sum.String())
	}
	return nil
}
