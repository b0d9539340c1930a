package accounting

import (
	"testing"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestWithinZeroAnd(t *testing.T) {
	tests := []struct {
		name  string
		value string
		bound string
		want  bool
	}{
		{"zero is always inside", "0", "100", true},
		{"upper bound inclusive", "100", "100", true},
		{"above positive bound", "100.01", "100", false},
		{"negative against positive bound", "-0.01", "100", false},
		{"negative bound inclusive", "-100", "-100", true},
		{"inside negative bound", "-40", "-100", true},
		{"beyond negative bound", "-100.01", "-100", false},
		{"positive against negative bound", "1", "-100", false},
		{"zero bound only allows zero", "0.01", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinZeroAnd(dec(tt.value), dec(tt.bound)))
		})
	}
}

func TestDebitsAndCredits(t *testing.T) {
	lines := []domain.Line{
		{Goods: dec("100"), Vat: dec("20")},
		{Goods: dec("-50"), Vat: dec("-10")},
	}

	debits, credits := DebitsAndCredits(lines)

	assert.True(t, debits.Equal(dec("120")))
	assert.True(t, credits.Equal(dec("-60")))
}

func TestPositiveLineSums(t *testing.T) {
	lines := []domain.Line{
		{Goods: dec("100"), Vat: dec("20")},
		{Goods: dec("-100"), Vat: dec("-20")},
	}

	goods, vat := PositiveLineSums(lines)
	assert.True(t, goods.Equal(dec("100")))
	assert.True(t, vat.Equal(dec("20")))

	goods, vat = SumLines(lines)
	assert.True(t, goods.IsZero())
	assert.True(t, vat.IsZero())
}

func TestValidatePostingsBalance(t *testing.T) {
	balanced := []domain.NominalTransaction{{Value: dec("100")}, {Value: dec("20")}, {Value: dec("-120")}}
	assert.NoError(t, ValidatePostingsBalance(balanced))

	unbalanced := []domain.NominalTransaction{{Value: dec("100")}, {Value: dec("-99.99")}}
	err := ValidatePostingsBalance(unbalanced)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "0.01")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2400.00", Format(dec("2400")))
	assert.Equal(t, "-0.10", Format(dec("-0.1")))
	assert.Equal(t, "1.01", Format(Round(dec("1.005"))))
}
