package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Module identifies one of the ledgers a header can belong to.
type Module string

const (
	ModulePurchases Module = "PL"
	ModuleSales     Module = "SL"
	ModuleNominal   Module = "NL"
	ModuleCashBook  Module = "CB"
)

// Modules lists every module in registry order.
var Modules = []Module{ModulePurchases, ModuleSales, ModuleNominal, ModuleCashBook}

// ParseModule validates a module code.
func ParseModule(code string) (Module, error) {
	m := Module(code)
	if !m.Valid() {
		return "", fmt.Errorf("unknown module %q", code)
	}
	return m, nil
}

// Valid reports whether m is a known module.
func (m Module) Valid() bool {
	switch m {
	case ModulePurchases, ModuleSales, ModuleNominal, ModuleCashBook:
		return true
	}
	return false
}

// Direction is the sign applied to analysis values when they are posted to the
// nominal ledger. The control posting always carries the opposite sign.
func (m Module) Direction() decimal.Decimal {
	switch m {
	case ModuleSales, ModuleCashBook:
		return decimal.NewFromInt(-1)
	default:
		return decimal.NewFromInt(1)
	}
}

// HasControlAccount reports whether analysis lines are balanced by a control posting.
// Journals balance among their own lines.
func (m Module) HasControlAccount() bool {
	return m != ModuleNominal
}

// VatType marks a VAT ledger entry as input (purchases) or output (sales) tax.
type VatType string

const (
	VatInput  VatType = "i"
	VatOutput VatType = "o"
)

// Valid reports whether v is a known VAT type.
func (v VatType) Valid() bool {
	return v == VatInput || v == VatOutput
}

// PostingField tags which component of a line a posting represents.
type PostingField string

const (
	FieldGoods PostingField = "g"
	FieldVat   PostingField = "v"
	FieldTotal PostingField = "t"
)
