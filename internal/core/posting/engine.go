// Package posting derives nominal, VAT and cash book postings from a header and
// its lines, and reconciles a derived set against what is already stored.
package posting

import (
	"errors"
	"fmt"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Lines of a payment header that has no analysis: the bank side and the control side.
const (
	PaymentBankLine    int64 = 1
	PaymentControlLine int64 = 2
)

var (
	ErrUnsavedLine     = errors.New("line has no id")
	ErrMissingVatRate  = errors.New("no vat rate for line")
	ErrMissingAccount  = errors.New("posting account not configured")
	ErrUnknownType     = errors.New("unknown transaction type")
	ErrUnbalancedPosts = errors.New("derived postings do not balance")
)

// Accounts are the nominals a header posts against, resolved from the module
// registry and the header's cash book.
type Accounts struct {
	ControlNominalID int64
	VatNominalID     int64
	BankNominalID    int64
	CashBookID       int64
}

// Set is every posting derived from one header.
type Set struct {
	Nominal  []domain.NominalTransaction
	Vat      []domain.VatTransaction
	CashBook []domain.CashBookTransaction
}

// Derive builds the postings for h and its final, persisted lines. Lines must be
// in line number order. rates maps vat code id to the rate captured now.
func Derive(h domain.Header, lines []domain.Line, accts Accounts, rates map[int64]decimal.Decimal) (Set, error) {
	info, ok := domain.LookupType(h.Type)
	if !ok {
		return Set{}, fmt.Errorf("%w: %q", ErrUnknownType, h.Type)
	}

	var set Set
	if info.Payment && len(lines) == 0 {
		if err := derivePayment(&set, h, accts); err != nil {
			return Set{}, err
		}
	} else {
		if err := deriveLines(&set, h, info, lines, accts, rates); err != nil {
			return Set{}, err
		}
	}

	if err := accounting.ValidatePostingsBalance(set.Nominal); err != nil {
		return Set{}, fmt.Errorf("%w: header %d: %v", ErrUnbalancedPosts, h.ID, err)
	}
	return set, nil
}

func deriveLines(set *Set, h domain.Header, info domain.TypeInfo, lines []domain.Line, accts Accounts, rates map[int64]decimal.Decimal) error {
	dir := h.Module.Direction()
	vatType := info.VatType
	if vatType == "" {
		vatType = h.VatType
	}
	if vatType == "" {
		vatType = domain.VatInput
	}

	controlID := accts.ControlNominalID
	if h.Module == domain.ModuleCashBook {
		controlID = accts.BankNominalID
	}
	if h.Module.HasControlAccount() && controlID == 0 && len(lines) > 0 {
		return fmt.Errorf("%w: control account for module %s", ErrMissingAccount, h.Module)
	}
	if h.Module == domain.ModuleCashBook && accts.CashBookID == 0 && len(lines) > 0 {
		return fmt.Errorf("%w: cash book for header %d", ErrMissingAccount, h.ID)
	}

	for _, l := range lines {
		if l.ID == 0 {
			return fmt.Errorf("%w: line %d", ErrUnsavedLine, l.LineNo)
		}
		rate, ok := rates[l.VatCodeID]
		if !ok {
			return fmt.Errorf("%w: line %d vat code %d", ErrMissingVatRate, l.LineNo, l.VatCodeID)
		}

		key := h.Key(l.ID)
		if !l.Goods.IsZero() {
			set.Nominal = append(set.Nominal, nominal(h, key, l.NominalID, l.Goods.Mul(dir), domain.FieldGoods))
		}
		if !l.Vat.IsZero() {
			if accts.VatNominalID == 0 {
				return fmt.Errorf("%w: vat account for module %s", ErrMissingAccount, h.Module)
			}
			set.Nominal = append(set.Nominal, nominal(h, key, accts.VatNominalID, l.Vat.Mul(dir), domain.FieldVat))
		}
		if h.Module.HasControlAccount() && !l.IsZero() {
			value := l.Goods.Add(l.Vat).Mul(dir).Neg()
			set.Nominal = append(set.Nominal, nominal(h, key, controlID, value, domain.FieldTotal))
			if h.Module == domain.ModuleCashBook {
				set.CashBook = append(set.CashBook, cashBook(h, key, accts.CashBookID, value, domain.FieldTotal))
			}
		}

		set.Vat = append(set.Vat, domain.VatTransaction{
			Key:       key,
			Ref:       h.Ref,
			Period:    h.Period,
			Date:      h.Date,
			Field:     domain.FieldVat,
			TranType:  h.Type,
			VatType:   vatType,
			VatCodeID: l.VatCodeID,
			VatRate:   rate,
			Goods:     l.Goods,
			Vat:       l.Vat,
		})
	}
	return nil
}

func derivePayment(set *Set, h domain.Header, accts Accounts) error {
	if h.Total.IsZero() {
		return nil
	}
	if accts.BankNominalID == 0 || accts.ControlNominalID == 0 {
		return fmt.Errorf("%w: bank and control accounts for module %s", ErrMissingAccount, h.Module)
	}
	value := h.Total.Mul(h.Module.Direction())
	set.Nominal = append(set.Nominal,
		nominal(h, h.Key(PaymentBankLine), accts.BankNominalID, value, domain.FieldTotal),
		nominal(h, h.Key(PaymentControlLine), accts.ControlNominalID, value.Neg(), domain.FieldTotal),
	)
	set.CashBook = append(set.CashBook, cashBook(h, h.Key(PaymentBankLine), accts.CashBookID, value, domain.FieldTotal))
	return nil
}

func nominal(h domain.Header, key domain.LedgerKey, nominalID int64, value decimal.Decimal, field domain.PostingField) domain.NominalTransaction {
	return domain.NominalTransaction{
		Key:       key,
		NominalID: nominalID,
		Value:     value,
		Ref:       h.Ref,
		Period:    h.Period,
		Date:      h.Date,
		Type:      h.Type,
		Field:     field,
	}
}

func cashBook(h domain.Header, key domain.LedgerKey, cashBookID int64, value decimal.Decimal, field domain.PostingField) domain.CashBookTransaction {
	return domain.CashBookTransaction{
		Key:        key,
		CashBookID: cashBookID,
		Value:      value,
		Ref:        h.Ref,
		Period:     h.Period,
		Date:       h.Date,
		Type:       h.Type,
		Field:      field,
	}
}
