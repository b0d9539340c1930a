package mapping

import (
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/models"
)

// ToModelHeader converts a domain Header to a model Header
func ToModelHeader(d domain.Header) models.Header {
	return models.Header{
		ID:          d.ID,
		Module:      string(d.Module),
		Type:        string(d.Type),
		Ref:         d.Ref,
		Period:      d.Period,
		Date:        d.Date,
		DueDate:     d.DueDate,
		ContactID:   d.ContactID,
		CashBookID:  d.CashBookID,
		VatType:     string(d.VatType),
		Goods:       d.Goods,
		Vat:         d.Vat,
		Total:       d.Total,
		Paid:        d.Paid,
		Due:         d.Due,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainHeader converts a model Header to a domain Header
func ToDomainHeader(m models.Header) domain.Header {
	return domain.Header{
		ID:          m.ID,
		Module:      domain.Module(m.Module),
		Type:        domain.TransactionType(m.Type),
		Ref:         m.Ref,
		Period:      m.Period,
		Date:        m.Date,
		DueDate:     m.DueDate,
		ContactID:   m.ContactID,
		CashBookID:  m.CashBookID,
		VatType:     domain.VatType(m.VatType),
		Goods:       m.Goods,
		Vat:         m.Vat,
		Total:       m.Total,
		Paid:        m.Paid,
		Due:         m.Due,
		Status:      domain.HeaderStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLine converts a domain Line to a model Line
func ToModelLine(d domain.Line) models.Line {
	return models.Line{
		ID:                        d.ID,
		HeaderID:                  d.HeaderID,
		LineNo:                    d.LineNo,
		Description:               d.Description,
		NominalID:                 d.NominalID,
		VatCodeID:                 d.VatCodeID,
		Goods:                     d.Goods,
		Vat:                       d.Vat,
		GoodsNominalTransactionID: d.GoodsNominalTransactionID,
		VatNominalTransactionID:   d.VatNominalTransactionID,
		TotalNominalTransactionID: d.TotalNominalTransactionID,
		VatTransactionID:          d.VatTransactionID,
	}
}

// ToDomainLine converts a model Line to a domain Line
func ToDomainLine(m models.Line) domain.Line {
	return domain.Line{
		ID:                        m.ID,
		HeaderID:                  m.HeaderID,
		LineNo:                    m.LineNo,
		Description:               m.Description,
		NominalID:                 m.NominalID,
		VatCodeID:                 m.VatCodeID,
		Goods:                     m.Goods,
		Vat:                       m.Vat,
		GoodsNominalTransactionID: m.GoodsNominalTransactionID,
		VatNominalTransactionID:   m.VatNominalTransactionID,
		TotalNominalTransactionID: m.TotalNominalTransactionID,
		VatTransactionID:          m.VatTransactionID,
	}
}

// ToModelNominalTransaction converts a domain NominalTransaction to a model NominalTransaction
func ToModelNominalTransaction(d domain.NominalTransaction) models.NominalTransaction {
	return models.NominalTransaction{
		ID:        d.ID,
		Module:    string(d.Key.Module),
		HeaderID:  d.Key.HeaderID,
		LineID:    d.Key.LineID,
		NominalID: d.NominalID,
		Value:     d.Value,
		Ref:       d.Ref,
		Period:    d.Period,
		Date:      d.Date,
		Type:      string(d.Type),
		Field:     string(d.Field),
	}
}

// ToDomainNominalTransaction converts a model NominalTransaction to a domain NominalTransaction
func ToDomainNominalTransaction(m models.NominalTransaction) domain.NominalTransaction {
	return domain.NominalTransaction{
		ID:        m.ID,
		Key:       domain.LedgerKey{Module: domain.Module(m.Module), HeaderID: m.HeaderID, LineID: m.LineID},
		NominalID: m.NominalID,
		Value:     m.Value,
		Ref:       m.Ref,
		Period:    m.Period,
		Date:      m.Date,
		Type:      domain.TransactionType(m.Type),
		Field:     domain.PostingField(m.Field),
	}
}

// ToModelVatTransaction converts a domain VatTransaction to a model VatTransaction
func ToModelVatTransaction(d domain.VatTransaction) models.VatTransaction {
	return models.VatTransaction{
		ID:        d.ID,
		Module:    string(d.Key.Module),
		HeaderID:  d.Key.HeaderID,
		LineID:    d.Key.LineID,
		Ref:       d.Ref,
		Period:    d.Period,
		Date:      d.Date,
		Field:     string(d.Field),
		TranType:  string(d.TranType),
		VatType:   string(d.VatType),
		VatCodeID: d.VatCodeID,
		VatRate:   d.VatRate,
		Goods:     d.Goods,
		Vat:       d.Vat,
	}
}

// ToDomainVatTransaction converts a model VatTransaction to a domain VatTransaction
func ToDomainVatTransaction(m models.VatTransaction) domain.VatTransaction {
	return domain.VatTransaction{
		ID:        m.ID,
		Key:       domain.LedgerKey{Module: domain.Module(m.Module), HeaderID: m.HeaderID, LineID: m.LineID},
		Ref:       m.Ref,
		Period:    m.Period,
		Date:      m.Date,
		Field:     domain.PostingField(m.Field),
		TranType:  domain.TransactionType(m.TranType),
		VatType:   domain.VatType(m.VatType),
		VatCodeID: m.VatCodeID,
		VatRate:   m.VatRate,
		Goods:     m.Goods,
		Vat:       m.Vat,
	}
}

// ToModelCashBookTransaction converts a domain CashBookTransaction to a model CashBookTransaction
func ToModelCashBookTransaction(d domain.CashBookTransaction) models.CashBookTransaction {
	return models.CashBookTransaction{
		ID:         d.ID,
		Module:     string(d.Key.Module),
		HeaderID:   d.Key.HeaderID,
		LineID:     d.Key.LineID,
		CashBookID: d.CashBookID,
		Value:      d.Value,
		Ref:        d.Ref,
		Period:     d.Period,
		Date:       d.Date,
		Type:       string(d.Type),
		Field:      string(d.Field),
	}
}

// ToDomainCashBookTransaction converts a model CashBookTransaction to a domain CashBookTransaction
func ToDomainCashBookTransaction(m models.CashBookTransaction) domain.CashBookTransaction {
	return domain.CashBookTransaction{
		ID:         m.ID,
		Key:        domain.LedgerKey{Module: domain.Module(m.Module), HeaderID: m.HeaderID, LineID: m.LineID},
		CashBookID: m.CashBookID,
		Value:      m.Value,
		Ref:        m.Ref,
		Period:     m.Period,
		Date:       m.Date,
		Type:       domain.TransactionType(m.Type),
		Field:      domain.PostingField(m.Field),
	}
}

// ToModelMatch converts a domain Match to a model Match
func ToModelMatch(d domain.Match) models.Match {
	return models.Match{
		ID:          d.ID,
		Module:      string(d.Module),
		MatchedByID: d.MatchedByID,
		MatchedToID: d.MatchedToID,
		Value:       d.Value,
		Period:      d.Period,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainMatch converts a model Match to a domain Match
func ToDomainMatch(m models.Match) domain.Match {
	return domain.Match{
		ID:          m.ID,
		Module:      domain.Module(m.Module),
		MatchedByID: m.MatchedByID,
		MatchedToID: m.MatchedToID,
		Value:       m.Value,
		Period:      m.Period,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainSlice maps every row with fn.
func ToDomainSlice[M, D any](rows []M, fn func(M) D) []D {
	out := make([]D, 0, len(rows))
	for _, r := range rows {
		out = append(out, fn(r))
	}
	return out
}

func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields(d)
}

func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields(m)
}
