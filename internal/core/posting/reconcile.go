package posting

import "github.com/SscSPs/bookkeeping_ledger/internal/core/domain"

// Plan lists the writes that turn the stored rows into the derived rows.
// Updated and unchanged rows keep the id of the stored row they replace.
type Plan[T any] struct {
	Create    []T
	Update    []T
	Delete    []int64
	Unchanged []T
}

// HasWrites reports whether applying the plan touches storage.
func (p Plan[T]) HasWrites() bool {
	return len(p.Create) > 0 || len(p.Update) > 0 || len(p.Delete) > 0
}

// Final returns every row that survives the plan. Create must already carry
// the ids assigned on insert.
func (p Plan[T]) Final() []T {
	out := make([]T, 0, len(p.Unchanged)+len(p.Update)+len(p.Create))
	out = append(out, p.Unchanged...)
	out = append(out, p.Update...)
	out = append(out, p.Create...)
	return out
}

type keyed[T any, K comparable] struct {
	key   func(T) K
	id    func(T) int64
	setID func(*T, int64)
	same  func(a, b T) bool
}

func (k keyed[T, K]) plan(existing, desired []T) Plan[T] {
	byKey := make(map[K]T, len(existing))
	var p Plan[T]
	for _, e := range existing {
		if _, dup := byKey[k.key(e)]; dup {
			p.Delete = append(p.Delete, k.id(e))
			continue
		}
		byKey[k.key(e)] = e
	}

	for _, d := range desired {
		prev, ok := byKey[k.key(d)]
		if !ok {
			k.setID(&d, 0)
			p.Create = append(p.Create, d)
			continue
		}
		delete(byKey, k.key(d))
		k.setID(&d, k.id(prev))
		if k.same(prev, d) {
			p.Unchanged = append(p.Unchanged, d)
		} else {
			p.Update = append(p.Update, d)
		}
	}

	// remaining stored rows in stored order
	for _, e := range existing {
		if rest, ok := byKey[k.key(e)]; ok && k.id(rest) == k.id(e) {
			p.Delete = append(p.Delete, k.id(e))
		}
	}
	return p
}

var nominalKeys = keyed[domain.NominalTransaction, domain.Slot]{
	key:   func(n domain.NominalTransaction) domain.Slot { return n.Slot() },
	id:    func(n domain.NominalTransaction) int64 { return n.ID },
	setID: func(n *domain.NominalTransaction, id int64) { n.ID = id },
	same: func(a, b domain.NominalTransaction) bool {
		return a.Key == b.Key && a.NominalID == b.NominalID && a.Value.Equal(b.Value) &&
			a.Ref == b.Ref && a.Period == b.Period && a.Date.Equal(b.Date) &&
			a.Type == b.Type && a.Field == b.Field
	},
}

var vatKeys = keyed[domain.VatTransaction, int64]{
	key:   func(v domain.VatTransaction) int64 { return v.Key.LineID },
	id:    func(v domain.VatTransaction) int64 { return v.ID },
	setID: func(v *domain.VatTransaction, id int64) { v.ID = id },
	same: func(a, b domain.VatTransaction) bool {
		return a.Key == b.Key && a.Ref == b.Ref && a.Period == b.Period && a.Date.Equal(b.Date) &&
			a.Field == b.Field && a.TranType == b.TranType && a.VatType == b.VatType &&
			a.VatCodeID == b.VatCodeID && a.VatRate.Equal(b.VatRate) &&
			a.Goods.Equal(b.Goods) && a.Vat.Equal(b.Vat)
	},
}

var cashBookKeys = keyed[domain.CashBookTransaction, domain.Slot]{
	key:   func(c domain.CashBookTransaction) domain.Slot { return c.Slot() },
	id:    func(c domain.CashBookTransaction) int64 { return c.ID },
	setID: func(c *domain.CashBookTransaction, id int64) { c.ID = id },
	same: func(a, b domain.CashBookTransaction) bool {
		return a.Key == b.Key && a.CashBookID == b.CashBookID && a.Value.Equal(b.Value) &&
			a.Ref == b.Ref && a.Period == b.Period && a.Date.Equal(b.Date) &&
			a.Type == b.Type && a.Field == b.Field
	},
}

// ReconcileNominal matches postings by (line, field).
func ReconcileNominal(existing, desired []domain.NominalTransaction) Plan[domain.NominalTransaction] {
	return nominalKeys.plan(existing, desired)
}

// ReconcileVat matches VAT transactions by line.
func ReconcileVat(existing, desired []domain.VatTransaction) Plan[domain.VatTransaction] {
	return vatKeys.plan(existing, desired)
}

// ReconcileCashBook matches cash book entries by (line, field).
func ReconcileCashBook(existing, desired []domain.CashBookTransaction) Plan[domain.CashBookTransaction] {
	return cashBookKeys.plan(existing, desired)
}

// Wire sets each line's back-references from the final posting set, looked up
// by (line, field). It returns the wired lines and those whose references changed.
func Wire(lines []domain.Line, nominals []domain.NominalTransaction, vats []domain.VatTransaction) (wired, changed []domain.Line) {
	bySlot := make(map[domain.Slot]int64, len(nominals))
	for _, n := range nominals {
		bySlot[n.Slot()] = n.ID
	}
	byLine := make(map[int64]int64, len(vats))
	for _, v := range vats {
		byLine[v.Key.LineID] = v.ID
	}

	lookup := func(lineID int64, field domain.PostingField) *int64 {
		if id, ok := bySlot[domain.Slot{LineID: lineID, Field: field}]; ok {
			return &id
		}
		return nil
	}

	wired = make([]domain.Line, 0, len(lines))
	for _, l := range lines {
		next := l
		next.GoodsNominalTransactionID = lookup(l.ID, domain.FieldGoods)
		next.VatNominalTransactionID = lookup(l.ID, domain.FieldVat)
		next.TotalNominalTransactionID = lookup(l.ID, domain.FieldTotal)
		next.VatTransactionID = nil
		if id, ok := byLine[l.ID]; ok {
			next.VatTransactionID = &id
		}
		if !sameRef(l.GoodsNominalTransactionID, next.GoodsNominalTransactionID) ||
			!sameRef(l.VatNominalTransactionID, next.VatNominalTransactionID) ||
			!sameRef(l.TotalNominalTransactionID, next.TotalNominalTransactionID) ||
			!sameRef(l.VatTransactionID, next.VatTransactionID) {
			changed = append(changed, next)
		}
		wired = append(wired, next)
	}
	return wired, changed
}

func sameRef(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
