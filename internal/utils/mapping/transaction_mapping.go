package mapping

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
)

// ToSubmission converts a bound request into a domain submission. Lines are
// resolved into their New, Existing and Deleted variants here so nothing
// downstream inspects id or delete flags.
func ToSubmission(req dto.PostTransactionRequest) (domain.Submission, error) {
	date, err := time.Parse(dto.DateLayout, req.Header.Date)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("invalid date %q: %w", req.Header.Date, err)
	}

	sub := domain.Submission{
		Header: domain.HeaderInput{
			Type:       domain.TransactionType(strings.ToLower(req.Header.Type)),
			Ref:        strings.TrimSpace(req.Header.Ref),
			Period:     req.Header.Period,
			Date:       date,
			ContactID:  req.Header.ContactID,
			CashBookID: req.Header.CashBookID,
			VatType:    domain.VatType(req.Header.VatType),
			Total:      req.Header.Total.Value,
		},
	}
	if req.Header.DueDate != nil && *req.Header.DueDate != "" {
		due, err := time.Parse(dto.DateLayout, *req.Header.DueDate)
		if err != nil {
			return domain.Submission{}, fmt.Errorf("invalid due date %q: %w", *req.Header.DueDate, err)
		}
		sub.Header.DueDate = &due
	}

	for _, l := range req.Lines {
		sub.Lines = append(sub.Lines, ToLineInput(l))
	}
	for _, m := range req.Matches {
		sub.Matches = append(sub.Matches, domain.MatchInput{
			ID:          m.ID,
			MatchedToID: m.MatchedTo,
			Value:       m.Value,
			ExpectedDue: m.ExpectedDue,
		})
	}
	return sub, nil
}

// ToLineInput picks the variant for one submitted line.
func ToLineInput(l dto.LineRequest) domain.LineInput {
	fields := domain.LineFields{
		Description: l.Description,
		NominalID:   l.NominalID,
		VatCodeID:   l.VatCodeID,
		Goods:       l.Goods,
		Vat:         l.Vat,
	}
	switch {
	case l.ID != nil && l.Delete:
		return domain.DeletedLine(*l.ID)
	case l.ID != nil:
		return domain.ExistingLine(*l.ID, fields)
	default:
		return domain.NewLine(fields)
	}
}
