package dto

import (
	"bytes"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of every date field.
const DateLayout = "2006-01-02"

// OptionalAmount accepts a JSON number, a numeric string, an empty string or null.
// Empty and null leave Value nil.
type OptionalAmount struct {
	Value *decimal.Decimal
}

func (a *OptionalAmount) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		a.Value = nil
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(trimmed); err != nil {
		return err
	}
	a.Value = &d
	return nil
}

func (a OptionalAmount) MarshalJSON() ([]byte, error) {
	if a.Value == nil {
		return []byte("null"), nil
	}
	return a.Value.MarshalJSON()
}

// HeaderRequest is the header part of a post or repost request.
type HeaderRequest struct {
	Type       string         `json:"type" binding:"required"`
	Ref        string         `json:"ref" binding:"required,max=20"`
	Period     string         `json:"period" binding:"required,len=6,numeric"`
	Date       string         `json:"date" binding:"required,datetime=2006-01-02"`
	DueDate    *string        `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	ContactID  *int64         `json:"contactID"`
	CashBookID *int64         `json:"cashBookID"`
	VatType    string         `json:"vatType" binding:"omitempty,oneof=i o"`
	Total      OptionalAmount `json:"total" swaggertype:"string"`
}

// LineRequest is one analysis line. ID is set for lines that already exist;
// Delete removes an existing line.
type LineRequest struct {
	ID          *int64          `json:"id" binding:"required_if=Delete true"`
	Delete      bool            `json:"delete"`
	Description string          `json:"description" binding:"max=100"`
	NominalID   int64           `json:"nominalID" binding:"required_unless=Delete true"`
	VatCodeID   int64           `json:"vatCodeID" binding:"required_unless=Delete true"`
	Goods       decimal.Decimal `json:"goods"`
	Vat         decimal.Decimal `json:"vat"`
}

// MatchRequest allocates Value of the matchedTo transaction. ID identifies an
// existing match on edit.
type MatchRequest struct {
	ID          *int64           `json:"id"`
	MatchedTo   int64            `json:"matchedTo" binding:"required_without=ID"`
	Value       decimal.Decimal  `json:"value"`
	ExpectedDue *decimal.Decimal `json:"expectedDue"`
}

// PostTransactionRequest is the body of both create and edit.
type PostTransactionRequest struct {
	Header  HeaderRequest  `json:"header" binding:"required"`
	Lines   []LineRequest  `json:"lines" binding:"dive"`
	Matches []MatchRequest `json:"matches" binding:"dive"`
}

// HeaderResponse defines the data returned for a header.
type HeaderResponse struct {
	ID         int64           `json:"id"`
	Module     string          `json:"module"`
	Type       string          `json:"type"`
	Ref        string          `json:"ref"`
	Period     string          `json:"period"`
	Date       string          `json:"date"`
	DueDate    *string         `json:"dueDate,omitempty"`
	ContactID  *int64          `json:"contactID,omitempty"`
	CashBookID *int64          `json:"cashBookID,omitempty"`
	Goods      decimal.Decimal `json:"goods"`
	Vat        decimal.Decimal `json:"vat"`
	Total      decimal.Decimal `json:"total"`
	Paid       decimal.Decimal `json:"paid"`
	Due        decimal.Decimal `json:"due"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
}

// LineResponse defines the data returned for a line.
type LineResponse struct {
	ID          int64           `json:"id"`
	LineNo      int             `json:"lineNo"`
	Description string          `json:"description"`
	NominalID   int64           `json:"nominalID"`
	VatCodeID   int64           `json:"vatCodeID"`
	Goods       decimal.Decimal `json:"goods"`
	Vat         decimal.Decimal `json:"vat"`

	GoodsNominalTransactionID *int64 `json:"goodsNominalTransactionID,omitempty"`
	VatNominalTransactionID   *int64 `json:"vatNominalTransactionID,omitempty"`
	TotalNominalTransactionID *int64 `json:"totalNominalTransactionID,omitempty"`
	VatTransactionID          *int64 `json:"vatTransactionID,omitempty"`
}

// ListHeadersParams defines query parameters for listing headers.
type ListHeadersParams struct {
	Limit       int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken   *string `form:"nextToken"`
	ContactID   *int64  `form:"contactID"`
	Outstanding bool    `form:"outstanding"`
	IncludeVoid bool    `form:"includeVoid"`
}

// ListHeadersResponse wraps one page of headers.
type ListHeadersResponse struct {
	Headers   []HeaderResponse `json:"headers"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToHeaderResponse converts a domain.Header to HeaderResponse DTO.
func ToHeaderResponse(h *domain.Header) HeaderResponse {
	resp := HeaderResponse{
		ID:         h.ID,
		Module:     string(h.Module),
		Type:       string(h.Type),
		Ref:        h.Ref,
		Period:     h.Period,
		Date:       h.Date.Format(DateLayout),
		ContactID:  h.ContactID,
		CashBookID: h.CashBookID,
		Goods:      h.Goods,
		Vat:        h.Vat,
		Total:      h.Total,
		Paid:       h.Paid,
		Due:        h.Due,
		Status:     string(h.Status),
		CreatedAt:  h.CreatedAt,
		CreatedBy:  h.CreatedBy,
	}
	if h.DueDate != nil {
		due := h.DueDate.Format(DateLayout)
		resp.DueDate = &due
	}
	return resp
}

// ToHeaderResponses converts a slice of domain.Header to []HeaderResponse.
func ToHeaderResponses(headers []domain.Header) []HeaderResponse {
	responses := make([]HeaderResponse, len(headers))
	for i := range headers {
		responses[i] = ToHeaderResponse(&headers[i])
	}
	return responses
}

// ToLineResponses converts lines to []LineResponse.
func ToLineResponses(lines []domain.Line) []LineResponse {
	responses := make([]LineResponse, len(lines))
	for i, l := range lines {
		responses[i] = LineResponse{
			ID:                        l.ID,
			LineNo:                    l.LineNo,
			Description:               l.Description,
			NominalID:                 l.NominalID,
			VatCodeID:                 l.VatCodeID,
			Goods:                     l.Goods,
			Vat:                       l.Vat,
			GoodsNominalTransactionID: l.GoodsNominalTransactionID,
			VatNominalTransactionID:   l.VatNominalTransactionID,
			TotalNominalTransactionID: l.TotalNominalTransactionID,
			VatTransactionID:          l.VatTransactionID,
		}
	}
	return responses
}

// ErrorItem is one entry of a validation failure response.
type ErrorItem struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorListResponse is returned with 400 when a submission is rejected.
type ErrorListResponse struct {
	Errors []ErrorItem `json:"errors"`
}
