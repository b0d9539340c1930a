package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/SscSPs/bookkeeping_ledger/internal/middleware"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for posting and reading transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// RegisterTransactionRoutes registers the routes of every module's transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(ts)

	transactions := rg.Group("/modules/:module/transactions")
	{
		transactions.POST("", h.postTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:headerID", h.getTransaction)
		transactions.PUT("/:headerID", h.repostTransaction)
		transactions.POST("/:headerID/void", h.voidTransaction)

		transactions.GET("/:headerID/lines", h.listLines)
		transactions.GET("/:headerID/postings", h.listNominalTransactions)
		transactions.GET("/:headerID/vat", h.listVatTransactions)
		transactions.GET("/:headerID/cashbook", h.listCashBookTransactions)
		transactions.GET("/:headerID/matches", h.listMatches)
	}
}

// moduleParam parses the :module path segment, answering 400 when it is unknown.
func moduleParam(c *gin.Context) (domain.Module, bool) {
	module, err := domain.ParseModule(strings.ToUpper(c.Param("module")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return module, true
}

// headerParam parses the module and the :headerID path segment.
func headerParam(c *gin.Context) (domain.Module, int64, bool) {
	module, ok := moduleParam(c)
	if !ok {
		return "", 0, false
	}
	id, err := strconv.ParseInt(c.Param("headerID"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return "", 0, false
	}
	return module, id, true
}

// bindSubmission binds the request body and resolves it into a domain submission.
func bindSubmission(c *gin.Context, logger *slog.Logger) (domain.Submission, bool) {
	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return domain.Submission{}, false
	}
	sub, err := mapping.ToSubmission(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.Submission{}, false
	}
	return sub, true
}

// postTransaction godoc
// @Summary Post a transaction
// @Description Validates a header with its lines and matches, then writes the header, lines, postings and matches in one unit of work
// @Tags transactions
// @Accept json
// @Produce json
// @Param module path string true "Module (PL, SL, NL or CB)"
// @Param transaction body dto.PostTransactionRequest true "Header, lines and matches"
// @Success 201 {object} dto.HeaderResponse
// @Failure 400 {object} dto.ErrorListResponse "Rejected submission"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} dto.ErrorListResponse "A matched transaction changed since it was read"
// @Failure 500 {object} map[string]string "Failed to post transaction"
// @Security BearerAuth
// @Router /modules/{module}/transactions [post]
func (h *transactionHandler) postTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	module, ok := moduleParam(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	sub, ok := bindSubmission(c, logger)
	if !ok {
		return
	}

	header, err := h.transactionService.Post(c.Request.Context(), module, sub, userID)
	if err != nil {
		respondError(c, logger, err, "post transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToHeaderResponse(header))
}

// repostTransaction godoc
// @Summary Edit a transaction
// @Description Applies an edited submission; postings of untouched lines keep their ids
// @Tags transactions
// @Accept json
// @Produce json
// @Param module path string true "Module (PL, SL, NL or CB)"
// @Param headerID path int true "Transaction ID"
// @Param transaction body dto.PostTransactionRequest true "Header, line variants and matches"
// @Success 200 {object} dto.HeaderResponse
// @Failure 400 {object} dto.ErrorListResponse "Rejected submission"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} dto.ErrorListResponse "A matched transaction changed since it was read"
// @Failure 500 {object} map[string]string "Failed to edit transaction"
// @Security BearerAuth
// @Router /modules/{module}/transactions/{headerID} [put]
func (h *transactionHandler) repostTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	module, headerID, ok := headerParam(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	sub, ok := bindSubmission(c, logger)
	if !ok {
		return
	}

	header, err := h.transactionService.Repost(c.Request.Context(), module, headerID, sub, userID)
	if err != nil {
		respondError(c, logger, err, "edit transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToHeaderResponse(header))
}

// voidTransaction godoc
// @Summary Void a transaction
// @Description Removes the lines, postings and matches of a transaction and restores its counterparties
// @Tags transactions
// @Produce json
// @Param module path string true "Module (PL, SL, NL or CB)"
// @Param headerID path int true "Transaction ID"
// @Success 200 {object} dto.HeaderResponse
// @Failure 400 {object} map[string]string "Invalid module or ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to void transaction"
// @Security BearerAuth
// @Router /modules/{module}/transactions/{headerID}/void [post]
func (h *transactionHandler) voidTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	module, headerID, ok := headerParam(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	header, err := h.transactionService.Void(c.Request.Context(), module, headerID, userID)
	if err != nil {
		respondError(c, logger, err, "void transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToHeaderResponse(header))
}

// getTransaction godoc
// @Summary Get a transaction header
// @Tags transactions
// @Produce json
// @Param module path string true "Module (PL, SL, NL or CB)"
// @Param headerID path int true "Transaction ID"
// @Success 200 {object} dto.HeaderResponse
// @Failure 400 {object} map[string]string "Invalid module or ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /modules/{module}/transactions/{headerID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	module, headerID, ok := headerParam(c)
	if !ok {
		return
	}

	header, err := h.transactionService.GetHeader(c.Request.Context(), module, headerID)
	if err != nil {
		respondError(c, logger, err, "get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToHeaderResponse(header))
}

// listTransactions godoc
// @Summary List transaction headers
// @Description Pages through headers of a module ordered by date then ID
// @Tags transactions
// @Produce json
// @Param module path string true "Module (PL, SL, NL or CB)"
// @Param limit query int false "Page size" default(20) minimum(1) maximum(100)
// @Param nextToken query string false "Token from the previous page"
// @Param contactID query int false "Only this contact"
// @Param outstanding query bool false "Only headers with a non-zero due"
// @Param includeVoid query bool false "Include void headers"
// @Success 200 {object} dto.ListHeadersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /modules/{module}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	module, ok := moduleParam(c)
	if !ok {
		return
	}
	var params dto.ListHeadersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.transactionService.ListHeaders(c.Request.Context(), module, params)
	if err != nil {
		respondError(c, logger, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listLines godoc
// @Summary List the lines of a transaction
// @Tags transactions
// @Produce json
// @Param module path string true "Module (PL, SL, NL or CB)"
// @Param headerID path int true "Transaction ID"
// @Success 200 {array} dto.LineResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /modules/{module}/transactions/{headerID}/lines [get]
func (h *transactionHandler) listLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	module, headerID, ok := headerParam(c)
	if !ok {
		return
	}
	lines, err := h.transactionService.ListLines(c.Request.Context(), module, headerID)
	if err != nil {
		respondError(c, logger, err, "list lines")
		return
	}
	c.JSON(http.StatusOK, dto.ToLineResponses(lines))
}

// listNominalTransactions godoc
// @Summary List the nominal postings of a transaction
// @Tags transactions
// @Produce json
// @Param module path string true "Module (PL, SL, NL or CB)"
// @Param headerID path int true "Transaction ID"
// @Success 200 {array} domain.NominalTransaction
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /modules/{module}/transactions/{headerID}/postings [get]
func (h *transactionHandler) listNominalTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	module, headerID, ok := headerParam(c)
	if !ok {
		return
	}
	postings, err := h.transactionService.ListNominalTransactions(c.Request.Context(), module, headerID)
	if err != nil {
		respondError(c, logger, err, "list nominal transactions")
		return
	}
	c.JSON(http.StatusOK, postings)
}

// listVatTransactions godoc
// @Summary List the VAT transactions of a transaction
// @Tags transactions
// @Produce json
// @Param module path string true "Module (PL, SL, NL or CB)"
// @Param headerID path int true "Transaction ID"
// @Success 200 {array} domain.VatTransaction
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /modules/{module}/transactions/{headerID}/vat [get]
func (h *transactionHandler) listVatTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	module, headerID, ok := headerParam(c)
	if !ok {
		return
	}
	vats, err := h.transactionService.ListVatTransactions(c.Request.Context(), module, headerID)
	if err != nil {
		respondError(c, logger, err, "list vat transactions")
		return
	}
	c.JSON(http.StatusOK, vats)
}

// listCashBookTransactions godoc
// @Summary List the cash book entries of a transaction
// @Tags transactions
// @Produce json
// @Param module path string true "Module (PL, SL, NL or CB)"
// @Param headerID path int true "Transaction ID"
// @Success 200 {array} domain.CashBookTransaction
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /modules/{module}/transactions/{headerID}/cashbook [get]
func (h *transactionHandler) listCashBookTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	module, headerID, ok := headerParam(c)
	if !ok {
		return
	}
	entries, err := h.transactionService.ListCashBookTransactions(c.Request.Context(), module, headerID)
	if err != nil {
		respondError(c, logger, err, "list cash book transactions")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// listMatches godoc
// @Summary List the matches on either side of a transaction
// @Tags transactions
// @Produce json
// @Param module path string true "Module (PL, SL, NL or CB)"
// @Param headerID path int true "Transaction ID"
// @Success 200 {array} domain.Match
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /modules/{module}/transactions/{headerID}/matches [get]
func (h *transactionHandler) listMatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	module, headerID, ok := headerParam(c)
	if !ok {
		return
	}
	matches, err := h.transactionService.ListMatches(c.Request.Context(), module, headerID)
	if err != nil {
		respondError(c, logger, err, "list matches")
		return
	}
	c.JSON(http.StatusOK, matches)
}
