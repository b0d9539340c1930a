package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/SscSPs/bookkeeping_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to ledger reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              time.Now,
	}
}

// RegisterReportingRoutes registers routes related to ledger reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/aged/:module", h.getAgedBalances)
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Nets nominal postings per nominal, optionally for one period
// @Tags reports
// @Produce json
// @Param period query string false "Period (YYYYPP)"
// @Success 200 {object} domain.TrialBalance
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.TrialBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period. Use YYYYPP"})
		return
	}

	logger = logger.With(slog.String("period", params.Period))
	logger.Info("Received request to generate trial balance report")

	report, err := h.reportingService.TrialBalance(c.Request.Context(), params.Period)
	if err != nil {
		respondError(c, logger, err, "generate trial balance")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getAgedBalances godoc
// @Summary Generate aged balances report
// @Description Groups outstanding purchase or sales headers by contact and age
// @Tags reports
// @Produce json
// @Param module path string true "Module (PL, SL, NL or CB)"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.AgedBalanceReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/aged/{module} [get]
func (h *reportingHandler) getAgedBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	module, ok := moduleParam(c)
	if !ok {
		return
	}

	var params dto.AgedBalancesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	asOf := h.now().UTC().Truncate(24 * time.Hour)
	if params.AsOf != "" {
		// binding already checked the layout
		asOf, _ = time.Parse(dto.DateLayout, params.AsOf)
	}

	logger = logger.With(slog.String("module", string(module)), slog.String("asOf", asOf.Format(dto.DateLayout)))
	logger.Info("Received request to generate aged balances report")

	report, err := h.reportingService.AgedBalances(c.Request.Context(), module, asOf)
	if err != nil {
		respondError(c, logger, err, "generate aged balances")
		return
	}
	c.JSON(http.StatusOK, report)
}
