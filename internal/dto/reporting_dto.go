package dto

// TrialBalanceParams defines query parameters for the trial balance.
type TrialBalanceParams struct {
	Period string `form:"period" binding:"omitempty,len=6,numeric"`
}

// AgedBalancesParams defines query parameters for the aged balances report.
type AgedBalancesParams struct {
	AsOf string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}
