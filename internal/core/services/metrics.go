package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactionsPosted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "transactions_posted_total",
		Help:      "Headers committed, by module, type and operation.",
	}, []string{"module", "type", "operation"})

	submissionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "submissions_rejected_total",
		Help:      "Validation failures returned to callers, by module and error code.",
	}, []string{"module", "code"})

	postingWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "posting_writes_total",
		Help:      "Rows written to the posting ledgers, by ledger and operation.",
	}, []string{"ledger", "operation"})
)

func countWrites(ledger string, created, updated, deleted int) {
	postingWrites.WithLabelValues(ledger, "create").Add(float64(created))
	postingWrites.WithLabelValues(ledger, "update").Add(float64(updated))
	postingWrites.WithLabelValues(ledger, "delete").Add(float64(deleted))
}
