package service

import "github.com/prometheus/client_golang/prometheus"

var (
	purchasesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "giftspin_purchases_total",
			Help: "Purchases recorded",
		},
	)

	spinsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giftspin_spins_total",
			Help: "Wheel spins by outcome",
		},
		[]string{"outcome"}, // win | try_again
	)

	rewardsIssuedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giftspin_rewards_issued_total",
			Help: "Rewards issued by type",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(purchasesTotal, spinsTotal, rewardsIssuedTotal)
}
