package domain

// Thresholds used across the assistant and the analytics path.
//
// Several concerns have two values on purpose: the single-client chat path and
// the cross-client or insight paths were tuned independently. Keep them apart
// unless the behaviour change is intended.
const (
	// ExcessCashRatio is the cash share above which a single client gets the
	// excess-cash warning. Strictly greater than.
	ExcessCashRatio = 0.20

	// ComparisonCashRatio is the cash share above which a client is listed in
	// the cross-client cash ranking. Strictly greater than.
	ComparisonCashRatio = 0.15

	// TargetCashReserveRatio is the cash share kept back when suggesting how
	// much idle cash to deploy.
	TargetCashReserveRatio = 0.10

	// InflationDragRate is the assumed annual purchasing-power loss on cash.
	InflationDragRate = 0.053

	// RebalanceConcentrationLimit flags a fund in the chat rebalancing reply.
	RebalanceConcentrationLimit = 0.30

	// InsightConcentrationLimit flags a fund in the insight generator.
	InsightConcentrationLimit = 0.35

	// FullAllocationWeight is the weight every portfolio should add up to.
	FullAllocationWeight = 100.0

	// RiskFreeRate is the annual percent used for Sharpe ratios.
	RiskFreeRate = 6.5

	// DCAMonths is the horizon used when suggesting staged deployment of cash.
	DCAMonths = 6

	// LowYTDReturn marks a year-to-date return that deserves a review.
	LowYTDReturn = 5.0
)

// Chat-path risk buckets keyed off year-to-date return.
const (
	HighReturnBracket   = 10.0
	MediumReturnBracket = 5.0
)
