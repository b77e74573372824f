package domain

import (
	"math"
	"time"
)

// Probability bounds and status cut-offs for goal projections.
const (
	probabilityScale   = 80.0
	minProbability     = 5.0
	maxProbability     = 99.0
	aheadProbability   = 90.0
	onTrackProbability = 65.0
	daysPerYear        = 365.25
)

// ProjectedValue projects the goal's current amount and monthly contribution to
// its target date at the given annual percent return.
func ProjectedValue(g *Goal, annualReturn float64, now time.Time) float64 {
	months := g.MonthsRemaining(now)
	if months == 0 {
		return g.CurrentAmount
	}

	years := g.TargetDate.Sub(now).Hours() / 24 / daysPerYear
	lump := g.CurrentAmount * math.Pow(1+annualReturn/100, years)

	monthlyRate := annualReturn / 100 / 12
	contributions := g.MonthlyContribution * float64(months)

	if monthlyRate > 0 {
		contributions = g.MonthlyContribution * (math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate
	}

	return lump + contributions
}

// EstimateGoal recomputes the goal's probability and status for the given
// risk profile. The figure is an estimate and is not guaranteed to be accurate.
func EstimateGoal(g *Goal, profile RiskProfile, now time.Time) {
	if g.TargetAmount <= 0 {
		g.Probability = maxProbability
		g.Status = GoalAhead

		return
	}

	ratio := ProjectedValue(g, profile.ExpectedReturn(), now) / g.TargetAmount
	g.Probability = math.Round(math.Min(math.Max(ratio*probabilityScale, minProbability), maxProbability))
	g.Status = StatusForProbability(g.Probability)
}

// StatusForProbability maps a probability to a goal status.
func StatusForProbability(p float64) GoalStatus {
	switch {
	case p >= aheadProbability:
		return GoalAhead
	case p >= onTrackProbability:
		return GoalOnTrack
	default:
		return GoalOffTrack
	}
}

// Shortfall is the projected gap to target, zero when the goal is covered.
func Shortfall(g *Goal, profile RiskProfile, now time.Time) float64 {
	return math.Max(g.TargetAmount-ProjectedValue(g, profile.ExpectedReturn(), now), 0)
}

// RequiredTopUp is the extra monthly contribution that closes the shortfall,
// ignoring growth on the top-up itself.
func RequiredTopUp(g *Goal, profile RiskProfile, now time.Time) float64 {
	months := g.MonthsRemaining(now)
	if months == 0 {
		return 0
	}

	return Shortfall(g, profile, now) / float64(months)
}

// EstimateClient recomputes every goal on the client.
func EstimateClient(c *Client, now time.Time) {
	for i := range c.Goals {
		EstimateGoal(&c.Goals[i], c.RiskProfile, now)
	}
}
