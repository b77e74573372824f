package domain

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// RiskMetrics are the fund-weighted portfolio statistics shown on the client dashboard.
type RiskMetrics struct {
	ExpectedReturn   float64 `json:"expectedReturn"`
	Volatility       float64 `json:"volatility"`
	SharpeRatio      float64 `json:"sharpeRatio"`
	MaxDrawdown      float64 `json:"maxDrawdown"`
	ReturnDispersion float64 `json:"returnDispersion"`
	FundCount        int     `json:"fundCount"`
}

// drawdownMultiple approximates peak-to-trough loss from annual volatility.
const drawdownMultiple = 2.0

// ClientRiskMetrics computes invested-amount weighted return and volatility over
// every fund in every goal. This is the dashboard calculation; the chat path
// uses coarse year-to-date buckets instead.
func ClientRiskMetrics(c *Client) RiskMetrics {
	var (
		weightedReturn float64
		weightedVol    float64
		totalAmount    float64
		fundReturns    []float64
	)

	for i := range c.Goals {
		g := &c.Goals[i]
		for _, f := range g.Portfolio.Funds {
			amount := g.CurrentAmount * f.Weight / FullAllocationWeight
			weightedReturn += amount * f.ReturnYTD
			weightedVol += amount * f.Volatility
			totalAmount += amount

			fundReturns = append(fundReturns, f.ReturnYTD)
		}
	}

	m := RiskMetrics{FundCount: len(fundReturns)}
	if totalAmount <= 0 {
		return m
	}

	m.ExpectedReturn = round2(weightedReturn / totalAmount)
	m.Volatility = round2(weightedVol / totalAmount)
	m.MaxDrawdown = round2(-drawdownMultiple * m.Volatility)

	if m.Volatility > 0 {
		m.SharpeRatio = round2((m.ExpectedReturn - RiskFreeRate) / m.Volatility)
	}

	if dispersion, err := stats.StandardDeviationPopulation(fundReturns); err == nil {
		m.ReturnDispersion = round2(dispersion)
	}

	return m
}

// InsightKind tags an insight so the presentation layer can pick an icon.
type InsightKind string

// Insight kinds.
const (
	InsightCash          InsightKind = "cash"
	InsightConcentration InsightKind = "concentration"
	InsightGoal          InsightKind = "goal"
	InsightPerformance   InsightKind = "performance"
	InsightAction        InsightKind = "action"
)

// Severity orders alerts and insights.
type Severity string

// Severities.
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Insight is a short observation about a client.
type Insight struct {
	Kind     InsightKind `json:"kind"`
	Severity Severity    `json:"severity"`
	Title    string      `json:"title"`
	Detail   string      `json:"detail"`
}

// ClientInsights derives dashboard insights for a client.
func ClientInsights(c *Client) []Insight {
	insights := make([]Insight, 0)

	if c.NeedsAction {
		insights = append(insights, Insight{
			Kind:     InsightAction,
			Severity: SeverityHigh,
			Title:    "Action required",
			Detail:   c.ActionReason,
		})
	}

	if ratio := c.CashRatio(); ratio > ExcessCashRatio {
		insights = append(insights, Insight{
			Kind:     InsightCash,
			Severity: SeverityMedium,
			Title:    "High cash allocation",
			Detail:   fmt.Sprintf("%.1f%% of the portfolio is in cash.", ratio*100),
		})
	}

	for _, exp := range c.FundExposures() {
		if exp.Share > InsightConcentrationLimit {
			insights = append(insights, Insight{
				Kind:     InsightConcentration,
				Severity: SeverityMedium,
				Title:    "Concentrated position",
				Detail:   fmt.Sprintf("%s is %.1f%% of invested assets.", exp.Name, exp.Share*100),
			})
		}
	}

	for _, g := range c.GoalsByStatus(GoalOffTrack) {
		insights = append(insights, Insight{
			Kind:     InsightGoal,
			Severity: SeverityHigh,
			Title:    "Goal off track",
			Detail:   fmt.Sprintf("%s has a %.0f%% probability of success.", g.Name, g.Probability),
		})
	}

	switch {
	case c.Returns.YTD < 0:
		insights = append(insights, Insight{
			Kind:     InsightPerformance,
			Severity: SeverityMedium,
			Title:    "Negative year to date",
			Detail:   fmt.Sprintf("Portfolio is down %.1f%% this year.", math.Abs(c.Returns.YTD)),
		})
	case c.Returns.YTD > HighReturnBracket:
		insights = append(insights, Insight{
			Kind:     InsightPerformance,
			Severity: SeverityLow,
			Title:    "Strong performance",
			Detail:   fmt.Sprintf("Portfolio is up %.1f%% this year.", c.Returns.YTD),
		})
	}

	return insights
}

// FundDrift compares one fund's actual weight with the model's target.
type FundDrift struct {
	Name         string  `json:"name"`
	ActualWeight float64 `json:"actualWeight"`
	TargetWeight float64 `json:"targetWeight"`
	Drift        float64 `json:"drift"`
}

// DriftReport is the deviation between a goal portfolio and a model portfolio.
type DriftReport struct {
	GoalID           string      `json:"goalId"`
	ModelPortfolioID string      `json:"modelPortfolioId"`
	Funds            []FundDrift `json:"funds"`
	TotalDrift       float64     `json:"totalDrift"`
}

// PortfolioDrift lists model funds first, then funds only the goal holds.
// TotalDrift is the sum of absolute deviations.
func PortfolioDrift(g *Goal, model *ModelPortfolio) DriftReport {
	actual := make(map[string]float64, len(g.Portfolio.Funds))
	for _, f := range g.Portfolio.Funds {
		actual[f.Name] += f.Weight
	}

	report := DriftReport{GoalID: g.ID, ModelPortfolioID: model.ID}
	seen := make(map[string]bool, len(model.Funds))

	for _, f := range model.Funds {
		seen[f.Name] = true
		report.Funds = append(report.Funds, newFundDrift(f.Name, actual[f.Name], f.Weight))
	}

	for _, f := range g.Portfolio.Funds {
		if seen[f.Name] {
			continue
		}

		seen[f.Name] = true
		report.Funds = append(report.Funds, newFundDrift(f.Name, actual[f.Name], 0))
	}

	for _, fd := range report.Funds {
		report.TotalDrift += math.Abs(fd.Drift)
	}

	report.TotalDrift = round2(report.TotalDrift)

	return report
}

func newFundDrift(name string, actual, target float64) FundDrift {
	return FundDrift{
		Name:         name,
		ActualWeight: actual,
		TargetWeight: target,
		Drift:        round2(actual - target),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
