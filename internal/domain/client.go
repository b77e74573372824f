package domain

import (
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// RiskProfile is a client's or model portfolio's risk appetite.
type RiskProfile string

// Risk profiles.
const (
	RiskConservative RiskProfile = "conservative"
	RiskModerate     RiskProfile = "moderate"
	RiskAggressive   RiskProfile = "aggressive"
)

// Valid reports whether r is a known profile.
func (r RiskProfile) Valid() bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	default:
		return false
	}
}

// ExpectedReturn is the annual percent return assumed when projecting goals.
func (r RiskProfile) ExpectedReturn() float64 {
	switch r {
	case RiskConservative:
		return 7
	case RiskAggressive:
		return 12
	default:
		return 10
	}
}

// GoalStatus is the tracking state of a goal.
type GoalStatus string

// Goal statuses.
const (
	GoalOnTrack  GoalStatus = "on-track"
	GoalOffTrack GoalStatus = "off-track"
	GoalAhead    GoalStatus = "ahead"
)

// GoalType groups goals for display.
type GoalType string

// Goal types.
const (
	GoalRetirement GoalType = "retirement"
	GoalEducation  GoalType = "education"
	GoalHome       GoalType = "home"
	GoalWealth     GoalType = "wealth"
	GoalEmergency  GoalType = "emergency"
	GoalOther      GoalType = "other"
)

// Returns holds percent returns over standard windows.
type Returns struct {
	YTD       float64 `json:"ytd"`
	OneYear   float64 `json:"oneYear"`
	ThreeYear float64 `json:"threeYear"`
}

// FundAllocation is one fund's slot in a portfolio.
type FundAllocation struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Weight     float64 `json:"weight"`
	ReturnYTD  float64 `json:"returnYtd"`
	Volatility float64 `json:"volatility"`
}

// Portfolio is a list of fund allocations. Weights should add up to 100.
type Portfolio struct {
	Funds []FundAllocation `json:"funds"`
}

// TotalWeight sums the fund weights.
func (p Portfolio) TotalWeight() float64 {
	total := 0.0
	for _, f := range p.Funds {
		total += f.Weight
	}

	return total
}

// WeightsValid reports whether the weights add up to 100 within a rounding margin.
func (p Portfolio) WeightsValid() bool {
	diff := p.TotalWeight() - FullAllocationWeight
	return diff > -0.01 && diff < 0.01
}

// MarshalJSON adds the weight total and the validity flag so the UI can flag
// allocations that do not add up.
func (p Portfolio) MarshalJSON() ([]byte, error) {
	type plain Portfolio

	funds := p.Funds
	if funds == nil {
		funds = []FundAllocation{}
	}

	return json.Marshal(struct {
		plain
		TotalWeight  float64 `json:"totalWeight"`
		WeightsValid bool    `json:"weightsValid"`
	}{
		plain:        plain{Funds: funds},
		TotalWeight:  round2(p.TotalWeight()),
		WeightsValid: p.WeightsValid(),
	})
}

// Goal is a client's financial target.
type Goal struct {
	ID                  string     `json:"id"`
	ClientID            string     `json:"clientId"`
	Name                string     `json:"name"`
	Type                GoalType   `json:"type"`
	TargetAmount        float64    `json:"targetAmount"`
	TargetDate          time.Time  `json:"targetDate"`
	CurrentAmount       float64    `json:"currentAmount"`
	MonthlyContribution float64    `json:"monthlyContribution"`
	Probability         float64    `json:"probability"`
	Status              GoalStatus `json:"status"`
	Portfolio           Portfolio  `json:"portfolio"`
	Returns             Returns    `json:"returns"`
}

// Progress is the funded share of the target in percent.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}

	return g.CurrentAmount / g.TargetAmount * 100
}

// MonthsRemaining counts whole months until the target date, never below zero.
func (g *Goal) MonthsRemaining(now time.Time) int {
	if !g.TargetDate.After(now) {
		return 0
	}

	months := (g.TargetDate.Year()-now.Year())*12 + int(g.TargetDate.Month()-now.Month())
	if g.TargetDate.Day() < now.Day() {
		months--
	}

	return max(months, 0)
}

// MeetingNote is an entry in the advisor's meeting log.
type MeetingNote struct {
	ID           string     `json:"id"`
	Date         time.Time  `json:"date"`
	Summary      string     `json:"summary"`
	FollowUpDate *time.Time `json:"followUpDate,omitempty"`
	FollowUpDone bool       `json:"followUpDone"`
}

// FollowUpOverdue reports whether the follow-up date has passed without being closed.
func (n *MeetingNote) FollowUpOverdue(now time.Time) bool {
	return n.FollowUpDate != nil && !n.FollowUpDone && n.FollowUpDate.Before(now)
}

// Client is an advisor's client with a financial snapshot and goals.
type Client struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"          masq:"secret"`
	Phone          string        `json:"phone"          masq:"secret"`
	Age            int           `json:"age"`
	RiskProfile    RiskProfile   `json:"riskProfile"`
	TotalPortfolio float64       `json:"totalPortfolio"`
	CashHoldings   float64       `json:"cashHoldings"`
	AnnualIncome   float64       `json:"annualIncome"`
	Goals          []Goal        `json:"goals"`
	Returns        Returns       `json:"returns"`
	NeedsAction    bool          `json:"needsAction"`
	ActionReason   string        `json:"actionReason"`
	JoinDate       time.Time     `json:"joinDate"`
	MeetingNotes   []MeetingNote `json:"meetingNotes"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// FirstName returns the first word of the client's name.
func (c *Client) FirstName() string {
	if first, _, ok := strings.Cut(strings.TrimSpace(c.Name), " "); ok {
		return first
	}

	return strings.TrimSpace(c.Name)
}

// CashRatio is cash holdings over total portfolio, zero for an empty portfolio.
func (c *Client) CashRatio() float64 {
	if c.TotalPortfolio <= 0 {
		return 0
	}

	return c.CashHoldings / c.TotalPortfolio
}

// InvestedAmount is the sum of the goals' current amounts.
func (c *Client) InvestedAmount() float64 {
	total := 0.0
	for i := range c.Goals {
		total += c.Goals[i].CurrentAmount
	}

	return total
}

// GoalsByStatus returns the goals in the given status, in goal order.
func (c *Client) GoalsByStatus(status GoalStatus) []Goal {
	var out []Goal

	for i := range c.Goals {
		if c.Goals[i].Status == status {
			out = append(out, c.Goals[i])
		}
	}

	return out
}

// Goal finds a goal by id.
func (c *Client) Goal(id string) (*Goal, bool) {
	for i := range c.Goals {
		if c.Goals[i].ID == id {
			return &c.Goals[i], true
		}
	}

	return nil, false
}

// LatestNote returns the most recent meeting note.
func (c *Client) LatestNote() (*MeetingNote, bool) {
	var latest *MeetingNote

	for i := range c.MeetingNotes {
		n := &c.MeetingNotes[i]
		if latest == nil || n.Date.After(latest.Date) {
			latest = n
		}
	}

	return latest, latest != nil
}

// FundExposure is a fund's share of a client's invested amount across all goals.
type FundExposure struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Share    float64 `json:"share"`
}

// FundExposures aggregates fund amounts across goals, in first-seen order.
// Share is a fraction of the invested amount.
func (c *Client) FundExposures() []FundExposure {
	invested := c.InvestedAmount()
	index := make(map[string]int)

	var out []FundExposure

	for i := range c.Goals {
		g := &c.Goals[i]
		for _, f := range g.Portfolio.Funds {
			amount := g.CurrentAmount * f.Weight / FullAllocationWeight

			pos, ok := index[f.Name]
			if !ok {
				pos = len(out)
				index[f.Name] = pos
				out = append(out, FundExposure{Name: f.Name, Category: f.Category})
			}

			out[pos].Amount += amount
		}
	}

	if invested > 0 {
		for i := range out {
			out[i].Share = out[i].Amount / invested
		}
	}

	return out
}

// Clone returns a deep copy so stored state is never aliased by callers.
func (c *Client) Clone() *Client {
	out := *c

	out.Goals = make([]Goal, len(c.Goals))
	for i := range c.Goals {
		out.Goals[i] = c.Goals[i].Clone()
	}

	out.MeetingNotes = make([]MeetingNote, len(c.MeetingNotes))
	for i, n := range c.MeetingNotes {
		if n.FollowUpDate != nil {
			d := *n.FollowUpDate
			n.FollowUpDate = &d
		}

		out.MeetingNotes[i] = n
	}

	return &out
}

// Clone returns a deep copy of the goal.
func (g Goal) Clone() Goal {
	g.Portfolio.Funds = slices.Clone(g.Portfolio.Funds)
	return g
}
