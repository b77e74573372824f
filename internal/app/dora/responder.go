package dora

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
	"github.com/jsamuelsen/advisor-dashboard/internal/ports"
)

// Chat-path risk figures per YTD bracket. These approximate the analytics
// calculation; they are not derived from fund data.
var riskBuckets = [...]struct {
	volatility, sharpe, drawdown float64
}{
	{volatility: 18.5, sharpe: 1.45, drawdown: -22.0},
	{volatility: 12.3, sharpe: 1.10, drawdown: -15.0},
	{volatility: 8.2, sharpe: 0.72, drawdown: -9.5},
}

// Request is one chat turn after classification. Client is nil when no client
// is in context. Clients is the whole book in store order.
type Request struct {
	Intent  domain.Intent
	Message string
	Client  *domain.Client
	Clients []*domain.Client
}

// Responder renders replies from the book and the retriever.
type Responder struct {
	retriever *Retriever
	now       ports.Clock
}

// NewResponder creates a responder. A nil clock uses time.Now.
func NewResponder(retriever *Retriever, clock ports.Clock) *Responder {
	if clock == nil {
		clock = time.Now
	}

	return &Responder{retriever: retriever, now: clock}
}

// Respond dispatches on the intent. It fails only when ctx ends during retrieval.
func (r *Responder) Respond(ctx context.Context, req Request) (domain.DoraResponse, error) {
	switch req.Intent {
	case domain.IntentGreeting:
		return greetingResponse(req.Client), nil
	case domain.IntentHelp:
		return helpResponse(), nil
	case domain.IntentComparisonCash:
		return comparisonCashResponse(req.Clients), nil
	case domain.IntentComparisonOffTrack:
		return comparisonOffTrackResponse(req.Clients), nil
	case domain.IntentKnowledgeBase, domain.IntentUnknown:
		return r.knowledgeResponse(ctx, req)
	}

	c := req.Client
	if c == nil {
		switch req.Intent {
		case domain.IntentPortfolioSummary:
			return bookSummaryResponse(req.Clients), nil
		case domain.IntentOffTrack:
			return comparisonOffTrackResponse(req.Clients), nil
		case domain.IntentCashAnalysis:
			return bookCashResponse(req.Clients), nil
		default:
			return selectClientResponse(), nil
		}
	}

	now := r.now()

	switch req.Intent {
	case domain.IntentPortfolioSummary:
		return portfolioSummaryResponse(c), nil
	case domain.IntentGoalStatus:
		return goalStatusResponse(c), nil
	case domain.IntentOffTrack:
		return offTrackResponse(c, now), nil
	case domain.IntentRiskMetrics:
		return riskMetricsResponse(c), nil
	case domain.IntentCashAnalysis:
		return cashAnalysisResponse(c), nil
	case domain.IntentRebalancing:
		return rebalancingResponse(c), nil
	case domain.IntentRecommendations:
		return recommendationsResponse(c, now), nil
	case domain.IntentMeetingPoints:
		return meetingPointsResponse(c, now), nil
	case domain.IntentClientInfo:
		return clientInfoResponse(c), nil
	default:
		return unknownResponse(), nil
	}
}

func (r *Responder) knowledgeResponse(ctx context.Context, req Request) (domain.DoraResponse, error) {
	result, err := r.retriever.Query(ctx, req.Message)
	if err != nil {
		return domain.DoraResponse{}, err
	}

	if req.Intent == domain.IntentUnknown && len(result.Sources) == 0 {
		return unknownResponse(), nil
	}

	return domain.DoraResponse{
		Text:            result.Answer,
		ComplianceBadge: result.ComplianceBadge,
		Sources:         result.Sources,
	}, nil
}

func chip(label, query string) domain.ActionChip {
	return domain.ActionChip{Label: label, Query: query}
}

func crossClientChips() []domain.ActionChip {
	return []domain.ActionChip{
		chip("Excess cash", "Which clients have the most cash?"),
		chip("Off-track clients", "Which clients are off track?"),
		chip("House view", "What's the house view on technology?"),
	}
}

func returnTone(v float64) domain.Tone {
	if v < 0 {
		return domain.ToneNegative
	}

	return domain.TonePositive
}

func statusTone(s domain.GoalStatus) domain.Tone {
	switch s {
	case domain.GoalAhead:
		return domain.TonePositive
	case domain.GoalOffTrack:
		return domain.ToneNegative
	default:
		return domain.ToneNeutral
	}
}

func greetingResponse(c *domain.Client) domain.DoraResponse {
	text := "Hello! I'm DORA, your advisory assistant. I can summarise portfolios, check goal " +
		"progress, flag idle cash and answer questions from the house view."

	actions := crossClientChips()
	if c != nil {
		text = fmt.Sprintf("Hello! I'm DORA. You're looking at %s. Ask me about their portfolio, "+
			"goals or cash, or anything in the house view.", c.Name)
		actions = append([]domain.ActionChip{
			chip("Portfolio summary", "Summarise "+c.FirstName()+"'s portfolio"),
		}, actions...)
	}

	return domain.DoraResponse{Text: text, Actions: actions}
}

func helpResponse() domain.DoraResponse {
	text := "Here's what I can help with:\n\n" +
		"- **Portfolio summary**: value, cash and returns for a client or the whole book\n" +
		"- **Goals**: progress, probability and shortfalls\n" +
		"- **Risk**: volatility, Sharpe ratio and drawdown estimates\n" +
		"- **Cash**: idle cash, inflation drag and a staged deployment plan\n" +
		"- **Rebalancing**: concentrated funds and allocations that don't add up\n" +
		"- **Meeting prep**: talking points and open follow-ups\n" +
		"- **Comparisons**: clients with excess cash or off-track goals\n" +
		"- **House view**: research notes on sectors, asset classes and planning topics\n\n" +
		"Select a client for client-specific answers."

	return domain.DoraResponse{Text: text, Actions: crossClientChips()}
}

func selectClientResponse() domain.DoraResponse {
	return domain.DoraResponse{
		Text: "Please select a client first so I can answer that. In the meantime you can ask " +
			"about your whole book:",
		Actions: crossClientChips(),
	}
}

func unknownResponse() domain.DoraResponse {
	return domain.DoraResponse{
		Text: "I'm not sure I understood that. Try asking about a client's portfolio, goals, " +
			"cash or risk, or ask for the house view on a topic. Type \"help\" to see everything I can do.",
		Actions: append([]domain.ActionChip{chip("Help", "help")}, crossClientChips()...),
	}
}

func portfolioSummaryResponse(c *domain.Client) domain.DoraResponse {
	onTrack := 0

	for i := range c.Goals {
		if c.Goals[i].Status != domain.GoalOffTrack {
			onTrack++
		}
	}

	text := fmt.Sprintf("**%s** has a total portfolio of %s across %s. Returns are %s YTD, "+
		"%s over one year and %s over three years. Cash is %s of the portfolio.",
		c.Name, currency(c.TotalPortfolio), plural(len(c.Goals), "goal", "goals"),
		signedPercent(c.Returns.YTD), signedPercent(c.Returns.OneYear), signedPercent(c.Returns.ThreeYear),
		percent(c.CashRatio()))

	if c.NeedsAction {
		text += fmt.Sprintf("\n\nAction required: %s", c.ActionReason)
	}

	cashTone := domain.ToneNeutral
	if c.CashRatio() > domain.ExcessCashRatio {
		cashTone = domain.ToneWarning
	}

	return domain.DoraResponse{
		Text: text,
		DataCards: []domain.DataCard{
			{Label: "Total Portfolio", Value: currency(c.TotalPortfolio), Tone: domain.ToneNeutral},
			{Label: "YTD Return", Value: signedPercent(c.Returns.YTD), Tone: returnTone(c.Returns.YTD)},
			{Label: "Cash", Value: percent(c.CashRatio()), Detail: currency(c.CashHoldings), Tone: cashTone},
			{
				Label:  "Goals On Track",
				Value:  fmt.Sprintf("%d/%d", onTrack, len(c.Goals)),
				Tone:   goalsTone(onTrack, len(c.Goals)),
				Detail: string(c.RiskProfile) + " profile",
			},
		},
		Actions: []domain.ActionChip{
			chip("Goal status", "How are "+c.FirstName()+"'s goals tracking?"),
			chip("Risk metrics", "Show "+c.FirstName()+"'s risk metrics"),
			chip("Cash analysis", "Analyse "+c.FirstName()+"'s cash"),
		},
	}
}

func goalsTone(onTrack, total int) domain.Tone {
	if onTrack < total {
		return domain.ToneWarning
	}

	return domain.TonePositive
}

func bookSummaryResponse(clients []*domain.Client) domain.DoraResponse {
	var aum, ytd float64

	needsAction := 0

	for _, c := range clients {
		aum += c.TotalPortfolio
		ytd += c.Returns.YTD

		if c.NeedsAction {
			needsAction++
		}
	}

	avgYTD := 0.0
	if len(clients) > 0 {
		avgYTD = ytd / float64(len(clients))
	}

	text := fmt.Sprintf("Across your book of %s you manage %s. The average YTD return is %s and "+
		"%s need attention.", plural(len(clients), "client", "clients"), currency(aum),
		signedPercent(avgYTD), plural(needsAction, "client", "clients"))

	actionTone := domain.ToneNeutral
	if needsAction > 0 {
		actionTone = domain.ToneWarning
	}

	return domain.DoraResponse{
		Text: text,
		DataCards: []domain.DataCard{
			{Label: "Total AUM", Value: currency(aum), Tone: domain.ToneNeutral},
			{Label: "Clients", Value: fmt.Sprintf("%d", len(clients)), Tone: domain.ToneNeutral},
			{Label: "Average YTD", Value: signedPercent(avgYTD), Tone: returnTone(avgYTD)},
			{Label: "Needs Action", Value: fmt.Sprintf("%d", needsAction), Tone: actionTone},
		},
		Actions: crossClientChips(),
	}
}

func goalStatusResponse(c *domain.Client) domain.DoraResponse {
	if len(c.Goals) == 0 {
		return domain.DoraResponse{
			Text:    fmt.Sprintf("%s has no goals set up yet.", c.Name),
			Actions: []domain.ActionChip{chip("Portfolio summary", "Summarise "+c.FirstName()+"'s portfolio")},
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Here's how %s's goals are tracking:\n", c.FirstName())

	cards := make([]domain.DataCard, 0, len(c.Goals))

	for i := range c.Goals {
		g := &c.Goals[i]
		fmt.Fprintf(&b, "\n- **%s**: %.0f%% funded (%s of %s), %.0f%% probability, %s",
			g.Name, g.Progress(), currency(g.CurrentAmount), currency(g.TargetAmount), g.Probability, g.Status)

		cards = append(cards, domain.DataCard{
			Label:  g.Name,
			Value:  fmt.Sprintf("%.0f%%", g.Probability),
			Detail: string(g.Status),
			Tone:   statusTone(g.Status),
		})
	}

	return domain.DoraResponse{
		Text:      b.String(),
		DataCards: cards,
		Actions: []domain.ActionChip{
			chip("Off-track goals", "Which of "+c.FirstName()+"'s goals are off track?"),
			chip("Recommendations", "What should I recommend to "+c.FirstName()+"?"),
		},
	}
}

func offTrackResponse(c *domain.Client, now time.Time) domain.DoraResponse {
	offTrack := c.GoalsByStatus(domain.GoalOffTrack)
	if len(offTrack) == 0 {
		return domain.DoraResponse{
			Text: fmt.Sprintf("Good news: all of %s's goals are on track or ahead.", c.FirstName()),
			Actions: []domain.ActionChip{
				chip("Goal status", "How are "+c.FirstName()+"'s goals tracking?"),
			},
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s has %s off track:\n", c.FirstName(), plural(len(offTrack), "goal", "goals"))

	cards := make([]domain.DataCard, 0, len(offTrack))

	for i := range offTrack {
		g := &offTrack[i]
		shortfall := domain.Shortfall(g, c.RiskProfile, now)
		topUp := domain.RequiredTopUp(g, c.RiskProfile, now)

		fmt.Fprintf(&b, "\n- **%s**: %.0f%% probability, projected shortfall %s",
			g.Name, g.Probability, currency(shortfall))

		if topUp > 0 {
			fmt.Fprintf(&b, ". Adding about %s a month closes the gap", currency(topUp))
		}

		cards = append(cards, domain.DataCard{
			Label:  g.Name,
			Value:  currency(shortfall),
			Detail: fmt.Sprintf("%.0f%% probability", g.Probability),
			Tone:   domain.ToneNegative,
		})
	}

	return domain.DoraResponse{
		Text:      b.String(),
		DataCards: cards,
		Actions: []domain.ActionChip{
			chip("Recommendations", "What should I recommend to "+c.FirstName()+"?"),
			chip("Rebalancing", "Does "+c.FirstName()+" need rebalancing?"),
		},
	}
}

func riskMetricsResponse(c *domain.Client) domain.DoraResponse {
	bucket := riskBuckets[2]

	switch {
	case c.Returns.YTD > domain.HighReturnBracket:
		bucket = riskBuckets[0]
	case c.Returns.YTD > domain.MediumReturnBracket:
		bucket = riskBuckets[1]
	}

	text := fmt.Sprintf("%s's portfolio (%s profile) shows an estimated volatility of %.1f%%, a Sharpe "+
		"ratio of %.2f and a maximum drawdown of %.1f%%. These are estimates from the YTD return of %s.",
		c.FirstName(), c.RiskProfile, bucket.volatility, bucket.sharpe, bucket.drawdown,
		signedPercent(c.Returns.YTD))

	sharpeTone := domain.ToneNeutral
	if bucket.sharpe >= 1 {
		sharpeTone = domain.TonePositive
	}

	return domain.DoraResponse{
		Text: text,
		DataCards: []domain.DataCard{
			{Label: "Volatility", Value: fmt.Sprintf("%.1f%%", bucket.volatility), Tone: domain.ToneNeutral},
			{Label: "Sharpe Ratio", Value: fmt.Sprintf("%.2f", bucket.sharpe), Tone: sharpeTone},
			{Label: "Max Drawdown", Value: fmt.Sprintf("%.1f%%", bucket.drawdown), Tone: domain.ToneNegative},
			{Label: "Risk Profile", Value: string(c.RiskProfile), Tone: domain.ToneNeutral},
		},
		Actions: []domain.ActionChip{
			chip("Rebalancing", "Does "+c.FirstName()+" need rebalancing?"),
		},
	}
}

func cashAnalysisResponse(c *domain.Client) domain.DoraResponse {
	ratio := c.CashRatio()
	drag := c.CashHoldings * domain.InflationDragRate

	if ratio > domain.ExcessCashRatio {
		deployable := math.Max(c.CashHoldings-c.TotalPortfolio*domain.TargetCashReserveRatio, 0)
		monthly := deployable / domain.DCAMonths

		text := fmt.Sprintf("%s holds excess cash: %s, or %s of the portfolio. At %.1f%% inflation that "+
			"costs about %s a year in purchasing power. Keeping a %s reserve leaves %s to deploy, "+
			"for example %s a month over %d months.",
			c.FirstName(), currency(c.CashHoldings), percent(ratio), domain.InflationDragRate*100,
			currency(drag), percent(domain.TargetCashReserveRatio), currency(deployable),
			currency(monthly), domain.DCAMonths)

		return domain.DoraResponse{
			Text: text,
			DataCards: []domain.DataCard{
				{Label: "Cash Holdings", Value: currency(c.CashHoldings), Tone: domain.ToneWarning},
				{Label: "Cash Share", Value: percent(ratio), Detail: "Above 20% threshold", Tone: domain.ToneWarning},
				{Label: "Inflation Drag", Value: currency(drag), Detail: "per year", Tone: domain.ToneNegative},
				{Label: "Deployable", Value: currency(deployable), Tone: domain.TonePositive},
			},
			Actions: []domain.ActionChip{
				chip("Staged entry", "Explain dollar-cost averaging"),
				chip("Recommendations", "What should I recommend to "+c.FirstName()+"?"),
			},
		}
	}

	text := fmt.Sprintf("%s's cash of %s is %s of the portfolio, within the 20%% comfort range. "+
		"Inflation drag on it is about %s a year.", c.FirstName(), currency(c.CashHoldings),
		percent(ratio), currency(drag))

	return domain.DoraResponse{
		Text: text,
		DataCards: []domain.DataCard{
			{Label: "Cash Holdings", Value: currency(c.CashHoldings), Tone: domain.ToneNeutral},
			{Label: "Cash Share", Value: percent(ratio), Tone: domain.TonePositive},
			{Label: "Inflation Drag", Value: currency(drag), Detail: "per year", Tone: domain.ToneNeutral},
		},
	}
}

func bookCashResponse(clients []*domain.Client) domain.DoraResponse {
	var cash, total float64

	excess := 0

	for _, c := range clients {
		cash += c.CashHoldings
		total += c.TotalPortfolio

		if c.CashRatio() > domain.ExcessCashRatio {
			excess++
		}
	}

	ratio := 0.0
	if total > 0 {
		ratio = cash / total
	}

	text := fmt.Sprintf("Your book holds %s in cash, %s of %s under management. %s above the 20%% "+
		"excess-cash threshold. Inflation drag across the book is about %s a year.",
		currency(cash), percent(ratio), currency(total), plural(excess, "client is", "clients are"),
		currency(cash*domain.InflationDragRate))

	tone := domain.ToneNeutral
	if excess > 0 {
		tone = domain.ToneWarning
	}

	return domain.DoraResponse{
		Text: text,
		DataCards: []domain.DataCard{
			{Label: "Total Cash", Value: currency(cash), Tone: domain.ToneNeutral},
			{Label: "Cash Share", Value: percent(ratio), Tone: domain.ToneNeutral},
			{Label: "Excess Cash Clients", Value: fmt.Sprintf("%d", excess), Tone: tone},
		},
		Actions: []domain.ActionChip{chip("Rank by cash", "Which clients have the most cash?")},
	}
}

func rebalancingResponse(c *domain.Client) domain.DoraResponse {
	var issues []string

	invalid := 0

	for i := range c.Goals {
		g := &c.Goals[i]
		if !g.Portfolio.WeightsValid() {
			invalid++
			issues = append(issues, fmt.Sprintf("**%s** allocation adds up to %.1f%%, not 100%%",
				g.Name, g.Portfolio.TotalWeight()))
		}
	}

	concentrated := 0

	for _, exp := range c.FundExposures() {
		if exp.Share > domain.RebalanceConcentrationLimit {
			concentrated++
			issues = append(issues, fmt.Sprintf("**%s** is %s of invested assets, above the 30%% limit",
				exp.Name, percent(exp.Share)))
		}
	}

	cards := []domain.DataCard{
		{Label: "Concentrated Funds", Value: fmt.Sprintf("%d", concentrated), Tone: countTone(concentrated)},
		{Label: "Invalid Allocations", Value: fmt.Sprintf("%d", invalid), Tone: countTone(invalid)},
	}

	if len(issues) == 0 {
		return domain.DoraResponse{
			Text: fmt.Sprintf("%s's allocations look balanced. No fund exceeds 30%% of invested assets "+
				"and every goal's weights add up to 100%%.", c.FirstName()),
			DataCards: cards,
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s's portfolio needs rebalancing:\n", c.FirstName())

	for _, issue := range issues {
		b.WriteString("\n- " + issue)
	}

	b.WriteString("\n\nConsider moving the goals onto a model portfolio for their risk profile.")

	return domain.DoraResponse{
		Text:      b.String(),
		DataCards: cards,
		Actions: []domain.ActionChip{
			chip("Risk metrics", "Show "+c.FirstName()+"'s risk metrics"),
		},
	}
}

func countTone(n int) domain.Tone {
	if n > 0 {
		return domain.ToneWarning
	}

	return domain.TonePositive
}

func recommendationsResponse(c *domain.Client, now time.Time) domain.DoraResponse {
	var recs []string

	if c.NeedsAction {
		recs = append(recs, "Address the open action: "+c.ActionReason)
	}

	if ratio := c.CashRatio(); ratio > domain.ExcessCashRatio {
		deployable := math.Max(c.CashHoldings-c.TotalPortfolio*domain.TargetCashReserveRatio, 0)
		recs = append(recs, fmt.Sprintf("Deploy %s of idle cash over %d months", currency(deployable), domain.DCAMonths))
	}

	for _, g := range c.GoalsByStatus(domain.GoalOffTrack) {
		if topUp := domain.RequiredTopUp(&g, c.RiskProfile, now); topUp > 0 {
			recs = append(recs, fmt.Sprintf("Raise the monthly contribution to %s by about %s", g.Name, currency(topUp)))
		} else {
			recs = append(recs, fmt.Sprintf("Revisit the target for %s", g.Name))
		}
	}

	for _, exp := range c.FundExposures() {
		if exp.Share > domain.RebalanceConcentrationLimit {
			recs = append(recs, fmt.Sprintf("Trim %s from %s of invested assets", exp.Name, percent(exp.Share)))
		}
	}

	if c.Returns.YTD < domain.LowYTDReturn {
		recs = append(recs, fmt.Sprintf("Review underperforming funds (YTD %s)", signedPercent(c.Returns.YTD)))
	}

	if len(recs) == 0 {
		return domain.DoraResponse{
			Text: fmt.Sprintf("%s's plan is in good shape. No immediate changes; keep the annual review on schedule.",
				c.FirstName()),
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Recommendations for %s:\n", c.FirstName())

	for i, rec := range recs {
		fmt.Fprintf(&b, "\n%d. %s", i+1, rec)
	}

	return domain.DoraResponse{
		Text:      b.String(),
		DataCards: []domain.DataCard{{Label: "Recommendations", Value: fmt.Sprintf("%d", len(recs)), Tone: domain.ToneWarning}},
		Actions: []domain.ActionChip{
			chip("Meeting prep", "Prepare talking points for my meeting with "+c.FirstName()),
		},
	}
}

func meetingPointsResponse(c *domain.Client, now time.Time) domain.DoraResponse {
	var points []string

	lastMeeting := "None"
	openFollowUps := 0

	if n, ok := c.LatestNote(); ok {
		lastMeeting = n.Date.Format("Jan 2, 2006")
		points = append(points, fmt.Sprintf("Last meeting (%s): %s",
			humanize.RelTime(n.Date, now, "ago", "from now"), n.Summary))
	}

	for i := range c.MeetingNotes {
		n := &c.MeetingNotes[i]
		if n.FollowUpDate != nil && !n.FollowUpDone {
			openFollowUps++

			if n.FollowUpOverdue(now) {
				points = append(points, fmt.Sprintf("Overdue follow-up from %s: %s",
					n.Date.Format("Jan 2"), n.Summary))
			}
		}
	}

	if c.NeedsAction {
		points = append(points, "Open action: "+c.ActionReason)
	}

	points = append(points, fmt.Sprintf("Portfolio at %s, %s YTD", currency(c.TotalPortfolio), signedPercent(c.Returns.YTD)))

	for i := range c.Goals {
		g := &c.Goals[i]
		points = append(points, fmt.Sprintf("%s: %.0f%% probability (%s)", g.Name, g.Probability, g.Status))
	}

	if ratio := c.CashRatio(); ratio > domain.ExcessCashRatio {
		points = append(points, fmt.Sprintf("Discuss deploying cash (%s of portfolio)", percent(ratio)))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Talking points for your meeting with %s:\n", c.Name)

	for _, p := range points {
		b.WriteString("\n- " + p)
	}

	followTone := domain.ToneNeutral
	if openFollowUps > 0 {
		followTone = domain.ToneWarning
	}

	return domain.DoraResponse{
		Text: b.String(),
		DataCards: []domain.DataCard{
			{Label: "Last Meeting", Value: lastMeeting, Tone: domain.ToneNeutral},
			{Label: "Open Follow-ups", Value: fmt.Sprintf("%d", openFollowUps), Tone: followTone},
		},
		Actions: []domain.ActionChip{
			chip("Recommendations", "What should I recommend to "+c.FirstName()+"?"),
		},
	}
}

func clientInfoResponse(c *domain.Client) domain.DoraResponse {
	text := fmt.Sprintf("**%s**, %d, is a %s investor with an annual income of %s. Client since %s. "+
		"Contact: %s, %s.", c.Name, c.Age, c.RiskProfile, currency(c.AnnualIncome),
		c.JoinDate.Format("January 2006"), c.Email, c.Phone)

	return domain.DoraResponse{
		Text: text,
		DataCards: []domain.DataCard{
			{Label: "Age", Value: fmt.Sprintf("%d", c.Age), Tone: domain.ToneNeutral},
			{Label: "Risk Profile", Value: string(c.RiskProfile), Tone: domain.ToneNeutral},
			{Label: "Annual Income", Value: currency(c.AnnualIncome), Tone: domain.ToneNeutral},
			{Label: "Client Since", Value: c.JoinDate.Format("2006"), Tone: domain.ToneNeutral},
		},
		Actions: []domain.ActionChip{
			chip("Portfolio summary", "Summarise "+c.FirstName()+"'s portfolio"),
		},
	}
}

type cashRank struct {
	client *domain.Client
	ratio  float64
}

// rankByCash keeps clients strictly above ComparisonCashRatio, highest first,
// ties in book order.
func rankByCash(clients []*domain.Client) []cashRank {
	var ranked []cashRank

	for _, c := range clients {
		if ratio := c.CashRatio(); ratio > domain.ComparisonCashRatio {
			ranked = append(ranked, cashRank{client: c, ratio: ratio})
		}
	}

	slices.SortStableFunc(ranked, func(a, b cashRank) int { return cmp.Compare(b.ratio, a.ratio) })

	return ranked
}

func comparisonCashResponse(clients []*domain.Client) domain.DoraResponse {
	ranked := rankByCash(clients)
	if len(ranked) == 0 {
		return domain.DoraResponse{
			Text:    "No client holds more than 15% of their portfolio in cash.",
			Actions: crossClientChips(),
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s above 15%% cash:\n", plural(len(ranked), "client holds", "clients hold"))

	cards := make([]domain.DataCard, 0, len(ranked))
	actions := make([]domain.ActionChip, 0, len(ranked))

	for i, r := range ranked {
		fmt.Fprintf(&b, "\n%d. **%s**: %s (%s)", i+1, r.client.Name, percent(r.ratio), currency(r.client.CashHoldings))

		tone := domain.ToneNeutral
		if r.ratio > domain.ExcessCashRatio {
			tone = domain.ToneWarning
		}

		cards = append(cards, domain.DataCard{
			Label:  r.client.Name,
			Value:  percent(r.ratio),
			Detail: currency(r.client.CashHoldings),
			Tone:   tone,
		})
		actions = append(actions, chip("Analyse "+r.client.FirstName(), "Analyse "+r.client.Name+"'s cash"))
	}

	return domain.DoraResponse{Text: b.String(), DataCards: cards, Actions: actions}
}

func comparisonOffTrackResponse(clients []*domain.Client) domain.DoraResponse {
	var (
		b     strings.Builder
		cards []domain.DataCard
	)

	count := 0

	for _, c := range clients {
		offTrack := c.GoalsByStatus(domain.GoalOffTrack)
		if len(offTrack) == 0 {
			continue
		}

		count++

		names := make([]string, 0, len(offTrack))
		for _, g := range offTrack {
			names = append(names, fmt.Sprintf("%s (%.0f%%)", g.Name, g.Probability))
		}

		fmt.Fprintf(&b, "\n- **%s**: %s", c.Name, strings.Join(names, ", "))

		cards = append(cards, domain.DataCard{
			Label:  c.Name,
			Value:  plural(len(offTrack), "goal", "goals"),
			Detail: "off track",
			Tone:   domain.ToneNegative,
		})
	}

	if count == 0 {
		return domain.DoraResponse{
			Text:    "Every client's goals are on track or ahead.",
			Actions: crossClientChips(),
		}
	}

	return domain.DoraResponse{
		Text:      fmt.Sprintf("%s off-track goals:\n", plural(count, "client has", "clients have")) + b.String(),
		DataCards: cards,
		Actions:   crossClientChips(),
	}
}
