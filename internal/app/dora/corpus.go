package dora

import "github.com/jsamuelsen/advisor-dashboard/internal/domain"

// Compliance notes. Retrieval checks the note text for "General educational"
// and "disclaimer".
const (
	noteApproved    = "Approved for client use. Research desk sign-off on file."
	noteEducational = "General educational content. Not a recommendation for any specific client."
	noteDisclaimer  = "Approved for client use with the standard performance disclaimer attached."
)

// Knowledge returns the house-view library. The documents are fixed at build time
// and the returned slice is a fresh copy.
func Knowledge() []domain.KnowledgeDocument {
	docs := make([]domain.KnowledgeDocument, len(corpus))
	for i, d := range corpus {
		d.Keywords = append([]string(nil), d.Keywords...)
		docs[i] = d
	}

	return docs
}

var corpus = []domain.KnowledgeDocument{
	{
		ID:       "kb-technology",
		Title:    "Technology Sector Outlook",
		Topic:    "technology",
		Keywords: []string{"tech", "software", "semiconductor", "it sector", "digital"},
		Content: "We remain overweight on technology over a three to five year horizon. Earnings " +
			"visibility for large software exporters has improved and deal pipelines are healthy, " +
			"although valuations leave little room for disappointment. Hold technology at or below " +
			"15 percent of equity exposure and prefer diversified sector funds over single stocks.",
		ComplianceNote: noteApproved,
		Source:         "Research Desk, Sector Strategy",
	},
	{
		ID:       "kb-fixed-income",
		Title:    "Fixed Income Positioning",
		Topic:    "fixed income",
		Keywords: []string{"bond", "debt fund", "duration", "yield", "gilt"},
		Content: "Short and medium duration debt funds offer attractive accrual at current yields. " +
			"Keep duration moderate until the rate cycle turns decisively. Corporate bond funds " +
			"with AAA-heavy books suit conservative investors; avoid credit risk funds for money " +
			"needed within three years.",
		ComplianceNote: noteApproved,
		Source:         "Research Desk, Fixed Income",
	},
	{
		ID:       "kb-inflation",
		Title:    "Inflation and Real Returns",
		Topic:    "inflation",
		Keywords: []string{"purchasing power", "real return", "cpi", "price rise"},
		Content: "Our planning assumption for consumer inflation is 5.3 percent a year. Money held " +
			"in savings accounts loses purchasing power at roughly that rate, so long-horizon " +
			"goals need an equity component to deliver positive real returns. Review goal targets " +
			"annually for inflation.",
		ComplianceNote: noteEducational,
		Source:         "Planning Team",
	},
	{
		ID:       "kb-interest-rates",
		Title:    "Interest Rate Outlook",
		Topic:    "interest rates",
		Keywords: []string{"rate cut", "rate hike", "repo", "central bank", "monetary"},
		Content: "We expect the central bank to hold policy rates through the next two reviews with " +
			"a gradual easing bias afterwards. Lock in accrual with short duration funds and " +
			"stagger fixed deposits rather than timing a single entry point.",
		ComplianceNote: noteApproved,
		Source:         "Research Desk, Macro",
	},
	{
		ID:       "kb-emerging-markets",
		Title:    "Emerging Markets Allocation",
		Topic:    "emerging markets",
		Keywords: []string{"emerging", "international", "global equity", "overseas", "em equity"},
		Content: "International exposure diversifies domestic equity risk. We recommend 10 to 15 " +
			"percent of equity in international funds for aggressive investors, split between " +
			"developed and emerging mandates. Currency movements add volatility in both directions.",
		ComplianceNote: noteDisclaimer,
		Source:         "Research Desk, Global Strategy",
	},
	{
		ID:       "kb-esg",
		Title:    "ESG Investing Approach",
		Topic:    "esg",
		Keywords: []string{"sustainable", "environmental", "governance", "green", "responsible investing"},
		Content: "Clients who want sustainable portfolios can replace core equity with approved ESG " +
			"funds without giving up diversification. Screening reduces the investable universe, " +
			"so tracking error against broad indices is higher. Document the client's preference " +
			"in the suitability record.",
		ComplianceNote: noteApproved,
		Source:         "Research Desk, Responsible Investing",
	},
	{
		ID:       "kb-dca",
		Title:    "Dollar-Cost Averaging",
		Topic:    "dollar-cost averaging",
		Keywords: []string{"dca", "sip", "systematic", "staggered", "averaging"},
		Content: "Investing a lump sum in equal monthly instalments over six months reduces the " +
			"regret of entering at a market peak. Park the balance in a liquid fund while the " +
			"instalments run. Over long periods lump-sum investing usually wins, so use staggered " +
			"entry when the client is nervous about timing.",
		ComplianceNote: noteEducational,
		Source:         "Planning Team",
	},
	{
		ID:       "kb-rebalancing",
		Title:    "Rebalancing Policy",
		Topic:    "rebalancing",
		Keywords: []string{"rebalance", "drift", "target allocation", "concentration"},
		Content: "Rebalance when any asset class drifts more than five percentage points from target " +
			"or at least once a year. No single fund should exceed 30 percent of invested assets. " +
			"Use fresh contributions to rebalance first to avoid realising gains.",
		ComplianceNote: noteApproved,
		Source:         "Investment Committee",
	},
	{
		ID:       "kb-cash",
		Title:    "Cash Management",
		Topic:    "cash management",
		Keywords: []string{"liquid fund", "emergency fund", "idle cash", "savings account"},
		Content: "Keep six months of expenses in an emergency reserve, ideally in a liquid fund. " +
			"Cash above roughly ten percent of a portfolio is a drag on long-term goals and should " +
			"be deployed through a staggered plan.",
		ComplianceNote: noteApproved,
		Source:         "Planning Team",
	},
	{
		ID:       "kb-retirement",
		Title:    "Retirement Planning Principles",
		Topic:    "retirement",
		Keywords: []string{"pension", "annuity", "corpus", "withdrawal"},
		Content: "Shift retirement portfolios gradually from growth to income over the final five " +
			"years. Plan withdrawals at four percent of the corpus in the first year and keep two " +
			"years of withdrawals in debt funds so equity never has to be sold in a downturn.",
		ComplianceNote: noteEducational,
		Source:         "Planning Team",
	},
	{
		ID:       "kb-tax-loss",
		Title:    "Tax-Loss Harvesting",
		Topic:    "tax-loss harvesting",
		Keywords: []string{"tax", "capital gains", "harvest", "ltcg", "stcg"},
		Content: "Book losses before the financial year end to offset realised capital gains, then " +
			"reinvest in a similar but not identical fund. Check exit loads and the holding " +
			"period before switching.",
		ComplianceNote: noteDisclaimer,
		Source:         "Tax Advisory Desk",
	},
	{
		ID:       "kb-gold",
		Title:    "Gold as a Diversifier",
		Topic:    "gold",
		Keywords: []string{"bullion", "precious metal", "sovereign gold bond", "safe haven"},
		Content: "Gold has low correlation with domestic equity and tends to do well during currency " +
			"weakness. Hold five to ten percent through gold ETFs or sovereign gold bonds. Gold " +
			"produces no income, so it should not dominate a portfolio.",
		ComplianceNote: noteApproved,
		Source:         "Research Desk, Commodities",
	},
}
