package domain

import "time"

// Intent is the label the assistant classifies a message into.
type Intent string

// The closed set of assistant intents.
const (
	IntentGreeting           Intent = "greeting"
	IntentHelp               Intent = "help"
	IntentPortfolioSummary   Intent = "portfolio_summary"
	IntentGoalStatus         Intent = "goal_status"
	IntentOffTrack           Intent = "off_track"
	IntentRiskMetrics        Intent = "risk_metrics"
	IntentCashAnalysis       Intent = "cash_analysis"
	IntentRebalancing        Intent = "rebalancing"
	IntentRecommendations    Intent = "recommendations"
	IntentComparisonCash     Intent = "comparison_cash"
	IntentComparisonOffTrack Intent = "comparison_offtrack"
	IntentMeetingPoints      Intent = "meeting_points"
	IntentClientInfo         Intent = "client_info"
	IntentKnowledgeBase      Intent = "knowledge_base"
	IntentUnknown            Intent = "unknown"
)

// ComplianceBadge marks how a knowledge answer may be used with clients.
type ComplianceBadge string

// Compliance badges.
const (
	BadgeApproved      ComplianceBadge = "approved"
	BadgeNeedsReview   ComplianceBadge = "needs_review"
	BadgeInformational ComplianceBadge = "informational"
)

// KnowledgeDocument is one house-view entry. Documents are compiled in and never change.
type KnowledgeDocument struct {
	ID             string
	Title          string
	Topic          string
	Keywords       []string
	Content        string
	ComplianceNote string
	Source         string
}

// Source is a knowledge document cited in a reply.
type Source struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// Tone colours a data card.
type Tone string

// Tones.
const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneWarning  Tone = "warning"
	ToneNeutral  Tone = "neutral"
)

// DataCard is a labelled figure shown next to a reply.
type DataCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Detail string `json:"detail,omitempty"`
	Tone   Tone   `json:"tone"`
}

// ActionChip is a suggested follow-up question.
type ActionChip struct {
	Label string `json:"label"`
	Query string `json:"query"`
}

// DoraResponse is the assistant's reply. It is never persisted.
type DoraResponse struct {
	Text            string          `json:"text"`
	DataCards       []DataCard      `json:"dataCards,omitempty"`
	Actions         []ActionChip    `json:"actions,omitempty"`
	ComplianceBadge ComplianceBadge `json:"complianceBadge,omitempty"`
	Sources         []Source        `json:"sources,omitempty"`
}

// AlertType classifies advisor alerts.
type AlertType string

// Alert types.
const (
	AlertActionRequired AlertType = "action_required"
	AlertOffTrack       AlertType = "off_track"
	AlertFollowUp       AlertType = "follow_up"
	AlertSystem         AlertType = "system"
)

// Alert is a derived item in the advisor's alert feed.
type Alert struct {
	ID         string    `json:"id"`
	Type       AlertType `json:"type"`
	Severity   Severity  `json:"severity"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	ClientID   string    `json:"clientId,omitempty"`
	ClientName string    `json:"clientName,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
