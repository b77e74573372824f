// Package dora implements the advisor assistant: a regex intent classifier,
// a keyword retriever over the house-view library, and templated replies
// computed from the advisor's book.
package dora

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
)

// ErrDuplicatePriority is returned when two rules share a priority.
var ErrDuplicatePriority = errors.New("duplicate rule priority")

// Rule maps a set of patterns to an intent. Lower priorities are checked first,
// and the first rule with any matching pattern wins. Changing a priority
// changes how ambiguous messages are classified.
type Rule struct {
	Priority int
	Intent   domain.Intent
	Patterns []*regexp.Regexp
}

// Matches reports whether any pattern matches the lowercased message.
func (r Rule) Matches(normalized string) bool {
	for _, p := range r.Patterns {
		if p.MatchString(normalized) {
			return true
		}
	}

	return false
}

// Classifier assigns one intent to a free-text message.
type Classifier struct {
	rules []Rule
}

// NewClassifier orders the rules by priority. Priorities must be unique.
func NewClassifier(rules []Rule) (*Classifier, error) {
	sorted := slices.Clone(rules)
	slices.SortStableFunc(sorted, func(a, b Rule) int { return a.Priority - b.Priority })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Priority == sorted[i-1].Priority {
			return nil, fmt.Errorf("%w: %d used by %s and %s", ErrDuplicatePriority,
				sorted[i].Priority, sorted[i-1].Intent, sorted[i].Intent)
		}
	}

	return &Classifier{rules: sorted}, nil
}

// NewDefaultClassifier returns the classifier over DefaultRules.
func NewDefaultClassifier() *Classifier {
	c, err := NewClassifier(DefaultRules())
	if err != nil {
		panic(err)
	}

	return c
}

// Classify lowercases the message and returns the intent of the first matching
// rule, or domain.IntentUnknown.
func (c *Classifier) Classify(message string) domain.Intent {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return domain.IntentUnknown
	}

	for _, r := range c.rules {
		if r.Matches(normalized) {
			return r.Intent
		}
	}

	return domain.IntentUnknown
}

// Rules returns the rules in evaluation order.
func (c *Classifier) Rules() []Rule {
	return slices.Clone(c.rules)
}

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}

	return out
}

// DefaultRules is the assistant's rule table. Cross-client comparisons come
// before their single-client counterparts, and rebalancing before risk, so a
// message mentioning both risk and rebalancing is a rebalancing question and
// one mentioning both risk and goals is a risk question.
func DefaultRules() []Rule {
	return []Rule{
		{Priority: 10, Intent: domain.IntentGreeting, Patterns: patterns(
			`^(hi|hello|hey|howdy|namaste)\b`,
			`\bgood (morning|afternoon|evening)\b`,
		)},
		{Priority: 20, Intent: domain.IntentHelp, Patterns: patterns(
			`\bhelp\b`,
			`what can you do`,
			`\bcapabilit`,
			`how (do|can) i use`,
		)},
		{Priority: 30, Intent: domain.IntentComparisonCash, Patterns: patterns(
			`\b(which|what|any) clients?\b.*\bcash\b`,
			`\b(most|highest|excess) cash\b`,
			`\bcash\b.*\b(across|among) (all )?(my )?clients\b`,
		)},
		{Priority: 40, Intent: domain.IntentComparisonOffTrack, Patterns: patterns(
			`\b(which|what|any) clients?\b.*\b(off[- ]track|behind)\b`,
			`\b(off[- ]track|behind)\b.*\b(across|among) (all )?(my )?clients\b`,
			`\ball clients\b.*\b(off[- ]track|behind)\b`,
		)},
		{Priority: 50, Intent: domain.IntentMeetingPoints, Patterns: patterns(
			`\bmeeting\b`,
			`talking points`,
			`\bagenda\b`,
			`\bprep(are)?\b`,
		)},
		{Priority: 60, Intent: domain.IntentRebalancing, Patterns: patterns(
			`\brebalanc`,
			`\bdrift`,
			`\breallocat`,
			`\bconcentrat`,
		)},
		{Priority: 70, Intent: domain.IntentRiskMetrics, Patterns: patterns(
			`\brisk`,
			`\bvolatil`,
			`\bsharpe\b`,
			`\bdrawdown\b`,
		)},
		{Priority: 80, Intent: domain.IntentOffTrack, Patterns: patterns(
			`\boff[- ]track\b`,
			`\bbehind\b`,
			`\bshortfall\b`,
			`falling short`,
		)},
		{Priority: 90, Intent: domain.IntentGoalStatus, Patterns: patterns(
			`\bgoals?\b`,
			`\bon[- ]track\b`,
			`\bprogress\b`,
			`\bprobabilit`,
		)},
		{Priority: 100, Intent: domain.IntentCashAnalysis, Patterns: patterns(
			`\bcash\b`,
			`\bidle (money|funds)\b`,
			`\bliquidity\b`,
			`\buninvested\b`,
		)},
		{Priority: 110, Intent: domain.IntentRecommendations, Patterns: patterns(
			`\brecommend`,
			`\bsuggest`,
			`\badvi[cs]e\b`,
			`what should`,
			`\bnext steps?\b`,
		)},
		{Priority: 120, Intent: domain.IntentPortfolioSummary, Patterns: patterns(
			`\bportfolios?\b`,
			`\bsummar`,
			`\boverview\b`,
			`\bholdings?\b`,
			`\breturns?\b`,
			`\bperformance\b`,
			`\baum\b`,
		)},
		{Priority: 130, Intent: domain.IntentClientInfo, Patterns: patterns(
			`\bwho is\b`,
			`\btell me about\b`,
			`\bclient (profile|details|info)`,
			`\bage\b`,
			`\bincome\b`,
			`\bcontact\b`,
		)},
		{Priority: 140, Intent: domain.IntentKnowledgeBase, Patterns: patterns(
			`\bhouse view\b`,
			`\boutlook\b`,
			`\bresearch\b`,
			`\bmarkets?\b`,
			`\bsectors?\b`,
			`\bwhat is\b`,
			`\bexplain\b`,
			`\bpolicy\b`,
			`\bview on\b`,
		)},
	}
}
