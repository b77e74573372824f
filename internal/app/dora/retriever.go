package dora

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
)

// Retrieval scoring and assembly limits.
const (
	topicScore       = 10
	keywordScore     = 5
	minOverlapWords  = 2
	minQueryWordLen  = 5
	maxSources       = 3
	snippetLength    = 120
	educationalMark  = "general educational"
	disclaimerMark   = "disclaimer"
	relatedSeparator = "\n\n---\n\n"
)

const (
	noGuidanceText = "I couldn't find guidance on that in the house view library. " +
		"Try asking about a sector, an asset class or a planning topic."
	disclaimerText = "\n\n_Disclaimer: past performance is not indicative of future results. " +
		"Investments are subject to market risk; read all scheme documents carefully._"
)

// RetrievalResult is the retriever's answer. It is always well formed.
type RetrievalResult struct {
	Answer          string
	Sources         []domain.Source
	ComplianceBadge domain.ComplianceBadge
	Matched         int
}

// Retriever scores the house-view library against a query by topic, keyword and
// content overlap. It is a keyword matcher, not semantic search.
type Retriever struct {
	docs    []domain.KnowledgeDocument
	delay   time.Duration
	metrics *Metrics
}

// RetrieverConfig configures a Retriever. Delay simulates lookup latency.
type RetrieverConfig struct {
	Documents []domain.KnowledgeDocument
	Delay     time.Duration
	Metrics   *Metrics
}

// NewRetriever creates a retriever. Without documents it uses the built-in library.
func NewRetriever(cfg RetrieverConfig) *Retriever {
	docs := cfg.Documents
	if docs == nil {
		docs = Knowledge()
	}

	return &Retriever{docs: docs, delay: cfg.Delay, metrics: cfg.Metrics}
}

// Documents returns the library the retriever searches.
func (r *Retriever) Documents() []domain.KnowledgeDocument {
	return slices.Clone(r.docs)
}

type scoredDoc struct {
	doc   *domain.KnowledgeDocument
	score int
}

// Query answers from the best matching documents. The only error is context
// cancellation during the simulated delay.
func (r *Retriever) Query(ctx context.Context, query string) (RetrievalResult, error) {
	if err := r.wait(ctx); err != nil {
		return RetrievalResult{}, err
	}

	matched := r.match(query)
	r.metrics.observeMatches(len(matched))

	if len(matched) == 0 {
		return RetrievalResult{
			Answer:          noGuidanceText,
			Sources:         []domain.Source{},
			ComplianceBadge: domain.BadgeNeedsReview,
		}, nil
	}

	var answer strings.Builder

	answer.WriteString(matched[0].doc.Content)

	if len(matched) > 1 {
		answer.WriteString(relatedSeparator)
		answer.WriteString("**Related: " + matched[1].doc.Title + "**\n\n")
		answer.WriteString(matched[1].doc.Content)
	}

	badge := domain.BadgeApproved
	needsDisclaimer := false

	for _, m := range matched {
		note := strings.ToLower(m.doc.ComplianceNote)
		if strings.Contains(note, educationalMark) {
			badge = domain.BadgeInformational
		}

		if strings.Contains(note, disclaimerMark) {
			needsDisclaimer = true
		}
	}

	if needsDisclaimer {
		answer.WriteString(disclaimerText)
	}

	top := matched[:min(len(matched), maxSources)]
	sources := make([]domain.Source, 0, len(top))

	for _, m := range top {
		sources = append(sources, domain.Source{Title: m.doc.Title, Snippet: snippet(m.doc.Content)})
	}

	return RetrievalResult{
		Answer:          answer.String(),
		Sources:         sources,
		ComplianceBadge: badge,
		Matched:         len(matched),
	}, nil
}

func (r *Retriever) wait(ctx context.Context) error {
	if r.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// match returns the matching documents ordered by score, ties in library order.
func (r *Retriever) match(query string) []scoredDoc {
	q := strings.ToLower(query)
	queryWords := significantWords(q)

	var matched []scoredDoc

	for i := range r.docs {
		doc := &r.docs[i]
		score := 0
		hit := false

		if doc.Topic != "" && strings.Contains(q, strings.ToLower(doc.Topic)) {
			score += topicScore
			hit = true
		}

		for _, kw := range doc.Keywords {
			if kw != "" && strings.Contains(q, strings.ToLower(kw)) {
				score += keywordScore
				hit = true
			}
		}

		if !hit && contentOverlap(queryWords, doc.Content) {
			hit = true
		}

		if hit {
			matched = append(matched, scoredDoc{doc: doc, score: score})
		}
	}

	slices.SortStableFunc(matched, func(a, b scoredDoc) int { return cmp.Compare(b.score, a.score) })

	return matched
}

// significantWords returns the distinct query words long enough to count
// towards content overlap.
func significantWords(q string) []string {
	var out []string

	for _, w := range tokenize(q) {
		if len([]rune(w)) >= minQueryWordLen && !slices.Contains(out, w) {
			out = append(out, w)
		}
	}

	return out
}

func contentOverlap(queryWords []string, content string) bool {
	if len(queryWords) < minOverlapWords {
		return false
	}

	contentWords := tokenize(strings.ToLower(content))
	hits := 0

	for _, qw := range queryWords {
		if slices.ContainsFunc(contentWords, func(cw string) bool { return strings.Contains(cw, qw) }) {
			hits++
			if hits >= minOverlapWords {
				return true
			}
		}
	}

	return false
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// snippet keeps the first snippetLength runes and always appends "...".
func snippet(content string) string {
	runes := []rune(content)
	if len(runes) > snippetLength {
		runes = runes[:snippetLength]
	}

	return string(runes) + "..."
}
