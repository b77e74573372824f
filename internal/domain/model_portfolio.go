package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ModelPortfolio is a named allocation template keyed by risk profile and category.
type ModelPortfolio struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	RiskProfile RiskProfile      `json:"riskProfile"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Funds       []FundAllocation `json:"funds"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Clone returns a deep copy.
func (m *ModelPortfolio) Clone() *ModelPortfolio {
	out := *m
	out.Funds = append(make([]FundAllocation, 0, len(m.Funds)), m.Funds...)

	return &out
}

var hundred = decimal.NewFromInt(100)

// SumWeights adds fund weights in decimal arithmetic so that inputs such as
// 33.3 + 33.3 + 33.4 total exactly 100.
func SumWeights(funds []FundAllocation) decimal.Decimal {
	total := decimal.Zero
	for _, f := range funds {
		total = total.Add(decimal.NewFromFloat(f.Weight))
	}

	return total
}

// ValidateModelWeights requires every fund to be named with a weight in
// (0, 100], and the weights to total exactly 100.
func ValidateModelWeights(funds []FundAllocation) error {
	if len(funds) == 0 {
		return NewValidationError("funds", "at least one fund is required")
	}

	for i, f := range funds {
		if strings.TrimSpace(f.Name) == "" {
			return NewValidationError(fmt.Sprintf("funds[%d].name", i), "is required")
		}

		if f.Weight <= 0 || f.Weight > 100 {
			return NewValidationErrorWithValue(fmt.Sprintf("funds[%d].weight", i), "must be above 0 and at most 100", f.Weight)
		}
	}

	total := SumWeights(funds)
	if !total.Equal(hundred) {
		return NewValidationErrorWithValue(
			"funds",
			fmt.Sprintf("fund weights must sum to exactly 100, got %s", total.String()),
			total.InexactFloat64(),
		)
	}

	return nil
}
