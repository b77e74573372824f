package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
)

// Seed loads the demo advisor book of five clients and six model portfolios.
// Dates are relative to now. goal-4 deliberately holds 95% so the weight
// warning has something to show.
func Seed(ctx context.Context, s *Store, now time.Time) error {
	for _, c := range seedClients(now) {
		c.CreatedAt = c.JoinDate
		c.UpdatedAt = now
		domain.EstimateClient(c, now)

		if err := s.CreateClient(ctx, c); err != nil {
			return fmt.Errorf("seeding client %s: %w", c.ID, err)
		}
	}

	for _, mp := range seedModelPortfolios(now) {
		if err := s.CreateModelPortfolio(ctx, mp); err != nil {
			return fmt.Errorf("seeding model portfolio %s: %w", mp.ID, err)
		}
	}

	return nil
}

func fund(name, category string, weight, ytd, vol float64) domain.FundAllocation {
	return domain.FundAllocation{Name: name, Category: category, Weight: weight, ReturnYTD: ytd, Volatility: vol}
}

func seedClients(now time.Time) []*domain.Client {
	day := func(years, months, days int) time.Time {
		return now.AddDate(years, months, days).Truncate(24 * time.Hour)
	}
	ptr := func(t time.Time) *time.Time { return &t }

	return []*domain.Client{
		{
			ID:             "client-1",
			Name:           "Rajesh Sharma",
			Email:          "rajesh.sharma@example.com",
			Phone:          "+91 98200 11223",
			Age:            52,
			RiskProfile:    domain.RiskModerate,
			TotalPortfolio: 8_500_000,
			CashHoldings:   2_125_000,
			AnnualIncome:   3_600_000,
			Returns:        domain.Returns{YTD: 8.4, OneYear: 11.2, ThreeYear: 10.1},
			NeedsAction:    true,
			ActionReason:   "Bonus proceeds parked in savings account",
			JoinDate:       day(-9, -2, 0),
			Goals: []domain.Goal{
				{
					ID:                  "goal-1",
					ClientID:            "client-1",
					Name:                "Retirement corpus",
					Type:                domain.GoalRetirement,
					TargetAmount:        30_000_000,
					TargetDate:          day(8, 0, 0),
					CurrentAmount:       5_200_000,
					MonthlyContribution: 60_000,
					Returns:             domain.Returns{YTD: 9.1, OneYear: 12.0, ThreeYear: 10.8},
					Portfolio: domain.Portfolio{Funds: []domain.FundAllocation{
						fund("Bluechip Equity Fund", "equity", 45, 11.5, 16.0),
						fund("Flexi Cap Fund", "equity", 25, 9.8, 17.5),
						fund("Corporate Bond Fund", "debt", 20, 7.1, 3.2),
						fund("Gold ETF", "gold", 10, 14.2, 12.5),
					}},
				},
				{
					ID:                  "goal-2",
					ClientID:            "client-1",
					Name:                "Daughter's postgraduate studies",
					Type:                domain.GoalEducation,
					TargetAmount:        4_000_000,
					TargetDate:          day(3, 0, 0),
					CurrentAmount:       1_175_000,
					MonthlyContribution: 25_000,
					Returns:             domain.Returns{YTD: 6.2, OneYear: 8.3, ThreeYear: 7.9},
					Portfolio: domain.Portfolio{Funds: []domain.FundAllocation{
						fund("Balanced Advantage Fund", "hybrid", 60, 8.2, 9.0),
						fund("Short Duration Debt Fund", "debt", 40, 6.9, 2.1),
					}},
				},
			},
			MeetingNotes: []domain.MeetingNote{
				{
					ID:           "note-1",
					Date:         day(0, -2, 0),
					Summary:      "Discussed deploying bonus cash; client wants to wait for a market dip.",
					FollowUpDate: ptr(day(0, 0, -10)),
				},
			},
		},
		{
			ID:             "client-2",
			Name:           "Ananya Iyer",
			Email:          "ananya.iyer@example.com",
			Phone:          "+91 99300 44556",
			Age:            34,
			RiskProfile:    domain.RiskAggressive,
			TotalPortfolio: 4_200_000,
			CashHoldings:   210_000,
			AnnualIncome:   2_800_000,
			Returns:        domain.Returns{YTD: 14.6, OneYear: 18.9, ThreeYear: 15.2},
			JoinDate:       day(-4, -6, 0),
			Goals: []domain.Goal{
				{
					ID:                  "goal-3",
					ClientID:            "client-2",
					Name:                "Early retirement",
					Type:                domain.GoalRetirement,
					TargetAmount:        50_000_000,
					TargetDate:          day(16, 0, 0),
					CurrentAmount:       3_400_000,
					MonthlyContribution: 75_000,
					Returns:             domain.Returns{YTD: 15.4, OneYear: 19.5, ThreeYear: 16.0},
					Portfolio: domain.Portfolio{Funds: []domain.FundAllocation{
						fund("Technology Sector Fund", "equity", 40, 21.3, 24.0),
						fund("Small Cap Fund", "equity", 30, 17.8, 22.5),
						fund("US Equity Feeder Fund", "international", 20, 12.4, 18.0),
						fund("Liquid Fund", "cash", 10, 6.5, 0.5),
					}},
				},
				{
					ID:                  "goal-4",
					ClientID:            "client-2",
					Name:                "Apartment down payment",
					Type:                domain.GoalHome,
					TargetAmount:        2_500_000,
					TargetDate:          day(2, 0, 0),
					CurrentAmount:       590_000,
					MonthlyContribution: 20_000,
					Returns:             domain.Returns{YTD: 7.8, OneYear: 9.1, ThreeYear: 8.4},
					Portfolio: domain.Portfolio{Funds: []domain.FundAllocation{
						fund("Balanced Advantage Fund", "hybrid", 70, 8.2, 9.0),
						fund("Arbitrage Fund", "hybrid", 25, 6.8, 1.2),
					}},
				},
			},
		},
		{
			ID:             "client-3",
			Name:           "Vikram Mehta",
			Email:          "vikram.mehta@example.com",
			Phone:          "+91 98190 77889",
			Age:            63,
			RiskProfile:    domain.RiskConservative,
			TotalPortfolio: 12_000_000,
			CashHoldings:   2_160_000,
			AnnualIncome:   1_200_000,
			Returns:        domain.Returns{YTD: 4.1, OneYear: 6.3, ThreeYear: 6.8},
			JoinDate:       day(-12, 0, 0),
			Goals: []domain.Goal{
				{
					ID:                  "goal-5",
					ClientID:            "client-3",
					Name:                "Retirement income",
					Type:                domain.GoalRetirement,
					TargetAmount:        12_000_000,
					TargetDate:          day(2, 0, 0),
					CurrentAmount:       9_840_000,
					MonthlyContribution: 0,
					Returns:             domain.Returns{YTD: 4.3, OneYear: 6.5, ThreeYear: 6.9},
					Portfolio: domain.Portfolio{Funds: []domain.FundAllocation{
						fund("Gilt Fund", "debt", 40, 5.8, 4.5),
						fund("Corporate Bond Fund", "debt", 35, 7.1, 3.2),
						fund("Equity Savings Fund", "hybrid", 15, 6.4, 6.0),
						fund("Gold ETF", "gold", 10, 14.2, 12.5),
					}},
				},
			},
			MeetingNotes: []domain.MeetingNote{
				{
					ID:           "note-2",
					Date:         day(0, -1, 0),
					Summary:      "Reviewed annuity options and monthly withdrawal plan.",
					FollowUpDate: ptr(day(0, 0, 14)),
				},
			},
		},
		{
			ID:             "client-4",
			Name:           "Priya Nair",
			Email:          "priya.nair@example.com",
			Phone:          "+91 97400 22334",
			Age:            41,
			RiskProfile:    domain.RiskModerate,
			TotalPortfolio: 6_300_000,
			CashHoldings:   1_134_000,
			AnnualIncome:   4_100_000,
			Returns:        domain.Returns{YTD: -1.8, OneYear: 3.2, ThreeYear: 9.0},
			NeedsAction:    true,
			ActionReason:   "Requested review after job change",
			JoinDate:       day(-6, -3, 0),
			Goals: []domain.Goal{
				{
					ID:                  "goal-6",
					ClientID:            "client-4",
					Name:                "Children's education fund",
					Type:                domain.GoalEducation,
					TargetAmount:        8_000_000,
					TargetDate:          day(7, 0, 0),
					CurrentAmount:       1_400_000,
					MonthlyContribution: 15_000,
					Returns:             domain.Returns{YTD: -2.4, OneYear: 2.8, ThreeYear: 8.7},
					Portfolio: domain.Portfolio{Funds: []domain.FundAllocation{
						fund("Mid Cap Fund", "equity", 50, -4.2, 20.5),
						fund("Flexi Cap Fund", "equity", 30, 9.8, 17.5),
						fund("Dynamic Bond Fund", "debt", 20, 6.2, 4.0),
					}},
				},
				{
					ID:                  "goal-7",
					ClientID:            "client-4",
					Name:                "Wealth creation",
					Type:                domain.GoalWealth,
					TargetAmount:        10_000_000,
					TargetDate:          day(12, 0, 0),
					CurrentAmount:       3_766_000,
					MonthlyContribution: 30_000,
					Returns:             domain.Returns{YTD: -1.2, OneYear: 3.6, ThreeYear: 9.3},
					Portfolio: domain.Portfolio{Funds: []domain.FundAllocation{
						fund("Bluechip Equity Fund", "equity", 60, 11.5, 16.0),
						fund("Mid Cap Fund", "equity", 25, -4.2, 20.5),
						fund("Gold ETF", "gold", 15, 14.2, 12.5),
					}},
				},
			},
			MeetingNotes: []domain.MeetingNote{
				{
					ID:           "note-3",
					Date:         day(0, -3, 0),
					Summary:      "New employer offers ESOPs; revisit asset allocation once vesting is known.",
					FollowUpDate: ptr(day(0, -1, 0)),
				},
				{
					ID:           "note-4",
					Date:         day(0, -5, 0),
					Summary:      "Annual review; agreed to raise education SIP next year.",
					FollowUpDone: true,
					FollowUpDate: ptr(day(0, -4, 0)),
				},
			},
		},
		{
			ID:             "client-5",
			Name:           "Arjun Kapoor",
			Email:          "arjun.kapoor@example.com",
			Phone:          "+91 98860 55667",
			Age:            29,
			RiskProfile:    domain.RiskAggressive,
			TotalPortfolio: 1_500_000,
			CashHoldings:   90_000,
			AnnualIncome:   1_900_000,
			Returns:        domain.Returns{YTD: 12.3, OneYear: 16.1, ThreeYear: 0},
			JoinDate:       day(-1, -4, 0),
			Goals: []domain.Goal{
				{
					ID:                  "goal-8",
					ClientID:            "client-5",
					Name:                "Emergency reserve",
					Type:                domain.GoalEmergency,
					TargetAmount:        600_000,
					TargetDate:          day(1, 0, 0),
					CurrentAmount:       450_000,
					MonthlyContribution: 15_000,
					Returns:             domain.Returns{YTD: 6.6, OneYear: 6.9},
					Portfolio: domain.Portfolio{Funds: []domain.FundAllocation{
						fund("Liquid Fund", "cash", 100, 6.5, 0.5),
					}},
				},
				{
					ID:                  "goal-9",
					ClientID:            "client-5",
					Name:                "Wealth creation",
					Type:                domain.GoalWealth,
					TargetAmount:        5_000_000,
					TargetDate:          day(10, 0, 0),
					CurrentAmount:       960_000,
					MonthlyContribution: 20_000,
					Returns:             domain.Returns{YTD: 15.8, OneYear: 20.4},
					Portfolio: domain.Portfolio{Funds: []domain.FundAllocation{
						fund("Small Cap Fund", "equity", 55, 17.8, 22.5),
						fund("Technology Sector Fund", "equity", 45, 21.3, 24.0),
					}},
				},
			},
		},
	}
}

func seedModelPortfolios(now time.Time) []*domain.ModelPortfolio {
	models := []*domain.ModelPortfolio{
		{
			ID:          "model-1",
			Name:        "Capital Preservation",
			RiskProfile: domain.RiskConservative,
			Category:    "retirement",
			Description: "Debt-heavy allocation for investors drawing an income.",
			Funds: []domain.FundAllocation{
				fund("Gilt Fund", "debt", 35, 5.8, 4.5),
				fund("Corporate Bond Fund", "debt", 35, 7.1, 3.2),
				fund("Equity Savings Fund", "hybrid", 20, 6.4, 6.0),
				fund("Gold ETF", "gold", 10, 14.2, 12.5),
			},
		},
		{
			ID:          "model-2",
			Name:        "Conservative Short Horizon",
			RiskProfile: domain.RiskConservative,
			Category:    "short-term",
			Description: "For goals under three years away.",
			Funds: []domain.FundAllocation{
				fund("Short Duration Debt Fund", "debt", 50, 6.9, 2.1),
				fund("Arbitrage Fund", "hybrid", 30, 6.8, 1.2),
				fund("Liquid Fund", "cash", 20, 6.5, 0.5),
			},
		},
		{
			ID:          "model-3",
			Name:        "Balanced Growth",
			RiskProfile: domain.RiskModerate,
			Category:    "retirement",
			Description: "Core equity with a debt ballast and a gold hedge.",
			Funds: []domain.FundAllocation{
				fund("Bluechip Equity Fund", "equity", 40, 11.5, 16.0),
				fund("Flexi Cap Fund", "equity", 20, 9.8, 17.5),
				fund("Corporate Bond Fund", "debt", 30, 7.1, 3.2),
				fund("Gold ETF", "gold", 10, 14.2, 12.5),
			},
		},
		{
			ID:          "model-4",
			Name:        "Education Planner",
			RiskProfile: domain.RiskModerate,
			Category:    "education",
			Description: "Glide path allocation for education goals five to ten years out.",
			Funds: []domain.FundAllocation{
				fund("Flexi Cap Fund", "equity", 40, 9.8, 17.5),
				fund("Balanced Advantage Fund", "hybrid", 35, 8.2, 9.0),
				fund("Dynamic Bond Fund", "debt", 25, 6.2, 4.0),
			},
		},
		{
			ID:          "model-5",
			Name:        "Aggressive Growth",
			RiskProfile: domain.RiskAggressive,
			Category:    "wealth",
			Description: "Equity-led allocation for long horizons.",
			Funds: []domain.FundAllocation{
				fund("Flexi Cap Fund", "equity", 30, 9.8, 17.5),
				fund("Small Cap Fund", "equity", 25, 17.8, 22.5),
				fund("Mid Cap Fund", "equity", 20, -4.2, 20.5),
				fund("US Equity Feeder Fund", "international", 15, 12.4, 18.0),
				fund("Gold ETF", "gold", 10, 14.2, 12.5),
			},
		},
		{
			ID:          "model-6",
			Name:        "Global Diversifier",
			RiskProfile: domain.RiskAggressive,
			Category:    "retirement",
			Description: "Adds international and sector exposure to a core equity book.",
			Funds: []domain.FundAllocation{
				fund("Bluechip Equity Fund", "equity", 35, 11.5, 16.0),
				fund("US Equity Feeder Fund", "international", 25, 12.4, 18.0),
				fund("Technology Sector Fund", "equity", 15, 21.3, 24.0),
				fund("Corporate Bond Fund", "debt", 25, 7.1, 3.2),
			},
		},
	}

	for _, mp := range models {
		mp.CreatedAt = now
		mp.UpdatedAt = now
	}

	return models
}

