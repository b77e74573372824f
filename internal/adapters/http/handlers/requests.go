package handlers

import (
	"time"

	"github.com/jsamuelsen/advisor-dashboard/internal/app"
	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
)

// GoalRequest is the body of POST /api/clients/:id/goals and one entry of a
// new client's goals. Fund weights are not required to total 100.
type GoalRequest struct {
	Name                string           `json:"name"                validate:"notempty"`
	Type                domain.GoalType  `json:"type"`
	TargetAmount        float64          `json:"targetAmount"        validate:"gt=0"`
	TargetDate          time.Time        `json:"targetDate"`
	CurrentAmount       float64          `json:"currentAmount"       validate:"gte=0"`
	MonthlyContribution float64          `json:"monthlyContribution" validate:"gte=0"`
	Portfolio           domain.Portfolio `json:"portfolio"`
	Returns             domain.Returns   `json:"returns"`
}

func (r *GoalRequest) toDomain() (domain.Goal, error) {
	if r.TargetDate.IsZero() {
		return domain.Goal{}, domain.NewValidationError("targetDate", "this field is required")
	}

	goalType := r.Type
	if goalType == "" {
		goalType = domain.GoalOther
	}

	return domain.Goal{
		Name:                r.Name,
		Type:                goalType,
		TargetAmount:        r.TargetAmount,
		TargetDate:          r.TargetDate,
		CurrentAmount:       r.CurrentAmount,
		MonthlyContribution: r.MonthlyContribution,
		Portfolio:           r.Portfolio,
		Returns:             r.Returns,
	}, nil
}

// CreateClientRequest is the body of POST /api/clients. Ids are always
// assigned by the server.
type CreateClientRequest struct {
	Name           string             `json:"name"           validate:"notempty"`
	Email          string             `json:"email"          validate:"omitempty,email"`
	Phone          string             `json:"phone"`
	Age            int                `json:"age"            validate:"gte=0,lte=120"`
	RiskProfile    domain.RiskProfile `json:"riskProfile"    validate:"required,riskprofile"`
	TotalPortfolio float64            `json:"totalPortfolio" validate:"gte=0"`
	CashHoldings   float64            `json:"cashHoldings"   validate:"gte=0"`
	AnnualIncome   float64            `json:"annualIncome"   validate:"gte=0"`
	Returns        domain.Returns     `json:"returns"`
	NeedsAction    bool               `json:"needsAction"`
	ActionReason   string             `json:"actionReason"`
	JoinDate       *time.Time         `json:"joinDate"`
	Goals          []GoalRequest      `json:"goals"          validate:"dive"`
}

func (r *CreateClientRequest) toDomain() (*domain.Client, error) {
	client := &domain.Client{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Age:            r.Age,
		RiskProfile:    r.RiskProfile,
		TotalPortfolio: r.TotalPortfolio,
		CashHoldings:   r.CashHoldings,
		AnnualIncome:   r.AnnualIncome,
		Returns:        r.Returns,
		NeedsAction:    r.NeedsAction,
		ActionReason:   r.ActionReason,
		Goals:          make([]domain.Goal, 0, len(r.Goals)),
	}

	if r.JoinDate != nil {
		client.JoinDate = *r.JoinDate
	}

	for i := range r.Goals {
		goal, err := r.Goals[i].toDomain()
		if err != nil {
			return nil, err
		}

		client.Goals = append(client.Goals, goal)
	}

	return client, nil
}

// UpdateClientRequest is the body of PATCH /api/clients/:id. A goals field in
// the body is ignored.
type UpdateClientRequest struct {
	Name           *string             `json:"name"           validate:"omitempty,notempty"`
	Email          *string             `json:"email"          validate:"omitempty,email"`
	Phone          *string             `json:"phone"`
	Age            *int                `json:"age"            validate:"omitempty,gte=0,lte=120"`
	RiskProfile    *domain.RiskProfile `json:"riskProfile"    validate:"omitempty,riskprofile"`
	TotalPortfolio *float64            `json:"totalPortfolio" validate:"omitempty,gte=0"`
	CashHoldings   *float64            `json:"cashHoldings"   validate:"omitempty,gte=0"`
	AnnualIncome   *float64            `json:"annualIncome"   validate:"omitempty,gte=0"`
	Returns        *domain.Returns     `json:"returns"`
	NeedsAction    *bool               `json:"needsAction"`
	ActionReason   *string             `json:"actionReason"`
	JoinDate       *time.Time          `json:"joinDate"`
}

func (r *UpdateClientRequest) toPatch() app.ClientPatch {
	return app.ClientPatch{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Age:            r.Age,
		RiskProfile:    r.RiskProfile,
		TotalPortfolio: r.TotalPortfolio,
		CashHoldings:   r.CashHoldings,
		AnnualIncome:   r.AnnualIncome,
		Returns:        r.Returns,
		NeedsAction:    r.NeedsAction,
		ActionReason:   r.ActionReason,
		JoinDate:       r.JoinDate,
	}
}

// UpdateGoalRequest is the body of PATCH /api/clients/:id/goals/:goalId.
type UpdateGoalRequest struct {
	Name                *string           `json:"name"                validate:"omitempty,notempty"`
	Type                *domain.GoalType  `json:"type"`
	TargetAmount        *float64          `json:"targetAmount"        validate:"omitempty,gt=0"`
	TargetDate          *time.Time        `json:"targetDate"`
	CurrentAmount       *float64          `json:"currentAmount"       validate:"omitempty,gte=0"`
	MonthlyContribution *float64          `json:"monthlyContribution" validate:"omitempty,gte=0"`
	Portfolio           *domain.Portfolio `json:"portfolio"`
	Returns             *domain.Returns   `json:"returns"`
}

func (r *UpdateGoalRequest) toPatch() app.GoalPatch {
	return app.GoalPatch{
		Name:                r.Name,
		Type:                r.Type,
		TargetAmount:        r.TargetAmount,
		TargetDate:          r.TargetDate,
		CurrentAmount:       r.CurrentAmount,
		MonthlyContribution: r.MonthlyContribution,
		Portfolio:           r.Portfolio,
		Returns:             r.Returns,
	}
}

// MeetingNoteRequest is the body of POST /api/clients/:id/notes.
type MeetingNoteRequest struct {
	Summary      string     `json:"summary"      validate:"notempty"`
	Date         *time.Time `json:"date"`
	FollowUpDate *time.Time `json:"followUpDate"`
}

func (r *MeetingNoteRequest) toDomain() domain.MeetingNote {
	note := domain.MeetingNote{
		Summary:      r.Summary,
		FollowUpDate: r.FollowUpDate,
	}

	if r.Date != nil {
		note.Date = *r.Date
	}

	return note
}

// ApplyModelRequest is the body of POST /api/clients/:id/goals/:goalId/apply-model.
type ApplyModelRequest struct {
	ModelPortfolioID string `json:"modelPortfolioId" validate:"notempty"`
}

// ModelPortfolioRequest is the body of POST /api/model-portfolios. Funds are
// checked by the service so that the error names the bad fund or the actual sum.
type ModelPortfolioRequest struct {
	Name        string                  `json:"name"        validate:"notempty"`
	RiskProfile domain.RiskProfile      `json:"riskProfile" validate:"required,riskprofile"`
	Category    string                  `json:"category"`
	Description string                  `json:"description"`
	Funds       []domain.FundAllocation `json:"funds"`
}

func (r *ModelPortfolioRequest) toDomain() *domain.ModelPortfolio {
	return &domain.ModelPortfolio{
		Name:        r.Name,
		RiskProfile: r.RiskProfile,
		Category:    r.Category,
		Description: r.Description,
		Funds:       r.Funds,
	}
}

// UpdateModelPortfolioRequest is the body of PATCH /api/model-portfolios/:id.
type UpdateModelPortfolioRequest struct {
	Name        *string                 `json:"name"        validate:"omitempty,notempty"`
	RiskProfile *domain.RiskProfile     `json:"riskProfile" validate:"omitempty,riskprofile"`
	Category    *string                 `json:"category"`
	Description *string                 `json:"description"`
	Funds       []domain.FundAllocation `json:"funds"`
}

func (r *UpdateModelPortfolioRequest) toPatch() app.ModelPortfolioPatch {
	return app.ModelPortfolioPatch{
		Name:        r.Name,
		RiskProfile: r.RiskProfile,
		Category:    r.Category,
		Description: r.Description,
		Funds:       r.Funds,
	}
}

// ChatRequest is the body of POST /api/dora/chat. An empty message is
// rejected by the assistant, not by binding.
type ChatRequest struct {
	Message  string `json:"message"`
	ClientID string `json:"clientId"`
}
