package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid decision config")

type AutoActions struct {
	PauseUnderperformers bool `json:"pause_underperformers"`
	ScaleWinners         bool `json:"scale_winners"`
	AlertOnHighCPA       bool `json:"alert_on_high_cpa"`
}

// DecisionConfig é a política de classificação de uma execução de análise.
// É montada uma vez por execução e passada por valor.
//
// Os campos de orçamento são usados apenas para a proposta de orçamento do SCALE.
type DecisionConfig struct {
	MinCTR                float64         `json:"min_ctr"`
	TargetCTR             float64         `json:"target_ctr"`
	MaxCPA                float64         `json:"max_cpa"`
	MinImpressions        int64           `json:"min_impressions"`
	BudgetIncreasePercent float64         `json:"budget_increase_percent"`
	BudgetDecreasePercent float64         `json:"budget_decrease_percent"`
	MinDailyBudget        float64         `json:"min_daily_budget"`
	MaxDailyBudget        float64         `json:"max_daily_budget"`
	ConversionEvent       ConversionEvent `json:"conversion_event"`
	AutoActions           AutoActions     `json:"auto_actions"`
}

func DefaultDecisionConfig() DecisionConfig {
	return DecisionConfig{
		MinCTR:                1.0,
		TargetCTR:             2.0,
		MaxCPA:                5.0,
		MinImpressions:        500,
		BudgetIncreasePercent: 20,
		BudgetDecreasePercent: 30,
		ConversionEvent:       ConversionQuizComplete,
		AutoActions: AutoActions{
			AlertOnHighCPA: true,
		},
	}
}

func (c DecisionConfig) Validate() error {
	switch {
	case c.MinCTR < 0 || c.TargetCTR < 0:
		return fmt.Errorf("%w: ctr thresholds must be non-negative", ErrInvalidConfig)
	case c.TargetCTR < c.MinCTR:
		return fmt.Errorf("%w: target_ctr (%.2f) below min_ctr (%.2f)", ErrInvalidConfig, c.TargetCTR, c.MinCTR)
	case c.MaxCPA < 0:
		return fmt.Errorf("%w: max_cpa must be non-negative", ErrInvalidConfig)
	case c.MinImpressions < 0:
		return fmt.Errorf("%w: min_impressions must be non-negative", ErrInvalidConfig)
	case c.BudgetIncreasePercent < 0 || c.BudgetDecreasePercent < 0:
		return fmt.Errorf("%w: budget percentages must be non-negative", ErrInvalidConfig)
	case c.MinDailyBudget < 0 || c.MaxDailyBudget < 0:
		return fmt.Errorf("%w: budget bounds must be non-negative", ErrInvalidConfig)
	case c.MaxDailyBudget > 0 && c.MinDailyBudget > c.MaxDailyBudget:
		return fmt.Errorf("%w: min_daily_budget above max_daily_budget", ErrInvalidConfig)
	case !c.ConversionEvent.Valid():
		return fmt.Errorf("%w: unknown conversion event %q", ErrInvalidConfig, c.ConversionEvent)
	}
	return nil
}

type AutoActionsOptions struct {
	PauseUnderperformers *bool `json:"pause_underperformers,omitempty"`
	ScaleWinners         *bool `json:"scale_winners,omitempty"`
	AlertOnHighCPA       *bool `json:"alert_on_high_cpa,omitempty"`
}

// DecisionOptions é a configuração parcial enviada pelo chamador.
// Campos nil herdam o valor padrão.
type DecisionOptions struct {
	MinCTR                *float64            `json:"min_ctr,omitempty"`
	TargetCTR             *float64            `json:"target_ctr,omitempty"`
	MaxCPA                *float64            `json:"max_cpa,omitempty"`
	MinImpressions        *int64              `json:"min_impressions,omitempty"`
	BudgetIncreasePercent *float64            `json:"budget_increase_percent,omitempty"`
	BudgetDecreasePercent *float64            `json:"budget_decrease_percent,omitempty"`
	MinDailyBudget        *float64            `json:"min_daily_budget,omitempty"`
	MaxDailyBudget        *float64            `json:"max_daily_budget,omitempty"`
	ConversionEvent       *ConversionEvent    `json:"conversion_event,omitempty"`
	AutoActions           *AutoActionsOptions `json:"auto_actions,omitempty"`
}

// Resolve aplica as opções sobre os padrões e devolve uma cópia nova
func (o *DecisionOptions) Resolve(defaults DecisionConfig) DecisionConfig {
	cfg := defaults
	if o == nil {
		return cfg
	}

	setFloat(&cfg.MinCTR, o.MinCTR)
	setFloat(&cfg.TargetCTR, o.TargetCTR)
	setFloat(&cfg.MaxCPA, o.MaxCPA)
	setFloat(&cfg.BudgetIncreasePercent, o.BudgetIncreasePercent)
	setFloat(&cfg.BudgetDecreasePercent, o.BudgetDecreasePercent)
	setFloat(&cfg.MinDailyBudget, o.MinDailyBudget)
	setFloat(&cfg.MaxDailyBudget, o.MaxDailyBudget)

	if o.MinImpressions != nil {
		cfg.MinImpressions = *o.MinImpressions
	}
	if o.ConversionEvent != nil {
		cfg.ConversionEvent = *o.ConversionEvent
	}

	if o.AutoActions != nil {
		setBool(&cfg.AutoActions.PauseUnderperformers, o.AutoActions.PauseUnderperformers)
		setBool(&cfg.AutoActions.ScaleWinners, o.AutoActions.ScaleWinners)
		setBool(&cfg.AutoActions.AlertOnHighCPA, o.AutoActions.AlertOnHighCPA)
	}

	return cfg
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
