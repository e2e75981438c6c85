package domain

import "time"

// AnalysisReport é o resultado de uma execução de AnalyzePerformance
type AnalysisReport struct {
	ID              string           `json:"id"`
	AccountID       string           `json:"account_id"`
	DateRange       DateRange        `json:"date_range"`
	Timestamp       time.Time        `json:"timestamp"`
	AccountSummary  Insight          `json:"account_summary"`
	Decisions       []Decision       `json:"decisions"`
	Alerts          []Alert          `json:"alerts"`
	Recommendations []Recommendation `json:"recommendations"`
	Config          DecisionConfig   `json:"config"`
}

type AnalyzeRequest struct {
	AccountID string
	DateRange DateRange
	Options   *DecisionOptions
}

type ExecutionResult struct {
	EntityID            string         `json:"entity_id"`
	Action              DecisionAction `json:"action"`
	Success             bool           `json:"success"`
	Error               string         `json:"error,omitempty"`
	Message             string         `json:"message,omitempty"`
	ProposedDailyBudget *float64       `json:"proposed_daily_budget,omitempty"`
}

type ExecutionResponse struct {
	ReportID string            `json:"report_id"`
	Results  []ExecutionResult `json:"results"`
}
