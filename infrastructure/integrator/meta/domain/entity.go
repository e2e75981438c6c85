package metadomain

import "encoding/json"

type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	Objective      string `json:"objective"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
}

type AdSet struct {
	ID               string          `json:"id"`
	CampaignID       string          `json:"campaign_id"`
	Name             string          `json:"name"`
	Status           string          `json:"status"`
	DailyBudget      string          `json:"daily_budget"`
	Targeting        json.RawMessage `json:"targeting"`
	OptimizationGoal string          `json:"optimization_goal"`
}

type Ad struct {
	ID       string          `json:"id"`
	AdSetID  string          `json:"adset_id"`
	Name     string          `json:"name"`
	Status   string          `json:"status"`
	Creative json.RawMessage `json:"creative"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// Page é o envelope de listagem da Graph API
type Page[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

// StatusUpdateResponse é a resposta de escrita da Graph API
type StatusUpdateResponse struct {
	Success bool `json:"success"`
}
