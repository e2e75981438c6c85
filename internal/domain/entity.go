package domain

import "encoding/json"

// EntityStatus é o status de ciclo de vida de uma entidade na plataforma de anúncios.
// Valores fora de ACTIVE/PAUSED são mantidos como vieram da plataforma.
type EntityStatus string

const (
	StatusActive   EntityStatus = "ACTIVE"
	StatusPaused   EntityStatus = "PAUSED"
	StatusArchived EntityStatus = "ARCHIVED"
	StatusDeleted  EntityStatus = "DELETED"
)

func (s EntityStatus) IsActive() bool {
	return s == StatusActive
}

// Level indica o nível hierárquico de uma entidade ao buscar insights
type Level string

const (
	LevelAccount  Level = "account"
	LevelCampaign Level = "campaign"
	LevelAdSet    Level = "adset"
	LevelAd       Level = "ad"
)

type Campaign struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Status         EntityStatus `json:"status"`
	Objective      string       `json:"objective"`
	DailyBudget    float64      `json:"daily_budget"`
	LifetimeBudget float64      `json:"lifetime_budget"`
}

type AdSet struct {
	ID               string          `json:"id"`
	CampaignID       string          `json:"campaign_id"`
	Name             string          `json:"name"`
	Status           EntityStatus    `json:"status"`
	DailyBudget      float64         `json:"daily_budget"`
	Targeting        json.RawMessage `json:"targeting,omitempty"`
	OptimizationGoal string          `json:"optimization_goal"`
}

type Ad struct {
	ID       string          `json:"id"`
	AdSetID  string          `json:"adset_id"`
	Name     string          `json:"name"`
	Status   EntityStatus    `json:"status"`
	Creative json.RawMessage `json:"creative,omitempty"`
}
