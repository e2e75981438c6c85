package domain

type DecisionType string

const (
	DecisionLearning       DecisionType = "LEARNING"
	DecisionUnderperformer DecisionType = "UNDERPERFORMER"
	DecisionWinner         DecisionType = "WINNER"
	DecisionAcceptable     DecisionType = "ACCEPTABLE"
)

type DecisionAction string

const (
	ActionWait     DecisionAction = "WAIT"
	ActionPause    DecisionAction = "PAUSE"
	ActionScale    DecisionAction = "SCALE"
	ActionMaintain DecisionAction = "MAINTAIN"
)

// Decision é a classificação de um anúncio em uma execução de análise
type Decision struct {
	EntityID         string         `json:"entity_id"`
	EntityName       string         `json:"entity_name"`
	CampaignID       string         `json:"campaign_id"`
	AdSetID          string         `json:"adset_id"`
	AdSetDailyBudget float64        `json:"adset_daily_budget"`
	Type             DecisionType   `json:"type"`
	Reason           string         `json:"reason"`
	Action           DecisionAction `json:"action"`
	Metrics          Insight        `json:"metrics"`
	AutoExecute      bool           `json:"auto_execute"`
}

type AlertType string

const AlertHighCPA AlertType = "HIGH_CPA"

type AlertSeverity string

const SeverityWarning AlertSeverity = "WARNING"

type Alert struct {
	EntityID          string        `json:"entity_id"`
	EntityName        string        `json:"entity_name"`
	Type              AlertType     `json:"type"`
	Message           string        `json:"message"`
	Severity          AlertSeverity `json:"severity"`
	CostPerConversion float64       `json:"cost_per_conversion"`
	MaxCPA            float64       `json:"max_cpa"`
}

type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "HIGH"
	PriorityMedium RecommendationPriority = "MEDIUM"
	PriorityLow    RecommendationPriority = "LOW"
)

type RecommendationType string

const (
	RecommendationScaleWinners RecommendationType = "SCALE_WINNERS"
	RecommendationPauseLosers  RecommendationType = "PAUSE_LOSERS"
	RecommendationWaitForData  RecommendationType = "WAIT_FOR_DATA"
	RecommendationCPAAlert     RecommendationType = "CPA_ALERT"
)

type Recommendation struct {
	Priority RecommendationPriority `json:"priority"`
	Type     RecommendationType     `json:"type"`
	Message  string                 `json:"message"`
	Entities []string               `json:"entities,omitempty"`
	Alerts   []Alert                `json:"alerts,omitempty"`
}
