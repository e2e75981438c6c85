package metadomain

import "github.com/vfg2006/ads-autopilot-api/internal/domain"

// Action é um item das listas actions e cost_per_action_type
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightRecord é a linha de insights como chega da Graph API: números como texto
// e conversões em listas tipadas por action_type.
type InsightRecord struct {
	AccountID      string   `json:"account_id"`
	CampaignID     string   `json:"campaign_id"`
	AdSetID        string   `json:"adset_id"`
	AdID           string   `json:"ad_id"`
	Actions        []Action `json:"actions"`
	Clicks         string   `json:"clicks"`
	CostPerActions []Action `json:"cost_per_action_type"`
	CPC            string   `json:"cpc"`
	CPM            string   `json:"cpm"`
	CTR            string   `json:"ctr"`
	DateStart      string   `json:"date_start"`
	DateStop       string   `json:"date_stop"`
	Frequency      string   `json:"frequency"`
	Impressions    string   `json:"impressions"`
	Reach          string   `json:"reach"`
	Spend          string   `json:"spend"`
}

// Mapeamento de evento de conversão -> action_type da Graph API.
// quiz_complete é um evento customizado do pixel e pode ser sobrescrito por configuração.
var ConversionActionTypes = map[domain.ConversionEvent]string{
	domain.ConversionQuizComplete: "offsite_conversion.fb_pixel_custom",
	domain.ConversionAddToCart:    "offsite_conversion.fb_pixel_add_to_cart",
	domain.ConversionPurchase:     "offsite_conversion.fb_pixel_purchase",
	domain.ConversionLead:         "lead",
}

// Mapeamento de DateRange -> date_preset da Graph API
var DatePresets = map[domain.DateRange]string{
	domain.DateRangeToday:      "today",
	domain.DateRangeYesterday:  "yesterday",
	domain.DateRangeLast7Days:  "last_7d",
	domain.DateRangeLast30Days: "last_30d",
}

const InsightFields = "account_id,campaign_id,adset_id,ad_id,impressions,clicks,reach,spend,ctr,cpc,cpm,frequency,actions,cost_per_action_type"
