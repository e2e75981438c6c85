package domain

// ConversionEvent é o conjunto fechado de eventos de funil que a análise conhece.
// O mapeamento para os action types da plataforma fica no integrador.
type ConversionEvent string

const (
	ConversionQuizComplete ConversionEvent = "quiz_complete"
	ConversionAddToCart    ConversionEvent = "add_to_cart"
	ConversionPurchase     ConversionEvent = "purchase"
	ConversionLead         ConversionEvent = "lead"
)

var ConversionEvents = []ConversionEvent{
	ConversionQuizComplete,
	ConversionAddToCart,
	ConversionPurchase,
	ConversionLead,
}

func (e ConversionEvent) Valid() bool {
	for _, known := range ConversionEvents {
		if e == known {
			return true
		}
	}
	return false
}

// Insight contém as métricas agregadas de uma entidade em uma janela de datas.
//
// CTR é reportado pela plataforma e nunca recalculado; nil significa que ainda não
// há CTR calculável. Defaulted lista os campos que vieram ausentes ou inválidos e
// foram zerados na normalização.
type Insight struct {
	Impressions       int64                       `json:"impressions"`
	Clicks            int64                       `json:"clicks"`
	Reach             int64                       `json:"reach"`
	Spend             float64                     `json:"spend"`
	CTR               *float64                    `json:"ctr"`
	CPC               float64                     `json:"cpc"`
	CPM               float64                     `json:"cpm"`
	Frequency         float64                     `json:"frequency"`
	Conversions       map[ConversionEvent]int64   `json:"conversions"`
	CostPerConversion map[ConversionEvent]float64 `json:"cost_per_conversion"`
	DateStart         string                      `json:"date_start,omitempty"`
	DateStop          string                      `json:"date_stop,omitempty"`
	Defaulted         []string                    `json:"defaulted,omitempty"`
}

// EmptyInsight representa uma entidade sem entrega no período
func EmptyInsight() Insight {
	return Insight{
		Conversions:       make(map[ConversionEvent]int64),
		CostPerConversion: make(map[ConversionEvent]float64),
	}
}

// CTRValue retorna o CTR e se ele foi reportado
func (i Insight) CTRValue() (float64, bool) {
	if i.CTR == nil {
		return 0, false
	}
	return *i.CTR, true
}

func (i Insight) ConversionCount(event ConversionEvent) int64 {
	return i.Conversions[event]
}

func (i Insight) CostPer(event ConversionEvent) float64 {
	return i.CostPerConversion[event]
}

// WasDefaulted informa se o campo foi zerado por ausência de dado
func (i Insight) WasDefaulted(field string) bool {
	for _, f := range i.Defaulted {
		if f == field {
			return true
		}
	}
	return false
}
