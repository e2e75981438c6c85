package decisioning

import (
	"fmt"

	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

// BuildRecommendations resume o lote de decisões e alertas. Função pura: a mesma
// entrada gera sempre a mesma saída, na ordem SCALE_WINNERS, PAUSE_LOSERS,
// WAIT_FOR_DATA, CPA_ALERT.
func BuildRecommendations(decisions []domain.Decision, alerts []domain.Alert) []domain.Recommendation {
	groups := make(map[domain.DecisionType][]string)
	for _, d := range decisions {
		groups[d.Type] = append(groups[d.Type], d.EntityName)
	}

	recommendations := make([]domain.Recommendation, 0, 4)

	if winners := groups[domain.DecisionWinner]; len(winners) > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			Priority: domain.PriorityHigh,
			Type:     domain.RecommendationScaleWinners,
			Message:  fmt.Sprintf("%d %s performing above target CTR, consider scaling budget", len(winners), pluralAds(len(winners))),
			Entities: winners,
		})
	}

	if losers := groups[domain.DecisionUnderperformer]; len(losers) > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			Priority: domain.PriorityHigh,
			Type:     domain.RecommendationPauseLosers,
			Message:  fmt.Sprintf("%d %s below minimum CTR, consider pausing", len(losers), pluralAds(len(losers))),
			Entities: losers,
		})
	}

	if learning := groups[domain.DecisionLearning]; len(learning) > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			Priority: domain.PriorityLow,
			Type:     domain.RecommendationWaitForData,
			Message:  fmt.Sprintf("%d %s still in learning phase, wait for more data", len(learning), pluralAds(len(learning))),
			Entities: learning,
		})
	}

	if len(alerts) > 0 {
		carried := make([]domain.Alert, len(alerts))
		copy(carried, alerts)

		recommendations = append(recommendations, domain.Recommendation{
			Priority: domain.PriorityMedium,
			Type:     domain.RecommendationCPAAlert,
			Message:  fmt.Sprintf("%d %s with cost per conversion above max CPA", len(alerts), pluralAds(len(alerts))),
			Alerts:   carried,
		})
	}

	return recommendations
}

func pluralAds(n int) string {
	if n == 1 {
		return "ad"
	}
	return "ads"
}
