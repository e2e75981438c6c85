package decisioning

import (
	"fmt"

	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

// Classify decide o tratamento de um anúncio a partir das métricas do período.
// A primeira regra que casa vence; LEARNING e ACCEPTABLE nunca são automáticos.
func Classify(ad domain.Ad, adSet domain.AdSet, insight domain.Insight, cfg domain.DecisionConfig) domain.Decision {
	decision := domain.Decision{
		EntityID:         ad.ID,
		EntityName:       ad.Name,
		CampaignID:       adSet.CampaignID,
		AdSetID:          adSet.ID,
		AdSetDailyBudget: adSet.DailyBudget,
		Metrics:          insight,
	}

	ctr, hasCTR := insight.CTRValue()

	switch {
	case insight.Impressions < cfg.MinImpressions:
		decision.Type = domain.DecisionLearning
		decision.Action = domain.ActionWait
		decision.Reason = fmt.Sprintf("only %d impressions, below the learning floor of %d", insight.Impressions, cfg.MinImpressions)

	case !hasCTR:
		decision.Type = domain.DecisionLearning
		decision.Action = domain.ActionWait
		decision.Reason = fmt.Sprintf("CTR not yet computable after %d impressions", insight.Impressions)

	case ctr < cfg.MinCTR:
		decision.Type = domain.DecisionUnderperformer
		decision.Action = domain.ActionPause
		decision.Reason = fmt.Sprintf("CTR %.2f%% below minimum of %.2f%%", ctr, cfg.MinCTR)
		decision.AutoExecute = cfg.AutoActions.PauseUnderperformers

	case ctr >= cfg.TargetCTR:
		decision.Type = domain.DecisionWinner
		decision.Action = domain.ActionScale
		decision.Reason = fmt.Sprintf("CTR %.2f%% at or above target of %.2f%%", ctr, cfg.TargetCTR)
		decision.AutoExecute = cfg.AutoActions.ScaleWinners

	default:
		decision.Type = domain.DecisionAcceptable
		decision.Action = domain.ActionMaintain
		decision.Reason = fmt.Sprintf("CTR %.2f%% between minimum %.2f%% and target %.2f%%", ctr, cfg.MinCTR, cfg.TargetCTR)
	}

	return decision
}

// CheckCPA devolve um alerta HIGH_CPA quando o custo por conversão do evento
// configurado passa do teto. Custo zero significa ausência de conversões e nunca alerta.
func CheckCPA(ad domain.Ad, insight domain.Insight, cfg domain.DecisionConfig) *domain.Alert {
	if !cfg.AutoActions.AlertOnHighCPA {
		return nil
	}

	cost := insight.CostPer(cfg.ConversionEvent)
	if cost <= 0 || cost <= cfg.MaxCPA {
		return nil
	}

	return &domain.Alert{
		EntityID:          ad.ID,
		EntityName:        ad.Name,
		Type:              domain.AlertHighCPA,
		Severity:          domain.SeverityWarning,
		Message:           fmt.Sprintf("cost per %s of %.2f exceeds max CPA of %.2f", cfg.ConversionEvent, cost, cfg.MaxCPA),
		CostPerConversion: cost,
		MaxCPA:            cfg.MaxCPA,
	}
}
