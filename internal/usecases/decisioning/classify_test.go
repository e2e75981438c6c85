package decisioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

func ctrPtr(v float64) *float64 { return &v }

func insightWith(impressions int64, ctr *float64, costPerQuiz float64) domain.Insight {
	insight := domain.EmptyInsight()
	insight.Impressions = impressions
	insight.CTR = ctr
	insight.CostPerConversion[domain.ConversionQuizComplete] = costPerQuiz
	return insight
}

func TestClassify(t *testing.T) {
	cfg := domain.DefaultDecisionConfig()
	cfg.AutoActions.PauseUnderperformers = true
	cfg.AutoActions.ScaleWinners = true

	ad := domain.Ad{ID: "a1", Name: "Ad 1"}
	adSet := domain.AdSet{ID: "as1", CampaignID: "c1", DailyBudget: 50}

	tests := []struct {
		name       string
		insight    domain.Insight
		wantType   domain.DecisionType
		wantAction domain.DecisionAction
		wantAuto   bool
		wantReason string
	}{
		{
			name:       "poucas impressões mesmo com CTR alto",
			insight:    insightWith(200, ctrPtr(3.0), 0),
			wantType:   domain.DecisionLearning,
			wantAction: domain.ActionWait,
			wantReason: "only 200 impressions, below the learning floor of 500",
		},
		{
			name:       "CTR não reportado",
			insight:    insightWith(600, nil, 0),
			wantType:   domain.DecisionLearning,
			wantAction: domain.ActionWait,
			wantReason: "CTR not yet computable after 600 impressions",
		},
		{
			name:       "CTR abaixo do mínimo",
			insight:    insightWith(600, ctrPtr(0.8), 0),
			wantType:   domain.DecisionUnderperformer,
			wantAction: domain.ActionPause,
			wantAuto:   true,
		},
		{
			name:       "CTR igual ao mínimo é aceitável",
			insight:    insightWith(600, ctrPtr(1.0), 0),
			wantType:   domain.DecisionAcceptable,
			wantAction: domain.ActionMaintain,
		},
		{
			name:       "CTR entre mínimo e alvo",
			insight:    insightWith(600, ctrPtr(1.5), 0),
			wantType:   domain.DecisionAcceptable,
			wantAction: domain.ActionMaintain,
		},
		{
			name:       "CTR igual ao alvo é vencedor",
			insight:    insightWith(600, ctrPtr(2.0), 0),
			wantType:   domain.DecisionWinner,
			wantAction: domain.ActionScale,
			wantAuto:   true,
		},
		{
			name:       "impressões iguais ao piso saem do aprendizado",
			insight:    insightWith(500, ctrPtr(2.5), 0),
			wantType:   domain.DecisionWinner,
			wantAction: domain.ActionScale,
			wantAuto:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Classify(ad, adSet, tt.insight, cfg)

			assert.Equal(t, tt.wantType, decision.Type)
			assert.Equal(t, tt.wantAction, decision.Action)
			assert.Equal(t, tt.wantAuto, decision.AutoExecute)
			assert.Equal(t, "a1", decision.EntityID)
			assert.Equal(t, "as1", decision.AdSetID)
			assert.Equal(t, "c1", decision.CampaignID)
			assert.Equal(t, 50.0, decision.AdSetDailyBudget)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, decision.Reason)
			} else {
				assert.NotEmpty(t, decision.Reason)
			}
		})
	}
}

func TestClassify_AutoExecuteFollowsPolicy(t *testing.T) {
	cfg := domain.DefaultDecisionConfig()
	ad := domain.Ad{ID: "a1"}

	loser := Classify(ad, domain.AdSet{}, insightWith(600, ctrPtr(0.5), 0), cfg)
	winner := Classify(ad, domain.AdSet{}, insightWith(600, ctrPtr(5), 0), cfg)

	assert.False(t, loser.AutoExecute)
	assert.False(t, winner.AutoExecute)
}

func TestCheckCPA(t *testing.T) {
	ad := domain.Ad{ID: "a1", Name: "Ad 1"}

	t.Run("custo acima do teto alerta", func(t *testing.T) {
		alert := CheckCPA(ad, insightWith(600, ctrPtr(2.5), 6.0), domain.DefaultDecisionConfig())
		require.NotNil(t, alert)
		assert.Equal(t, domain.AlertHighCPA, alert.Type)
		assert.Equal(t, domain.SeverityWarning, alert.Severity)
		assert.Equal(t, 6.0, alert.CostPerConversion)
		assert.Equal(t, "Ad 1", alert.EntityName)
	})

	t.Run("custo igual ao teto não alerta", func(t *testing.T) {
		assert.Nil(t, CheckCPA(ad, insightWith(600, nil, 5.0), domain.DefaultDecisionConfig()))
	})

	t.Run("custo zero nunca alerta mesmo com teto zero", func(t *testing.T) {
		cfg := domain.DefaultDecisionConfig()
		cfg.MaxCPA = 0
		assert.Nil(t, CheckCPA(ad, insightWith(600, nil, 0), cfg))
	})

	t.Run("teto zero com custo positivo alerta", func(t *testing.T) {
		cfg := domain.DefaultDecisionConfig()
		cfg.MaxCPA = 0
		assert.NotNil(t, CheckCPA(ad, insightWith(600, nil, 0.01), cfg))
	})

	t.Run("usa o evento de conversão configurado", func(t *testing.T) {
		cfg := domain.DefaultDecisionConfig()
		cfg.ConversionEvent = domain.ConversionPurchase
		assert.Nil(t, CheckCPA(ad, insightWith(600, nil, 50), cfg))
	})

	t.Run("alerta desligado", func(t *testing.T) {
		cfg := domain.DefaultDecisionConfig()
		cfg.AutoActions.AlertOnHighCPA = false
		assert.Nil(t, CheckCPA(ad, insightWith(600, nil, 50), cfg))
	})
}
