package decisioning

import (
	"context"
	"fmt"
	"slices"

	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"github.com/vfg2006/ads-autopilot-api/pkg/log"
	"github.com/vfg2006/ads-autopilot-api/pkg/utils"
)

type ExecutorOptions struct {
	// DryRun registra as escritas no log sem enviá-las
	DryRun bool
	// ApplyBudget grava o orçamento proposto para SCALE; desligado só reporta a proposta
	ApplyBudget bool
}

// Executor aplica decisões aprovadas ou automáticas na plataforma.
// As escritas são sequenciais e a falha de uma não interrompe as demais.
type Executor struct {
	writer EntityWriter
	opts   ExecutorOptions
}

func NewExecutor(writer EntityWriter, opts ExecutorOptions) *Executor {
	return &Executor{writer: writer, opts: opts}
}

// Execute processa as decisões na ordem recebida. Decisões não selecionadas e ações
// sem escrita (WAIT, MAINTAIN) não geram registro.
func (e *Executor) Execute(ctx context.Context, decisions []domain.Decision, cfg domain.DecisionConfig, approvedIDs []string) []domain.ExecutionResult {
	results := make([]domain.ExecutionResult, 0)

	for _, decision := range decisions {
		if !decision.AutoExecute && !slices.Contains(approvedIDs, decision.EntityID) {
			continue
		}

		var result domain.ExecutionResult
		switch decision.Action {
		case domain.ActionPause:
			result = e.pause(ctx, decision)
		case domain.ActionScale:
			result = e.scale(ctx, decision, cfg)
		default:
			continue
		}

		results = append(results, result)
	}

	return results
}

func (e *Executor) pause(ctx context.Context, decision domain.Decision) domain.ExecutionResult {
	result := domain.ExecutionResult{EntityID: decision.EntityID, Action: decision.Action}
	logger := log.ForContext(ctx).WithField("entity_id", decision.EntityID)

	if e.opts.DryRun {
		logger.Info("execution: dry run, would pause ad")
		result.Success = true
		result.Message = "dry run: ad would be paused"
		return result
	}

	if err := e.writer.SetStatus(ctx, decision.EntityID, domain.StatusPaused); err != nil {
		logger.WithError(err).Error("execution: failed to pause ad")
		result.Error = err.Error()
		return result
	}

	logger.Info("execution: ad paused")
	result.Success = true
	result.Message = "ad paused"
	return result
}

func (e *Executor) scale(ctx context.Context, decision domain.Decision, cfg domain.DecisionConfig) domain.ExecutionResult {
	result := domain.ExecutionResult{EntityID: decision.EntityID, Action: decision.Action, Success: true}
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"entity_id": decision.EntityID,
		"adset_id":  decision.AdSetID,
	})

	proposed, ok := ProposeDailyBudget(decision.AdSetDailyBudget, cfg)
	if !ok {
		logger.Warn("execution: scale requested but ad set has no daily budget")
		result.Message = "scale requested; ad set has no daily budget to scale"
		return result
	}
	result.ProposedDailyBudget = &proposed

	if !e.opts.ApplyBudget {
		result.Message = fmt.Sprintf("scale requested; proposed daily budget %.2f not applied", proposed)
		return result
	}

	if e.opts.DryRun {
		logger.Infof("execution: dry run, would set ad set daily budget to %.2f", proposed)
		result.Message = fmt.Sprintf("dry run: ad set daily budget would be set to %.2f", proposed)
		return result
	}

	if err := e.writer.SetDailyBudget(ctx, decision.AdSetID, proposed); err != nil {
		logger.WithError(err).Error("execution: failed to update ad set daily budget")
		result.Success = false
		result.Error = err.Error()
		return result
	}

	logger.Infof("execution: ad set daily budget set to %.2f", proposed)
	result.Message = fmt.Sprintf("ad set daily budget set to %.2f", proposed)
	return result
}

// ProposeDailyBudget aplica o percentual de aumento e os limites configurados.
// Limite zero significa sem limite. Devolve false quando não há orçamento diário no conjunto.
func ProposeDailyBudget(current float64, cfg domain.DecisionConfig) (float64, bool) {
	if current <= 0 {
		return 0, false
	}

	proposed := current * (1 + cfg.BudgetIncreasePercent/100)
	if cfg.MinDailyBudget > 0 && proposed < cfg.MinDailyBudget {
		proposed = cfg.MinDailyBudget
	}
	if cfg.MaxDailyBudget > 0 && proposed > cfg.MaxDailyBudget {
		proposed = cfg.MaxDailyBudget
	}

	return utils.RoundWithTwoDecimalPlace(proposed), true
}
