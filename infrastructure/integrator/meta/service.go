package meta

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

const accountPrefix = "act_"

// MetaIntegrator adapta a Graph API ao modelo de domínio usado pela análise
type MetaIntegrator struct {
	Client      metaclient.Client
	actionTypes map[domain.ConversionEvent]string
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	actionTypes := make(map[domain.ConversionEvent]string, len(metadomain.ConversionActionTypes))
	for event, actionType := range metadomain.ConversionActionTypes {
		actionTypes[event] = actionType
	}
	if cfg != nil && cfg.Meta.QuizCompleteAction != "" {
		actionTypes[domain.ConversionQuizComplete] = cfg.Meta.QuizCompleteAction
	}

	return &MetaIntegrator{
		Client:      client,
		actionTypes: actionTypes,
	}
}

func (s *MetaIntegrator) ListCampaigns(ctx context.Context, accountID string) ([]domain.Campaign, error) {
	raw, err := s.Client.GetCampaigns(ctx, AccountNode(accountID))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("meta: failed to list campaigns")
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(raw))
	for _, c := range raw {
		campaigns = append(campaigns, domain.Campaign{
			ID:             c.ID,
			Name:           c.Name,
			Status:         domain.EntityStatus(c.Status),
			Objective:      c.Objective,
			DailyBudget:    fromMinorUnits(c.DailyBudget),
			LifetimeBudget: fromMinorUnits(c.LifetimeBudget),
		})
	}

	return campaigns, nil
}

func (s *MetaIntegrator) ListAdSets(ctx context.Context, campaignID string) ([]domain.AdSet, error) {
	raw, err := s.Client.GetAdSets(ctx, campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": campaignID,
			"error":     err.Error(),
		}).Error("meta: failed to list ad sets")
		return nil, err
	}

	adSets := make([]domain.AdSet, 0, len(raw))
	for _, a := range raw {
		campaign := a.CampaignID
		if campaign == "" {
			campaign = campaignID
		}
		adSets = append(adSets, domain.AdSet{
			ID:               a.ID,
			CampaignID:       campaign,
			Name:             a.Name,
			Status:           domain.EntityStatus(a.Status),
			DailyBudget:      fromMinorUnits(a.DailyBudget),
			Targeting:        a.Targeting,
			OptimizationGoal: a.OptimizationGoal,
		})
	}

	return adSets, nil
}

func (s *MetaIntegrator) ListAds(ctx context.Context, adSetID string) ([]domain.Ad, error) {
	raw, err := s.Client.GetAds(ctx, adSetID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": adSetID,
			"error":     err.Error(),
		}).Error("meta: failed to list ads")
		return nil, err
	}

	ads := make([]domain.Ad, 0, len(raw))
	for _, a := range raw {
		adSet := a.AdSetID
		if adSet == "" {
			adSet = adSetID
		}
		ads = append(ads, domain.Ad{
			ID:       a.ID,
			AdSetID:  adSet,
			Name:     a.Name,
			Status:   domain.EntityStatus(a.Status),
			Creative: a.Creative,
		})
	}

	return ads, nil
}

// GetInsight busca as métricas agregadas de uma entidade. Sem linhas no período
// devolve um Insight zerado em vez de erro.
func (s *MetaIntegrator) GetInsight(ctx context.Context, entityID string, level domain.Level, dateRange domain.DateRange) (domain.Insight, error) {
	preset, ok := metadomain.DatePresets[dateRange]
	if !ok {
		return domain.Insight{}, fmt.Errorf("%w: %q", domain.ErrInvalidDateRange, dateRange)
	}

	node := entityID
	if level == domain.LevelAccount {
		node = AccountNode(entityID)
	}

	records, err := s.Client.GetInsights(ctx, node, string(level), preset)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"level":     level,
			"error":     err.Error(),
		}).Error("meta: failed to get insights from API")
		return domain.Insight{}, err
	}

	if len(records) == 0 {
		logrus.WithField("entity_id", entityID).Debug("meta: no delivery in period")
		return domain.EmptyInsight(), nil
	}

	if len(records) > 1 {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"rows":      len(records),
		}).Warn("meta: more than one insight row, using the first")
	}

	return NormalizeInsight(records[0], s.actionTypes), nil
}

func (s *MetaIntegrator) SetStatus(ctx context.Context, entityID string, status domain.EntityStatus) error {
	if err := s.Client.UpdateStatus(ctx, entityID, string(status)); err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"status":    status,
			"error":     err.Error(),
		}).Error("execution: failed to update status")
		return err
	}
	return nil
}

// SetDailyBudget recebe o valor em unidades da moeda e grava em unidades mínimas
func (s *MetaIntegrator) SetDailyBudget(ctx context.Context, adSetID string, amount float64) error {
	if err := s.Client.UpdateDailyBudget(ctx, adSetID, toMinorUnits(amount)); err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": adSetID,
			"amount":    amount,
			"error":     err.Error(),
		}).Error("execution: failed to update daily budget")
		return err
	}
	return nil
}

// AccountNode garante o prefixo act_ exigido pela Graph API para contas de anúncio
func AccountNode(accountID string) string {
	if strings.HasPrefix(accountID, accountPrefix) {
		return accountID
	}
	return accountPrefix + accountID
}

func fromMinorUnits(value string) float64 {
	if value == "" {
		return 0
	}

	minor, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"budget_value": value,
			"error":        err.Error(),
		}).Warn("meta: error converting budget to integer")
		return 0
	}
	return float64(minor) / 100
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
