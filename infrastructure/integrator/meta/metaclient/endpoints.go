package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
)

const (
	campaignFields = "id,name,status,objective,daily_budget,lifetime_budget"
	adSetFields    = "id,campaign_id,name,status,daily_budget,targeting,optimization_goal"
	adFields       = "id,adset_id,name,status,creative"
)

func (c *MetaClient) GetCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Set("fields", campaignFields)

	campaigns, err := listAll[metadomain.Campaign](ctx, c, fmt.Sprintf("%s/campaigns", accountID), params)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanhas da conta %s: %w", accountID, err)
	}
	return campaigns, nil
}

func (c *MetaClient) GetAdSets(ctx context.Context, campaignID string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Set("fields", adSetFields)

	adSets, err := listAll[metadomain.AdSet](ctx, c, fmt.Sprintf("%s/adsets", campaignID), params)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar conjuntos da campanha %s: %w", campaignID, err)
	}
	return adSets, nil
}

func (c *MetaClient) GetAds(ctx context.Context, adSetID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Set("fields", adFields)

	ads, err := listAll[metadomain.Ad](ctx, c, fmt.Sprintf("%s/ads", adSetID), params)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar anúncios do conjunto %s: %w", adSetID, err)
	}
	return ads, nil
}

// GetInsights retorna as linhas de insights de um nó no nível informado.
// Lista vazia significa que a entidade não teve entrega no período.
func (c *MetaClient) GetInsights(ctx context.Context, entityID string, level string, datePreset string) ([]metadomain.InsightRecord, error) {
	params := url.Values{}
	params.Set("fields", metadomain.InsightFields)
	params.Set("level", level)
	params.Set("date_preset", datePreset)

	records, err := listAll[metadomain.InsightRecord](ctx, c, fmt.Sprintf("%s/insights", entityID), params)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar insights de %s: %w", entityID, err)
	}
	return records, nil
}

func (c *MetaClient) UpdateStatus(ctx context.Context, entityID string, status string) error {
	form := url.Values{}
	form.Set("status", status)

	if err := c.postForm(ctx, entityID, form); err != nil {
		return fmt.Errorf("erro ao atualizar status de %s: %w", entityID, err)
	}
	return nil
}

// UpdateDailyBudget grava o orçamento diário do conjunto em unidades mínimas da moeda
func (c *MetaClient) UpdateDailyBudget(ctx context.Context, adSetID string, amountMinorUnits int64) error {
	form := url.Values{}
	form.Set("daily_budget", strconv.FormatInt(amountMinorUnits, 10))

	if err := c.postForm(ctx, adSetID, form); err != nil {
		return fmt.Errorf("erro ao atualizar orçamento de %s: %w", adSetID, err)
	}
	return nil
}
