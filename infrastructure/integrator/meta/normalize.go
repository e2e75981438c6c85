package meta

import (
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

// NormalizeInsight converte a linha crua de insights em domain.Insight.
// Campos ausentes ou inválidos viram zero e entram em Defaulted; ctr ausente fica nil.
func NormalizeInsight(raw metadomain.InsightRecord, actionTypes map[domain.ConversionEvent]string) domain.Insight {
	insight := domain.EmptyInsight()
	insight.DateStart = raw.DateStart
	insight.DateStop = raw.DateStop

	n := normalizer{insight: &insight}

	insight.Impressions = n.parseInt("impressions", raw.Impressions)
	insight.Clicks = n.parseInt("clicks", raw.Clicks)
	insight.Reach = n.parseInt("reach", raw.Reach)
	insight.Spend = n.parseFloat("spend", raw.Spend)
	insight.CPC = n.parseFloat("cpc", raw.CPC)
	insight.CPM = n.parseFloat("cpm", raw.CPM)
	insight.Frequency = n.parseFloat("frequency", raw.Frequency)

	if ctr, ok := parseNonNegative(raw.CTR); ok {
		insight.CTR = &ctr
	} else if raw.CTR != "" {
		logrus.WithField("ctr_value", raw.CTR).Debug("meta: invalid ctr, treating as not computable")
	}

	for _, event := range domain.ConversionEvents {
		actionType, ok := actionTypes[event]
		if !ok {
			continue
		}

		if value, found := findAction(raw.Actions, actionType); found {
			insight.Conversions[event] = int64(n.parseFloat("conversions."+string(event), value))
		} else {
			insight.Conversions[event] = 0
		}

		if value, found := findAction(raw.CostPerActions, actionType); found {
			insight.CostPerConversion[event] = n.parseFloat("cost_per_conversion."+string(event), value)
		} else {
			insight.CostPerConversion[event] = 0
		}
	}

	return insight
}

type normalizer struct {
	insight *domain.Insight
}

func (n normalizer) parseInt(field, value string) int64 {
	parsed, ok := parseNonNegative(value)
	if !ok {
		n.markDefaulted(field, value)
		return 0
	}
	return int64(parsed)
}

func (n normalizer) parseFloat(field, value string) float64 {
	parsed, ok := parseNonNegative(value)
	if !ok {
		n.markDefaulted(field, value)
		return 0
	}
	return parsed
}

func (n normalizer) markDefaulted(field, value string) {
	n.insight.Defaulted = append(n.insight.Defaulted, field)
	logrus.WithFields(logrus.Fields{
		"field": field,
		"value": value,
	}).Debug("meta: missing or invalid metric, defaulting to zero")
}

func parseNonNegative(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false
	}
	return parsed, true
}

func findAction(actions []metadomain.Action, actionType string) (string, bool) {
	for _, action := range actions {
		if action.ActionType == actionType {
			return action.Value, true
		}
	}
	return "", false
}
