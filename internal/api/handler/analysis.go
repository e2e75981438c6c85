package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/decisioning"
	"github.com/vfg2006/ads-autopilot-api/pkg/apiErrors"
	"github.com/vfg2006/ads-autopilot-api/pkg/log"
)

type analyzeRequest struct {
	DateRange string                  `json:"date_range"`
	Config    *domain.DecisionOptions `json:"config,omitempty"`
}

type executeRequest struct {
	ApprovedIDs []string `json:"approved_ids"`
}

func GetDecisionDefaults(engine decisioning.DecisionEngine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, engine.Defaults())
	})
}

// AnalyzeAccount roda a análise de performance da conta. Corpo vazio usa a janela
// padrão e a configuração padrão.
func AnalyzeAccount(engine decisioning.DecisionEngine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var body analyzeRequest
		if err := decodeBody(r, &body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		dateRange, err := domain.ParseDateRange(body.DateRange)
		if err != nil {
			writeEngineError(w, r, err)
			return
		}

		report, err := engine.AnalyzePerformance(r.Context(), domain.AnalyzeRequest{
			AccountID: accountID,
			DateRange: dateRange,
			Options:   body.Config,
		})
		if err != nil {
			writeEngineError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func GetLatestAnalysis(engine decisioning.DecisionEngine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := engine.LatestReport(r.Context(), accountID)
		if err != nil {
			writeEngineError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

// ExecuteAnalysis aplica as decisões do último relatório da conta: as marcadas para
// execução automática e as aprovadas no corpo.
func ExecuteAnalysis(engine decisioning.DecisionEngine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var body executeRequest
		if err := decodeBody(r, &body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		resp, err := engine.ExecuteLatest(r.Context(), accountID, body.ApprovedIDs)
		if err != nil {
			writeEngineError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func decodeBody(r *http.Request, out any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(out)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeEngineError traduz os erros sentinela do motor para o envelope padrão
func writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, decisioning.ErrAccountIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não informado", nil)
	case errors.Is(err, domain.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Janela de datas não suportada", err.Error())
	case errors.Is(err, domain.ErrInvalidConfig):
		apiErrors.WriteError(w, apiErrors.ErrInvalidConfig, "Configuração de decisão inválida", err.Error())
	case errors.Is(err, decisioning.ErrReportNotFound):
		apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Nenhuma análise encontrada para a conta", nil)
	default:
		log.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path).Error("http: analysis request failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar a análise", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("http: failed to encode response")
	}
}
