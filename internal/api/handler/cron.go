package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-autopilot-api/pkg/apiErrors"
)

// CronJobTypeAnalysis é a análise periódica das contas configuradas
const CronJobTypeAnalysis = "analysis"

// ManualSyncer é o contrato dos agendadores expostos na API
type ManualSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AnalysisSyncService ManualSyncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAnalysis:
			if services.AnalysisSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de análise periódica não disponível", nil)
				return
			}
			if !services.AnalysisSyncService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Análise periódica já está em execução", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Tipo de cron job inválido", map[string]any{
				"valid_types": []string{CronJobTypeAnalysis},
			})
			return
		}

		logrus.WithField("type", cronType).Info("http: cron job triggered manually")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"success": true,
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status da cron job informada
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		if cronType != CronJobTypeAnalysis || services.AnalysisSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Tipo de cron job inválido", map[string]any{
				"valid_types": []string{CronJobTypeAnalysis},
			})
			return
		}

		writeJSON(w, http.StatusOK, services.AnalysisSyncService.GetStatus())
	})
}
