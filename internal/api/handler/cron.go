package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-admin-api/internal/scheduler"
	"github.com/vfg2006/commerce-admin-api/pkg/apiErrors"
)

// Tipos de cron job disponíveis para execução manual
const (
	CronJobTypeMonthlyRevenue = "monthly-revenue"
	CronJobTypeOrderPrune     = "order-prune"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron necessários para execução manual
type CronJobServices struct {
	MonthlyRevenueSyncService *scheduler.MonthlyRevenueSyncService
	OrderPruneService         *scheduler.OrderPruneService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMonthlyRevenue:
			if services.MonthlyRevenueSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshots mensais não disponível", nil)
				return
			}
			services.MonthlyRevenueSyncService.TriggerManualSync()

		case CronJobTypeOrderPrune:
			if services.OrderPruneService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de pedidos não disponível", nil)
				return
			}
			services.OrderPruneService.TriggerManualPrune()

		case CronJobTypeAll:
			if services.MonthlyRevenueSyncService != nil {
				services.MonthlyRevenueSyncService.TriggerManualSync()
			}
			if services.OrderPruneService != nil {
				services.OrderPruneService.TriggerManualPrune()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
			"type":   cronType,
		})
	}
}

// GetCronStatus retorna o status atual dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.MonthlyRevenueSyncService != nil {
			status["monthly_revenue"] = services.MonthlyRevenueSyncService.GetStatus()
		}

		if services.OrderPruneService != nil {
			status["order_prune"] = services.OrderPruneService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
