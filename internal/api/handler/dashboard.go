package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/reporting"
	"github.com/vfg2006/commerce-admin-api/pkg/apiErrors"
)

func handleReportingError(w http.ResponseWriter, err error) {
	if errors.Is(err, reporting.ErrStoreNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Loja não encontrada", nil)
		return
	}

	if errors.Is(err, reporting.ErrInvalidPeriod) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, esperado mm-yyyy", nil)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular indicadores", nil)
}

// GetDashboardSummary retorna receita total, número de vendas e produtos em estoque
func GetDashboardSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		summary, err := service.GetDashboardSummary(storeIDFromRequest(r), userClaims.UserID)
		if err != nil {
			handleReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// GetGraphRevenue retorna os doze buckets mensais de receita do gráfico
func GetGraphRevenue(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		graph, err := service.GetGraphRevenue(storeIDFromRequest(r), userClaims.UserID)
		if err != nil {
			handleReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(graph)
	}
}

// ListMonthlyRevenue retorna o histórico de receita mensal da loja
func ListMonthlyRevenue(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		snapshots, err := service.ListMonthlyRevenue(storeIDFromRequest(r), userClaims.UserID)
		if err != nil {
			handleReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshots)
	}
}

// GetMonthlyRevenue retorna a receita de um único período mm-yyyy
func GetMonthlyRevenue(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		snapshot, err := service.GetMonthlyRevenue(storeIDFromRequest(r), userClaims.UserID, period)
		if err != nil {
			handleReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshot)
	}
}
