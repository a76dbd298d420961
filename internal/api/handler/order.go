package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/checkout"
	"github.com/vfg2006/commerce-admin-api/pkg/apiErrors"
)

// ListOrders lista os pedidos de uma loja para o painel administrativo
func ListOrders(service checkout.Checkouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		orders, err := service.ListOrders(storeIDFromRequest(r), userClaims.UserID)
		if err != nil {
			if errors.Is(err, checkout.ErrStoreNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Loja não encontrada", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar pedidos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(orders)
	}
}
