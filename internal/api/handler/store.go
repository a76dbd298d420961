package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/store"
	"github.com/vfg2006/commerce-admin-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-admin-api/pkg/middleware"
)

// claimsFromRequest extrai as claims do usuário autenticado do contexto
func claimsFromRequest(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

// storeIDFromRequest extrai o parâmetro :storeId da URL
func storeIDFromRequest(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("storeId")
}

// handleStoreError mapeia os erros do usecase de lojas para respostas HTTP
func handleStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrStoreNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Loja não encontrada", nil)

	case errors.Is(err, store.ErrMissingName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar dados da loja", nil)
	}
}

func CreateStore(service store.StoreManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateStore")

		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CreateStoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateStore(userClaims.UserID, &req)
		if err != nil {
			handleStoreError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func ListStores(service store.StoreManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		stores, err := service.ListStores(userClaims.UserID)
		if err != nil {
			handleStoreError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stores)
	}
}

func GetStore(service store.StoreManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		storeID := storeIDFromRequest(r)
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
			return
		}

		result, err := service.GetStore(storeID, userClaims.UserID)
		if err != nil {
			handleStoreError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func UpdateStore(service store.StoreManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateStore")

		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		storeID := storeIDFromRequest(r)
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
			return
		}

		var req domain.UpdateStoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updated, err := service.UpdateStore(storeID, userClaims.UserID, &req)
		if err != nil {
			handleStoreError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteStore(service store.StoreManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteStore")

		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		storeID := storeIDFromRequest(r)
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
			return
		}

		if err := service.DeleteStore(storeID, userClaims.UserID); err != nil {
			handleStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
