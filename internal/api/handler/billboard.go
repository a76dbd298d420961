package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/cataloging"
	"github.com/vfg2006/commerce-admin-api/pkg/apiErrors"
)

// handleCatalogError mapeia os erros do usecase de catálogo para respostas HTTP
func handleCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cataloging.ErrStoreNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Loja não encontrada", nil)

	case errors.Is(err, cataloging.ErrResourceNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Recurso não encontrado", nil)

	case errors.Is(err, cataloging.ErrInvalidReference):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Referência inválida para esta loja", nil)

	case errors.Is(err, cataloging.ErrMissingData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes ou inválidos", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar dados do catálogo", nil)
	}
}

func CreateBillboard(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateBillboard")

		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.UpsertBillboardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		billboard, err := service.CreateBillboard(storeIDFromRequest(r), userClaims.UserID, &req)
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(billboard)
	}
}

func GetBillboard(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		billboardID := httprouter.ParamsFromContext(r.Context()).ByName("billboardId")

		billboard, err := service.GetBillboard(billboardID)
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(billboard)
	}
}

func ListBillboards(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		billboards, err := service.ListBillboards(storeIDFromRequest(r))
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(billboards)
	}
}

func UpdateBillboard(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateBillboard")

		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		billboardID := httprouter.ParamsFromContext(r.Context()).ByName("billboardId")

		var req domain.UpsertBillboardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		billboard, err := service.UpdateBillboard(storeIDFromRequest(r), billboardID, userClaims.UserID, &req)
		if err != nil {
			handleCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(billboard)
	}
}

func DeleteBillboard(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteBillboard")

		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		billboardID := httprouter.ParamsFromContext(r.Context()).ByName("billboardId")

		if err := service.DeleteBillboard(storeIDFromRequest(r), billboardID, userClaims.UserID); err != nil {
			handleCatalogError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
