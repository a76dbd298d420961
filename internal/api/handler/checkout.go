package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/checkout"
	"github.com/vfg2006/commerce-admin-api/pkg/apiErrors"
)

type CheckoutRequest struct {
	ProductIDs []string `json:"product_ids"`
}

// CreateCheckoutSession é a rota pública chamada pela vitrine para iniciar
// uma compra. Retorna a URL de pagamento do provedor.
func CreateCheckoutSession(service checkout.Checkouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCheckoutSession")

		var req CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		resp, err := service.CreateSession(r.Context(), storeIDFromRequest(r), req.ProductIDs)
		if err != nil {
			handleCheckoutError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func handleCheckoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum produto informado", nil)

	case errors.Is(err, checkout.ErrStoreNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Loja não encontrada", nil)

	case errors.Is(err, checkout.ErrProductsNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Um ou mais produtos não foram encontrados", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrPaymentProvider, "Erro ao iniciar o pagamento", nil)
	}
}

// PaymentWebhook recebe as notificações do provedor de pagamento. O corpo
// precisa ser lido bruto para a verificação de assinatura.
func PaymentWebhook(service checkout.Checkouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler corpo da requisição", nil)
			return
		}

		signature := r.Header.Get("Stripe-Signature")

		err = service.Settle(r.Context(), payload, signature)
		if err != nil {
			if errors.Is(err, checkout.ErrInvalidSignature) {
				apiErrors.WriteError(w, apiErrors.ErrPaymentSignature, "Assinatura da notificação inválida", nil)
				return
			}

			if errors.Is(err, checkout.ErrUnknownOrder) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Pedido da notificação não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar notificação", nil)
			return
		}

		// O provedor espera 200 com corpo simples para confirmar o recebimento
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
