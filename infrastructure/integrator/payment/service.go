package payment

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"github.com/vfg2006/commerce-admin-api/internal/config"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
)

const eventCheckoutCompleted = "checkout.session.completed"

// PaymentIntegrator abstrai o provedor de pagamento usado pelo checkout
type PaymentIntegrator interface {
	CreateCheckoutSession(order *domain.Order, products []*domain.Product) (string, error)
	VerifyNotification(payload []byte, signature string) (*domain.Settlement, error)
}

type StripeService struct {
	cfg config.Stripe
}

func New(cfg config.Stripe) PaymentIntegrator {
	stripe.Key = cfg.SecretKey

	return &StripeService{
		cfg: cfg,
	}
}

// CreateCheckoutSession cria a sessão de pagamento com um item de linha por
// produto, sempre com quantidade 1, e retorna a URL de redirecionamento.
func (s *StripeService) CreateCheckoutSession(order *domain.Order, products []*domain.Product) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(products))

	for _, product := range products {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(s.cfg.Currency),
				UnitAmount: stripe.Int64(toCents(product.Price)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(product.Name),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		LineItems:                lineItems,
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/cart?success=1", s.cfg.StorefrontURL)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/cart?canceled=1", s.cfg.StorefrontURL)),
	}
	params.AddMetadata("orderId", order.ID)

	sess, err := session.New(params)
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar sessão de checkout no Stripe")
	}

	return sess.URL, nil
}

// VerifyNotification valida a assinatura do webhook e extrai os dados de
// liquidação. Eventos de outros tipos retornam nil sem erro.
func (s *StripeService) VerifyNotification(payload []byte, signature string) (*domain.Settlement, error) {
	event, err := webhook.ConstructEvent(payload, signature, s.cfg.WebhookSecret)
	if err != nil {
		return nil, errors.Wrap(err, "assinatura do webhook inválida")
	}

	if event.Type != eventCheckoutCompleted {
		return nil, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar sessão do evento")
	}

	settlement := &domain.Settlement{
		OrderID: sess.Metadata["orderId"],
	}

	if details := sess.CustomerDetails; details != nil {
		settlement.Phone = details.Phone

		if address := details.Address; address != nil {
			settlement.AddressLine1 = address.Line1
			settlement.AddressLine2 = address.Line2
			settlement.City = address.City
			settlement.State = address.State
			settlement.PostalCode = address.PostalCode
		}
	}

	return settlement, nil
}

// toCents converte o preço decimal para a menor unidade da moeda
func toCents(price decimal.Decimal) int64 {
	return price.Shift(2).Round(0).IntPart()
}
