package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/commerce-admin-api/infrastructure/integrator/payment"
	"github.com/vfg2006/commerce-admin-api/infrastructure/repository"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"github.com/vfg2006/commerce-admin-api/pkg/log"
	"github.com/vfg2006/commerce-admin-api/pkg/utils"
)

var (
	ErrStoreNotFound    = errors.New("loja não encontrada")
	ErrEmptyCart        = errors.New("nenhum produto informado")
	ErrProductsNotFound = errors.New("um ou mais produtos não foram encontrados")
	ErrInvalidSignature = errors.New("assinatura da notificação inválida")
	ErrUnknownOrder     = errors.New("pedido da notificação não encontrado")
)

// CheckoutResponse carrega a URL de redirecionamento do provedor de pagamento
type CheckoutResponse struct {
	URL string `json:"url"`
}

// Checkouter cobre o fluxo público de compra da vitrine: criação da sessão
// de pagamento e liquidação do pedido via webhook. A listagem de pedidos do
// painel também vive aqui.
type Checkouter interface {
	CreateSession(ctx context.Context, storeID string, productIDs []string) (*CheckoutResponse, error)
	Settle(ctx context.Context, payload []byte, signature string) error
	ListOrders(storeID string, userID int) ([]*domain.OrderSummary, error)
}

type Service struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	payment     payment.PaymentIntegrator
}

func NewService(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	paymentIntegrator payment.PaymentIntegrator,
) Checkouter {
	return &Service{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		payment:     paymentIntegrator,
	}
}

// CreateSession cria um pedido não pago com os produtos do carrinho e abre a
// sessão de pagamento. O pedido só vira venda quando o webhook confirma.
func (s *Service) CreateSession(ctx context.Context, storeID string, productIDs []string) (*CheckoutResponse, error) {
	if len(productIDs) == 0 {
		return nil, ErrEmptyCart
	}

	store, err := s.storeRepo.GetStoreByID(storeID)
	if err != nil {
		return nil, err
	}

	if store == nil {
		return nil, ErrStoreNotFound
	}

	products, err := s.productRepo.GetProductsByIDs(productIDs)
	if err != nil {
		return nil, err
	}

	if len(products) != len(productIDs) {
		return nil, ErrProductsNotFound
	}

	for _, product := range products {
		if product.StoreID != storeID {
			return nil, ErrProductsNotFound
		}
	}

	orderID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:      orderID,
		StoreID: storeID,
		IsPaid:  false,
	}

	for _, productID := range productIDs {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: productID,
		})
	}

	order, err = s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	url, err := s.payment.CreateCheckoutSession(order, products)
	if err != nil {
		return nil, err
	}

	return &CheckoutResponse{URL: url}, nil
}

// Settle verifica a notificação do provedor e liquida o pedido: marca como
// pago, grava endereço e telefone e tira os produtos vendidos do estoque.
// Tudo acontece em uma única transação no repositório.
func (s *Service) Settle(ctx context.Context, payload []byte, signature string) error {
	settlement, err := s.payment.VerifyNotification(payload, signature)
	if err != nil {
		return ErrInvalidSignature
	}

	// Evento de outro tipo, nada a fazer
	if settlement == nil {
		return nil
	}

	address := joinAddress(settlement)

	err = s.orderRepo.SettleOrder(ctx, settlement.OrderID, address, settlement.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			log.ForContext(ctx).WithField("order_id", settlement.OrderID).Warn("Notificação de pagamento para pedido desconhecido")
			return ErrUnknownOrder
		}
		return err
	}

	log.ForContext(ctx).WithField("order_id", settlement.OrderID).Info("Pedido liquidado com sucesso")

	return nil
}

// ListOrders monta a visão de pedidos do painel, com verificação de dono
func (s *Service) ListOrders(storeID string, userID int) ([]*domain.OrderSummary, error) {
	store, err := s.storeRepo.GetStoreByIDAndUser(storeID, userID)
	if err != nil {
		return nil, err
	}

	if store == nil {
		return nil, ErrStoreNotFound
	}

	orders, err := s.orderRepo.ListOrdersByStore(storeID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*domain.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summary := &domain.OrderSummary{
			ID:         order.ID,
			Phone:      order.Phone,
			Address:    order.Address,
			IsPaid:     order.IsPaid,
			CreatedAt:  order.CreatedAt,
			TotalPrice: orderTotal(order),
		}

		for _, item := range order.Items {
			summary.Products = append(summary.Products, item.ProductName)
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// joinAddress concatena apenas os componentes preenchidos do endereço,
// separados por vírgula
func joinAddress(settlement *domain.Settlement) string {
	components := []string{
		settlement.AddressLine1,
		settlement.AddressLine2,
		settlement.City,
		settlement.State,
		settlement.PostalCode,
	}

	filled := make([]string, 0, len(components))
	for _, component := range components {
		if component != "" {
			filled = append(filled, component)
		}
	}

	return strings.Join(filled, ", ")
}

func orderTotal(order *domain.Order) decimal.Decimal {
	total := decimal.Zero

	for _, item := range order.Items {
		total = total.Add(item.ProductPrice)
	}

	return total
}
