package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	paymentmocks "github.com/vfg2006/commerce-admin-api/infrastructure/integrator/payment/mocks"
	"github.com/vfg2006/commerce-admin-api/infrastructure/repository"
	"github.com/vfg2006/commerce-admin-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Settle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fullSettlement := &domain.Settlement{
		OrderID:      "ORD123",
		AddressLine1: "123 Main St",
		City:         "Springfield",
		State:        "IL",
		PostalCode:   "62704",
		Phone:        "+15551234567",
	}

	tests := []struct {
		name      string
		setup     func(orderRepo *mocks.MockOrderRepository, paymentService *paymentmocks.MockPaymentIntegrator)
		expectErr error
	}{
		{
			name: "Notificação válida - deve liquidar o pedido com endereço e telefone",
			setup: func(orderRepo *mocks.MockOrderRepository, paymentService *paymentmocks.MockPaymentIntegrator) {
				paymentService.EXPECT().
					VerifyNotification([]byte(`{"type":"checkout.session.completed"}`), "sig").
					Return(fullSettlement, nil)

				orderRepo.EXPECT().
					SettleOrder(gomock.Any(), "ORD123", "123 Main St, Springfield, IL, 62704", "+15551234567").
					Return(nil)
			},
		},
		{
			name: "Endereço incompleto - deve concatenar apenas os componentes preenchidos",
			setup: func(orderRepo *mocks.MockOrderRepository, paymentService *paymentmocks.MockPaymentIntegrator) {
				paymentService.EXPECT().
					VerifyNotification(gomock.Any(), "sig").
					Return(&domain.Settlement{
						OrderID:      "ORD124",
						AddressLine1: "Av. Paulista 1000",
						City:         "São Paulo",
						Phone:        "+5511999990000",
					}, nil)

				orderRepo.EXPECT().
					SettleOrder(gomock.Any(), "ORD124", "Av. Paulista 1000, São Paulo", "+5511999990000").
					Return(nil)
			},
		},
		{
			name: "Assinatura inválida - não deve tocar no pedido",
			setup: func(orderRepo *mocks.MockOrderRepository, paymentService *paymentmocks.MockPaymentIntegrator) {
				paymentService.EXPECT().
					VerifyNotification(gomock.Any(), "sig").
					Return(nil, errors.New("assinatura não confere"))
			},
			expectErr: ErrInvalidSignature,
		},
		{
			name: "Evento de outro tipo - deve ignorar a notificação",
			setup: func(orderRepo *mocks.MockOrderRepository, paymentService *paymentmocks.MockPaymentIntegrator) {
				paymentService.EXPECT().
					VerifyNotification(gomock.Any(), "sig").
					Return(nil, nil)
			},
		},
		{
			name: "Pedido desconhecido - deve retornar erro sem propagar o do repositório",
			setup: func(orderRepo *mocks.MockOrderRepository, paymentService *paymentmocks.MockPaymentIntegrator) {
				paymentService.EXPECT().
					VerifyNotification(gomock.Any(), "sig").
					Return(fullSettlement, nil)

				orderRepo.EXPECT().
					SettleOrder(gomock.Any(), "ORD123", gomock.Any(), gomock.Any()).
					Return(repository.ErrOrderNotFound)
			},
			expectErr: ErrUnknownOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storeRepo := mocks.NewMockStoreRepository(ctrl)
			productRepo := mocks.NewMockProductRepository(ctrl)
			orderRepo := mocks.NewMockOrderRepository(ctrl)
			paymentService := paymentmocks.NewMockPaymentIntegrator(ctrl)

			tt.setup(orderRepo, paymentService)

			service := &Service{
				storeRepo:   storeRepo,
				productRepo: productRepo,
				orderRepo:   orderRepo,
				payment:     paymentService,
			}

			err := service.Settle(context.Background(), []byte(`{"type":"checkout.session.completed"}`), "sig")

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_CreateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &domain.Store{ID: "STR001", Name: "Loja A", UserID: 10}

	products := []*domain.Product{
		{ID: "PRD001", StoreID: "STR001", Name: "Camiseta", Price: decimal.RequireFromString("49.90")},
		{ID: "PRD002", StoreID: "STR001", Name: "Boné", Price: decimal.RequireFromString("29.90")},
	}

	tests := []struct {
		name       string
		productIDs []string
		setup      func(storeRepo *mocks.MockStoreRepository, productRepo *mocks.MockProductRepository, orderRepo *mocks.MockOrderRepository, paymentService *paymentmocks.MockPaymentIntegrator)
		expectErr  error
		expectURL  string
	}{
		{
			name:       "Carrinho vazio - deve recusar sem consultar a loja",
			productIDs: []string{},
			setup: func(storeRepo *mocks.MockStoreRepository, productRepo *mocks.MockProductRepository, orderRepo *mocks.MockOrderRepository, paymentService *paymentmocks.MockPaymentIntegrator) {
			},
			expectErr: ErrEmptyCart,
		},
		{
			name:       "Loja inexistente - deve retornar erro de loja não encontrada",
			productIDs: []string{"PRD001"},
			setup: func(storeRepo *mocks.MockStoreRepository, productRepo *mocks.MockProductRepository, orderRepo *mocks.MockOrderRepository, paymentService *paymentmocks.MockPaymentIntegrator) {
				storeRepo.EXPECT().GetStoreByID("STR001").Return(nil, nil)
			},
			expectErr: ErrStoreNotFound,
		},
		{
			name:       "Produto inexistente - deve recusar quando algum ID não é encontrado",
			productIDs: []string{"PRD001", "PRD999"},
			setup: func(storeRepo *mocks.MockStoreRepository, productRepo *mocks.MockProductRepository, orderRepo *mocks.MockOrderRepository, paymentService *paymentmocks.MockPaymentIntegrator) {
				storeRepo.EXPECT().GetStoreByID("STR001").Return(store, nil)
				productRepo.EXPECT().GetProductsByIDs([]string{"PRD001", "PRD999"}).Return(products[:1], nil)
			},
			expectErr: ErrProductsNotFound,
		},
		{
			name:       "Produto de outra loja - deve recusar o carrinho",
			productIDs: []string{"PRD001", "PRD002"},
			setup: func(storeRepo *mocks.MockStoreRepository, productRepo *mocks.MockProductRepository, orderRepo *mocks.MockOrderRepository, paymentService *paymentmocks.MockPaymentIntegrator) {
				foreign := &domain.Product{ID: "PRD002", StoreID: "STR999", Name: "Boné", Price: decimal.RequireFromString("29.90")}

				storeRepo.EXPECT().GetStoreByID("STR001").Return(store, nil)
				productRepo.EXPECT().GetProductsByIDs([]string{"PRD001", "PRD002"}).Return([]*domain.Product{products[0], foreign}, nil)
			},
			expectErr: ErrProductsNotFound,
		},
		{
			name:       "Carrinho válido - deve criar pedido não pago e retornar a URL da sessão",
			productIDs: []string{"PRD001", "PRD002"},
			setup: func(storeRepo *mocks.MockStoreRepository, productRepo *mocks.MockProductRepository, orderRepo *mocks.MockOrderRepository, paymentService *paymentmocks.MockPaymentIntegrator) {
				storeRepo.EXPECT().GetStoreByID("STR001").Return(store, nil)
				productRepo.EXPECT().GetProductsByIDs([]string{"PRD001", "PRD002"}).Return(products, nil)

				orderRepo.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						assert.NotEmpty(t, order.ID)
						assert.Equal(t, "STR001", order.StoreID)
						assert.False(t, order.IsPaid)
						assert.Len(t, order.Items, 2)
						assert.Equal(t, "PRD001", order.Items[0].ProductID)
						assert.Equal(t, "PRD002", order.Items[1].ProductID)
						return order, nil
					})

				paymentService.EXPECT().
					CreateCheckoutSession(gomock.Any(), products).
					Return("https://checkout.stripe.com/c/pay/cs_test_123", nil)
			},
			expectURL: "https://checkout.stripe.com/c/pay/cs_test_123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storeRepo := mocks.NewMockStoreRepository(ctrl)
			productRepo := mocks.NewMockProductRepository(ctrl)
			orderRepo := mocks.NewMockOrderRepository(ctrl)
			paymentService := paymentmocks.NewMockPaymentIntegrator(ctrl)

			tt.setup(storeRepo, productRepo, orderRepo, paymentService)

			service := &Service{
				storeRepo:   storeRepo,
				productRepo: productRepo,
				orderRepo:   orderRepo,
				payment:     paymentService,
			}

			response, err := service.CreateSession(context.Background(), "STR001", tt.productIDs)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, response)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectURL, response.URL)
		})
	}
}

func TestService_ListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &domain.Store{ID: "STR001", Name: "Loja A", UserID: 10}
	createdAt := time.Date(2024, 5, 2, 14, 30, 0, 0, time.UTC)

	t.Run("Loja de outro usuário - deve retornar erro de loja não encontrada", func(t *testing.T) {
		storeRepo := mocks.NewMockStoreRepository(ctrl)
		orderRepo := mocks.NewMockOrderRepository(ctrl)

		storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(nil, nil)

		service := &Service{storeRepo: storeRepo, orderRepo: orderRepo}

		summaries, err := service.ListOrders("STR001", 10)

		assert.ErrorIs(t, err, ErrStoreNotFound)
		assert.Nil(t, summaries)
	})

	t.Run("Pedidos existentes - deve montar o resumo com nomes e total", func(t *testing.T) {
		storeRepo := mocks.NewMockStoreRepository(ctrl)
		orderRepo := mocks.NewMockOrderRepository(ctrl)

		storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
		orderRepo.EXPECT().ListOrdersByStore("STR001").Return([]*domain.Order{
			{
				ID:        "ORD123",
				StoreID:   "STR001",
				IsPaid:    true,
				Phone:     "+15551234567",
				Address:   "123 Main St, Springfield",
				CreatedAt: createdAt,
				Items: []domain.OrderItem{
					{ProductID: "PRD001", ProductName: "Camiseta", ProductPrice: decimal.RequireFromString("49.90")},
					{ProductID: "PRD002", ProductName: "Boné", ProductPrice: decimal.RequireFromString("29.90")},
				},
			},
		}, nil)

		service := &Service{storeRepo: storeRepo, orderRepo: orderRepo}

		summaries, err := service.ListOrders("STR001", 10)

		assert.NoError(t, err)
		assert.Len(t, summaries, 1)
		assert.Equal(t, "ORD123", summaries[0].ID)
		assert.True(t, summaries[0].IsPaid)
		assert.Equal(t, []string{"Camiseta", "Boné"}, summaries[0].Products)
		assert.Equal(t, "79.8", summaries[0].TotalPrice.String())
		assert.Equal(t, createdAt, summaries[0].CreatedAt)
	})
}
