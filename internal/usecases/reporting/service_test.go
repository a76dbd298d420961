package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-admin-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func paidOrder(createdAt time.Time, prices ...string) *domain.Order {
	order := &domain.Order{
		IsPaid:    true,
		CreatedAt: createdAt,
	}

	for _, price := range prices {
		order.Items = append(order.Items, domain.OrderItem{
			ProductPrice: decimal.RequireFromString(price),
		})
	}

	return order
}

func unpaidOrder(createdAt time.Time, prices ...string) *domain.Order {
	order := paidOrder(createdAt, prices...)
	order.IsPaid = false
	return order
}

func TestService_GetTotalRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &domain.Store{ID: "STR001", Name: "Loja A", UserID: 10}

	tests := []struct {
		name      string
		setup     func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository)
		expected  string
		expectErr error
	}{
		{
			name: "Loja sem pedidos pagos - receita total deve ser zero",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository) {
				storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
				orderRepo.EXPECT().ListPaidOrdersByStore("STR001").Return([]*domain.Order{}, nil)
			},
			expected: "0",
		},
		{
			name: "Loja com pedidos pagos - deve somar o preço de todos os itens",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository) {
				storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
				orderRepo.EXPECT().ListPaidOrdersByStore("STR001").Return([]*domain.Order{
					paidOrder(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "10.00", "5.50"),
					paidOrder(time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC), "9.50"),
				}, nil)
			},
			expected: "25",
		},
		{
			name: "Pedido não pago na listagem - não deve contribuir para a receita",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository) {
				storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
				orderRepo.EXPECT().ListPaidOrdersByStore("STR001").Return([]*domain.Order{
					paidOrder(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "10.00", "5.50"),
					paidOrder(time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC), "9.50"),
					unpaidOrder(time.Date(2024, 4, 21, 0, 0, 0, 0, time.UTC), "99.00"),
				}, nil)
			},
			expected: "25",
		},
		{
			name: "Loja de outro usuário - deve retornar erro de loja não encontrada",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository) {
				storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(nil, nil)
			},
			expectErr: ErrStoreNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storeRepo := mocks.NewMockStoreRepository(ctrl)
			orderRepo := mocks.NewMockOrderRepository(ctrl)
			productRepo := mocks.NewMockProductRepository(ctrl)

			tt.setup(storeRepo, orderRepo)

			service := &Service{
				storeRepo:   storeRepo,
				orderRepo:   orderRepo,
				productRepo: productRepo,
			}

			total, err := service.GetTotalRevenue("STR001", 10)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, total.String())
		})
	}
}

func TestService_GetGraphRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &domain.Store{ID: "STR001", Name: "Loja A", UserID: 10}

	tests := []struct {
		name     string
		orders   []*domain.Order
		validate func(t *testing.T, graph []domain.GraphData)
	}{
		{
			name:   "Loja sem pedidos - deve retornar os doze meses zerados",
			orders: []*domain.Order{},
			validate: func(t *testing.T, graph []domain.GraphData) {
				assert.Len(t, graph, 12)
				assert.Equal(t, "Jan", graph[0].Name)
				assert.Equal(t, "Dec", graph[11].Name)

				for _, point := range graph {
					assert.Equal(t, "0", point.Value.String())
				}
			},
		},
		{
			name: "Pedidos em março - deve acumular a receita no bucket de março",
			orders: []*domain.Order{
				paidOrder(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "10.00"),
				paidOrder(time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC), "15.00"),
			},
			validate: func(t *testing.T, graph []domain.GraphData) {
				assert.Equal(t, "Mar", graph[2].Name)
				assert.Equal(t, "25", graph[2].Value.String())
				assert.Equal(t, "0", graph[1].Value.String())
				assert.Equal(t, "0", graph[3].Value.String())
			},
		},
		{
			name: "Pedido não pago - não deve entrar no bucket do mês",
			orders: []*domain.Order{
				paidOrder(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "10.00"),
				unpaidOrder(time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC), "15.00"),
			},
			validate: func(t *testing.T, graph []domain.GraphData) {
				assert.Equal(t, "Mar", graph[2].Name)
				assert.Equal(t, "10", graph[2].Value.String())
			},
		},
		{
			name: "Pedidos de anos diferentes no mesmo mês - devem cair no mesmo bucket",
			orders: []*domain.Order{
				paidOrder(time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), "100.00"),
				paidOrder(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), "50.00"),
			},
			validate: func(t *testing.T, graph []domain.GraphData) {
				assert.Equal(t, "Jul", graph[6].Name)
				assert.Equal(t, "150", graph[6].Value.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storeRepo := mocks.NewMockStoreRepository(ctrl)
			orderRepo := mocks.NewMockOrderRepository(ctrl)
			productRepo := mocks.NewMockProductRepository(ctrl)

			storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
			orderRepo.EXPECT().ListPaidOrdersByStore("STR001").Return(tt.orders, nil)

			service := &Service{
				storeRepo:   storeRepo,
				orderRepo:   orderRepo,
				productRepo: productRepo,
			}

			graph, err := service.GetGraphRevenue("STR001", 10)

			assert.NoError(t, err)
			tt.validate(t, graph)
		})
	}
}

func TestService_GetDashboardSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &domain.Store{ID: "STR001", Name: "Loja A", UserID: 10}

	storeRepo := mocks.NewMockStoreRepository(ctrl)
	orderRepo := mocks.NewMockOrderRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
	orderRepo.EXPECT().ListPaidOrdersByStore("STR001").Return([]*domain.Order{
		paidOrder(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "10.00"),
		paidOrder(time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC), "20.00", "5.00"),
	}, nil)
	productRepo.EXPECT().CountAvailableByStore("STR001").Return(7, nil)

	service := &Service{
		storeRepo:   storeRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}

	summary, err := service.GetDashboardSummary("STR001", 10)

	assert.NoError(t, err)
	assert.Equal(t, "35", summary.TotalRevenue.String())
	assert.Equal(t, 2, summary.SalesCount)
	assert.Equal(t, 7, summary.StockCount)
}

func TestService_ComputeMonthlySnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Referência fixa: abril de 2024, olhando três meses para trás
	reference := time.Date(2024, 4, 16, 0, 0, 0, 0, time.UTC)

	storeRepo := mocks.NewMockStoreRepository(ctrl)
	orderRepo := mocks.NewMockOrderRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	orderRepo.EXPECT().ListPaidOrdersByStore("STR001").Return([]*domain.Order{
		paidOrder(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), "30.00"),
		paidOrder(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "10.00"),
		paidOrder(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), "15.00"),
		// Mesmo mês de um ano anterior não entra no período 03-2024
		paidOrder(time.Date(2023, 3, 20, 0, 0, 0, 0, time.UTC), "99.00"),
		// Pedido não pago no período não entra no snapshot
		unpaidOrder(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), "77.00"),
	}, nil)

	service := &Service{
		storeRepo:   storeRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}

	snapshots, err := service.ComputeMonthlySnapshots("STR001", reference, 3)

	assert.NoError(t, err)
	assert.Len(t, snapshots, 3)

	assert.Equal(t, "04-2024", snapshots[0].Period)
	assert.Equal(t, "30", snapshots[0].Revenue.String())
	assert.Equal(t, 1, snapshots[0].SalesCount)

	assert.Equal(t, "03-2024", snapshots[1].Period)
	assert.Equal(t, "25", snapshots[1].Revenue.String())
	assert.Equal(t, 2, snapshots[1].SalesCount)

	assert.Equal(t, "02-2024", snapshots[2].Period)
	assert.Equal(t, "0", snapshots[2].Revenue.String())
	assert.Equal(t, 0, snapshots[2].SalesCount)
}

func TestService_GetMonthlyRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &domain.Store{ID: "STR001", Name: "Loja A", UserID: 10}

	cached := &domain.MonthlyRevenueSnapshot{
		ID:         7,
		StoreID:    "STR001",
		Period:     "03-2024",
		Revenue:    decimal.RequireFromString("25"),
		SalesCount: 2,
	}

	tests := []struct {
		name      string
		period    string
		setup     func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository, revenueRepo *mocks.MockMonthlyRevenueRepository)
		validate  func(t *testing.T, snapshot *domain.MonthlyRevenueSnapshot)
		expectErr error
	}{
		{
			name:   "Período já sincronizado - deve servir o snapshot persistido sem consultar pedidos",
			period: "03-2024",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository, revenueRepo *mocks.MockMonthlyRevenueRepository) {
				storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
				revenueRepo.EXPECT().
					GetByStoreAndPeriod("STR001", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
					Return(cached, nil)
			},
			validate: func(t *testing.T, snapshot *domain.MonthlyRevenueSnapshot) {
				assert.Equal(t, int64(7), snapshot.ID)
				assert.Equal(t, "03-2024", snapshot.Period)
				assert.Equal(t, "25", snapshot.Revenue.String())
				assert.Equal(t, 2, snapshot.SalesCount)
			},
		},
		{
			name:   "Período ainda não sincronizado - deve calcular ao vivo a partir dos pedidos pagos",
			period: "03-2024",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository, revenueRepo *mocks.MockMonthlyRevenueRepository) {
				storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
				revenueRepo.EXPECT().
					GetByStoreAndPeriod("STR001", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
					Return(nil, nil)
				orderRepo.EXPECT().ListPaidOrdersByStore("STR001").Return([]*domain.Order{
					paidOrder(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "10.00"),
					paidOrder(time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC), "15.00"),
					paidOrder(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), "30.00"),
				}, nil)
			},
			validate: func(t *testing.T, snapshot *domain.MonthlyRevenueSnapshot) {
				assert.Equal(t, "03-2024", snapshot.Period)
				assert.Equal(t, "25", snapshot.Revenue.String())
				assert.Equal(t, 2, snapshot.SalesCount)
			},
		},
		{
			name:   "Período em formato inválido - deve retornar erro de período",
			period: "2024-03",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository, revenueRepo *mocks.MockMonthlyRevenueRepository) {
				storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
			},
			expectErr: ErrInvalidPeriod,
		},
		{
			name:   "Loja de outro usuário - deve retornar erro de loja não encontrada",
			period: "03-2024",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository, revenueRepo *mocks.MockMonthlyRevenueRepository) {
				storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(nil, nil)
			},
			expectErr: ErrStoreNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storeRepo := mocks.NewMockStoreRepository(ctrl)
			orderRepo := mocks.NewMockOrderRepository(ctrl)
			revenueRepo := mocks.NewMockMonthlyRevenueRepository(ctrl)

			tt.setup(storeRepo, orderRepo, revenueRepo)

			service := &Service{
				storeRepo:          storeRepo,
				orderRepo:          orderRepo,
				monthlyRevenueRepo: revenueRepo,
			}

			snapshot, err := service.GetMonthlyRevenue("STR001", 10, tt.period)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, snapshot)
		})
	}
}

func TestService_ListMonthlyRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &domain.Store{ID: "STR001", Name: "Loja A", UserID: 10}
	currentPeriod := domain.FormatPeriod(time.Now())

	t.Run("Histórico com o mês corrente já sincronizado - deve servir só o cache", func(t *testing.T) {
		storeRepo := mocks.NewMockStoreRepository(ctrl)
		orderRepo := mocks.NewMockOrderRepository(ctrl)
		revenueRepo := mocks.NewMockMonthlyRevenueRepository(ctrl)

		storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
		revenueRepo.EXPECT().ListByStore("STR001").Return([]*domain.MonthlyRevenueSnapshot{
			{StoreID: "STR001", Period: "01-2024", Revenue: decimal.RequireFromString("10"), SalesCount: 1},
			{StoreID: "STR001", Period: currentPeriod, Revenue: decimal.RequireFromString("25"), SalesCount: 2},
		}, nil)

		service := &Service{
			storeRepo:          storeRepo,
			orderRepo:          orderRepo,
			monthlyRevenueRepo: revenueRepo,
		}

		snapshots, err := service.ListMonthlyRevenue("STR001", 10)

		assert.NoError(t, err)
		assert.Len(t, snapshots, 2)
		assert.Equal(t, currentPeriod, snapshots[1].Period)
	})

	t.Run("Mês corrente ausente do cache - deve acrescentar o cálculo ao vivo", func(t *testing.T) {
		storeRepo := mocks.NewMockStoreRepository(ctrl)
		orderRepo := mocks.NewMockOrderRepository(ctrl)
		revenueRepo := mocks.NewMockMonthlyRevenueRepository(ctrl)

		storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
		revenueRepo.EXPECT().ListByStore("STR001").Return([]*domain.MonthlyRevenueSnapshot{
			{StoreID: "STR001", Period: "01-2024", Revenue: decimal.RequireFromString("10"), SalesCount: 1},
		}, nil)
		orderRepo.EXPECT().ListPaidOrdersByStore("STR001").Return([]*domain.Order{
			paidOrder(time.Now(), "30.00"),
		}, nil)

		service := &Service{
			storeRepo:          storeRepo,
			orderRepo:          orderRepo,
			monthlyRevenueRepo: revenueRepo,
		}

		snapshots, err := service.ListMonthlyRevenue("STR001", 10)

		assert.NoError(t, err)
		assert.Len(t, snapshots, 2)
		assert.Equal(t, currentPeriod, snapshots[1].Period)
		assert.Equal(t, "30", snapshots[1].Revenue.String())
		assert.Equal(t, 1, snapshots[1].SalesCount)
	})

	t.Run("Loja de outro usuário - deve retornar erro de loja não encontrada", func(t *testing.T) {
		storeRepo := mocks.NewMockStoreRepository(ctrl)
		revenueRepo := mocks.NewMockMonthlyRevenueRepository(ctrl)

		storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(nil, nil)

		service := &Service{
			storeRepo:          storeRepo,
			monthlyRevenueRepo: revenueRepo,
		}

		_, err := service.ListMonthlyRevenue("STR001", 10)

		assert.ErrorIs(t, err, ErrStoreNotFound)
	})
}
