package reporting

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/commerce-admin-api/infrastructure/repository"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
)

var (
	ErrStoreNotFound = errors.New("loja não encontrada")
	ErrInvalidPeriod = errors.New("período inválido, esperado mm-yyyy")
)

// Nomes curtos dos meses, na ordem dos buckets do gráfico
var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Reporter expõe os indicadores do painel de uma loja
type Reporter interface {
	GetTotalRevenue(storeID string, userID int) (decimal.Decimal, error)
	GetSalesCount(storeID string, userID int) (int, error)
	GetStockCount(storeID string, userID int) (int, error)
	GetGraphRevenue(storeID string, userID int) ([]domain.GraphData, error)
	GetDashboardSummary(storeID string, userID int) (*domain.DashboardSummary, error)
	GetMonthlyRevenue(storeID string, userID int, period string) (*domain.MonthlyRevenueSnapshot, error)
	ListMonthlyRevenue(storeID string, userID int) ([]*domain.MonthlyRevenueSnapshot, error)
	ComputeMonthlySnapshots(storeID string, reference time.Time, lookback int) ([]*domain.MonthlyRevenueSnapshot, error)
}

type Service struct {
	storeRepo          repository.StoreRepository
	orderRepo          repository.OrderRepository
	productRepo        repository.ProductRepository
	monthlyRevenueRepo repository.MonthlyRevenueRepository
}

func NewService(
	storeRepo repository.StoreRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	monthlyRevenueRepo repository.MonthlyRevenueRepository,
) Reporter {
	return &Service{
		storeRepo:          storeRepo,
		orderRepo:          orderRepo,
		productRepo:        productRepo,
		monthlyRevenueRepo: monthlyRevenueRepo,
	}
}

func (s *Service) checkOwnership(storeID string, userID int) error {
	store, err := s.storeRepo.GetStoreByIDAndUser(storeID, userID)
	if err != nil {
		return err
	}

	if store == nil {
		return ErrStoreNotFound
	}

	return nil
}

// GetTotalRevenue soma o preço corrente dos produtos de todos os pedidos
// pagos da loja. Pedidos não pagos ficam de fora.
func (s *Service) GetTotalRevenue(storeID string, userID int) (decimal.Decimal, error) {
	if err := s.checkOwnership(storeID, userID); err != nil {
		return decimal.Zero, err
	}

	orders, err := s.orderRepo.ListPaidOrdersByStore(storeID)
	if err != nil {
		return decimal.Zero, err
	}

	return totalRevenue(orders), nil
}

func (s *Service) GetSalesCount(storeID string, userID int) (int, error) {
	if err := s.checkOwnership(storeID, userID); err != nil {
		return 0, err
	}

	return s.orderRepo.CountPaidOrdersByStore(storeID)
}

func (s *Service) GetStockCount(storeID string, userID int) (int, error) {
	if err := s.checkOwnership(storeID, userID); err != nil {
		return 0, err
	}

	return s.productRepo.CountAvailableByStore(storeID)
}

// GetGraphRevenue retorna os doze buckets mensais do gráfico de receita,
// sempre de Jan a Dec, com zero nos meses sem vendas.
func (s *Service) GetGraphRevenue(storeID string, userID int) ([]domain.GraphData, error) {
	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListPaidOrdersByStore(storeID)
	if err != nil {
		return nil, err
	}

	return graphRevenue(orders), nil
}

func (s *Service) GetDashboardSummary(storeID string, userID int) (*domain.DashboardSummary, error) {
	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListPaidOrdersByStore(storeID)
	if err != nil {
		return nil, err
	}

	stockCount, err := s.productRepo.CountAvailableByStore(storeID)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardSummary{
		TotalRevenue: totalRevenue(orders),
		SalesCount:   len(orders),
		StockCount:   stockCount,
	}, nil
}

// GetMonthlyRevenue retorna o snapshot de receita de um único período mm-yyyy,
// preferindo o valor já persistido pelo agendador. Quando o período ainda não
// foi sincronizado, calcula o valor ao vivo a partir dos pedidos pagos.
func (s *Service) GetMonthlyRevenue(storeID string, userID int, period string) (*domain.MonthlyRevenueSnapshot, error) {
	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	reference, err := domain.ParsePeriod(period)
	if err != nil {
		return nil, ErrInvalidPeriod
	}

	snapshot, err := s.monthlyRevenueRepo.GetByStoreAndPeriod(storeID, reference)
	if err != nil {
		return nil, err
	}

	if snapshot != nil {
		return snapshot, nil
	}

	return s.computeSnapshot(storeID, reference)
}

// ListMonthlyRevenue retorna o histórico de snapshots mensais de uma loja, em
// ordem de período. O mês corrente é calculado ao vivo quando o agendador ainda
// não o persistiu.
func (s *Service) ListMonthlyRevenue(storeID string, userID int) ([]*domain.MonthlyRevenueSnapshot, error) {
	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	snapshots, err := s.monthlyRevenueRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	currentPeriod := domain.FormatPeriod(now)

	for _, snapshot := range snapshots {
		if snapshot.Period == currentPeriod {
			return snapshots, nil
		}
	}

	current, err := s.computeSnapshot(storeID, now)
	if err != nil {
		return nil, err
	}

	return append(snapshots, current), nil
}

// computeSnapshot calcula um snapshot ao vivo, sem persisti-lo
func (s *Service) computeSnapshot(storeID string, reference time.Time) (*domain.MonthlyRevenueSnapshot, error) {
	orders, err := s.orderRepo.ListPaidOrdersByStore(storeID)
	if err != nil {
		return nil, err
	}

	revenue, salesCount := monthlyRevenue(orders, reference.Year(), reference.Month())

	return &domain.MonthlyRevenueSnapshot{
		StoreID:    storeID,
		Period:     domain.FormatPeriod(reference),
		Revenue:    revenue,
		SalesCount: salesCount,
	}, nil
}

// ComputeMonthlySnapshots calcula a receita e o número de vendas dos últimos
// lookback meses a partir do mês de referência, um snapshot por período.
// É usado pelo agendador de sincronização mensal.
func (s *Service) ComputeMonthlySnapshots(storeID string, reference time.Time, lookback int) ([]*domain.MonthlyRevenueSnapshot, error) {
	orders, err := s.orderRepo.ListPaidOrdersByStore(storeID)
	if err != nil {
		return nil, err
	}

	snapshots := make([]*domain.MonthlyRevenueSnapshot, 0, lookback)

	for i := 0; i < lookback; i++ {
		period := reference.AddDate(0, -i, 0)
		revenue, salesCount := monthlyRevenue(orders, period.Year(), period.Month())

		snapshots = append(snapshots, &domain.MonthlyRevenueSnapshot{
			StoreID:    storeID,
			Period:     domain.FormatPeriod(period),
			Revenue:    revenue,
			SalesCount: salesCount,
		})
	}

	return snapshots, nil
}

// totalRevenue soma o valor dos itens dos pedidos pagos informados. Pedidos
// não pagos são descartados mesmo que a listagem os contenha.
func totalRevenue(orders []*domain.Order) decimal.Decimal {
	total := decimal.Zero

	for _, order := range orders {
		if !order.IsPaid {
			continue
		}

		total = total.Add(orderTotal(order))
	}

	return total
}

// graphRevenue agrupa a receita dos pedidos pelo mês do calendário. Pedidos
// de anos diferentes caem no mesmo bucket quando o mês coincide.
func graphRevenue(orders []*domain.Order) []domain.GraphData {
	buckets := make([]decimal.Decimal, len(monthNames))
	for i := range buckets {
		buckets[i] = decimal.Zero
	}

	for _, order := range orders {
		if !order.IsPaid {
			continue
		}

		month := int(order.CreatedAt.Month()) - 1
		buckets[month] = buckets[month].Add(orderTotal(order))
	}

	graph := make([]domain.GraphData, len(monthNames))
	for i, name := range monthNames {
		graph[i] = domain.GraphData{
			Name:  name,
			Value: buckets[i],
		}
	}

	return graph
}

// monthlyRevenue soma a receita e conta os pedidos de um único mês de um
// único ano, para os snapshots do agendador
func monthlyRevenue(orders []*domain.Order, year int, month time.Month) (decimal.Decimal, int) {
	revenue := decimal.Zero
	salesCount := 0

	for _, order := range orders {
		if !order.IsPaid {
			continue
		}

		if order.CreatedAt.Year() != year || order.CreatedAt.Month() != month {
			continue
		}

		revenue = revenue.Add(orderTotal(order))
		salesCount++
	}

	return revenue, salesCount
}

func orderTotal(order *domain.Order) decimal.Decimal {
	total := decimal.Zero

	for _, item := range order.Items {
		total = total.Add(item.ProductPrice)
	}

	return total
}
