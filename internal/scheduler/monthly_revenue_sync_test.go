package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-admin-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

func TestMonthlyRevenueSyncService_syncAllStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeRepo := mocks.NewMockStoreRepository(ctrl)
	orderRepo := mocks.NewMockOrderRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)
	revenueRepo := mocks.NewMockMonthlyRevenueRepository(ctrl)

	stores := []*domain.Store{
		{ID: "STR001", Name: "Loja A", UserID: 10},
		{ID: "STR002", Name: "Loja B", UserID: 11},
	}

	storeRepo.EXPECT().ListStores().Return(stores, nil)

	// Cada loja gera um snapshot por mês do lookback
	orderRepo.EXPECT().ListPaidOrdersByStore("STR001").Return([]*domain.Order{}, nil)
	orderRepo.EXPECT().ListPaidOrdersByStore("STR002").Return([]*domain.Order{}, nil)

	var mu sync.Mutex
	saved := make([]*domain.MonthlyRevenueSnapshot, 0, 4)

	revenueRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(snapshot *domain.MonthlyRevenueSnapshot) error {
			mu.Lock()
			defer mu.Unlock()
			saved = append(saved, snapshot)
			return nil
		}).
		Times(4)

	// Ao final da sincronização os snapshots fora da retenção são removidos
	revenueRepo.EXPECT().DeleteOlderThan(24).Return(int64(3), nil)

	service := &MonthlyRevenueSyncService{
		config: MonthlyRevenueSyncConfig{
			MonthLookback:       2,
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   2,
			RetentionMonths:     24,
			SyncEnabled:         true,
		},
		storeRepo:          storeRepo,
		monthlyRevenueRepo: revenueRepo,
		reporter:           reporting.NewService(storeRepo, orderRepo, productRepo, revenueRepo),
	}

	service.syncAllStores()

	assert.Len(t, saved, 4)
	assert.Equal(t, int64(3), service.lastPrunedSnapshots)

	currentPeriod := domain.FormatPeriod(time.Now())
	previousPeriod := domain.FormatPeriod(time.Now().AddDate(0, -1, 0))

	periodsByStore := map[string]map[string]bool{}
	for _, snapshot := range saved {
		if periodsByStore[snapshot.StoreID] == nil {
			periodsByStore[snapshot.StoreID] = map[string]bool{}
		}
		periodsByStore[snapshot.StoreID][snapshot.Period] = true
		assert.Equal(t, "0", snapshot.Revenue.String())
		assert.Equal(t, 0, snapshot.SalesCount)
	}

	for _, storeID := range []string{"STR001", "STR002"} {
		assert.True(t, periodsByStore[storeID][currentPeriod])
		assert.True(t, periodsByStore[storeID][previousPeriod])
	}

	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestMonthlyRevenueSyncService_syncAllStores_JaEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa nos mocks: a execução deve ser ignorada
	storeRepo := mocks.NewMockStoreRepository(ctrl)
	revenueRepo := mocks.NewMockMonthlyRevenueRepository(ctrl)

	service := &MonthlyRevenueSyncService{
		config: MonthlyRevenueSyncConfig{
			MonthLookback:     2,
			MaxConcurrentJobs: 1,
			SyncEnabled:       true,
		},
		storeRepo:          storeRepo,
		monthlyRevenueRepo: revenueRepo,
		syncRunning:        true,
	}

	service.syncAllStores()
}

func TestMonthlyRevenueSyncService_pruneOldSnapshots_Desabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Retenção zerada: nenhuma chamada ao repositório deve acontecer
	revenueRepo := mocks.NewMockMonthlyRevenueRepository(ctrl)

	service := &MonthlyRevenueSyncService{
		config:             MonthlyRevenueSyncConfig{RetentionMonths: 0},
		monthlyRevenueRepo: revenueRepo,
	}

	service.pruneOldSnapshots()

	assert.Equal(t, int64(0), service.lastPrunedSnapshots)
}

func TestMonthlyRevenueSyncService_GetStatus(t *testing.T) {
	service := &MonthlyRevenueSyncService{
		config: MonthlyRevenueSyncConfig{
			CronSchedule:        "0 3 * * *",
			MonthLookback:       6,
			RequestDelaySeconds: 1,
			MaxConcurrentJobs:   3,
			RetentionMonths:     24,
			SyncEnabled:         true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 6, status["sync_month_lookback"])
	assert.Equal(t, 3, status["sync_max_concurrent"])
	assert.Equal(t, 24, status["sync_retention_months"])
}
