package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-admin-api/infrastructure/repository"
	"github.com/vfg2006/commerce-admin-api/internal/config"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/reporting"
)

// MonthlyRevenueSyncConfig representa a configuração do agendador de snapshots mensais
type MonthlyRevenueSyncConfig struct {
	CronSchedule        string
	MonthLookback       int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	RetentionMonths     int
	SyncEnabled         bool
}

// MonthlyRevenueSyncService gerencia o agendamento e execução da geração de
// snapshots mensais de receita por loja
type MonthlyRevenueSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyRevenueSyncConfig
	storeRepo           repository.StoreRepository
	monthlyRevenueRepo  repository.MonthlyRevenueRepository
	reporter            reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastPrunedSnapshots int64
}

// NewMonthlyRevenueSyncService cria uma nova instância do serviço de snapshots mensais
func NewMonthlyRevenueSyncService(
	storeRepo repository.StoreRepository,
	monthlyRevenueRepo repository.MonthlyRevenueRepository,
	reporter reporting.Reporter,
	appConfig *config.Config,
) *MonthlyRevenueSyncService {
	syncConfig := MonthlyRevenueSyncConfig{
		CronSchedule:        appConfig.MonthlyRevenueSync.CronSchedule,
		MonthLookback:       appConfig.MonthlyRevenueSync.MonthLookback,
		RequestDelaySeconds: appConfig.MonthlyRevenueSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.MonthlyRevenueSync.MaxConcurrentJobs,
		RetentionMonths:     appConfig.MonthlyRevenueSync.RetentionMonths,
		SyncEnabled:         appConfig.MonthlyRevenueSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"month_lookback":        syncConfig.MonthLookback,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"retention_months":      syncConfig.RetentionMonths,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots mensais carregada")

	return &MonthlyRevenueSyncService{
		scheduler:          scheduler,
		config:             syncConfig,
		storeRepo:          storeRepo,
		monthlyRevenueRepo: monthlyRevenueRepo,
		reporter:           reporter,
		syncRunning:        false,
	}
}

// Start inicia o agendador
func (s *MonthlyRevenueSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots mensais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots mensais de receita")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllStores()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots mensais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots mensais de receita")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllStores gera os snapshots dos meses recentes para todas as lojas
func (s *MonthlyRevenueSyncService) syncAllStores() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots mensais já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando geração de snapshots mensais para todas as lojas")

	stores, err := s.storeRepo.ListStores()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de lojas para snapshots mensais")
		return
	}

	if len(stores) == 0 {
		logrus.Info("Nenhuma loja encontrada para snapshots mensais")
		return
	}

	s.processStores(stores)

	s.pruneOldSnapshots()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"stores":   len(stores),
		"months":   s.config.MonthLookback,
	}).Info("Geração de snapshots mensais concluída")

	s.lastSyncCompletedAt = time.Now()
}

// pruneOldSnapshots remove os snapshots mais antigos que a retenção configurada
func (s *MonthlyRevenueSyncService) pruneOldSnapshots() {
	if s.config.RetentionMonths <= 0 {
		return
	}

	deleted, err := s.monthlyRevenueRepo.DeleteOlderThan(s.config.RetentionMonths)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover snapshots mensais antigos")
		return
	}

	s.lastPrunedSnapshots = deleted

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"deleted":          deleted,
			"retention_months": s.config.RetentionMonths,
		}).Info("Snapshots mensais antigos removidos")
	}
}

// processStores processa as lojas com um número limitado de workers concorrentes
func (s *MonthlyRevenueSyncService) processStores(stores []*domain.Store) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, store := range stores {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(st *domain.Store) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.processStore(st)
		}(store)
	}

	wg.Wait()
}

// processStore calcula e persiste os snapshots dos meses recentes de uma loja
func (s *MonthlyRevenueSyncService) processStore(store *domain.Store) {
	logrus.WithFields(logrus.Fields{
		"store_id":   store.ID,
		"store_name": store.Name,
		"months":     s.config.MonthLookback,
	}).Info("Gerando snapshots mensais para loja")

	snapshots, err := s.reporter.ComputeMonthlySnapshots(store.ID, time.Now(), s.config.MonthLookback)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store_id": store.ID,
			"error":    err.Error(),
		}).Error("Erro ao calcular snapshots mensais para loja")
		return
	}

	for _, snapshot := range snapshots {
		if err := s.monthlyRevenueRepo.SaveOrUpdate(snapshot); err != nil {
			logrus.WithFields(logrus.Fields{
				"store_id": store.ID,
				"period":   snapshot.Period,
				"error":    err.Error(),
			}).Error("Erro ao salvar snapshot mensal")
			continue
		}

		// Aguardar antes da próxima escrita para não saturar o banco
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}
}

// TriggerManualSync inicia manualmente uma geração de snapshots mensais
func (s *MonthlyRevenueSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots mensais já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de snapshots mensais")
	go s.syncAllStores()
}

// GetStatus retorna o status atual do agendador
func (s *MonthlyRevenueSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_month_lookback":    s.config.MonthLookback,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_retention_months":  s.config.RetentionMonths,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_pruned_snapshots":  s.lastPrunedSnapshots,
	}
}
