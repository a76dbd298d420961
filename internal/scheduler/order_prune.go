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
)

// OrderPruneConfig representa a configuração do agendador de limpeza de pedidos
type OrderPruneConfig struct {
	CronSchedule string
	LookbackDays int
	PruneEnabled bool
}

// OrderPruneService remove periodicamente pedidos não pagos antigos,
// abandonados no meio do checkout
type OrderPruneService struct {
	scheduler         *gocron.Scheduler
	config            OrderPruneConfig
	orderRepo         repository.OrderRepository
	pruneRunning      bool
	pruneMutex        sync.Mutex
	lastPruneAt       time.Time
	lastPrunedRecords int64
}

// NewOrderPruneService cria uma nova instância do serviço de limpeza de pedidos
func NewOrderPruneService(orderRepo repository.OrderRepository, appConfig *config.Config) *OrderPruneService {
	pruneConfig := OrderPruneConfig{
		CronSchedule: appConfig.OrderPruneSync.CronSchedule,
		LookbackDays: appConfig.OrderPruneSync.LookbackDays,
		PruneEnabled: appConfig.OrderPruneSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": pruneConfig.CronSchedule,
		"lookback_days": pruneConfig.LookbackDays,
		"prune_enabled": pruneConfig.PruneEnabled,
	}).Info("Configuração do agendador de limpeza de pedidos carregada")

	return &OrderPruneService{
		scheduler: scheduler,
		config:    pruneConfig,
		orderRepo: orderRepo,
	}
}

// Start inicia o agendador
func (s *OrderPruneService) Start(ctx context.Context) error {
	if !s.config.PruneEnabled {
		logrus.Info("Limpeza de pedidos abandonados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de pedidos abandonados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.pruneAbandonedOrders()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de pedidos abandonados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de pedidos abandonados")
		s.scheduler.Stop()
	}()

	return nil
}

// pruneAbandonedOrders remove os pedidos não pagos mais antigos que a janela configurada
func (s *OrderPruneService) pruneAbandonedOrders() {
	s.pruneMutex.Lock()
	if s.pruneRunning {
		s.pruneMutex.Unlock()
		logrus.Info("Limpeza de pedidos já em andamento, ignorando")
		return
	}
	s.pruneRunning = true
	s.pruneMutex.Unlock()

	defer func() {
		s.pruneMutex.Lock()
		s.pruneRunning = false
		s.pruneMutex.Unlock()
	}()

	logrus.WithField("lookback_days", s.config.LookbackDays).Info("Iniciando limpeza de pedidos abandonados")

	deleted, err := s.orderRepo.DeleteUnpaidOlderThan(s.config.LookbackDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover pedidos abandonados")
		return
	}

	s.lastPruneAt = time.Now()
	s.lastPrunedRecords = deleted

	logrus.WithField("deleted", deleted).Info("Limpeza de pedidos abandonados concluída")
}

// TriggerManualPrune inicia manualmente uma limpeza de pedidos abandonados
func (s *OrderPruneService) TriggerManualPrune() {
	s.pruneMutex.Lock()
	if s.pruneRunning {
		s.pruneMutex.Unlock()
		logrus.Info("Limpeza de pedidos já em andamento, ignorando solicitação manual")
		return
	}
	s.pruneMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de pedidos abandonados")
	go s.pruneAbandonedOrders()
}

// GetStatus retorna o status atual do agendador
func (s *OrderPruneService) GetStatus() map[string]any {
	return map[string]any{
		"prune_enabled":       s.config.PruneEnabled,
		"prune_cron":          s.config.CronSchedule,
		"prune_lookback_days": s.config.LookbackDays,
		"last_prune_at":       s.lastPruneAt,
		"last_pruned_records": s.lastPrunedRecords,
	}
}
