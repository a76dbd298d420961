package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-admin-api/infrastructure/integrator/payment"
	"github.com/vfg2006/commerce-admin-api/infrastructure/repository"
	"github.com/vfg2006/commerce-admin-api/internal/api"
	"github.com/vfg2006/commerce-admin-api/internal/config"
	"github.com/vfg2006/commerce-admin-api/internal/scheduler"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/cataloging"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/checkout"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/reporting"
	"github.com/vfg2006/commerce-admin-api/internal/usecases/store"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	storeRepo := repository.NewStoreRepository(pgConn)
	billboardRepo := repository.NewBillboardRepository(pgConn)
	categoryRepo := repository.NewCategoryRepository(pgConn)
	sizeRepo := repository.NewSizeRepository(pgConn)
	colorRepo := repository.NewColorRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	monthlyRevenueRepo := repository.NewMonthlyRevenueRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	paymentIntegrator := payment.New(cfg.Stripe)

	storeService := store.NewService(storeRepo)
	catalogService := cataloging.NewService(storeRepo, billboardRepo, categoryRepo, sizeRepo, colorRepo, productRepo)
	reportingService := reporting.NewService(storeRepo, orderRepo, productRepo, monthlyRevenueRepo)
	checkoutService := checkout.NewService(storeRepo, productRepo, orderRepo, paymentIntegrator)

	// Agendadores de manutenção em background
	monthlyRevenueSyncService := scheduler.NewMonthlyRevenueSyncService(
		storeRepo,
		monthlyRevenueRepo,
		reportingService,
		cfg,
	)

	orderPruneService := scheduler.NewOrderPruneService(orderRepo, cfg)

	if err := monthlyRevenueSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots mensais de receita")
	} else {
		logrus.Info("Agendador de snapshots mensais de receita iniciado com sucesso")
	}

	if err := orderPruneService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de pedidos abandonados")
	} else {
		logrus.Info("Agendador de limpeza de pedidos abandonados iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		storeService,
		catalogService,
		reportingService,
		checkoutService,
		monthlyRevenueSyncService,
		orderPruneService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
