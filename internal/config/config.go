package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Stripe             Stripe             `mapstructure:",squash"`
	MonthlyRevenueSync MonthlyRevenueSync `mapstructure:",squash"`
	OrderPruneSync     OrderPruneSync     `mapstructure:",squash"`
	SecretKey          string             `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Stripe struct {
	SecretKey     string `mapstructure:"stripe_secret_key"`
	WebhookSecret string `mapstructure:"stripe_webhook_secret"`
	StorefrontURL string `mapstructure:"stripe_frontend_store_url"`
	Currency      string `mapstructure:"stripe_currency"`
}

type MonthlyRevenueSync struct {
	CronSchedule        string `mapstructure:"monthly_revenue_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"monthly_revenue_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"monthly_revenue_sync_max_concurrent_jobs"`
	MonthLookback       int    `mapstructure:"monthly_revenue_sync_month_lookback"`
	RetentionMonths     int    `mapstructure:"monthly_revenue_sync_retention_months"`
	Enabled             bool   `mapstructure:"monthly_revenue_sync_enabled"`
}

type OrderPruneSync struct {
	CronSchedule string `mapstructure:"order_prune_cron"`
	LookbackDays int    `mapstructure:"order_prune_lookback_days"`
	Enabled      bool   `mapstructure:"order_prune_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/commerce")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("STRIPE_SECRET_KEY", "sk_test_your_key")
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "whsec_your_secret")
	viper.SetDefault("STRIPE_FRONTEND_STORE_URL", "http://localhost:3001")
	viper.SetDefault("STRIPE_CURRENCY", "usd")

	// Defaults para o snapshot mensal de receita
	viper.SetDefault("MONTHLY_REVENUE_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("MONTHLY_REVENUE_SYNC_REQUEST_DELAY_SECONDS", 1)
	viper.SetDefault("MONTHLY_REVENUE_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("MONTHLY_REVENUE_SYNC_MONTH_LOOKBACK", 1)
	viper.SetDefault("MONTHLY_REVENUE_SYNC_RETENTION_MONTHS", 24)
	viper.SetDefault("MONTHLY_REVENUE_SYNC_ENABLED", false)

	// Defaults para a limpeza de pedidos abandonados
	viper.SetDefault("ORDER_PRUNE_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("ORDER_PRUNE_LOOKBACK_DAYS", 30)
	viper.SetDefault("ORDER_PRUNE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
